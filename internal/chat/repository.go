package chat

import (
	"context"
	"time"

	"campuschat/internal/chat/model"

	"github.com/google/uuid"
)

type ChatRepository interface {
	FindChannelByID(ctx context.Context, id uuid.UUID) (*model.Channel, error)
	FindChannelBySlug(ctx context.Context, slug string) (*model.Channel, error)
	// CreateChannel inserts the channel and its owner membership atomically.
	CreateChannel(ctx context.Context, ch *model.Channel, ownerID uuid.UUID) error
	UpdateChannel(ctx context.Context, ch *model.Channel) error
	DeleteChannel(ctx context.Context, id uuid.UUID) error
	ListAccessibleChannels(ctx context.Context, userID uuid.UUID, rank model.Rank) ([]model.Channel, error)

	FindMembership(ctx context.Context, channelID, userID uuid.UUID) (*model.ChannelMember, error)
	// CreateMembership is idempotent: it reports whether a new row was inserted,
	// so a duplicate concurrent join has exactly one winner.
	CreateMembership(ctx context.Context, m *model.ChannelMember) (bool, error)
	DeleteMembership(ctx context.Context, channelID, userID uuid.UUID) error
	ListMembers(ctx context.Context, channelID uuid.UUID) ([]model.ChannelMember, error)
	ListMembershipsOf(ctx context.Context, userID uuid.UUID) ([]model.ChannelMember, error)
	TouchLastRead(ctx context.Context, channelID, userID uuid.UUID) error

	CreateMessage(ctx context.Context, msg *model.Message) error
	// GetMessage returns the row even when soft-deleted.
	GetMessage(ctx context.Context, id uuid.UUID) (*model.Message, error)
	// ListMessages excludes soft-deleted rows, ascending creation order.
	ListMessages(ctx context.Context, channelID uuid.UUID, q HistoryQuery) ([]model.Message, error)
	UpdateMessageContent(ctx context.Context, id uuid.UUID, content string, editedAt time.Time) error
	SetMessagePinned(ctx context.Context, id uuid.UUID, pinned bool) error
	SoftDeleteMessage(ctx context.Context, id uuid.UUID) error
	MarkAnswered(ctx context.Context, id uuid.UUID) error
}
