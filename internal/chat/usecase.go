package chat

import (
	"context"

	"github.com/google/uuid"
)

type ChatUsecase interface {
	// Channel lifecycle. Creator becomes OWNER; settings mutation needs
	// OWNER/ADMIN; deletion is OWNER only.
	CreateChannel(ctx context.Context, actor Identity, cmd CreateChannelCommand) (*ChannelDTO, error)
	GetChannel(ctx context.Context, channelID, userID uuid.UUID) (*ChannelDTO, error)
	GetChannelBySlug(ctx context.Context, slug string, userID uuid.UUID) (*ChannelDTO, error)
	ListChannels(ctx context.Context, actor Identity) ([]ChannelDTO, error)
	UpdateChannel(ctx context.Context, channelID uuid.UUID, actorID uuid.UUID, cmd UpdateChannelCommand) (*ChannelDTO, error)
	DeleteChannel(ctx context.Context, channelID, actorID uuid.UUID) error

	// Membership. JoinChannel applies the type/rank policy table and is
	// idempotent for existing members; the bool reports a genuinely new join.
	JoinChannel(ctx context.Context, actor Identity, channelID uuid.UUID) (*MemberDTO, bool, error)
	LeaveChannel(ctx context.Context, channelID, userID uuid.UUID) error
	GetChannelMembers(ctx context.Context, channelID, userID uuid.UUID) ([]MemberDTO, error)
	IsMember(ctx context.Context, channelID, userID uuid.UUID) (bool, error)

	// Messages.
	SendMessage(ctx context.Context, authorID uuid.UUID, cmd SendMessageCommand) (*MessageDTO, error)
	GetMessages(ctx context.Context, channelID, userID uuid.UUID, q HistoryQuery) ([]MessageDTO, error)
	GetMessage(ctx context.Context, messageID, userID uuid.UUID) (*MessageDTO, error)
	EditMessage(ctx context.Context, messageID, actorID uuid.UUID, content string) (*MessageDTO, error)
	DeleteMessage(ctx context.Context, messageID, actorID uuid.UUID) error
	SetPinned(ctx context.Context, messageID, actorID uuid.UUID, pinned bool) (*MessageDTO, error)
	MarkAsAnswer(ctx context.Context, messageID, actorID uuid.UUID) (*MessageDTO, error)
}
