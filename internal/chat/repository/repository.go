package repository

import (
	"context"
	"database/sql"
	"time"

	"campuschat/internal/chat"
	models "campuschat/internal/chat/model"
	"campuschat/pkg/logger"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type ChatRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

var (
	ErrChannelNotFound    = errors.New("channel not found")
	ErrMessageNotFound    = errors.New("message not found")
	ErrMembershipNotFound = errors.New("membership not found")
)

func NewChatRepository(db *bun.DB, logger logger.Logger) *ChatRepository {
	return &ChatRepository{
		db:     db,
		logger: &logger,
	}
}

func (r *ChatRepository) FindChannelByID(ctx context.Context, id uuid.UUID) (*models.Channel, error) {

	ch := new(models.Channel)
	err := r.db.NewSelect().Model(ch).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrChannelNotFound
		}
		return nil, errors.Wrap(err, "chatRepo.FindChannelByID.Scan: ")
	}
	return ch, nil
}

func (r *ChatRepository) FindChannelBySlug(ctx context.Context, slug string) (*models.Channel, error) {

	ch := new(models.Channel)
	err := r.db.NewSelect().Model(ch).Where("slug = ?", slug).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrChannelNotFound
		}
		return nil, errors.Wrap(err, "chatRepo.FindChannelBySlug.Scan: ")
	}
	return ch, nil
}

func (r *ChatRepository) CreateChannel(ctx context.Context, ch *models.Channel, ownerID uuid.UUID) error {

	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().Model(ch).Returning("*").Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "chatRepo.CreateChannel.InsertChannel: ")
		}

		owner := &models.ChannelMember{
			ChannelID: ch.ID,
			UserID:    ownerID,
			Role:      models.RoleOwner,
		}
		_, err = tx.NewInsert().Model(owner).Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "chatRepo.CreateChannel.InsertOwner: ")
		}
		return nil
	})
}

func (r *ChatRepository) UpdateChannel(ctx context.Context, ch *models.Channel) error {
	_, err := r.db.NewUpdate().
		Model(ch).
		Column("name", "slug", "description", "type", "min_rank", "is_default", "icon", "updated_at").
		WherePK().
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "chatRepo.UpdateChannel.Update: ")
	}
	return nil
}

func (r *ChatRepository) DeleteChannel(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.NewDelete().Model((*models.Channel)(nil)).Where("id = ?", id).Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "chatRepo.DeleteChannel.Exec: ")
	}
	return nil
}

func (r *ChatRepository) ListAccessibleChannels(ctx context.Context, userID uuid.UUID, rank models.Rank) ([]models.Channel, error) {
	var channels []models.Channel

	err := r.db.NewSelect().
		Model(&channels).
		WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.
				Where("type = ?", models.ChannelPublic).
				WhereOr("id IN (SELECT channel_id FROM channel_members WHERE user_id = ?)", userID).
				WhereOr("type = ? AND (min_rank IS NULL OR min_rank IN (?))",
					models.ChannelLevelRestricted, bun.In(models.RanksUpTo(rank)))
		}).
		OrderExpr("is_default DESC, name ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "chatRepo.ListAccessibleChannels.Scan: ")
	}
	return channels, nil
}

func (r *ChatRepository) FindMembership(ctx context.Context, channelID, userID uuid.UUID) (*models.ChannelMember, error) {

	m := new(models.ChannelMember)
	err := r.db.NewSelect().Model(m).
		Where("channel_id = ? AND user_id = ?", channelID, userID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMembershipNotFound
		}
		return nil, errors.Wrap(err, "chatRepo.FindMembership.Scan: ")
	}
	return m, nil
}

// CreateMembership inserts the row unless the (channel, user) pair already
// exists. Two concurrent joins race on the primary key and exactly one insert
// wins; the loser sees created=false.
func (r *ChatRepository) CreateMembership(ctx context.Context, m *models.ChannelMember) (bool, error) {

	res, err := r.db.NewInsert().
		Model(m).
		On("CONFLICT (channel_id, user_id) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return false, errors.Wrap(err, "chatRepo.CreateMembership.Exec: ")
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, errors.Wrap(err, "chatRepo.CreateMembership.RowsAffected: ")
	}
	return affected == 1, nil
}

func (r *ChatRepository) DeleteMembership(ctx context.Context, channelID, userID uuid.UUID) error {
	_, err := r.db.NewDelete().
		Model((*models.ChannelMember)(nil)).
		Where("channel_id = ? AND user_id = ?", channelID, userID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "chatRepo.DeleteMembership.Exec: ")
	}
	return nil
}

func (r *ChatRepository) ListMembers(ctx context.Context, channelID uuid.UUID) ([]models.ChannelMember, error) {
	var members []models.ChannelMember
	err := r.db.NewSelect().
		Model(&members).
		Where("channel_id = ?", channelID).
		OrderExpr("role ASC, joined_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "chatRepo.ListMembers.Scan: ")
	}
	return members, nil
}

func (r *ChatRepository) ListMembershipsOf(ctx context.Context, userID uuid.UUID) ([]models.ChannelMember, error) {
	var members []models.ChannelMember
	err := r.db.NewSelect().
		Model(&members).
		Where("user_id = ?", userID).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "chatRepo.ListMembershipsOf.Scan: ")
	}
	return members, nil
}

func (r *ChatRepository) TouchLastRead(ctx context.Context, channelID, userID uuid.UUID) error {
	_, err := r.db.NewUpdate().
		Model((*models.ChannelMember)(nil)).
		Set("last_read_at = ?", time.Now()).
		Where("channel_id = ? AND user_id = ?", channelID, userID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "chatRepo.TouchLastRead.Update: ")
	}
	return nil
}

func (r *ChatRepository) CreateMessage(ctx context.Context, msg *models.Message) error {

	_, err := r.db.NewInsert().Model(msg).Returning("*").Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "chatRepo.CreateMessage.Insert: ")
	}
	return nil
}

func (r *ChatRepository) GetMessage(ctx context.Context, id uuid.UUID) (*models.Message, error) {

	msg := new(models.Message)
	err := r.db.NewSelect().Model(msg).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMessageNotFound
		}
		return nil, errors.Wrap(err, "chatRepo.GetMessage.Scan: ")
	}
	return msg, nil
}

func (r *ChatRepository) ListMessages(ctx context.Context, channelID uuid.UUID, q chat.HistoryQuery) ([]models.Message, error) {

	limit := q.Limit
	if limit <= 0 {
		limit = 50
	}

	query := r.db.NewSelect().
		Model((*models.Message)(nil)).
		Where("channel_id = ? AND is_deleted = false", channelID)

	if q.Before != nil {
		query = query.Where("created_at < ?", *q.Before)
	}
	if q.After != nil {
		query = query.Where("created_at > ?", *q.After)
	}

	// Fetch the newest page, then return it oldest-first so delivery order
	// matches the store's insertion order.
	var page []models.Message
	err := query.OrderExpr("created_at DESC").Limit(limit).Scan(ctx, &page)
	if err != nil {
		return nil, errors.Wrap(err, "chatRepo.ListMessages.Scan: ")
	}

	for i, j := 0, len(page)-1; i < j; i, j = i+1, j-1 {
		page[i], page[j] = page[j], page[i]
	}
	return page, nil
}

func (r *ChatRepository) UpdateMessageContent(ctx context.Context, id uuid.UUID, content string, editedAt time.Time) error {
	_, err := r.db.NewUpdate().
		Model((*models.Message)(nil)).
		Set("content = ?", content).
		Set("edited_at = ?", editedAt).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "chatRepo.UpdateMessageContent.Update: ")
	}
	return nil
}

func (r *ChatRepository) SetMessagePinned(ctx context.Context, id uuid.UUID, pinned bool) error {
	_, err := r.db.NewUpdate().
		Model(&models.Message{IsPinned: pinned}).
		Column("is_pinned").
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "chatRepo.SetMessagePinned.Update: ")
	}
	return nil
}

func (r *ChatRepository) SoftDeleteMessage(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.NewUpdate().
		Model(&models.Message{IsDeleted: true}).
		Column("is_deleted").
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "chatRepo.SoftDeleteMessage.Update: ")
	}
	return nil
}

func (r *ChatRepository) MarkAnswered(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.NewUpdate().
		Model(&models.Message{IsAnswered: true}).
		Column("is_answered").
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "chatRepo.MarkAnswered.Update: ")
	}
	return nil
}
