package usecase

import (
	"context"
	"regexp"
	"time"

	"campuschat/config"
	"campuschat/internal/chat"
	models "campuschat/internal/chat/model"
	"campuschat/internal/chat/repository"
	"campuschat/pkg/errors"
	"campuschat/pkg/logger"

	"github.com/google/uuid"
)

type ChatUsecase struct {
	repo   chat.ChatRepository
	logger logger.Logger
	config config.Config
}

func NewChatUsecase(repo chat.ChatRepository, logger logger.Logger, config config.Config) *ChatUsecase {
	return &ChatUsecase{repo: repo, logger: logger, config: config}
}

var slugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

func validateSlug(slug string) error {
	if !slugRegex.MatchString(slug) {
		return errors.ErrInvalidSlug
	}
	return nil
}

func (uc *ChatUsecase) CreateChannel(ctx context.Context, actor chat.Identity, cmd chat.CreateChannelCommand) (*chat.ChannelDTO, error) {
	if cmd.Name == "" {
		return nil, errors.ErrEmptyName
	}
	if err := validateSlug(cmd.Slug); err != nil {
		return nil, err
	}

	if _, err := uc.repo.FindChannelBySlug(ctx, cmd.Slug); err == nil {
		return nil, errors.ErrSlugTaken
	} else if !errors.Is(err, repository.ErrChannelNotFound) {
		uc.logger.Error("database error checking slug", "err", err)
		return nil, errors.Internal("internal server error")
	}

	chType := cmd.Type
	if chType == "" {
		chType = models.ChannelPublic
	}

	ch := &models.Channel{
		Name:        cmd.Name,
		Slug:        cmd.Slug,
		Description: cmd.Description,
		Type:        chType,
		MinRank:     cmd.MinRank,
		IsDefault:   cmd.IsDefault,
		Icon:        cmd.Icon,
	}

	if err := uc.repo.CreateChannel(ctx, ch, actor.UserID); err != nil {
		uc.logger.Errorf("error while saving channel in db: %v", err)
		return nil, errors.ErrChannelCreateFailed(errors.Internal("database error"))
	}

	owner := &models.ChannelMember{
		ChannelID: ch.ID,
		UserID:    actor.UserID,
		Role:      models.RoleOwner,
	}
	return chat.ChannelToDTO(ch, owner), nil
}

func (uc *ChatUsecase) GetChannel(ctx context.Context, channelID, userID uuid.UUID) (*chat.ChannelDTO, error) {
	ch, err := uc.repo.FindChannelByID(ctx, channelID)
	if err != nil {
		if errors.Is(err, repository.ErrChannelNotFound) {
			return nil, errors.ErrChannelNotFound
		}
		uc.logger.Error("database error fetching channel", "err", err)
		return nil, errors.Internal("internal server error")
	}

	m, err := uc.repo.FindMembership(ctx, channelID, userID)
	if err != nil && !errors.Is(err, repository.ErrMembershipNotFound) {
		uc.logger.Error("database error fetching membership", "err", err)
		return nil, errors.Internal("internal server error")
	}
	return chat.ChannelToDTO(ch, m), nil
}

func (uc *ChatUsecase) GetChannelBySlug(ctx context.Context, slug string, userID uuid.UUID) (*chat.ChannelDTO, error) {
	ch, err := uc.repo.FindChannelBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrChannelNotFound) {
			return nil, errors.ErrChannelNotFound
		}
		uc.logger.Error("database error fetching channel", "err", err)
		return nil, errors.Internal("internal server error")
	}
	return uc.GetChannel(ctx, ch.ID, userID)
}

func (uc *ChatUsecase) ListChannels(ctx context.Context, actor chat.Identity) ([]chat.ChannelDTO, error) {
	channels, err := uc.repo.ListAccessibleChannels(ctx, actor.UserID, actor.Rank)
	if err != nil {
		uc.logger.Error("database error listing channels", "err", err)
		return nil, errors.Internal("internal server error")
	}

	memberships, err := uc.repo.ListMembershipsOf(ctx, actor.UserID)
	if err != nil {
		uc.logger.Error("database error listing memberships", "err", err)
		return nil, errors.Internal("internal server error")
	}
	byChannel := make(map[uuid.UUID]*models.ChannelMember, len(memberships))
	for i := range memberships {
		byChannel[memberships[i].ChannelID] = &memberships[i]
	}

	out := make([]chat.ChannelDTO, 0, len(channels))
	for i := range channels {
		out = append(out, *chat.ChannelToDTO(&channels[i], byChannel[channels[i].ID]))
	}
	return out, nil
}

func (uc *ChatUsecase) UpdateChannel(ctx context.Context, channelID uuid.UUID, actorID uuid.UUID, cmd chat.UpdateChannelCommand) (*chat.ChannelDTO, error) {
	ch, err := uc.repo.FindChannelByID(ctx, channelID)
	if err != nil {
		if errors.Is(err, repository.ErrChannelNotFound) {
			return nil, errors.ErrChannelNotFound
		}
		return nil, errors.Internal("internal server error")
	}

	m, err := uc.repo.FindMembership(ctx, channelID, actorID)
	if err != nil || !m.Role.CanModerate() {
		return nil, errors.ErrNotChannelAdmin
	}

	if cmd.Slug != nil && *cmd.Slug != ch.Slug {
		if err := validateSlug(*cmd.Slug); err != nil {
			return nil, err
		}
		if _, err := uc.repo.FindChannelBySlug(ctx, *cmd.Slug); err == nil {
			return nil, errors.ErrSlugTaken
		} else if !errors.Is(err, repository.ErrChannelNotFound) {
			return nil, errors.Internal("internal server error")
		}
		ch.Slug = *cmd.Slug
	}
	if cmd.Name != nil {
		ch.Name = *cmd.Name
	}
	if cmd.Description != nil {
		ch.Description = *cmd.Description
	}
	if cmd.Type != nil {
		ch.Type = *cmd.Type
	}
	if cmd.MinRank != nil {
		ch.MinRank = cmd.MinRank
	}
	if cmd.IsDefault != nil {
		ch.IsDefault = *cmd.IsDefault
	}
	if cmd.Icon != nil {
		ch.Icon = *cmd.Icon
	}
	ch.UpdatedAt = time.Now()

	if err := uc.repo.UpdateChannel(ctx, ch); err != nil {
		uc.logger.Errorf("error while updating channel in db: %v", err)
		return nil, errors.Internal("error while updating channel")
	}
	return chat.ChannelToDTO(ch, m), nil
}

func (uc *ChatUsecase) DeleteChannel(ctx context.Context, channelID, actorID uuid.UUID) error {
	if _, err := uc.repo.FindChannelByID(ctx, channelID); err != nil {
		if errors.Is(err, repository.ErrChannelNotFound) {
			return errors.ErrChannelNotFound
		}
		return errors.Internal("internal server error")
	}

	m, err := uc.repo.FindMembership(ctx, channelID, actorID)
	if err != nil || m.Role != models.RoleOwner {
		return errors.ErrNotChannelOwner
	}

	if err := uc.repo.DeleteChannel(ctx, channelID); err != nil {
		uc.logger.Errorf("error while deleting channel in db: %v", err)
		return errors.Internal("error while deleting channel")
	}
	return nil
}

// JoinChannel applies the channel-type policy:
//
//	PUBLIC            always allowed
//	PRIVATE           rejected unless already a member
//	DIRECT            rejected always
//	LEVEL_RESTRICTED  requester rank must meet the channel minimum
//
// Re-join by an existing member short-circuits to idempotent success and
// skips the type rule. The bool reports whether a membership row was created.
func (uc *ChatUsecase) JoinChannel(ctx context.Context, actor chat.Identity, channelID uuid.UUID) (*chat.MemberDTO, bool, error) {
	ch, err := uc.repo.FindChannelByID(ctx, channelID)
	if err != nil {
		if errors.Is(err, repository.ErrChannelNotFound) {
			return nil, false, errors.ErrChannelNotFound
		}
		uc.logger.Error("database error fetching channel", "err", err)
		return nil, false, errors.Internal("internal server error")
	}

	if m, err := uc.repo.FindMembership(ctx, channelID, actor.UserID); err == nil {
		return chat.MemberToDTO(m), false, nil
	} else if !errors.Is(err, repository.ErrMembershipNotFound) {
		uc.logger.Error("database error fetching membership", "err", err)
		return nil, false, errors.Internal("internal server error")
	}

	switch ch.Type {
	case models.ChannelPrivate:
		return nil, false, errors.ErrPrivateChannel
	case models.ChannelDirect:
		return nil, false, errors.ErrDirectChannel
	case models.ChannelLevelRestricted:
		if ch.MinRank != nil && !actor.Rank.AtLeast(*ch.MinRank) {
			return nil, false, errors.ErrRankTooLow
		}
	}

	m := &models.ChannelMember{
		ChannelID: channelID,
		UserID:    actor.UserID,
		Role:      models.RoleMember,
		JoinedAt:  time.Now(),
	}
	created, err := uc.repo.CreateMembership(ctx, m)
	if err != nil {
		uc.logger.Errorf("error while creating membership in db: %v", err)
		return nil, false, errors.Internal("failed to join channel")
	}
	if !created {
		// Lost a concurrent join race; the row exists now.
		existing, err := uc.repo.FindMembership(ctx, channelID, actor.UserID)
		if err != nil {
			return nil, false, errors.Internal("failed to join channel")
		}
		return chat.MemberToDTO(existing), false, nil
	}
	return chat.MemberToDTO(m), true, nil
}

func (uc *ChatUsecase) LeaveChannel(ctx context.Context, channelID, userID uuid.UUID) error {
	m, err := uc.repo.FindMembership(ctx, channelID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrMembershipNotFound) {
			return errors.ErrMembershipMissed
		}
		return errors.Internal("internal server error")
	}

	// Ownership must be transferred before an owner may leave. No transfer
	// primitive exists yet, so the leave stays blocked for owners.
	if m.Role == models.RoleOwner {
		return errors.ErrOwnerCannotLeave
	}

	if err := uc.repo.DeleteMembership(ctx, channelID, userID); err != nil {
		uc.logger.Errorf("error while deleting membership in db: %v", err)
		return errors.Internal("failed to leave channel")
	}
	return nil
}

func (uc *ChatUsecase) GetChannelMembers(ctx context.Context, channelID, userID uuid.UUID) ([]chat.MemberDTO, error) {
	if ok, err := uc.IsMember(ctx, channelID, userID); err != nil {
		return nil, err
	} else if !ok {
		return nil, errors.ErrNotMember
	}

	members, err := uc.repo.ListMembers(ctx, channelID)
	if err != nil {
		uc.logger.Error("database error listing members", "err", err)
		return nil, errors.Internal("internal server error")
	}

	out := make([]chat.MemberDTO, 0, len(members))
	for i := range members {
		out = append(out, *chat.MemberToDTO(&members[i]))
	}
	return out, nil
}

func (uc *ChatUsecase) IsMember(ctx context.Context, channelID, userID uuid.UUID) (bool, error) {
	_, err := uc.repo.FindMembership(ctx, channelID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrMembershipNotFound) {
			return false, nil
		}
		uc.logger.Error("database error fetching membership", "err", err)
		return false, errors.Internal("internal server error")
	}
	return true, nil
}

func (uc *ChatUsecase) SendMessage(ctx context.Context, authorID uuid.UUID, cmd chat.SendMessageCommand) (*chat.MessageDTO, error) {
	if cmd.Content == "" {
		return nil, errors.ErrEmptyContent
	}

	// Membership is checked against the store, not the watch set: REST
	// clients post without ever subscribing.
	if ok, err := uc.IsMember(ctx, cmd.ChannelID, authorID); err != nil {
		return nil, err
	} else if !ok {
		return nil, errors.ErrNotMember
	}

	if cmd.ParentID != nil {
		parent, err := uc.repo.GetMessage(ctx, *cmd.ParentID)
		if err != nil {
			if errors.Is(err, repository.ErrMessageNotFound) {
				return nil, errors.ErrMessageNotFound
			}
			return nil, errors.Internal("internal server error")
		}
		if parent.ChannelID != cmd.ChannelID {
			return nil, errors.ErrParentMismatch
		}
	}

	msgType := cmd.Type
	if msgType == "" {
		msgType = models.MessageText
	}

	msg := &models.Message{
		ChannelID:  cmd.ChannelID,
		AuthorID:   authorID,
		Content:    cmd.Content,
		Type:       msgType,
		ParentID:   cmd.ParentID,
		IsQuestion: cmd.IsQuestion || msgType == models.MessageQuestion,
	}
	if err := uc.repo.CreateMessage(ctx, msg); err != nil {
		uc.logger.Errorf("error while saving message in db: %v", err)
		return nil, errors.ErrSendFailed(errors.Internal("database error"))
	}

	if err := uc.repo.TouchLastRead(ctx, cmd.ChannelID, authorID); err != nil {
		// Last-read is advisory; the send already succeeded.
		uc.logger.Warn("failed to touch last read", "err", err)
	}
	return chat.MessageToDTO(msg), nil
}

func (uc *ChatUsecase) GetMessages(ctx context.Context, channelID, userID uuid.UUID, q chat.HistoryQuery) ([]chat.MessageDTO, error) {
	if ok, err := uc.IsMember(ctx, channelID, userID); err != nil {
		return nil, err
	} else if !ok {
		return nil, errors.ErrNotMember
	}

	msgs, err := uc.repo.ListMessages(ctx, channelID, q)
	if err != nil {
		uc.logger.Error("database error listing messages", "err", err)
		return nil, errors.Internal("internal server error")
	}

	if err := uc.repo.TouchLastRead(ctx, channelID, userID); err != nil {
		uc.logger.Warn("failed to touch last read", "err", err)
	}

	out := make([]chat.MessageDTO, 0, len(msgs))
	for i := range msgs {
		out = append(out, *chat.MessageToDTO(&msgs[i]))
	}
	return out, nil
}

func (uc *ChatUsecase) GetMessage(ctx context.Context, messageID, userID uuid.UUID) (*chat.MessageDTO, error) {
	msg, err := uc.repo.GetMessage(ctx, messageID)
	if err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return nil, errors.ErrMessageNotFound
		}
		return nil, errors.Internal("internal server error")
	}

	if ok, err := uc.IsMember(ctx, msg.ChannelID, userID); err != nil {
		return nil, err
	} else if !ok {
		return nil, errors.ErrNotMember
	}
	return chat.MessageToDTO(msg), nil
}

func (uc *ChatUsecase) EditMessage(ctx context.Context, messageID, actorID uuid.UUID, content string) (*chat.MessageDTO, error) {
	if content == "" {
		return nil, errors.ErrEmptyContent
	}

	msg, err := uc.repo.GetMessage(ctx, messageID)
	if err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return nil, errors.ErrMessageNotFound
		}
		return nil, errors.Internal("internal server error")
	}
	if msg.AuthorID != actorID {
		return nil, errors.ErrNotAuthor
	}
	if msg.IsDeleted {
		return nil, errors.ErrMessageDeleted
	}

	now := time.Now()
	if err := uc.repo.UpdateMessageContent(ctx, messageID, content, now); err != nil {
		uc.logger.Errorf("error while updating message in db: %v", err)
		return nil, errors.Internal("failed to edit message")
	}
	msg.Content = content
	msg.EditedAt = &now
	return chat.MessageToDTO(msg), nil
}

func (uc *ChatUsecase) DeleteMessage(ctx context.Context, messageID, actorID uuid.UUID) error {
	msg, err := uc.repo.GetMessage(ctx, messageID)
	if err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return errors.ErrMessageNotFound
		}
		return errors.Internal("internal server error")
	}

	if msg.AuthorID != actorID {
		m, err := uc.repo.FindMembership(ctx, msg.ChannelID, actorID)
		if err != nil || !m.Role.CanModerate() {
			return errors.ErrCannotDelete
		}
	}

	if err := uc.repo.SoftDeleteMessage(ctx, messageID); err != nil {
		uc.logger.Errorf("error while soft-deleting message in db: %v", err)
		return errors.Internal("failed to delete message")
	}
	return nil
}

func (uc *ChatUsecase) SetPinned(ctx context.Context, messageID, actorID uuid.UUID, pinned bool) (*chat.MessageDTO, error) {
	msg, err := uc.repo.GetMessage(ctx, messageID)
	if err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return nil, errors.ErrMessageNotFound
		}
		return nil, errors.Internal("internal server error")
	}

	m, err := uc.repo.FindMembership(ctx, msg.ChannelID, actorID)
	if err != nil || !m.Role.CanModerate() {
		return nil, errors.ErrNotChannelAdmin
	}

	if err := uc.repo.SetMessagePinned(ctx, messageID, pinned); err != nil {
		uc.logger.Errorf("error while pinning message in db: %v", err)
		return nil, errors.Internal("failed to pin message")
	}
	msg.IsPinned = pinned
	return chat.MessageToDTO(msg), nil
}

func (uc *ChatUsecase) MarkAsAnswer(ctx context.Context, messageID, actorID uuid.UUID) (*chat.MessageDTO, error) {
	msg, err := uc.repo.GetMessage(ctx, messageID)
	if err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return nil, errors.ErrMessageNotFound
		}
		return nil, errors.Internal("internal server error")
	}
	if msg.ParentID == nil {
		return nil, errors.ErrNotAReply
	}

	parent, err := uc.repo.GetMessage(ctx, *msg.ParentID)
	if err != nil {
		return nil, errors.Internal("internal server error")
	}
	if !parent.IsQuestion {
		return nil, errors.ErrNotAQuestion
	}
	if parent.AuthorID != actorID {
		return nil, errors.ErrNotQuestionAuthor
	}

	if err := uc.repo.MarkAnswered(ctx, parent.ID); err != nil {
		uc.logger.Errorf("error while marking answer in db: %v", err)
		return nil, errors.Internal("failed to mark answer")
	}
	return chat.MessageToDTO(msg), nil
}
