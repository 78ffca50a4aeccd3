package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"campuschat/config"
	"campuschat/internal/chat"
	"campuschat/internal/chat/mocks"
	models "campuschat/internal/chat/model"
	"campuschat/internal/chat/repository"
	appErrors "campuschat/pkg/errors"
	"campuschat/pkg/logger"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUsecase(t *testing.T) (*ChatUsecase, *mocks.MockChatRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockChatRepository(ctrl)

	cfg := config.Config{}
	lg, _ := logger.NewLogger(&cfg)
	return NewChatUsecase(mockRepo, *lg, cfg), mockRepo
}

func seniorRank() *models.Rank {
	r := models.RankSenior
	return &r
}

func TestChatUsecase_JoinChannel(t *testing.T) {
	channelID := uuid.New()
	userID := uuid.New()

	junior := chat.Identity{UserID: userID, Email: "junior@campus.dev", Rank: models.RankJunior}
	senior := chat.Identity{UserID: userID, Email: "senior@campus.dev", Rank: models.RankSenior}
	master := chat.Identity{UserID: userID, Email: "master@campus.dev", Rank: models.RankMaster}

	publicChannel := &models.Channel{ID: channelID, Name: "general", Slug: "general", Type: models.ChannelPublic}
	privateChannel := &models.Channel{ID: channelID, Name: "staff", Slug: "staff", Type: models.ChannelPrivate}
	directChannel := &models.Channel{ID: channelID, Name: "dm", Slug: "dm", Type: models.ChannelDirect}
	restrictedChannel := &models.Channel{
		ID: channelID, Name: "seniors", Slug: "seniors",
		Type: models.ChannelLevelRestricted, MinRank: seniorRank(),
	}

	existingMember := &models.ChannelMember{
		ChannelID: channelID,
		UserID:    userID,
		Role:      models.RoleMember,
		JoinedAt:  time.Now(),
	}

	t.Run("happy path - first join of public channel", func(t *testing.T) {
		uc, mockRepo := newTestUsecase(t)

		g := mockRepo.EXPECT()
		g.FindChannelByID(gomock.Any(), channelID).Return(publicChannel, nil)
		g.FindMembership(gomock.Any(), channelID, userID).Return(nil, repository.ErrMembershipNotFound)
		g.CreateMembership(gomock.Any(), gomock.Any()).Return(true, nil)

		member, created, err := uc.JoinChannel(context.Background(), junior, channelID)
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, userID, member.UserID)
		assert.Equal(t, models.RoleMember, member.Role)
	})

	t.Run("happy path - re-join is idempotent and skips the type rule", func(t *testing.T) {
		uc, mockRepo := newTestUsecase(t)

		g := mockRepo.EXPECT()
		g.FindChannelByID(gomock.Any(), channelID).Return(privateChannel, nil)
		g.FindMembership(gomock.Any(), channelID, userID).Return(existingMember, nil)

		member, created, err := uc.JoinChannel(context.Background(), junior, channelID)
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, userID, member.UserID)
	})

	t.Run("sad path - private channel rejects non-members", func(t *testing.T) {
		uc, mockRepo := newTestUsecase(t)

		g := mockRepo.EXPECT()
		g.FindChannelByID(gomock.Any(), channelID).Return(privateChannel, nil)
		g.FindMembership(gomock.Any(), channelID, userID).Return(nil, repository.ErrMembershipNotFound)

		_, _, err := uc.JoinChannel(context.Background(), master, channelID)
		assert.Equal(t, appErrors.ErrPrivateChannel, err)
	})

	t.Run("sad path - direct channel is never joinable", func(t *testing.T) {
		uc, mockRepo := newTestUsecase(t)

		g := mockRepo.EXPECT()
		g.FindChannelByID(gomock.Any(), channelID).Return(directChannel, nil)
		g.FindMembership(gomock.Any(), channelID, userID).Return(nil, repository.ErrMembershipNotFound)

		_, _, err := uc.JoinChannel(context.Background(), master, channelID)
		assert.Equal(t, appErrors.ErrDirectChannel, err)
	})

	t.Run("sad path - junior rejected from senior channel", func(t *testing.T) {
		uc, mockRepo := newTestUsecase(t)

		g := mockRepo.EXPECT()
		g.FindChannelByID(gomock.Any(), channelID).Return(restrictedChannel, nil)
		g.FindMembership(gomock.Any(), channelID, userID).Return(nil, repository.ErrMembershipNotFound)

		_, _, err := uc.JoinChannel(context.Background(), junior, channelID)
		assert.Equal(t, appErrors.ErrRankTooLow, err)
	})

	t.Run("happy path - senior accepted into senior channel", func(t *testing.T) {
		uc, mockRepo := newTestUsecase(t)

		g := mockRepo.EXPECT()
		g.FindChannelByID(gomock.Any(), channelID).Return(restrictedChannel, nil)
		g.FindMembership(gomock.Any(), channelID, userID).Return(nil, repository.ErrMembershipNotFound)
		g.CreateMembership(gomock.Any(), gomock.Any()).Return(true, nil)

		_, created, err := uc.JoinChannel(context.Background(), senior, channelID)
		require.NoError(t, err)
		assert.True(t, created)
	})

	t.Run("happy path - master accepted into senior channel", func(t *testing.T) {
		uc, mockRepo := newTestUsecase(t)

		g := mockRepo.EXPECT()
		g.FindChannelByID(gomock.Any(), channelID).Return(restrictedChannel, nil)
		g.FindMembership(gomock.Any(), channelID, userID).Return(nil, repository.ErrMembershipNotFound)
		g.CreateMembership(gomock.Any(), gomock.Any()).Return(true, nil)

		_, created, err := uc.JoinChannel(context.Background(), master, channelID)
		require.NoError(t, err)
		assert.True(t, created)
	})

	t.Run("lost concurrent join race still reports created=false", func(t *testing.T) {
		uc, mockRepo := newTestUsecase(t)

		g := mockRepo.EXPECT()
		g.FindChannelByID(gomock.Any(), channelID).Return(publicChannel, nil)
		g.FindMembership(gomock.Any(), channelID, userID).Return(nil, repository.ErrMembershipNotFound)
		g.CreateMembership(gomock.Any(), gomock.Any()).Return(false, nil)
		g.FindMembership(gomock.Any(), channelID, userID).Return(existingMember, nil)

		member, created, err := uc.JoinChannel(context.Background(), junior, channelID)
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, userID, member.UserID)
	})

	t.Run("sad path - channel not found", func(t *testing.T) {
		uc, mockRepo := newTestUsecase(t)

		mockRepo.EXPECT().
			FindChannelByID(gomock.Any(), channelID).
			Return(nil, repository.ErrChannelNotFound)

		_, _, err := uc.JoinChannel(context.Background(), junior, channelID)
		assert.Equal(t, appErrors.ErrChannelNotFound, err)
	})
}

func TestChatUsecase_LeaveChannel(t *testing.T) {
	channelID := uuid.New()
	userID := uuid.New()

	t.Run("happy path - member leaves", func(t *testing.T) {
		uc, mockRepo := newTestUsecase(t)

		g := mockRepo.EXPECT()
		g.FindMembership(gomock.Any(), channelID, userID).
			Return(&models.ChannelMember{ChannelID: channelID, UserID: userID, Role: models.RoleMember}, nil)
		g.DeleteMembership(gomock.Any(), channelID, userID).Return(nil)

		err := uc.LeaveChannel(context.Background(), channelID, userID)
		require.NoError(t, err)
	})

	t.Run("sad path - owner cannot leave", func(t *testing.T) {
		uc, mockRepo := newTestUsecase(t)

		mockRepo.EXPECT().
			FindMembership(gomock.Any(), channelID, userID).
			Return(&models.ChannelMember{ChannelID: channelID, UserID: userID, Role: models.RoleOwner}, nil)

		err := uc.LeaveChannel(context.Background(), channelID, userID)
		assert.Equal(t, appErrors.ErrOwnerCannotLeave, err)
	})

	t.Run("sad path - not a member", func(t *testing.T) {
		uc, mockRepo := newTestUsecase(t)

		mockRepo.EXPECT().
			FindMembership(gomock.Any(), channelID, userID).
			Return(nil, repository.ErrMembershipNotFound)

		err := uc.LeaveChannel(context.Background(), channelID, userID)
		assert.Equal(t, appErrors.ErrMembershipMissed, err)
	})
}

func TestChatUsecase_CreateChannel(t *testing.T) {
	actor := chat.Identity{UserID: uuid.New(), Email: "owner@campus.dev", Rank: models.RankSenior}

	cmd := chat.CreateChannelCommand{
		Name: "General",
		Slug: "general",
		Type: models.ChannelPublic,
	}

	t.Run("happy path - valid channel", func(t *testing.T) {
		uc, mockRepo := newTestUsecase(t)

		g := mockRepo.EXPECT()
		g.FindChannelBySlug(gomock.Any(), "general").Return(nil, repository.ErrChannelNotFound)
		g.CreateChannel(gomock.Any(), gomock.Any(), actor.UserID).Return(nil)

		dto, err := uc.CreateChannel(context.Background(), actor, cmd)
		require.NoError(t, err)
		require.NotNil(t, dto)
		assert.Equal(t, "general", dto.Slug)
		assert.True(t, dto.IsMember)
		require.NotNil(t, dto.MyRole)
		assert.Equal(t, models.RoleOwner, *dto.MyRole)
	})

	t.Run("sad path - duplicate slug", func(t *testing.T) {
		uc, mockRepo := newTestUsecase(t)

		mockRepo.EXPECT().
			FindChannelBySlug(gomock.Any(), "general").
			Return(&models.Channel{Slug: "general"}, nil)

		dto, err := uc.CreateChannel(context.Background(), actor, cmd)
		assert.Equal(t, appErrors.ErrSlugTaken, err)
		assert.Nil(t, dto)
	})

	t.Run("sad path - invalid slug", func(t *testing.T) {
		uc, _ := newTestUsecase(t)

		badCmd := cmd
		badCmd.Slug = "Not A Slug"

		dto, err := uc.CreateChannel(context.Background(), actor, badCmd)
		assert.Equal(t, appErrors.ErrInvalidSlug, err)
		assert.Nil(t, dto)
	})

	t.Run("sad path - db down", func(t *testing.T) {
		uc, mockRepo := newTestUsecase(t)

		mockRepo.EXPECT().
			FindChannelBySlug(gomock.Any(), "general").
			Return(nil, errors.New("db down"))

		dto, err := uc.CreateChannel(context.Background(), actor, cmd)
		require.Error(t, err)
		assert.Nil(t, dto)
	})
}

func TestChatUsecase_SendMessage(t *testing.T) {
	channelID := uuid.New()
	authorID := uuid.New()

	member := &models.ChannelMember{ChannelID: channelID, UserID: authorID, Role: models.RoleMember}

	cmd := chat.SendMessageCommand{
		ChannelID: channelID,
		Content:   "hello world",
	}

	t.Run("happy path - message stored and last-read touched", func(t *testing.T) {
		uc, mockRepo := newTestUsecase(t)

		g := mockRepo.EXPECT()
		g.FindMembership(gomock.Any(), channelID, authorID).Return(member, nil)
		g.CreateMessage(gomock.Any(), gomock.Any()).Return(nil)
		g.TouchLastRead(gomock.Any(), channelID, authorID).Return(nil)

		dto, err := uc.SendMessage(context.Background(), authorID, cmd)
		require.NoError(t, err)
		assert.Equal(t, channelID, dto.ChannelID)
		assert.Equal(t, authorID, dto.AuthorID)
		assert.Equal(t, models.MessageText, dto.Type)
	})

	t.Run("sad path - not a member", func(t *testing.T) {
		uc, mockRepo := newTestUsecase(t)

		mockRepo.EXPECT().
			FindMembership(gomock.Any(), channelID, authorID).
			Return(nil, repository.ErrMembershipNotFound)

		_, err := uc.SendMessage(context.Background(), authorID, cmd)
		assert.Equal(t, appErrors.ErrNotMember, err)
	})

	t.Run("sad path - empty content", func(t *testing.T) {
		uc, _ := newTestUsecase(t)

		emptyCmd := cmd
		emptyCmd.Content = ""

		_, err := uc.SendMessage(context.Background(), authorID, emptyCmd)
		assert.Equal(t, appErrors.ErrEmptyContent, err)
	})

	t.Run("sad path - parent in another channel", func(t *testing.T) {
		uc, mockRepo := newTestUsecase(t)

		parentID := uuid.New()
		threadCmd := cmd
		threadCmd.ParentID = &parentID

		g := mockRepo.EXPECT()
		g.FindMembership(gomock.Any(), channelID, authorID).Return(member, nil)
		g.GetMessage(gomock.Any(), parentID).
			Return(&models.Message{ID: parentID, ChannelID: uuid.New()}, nil)

		_, err := uc.SendMessage(context.Background(), authorID, threadCmd)
		assert.Equal(t, appErrors.ErrParentMismatch, err)
	})
}

func TestChatUsecase_DeleteMessage(t *testing.T) {
	channelID := uuid.New()
	authorID := uuid.New()
	otherID := uuid.New()
	messageID := uuid.New()

	msg := &models.Message{ID: messageID, ChannelID: channelID, AuthorID: authorID, Content: "hi"}

	t.Run("happy path - author soft deletes", func(t *testing.T) {
		uc, mockRepo := newTestUsecase(t)

		g := mockRepo.EXPECT()
		g.GetMessage(gomock.Any(), messageID).Return(msg, nil)
		g.SoftDeleteMessage(gomock.Any(), messageID).Return(nil)

		err := uc.DeleteMessage(context.Background(), messageID, authorID)
		require.NoError(t, err)
	})

	t.Run("happy path - channel admin deletes someone else's message", func(t *testing.T) {
		uc, mockRepo := newTestUsecase(t)

		g := mockRepo.EXPECT()
		g.GetMessage(gomock.Any(), messageID).Return(msg, nil)
		g.FindMembership(gomock.Any(), channelID, otherID).
			Return(&models.ChannelMember{ChannelID: channelID, UserID: otherID, Role: models.RoleAdmin}, nil)
		g.SoftDeleteMessage(gomock.Any(), messageID).Return(nil)

		err := uc.DeleteMessage(context.Background(), messageID, otherID)
		require.NoError(t, err)
	})

	t.Run("sad path - plain member cannot delete others' messages", func(t *testing.T) {
		uc, mockRepo := newTestUsecase(t)

		g := mockRepo.EXPECT()
		g.GetMessage(gomock.Any(), messageID).Return(msg, nil)
		g.FindMembership(gomock.Any(), channelID, otherID).
			Return(&models.ChannelMember{ChannelID: channelID, UserID: otherID, Role: models.RoleMember}, nil)

		err := uc.DeleteMessage(context.Background(), messageID, otherID)
		assert.Equal(t, appErrors.ErrCannotDelete, err)
	})
}

func TestChatUsecase_EditMessage(t *testing.T) {
	channelID := uuid.New()
	authorID := uuid.New()
	messageID := uuid.New()

	t.Run("happy path - author edits", func(t *testing.T) {
		uc, mockRepo := newTestUsecase(t)

		g := mockRepo.EXPECT()
		g.GetMessage(gomock.Any(), messageID).
			Return(&models.Message{ID: messageID, ChannelID: channelID, AuthorID: authorID, Content: "old"}, nil)
		g.UpdateMessageContent(gomock.Any(), messageID, "new", gomock.Any()).Return(nil)

		dto, err := uc.EditMessage(context.Background(), messageID, authorID, "new")
		require.NoError(t, err)
		assert.Equal(t, "new", dto.Content)
		assert.NotNil(t, dto.EditedAt)
	})

	t.Run("sad path - not the author", func(t *testing.T) {
		uc, mockRepo := newTestUsecase(t)

		mockRepo.EXPECT().
			GetMessage(gomock.Any(), messageID).
			Return(&models.Message{ID: messageID, ChannelID: channelID, AuthorID: authorID}, nil)

		_, err := uc.EditMessage(context.Background(), messageID, uuid.New(), "new")
		assert.Equal(t, appErrors.ErrNotAuthor, err)
	})

	t.Run("sad path - deleted message is frozen", func(t *testing.T) {
		uc, mockRepo := newTestUsecase(t)

		mockRepo.EXPECT().
			GetMessage(gomock.Any(), messageID).
			Return(&models.Message{ID: messageID, ChannelID: channelID, AuthorID: authorID, IsDeleted: true}, nil)

		_, err := uc.EditMessage(context.Background(), messageID, authorID, "new")
		assert.Equal(t, appErrors.ErrMessageDeleted, err)
	})
}

func TestChatUsecase_MarkAsAnswer(t *testing.T) {
	channelID := uuid.New()
	askerID := uuid.New()
	answererID := uuid.New()
	questionID := uuid.New()
	answerID := uuid.New()

	question := &models.Message{ID: questionID, ChannelID: channelID, AuthorID: askerID, IsQuestion: true}
	answer := &models.Message{ID: answerID, ChannelID: channelID, AuthorID: answererID, ParentID: &questionID}

	t.Run("happy path - question author marks the answer", func(t *testing.T) {
		uc, mockRepo := newTestUsecase(t)

		g := mockRepo.EXPECT()
		g.GetMessage(gomock.Any(), answerID).Return(answer, nil)
		g.GetMessage(gomock.Any(), questionID).Return(question, nil)
		g.MarkAnswered(gomock.Any(), questionID).Return(nil)

		dto, err := uc.MarkAsAnswer(context.Background(), answerID, askerID)
		require.NoError(t, err)
		assert.Equal(t, answerID, dto.ID)
	})

	t.Run("sad path - not a reply", func(t *testing.T) {
		uc, mockRepo := newTestUsecase(t)

		mockRepo.EXPECT().
			GetMessage(gomock.Any(), questionID).
			Return(question, nil)

		_, err := uc.MarkAsAnswer(context.Background(), questionID, askerID)
		assert.Equal(t, appErrors.ErrNotAReply, err)
	})

	t.Run("sad path - parent is not a question", func(t *testing.T) {
		uc, mockRepo := newTestUsecase(t)

		plainParent := &models.Message{ID: questionID, ChannelID: channelID, AuthorID: askerID}

		g := mockRepo.EXPECT()
		g.GetMessage(gomock.Any(), answerID).Return(answer, nil)
		g.GetMessage(gomock.Any(), questionID).Return(plainParent, nil)

		_, err := uc.MarkAsAnswer(context.Background(), answerID, askerID)
		assert.Equal(t, appErrors.ErrNotAQuestion, err)
	})

	t.Run("sad path - only the asker may mark", func(t *testing.T) {
		uc, mockRepo := newTestUsecase(t)

		g := mockRepo.EXPECT()
		g.GetMessage(gomock.Any(), answerID).Return(answer, nil)
		g.GetMessage(gomock.Any(), questionID).Return(question, nil)

		_, err := uc.MarkAsAnswer(context.Background(), answerID, answererID)
		assert.Equal(t, appErrors.ErrNotQuestionAuthor, err)
	})
}

func TestChatUsecase_GetMessage(t *testing.T) {
	channelID := uuid.New()
	userID := uuid.New()
	messageID := uuid.New()

	t.Run("soft-deleted rows are still returned directly", func(t *testing.T) {
		uc, mockRepo := newTestUsecase(t)

		g := mockRepo.EXPECT()
		g.GetMessage(gomock.Any(), messageID).
			Return(&models.Message{ID: messageID, ChannelID: channelID, AuthorID: userID, IsDeleted: true}, nil)
		g.FindMembership(gomock.Any(), channelID, userID).
			Return(&models.ChannelMember{ChannelID: channelID, UserID: userID, Role: models.RoleMember}, nil)

		dto, err := uc.GetMessage(context.Background(), messageID, userID)
		require.NoError(t, err)
		assert.True(t, dto.IsDeleted)
	})
}
