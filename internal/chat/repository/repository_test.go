package repository

import (
	"context"
	"database/sql"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"testing"

	"campuschat/internal/chat"
	models "campuschat/internal/chat/model"
	"campuschat/pkg/logger"
)

var (
	testDB      *bun.DB
	pgContainer *postgres.PostgresContainer
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	dbName := "campuschat"
	dbUser := "campuschat"
	dbPassword := "password"

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		log.Printf("failed to start container: %s", err)
		return
	}
	pgContainer = postgresContainer

	defer func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			log.Printf("failed to terminate container: %s", err)
		}
	}()

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable", "application_name=test")
	if err != nil {
		log.Printf("failed to get connections string, %v", err)
	}

	connector := pgdriver.NewConnector(pgdriver.WithDSN(connStr))
	sqlDB := sql.OpenDB(connector)
	testDB = bun.NewDB(sqlDB, pgdialect.New())

	if err := sqlDB.PingContext(ctx); err != nil {
		log.Fatalf("failed to ping db: %v", err)
	}

	tables := []any{
		(*models.Channel)(nil),
		(*models.ChannelMember)(nil),
		(*models.Message)(nil),
	}

	for _, t := range tables {
		if _, err := testDB.NewCreateTable().Model(t).IfNotExists().Exec(ctx); err != nil {
			testDB.Close()
			log.Fatalf("failed to create table for %T: %v", t, err)
		}
	}

	code := m.Run()

	testDB.Close()

	os.Exit(code)
}

func truncateAll(t *testing.T) {
	t.Helper()
	for _, table := range []string{"messages", "channel_members", "channels"} {
		_, err := testDB.ExecContext(context.Background(), `TRUNCATE TABLE `+table+` CASCADE`)
		require.NoError(t, err)
	}
}

func seedChannel(t *testing.T, repo *ChatRepository, slug string, chType models.ChannelType, ownerID uuid.UUID) *models.Channel {
	t.Helper()
	ch := &models.Channel{Name: slug, Slug: slug, Type: chType}
	require.NoError(t, repo.CreateChannel(t.Context(), ch, ownerID))
	return ch
}

func Test_ChannelLifecycle(t *testing.T) {
	t.Cleanup(func() { truncateAll(t) })

	repo := NewChatRepository(testDB, logger.Logger{})
	ownerID := uuid.New()

	ch := seedChannel(t, repo, "general", models.ChannelPublic, ownerID)
	require.NotEqual(t, uuid.Nil, ch.ID, "id assigned by db")

	t.Run("creating a channel seeds the owner membership", func(t *testing.T) {
		member, err := repo.FindMembership(t.Context(), ch.ID, ownerID)
		require.NoError(t, err)
		assert.Equal(t, models.RoleOwner, member.Role)
		assert.False(t, member.JoinedAt.IsZero())
	})

	t.Run("find by id and by slug", func(t *testing.T) {
		byID, err := repo.FindChannelByID(t.Context(), ch.ID)
		require.NoError(t, err)
		assert.Equal(t, "general", byID.Slug)

		bySlug, err := repo.FindChannelBySlug(t.Context(), "general")
		require.NoError(t, err)
		assert.Equal(t, ch.ID, bySlug.ID)
	})

	t.Run("missing channels map to the sentinel", func(t *testing.T) {
		_, err := repo.FindChannelByID(t.Context(), uuid.New())
		assert.ErrorIs(t, err, ErrChannelNotFound)

		_, err = repo.FindChannelBySlug(t.Context(), "no-such-slug")
		assert.ErrorIs(t, err, ErrChannelNotFound)
	})

	t.Run("duplicate slug is rejected by the unique index", func(t *testing.T) {
		dup := &models.Channel{Name: "general2", Slug: "general", Type: models.ChannelPublic}
		err := repo.CreateChannel(t.Context(), dup, uuid.New())
		require.Error(t, err)

		// The failed transaction must not leave an orphan owner row behind.
		members, err := repo.ListMembershipsOf(t.Context(), ownerID)
		require.NoError(t, err)
		assert.Len(t, members, 1)
	})

	t.Run("update persists selected columns", func(t *testing.T) {
		ch.Name = "General Discussion"
		ch.Description = "everything goes"
		ch.UpdatedAt = time.Now()
		require.NoError(t, repo.UpdateChannel(t.Context(), ch))

		got, err := repo.FindChannelByID(t.Context(), ch.ID)
		require.NoError(t, err)
		assert.Equal(t, "General Discussion", got.Name)
		assert.Equal(t, "everything goes", got.Description)
	})

	t.Run("delete removes the channel", func(t *testing.T) {
		require.NoError(t, repo.DeleteChannel(t.Context(), ch.ID))
		_, err := repo.FindChannelByID(t.Context(), ch.ID)
		assert.ErrorIs(t, err, ErrChannelNotFound)
	})
}

func Test_MembershipIdempotence(t *testing.T) {
	t.Cleanup(func() { truncateAll(t) })

	repo := NewChatRepository(testDB, logger.Logger{})
	ch := seedChannel(t, repo, "study-group", models.ChannelPublic, uuid.New())
	userID := uuid.New()

	created, err := repo.CreateMembership(t.Context(), &models.ChannelMember{
		ChannelID: ch.ID, UserID: userID, Role: models.RoleMember,
	})
	require.NoError(t, err)
	assert.True(t, created)

	// The second insert hits the conflict target and changes nothing.
	created, err = repo.CreateMembership(t.Context(), &models.ChannelMember{
		ChannelID: ch.ID, UserID: userID, Role: models.RoleMember,
	})
	require.NoError(t, err)
	assert.False(t, created)

	members, err := repo.ListMembers(t.Context(), ch.ID)
	require.NoError(t, err)
	assert.Len(t, members, 2) // owner + the new member

	require.NoError(t, repo.DeleteMembership(t.Context(), ch.ID, userID))
	_, err = repo.FindMembership(t.Context(), ch.ID, userID)
	assert.ErrorIs(t, err, ErrMembershipNotFound)
}

func Test_TouchLastRead(t *testing.T) {
	t.Cleanup(func() { truncateAll(t) })

	repo := NewChatRepository(testDB, logger.Logger{})
	userID := uuid.New()
	ch := seedChannel(t, repo, "announcements", models.ChannelPublic, userID)

	before, err := repo.FindMembership(t.Context(), ch.ID, userID)
	require.NoError(t, err)
	assert.True(t, before.LastReadAt.IsZero())

	require.NoError(t, repo.TouchLastRead(t.Context(), ch.ID, userID))

	after, err := repo.FindMembership(t.Context(), ch.ID, userID)
	require.NoError(t, err)
	assert.False(t, after.LastReadAt.IsZero())
}

func Test_ListAccessibleChannels(t *testing.T) {
	t.Cleanup(func() { truncateAll(t) })

	repo := NewChatRepository(testDB, logger.Logger{})
	ownerID := uuid.New()
	userID := uuid.New()

	seedChannel(t, repo, "lobby", models.ChannelPublic, ownerID)
	private := seedChannel(t, repo, "staff", models.ChannelPrivate, ownerID)

	senior := models.RankSenior
	restricted := &models.Channel{
		Name: "seniors", Slug: "seniors",
		Type: models.ChannelLevelRestricted, MinRank: &senior,
	}
	require.NoError(t, repo.CreateChannel(t.Context(), restricted, ownerID))

	slugsOf := func(channels []models.Channel) []string {
		out := make([]string, 0, len(channels))
		for _, ch := range channels {
			out = append(out, ch.Slug)
		}
		return out
	}

	t.Run("junior outsider sees only public", func(t *testing.T) {
		channels, err := repo.ListAccessibleChannels(t.Context(), userID, models.RankJunior)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"lobby"}, slugsOf(channels))
	})

	t.Run("senior outsider also sees rank-gated channels", func(t *testing.T) {
		channels, err := repo.ListAccessibleChannels(t.Context(), userID, models.RankSenior)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"lobby", "seniors"}, slugsOf(channels))
	})

	t.Run("membership reveals private channels regardless of rank", func(t *testing.T) {
		_, err := repo.CreateMembership(t.Context(), &models.ChannelMember{
			ChannelID: private.ID, UserID: userID, Role: models.RoleMember,
		})
		require.NoError(t, err)

		channels, err := repo.ListAccessibleChannels(t.Context(), userID, models.RankJunior)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"lobby", "staff"}, slugsOf(channels))
	})
}

func Test_MessageLifecycle(t *testing.T) {
	t.Cleanup(func() { truncateAll(t) })

	repo := NewChatRepository(testDB, logger.Logger{})
	authorID := uuid.New()
	ch := seedChannel(t, repo, "help", models.ChannelPublic, authorID)

	send := func(content string) *models.Message {
		msg := &models.Message{ChannelID: ch.ID, AuthorID: authorID, Content: content, Type: models.MessageText}
		require.NoError(t, repo.CreateMessage(t.Context(), msg))
		return msg
	}

	first := send("first")
	second := send("second")
	third := send("third")

	t.Run("listing is oldest-first", func(t *testing.T) {
		msgs, err := repo.ListMessages(t.Context(), ch.ID, chat.HistoryQuery{Limit: 50})
		require.NoError(t, err)
		require.Len(t, msgs, 3)
		assert.Equal(t, "first", msgs[0].Content)
		assert.Equal(t, "third", msgs[2].Content)
	})

	t.Run("limit keeps the newest page", func(t *testing.T) {
		msgs, err := repo.ListMessages(t.Context(), ch.ID, chat.HistoryQuery{Limit: 2})
		require.NoError(t, err)
		require.Len(t, msgs, 2)
		assert.Equal(t, "second", msgs[0].Content)
		assert.Equal(t, "third", msgs[1].Content)
	})

	t.Run("before and after window the page", func(t *testing.T) {
		msgs, err := repo.ListMessages(t.Context(), ch.ID, chat.HistoryQuery{
			Limit:  50,
			After:  &first.CreatedAt,
			Before: &third.CreatedAt,
		})
		require.NoError(t, err)
		require.Len(t, msgs, 1)
		assert.Equal(t, "second", msgs[0].Content)
	})

	t.Run("soft delete hides from listings but not direct fetch", func(t *testing.T) {
		require.NoError(t, repo.SoftDeleteMessage(t.Context(), second.ID))

		msgs, err := repo.ListMessages(t.Context(), ch.ID, chat.HistoryQuery{Limit: 50})
		require.NoError(t, err)
		assert.Len(t, msgs, 2)

		got, err := repo.GetMessage(t.Context(), second.ID)
		require.NoError(t, err)
		assert.True(t, got.IsDeleted)
		assert.Equal(t, "second", got.Content)
	})

	t.Run("edit updates content and edited_at only", func(t *testing.T) {
		editedAt := time.Now()
		require.NoError(t, repo.UpdateMessageContent(t.Context(), first.ID, "first, edited", editedAt))

		got, err := repo.GetMessage(t.Context(), first.ID)
		require.NoError(t, err)
		assert.Equal(t, "first, edited", got.Content)
		require.NotNil(t, got.EditedAt)
		assert.False(t, got.IsDeleted)
	})

	t.Run("pin and answer flags", func(t *testing.T) {
		require.NoError(t, repo.SetMessagePinned(t.Context(), third.ID, true))
		require.NoError(t, repo.MarkAnswered(t.Context(), third.ID))

		got, err := repo.GetMessage(t.Context(), third.ID)
		require.NoError(t, err)
		assert.True(t, got.IsPinned)
		assert.True(t, got.IsAnswered)

		require.NoError(t, repo.SetMessagePinned(t.Context(), third.ID, false))
		got, err = repo.GetMessage(t.Context(), third.ID)
		require.NoError(t, err)
		assert.False(t, got.IsPinned)
	})

	t.Run("missing message maps to the sentinel", func(t *testing.T) {
		_, err := repo.GetMessage(t.Context(), uuid.New())
		assert.ErrorIs(t, err, ErrMessageNotFound)
	})
}
