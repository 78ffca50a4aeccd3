package chat

import (
	"strings"
	"time"

	"campuschat/internal/chat/model"

	"github.com/google/uuid"
)

// NOTE: commands travel from handler to usecase
// Note: DTO travels from usecase to handler

// Identity is the verified principal attached to a connection or request.
type Identity struct {
	UserID uuid.UUID
	Email  string
	Rank   model.Rank
}

// DisplayName derives a short handle until profile data is wired in.
func (i Identity) DisplayName() string {
	if at := strings.IndexByte(i.Email, '@'); at > 0 {
		return i.Email[:at]
	}
	return i.Email
}

// Input commands
type CreateChannelCommand struct {
	Name        string
	Slug        string
	Description string
	Type        model.ChannelType
	MinRank     *model.Rank
	IsDefault   bool
	Icon        string
}

type UpdateChannelCommand struct {
	Name        *string
	Slug        *string
	Description *string
	Type        *model.ChannelType
	MinRank     *model.Rank
	IsDefault   *bool
	Icon        *string
}

type SendMessageCommand struct {
	ChannelID  uuid.UUID
	Content    string
	Type       model.MessageType
	ParentID   *uuid.UUID
	IsQuestion bool
}

// HistoryQuery pages a channel's messages by creation time.
type HistoryQuery struct {
	Limit  int
	Before *time.Time
	After  *time.Time
}

// Output DTOs
type ChannelDTO struct {
	ID          uuid.UUID         `json:"id"`
	Name        string            `json:"name"`
	Slug        string            `json:"slug"`
	Description string            `json:"description,omitempty"`
	Type        model.ChannelType `json:"type"`
	MinRank     *model.Rank       `json:"minRank,omitempty"`
	IsDefault   bool              `json:"isDefault"`
	Icon        string            `json:"icon,omitempty"`
	IsMember    bool              `json:"isMember"`
	MyRole      *model.Role       `json:"myRole,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
}

type MemberDTO struct {
	ChannelID  uuid.UUID  `json:"channelId"`
	UserID     uuid.UUID  `json:"userId"`
	Role       model.Role `json:"role"`
	JoinedAt   time.Time  `json:"joinedAt"`
	LastReadAt time.Time  `json:"lastReadAt"`
	IsOnline   bool       `json:"isOnline"`
}

type MessageDTO struct {
	ID         uuid.UUID         `json:"id"`
	ChannelID  uuid.UUID         `json:"channelId"`
	AuthorID   uuid.UUID         `json:"authorId"`
	Content    string            `json:"content"`
	Type       model.MessageType `json:"type"`
	ParentID   *uuid.UUID        `json:"parentId,omitempty"`
	IsDeleted  bool              `json:"isDeleted"`
	IsPinned   bool              `json:"isPinned"`
	IsQuestion bool              `json:"isQuestion"`
	IsAnswered bool              `json:"isAnswered"`
	EditedAt   *time.Time        `json:"editedAt,omitempty"`
	CreatedAt  time.Time         `json:"createdAt"`
}

func ChannelToDTO(ch *model.Channel, m *model.ChannelMember) *ChannelDTO {
	dto := &ChannelDTO{
		ID:          ch.ID,
		Name:        ch.Name,
		Slug:        ch.Slug,
		Description: ch.Description,
		Type:        ch.Type,
		MinRank:     ch.MinRank,
		IsDefault:   ch.IsDefault,
		Icon:        ch.Icon,
		CreatedAt:   ch.CreatedAt,
	}
	if m != nil {
		dto.IsMember = true
		role := m.Role
		dto.MyRole = &role
	}
	return dto
}

func MemberToDTO(m *model.ChannelMember) *MemberDTO {
	return &MemberDTO{
		ChannelID:  m.ChannelID,
		UserID:     m.UserID,
		Role:       m.Role,
		JoinedAt:   m.JoinedAt,
		LastReadAt: m.LastReadAt,
	}
}

func MessageToDTO(msg *model.Message) *MessageDTO {
	return &MessageDTO{
		ID:         msg.ID,
		ChannelID:  msg.ChannelID,
		AuthorID:   msg.AuthorID,
		Content:    msg.Content,
		Type:       msg.Type,
		ParentID:   msg.ParentID,
		IsDeleted:  msg.IsDeleted,
		IsPinned:   msg.IsPinned,
		IsQuestion: msg.IsQuestion,
		IsAnswered: msg.IsAnswered,
		EditedAt:   msg.EditedAt,
		CreatedAt:  msg.CreatedAt,
	}
}
