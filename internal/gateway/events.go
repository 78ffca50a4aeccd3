package gateway

import (
	"encoding/json"
	"time"

	"campuschat/internal/chat"
	"campuschat/internal/chat/model"

	"github.com/google/uuid"
)

// Event is a server-to-client frame.
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// Command is a client-to-server frame; Data stays raw until dispatch.
type Command struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// Client command types.
const (
	CmdAuth           = "auth"
	CmdJoinChannel    = "join_channel"
	CmdLeaveChannel   = "leave_channel"
	CmdSendMessage    = "send_message"
	CmdTyping         = "typing"
	CmdGetOnlineUsers = "get_online_users"
)

// Server event types.
const (
	EventConnected     = "connected"
	EventError         = "error"
	EventChannelJoined = "channel_joined"
	EventUserJoined    = "user_joined"
	EventUserLeft      = "user_left"
	EventNewMessage    = "new_message"
	EventTyping        = "typing_indicator"
	EventOnlineUsers   = "online_users"
)

// Command payloads.
type AuthPayload struct {
	Token string `json:"token"`
}

type ChannelPayload struct {
	ChannelID uuid.UUID `json:"channelId"`
}

type SendMessagePayload struct {
	ChannelID  uuid.UUID         `json:"channelId"`
	Content    string            `json:"content"`
	Type       model.MessageType `json:"type,omitempty"`
	ParentID   *uuid.UUID        `json:"parentId,omitempty"`
	IsQuestion bool              `json:"isQuestion,omitempty"`
}

type TypingPayload struct {
	ChannelID uuid.UUID `json:"channelId"`
	IsTyping  bool      `json:"isTyping"`
}

// Event payloads.
type UserRef struct {
	ID   uuid.UUID  `json:"id"`
	Name string     `json:"name"`
	Rank model.Rank `json:"rank,omitempty"`
}

func userRefOf(identity chat.Identity) UserRef {
	return UserRef{
		ID:   identity.UserID,
		Name: identity.DisplayName(),
		Rank: identity.Rank,
	}
}

type ConnectedPayload struct {
	UserID  uuid.UUID `json:"userId"`
	Message string    `json:"message"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}

type ChannelJoinedPayload struct {
	ChannelID uuid.UUID         `json:"channelId"`
	Messages  []chat.MessageDTO `json:"messages"`
	Members   []chat.MemberDTO  `json:"members"`
}

type PresencePayload struct {
	ChannelID uuid.UUID `json:"channelId"`
	User      UserRef   `json:"user"`
	Timestamp time.Time `json:"timestamp"`
}

type NewMessagePayload struct {
	chat.MessageDTO
	Timestamp time.Time `json:"timestamp"`
}

type TypingIndicatorPayload struct {
	ChannelID uuid.UUID `json:"channelId"`
	User      UserRef   `json:"user"`
	IsTyping  bool      `json:"isTyping"`
	Timestamp time.Time `json:"timestamp"`
}

type OnlineUsersPayload struct {
	ChannelID uuid.UUID `json:"channelId"`
	Users     []UserRef `json:"users"`
}
