package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"campuschat/config"
	"campuschat/internal/auth"
	"campuschat/internal/chat"
	appErrors "campuschat/pkg/errors"
	"campuschat/pkg/logger"

	"github.com/google/uuid"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

// Gateway orchestrates connection lifecycle: authenticate once at
// handshake, register presence, dispatch commands, tear down on
// disconnect. Per connection the states are Connecting -> Authenticated ->
// Disconnected; a reconnect is always a brand-new connection.
type Gateway struct {
	uc       chat.ChatUsecase
	verifier *auth.Verifier
	presence *Presence
	rooms    *Rooms
	logger   logger.Logger
	cfg      config.Gateway
}

func NewGateway(uc chat.ChatUsecase, verifier *auth.Verifier, logger logger.Logger, cfg config.Gateway) *Gateway {
	return &Gateway{
		uc:       uc,
		verifier: verifier,
		presence: NewPresence(),
		rooms:    NewRooms(),
		logger:   logger,
		cfg:      cfg,
	}
}

// Presence exposes the registry for collaborators that annotate online
// status (the REST member listing).
func (g *Gateway) Presence() *Presence { return g.presence }

// HandleWS upgrades the request and runs the connection to completion.
func (g *Gateway) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: g.cfg.OriginPatterns,
	})
	if err != nil {
		return // Accept already wrote the error response
	}

	client := newClient(conn, g.cfg.SendBuffer)

	identity, err := g.authenticate(r.Context(), conn, r)
	if err != nil {
		// All auth failures look identical to the client.
		writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		_ = wsjson.Write(writeCtx, conn, Event{Type: EventError, Data: ErrorPayload{Message: "authentication required"}})
		cancel()
		client.close(websocket.StatusPolicyViolation, "authentication required")
		return
	}

	client.Identity = identity
	g.presence.Register(client.ID, identity)
	g.logger.Info("user connected", "user_id", identity.UserID, "conn_id", client.ID)

	go client.writeLoop()
	go client.keepAliveLoop()

	client.trySend(Event{Type: EventConnected, Data: ConnectedPayload{
		UserID:  identity.UserID,
		Message: "Connected to chat server",
	}})

	g.readLoop(r.Context(), client)
	g.teardown(client)
}

// authenticate resolves the bearer token: header or query first, else it
// waits up to the grace period for a first auth frame. Unauthenticated
// sockets never outlive the grace period.
func (g *Gateway) authenticate(ctx context.Context, conn *websocket.Conn, r *http.Request) (chat.Identity, error) {
	token := auth.TokenFromRequest(r)

	if token == "" {
		graceCtx, cancel := context.WithTimeout(ctx, time.Duration(g.cfg.AuthGraceSeconds)*time.Second)
		defer cancel()

		var cmd Command
		if err := wsjson.Read(graceCtx, conn, &cmd); err != nil {
			return chat.Identity{}, appErrors.ErrAuthRequired
		}
		if cmd.Type != CmdAuth {
			return chat.Identity{}, appErrors.ErrAuthRequired
		}
		var payload AuthPayload
		if err := json.Unmarshal(cmd.Data, &payload); err != nil {
			return chat.Identity{}, appErrors.ErrAuthRequired
		}
		token = payload.Token
	}

	return g.verifier.Verify(token)
}

func (g *Gateway) readLoop(ctx context.Context, c *Client) {
	for {
		var cmd Command
		if err := wsjson.Read(ctx, c.conn, &cmd); err != nil {
			return
		}
		g.dispatch(ctx, c, cmd)
	}
}

// dispatch handles one command. Failures are scoped to this connection:
// an error event goes back to the caller and nothing else changes.
func (g *Gateway) dispatch(ctx context.Context, c *Client, cmd Command) {
	var err error

	switch cmd.Type {
	case CmdJoinChannel:
		var p ChannelPayload
		if err = json.Unmarshal(cmd.Data, &p); err == nil {
			err = g.handleJoin(ctx, c, p.ChannelID)
		}
	case CmdLeaveChannel:
		var p ChannelPayload
		if err = json.Unmarshal(cmd.Data, &p); err == nil {
			g.handleLeave(c, p.ChannelID)
		}
	case CmdSendMessage:
		var p SendMessagePayload
		if err = json.Unmarshal(cmd.Data, &p); err == nil {
			err = g.handleSend(ctx, c, p)
		}
	case CmdTyping:
		var p TypingPayload
		if err = json.Unmarshal(cmd.Data, &p); err == nil {
			g.handleTyping(c, p)
		}
	case CmdGetOnlineUsers:
		var p ChannelPayload
		if err = json.Unmarshal(cmd.Data, &p); err == nil {
			g.handleOnlineUsers(c, p.ChannelID)
		}
	default:
		err = appErrors.InvalidArg("unknown command")
	}

	if err != nil {
		g.logger.Warn("command failed", "type", cmd.Type, "conn_id", c.ID, "err", err)
		c.trySend(Event{Type: EventError, Data: ErrorPayload{Message: appErrors.MessageOf(err)}})
	}
}

func (g *Gateway) handleJoin(ctx context.Context, c *Client, channelID uuid.UUID) error {
	_, created, err := g.uc.JoinChannel(ctx, c.Identity, channelID)
	if err != nil {
		return err
	}

	// Only a genuinely first join announces the user; a re-subscribe by an
	// existing member stays silent. The announcement tracks the membership
	// row, which exists now, so it goes out even if a fetch below fails.
	if created {
		g.rooms.Broadcast(channelID, Event{Type: EventUserJoined, Data: PresencePayload{
			ChannelID: channelID,
			User:      userRefOf(c.Identity),
			Timestamp: time.Now(),
		}}, c.ID)
	}

	messages, err := g.uc.GetMessages(ctx, channelID, c.Identity.UserID, chat.HistoryQuery{Limit: g.cfg.HistoryLimit})
	if err != nil {
		return err
	}
	members, err := g.uc.GetChannelMembers(ctx, channelID, c.Identity.UserID)
	if err != nil {
		return err
	}
	g.AnnotateOnline(members)

	// A rejected subscribe must leave no trace, so watch and room state
	// change only after every fallible step has succeeded.
	g.presence.Watch(c.ID, channelID)
	g.rooms.Join(channelID, c)

	c.trySend(Event{Type: EventChannelJoined, Data: ChannelJoinedPayload{
		ChannelID: channelID,
		Messages:  messages,
		Members:   members,
	}})

	g.logger.Info("user joined channel", "user_id", c.Identity.UserID, "channel_id", channelID)
	return nil
}

// handleLeave detaches the watch only; the membership row stays until an
// explicit leave through the domain layer.
func (g *Gateway) handleLeave(c *Client, channelID uuid.UUID) {
	if !g.presence.Unwatch(c.ID, channelID) {
		return
	}
	g.rooms.Leave(channelID, c.ID)

	g.rooms.Broadcast(channelID, Event{Type: EventUserLeft, Data: PresencePayload{
		ChannelID: channelID,
		User:      userRefOf(c.Identity),
		Timestamp: time.Now(),
	}}, c.ID)
}

func (g *Gateway) handleSend(ctx context.Context, c *Client, p SendMessagePayload) error {
	msg, err := g.uc.SendMessage(ctx, c.Identity.UserID, chat.SendMessageCommand{
		ChannelID:  p.ChannelID,
		Content:    p.Content,
		Type:       p.Type,
		ParentID:   p.ParentID,
		IsQuestion: p.IsQuestion,
	})
	if err != nil {
		return err
	}

	// The sender gets the message through the same fan-out as everyone
	// else; no local echo, so every watcher observes store order.
	g.BroadcastNewMessage(*msg)
	return nil
}

// BroadcastNewMessage fans a stored message out to every connection
// watching its channel, the author's included. Also used by the REST path.
func (g *Gateway) BroadcastNewMessage(msg chat.MessageDTO) {
	g.rooms.Broadcast(msg.ChannelID, Event{Type: EventNewMessage, Data: NewMessagePayload{
		MessageDTO: msg,
		Timestamp:  msg.CreatedAt,
	}}, uuid.Nil)
}

// handleTyping is fire-and-forget: no persistence, no authorization beyond
// the connection being authenticated, lost frames tolerated.
func (g *Gateway) handleTyping(c *Client, p TypingPayload) {
	g.rooms.Broadcast(p.ChannelID, Event{Type: EventTyping, Data: TypingIndicatorPayload{
		ChannelID: p.ChannelID,
		User:      userRefOf(c.Identity),
		IsTyping:  p.IsTyping,
		Timestamp: time.Now(),
	}}, c.ID)
}

func (g *Gateway) handleOnlineUsers(c *Client, channelID uuid.UUID) {
	seen := map[uuid.UUID]struct{}{}
	users := []UserRef{}

	for _, connID := range g.rooms.MembersOf(channelID) {
		identity, ok := g.presence.Identity(connID)
		if !ok {
			continue
		}
		if _, dup := seen[identity.UserID]; dup {
			continue
		}
		seen[identity.UserID] = struct{}{}
		users = append(users, userRefOf(identity))
	}

	c.trySend(Event{Type: EventOnlineUsers, Data: OnlineUsersPayload{
		ChannelID: channelID,
		Users:     users,
	}})
}

// AnnotateOnline stamps live online status onto a member listing.
func (g *Gateway) AnnotateOnline(members []chat.MemberDTO) {
	ids := make([]uuid.UUID, 0, len(members))
	for i := range members {
		ids = append(ids, members[i].UserID)
	}
	online := g.presence.OnlineOf(ids)
	for i := range members {
		members[i].IsOnline = online[members[i].UserID]
	}
}

// teardown emits a leave notification for every watched channel, then
// removes all presence state for the connection.
func (g *Gateway) teardown(c *Client) {
	for _, channelID := range g.presence.Unregister(c.ID) {
		g.rooms.Leave(channelID, c.ID)
		g.rooms.Broadcast(channelID, Event{Type: EventUserLeft, Data: PresencePayload{
			ChannelID: channelID,
			User:      userRefOf(c.Identity),
			Timestamp: time.Now(),
		}}, c.ID)
	}

	g.logger.Info("user disconnected", "user_id", c.Identity.UserID, "conn_id", c.ID)
	c.close(websocket.StatusNormalClosure, "bye")
}
