package handlers

import (
	"net/http"
	"time"

	"campuschat/internal/chat"
	"campuschat/internal/chat/model"
	"campuschat/internal/gateway"
	"campuschat/internal/http/middleware"
	appErrors "campuschat/pkg/errors"
	"campuschat/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ChatHandler is the request/response façade over the same domain
// operations the gateway drives. Authorization rules are identical; the
// only extra step is fanning REST-posted messages out to live watchers.
type ChatHandler struct {
	UC      chat.ChatUsecase
	Gateway *gateway.Gateway
	Logger  logger.Logger
}

func (h *ChatHandler) Register(r gin.IRoutes) {
	r.POST("/channels", h.CreateChannel)
	r.GET("/channels", h.ListChannels)
	r.GET("/channels/:id", h.GetChannel)
	r.PATCH("/channels/:id", h.UpdateChannel)
	r.DELETE("/channels/:id", h.DeleteChannel)
	r.POST("/channels/:id/join", h.JoinChannel)
	r.POST("/channels/:id/leave", h.LeaveChannel)
	r.GET("/channels/:id/members", h.ListMembers)
	r.GET("/channels/:id/messages", h.ListMessages)
	r.POST("/channels/:id/messages", h.SendMessage)
	r.GET("/messages/:id", h.GetMessage)
	r.PATCH("/messages/:id", h.EditMessage)
	r.DELETE("/messages/:id", h.DeleteMessage)
	r.POST("/messages/:id/pin", h.PinMessage)
	r.DELETE("/messages/:id/pin", h.UnpinMessage)
	r.POST("/messages/:id/answer", h.MarkAsAnswer)
}

func statusOf(err error) int {
	switch appErrors.CodeOf(err) {
	case appErrors.CodeInvalidArgument:
		return http.StatusBadRequest
	case appErrors.CodeUnauthenticated:
		return http.StatusUnauthorized
	case appErrors.CodePermissionDenied:
		return http.StatusForbidden
	case appErrors.CodeNotFound:
		return http.StatusNotFound
	case appErrors.CodeAlreadyExists, appErrors.CodeFailedPrecondition:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (h *ChatHandler) abortWith(c *gin.Context, err error) {
	status := statusOf(err)
	if status >= http.StatusInternalServerError {
		h.Logger.Error("request failed", "path", c.FullPath(), "err", err)
	}
	c.AbortWithStatusJSON(status, gin.H{
		"code":    appErrors.CodeOf(err),
		"message": appErrors.MessageOf(err),
	})
}

func (h *ChatHandler) pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.abortWith(c, appErrors.InvalidArg("invalid id"))
		return uuid.Nil, false
	}
	return id, true
}

type createChannelRequest struct {
	Name        string            `json:"name" binding:"required"`
	Slug        string            `json:"slug" binding:"required"`
	Description string            `json:"description"`
	Type        model.ChannelType `json:"type"`
	MinRank     *model.Rank       `json:"minRank"`
	IsDefault   bool              `json:"isDefault"`
	Icon        string            `json:"icon"`
}

func (h *ChatHandler) CreateChannel(c *gin.Context) {
	var req createChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.abortWith(c, appErrors.InvalidArg("invalid request body"))
		return
	}

	dto, err := h.UC.CreateChannel(c.Request.Context(), middleware.MustIdentity(c), chat.CreateChannelCommand{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Type:        req.Type,
		MinRank:     req.MinRank,
		IsDefault:   req.IsDefault,
		Icon:        req.Icon,
	})
	if err != nil {
		h.abortWith(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto)
}

func (h *ChatHandler) ListChannels(c *gin.Context) {
	dtos, err := h.UC.ListChannels(c.Request.Context(), middleware.MustIdentity(c))
	if err != nil {
		h.abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"channels": dtos})
}

// GetChannel accepts either the channel id or its slug in the path.
func (h *ChatHandler) GetChannel(c *gin.Context) {
	userID := middleware.MustIdentity(c).UserID

	var dto *chat.ChannelDTO
	var err error
	if id, parseErr := uuid.Parse(c.Param("id")); parseErr == nil {
		dto, err = h.UC.GetChannel(c.Request.Context(), id, userID)
	} else {
		dto, err = h.UC.GetChannelBySlug(c.Request.Context(), c.Param("id"), userID)
	}
	if err != nil {
		h.abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, dto)
}

type updateChannelRequest struct {
	Name        *string            `json:"name"`
	Slug        *string            `json:"slug"`
	Description *string            `json:"description"`
	Type        *model.ChannelType `json:"type"`
	MinRank     *model.Rank        `json:"minRank"`
	IsDefault   *bool              `json:"isDefault"`
	Icon        *string            `json:"icon"`
}

func (h *ChatHandler) UpdateChannel(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req updateChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.abortWith(c, appErrors.InvalidArg("invalid request body"))
		return
	}

	dto, err := h.UC.UpdateChannel(c.Request.Context(), id, middleware.MustIdentity(c).UserID, chat.UpdateChannelCommand{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Type:        req.Type,
		MinRank:     req.MinRank,
		IsDefault:   req.IsDefault,
		Icon:        req.Icon,
	})
	if err != nil {
		h.abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, dto)
}

func (h *ChatHandler) DeleteChannel(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	if err := h.UC.DeleteChannel(c.Request.Context(), id, middleware.MustIdentity(c).UserID); err != nil {
		h.abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *ChatHandler) JoinChannel(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	member, _, err := h.UC.JoinChannel(c.Request.Context(), middleware.MustIdentity(c), id)
	if err != nil {
		h.abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

func (h *ChatHandler) LeaveChannel(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	if err := h.UC.LeaveChannel(c.Request.Context(), id, middleware.MustIdentity(c).UserID); err != nil {
		h.abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *ChatHandler) ListMembers(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	members, err := h.UC.GetChannelMembers(c.Request.Context(), id, middleware.MustIdentity(c).UserID)
	if err != nil {
		h.abortWith(c, err)
		return
	}
	h.Gateway.AnnotateOnline(members)
	c.JSON(http.StatusOK, gin.H{"members": members})
}

func (h *ChatHandler) ListMessages(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	q := chat.HistoryQuery{Limit: 50}
	if before := c.Query("before"); before != "" {
		t, err := time.Parse(time.RFC3339, before)
		if err != nil {
			h.abortWith(c, appErrors.InvalidArg("invalid before timestamp"))
			return
		}
		q.Before = &t
	}
	if after := c.Query("after"); after != "" {
		t, err := time.Parse(time.RFC3339, after)
		if err != nil {
			h.abortWith(c, appErrors.InvalidArg("invalid after timestamp"))
			return
		}
		q.After = &t
	}

	msgs, err := h.UC.GetMessages(c.Request.Context(), id, middleware.MustIdentity(c).UserID, q)
	if err != nil {
		h.abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": msgs})
}

type sendMessageRequest struct {
	Content    string            `json:"content" binding:"required"`
	Type       model.MessageType `json:"type"`
	ParentID   *uuid.UUID        `json:"parentId"`
	IsQuestion bool              `json:"isQuestion"`
}

func (h *ChatHandler) SendMessage(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.abortWith(c, appErrors.InvalidArg("invalid request body"))
		return
	}

	msg, err := h.UC.SendMessage(c.Request.Context(), middleware.MustIdentity(c).UserID, chat.SendMessageCommand{
		ChannelID:  id,
		Content:    req.Content,
		Type:       req.Type,
		ParentID:   req.ParentID,
		IsQuestion: req.IsQuestion,
	})
	if err != nil {
		h.abortWith(c, err)
		return
	}

	// REST-posted messages reach live watchers through the same fan-out.
	h.Gateway.BroadcastNewMessage(*msg)
	c.JSON(http.StatusCreated, msg)
}

func (h *ChatHandler) GetMessage(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	msg, err := h.UC.GetMessage(c.Request.Context(), id, middleware.MustIdentity(c).UserID)
	if err != nil {
		h.abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, msg)
}

type editMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

func (h *ChatHandler) EditMessage(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req editMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.abortWith(c, appErrors.InvalidArg("invalid request body"))
		return
	}

	msg, err := h.UC.EditMessage(c.Request.Context(), id, middleware.MustIdentity(c).UserID, req.Content)
	if err != nil {
		h.abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, msg)
}

func (h *ChatHandler) DeleteMessage(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	if err := h.UC.DeleteMessage(c.Request.Context(), id, middleware.MustIdentity(c).UserID); err != nil {
		h.abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *ChatHandler) PinMessage(c *gin.Context) {
	h.setPinned(c, true)
}

func (h *ChatHandler) UnpinMessage(c *gin.Context) {
	h.setPinned(c, false)
}

func (h *ChatHandler) setPinned(c *gin.Context, pinned bool) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	msg, err := h.UC.SetPinned(c.Request.Context(), id, middleware.MustIdentity(c).UserID, pinned)
	if err != nil {
		h.abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, msg)
}

func (h *ChatHandler) MarkAsAnswer(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	msg, err := h.UC.MarkAsAnswer(c.Request.Context(), id, middleware.MustIdentity(c).UserID)
	if err != nil {
		h.abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, msg)
}
