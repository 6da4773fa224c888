package handler

import (
	"log/slog"
	"net/http"

	"portal/internal/delivery/http/response"
	"portal/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ConversationHandler holds dependencies for conversation-related handlers.
type ConversationHandler struct {
	uc     usecase.ConversationUsecase
	logger *slog.Logger
}

// NewConversationHandler is the constructor for ConversationHandler, injected by Fx.
func NewConversationHandler(uc usecase.ConversationUsecase, logger *slog.Logger) *ConversationHandler {
	return &ConversationHandler{
		uc:     uc,
		logger: logger,
	}
}

type createGroupRequest struct {
	Name      string   `json:"name" validate:"required,min=1,max=100"`
	MemberIDs []string `json:"member_ids"`
}

// CreateGroup creates a named group conversation with the caller as admin.
func (h *ConversationHandler) CreateGroup(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req createGroupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid conversation input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	memberIDs := make([]uuid.UUID, 0, len(req.MemberIDs))
	for _, raw := range req.MemberIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid member ID: "+raw)
		}
		memberIDs = append(memberIDs, id)
	}

	conversation, err := h.uc.CreateGroup(c.Request().Context(), userID, req.Name, memberIDs)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, conversation, "Conversation created")
}

type directRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

// GetOrCreateDirect returns the direct conversation with another user,
// creating it when none exists yet.
func (h *ConversationHandler) GetOrCreateDirect(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req directRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid direct conversation input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	otherID, err := uuid.Parse(req.UserID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user ID")
	}

	conversation, err := h.uc.GetOrCreateDirect(c.Request().Context(), userID, otherID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, conversation, "Direct conversation retrieved")
}

// Get retrieves a single conversation the caller belongs to.
func (h *ConversationHandler) Get(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	conversationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid conversation ID")
	}

	conversation, err := h.uc.Get(c.Request().Context(), userID, conversationID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, conversation, "Conversation retrieved")
}

// List retrieves the caller's conversations, most recently active first.
func (h *ConversationHandler) List(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	conversations, err := h.uc.ListForUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, conversations, "Conversations retrieved")
}

type memberRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

// AddMember adds a user to a group conversation. Conversation admins only.
func (h *ConversationHandler) AddMember(c echo.Context) error {
	actorID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	conversationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid conversation ID")
	}

	var req memberRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid member input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	memberID, err := uuid.Parse(req.UserID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user ID")
	}

	if err := h.uc.AddMember(c.Request().Context(), actorID, conversationID, memberID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"user_id": memberID.String()}, "Member added")
}

// RemoveMember removes a member from a group conversation.
func (h *ConversationHandler) RemoveMember(c echo.Context) error {
	actorID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	conversationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid conversation ID")
	}

	memberID, err := uuid.Parse(c.Param("userID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user ID")
	}

	if err := h.uc.RemoveMember(c.Request().Context(), actorID, conversationID, memberID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"user_id": memberID.String()}, "Member removed")
}

type memberSettingsRequest struct {
	Muted       bool `json:"muted"`
	MentionOnly bool `json:"mention_only"`
}

// UpdateMemberSettings updates the caller's own mute and mention-only flags.
func (h *ConversationHandler) UpdateMemberSettings(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	conversationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid conversation ID")
	}

	var req memberSettingsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid settings input")
	}

	if err := h.uc.UpdateMemberSettings(c.Request().Context(), userID, conversationID, req.Muted, req.MentionOnly); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, req, "Member settings updated")
}

// Archive archives a group conversation. Conversation admins only.
func (h *ConversationHandler) Archive(c echo.Context) error {
	actorID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	conversationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid conversation ID")
	}

	if err := h.uc.Archive(c.Request().Context(), actorID, conversationID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"conversation_id": conversationID.String()}, "Conversation archived")
}

// GenerateInviteQR renders a PNG QR code inviting members into the conversation.
func (h *ConversationHandler) GenerateInviteQR(c echo.Context) error {
	actorID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	conversationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid conversation ID")
	}

	png, err := h.uc.GenerateInviteQR(c.Request().Context(), actorID, conversationID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

type joinInviteRequest struct {
	QRData string `json:"qr_data" validate:"required"`
}

// JoinByInvite adds the caller to the conversation encoded in scanned QR data.
func (h *ConversationHandler) JoinByInvite(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req joinInviteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid invite input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	conversation, err := h.uc.JoinByInvite(c.Request().Context(), userID, req.QRData)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, conversation, "Joined conversation")
}
