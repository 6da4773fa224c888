package handler

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"portal/config"
	"portal/internal/delivery/http/response"
	"portal/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MessageHandler holds dependencies for message-related handlers.
type MessageHandler struct {
	uc                 usecase.MessageUsecase
	logger             *slog.Logger
	maxAttachmentBytes int64
}

// NewMessageHandler is the constructor for MessageHandler, injected by Fx.
func NewMessageHandler(uc usecase.MessageUsecase, cfg *config.Config, logger *slog.Logger) *MessageHandler {
	return &MessageHandler{
		uc:                 uc,
		logger:             logger,
		maxAttachmentBytes: cfg.Storage.MaxAttachmentBytes,
	}
}

// Send persists a new message in a conversation. The request is multipart when
// it carries attachments and plain JSON otherwise.
func (h *MessageHandler) Send(c echo.Context) error {
	senderID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	conversationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid conversation ID")
	}

	body := c.FormValue("body")
	mentions, err := parseMentions(c.Request().Form["mentions"])
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid mention ID")
	}

	attachments, err := h.collectAttachments(c)
	if err != nil {
		return err
	}

	message, err := h.uc.Send(c.Request().Context(), senderID, conversationID, body, mentions, attachments)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, message, "Message sent")
}

// collectAttachments reads the uploaded files from a multipart request.
func (h *MessageHandler) collectAttachments(c echo.Context) ([]usecase.AttachmentInput, error) {
	form, err := c.MultipartForm()
	if err != nil {
		// Plain JSON or form request without attachments.
		return nil, nil
	}

	files := form.File["attachments"]
	attachments := make([]usecase.AttachmentInput, 0, len(files))
	for _, fileHeader := range files {
		if h.maxAttachmentBytes > 0 && fileHeader.Size > h.maxAttachmentBytes {
			return nil, response.BadRequest(c, "ATTACHMENT_TOO_LARGE", "Attachment exceeds the size limit")
		}

		file, err := fileHeader.Open()
		if err != nil {
			return nil, errors.Wrap(err, "failed to open uploaded attachment")
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			return nil, errors.Wrap(err, "failed to read uploaded attachment")
		}

		attachments = append(attachments, usecase.AttachmentInput{
			FileName:    fileHeader.Filename,
			ContentType: fileHeader.Header.Get("Content-Type"),
			Data:        data,
		})
	}

	return attachments, nil
}

func parseMentions(raw []string) ([]uuid.UUID, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	mentions := make([]uuid.UUID, 0, len(raw))
	for _, value := range raw {
		id, err := uuid.Parse(value)
		if err != nil {
			return nil, err
		}
		mentions = append(mentions, id)
	}

	return mentions, nil
}

// List retrieves one page of conversation history.
func (h *MessageHandler) List(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	conversationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid conversation ID")
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	pageSize, _ := strconv.Atoi(c.QueryParam("page_size"))

	messages, err := h.uc.ListPage(c.Request().Context(), userID, conversationID, page, pageSize)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, messages, "Messages retrieved")
}

// MarkRead records a read receipt for the caller on a message.
func (h *MessageHandler) MarkRead(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	messageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid message ID")
	}

	if err := h.uc.MarkRead(c.Request().Context(), userID, messageID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message_id": messageID.String()}, "Message marked read")
}

type reactionRequest struct {
	Emoji string `json:"emoji" validate:"required,max=32"`
}

// React attaches an emoji reaction to a message.
func (h *MessageHandler) React(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	messageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid message ID")
	}

	var req reactionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reaction input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	reaction, err := h.uc.React(c.Request().Context(), userID, messageID, req.Emoji)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, reaction, "Reaction added")
}

// GetAttachment streams an attachment's bytes to a conversation member.
func (h *MessageHandler) GetAttachment(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	attachmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid attachment ID")
	}

	attachment, data, err := h.uc.GetAttachment(c.Request().Context(), userID, attachmentID)
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+attachment.FileName+`"`)

	return c.Blob(http.StatusOK, attachment.ContentType, data)
}
