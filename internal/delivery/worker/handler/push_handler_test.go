package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"portal/config"
	"portal/internal/domain/entity"
	"portal/internal/domain/repository"
	"portal/internal/domain/service"
	mockRepo "portal/internal/mocks/repository"
	mockUsecase "portal/internal/mocks/usecase"
	"portal/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// pushHandlerFixtures holds all test dependencies for push handler tests.
type pushHandlerFixtures struct {
	handler  *PushHandler
	fanoutUC *mockUsecase.MockFanoutUsecase
	userRepo *mockRepo.MockUserRepository
}

func createTestPushHandler(t *testing.T) pushHandlerFixtures {
	fanoutUC := mockUsecase.NewMockFanoutUsecase(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	handler := NewPushHandler(PushHandlerParams{
		Config:   &config.Config{},
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		FanoutUC: fanoutUC,
		UserRepo: userRepo,
	})

	return pushHandlerFixtures{
		handler:  handler,
		fanoutUC: fanoutUC,
		userRepo: userRepo,
	}
}

func testNotificationEvent(recipientID uuid.UUID) service.NotificationEvent {
	return service.NotificationEvent{
		RequestID:      uuid.New().String(),
		NotificationID: uuid.New().String(),
		RecipientID:    recipientID.String(),
		Type:           entity.NotificationTypeNewMessage.String(),
		Title:          "New message in Varsity Team",
		Body:           "coach: see you at 6",
		Data:           map[string]string{"conversation_id": uuid.New().String()},
	}
}

// newPushContext builds an echo context carrying a Pub/Sub push envelope.
func newPushContext(t *testing.T, data string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	envelope := map[string]any{
		"message": map[string]any{
			"data":      data,
			"messageId": "123",
		},
		"subscription": "projects/test/subscriptions/notification-dispatch",
	}
	body, err := json.Marshal(envelope)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func encodeEvent(t *testing.T, event service.NotificationEvent) string {
	t.Helper()

	payload, err := json.Marshal(event)
	require.NoError(t, err)

	return base64.StdEncoding.EncodeToString(payload)
}

func TestPushHandler_HandlePush_DispatchesChannels(t *testing.T) {
	fx := createTestPushHandler(t)

	recipient := &entity.User{
		ID:     uuid.New(),
		Email:  "member@example.com",
		Status: entity.UserStatusApproved,
	}
	event := testNotificationEvent(recipient.ID)
	c, rec := newPushContext(t, encodeEvent(t, event))

	fx.userRepo.EXPECT().
		FindByID(mock.Anything, recipient.ID).
		Return(recipient, nil)
	fx.fanoutUC.EXPECT().
		DispatchChannels(mock.Anything, mock.MatchedBy(func(n *entity.Notification) bool {
			return n.ID.String() == event.NotificationID &&
				n.RecipientID == recipient.ID &&
				n.Type == entity.NotificationTypeNewMessage
		}), recipient).
		Return([]usecase.ChannelResult{
			{Channel: "push", Outcome: usecase.OutcomeDelivered},
			{Channel: "email", Outcome: usecase.OutcomeFailed, Error: "relay down"},
		}, nil)

	err := fx.handler.HandlePush(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_InvalidBase64(t *testing.T) {
	fx := createTestPushHandler(t)

	c, rec := newPushContext(t, "%%% not base64 %%%")

	err := fx.handler.HandlePush(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_HandlePush_InvalidEventJSON(t *testing.T) {
	fx := createTestPushHandler(t)

	c, rec := newPushContext(t, base64.StdEncoding.EncodeToString([]byte("not json")))

	err := fx.handler.HandlePush(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_HandlePush_UnknownTypeNotRetried(t *testing.T) {
	fx := createTestPushHandler(t)

	event := testNotificationEvent(uuid.New())
	event.Type = "carrier_pigeon"
	c, rec := newPushContext(t, encodeEvent(t, event))

	// A malformed event can never succeed; 200 stops Pub/Sub redelivery.
	err := fx.handler.HandlePush(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_RecipientDeletedNotRetried(t *testing.T) {
	fx := createTestPushHandler(t)

	recipientID := uuid.New()
	event := testNotificationEvent(recipientID)
	c, rec := newPushContext(t, encodeEvent(t, event))

	fx.userRepo.EXPECT().
		FindByID(mock.Anything, recipientID).
		Return(nil, repository.ErrUserNotFound)

	err := fx.handler.HandlePush(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_LookupFailureRetried(t *testing.T) {
	fx := createTestPushHandler(t)

	recipientID := uuid.New()
	event := testNotificationEvent(recipientID)
	c, rec := newPushContext(t, encodeEvent(t, event))

	fx.userRepo.EXPECT().
		FindByID(mock.Anything, recipientID).
		Return(nil, errors.New("connection refused"))

	err := fx.handler.HandlePush(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_HandlePush_DispatchFailureRetried(t *testing.T) {
	fx := createTestPushHandler(t)

	recipient := &entity.User{ID: uuid.New()}
	event := testNotificationEvent(recipient.ID)
	c, rec := newPushContext(t, encodeEvent(t, event))

	fx.userRepo.EXPECT().
		FindByID(mock.Anything, recipient.ID).
		Return(recipient, nil)
	fx.fanoutUC.EXPECT().
		DispatchChannels(mock.Anything, mock.Anything, recipient).
		Return(nil, errors.New("sink timeout"))

	err := fx.handler.HandlePush(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_ExtractRequestID_Priority(t *testing.T) {
	fx := createTestPushHandler(t)

	event := &service.NotificationEvent{RequestID: "from-event"}

	withAttr := &PubSubMessage{}
	withAttr.Message.Attributes = map[string]string{"request_id": "from-attributes"}
	assert.Equal(t, "from-attributes", fx.handler.extractRequestID(context.Background(), withAttr, event))

	withoutAttr := &PubSubMessage{}
	assert.Equal(t, "from-event", fx.handler.extractRequestID(context.Background(), withoutAttr, event))

	generated := fx.handler.extractRequestID(context.Background(), withoutAttr, &service.NotificationEvent{})
	_, err := uuid.Parse(generated)
	assert.NoError(t, err)
}

func TestRetryableError_Detection(t *testing.T) {
	base := errors.New("boom")

	assert.False(t, isRetryableError(base))
	assert.True(t, isRetryableError(newRetryableError(base)))
	assert.True(t, isRetryableError(errors.Wrap(newRetryableError(base), "outer")))
	assert.ErrorIs(t, newRetryableError(base), base)
}
