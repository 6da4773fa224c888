package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRCodeService_GenerateInviteQR(t *testing.T) {
	service := NewQRCodeService(256, "M")
	conversationID := uuid.New()

	png, err := service.GenerateInviteQR(conversationID)
	require.NoError(t, err)
	require.NotEmpty(t, png)

	// PNG magic bytes.
	assert.Equal(t, []byte{0x89, 0x50, 0x4e, 0x47}, png[:4])
}

func TestQRCodeService_ParseInviteQR_RoundTrip(t *testing.T) {
	service := NewQRCodeService(256, "M")
	conversationID := uuid.New()

	payload, err := json.Marshal(QRCodeData{
		ConversationID: conversationID.String(),
		Type:           "invite",
	})
	require.NoError(t, err)

	parsed, err := service.ParseInviteQR(string(payload))
	require.NoError(t, err)
	assert.Equal(t, conversationID, parsed)
}

func TestQRCodeService_ParseInviteQR_WrongType(t *testing.T) {
	service := NewQRCodeService(256, "M")

	payload, err := json.Marshal(QRCodeData{
		ConversationID: uuid.New().String(),
		Type:           "coupon",
	})
	require.NoError(t, err)

	parsed, err := service.ParseInviteQR(string(payload))
	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, parsed)
}

func TestQRCodeService_ParseInviteQR_Garbage(t *testing.T) {
	service := NewQRCodeService(256, "M")

	parsed, err := service.ParseInviteQR("definitely not json")
	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, parsed)
}

func TestQRCodeService_UnknownCorrectionLevelDefaultsToMedium(t *testing.T) {
	service := NewQRCodeService(128, "X")

	png, err := service.GenerateInviteQR(uuid.New())
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
