package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"portal/config"
	"portal/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultSMSTimeout = 10 * time.Second

type httpSMSSink struct {
	endpoint   string
	apiKey     string
	sender     string
	httpClient *http.Client
}

// smsRequest is the JSON body accepted by the SMS gateway.
type smsRequest struct {
	To     string `json:"to"`
	From   string `json:"from,omitempty"`
	Text   string `json:"text"`
}

// NewHTTPSMSSink creates an SMS sink that POSTs messages to an HTTP gateway.
func NewHTTPSMSSink(cfg *config.SMSConfig) service.SMSSink {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultSMSTimeout
	}

	return &httpSMSSink{
		endpoint: cfg.Endpoint,
		apiKey:   cfg.APIKey,
		sender:   cfg.Sender,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Send delivers a single text message to a phone number in E.164 format.
func (s *httpSMSSink) Send(ctx context.Context, phone, text string) error {
	if phone == "" {
		return errors.New("sms recipient is empty")
	}

	body, err := json.Marshal(smsRequest{To: phone, From: s.sender, Text: text})
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "sms gateway request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("sms gateway returned non-success status: %d", resp.StatusCode)
	}

	return nil
}
