package notification

import (
	"context"
	"fmt"
	"mime"
	"net/smtp"
	"strings"

	"portal/config"
	"portal/internal/domain/service"

	"github.com/pkg/errors"
)

// sendMailHook allows tests to override SMTP sending behavior.
var sendMailHook = smtp.SendMail

type smtpSink struct {
	host     string
	port     int
	username string
	password string
	from     string
}

// NewSMTPSink creates an email sink backed by a plain SMTP relay.
func NewSMTPSink(cfg *config.SMTPConfig) service.EmailSink {
	return &smtpSink{
		host:     cfg.Host,
		port:     cfg.Port,
		username: cfg.Username,
		password: cfg.Password,
		from:     cfg.From,
	}
}

// Send delivers a single email. When htmlBody is non-empty the message is sent
// as text/html, otherwise as plain text.
func (s *smtpSink) Send(ctx context.Context, to, subject, textBody, htmlBody string) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "email send canceled")
	}
	if to == "" {
		return errors.New("email recipient is empty")
	}

	contentType := "text/plain; charset=utf-8"
	body := textBody
	if htmlBody != "" {
		contentType = "text/html; charset=utf-8"
		body = htmlBody
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", s.from)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject))
	fmt.Fprintf(&msg, "MIME-Version: 1.0\r\nContent-Type: %s\r\n\r\n", contentType)
	msg.WriteString(body)

	addr := fmt.Sprintf("%s:%d", s.host, s.port)
	var auth smtp.Auth
	if s.username != "" {
		auth = smtp.PlainAuth("", s.username, s.password, s.host)
	}

	if err := sendMailHook(addr, auth, s.from, []string{to}, []byte(msg.String())); err != nil {
		return errors.Wrap(err, "smtp send failed")
	}

	return nil
}
