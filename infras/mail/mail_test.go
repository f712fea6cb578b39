package mail

import (
	"context"
	"errors"
	"net/smtp"
	"strings"
	"testing"

	"safari/config"
	"safari/infras/otel/mocks"

	"github.com/stretchr/testify/assert"
)

func newTestConfig(host string) *config.Config {
	cfg := &config.Config{}
	cfg.External.SMTP.Host = host
	cfg.External.SMTP.Port = "587"
	cfg.External.SMTP.From = "bookings@safari.test"

	return cfg
}

func TestMessage_Bytes(t *testing.T) {
	msg := Message{
		To:      []string{"a@example.com", "b@example.com"},
		Subject: "Kit list",
		HTML:    "<p>hello</p>",
	}

	out := string(msg.Bytes("bookings@safari.test"))

	assert.Contains(t, out, "From: bookings@safari.test\r\n")
	assert.Contains(t, out, "To: a@example.com, b@example.com\r\n")
	assert.Contains(t, out, "Subject: Kit list\r\n")
	assert.Contains(t, out, "Content-Type: text/html")
	assert.True(t, strings.HasSuffix(out, "\r\n\r\n<p>hello</p>"))
}

func TestSMTPMailer_Send(t *testing.T) {
	tests := []struct {
		name    string
		host    string
		message Message
		sendErr error
		wantErr error
		called  bool
	}{
		{
			name:    "sends through smtp",
			host:    "smtp.safari.test",
			message: Message{To: []string{"guest@example.com"}, Subject: "hi"},
			called:  true,
		},
		{
			name:    "not configured",
			host:    "",
			message: Message{To: []string{"guest@example.com"}},
			wantErr: ErrNotConfigured,
		},
		{
			name:    "no recipients",
			host:    "smtp.safari.test",
			message: Message{},
			wantErr: errors.New("mail has no recipients"),
		},
		{
			name:    "smtp failure",
			host:    "smtp.safari.test",
			message: Message{To: []string{"guest@example.com"}},
			sendErr: errors.New("connection refused"),
			wantErr: errors.New("failed to send mail: connection refused"),
			called:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			mailer := &smtpMailer{
				cfg:  newTestConfig(tt.host),
				otel: mocks.NewOtel(),
				send: func(addr string, _ smtp.Auth, from string, to []string, _ []byte) error {
					called = true

					assert.Equal(t, "smtp.safari.test:587", addr)
					assert.Equal(t, "bookings@safari.test", from)
					assert.Equal(t, tt.message.To, to)

					return tt.sendErr
				},
			}

			err := mailer.Send(context.Background(), tt.message)

			assert.Equal(t, tt.called, called)

			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
