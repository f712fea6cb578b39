package mail

//go:generate go run go.uber.org/mock/mockgen -source=./mail.go -destination=./mocks/mail_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"safari/config"
	"safari/infras/otel"
	"safari/shared/constant"
	"strings"

	"github.com/rs/zerolog/log"
)

var ErrNotConfigured = errors.New("smtp host is not configured")

const (
	otelAttrRecipients = "mail.recipients"
	otelAttrSubject    = "mail.subject"
)

type Message struct {
	To      []string
	Subject string
	HTML    string
}

// Bytes renders the message as an RFC 5322 document with an HTML body.
func (m Message) Bytes(from string) []byte {
	var builder strings.Builder

	builder.WriteString("From: " + from + "\r\n")
	builder.WriteString("To: " + strings.Join(m.To, ", ") + "\r\n")
	builder.WriteString("Subject: " + m.Subject + "\r\n")
	builder.WriteString("MIME-Version: 1.0\r\n")
	builder.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	builder.WriteString("\r\n")
	builder.WriteString(m.HTML)

	return []byte(builder.String())
}

type Mailer interface {
	Send(ctx context.Context, message Message) error
}

type sendFunc func(addr string, auth smtp.Auth, from string, to []string, msg []byte) error

type smtpMailer struct {
	cfg  *config.Config
	otel otel.Otel
	send sendFunc
}

func New(cfg *config.Config, otel otel.Otel) Mailer {
	return &smtpMailer{
		cfg:  cfg,
		otel: otel,
		send: smtp.SendMail,
	}
}

func (m *smtpMailer) Send(ctx context.Context, message Message) (err error) {
	_, scope := m.otel.NewScope(ctx, constant.OtelMailScopeName, constant.OtelMailScopeName+".Send")
	defer scope.End()
	defer scope.TraceIfError(err)

	smtpConfig := m.cfg.External.SMTP
	if smtpConfig.Host == constant.Empty {
		return ErrNotConfigured
	}

	if len(message.To) == 0 {
		return errors.New("mail has no recipients")
	}

	scope.SetAttributes(map[string]any{
		otelAttrRecipients: message.To,
		otelAttrSubject:    message.Subject,
	})

	var auth smtp.Auth
	if smtpConfig.Username != constant.Empty {
		auth = smtp.PlainAuth("", smtpConfig.Username, smtpConfig.Password, smtpConfig.Host)
	}

	addr := net.JoinHostPort(smtpConfig.Host, smtpConfig.Port)

	if err = m.send(addr, auth, smtpConfig.From, message.To, message.Bytes(smtpConfig.From)); err != nil {
		log.Error().Err(err).Strs("to", message.To).Msg("failed to send mail")

		return fmt.Errorf("failed to send mail: %w", err)
	}

	log.Info().Strs("to", message.To).Str("subject", message.Subject).Msg("mail sent")

	return nil
}
