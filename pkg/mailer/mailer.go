// Package mailer delivers notifications over SMTP.
package mailer

import (
	"context"
	"errors"
	"fmt"

	"github.com/GlebRadaev/gobounty/internal/domain"
	"github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

var ErrNoRecipients = errors.New("message has no recipients")

type Config struct {
	Host     string
	Port     int
	Username string
	Password string
}

type sender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

type Mailer struct {
	client sender
}

func New(cfg Config) (*Mailer, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPortPolicy(mail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}
	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("can't create smtp client: %w", err)
	}
	return &Mailer{client: client}, nil
}

func (m *Mailer) Send(ctx context.Context, msg domain.Message) error {
	email, err := build(msg)
	if err != nil {
		return err
	}
	if err := m.client.DialAndSendWithContext(ctx, email); err != nil {
		return fmt.Errorf("can't send %q: %w", msg.Subject, err)
	}
	zap.L().Debug("mail sent", zap.String("subject", msg.Subject), zap.Strings("to", msg.To))
	return nil
}

func build(msg domain.Message) (*mail.Msg, error) {
	if len(msg.To) == 0 {
		return nil, ErrNoRecipients
	}
	email := mail.NewMsg()
	if err := email.From(msg.From); err != nil {
		return nil, fmt.Errorf("invalid sender %q: %w", msg.From, err)
	}
	if err := email.To(msg.To...); err != nil {
		return nil, fmt.Errorf("invalid recipients: %w", err)
	}
	email.Subject(msg.Subject)
	email.SetBodyString(mail.TypeTextPlain, msg.Body)
	return email, nil
}

// LogNotifier writes notifications to the log instead of sending them.
type LogNotifier struct{}

func (LogNotifier) Send(_ context.Context, msg domain.Message) error {
	zap.L().Info("notification",
		zap.String("subject", msg.Subject),
		zap.Strings("to", msg.To),
		zap.String("body", msg.Body),
	)
	return nil
}
