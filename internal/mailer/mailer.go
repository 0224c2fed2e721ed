package mailer

import (
	"context"
	"log/slog"

	"gopkg.in/gomail.v2"
)

type Message struct {
	To      string
	Subject string
	HTML    string
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

type SMTPConfig struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

// SMTPMailer delivers through an SMTP relay with gomail.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	from := cfg.From
	if from == "" {
		from = cfg.User
	}
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Pass),
		from:   from,
	}
}

func (m *SMTPMailer) Send(_ context.Context, msg Message) error {
	gm := gomail.NewMessage()
	gm.SetHeader("From", m.from)
	gm.SetHeader("To", msg.To)
	gm.SetHeader("Subject", msg.Subject)
	gm.SetBody("text/html", msg.HTML)

	return m.dialer.DialAndSend(gm)
}

// LogMailer only records the message; used when SMTP is not configured.
type LogMailer struct {
	logger *slog.Logger
}

func NewLogMailer(logger *slog.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (m *LogMailer) Send(_ context.Context, msg Message) error {
	m.logger.Info("email not sent, smtp disabled",
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
	)
	return nil
}

// Async hands messages to a goroutine so the caller never waits on SMTP.
type Async struct {
	next   Mailer
	logger *slog.Logger
}

func NewAsync(next Mailer, logger *slog.Logger) *Async {
	return &Async{next: next, logger: logger}
}

func (a *Async) Send(ctx context.Context, msg Message) error {
	ctx = context.WithoutCancel(ctx)
	go func() {
		if err := a.next.Send(ctx, msg); err != nil {
			a.logger.Error("email delivery failed",
				slog.String("to", msg.To),
				slog.String("subject", msg.Subject),
				slog.Any("error", err),
			)
		}
	}()
	return nil
}
