// File: internal/mailer/mailer.go
package mailer

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

// Mailer 寄送單一郵件給多位收件者
type Mailer interface {
	Send(ctx context.Context, to []string, subject, body string) error
}

var ErrNoRecipients = errors.New("mailer: no recipients")

type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	Sender   string
}

// 以下變數於測試時覆寫
var (
	newClient   = mail.NewClient
	dialAndSend = func(ctx context.Context, c *mail.Client, m *mail.Msg) error {
		return c.DialAndSendWithContext(ctx, m)
	}
)

// SMTP 透過 go-mail 寄信；每次 Send 建立新的 client，可安全地被多個 worker 同時呼叫
type SMTP struct {
	cfg  Config
	opts []mail.Option
}

func NewSMTP(cfg Config) (*SMTP, error) {
	if cfg.Host == "" {
		return nil, errors.New("mailer: host is required")
	}
	opts := []mail.Option{mail.WithTLSPolicy(mail.TLSOpportunistic)}
	if cfg.Port > 0 {
		opts = append(opts, mail.WithPort(cfg.Port))
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}
	return &SMTP{cfg: cfg, opts: opts}, nil
}

func (s *SMTP) Send(ctx context.Context, to []string, subject, body string) error {
	if len(to) == 0 {
		return ErrNoRecipients
	}
	msg := mail.NewMsg()
	if err := msg.From(s.cfg.Sender); err != nil {
		return fmt.Errorf("mailer: sender: %w", err)
	}
	if err := msg.To(to...); err != nil {
		return fmt.Errorf("mailer: recipients: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	client, err := newClient(s.cfg.Host, s.opts...)
	if err != nil {
		return fmt.Errorf("mailer: client: %w", err)
	}
	if err := dialAndSend(ctx, client, msg); err != nil {
		return fmt.Errorf("mailer: send: %w", err)
	}
	return nil
}

// Log 不寄信，只把郵件寫入 log；未設定 SMTP 主機時使用
type Log struct {
	Logger *zap.Logger
}

func (l *Log) Send(_ context.Context, to []string, subject, _ string) error {
	if len(to) == 0 {
		return ErrNoRecipients
	}
	l.Logger.Info("mail not sent, smtp disabled", zap.Strings("to", to), zap.String("subject", subject))
	return nil
}

// Message 為 FakeMailer 紀錄的一封郵件
type Message struct {
	To      []string
	Subject string
	Body    string
}

type FakeMailer struct {
	Err error

	mu   sync.Mutex
	sent []Message
}

func (f *FakeMailer) Send(_ context.Context, to []string, subject, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, Message{To: append([]string(nil), to...), Subject: subject, Body: body})
	return f.Err
}

func (f *FakeMailer) Sent() []Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Message(nil), f.sent...)
}
