// Package smtp delivers mail through a plain SMTP relay using gomail.
package smtp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-gomail/gomail"
	"github.com/google/uuid"

	"github.com/invoiceagent/invoiceagent/pkg/mailer"
)

// DialFunc opens an authenticated connection to the relay.
type DialFunc func() (gomail.SendCloser, error)

var _ mailer.Sender = (*Sender)(nil)

// Sender implements mailer.Sender over SMTP.
// SMTP has no server-assigned ID, so Send generates the Message-ID header and
// returns it.
type Sender struct {
	dial   DialFunc
	config Config
}

// New creates a Sender that dials cfg.Host:cfg.Port for every message.
// Port 465 uses implicit TLS; other ports upgrade with STARTTLS when offered.
func New(cfg Config) *Sender {
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	return NewWithDialer(d.Dial, cfg)
}

// NewWithDialer creates a Sender using dial to reach the relay.
func NewWithDialer(dial DialFunc, cfg Config) *Sender {
	return &Sender{dial: dial, config: cfg}
}

// Send implements mailer.Sender.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	msg := mailer.NewMIMEMessage(email, mailer.Recipient(s.config.SenderName, s.config.SenderEmail))
	id := messageID(s.config.SenderEmail)
	msg.SetHeader("Message-ID", id)
	msg.SetDateHeader("Date", time.Now())

	conn, err := s.dial()
	if err != nil {
		return "", &mailer.RelayError{Provider: "smtp", Message: err.Error(), Err: err}
	}
	defer conn.Close()

	if err := gomail.Send(conn, msg); err != nil {
		return "", &mailer.RelayError{Provider: "smtp", Message: err.Error(), Err: err}
	}
	return id, nil
}

func messageID(sender string) string {
	domain := "localhost"
	if at := strings.LastIndexByte(sender, '@'); at >= 0 && at < len(sender)-1 {
		domain = sender[at+1:]
	}
	return fmt.Sprintf("<%s@%s>", uuid.NewString(), domain)
}
