// Package mail delivers plain-text email.
package mail

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"
)

//go:generate mockgen -source=mail.go -destination=../mock/mail_sender_mock.go -package=mock

// Sender delivers a plain-text message to one address. Any error means the
// message was not delivered.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// ErrNotConfigured is returned by SMTPSender when host or from address is
// missing.
var ErrNotConfigured = errors.New("mail sender is not configured")

// dialFunc matches net.Dialer.DialContext; tests replace it.
type dialFunc func(ctx context.Context, network, addr string) (net.Conn, error)

// SMTPSender sends mail through an SMTP relay with PLAIN auth, upgrading to
// TLS when the relay offers STARTTLS.
type SMTPSender struct {
	host     string
	port     int
	from     string
	password string
	dial     dialFunc
}

// NewSMTPSender builds a sender for host:port authenticating as from. An
// empty password disables authentication.
func NewSMTPSender(host string, port int, from, password string) *SMTPSender {
	return &SMTPSender{
		host:     host,
		port:     port,
		from:     from,
		password: password,
		dial:     (&net.Dialer{}).DialContext,
	}
}

// Send implements [Sender]. The context bounds the whole SMTP exchange:
// cancelling it closes the connection, so no exchange outlives the call.
func (s *SMTPSender) Send(ctx context.Context, to, subject, body string) error {
	if s.host == "" || s.from == "" {
		return ErrNotConfigured
	}
	if strings.ContainsAny(to, "\r\n") || strings.ContainsAny(subject, "\r\n") {
		return fmt.Errorf("mail header contains a line break")
	}

	addr := net.JoinHostPort(s.host, strconv.Itoa(s.port))
	conn, err := s.dial(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("smtp dial: %w", err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}
	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()

	if err = s.exchange(conn, to, buildMessage(s.from, to, subject, body, time.Now())); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

func (s *SMTPSender) exchange(conn net.Conn, to string, msg []byte) error {
	c, err := smtp.NewClient(conn, s.host)
	if err != nil {
		_ = conn.Close()
		return err
	}
	defer c.Close()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err = c.StartTLS(&tls.Config{ServerName: s.host}); err != nil {
			return err
		}
	}
	if s.password != "" {
		if err = c.Auth(smtp.PlainAuth("", s.from, s.password, s.host)); err != nil {
			return err
		}
	}
	if err = c.Mail(s.from); err != nil {
		return err
	}
	if err = c.Rcpt(to); err != nil {
		return err
	}

	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err = w.Write(msg); err != nil {
		return err
	}
	if err = w.Close(); err != nil {
		return err
	}
	return c.Quit()
}

func buildMessage(from, to, subject, body string, now time.Time) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("Date: " + now.Format(time.RFC1123Z) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(body, "\n", "\r\n"))
	return []byte(b.String())
}
