// Package mail implements the credential mailer on plain SMTP.
package mail

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"time"

	"solhub/config"
	"solhub/internal/domain/service"
	"solhub/internal/errors"

	"go.uber.org/fx"
)

const defaultDialTimeout = 15 * time.Second

// Params defines the required parameters
type Params struct {
	fx.In

	Config *config.Config
}

type smtpMailer struct {
	cfg *config.MailConfig
}

// New creates the SMTP-backed CredentialMailer.
func New(params Params) (service.CredentialMailer, error) {
	cfg := params.Config.Mail
	if cfg == nil {
		return nil, errors.New("mail config must be provided")
	}
	if cfg.Host == "" || cfg.FromAddr == "" {
		return nil, errors.New("mail host and from address must be provided")
	}

	return &smtpMailer{cfg: cfg}, nil
}

// SendCredentials delivers a generated password to the recipient.
func (m *smtpMailer) SendCredentials(ctx context.Context, creds service.Credentials) error {
	if creds.RecipientEmail == "" {
		return errors.New("recipient email must be provided")
	}

	msg := m.buildMessage(creds)
	address := net.JoinHostPort(m.cfg.Host, fmt.Sprintf("%d", m.cfg.Port))

	client, err := m.dial(ctx, address)
	if err != nil {
		return err
	}
	defer client.Quit()

	if m.cfg.StartTLS {
		if ok, _ := client.Extension("STARTTLS"); ok {
			if err := client.StartTLS(&tls.Config{ServerName: m.cfg.Host}); err != nil {
				return errors.Wrap(err, "smtp starttls failed")
			}
		}
	}

	if m.cfg.Username != "" {
		auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
		if err := client.Auth(auth); err != nil {
			return errors.Wrap(err, "smtp auth failed")
		}
	}

	if err := client.Mail(m.cfg.FromAddr); err != nil {
		return errors.Wrap(err, "smtp MAIL FROM failed")
	}
	if err := client.Rcpt(strings.TrimSpace(creds.RecipientEmail)); err != nil {
		return errors.Wrap(err, "smtp RCPT TO failed")
	}

	w, err := client.Data()
	if err != nil {
		return errors.Wrap(err, "smtp DATA failed")
	}
	if _, err := w.Write(msg); err != nil {
		w.Close()

		return errors.Wrap(err, "failed to write mail body")
	}
	if err := w.Close(); err != nil {
		return errors.Wrap(err, "failed to finish mail body")
	}

	return nil
}

// dial opens the SMTP connection, honoring the context deadline as the
// connect timeout when one is set.
func (m *smtpMailer) dial(ctx context.Context, address string) (*smtp.Client, error) {
	dialer := net.Dialer{Timeout: defaultDialTimeout}
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining > 0 {
			dialer.Timeout = remaining
		}
	}

	conn, err := dialer.DialContext(ctx, "tcp", address)
	if err != nil {
		return nil, errors.Wrap(err, "smtp dial failed")
	}

	client, err := smtp.NewClient(conn, m.cfg.Host)
	if err != nil {
		conn.Close()

		return nil, errors.Wrap(err, "smtp handshake failed")
	}

	return client, nil
}

func (m *smtpMailer) buildMessage(creds service.Credentials) []byte {
	from := m.cfg.FromAddr
	if m.cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", m.cfg.FromName, m.cfg.FromAddr)
	}

	var msg bytes.Buffer
	fmt.Fprintf(&msg, "From: %s\r\n", from)
	fmt.Fprintf(&msg, "To: %s\r\n", creds.RecipientEmail)
	fmt.Fprintf(&msg, "Subject: Your %s access credentials\r\n", creds.EnterpriseName)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	msg.WriteString("\r\n")
	fmt.Fprintf(&msg, "Hello %s,\r\n\r\n", creds.RecipientName)
	fmt.Fprintf(&msg, "An account was created for you by %s.\r\n", creds.EnterpriseName)
	fmt.Fprintf(&msg, "Your login is %s and your password is: %s\r\n\r\n", creds.RecipientEmail, creds.Password)
	msg.WriteString("Please change this password after your first login.\r\n")

	return msg.Bytes()
}
