package mail

import (
	"fmt"
	"net/smtp"
	"strings"
)

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	AppName  string
}

// SMTPMailer delivers plain-text mail over SMTP. It satisfies
// domain.Mailer.
type SMTPMailer struct {
	cfg *SMTPConfig
}

func NewSMTPMailer(cfg *SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)

	// RFC 822 headers, CRLF separated, blank line before the body.
	headers := []string{
		fmt.Sprintf("From: %s", m.cfg.User),
		fmt.Sprintf("To: %s", to),
		fmt.Sprintf("Subject: %s - %s", m.cfg.AppName, subject),
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
		body,
	}
	message := strings.Join(headers, "\r\n")

	auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Password, m.cfg.Host)

	return smtp.SendMail(addr, auth, m.cfg.User, []string{to}, []byte(message))
}
