package mailservice

import (
	"strings"
	"time"

	"github.com/go-mail/mail/v2"
)

const dialTimeout = 5 * time.Second

// NewMailer returns a Mail that renders with tp and delivers over SMTP.
func NewMailer(host string, port int, username, password, sender string, tp *Template) *Mail {
	dialer := mail.NewDialer(host, port, username, password)
	dialer.Timeout = dialTimeout

	return &Mail{
		dialer: dialer,
		sender: sender,
		parser: tp,
	}
}

func (m *Mail) send(recipient string, data any, templateFile string) error {
	rendered, err := m.parser.Render(templateFile, data)
	if err != nil {
		return err
	}

	msg := mail.NewMessage()
	msg.SetHeader("From", m.sender)
	msg.SetHeader("To", recipient)
	msg.SetHeader("Subject", strings.TrimSpace(rendered.Subject))
	msg.SetBody("text/plain", rendered.Plain)
	msg.AddAlternative("text/html", rendered.HTML)

	// one SMTP session at a time
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.dialer.DialAndSend(msg)
}
