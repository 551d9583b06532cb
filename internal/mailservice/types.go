package mailservice

import (
	"context"
	"html/template"
	"sync"
	"time"

	"github.com/go-mail/mail/v2"

	"github.com/sushihentaime/blogfront/internal/common"
)

const blogPublishedTemplate = "blog_published.html"

type MailService struct {
	mb        common.MessageConsumer
	m         Mailer
	logger    MailLogger
	ctx       context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	retries   int
	baseDelay time.Duration
}

type MailLogger interface {
	Error(msg string, args ...any)
	Info(msg string, args ...any)
}

type Mail struct {
	mu     sync.Mutex
	dialer Dialer
	parser TemplateParser
	sender string
}

type Mailer interface {
	send(recipient string, data any, templateFile string) error
}

// Template parses each email template once and keeps it.
type Template struct {
	mu     sync.Mutex
	parsed map[string]*template.Template
}

type Dialer interface {
	DialAndSend(m ...*mail.Message) error
}

type TemplateParser interface {
	Render(name string, data any) (*message, error)
}

// publishedNotice is the data the blog published template renders.
type publishedNotice struct {
	Name  string
	Title string
	URL   string
}
