package mailservice

import (
	"errors"
	"sync"

	"github.com/go-mail/mail/v2"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/mock"
	"github.com/sushihentaime/blogfront/internal/common"
)

type MockTemplate struct {
	mock.Mock
}

func (m *MockTemplate) Render(name string, data any) (*message, error) {
	args := m.Called(name, data)
	msg, _ := args.Get(0).(*message)
	return msg, args.Error(1)
}

type MockDialer struct {
	mock.Mock
}

func (d *MockDialer) DialAndSend(m ...*mail.Message) error {
	args := d.Called(m)
	return args.Error(0)
}

// MockMailer records every recipient. The first failures sends return an error.
type MockMailer struct {
	mu         sync.Mutex
	failures   int
	attempts   int
	recipients []string
	data       []any
}

func (m *MockMailer) send(recipient string, data any, templateFile string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.attempts++
	if m.attempts <= m.failures {
		return errors.New("smtp unavailable")
	}

	m.recipients = append(m.recipients, recipient)
	m.data = append(m.data, data)
	return nil
}

func (m *MockMailer) Recipients() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.recipients...)
}

func (m *MockMailer) Attempts() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.attempts
}

// MockMessageConsumer delivers the given bodies and then closes the channel.
type MockMessageConsumer struct {
	mock.Mock
	bodies [][]byte
}

func (m *MockMessageConsumer) Consume(key common.BindingKey, exchange common.Exchange, queue common.Queue) (<-chan amqp.Delivery, error) {
	args := m.Called(key, exchange, queue)
	if err := args.Error(0); err != nil {
		return nil, err
	}

	msgsChan := make(chan amqp.Delivery)

	go func() {
		defer close(msgsChan)

		for _, body := range m.bodies {
			msgsChan <- amqp.Delivery{Body: body}
		}
	}()

	return msgsChan, nil
}
