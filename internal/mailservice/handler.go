package mailservice

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sushihentaime/blogfront/internal/common"
	"golang.org/x/exp/rand"
)

func NewMailService(mb common.MessageConsumer, host, username, password, sender string, port int, logger *slog.Logger) *MailService {
	ctx, cancel := context.WithCancel(context.Background())
	return &MailService{
		mb:        mb,
		m:         NewMailer(host, port, username, password, sender, NewTemplate()),
		logger:    logger,
		ctx:       ctx,
		cancel:    cancel,
		retries:   5,
		baseDelay: 500 * time.Millisecond,
	}
}

// NotifyPublished consumes blog published events and emails each author that the blog is live.
func (s *MailService) NotifyPublished() error {
	msgs, err := s.mb.Consume(common.BlogPublishedKey, common.BlogExchange, common.BlogPublishedQueue)
	if err != nil {
		return err
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		for {
			select {
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				s.handlePublished(msg)

			case <-s.ctx.Done():
				s.logger.Info("stopping NotifyPublished due to context cancellation")
				return
			}
		}
	}()

	return nil
}

func (s *MailService) handlePublished(msg amqp.Delivery) {
	var event common.BlogPublished
	err := json.Unmarshal(msg.Body, &event)
	if err != nil {
		s.logger.Error("could not unmarshal message", slog.String("error", err.Error()))
		msg.Ack(false)
		return
	}

	if event.AuthorEmail == "" {
		s.logger.Error("blog published event without author email", slog.String("blog_id", event.BlogID))
		msg.Ack(false)
		return
	}

	name := event.AuthorName
	if name == "" {
		name = "there"
	}

	payload := publishedNotice{Name: name, Title: event.Title, URL: event.URL}

	// using exponential backoff with jitter
	for attempt := 0; attempt < s.retries; attempt++ {
		err = s.m.send(event.AuthorEmail, payload, blogPublishedTemplate)
		if err == nil {
			s.logger.Info("blog published email sent", slog.String("email", event.AuthorEmail))
			msg.Ack(false)
			return
		}

		delay := time.Duration(rand.Int63n(int64(s.baseDelay) << uint(attempt)))
		s.logger.Info("delaying blog published email", slog.String("email", event.AuthorEmail), slog.Int("attempt", attempt), slog.Duration("delay", delay))

		select {
		case <-time.After(delay):
		case <-s.ctx.Done():
			return
		}
	}

	s.logger.Error("could not send blog published email", slog.String("email", event.AuthorEmail), slog.String("error", err.Error()))
	msg.Ack(false)
}

// Close stops the consumer and waits for the message in flight.
func (s *MailService) Close() {
	s.cancel()
	s.wg.Wait()
}
