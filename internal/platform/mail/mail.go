// Copyright (c) 2026 Hot Ink. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package mail sends transactional email such as account invitations.

Delivery is fire-and-forget: callers hand a [Message] to a [Dispatcher],
which sends it on its own goroutine and only logs failures. Without an SMTP
server configured, [LogMailer] writes messages to the log instead.
*/
package mail

import (
	stdctx "context"
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"sync"
	"time"

	gomail "github.com/wneessen/go-mail"
)

const sendTimeout = 30 * time.Second

// Message is one plain-text email.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Mailer delivers a message synchronously.
type Mailer interface {
	Send(context stdctx.Context, message Message) error
}

// # SMTP

// SMTPMailer delivers through an SMTP relay. STARTTLS is used when the relay
// offers it; PLAIN auth only when a username is configured.
type SMTPMailer struct {
	client *gomail.Client
	from   string

	// One SMTP session at a time.
	mu sync.Mutex
}

/*
NewSMTPMailer builds a mailer for addr ("host:port").

Returns:
  - *SMTPMailer
  - error: when addr is malformed or the client options are rejected
*/
func NewSMTPMailer(addr, from, username, password string) (*SMTPMailer, error) {
	host, rawPort, err := net.SplitHostPort(addr)
	if err != nil {
		return nil, fmt.Errorf("mail: smtp address %q: %w", addr, err)
	}
	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return nil, fmt.Errorf("mail: smtp port %q: %w", rawPort, err)
	}

	options := []gomail.Option{
		gomail.WithPort(port),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
		gomail.WithTimeout(sendTimeout),
	}
	if username != "" {
		options = append(options,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(username),
			gomail.WithPassword(password),
		)
	}

	client, err := gomail.NewClient(host, options...)
	if err != nil {
		return nil, fmt.Errorf("mail: smtp client: %w", err)
	}
	return &SMTPMailer{client: client, from: from}, nil
}

func (mailer *SMTPMailer) Send(context stdctx.Context, message Message) error {
	msg, err := newMsg(mailer.from, message)
	if err != nil {
		return err
	}

	mailer.mu.Lock()
	defer mailer.mu.Unlock()

	if err := mailer.client.DialAndSendWithContext(context, msg); err != nil {
		return fmt.Errorf("mail: send to %s: %w", message.To, err)
	}
	return nil
}

// newMsg builds the plain-text UTF-8 message. Header encoding is left to go-mail.
func newMsg(from string, message Message) (*gomail.Msg, error) {
	msg := gomail.NewMsg()
	if err := msg.From(from); err != nil {
		return nil, fmt.Errorf("mail: sender %q: %w", from, err)
	}
	if err := msg.To(message.To); err != nil {
		return nil, fmt.Errorf("mail: recipient %q: %w", message.To, err)
	}
	msg.Subject(message.Subject)
	msg.SetBodyString(gomail.TypeTextPlain, message.Body)
	return msg, nil
}

// # Log Only

// LogMailer writes messages to the log. Used in development.
type LogMailer struct {
	logger *slog.Logger
}

func NewLogMailer(logger *slog.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (mailer *LogMailer) Send(_ stdctx.Context, message Message) error {
	mailer.logger.Info("mail_logged",
		slog.String("to", message.To),
		slog.String("subject", message.Subject),
		slog.String("body", message.Body),
	)
	return nil
}

// # Asynchronous Dispatch

// Dispatcher sends messages in the background.
type Dispatcher struct {
	mailer Mailer
	logger *slog.Logger
	wg     sync.WaitGroup
}

func NewDispatcher(mailer Mailer, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{mailer: mailer, logger: logger}
}

// Dispatch queues the message and returns immediately. A failed send is
// logged and otherwise dropped.
func (dispatcher *Dispatcher) Dispatch(message Message) {
	dispatcher.wg.Add(1)
	go func() {
		defer dispatcher.wg.Done()

		context, cancel := stdctx.WithTimeout(stdctx.Background(), sendTimeout)
		defer cancel()

		if err := dispatcher.mailer.Send(context, message); err != nil {
			dispatcher.logger.Error("mail_send_failed",
				slog.String("to", message.To),
				slog.String("subject", message.Subject),
				slog.Any("error", err),
			)
			return
		}
		dispatcher.logger.Info("mail_sent", slog.String("to", message.To))
	}()
}

// Wait blocks until every dispatched message has been attempted.
func (dispatcher *Dispatcher) Wait() {
	dispatcher.wg.Wait()
}
