// Package mail delivers account emails through a pluggable transport.
package mail

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	TransportLog    = "log"
	TransportSMTP   = "smtp"
	TransportResend = "resend"
)

// Message is a single outgoing email.
type Message struct {
	Kind    string
	To      string
	Subject string
	HTML    string
	Text    string
}

// Transport sends one message.
type Transport interface {
	Name() string
	Send(ctx context.Context, msg Message) error
}

// Policy decides whether the caller waits for delivery.
type Policy int

const (
	// BestEffort sends in the background; failures are only logged.
	BestEffort Policy = iota
	// Required sends synchronously and reports failures to the caller.
	Required
)

func (p Policy) String() string {
	if p == Required {
		return "required"
	}
	return "best_effort"
}

// Dispatcher applies a delivery policy on top of a Transport.
type Dispatcher struct {
	transport Transport
	timeout   time.Duration
	wg        sync.WaitGroup
}

// NewDispatcher wraps transport. Each send is bounded by timeout.
func NewDispatcher(transport Transport, timeout time.Duration) *Dispatcher {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Dispatcher{transport: transport, timeout: timeout}
}

// Dispatch delivers msg according to policy. BestEffort sends never fail the
// caller and outlive the request context.
func (d *Dispatcher) Dispatch(ctx context.Context, msg Message, policy Policy) error {
	if d == nil || d.transport == nil {
		return errors.New("mail dispatcher not configured")
	}
	if strings.TrimSpace(msg.To) == "" {
		return errors.New("mail recipient is empty")
	}

	if policy == Required {
		return d.send(ctx, msg, policy)
	}

	detached := context.WithoutCancel(ctx)
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		_ = d.send(detached, msg, policy)
	}()
	return nil
}

func (d *Dispatcher) send(ctx context.Context, msg Message, policy Policy) error {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	fields := logrus.Fields{
		"transport": d.transport.Name(),
		"kind":      msg.Kind,
		"to":        msg.To,
		"policy":    policy.String(),
	}
	start := time.Now()
	if err := d.transport.Send(ctx, msg); err != nil {
		logrus.WithError(err).WithFields(fields).Error("mail delivery failed")
		return fmt.Errorf("send %s email: %w", msg.Kind, err)
	}
	fields["duration_ms"] = time.Since(start).Milliseconds()
	logrus.WithFields(fields).Info("mail delivered")
	return nil
}

// Wait blocks until background sends finish.
func (d *Dispatcher) Wait() {
	if d == nil {
		return
	}
	d.wg.Wait()
}
