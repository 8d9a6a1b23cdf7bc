package notify

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/fixora/booking-api/internal/core/ports"
)

type recordingSender struct {
	mu       sync.Mutex
	messages []Message
	err      error
}

func (s *recordingSender) Send(m Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.messages = append(s.messages, m)
	return nil
}

func (s *recordingSender) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.messages)
}

func (s *recordingSender) last() Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.messages[len(s.messages)-1]
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not met within deadline")
}

func TestDispatcher_BookingConfirmation(t *testing.T) {
	sender := &recordingSender{}
	d := NewDispatcher(2, sender, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.BookingConfirmation(ports.BookingNotification{
		RecipientEmail: "owner@example.com",
		RecipientName:  "Owner",
		ServiceName:    "AC Repair",
		Date:           "2026-09-01",
		Time:           "10:00",
	})

	waitFor(t, func() bool { return sender.count() == 1 })

	msg := sender.last()
	if msg.To != "owner@example.com" {
		t.Fatalf("unexpected recipient: %q", msg.To)
	}
	if msg.Subject != "Booking confirmed: AC Repair" {
		t.Fatalf("unexpected subject: %q", msg.Subject)
	}
}

func TestDispatcher_StatusUpdateSubject(t *testing.T) {
	sender := &recordingSender{}
	d := NewDispatcher(1, sender, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.BookingStatusUpdate(ports.BookingNotification{
		RecipientEmail: "owner@example.com",
		ServiceName:    "Wiring",
		Status:         "confirmed",
	})

	waitFor(t, func() bool { return sender.count() == 1 })

	if sender.last().Subject != "Booking update: Wiring is now confirmed" {
		t.Fatalf("unexpected subject: %q", sender.last().Subject)
	}
}

func TestDispatcher_ContactGoesToOperator(t *testing.T) {
	sender := &recordingSender{}
	d := NewDispatcher(1, sender, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.ContactReceived(ports.ContactNotification{Name: "Alice", Subject: "Broken AC"})

	waitFor(t, func() bool { return sender.count() == 1 })

	// Empty To: the mailer substitutes the operator address.
	if sender.last().To != "" {
		t.Fatalf("expected empty recipient, got %q", sender.last().To)
	}
}

func TestDispatcher_SendFailureDoesNotStopWorker(t *testing.T) {
	sender := &recordingSender{err: errors.New("smtp down")}
	d := NewDispatcher(1, sender, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.BookingConfirmation(ports.BookingNotification{RecipientEmail: "a@example.com"})

	// Let the failing send go through, then recover the transport.
	time.Sleep(50 * time.Millisecond)
	sender.mu.Lock()
	sender.err = nil
	sender.mu.Unlock()

	d.BookingConfirmation(ports.BookingNotification{RecipientEmail: "a@example.com"})
	waitFor(t, func() bool { return sender.count() == 1 })
}

func TestDispatcher_DropsWhenQueueFull(t *testing.T) {
	sender := &recordingSender{}
	d := NewDispatcher(1, sender, zerolog.Nop())
	// Never started: the buffer fills and further enqueues must not block.

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < channelBuffer+10; i++ {
			d.BookingConfirmation(ports.BookingNotification{RecipientEmail: "a@example.com"})
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("enqueue blocked on a full queue")
	}
}

func TestDispatcher_ShardIsStable(t *testing.T) {
	d := NewDispatcher(4, &recordingSender{}, zerolog.Nop())

	a := d.shardIndex("owner@example.com")
	for i := 0; i < 10; i++ {
		if d.shardIndex("owner@example.com") != a {
			t.Fatalf("shard index not deterministic")
		}
	}
}
