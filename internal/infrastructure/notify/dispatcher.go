package notify

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/fixora/booking-api/internal/api/metrics"
	"github.com/fixora/booking-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Notification kinds, used as metric labels and for template selection.
const (
	kindBookingConfirmation = "booking_confirmation"
	kindStatusUpdate        = "status_update"
	kindContact             = "contact"
)

// Message is a rendered email ready for the transport.
type Message struct {
	To      string
	Subject string
	Body    string

	kind string
}

// Sender delivers a single rendered message. Implemented by the SMTP mailer.
type Sender interface {
	Send(m Message) error
}

// Dispatcher fans notifications out to a fixed set of workers, sharded by
// recipient so mails to the same address keep their order. Enqueueing never
// blocks: when a worker's buffer is full the notification is dropped and
// counted, because no booking or contact operation may stall on email.
type Dispatcher struct {
	workers []chan Message
	sender  Sender
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, sender Sender, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan Message, numWorkers),
		sender:  sender,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan Message, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// BookingConfirmation notifies the owner that a booking was created.
func (d *Dispatcher) BookingConfirmation(n ports.BookingNotification) {
	d.enqueue(Message{
		To:      n.RecipientEmail,
		Subject: "Booking confirmed: " + n.ServiceName,
		Body:    renderBookingConfirmation(n),
		kind:    kindBookingConfirmation,
	})
}

// BookingStatusUpdate notifies the owner that an admin changed the status.
func (d *Dispatcher) BookingStatusUpdate(n ports.BookingNotification) {
	d.enqueue(Message{
		To:      n.RecipientEmail,
		Subject: "Booking update: " + n.ServiceName + " is now " + n.Status,
		Body:    renderStatusUpdate(n),
		kind:    kindStatusUpdate,
	})
}

// ContactReceived forwards a contact-form submission to the site operator.
// The recipient is chosen by the mailer, so To stays empty here.
func (d *Dispatcher) ContactReceived(n ports.ContactNotification) {
	d.enqueue(Message{
		Subject: "New contact message: " + n.Subject,
		Body:    renderContact(n),
		kind:    kindContact,
	})
}

func (d *Dispatcher) enqueue(m Message) {
	idx := d.shardIndex(m.To)
	select {
	case d.workers[idx] <- m:
		metrics.NotifyQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	default:
		metrics.NotificationsDroppedTotal.Inc()
		d.log.Warn().
			Str("kind", m.kind).
			Int("worker_id", idx).
			Msg("notification queue full, dropping")
	}
}

// shardIndex maps a recipient deterministically to a worker index.
func (d *Dispatcher) shardIndex(recipient string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(recipient))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan Message) {
	workerID := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case m, ok := <-ch:
			if !ok {
				return
			}
			metrics.NotifyQueueDepth.WithLabelValues(workerID).Set(float64(len(ch)))
			if err := d.sender.Send(m); err != nil {
				metrics.NotificationsFailedTotal.WithLabelValues(m.kind).Inc()
				d.log.Error().Err(err).
					Str("kind", m.kind).
					Int("worker_id", id).
					Msg("notification send failed")
				continue
			}
			metrics.NotificationsSentTotal.WithLabelValues(m.kind).Inc()
		}
	}
}
