package ports

// BookingNotification carries everything an outbound booking email needs.
type BookingNotification struct {
	RecipientEmail string
	RecipientName  string
	BookingID      string
	ServiceName    string
	Date           string
	Time           string
	Address        string
	Status         string // set for status updates
}

// ContactNotification informs the site operator of a new contact message.
type ContactNotification struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

// Notifier dispatches outbound notifications best-effort. Calls return
// immediately and never report failure: delivery is at-most-once and a lost
// notification must not affect the operation that triggered it.
type Notifier interface {
	BookingConfirmation(n BookingNotification)
	BookingStatusUpdate(n BookingNotification)
	ContactReceived(n ContactNotification)
}
