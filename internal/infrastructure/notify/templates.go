package notify

import (
	"fmt"

	"github.com/fixora/booking-api/internal/core/ports"
)

func renderBookingConfirmation(n ports.BookingNotification) string {
	return fmt.Sprintf(`Hi %s,

Your booking has been received and is pending confirmation.

  Service:  %s
  Date:     %s
  Time:     %s
  Address:  %s
  Booking:  %s

We will let you know as soon as a technician confirms your slot.

Fixora`, n.RecipientName, n.ServiceName, n.Date, n.Time, n.Address, n.BookingID)
}

func renderStatusUpdate(n ports.BookingNotification) string {
	return fmt.Sprintf(`Hi %s,

The status of your booking has changed.

  Service:  %s
  Date:     %s
  Time:     %s
  Status:   %s
  Booking:  %s

Fixora`, n.RecipientName, n.ServiceName, n.Date, n.Time, n.Status, n.BookingID)
}

func renderContact(n ports.ContactNotification) string {
	return fmt.Sprintf(`New message from the contact form.

  Name:     %s
  Email:    %s
  Phone:    %s
  Subject:  %s

%s`, n.Name, n.Email, n.Phone, n.Subject, n.Message)
}
