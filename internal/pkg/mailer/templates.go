package mailer

import (
	"fmt"
	"time"
)

const (
	SubjectBookingAccepted = "Your table reservation is confirmed"
	SubjectBookingRejected = "Update on your table reservation"
)

func BookingAcceptedTemplate(restaurantName string, guests int, at time.Time) string {
	return fmt.Sprintf(`
    <div style="font-family: Arial, sans-serif; padding: 20px;">
      <h2>Reservation Confirmed</h2>
      <p>%s has accepted your reservation.</p>
      <p><b>Guests:</b> %d</p>
      <p><b>When:</b> %s</p>
      <p>We look forward to seeing you!</p>
    </div>
  `, restaurantName, guests, at.Format("Monday, 02 Jan 2006 at 15:04"))
}

func BookingRejectedTemplate(restaurantName string, at time.Time, bookingID string) string {
	return fmt.Sprintf(`
    <div style="font-family: Arial, sans-serif; padding: 20px;">
      <h2>Reservation Declined</h2>
      <p>Unfortunately %s could not accommodate your reservation for %s.</p>
      <p>Reference: %s</p>
      <p>You are welcome to try a different time slot.</p>
    </div>
  `, restaurantName, at.Format("Monday, 02 Jan 2006 at 15:04"), bookingID)
}
