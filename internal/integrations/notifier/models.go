package notifier

// Event kinds sent to the notification collaborator.
const (
	EventBookingConfirmed = "booking_confirmed"
	EventBookingDenied    = "booking_denied"
)

// BookingEvent is the payload delivered to the notification service.
type BookingEvent struct {
	Event         string `json:"event"`
	Reference     string `json:"reference"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	Date          string `json:"date"`      // YYYY-MM-DD
	StartTime     string `json:"startTime"` // HH:MM
	EndTime       string `json:"endTime"`   // HH:MM
	Topic         string `json:"topic"`
}
