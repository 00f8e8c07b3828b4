package notifier

// Notifier delivers formatted reports to the user.
type Notifier interface {
	Send(text string) error
}
