package notify

import "log"

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
)

// Sink receives user-facing notifications. Delivery is fire-and-forget; no
// caller waits on or acknowledges a notification.
type Sink interface {
	Notify(kind Kind, title, message string)
}

// LogSink writes notifications to the process log.
type LogSink struct{}

func (LogSink) Notify(kind Kind, title, message string) {
	log.Printf("[NOTIFY] [%s] %s: %s", kind, title, message)
}
