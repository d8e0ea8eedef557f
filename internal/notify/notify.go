package notify

import "context"

type Status int

const (
	Delivered Status = iota
	Skipped
	Failed
)

func (s Status) String() string {
	switch s {
	case Delivered:
		return "delivered"
	case Skipped:
		return "skipped"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// SendResult makes swallowed delivery outcomes explicit. Callers in the
// polling path observe it but never abort on Skipped or Failed: tracker
// mutations must stand regardless of whether the message went out.
type SendResult struct {
	Status    Status
	Reason    string // set for Skipped
	Err       error  // set for Failed
	MessageID string // provider id for Delivered, when the provider returns one
}

// Notifier renders nothing; it delivers a prebuilt body to the fixed
// recipient from the fixed sender.
type Notifier interface {
	Send(ctx context.Context, body string) SendResult
}
