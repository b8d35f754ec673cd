//go:build !solution

package library

//go:generate mockgen -destination mock_library/sink.go -package mock_library . Sink

// Tag is the meaning of a message sent to a Sink.
type Tag int

const (
	TagInfo Tag = iota
	TagWaiting
	TagEntered
	TagLeft
	TagCancelled
)

func (t Tag) String() string {
	switch t {
	case TagWaiting:
		return "waiting"
	case TagEntered:
		return "entered"
	case TagLeft:
		return "left"
	case TagCancelled:
		return "cancelled"
	default:
		return "info"
	}
}

// Sink receives plain state change messages from a Library.
// Presentation is up to the sink; it has no effect on admission.
// Log may be called with the library counters lock held, so it must not
// call back into the Library.
type Sink interface {
	Log(tag Tag, msg string)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(tag Tag, msg string)

func (f SinkFunc) Log(tag Tag, msg string) { f(tag, msg) }

type nopSink struct{}

func (nopSink) Log(Tag, string) {}
