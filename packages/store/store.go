package store

type Store[T any] interface {
	// Store a message
	Store(msg T) error
	// Pop removes the newest message. The boolean is false if there is none.
	Pop() (T, bool)
	// Get all messages, newest first
	Get() []T
	// Get the number of messages
	Count() int
}
