package types

// StackStats is a point in time view of an error stack.
type StackStats struct {
	Count    int `json:"count"`
	Capacity int `json:"capacity"`

	// number of entries dropped to make room for newer ones
	Evicted int `json:"evicted"`
}

func (s StackStats) IsFull() bool {
	return s.Count == s.Capacity
}
