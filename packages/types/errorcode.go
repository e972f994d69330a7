package types

import "strconv"

// ErrorCode is a sensor error code.
// Every integer value is a valid code.
type ErrorCode int

func (c ErrorCode) String() string {
	return strconv.Itoa(int(c))
}
