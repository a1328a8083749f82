// Package result is the {data, error} envelope every boundary call
// returns. The error slot is a structured message, never a raised
// failure: callers always get a well-formed envelope back.
package result

// Error carries a human-readable failure message.
type Error struct {
	Message string `json:"message"`
}

// Envelope is the tagged success/failure pair.
type Envelope struct {
	Data any    `json:"data"`
	Err  *Error `json:"error"`
}

// OK wraps successful data.
func OK(data any) Envelope {
	return Envelope{Data: data}
}

// Fail wraps a failure message with null data.
func Fail(message string) Envelope {
	return Envelope{Err: &Error{Message: message}}
}
