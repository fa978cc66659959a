package api

import "fmt"

// Error is a failure reported by the Cumulus API or one of its transports.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	if e.Code == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NotImplemented reports a service/method pair nothing can answer.
func NotImplemented(service, method string) *Error {
	return &Error{
		Code:    "NotImplemented",
		Message: fmt.Sprintf("no handler for %s", callKey(service, method)),
	}
}
