package cli

import "fmt"

// Abort is a controlled command failure carrying its own exit code. Its
// message is printed as-is before the process exits.
type Abort struct {
	Code    int
	Message string
}

func (e *Abort) Error() string { return e.Message }

// Abortf builds an Abort with a formatted message.
func Abortf(code int, format string, args ...any) *Abort {
	return &Abort{Code: code, Message: fmt.Sprintf(format, args...)}
}

// ExitRequest terminates the process with a code and prints nothing.
type ExitRequest struct {
	Code int
}

func (e *ExitRequest) Error() string { return fmt.Sprintf("exit status %d", e.Code) }

// UsageError reports invalid arguments. Its message is printed and the
// process exits with the usage-error code.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string { return e.Message }

// exitUsage is the exit code for malformed arguments.
const exitUsage = 2
