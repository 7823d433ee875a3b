package runner

import "fmt"

// Kind tells why a run failed.
type Kind int

const (
	// KindNone marks a successful run.
	KindNone Kind = iota
	// KindNotFound means no command is registered under the requested name.
	KindNotFound
	// KindValidation means required parameters did not resolve.
	KindValidation
	// KindExecution means the command returned an error or panicked.
	KindExecution
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	case KindExecution:
		return "execution"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Result is the outcome of one run.
type Result struct {
	Succeed bool
	// Error is set only for failures that were not reported through the sinks.
	Error string
	Kind  Kind

	// InfoLog and ErrorLog hold everything written to the sinks during the run.
	InfoLog  string
	ErrorLog string
}

// Ok returns a successful Result.
func Ok() *Result {
	return &Result{Succeed: true, Kind: KindNone}
}

// Fail returns a failed Result. msg may be empty when the details were
// already written to the sinks.
func Fail(kind Kind, msg string) *Result {
	return &Result{Succeed: false, Kind: kind, Error: msg}
}

// PanicError wraps a value recovered from a panicking command.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v\n\n%s", e.Value, e.Stack)
}
