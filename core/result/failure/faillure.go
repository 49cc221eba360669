package failure

import (
	"fmt"
	"runtime"

	"github.com/pkg/errors"
)

// Named is an error that you can read a name from
type Named interface {
	Name() string
}

// WithStackTrace is an error that you can read a stack trace from
type WithStackTrace interface {
	Stack() string
}

type Failure interface {
	error
	Named
}

type NamedWithStackTrace interface {
	Named
	WithStackTrace
}

type namedWithStackTrace struct {
	name  string
	stack errors.StackTrace
}

func (n namedWithStackTrace) Name() string {
	return n.name
}

func (n namedWithStackTrace) Stack() string {
	return fmt.Sprintf("%+v", n.stack)
}

// NamedWithCurrentStackTrace captures the stack of the caller's caller, so
// that an error constructor calling it records where the error was created.
func NamedWithCurrentStackTrace(name string) NamedWithStackTrace {
	const depth = 32

	var pcs [depth]uintptr
	n := runtime.Callers(3, pcs[:])

	f := make(errors.StackTrace, n)
	for i := 0; i < n; i++ {
		f[i] = errors.Frame(pcs[i])
	}

	return namedWithStackTrace{name, f}
}

// Model is the flattened form of a failure, suitable for structured logging.
type Model struct {
	Name    *string
	Message string
	Stack   *string
}

func (m Model) Error() string {
	return m.Message
}

// FromError extracts the name and stack trace of err, if it carries them.
// Wrapped errors are searched with errors.As.
func FromError(err error) Model {
	model := Model{Message: err.Error()}
	var named Named
	if errors.As(err, &named) {
		name := named.Name()
		model.Name = &name
	}
	var withStackTrace WithStackTrace
	if errors.As(err, &withStackTrace) {
		stack := withStackTrace.Stack()
		model.Stack = &stack
	}
	return model
}
