package iconkit

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDuplicateKey is returned when two icons share the same key.
	ErrDuplicateKey = errors.New("duplicate icon key")
	// ErrUnknownKey is returned when replacing an icon that was never added.
	ErrUnknownKey = errors.New("unknown icon key")
)

// ImportError reports a source directory that could not be turned into a
// collection. It aborts the build before any stage runs.
type ImportError struct {
	Path string
	Err  error
}

func (e *ImportError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("import: %v", e.Err)
	}
	return fmt.Sprintf("import %s: %v", e.Path, e.Err)
}

func (e *ImportError) Unwrap() error { return e.Err }

// StageError is the failure of one stage on one icon.
type StageError struct {
	Stage string
	Key   string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s icon %q: %v", e.Stage, e.Key, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// AggregateError collects every icon failure of a stage run.
type AggregateError struct {
	Stage  string
	Errors []*StageError
}

func (e *AggregateError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "stage %s failed for %d icon(s):", e.Stage, len(e.Errors))
	for _, err := range e.Errors {
		sb.WriteString("\n\t")
		sb.WriteString(err.Error())
	}
	return sb.String()
}

func (e *AggregateError) Unwrap() []error {
	errs := make([]error, len(e.Errors))
	for i, err := range e.Errors {
		errs[i] = err
	}
	return errs
}

// Keys returns the keys of the failed icons in collection order.
func (e *AggregateError) Keys() []string {
	keys := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		keys[i] = err.Key
	}
	return keys
}

// ExportError reports an artifact that could not be written.
type ExportError struct {
	Path string
	Err  error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export %s: %v", e.Path, e.Err)
}

func (e *ExportError) Unwrap() error { return e.Err }

// BuildError is returned by the pipeline with the state it failed in.
type BuildError struct {
	State State
	Err   error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("build failed while %s: %v", strings.ToLower(e.State.String()), e.Err)
}

func (e *BuildError) Unwrap() error { return e.Err }
