package dds

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrInvalidArgument is wrapped by every [ArgumentError].
var ErrInvalidArgument = errors.New("dds: invalid argument")

// ArgumentError reports an invalid input to a constructor or generator.
//
// Fields holds the offending parameters and their values. Extras holds
// related parameters that help to interpret the failure.
type ArgumentError struct {
	Message string
	Fields  map[string]any
	Extras  map[string]any
}

func (e *ArgumentError) Error() string {
	var b strings.Builder
	b.WriteString("dds: ")
	b.WriteString(e.Message)

	if len(e.Fields) > 0 {
		b.WriteString(" (")
		writeSortedPairs(&b, e.Fields)
		b.WriteString(")")
	}

	if len(e.Extras) > 0 {
		b.WriteString(" [")
		writeSortedPairs(&b, e.Extras)
		b.WriteString("]")
	}

	return b.String()
}

// Unwrap returns [ErrInvalidArgument].
func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// Field returns the value recorded for name in Fields.
func (e *ArgumentError) Field(name string) (any, bool) {
	v, ok := e.Fields[name]
	return v, ok
}

func writeSortedPairs(b *strings.Builder, m map[string]any) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for i, k := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(b, "%s=%v", k, m[k])
	}
}

func argumentError(message string, fields map[string]any) *ArgumentError {
	return &ArgumentError{Message: message, Fields: fields}
}

func validateDuration(duration float64) error {
	if !isFinite(duration) || duration <= 0 {
		return argumentError("sequence duration must be above zero",
			map[string]any{"duration": duration})
	}
	return nil
}

func validateCount(name string, n int, extras map[string]any) error {
	if n <= 0 {
		return &ArgumentError{
			Message: fmt.Sprintf("%s must be above zero: %d", strings.ReplaceAll(name, "_", " "), n),
			Fields:  map[string]any{name: n},
			Extras:  extras,
		}
	}
	return nil
}
