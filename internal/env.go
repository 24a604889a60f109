package internal

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// Env maps variable names to values. There is no enclosing scope: a call
// builds a fresh Env instead of extending the caller's.
type Env struct {
	values map[string]Node
}

// NewEnv creates an empty environment
func NewEnv() *Env {
	return &Env{values: make(map[string]Node)}
}

// Get returns the value bound to name
func (e *Env) Get(name string) (Node, error) {
	if value, ok := e.values[name]; ok {
		return value, nil
	}
	return nil, &RuntimeError{Err: ErrUnboundVariable, Name: name}
}

// Add binds name to value, replacing any previous binding
func (e *Env) Add(name string, value Node) {
	e.values[name] = value
}

// Snapshot returns an independent copy. Terms are immutable and captured
// environments are never written after capture, so copying the bindings is
// enough to decouple the copy from later Add calls on e.
func (e *Env) Snapshot() *Env {
	values := make(map[string]Node, len(e.values))
	for name, value := range e.values {
		values[name] = value
	}
	return &Env{values: values}
}

// Len returns the number of bindings
func (e *Env) Len() int {
	return len(e.values)
}

// Names returns the bound names in sorted order
func (e *Env) Names() []string {
	names := lo.Keys(e.values)
	slices.Sort(names)
	return names
}

// Equal reports whether both environments hold structurally equal bindings
func (e *Env) Equal(other *Env) bool {
	if e == nil || other == nil {
		return e == other
	}
	if len(e.values) != len(other.values) {
		return false
	}
	for name, value := range e.values {
		otherValue, ok := other.values[name]
		if !ok || !Equal(value, otherValue) {
			return false
		}
	}
	return true
}

func (e *Env) String() string {
	bindings := lo.Map(e.Names(), func(name string, _ int) string {
		return fmt.Sprintf("%s = %s", name, e.values[name])
	})
	return "{" + strings.Join(bindings, ", ") + "}"
}

// Pretty renders one binding per line, indented by indent spaces
func (e *Env) Pretty(indent int) string {
	prefix := strings.Repeat(" ", indent)
	var b strings.Builder
	b.WriteString("{\n")
	for _, name := range e.Names() {
		fmt.Fprintf(&b, "%s  %s = %s\n", prefix, name, e.values[name])
	}
	b.WriteString(prefix + "}")
	return b.String()
}
