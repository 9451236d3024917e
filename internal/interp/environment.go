package interp

import "github.com/ahl00/go-arrow/internal/values"

// Binding is a (name, value, mutable) triple; DeclaredType is fixed at
// declaration time and never changes across reassignment, per the data
// model's invariant.
type Binding struct {
	Name         string
	Value        values.Value
	DeclaredType values.Type
	Mutable      bool
}

// Environment is a mapping from identifier to Binding. Insertion order is
// preserved (even across redeclaration, which replaces the binding
// in-place without moving it to the back) so that an external snapshot is
// deterministic, matching the data model's ordering requirement. There is
// no lexical scoping — if/while blocks share the environment of their
// enclosing statement sequence.
type Environment struct {
	order []string
	table map[string]*Binding
}

// NewEnvironment returns an empty environment.
func NewEnvironment() *Environment {
	return &Environment{table: make(map[string]*Binding)}
}

// Declare creates or replaces the binding named name. Redeclaration
// replaces the previous binding's value, type, and mutability, but keeps
// its original position in iteration order.
func (e *Environment) Declare(name string, v values.Value, declaredType values.Type, mutable bool) {
	if b, ok := e.table[name]; ok {
		b.Value = v
		b.DeclaredType = declaredType
		b.Mutable = mutable
		return
	}
	e.table[name] = &Binding{Name: name, Value: v, DeclaredType: declaredType, Mutable: mutable}
	e.order = append(e.order, name)
}

// Lookup returns the binding for name, or nil if undeclared.
func (e *Environment) Lookup(name string) *Binding {
	return e.table[name]
}

// SetValue overwrites an existing binding's value in place. The caller
// must have already verified the binding exists, is mutable, and that v's
// type matches the binding's declared type.
func (e *Environment) SetValue(name string, v values.Value) {
	e.table[name].Value = v
}

// Snapshot returns an ordered, independent copy of every binding for
// external inspection, in declaration order.
func (e *Environment) Snapshot() []Binding {
	out := make([]Binding, 0, len(e.order))
	for _, name := range e.order {
		out = append(out, *e.table[name])
	}
	return out
}
