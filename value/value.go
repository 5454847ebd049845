// Package value defines the gs runtime value universe: a closed set of
// tagged value types (Null, Bool, Int, Float, String, List, Map, plus
// NativeFunction for host-implemented callables). The user-defined
// Function value lives in the sibling function package instead of here,
// purely to break the value/env/function import cycle — Function needs to
// hold a captured *env.Environment, and env needs to hold value.Value, so
// neither value nor env can import the other's dependent.
//
// Value is deliberately a two-exported-method interface (no unexported
// marker) so that function.Function, defined in another package, can
// implement it: an interface with an unexported method can only be
// satisfied by types in its own declaring package.
package value

import (
	"fmt"
	"strconv"
	"strings"
)

// Value is anything that can flow through gs: a literal, a container, a
// callable. TypeTag names the value's tag exactly as spec'd (Null, Bool,
// Int, Float, String, List, Map, Function, NativeFunction); Display
// renders the value the way print() and the CLI's final-result print do.
type Value interface {
	TypeTag() string
	Display() string
}

// IsTruthy implements the truthiness law: only null and boolean false are
// falsy; zero, "", [], and {} are all truthy.
func IsTruthy(v Value) bool {
	switch t := v.(type) {
	case *Null:
		return false
	case *Bool:
		return t.Value
	default:
		return true
	}
}

// ---- Null ----

type Null struct{}

var NullValue = &Null{}

func (n *Null) TypeTag() string  { return "Null" }
func (n *Null) Display() string  { return "null" }

// ---- Bool ----

type Bool struct{ Value bool }

var (
	True  = &Bool{Value: true}
	False = &Bool{Value: false}
)

// BoolOf returns the shared True/False singleton for b.
func BoolOf(b bool) *Bool {
	if b {
		return True
	}
	return False
}

func (b *Bool) TypeTag() string { return "Bool" }
func (b *Bool) Display() string {
	if b.Value {
		return "true"
	}
	return "false"
}

// ---- Int ----

type Int struct{ Value int64 }

func NewInt(v int64) *Int { return &Int{Value: v} }

func (i *Int) TypeTag() string { return "Int" }
func (i *Int) Display() string { return strconv.FormatInt(i.Value, 10) }

// ---- Float ----

type Float struct{ Value float64 }

func NewFloat(v float64) *Float { return &Float{Value: v} }

func (f *Float) TypeTag() string { return "Float" }
func (f *Float) Display() string {
	s := strconv.FormatFloat(f.Value, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// ---- String ----

type String struct{ Value string }

func NewString(v string) *String { return &String{Value: v} }

func (s *String) TypeTag() string { return "String" }

// Display quotes the string and re-escapes the same five characters the
// lexer accepts, so that print(x) output could, in principle, be fed
// straight back through the lexer.
func (s *String) Display() string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s.Value {
		switch r {
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// ---- List ----

// List is a mutable, reference-shared ordered sequence. The *List pointer
// itself is the heap handle: copying the pointer (assignment, argument
// passing) aliases the same backing slice header, and mutating methods
// (append, index-set) observe/update through any alias.
type List struct {
	Elements []Value
}

func NewList(elements []Value) *List { return &List{Elements: elements} }

func (l *List) TypeTag() string { return "List" }
func (l *List) Display() string {
	parts := make([]string, len(l.Elements))
	for i, e := range l.Elements {
		parts[i] = e.Display()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// ---- Map ----

// mapKey canonicalises a primitive Value into a comparable Go value
// usable directly as a native map key. Int and Float keys share the "num"
// tag and a float64 payload so that Int(1) and Float(1.0) collide on the
// same slot, satisfying the map key law.
type mapKey struct {
	tag string
	num float64
	str string
	b   bool
}

func keyFor(v Value) (mapKey, error) {
	switch t := v.(type) {
	case *Null:
		return mapKey{tag: "null"}, nil
	case *Bool:
		return mapKey{tag: "bool", b: t.Value}, nil
	case *Int:
		return mapKey{tag: "num", num: float64(t.Value)}, nil
	case *Float:
		return mapKey{tag: "num", num: t.Value}, nil
	case *String:
		return mapKey{tag: "string", str: t.Value}, nil
	default:
		return mapKey{}, fmt.Errorf("unhashable map key type '%s'", v.TypeTag())
	}
}

type mapSlot struct {
	origKey Value
	value   Value
}

// Map is a mutable, reference-shared mapping from primitive-valued keys to
// values, preserving insertion order for display. Like List, the *Map
// pointer is the heap handle.
type Map struct {
	entries map[mapKey]*mapSlot
	order   []mapKey
}

func NewMap() *Map {
	return &Map{entries: make(map[mapKey]*mapSlot)}
}

func (m *Map) TypeTag() string { return "Map" }

func (m *Map) Display() string {
	parts := make([]string, 0, len(m.order))
	for _, k := range m.order {
		slot := m.entries[k]
		parts = append(parts, fmt.Sprintf("%s: %s", slot.origKey.Display(), slot.value.Display()))
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}

// Get returns the value stored under key, or NullValue if the key (after
// Int/Float unification) is absent. It errors only if key is not a
// primitive at all.
func (m *Map) Get(key Value) (Value, error) {
	k, err := keyFor(key)
	if err != nil {
		return nil, err
	}
	slot, ok := m.entries[k]
	if !ok {
		return NullValue, nil
	}
	return slot.value, nil
}

// Set stores val under key, unifying Int/Float keys by numeric value. The
// first Value ever used to write a given numeric slot is the one Display
// shows thereafter, matching insertion order.
func (m *Map) Set(key, val Value) error {
	k, err := keyFor(key)
	if err != nil {
		return err
	}
	if _, exists := m.entries[k]; !exists {
		m.order = append(m.order, k)
		m.entries[k] = &mapSlot{origKey: key, value: val}
		return nil
	}
	m.entries[k].value = val
	return nil
}

func (m *Map) Len() int { return len(m.order) }

// ---- NativeFunction ----

// NativeFunction wraps a host-implemented callable: the three intrinsics
// installed at evaluator construction. Arity of -1 means variadic/
// unchecked; any non-negative value is an exact required argument count.
type NativeFunction struct {
	Name  string
	Arity int
	Fn    func(args []Value) (Value, error)
}

func (n *NativeFunction) TypeTag() string { return "NativeFunction" }
func (n *NativeFunction) Display() string { return fmt.Sprintf("<fn %s>", n.Name) }
