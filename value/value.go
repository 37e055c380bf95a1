// Package value defines the in-memory tree of a parsed JSON document.
//
// Value is a closed set: only the types declared in this package implement
// it, so a type switch over Null, Bool, Number, String, Array and Object is
// exhaustive.
package value

import "fmt"

// Kind identifies the variant of a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

var kindNames = map[Kind]string{
	KindNull:   "null",
	KindBool:   "bool",
	KindNumber: "number",
	KindString: "string",
	KindArray:  "array",
	KindObject: "object",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Value is a node of the value tree. Values are immutable once built.
type Value interface {
	Kind() Kind
	// sealed restricts implementations to this package.
	sealed()
}

type Null struct{}

type Bool bool

type Number float64

type String string

type Array []Value

// Member is a key-value pair of an Object.
type Member struct {
	Key   string
	Value Value
}

// Object keeps its members in document order, duplicate keys included.
type Object []Member

func (Null) Kind() Kind   { return KindNull }
func (Bool) Kind() Kind   { return KindBool }
func (Number) Kind() Kind { return KindNumber }
func (String) Kind() Kind { return KindString }
func (Array) Kind() Kind  { return KindArray }
func (Object) Kind() Kind { return KindObject }

func (Null) sealed()   {}
func (Bool) sealed()   {}
func (Number) sealed() {}
func (String) sealed() {}
func (Array) sealed()  {}
func (Object) sealed() {}

// Get returns the value of the last member named key, so that a duplicated
// key resolves the way a key-unique mapping would.
func (o Object) Get(key string) (Value, bool) {
	for i := len(o) - 1; i >= 0; i-- {
		if o[i].Key == key {
			return o[i].Value, true
		}
	}
	return nil, false
}

