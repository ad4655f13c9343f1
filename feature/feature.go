package feature

import "fmt"

// Kind identifies the variant of the values a feature takes
type Kind int

const (
	// KindInt is the kind of features taking Int values
	KindInt Kind = iota
	// KindLabel is the kind of features taking Label values
	KindLabel
	// KindBool is the kind of features taking Bool values
	KindBool
)

var kindNames = map[Kind]string{
	KindInt:   "int",
	KindLabel: "label",
	KindBool:  "bool",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

/*
ParseKind takes the name of a kind ("int", "label" or "bool") and
returns the corresponding Kind or an error if the name is unknown.
*/
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown feature kind %q", name)
}

/*
Feature represents a property that can be observed: a named column
of a dataset whose values are all of the same Kind.
*/
type Feature struct {
	name string
	kind Kind
}

/*
New takes a name string and a kind and returns a feature with the given
name that takes values of the given kind.
*/
func New(name string, kind Kind) Feature {
	return Feature{name, kind}
}

/*
Name returns a string with the name of the feature
*/
func (f Feature) Name() string {
	return f.name
}

// Kind returns the kind of values the feature takes
func (f Feature) Kind() Kind {
	return f.kind
}

/*
Valid receives a value and returns an error describing why it cannot
be taken by the feature, or nil if it can.
*/
func (f Feature) Valid(v Value) error {
	if v == nil {
		return fmt.Errorf("feature %s got no value", f.name)
	}
	if v.Kind() != f.kind {
		return fmt.Errorf("feature %s expects %v value, got %v value %v", f.name, f.kind, v.Kind(), v)
	}
	return nil
}

func (f Feature) String() string {
	return f.name
}
