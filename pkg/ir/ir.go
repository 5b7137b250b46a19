package ir

import (
	"github.com/pb33f/libopenapi/orderedmap"
)

// Kind identifies the variant of a TypeDescriptor
type Kind string

const (
	KindRef     Kind = "ref"
	KindObject  Kind = "object"
	KindArray   Kind = "array"
	KindEnum    Kind = "enum"
	KindString  Kind = "string"
	KindNumber  Kind = "number"
	KindBoolean Kind = "boolean"
)

// TypeDescriptor is the canonical, language-agnostic shape of a schema node.
// The variant is decided once when the document is parsed.
type TypeDescriptor interface {
	Kind() Kind
}

// RefType refers to a named component schema by the last segment of its $ref.
// An empty Name means the reference could not be resolved.
type RefType struct {
	Name string
}

// Kind returns KindRef.
func (t *RefType) Kind() Kind { return KindRef }

// ObjectType is a record with ordered properties.
type ObjectType struct {
	// Properties keeps declaration order.
	Properties *orderedmap.Map[string, TypeDescriptor]
	// Required holds the names listed in the schema's required array.
	Required map[string]struct{}
	// Open is set when the schema declares no properties field at all.
	Open bool
}

// Kind returns KindObject.
func (t *ObjectType) Kind() Kind { return KindObject }

// IsRequired reports whether the named property is required.
func (t *ObjectType) IsRequired(name string) bool {
	_, ok := t.Required[name]
	return ok
}

// ArrayType is a sequence of Item.
type ArrayType struct {
	Item TypeDescriptor
}

// Kind returns KindArray.
func (t *ArrayType) Kind() Kind { return KindArray }

// EnumType is a string restricted to Values, in declaration order.
type EnumType struct {
	Values []string
}

// Kind returns KindEnum.
func (t *EnumType) Kind() Kind { return KindEnum }

// StringType is a plain string. Schemas typed "date" also map here.
type StringType struct{}

// Kind returns KindString.
func (t *StringType) Kind() Kind { return KindString }

// NumberType covers both "number" and "integer".
type NumberType struct{}

// Kind returns KindNumber.
func (t *NumberType) Kind() Kind { return KindNumber }

// BooleanType is a boolean.
type BooleanType struct{}

// Kind returns KindBoolean.
func (t *BooleanType) Kind() Kind { return KindBoolean }

// NewObject returns an empty, closed ObjectType ready for properties.
func NewObject() *ObjectType {
	return &ObjectType{
		Properties: orderedmap.New[string, TypeDescriptor](),
		Required:   map[string]struct{}{},
	}
}

// Location is where a parameter is sent.
type Location string

const (
	LocationPath  Location = "path"
	LocationQuery Location = "query"
)

// ParamDescriptor represents a path or query parameter
type ParamDescriptor struct {
	Name     string
	Required bool
	Location Location
	Type     TypeDescriptor
}

// ContentDescriptor is the resolved shape of a JSON request or response body.
type ContentDescriptor struct {
	ArgumentName string
	Type         TypeDescriptor
	Required     bool
	// ImportName is set only when the body schema is a reference.
	ImportName string
}

// OperationDescriptor represents a single operation (path + method)
type OperationDescriptor struct {
	Path        string
	Method      string
	ServiceName string
	MethodName  string
	// Params holds path and query parameters in their declared order.
	Params   []ParamDescriptor
	Body     *ContentDescriptor
	Response *ContentDescriptor
	// Tags are the operation's tags, or ["misc"] when it has none.
	Tags []string
}

// PathParams returns the path partition of Params, order preserved.
func (o OperationDescriptor) PathParams() []ParamDescriptor {
	return o.paramsIn(LocationPath)
}

// QueryParams returns the query partition of Params, order preserved.
func (o OperationDescriptor) QueryParams() []ParamDescriptor {
	return o.paramsIn(LocationQuery)
}

func (o OperationDescriptor) paramsIn(loc Location) []ParamDescriptor {
	var out []ParamDescriptor
	for _, p := range o.Params {
		if p.Location == loc {
			out = append(out, p)
		}
	}
	return out
}

// ServiceUnit groups every operation sharing a service name.
type ServiceUnit struct {
	Name string
	// Operations is keyed by method name, in first-registration order.
	Operations *orderedmap.Map[string, OperationDescriptor]
	// Imports is an ordered set of model names the unit references.
	Imports *orderedmap.Map[string, struct{}]
}

// NewServiceUnit creates an empty unit.
func NewServiceUnit(name string) *ServiceUnit {
	return &ServiceUnit{
		Name:       name,
		Operations: orderedmap.New[string, OperationDescriptor](),
		Imports:    orderedmap.New[string, struct{}](),
	}
}

// ImportNames returns the unit's imports in insertion order.
func (s *ServiceUnit) ImportNames() []string {
	out := make([]string, 0, s.Imports.Len())
	for name := range s.Imports.FromOldest() {
		out = append(out, name)
	}
	return out
}

// OperationList returns the unit's operations in slot order.
func (s *ServiceUnit) OperationList() []OperationDescriptor {
	out := make([]OperationDescriptor, 0, s.Operations.Len())
	for _, op := range s.Operations.FromOldest() {
		out = append(out, op)
	}
	return out
}

// ModelEntry is one named component schema.
type ModelEntry struct {
	Name string
	Type TypeDescriptor
}

// Program is the compiled output of a single generation run
type Program struct {
	Models   []ModelEntry
	Services []*ServiceUnit
}
