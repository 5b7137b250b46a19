package openapi

import (
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/blimu-dev/tsclient-gen/pkg/ir"
)

// RefName returns the last "/" segment of a reference string.
// It does not check that the name exists in components.schemas.
//
// For example, "#/components/schemas/Foo" returns "Foo".
func RefName(ref string) string {
	parts := strings.Split(ref, "/")
	return parts[len(parts)-1]
}

// ParseSchema decides the variant of a schema node. Nodes without a type are
// references; anything unrecognised becomes an empty reference, which renders
// as unknown.
func ParseSchema(n *yaml.Node) ir.TypeDescriptor {
	n = deref(n)
	if n == nil || n.Kind != yaml.MappingNode {
		return &ir.RefType{}
	}

	typ, ok := schemaType(n)
	if !ok {
		return &ir.RefType{Name: RefName(scalar(lookup(n, "$ref")))}
	}

	switch typ {
	case "object":
		return parseObject(n)
	case "array":
		return &ir.ArrayType{Item: ParseSchema(lookup(n, "items"))}
	case "string":
		if values := scalars(lookup(n, "enum")); len(values) > 0 {
			return &ir.EnumType{Values: values}
		}
		return &ir.StringType{}
	case "date":
		return &ir.StringType{}
	case "number", "integer":
		return &ir.NumberType{}
	case "boolean":
		return &ir.BooleanType{}
	}
	return &ir.RefType{}
}

func parseObject(n *yaml.Node) *ir.ObjectType {
	obj := ir.NewObject()
	for _, name := range scalars(lookup(n, "required")) {
		obj.Required[name] = struct{}{}
	}

	props := deref(lookup(n, "properties"))
	if props == nil {
		obj.Open = true
		return obj
	}
	eachPair(props, func(name string, v *yaml.Node) {
		obj.Properties.Set(name, ParseSchema(v))
	})
	return obj
}

// schemaType returns the declared type. OpenAPI 3.1 type arrays collapse to
// their first non-null entry.
func schemaType(n *yaml.Node) (string, bool) {
	t := deref(lookup(n, "type"))
	if t == nil {
		return "", false
	}
	switch t.Kind {
	case yaml.ScalarNode:
		return t.Value, true
	case yaml.SequenceNode:
		for _, item := range t.Content {
			if v := scalar(item); v != "" && v != "null" {
				return v, true
			}
		}
	}
	return "", false
}

func isRef(n *yaml.Node) bool {
	n = deref(n)
	if n == nil || n.Kind != yaml.MappingNode {
		return false
	}
	_, typed := schemaType(n)
	return !typed && lookup(n, "$ref") != nil
}
