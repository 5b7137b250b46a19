package typescript

import (
	"strings"

	"github.com/blimu-dev/tsclient-gen/pkg/ir"
	"github.com/blimu-dev/tsclient-gen/pkg/utils"
)

// Render returns the TypeScript type expression for t. References render as
// their name and are never expanded, so cyclic schemas terminate.
func Render(t ir.TypeDescriptor) string {
	return renderAt(t, 0)
}

// renderAt renders t for a position whose enclosing line is indented by
// level steps; nested records indent one step further.
func renderAt(t ir.TypeDescriptor, level int) string {
	switch v := t.(type) {
	case *ir.RefType:
		if v.Name == "" {
			return "unknown"
		}
		return v.Name
	case *ir.ObjectType:
		if v.Open || v.Properties == nil {
			return "Record<string, unknown>"
		}
		fields := make([]string, 0, v.Properties.Len())
		for name, prop := range v.Properties.FromOldest() {
			fields = append(fields, printNamedField(utils.QuotePropertyName(name), renderAt(prop, level+1), v.IsRequired(name)))
		}
		return printObjectType(fields, level)
	case *ir.ArrayType:
		item := renderAt(v.Item, level)
		if strings.HasPrefix(item, "| ") {
			item = "(" + item + ")"
		}
		return item + "[]"
	case *ir.EnumType:
		values := make([]string, 0, len(v.Values))
		for _, value := range v.Values {
			values = append(values, printString(value))
		}
		return printUnion(values)
	case *ir.StringType:
		return "string"
	case *ir.NumberType:
		return "number"
	case *ir.BooleanType:
		return "boolean"
	default:
		return "unknown"
	}
}
