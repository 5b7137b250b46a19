package typescript

import (
	"strings"

	"github.com/blimu-dev/tsclient-gen/pkg/utils"
)

const indentUnit = "  "

func indent(level int) string {
	return strings.Repeat(indentUnit, level)
}

// printString quotes s as a single-quoted string literal.
func printString(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`, "\r", `\r`)
	return "'" + r.Replace(s) + "'"
}

// printStringTemplate wraps s in backticks without escaping it.
func printStringTemplate(s string) string {
	return "`" + s + "`"
}

// printUnion joins members with a leading bar: "| 'A' | 'B'".
func printUnion(members []string) string {
	return "| " + strings.Join(members, " | ")
}

func printNamedField(name, typ string, required bool) string {
	if required {
		return name + ": " + typ
	}
	return name + "?: " + typ
}

// printObjectType prints a multi-line type literal whose closing brace sits
// at level.
func printObjectType(fields []string, level int) string {
	if len(fields) == 0 {
		return "{}"
	}
	var b strings.Builder
	b.WriteString("{\n")
	for _, f := range fields {
		b.WriteString(indent(level + 1))
		b.WriteString(f)
		b.WriteString(";\n")
	}
	b.WriteString(indent(level))
	b.WriteString("}")
	return b.String()
}

// printRecord prints a multi-line object literal whose closing brace sits at
// level.
func printRecord(entries []string, level int) string {
	var b strings.Builder
	b.WriteString("{\n")
	for _, e := range entries {
		b.WriteString(indent(level + 1))
		b.WriteString(e)
		b.WriteString(",\n")
	}
	b.WriteString(indent(level))
	b.WriteString("}")
	return b.String()
}

// printDestructure prints "const { a, b } = target;".
func printDestructure(target string, properties []string) string {
	return "const { " + strings.Join(properties, ", ") + " } = " + target + ";"
}

// printPropAccess reads a field of the props record.
func printPropAccess(name string) string {
	return "props[" + printString(name) + "]"
}

// bindingEntry is the destructuring entry for a path parameter: the bare
// name when it is a usable binding, otherwise "'user-id': user_id".
func bindingEntry(name string) string {
	binding := utils.SafeBinding(name)
	if binding == name {
		return name
	}
	return utils.QuotePropertyName(name) + ": " + binding
}

// pathToTemplate rewrites every "{param}" placeholder to "${param}".
// Placeholders whose names are not usable bindings use the same sanitized
// name as bindingEntry.
func pathToTemplate(path string) string {
	var b strings.Builder
	for i := 0; i < len(path); i++ {
		if path[i] == '{' {
			j := strings.IndexByte(path[i+1:], '}')
			if j >= 0 {
				name := path[i+1 : i+1+j]
				b.WriteString("${")
				b.WriteString(utils.SafeBinding(name))
				b.WriteString("}")
				i += j + 1
				continue
			}
		}
		b.WriteByte(path[i])
	}
	return b.String()
}
