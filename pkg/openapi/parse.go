package openapi

import (
	"fmt"
	"strings"

	"github.com/pb33f/libopenapi/orderedmap"
	"gopkg.in/yaml.v3"
)

// Path item fields that are not operations.
var pathItemFields = map[string]bool{
	"summary":     true,
	"description": true,
	"servers":     true,
	"parameters":  true,
	"$ref":        true,
}

const (
	parametersRefPrefix    = "#/components/parameters/"
	requestBodiesRefPrefix = "#/components/requestBodies/"
	responsesRefPrefix     = "#/components/responses/"
)

// Parse decodes a JSON or YAML OpenAPI v3 document. source is only used in
// error messages.
func Parse(data []byte, source string) (*Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &ParseError{Source: source, Message: "invalid JSON/YAML", Cause: err}
	}
	top := deref(&root)
	if top == nil || top.Kind != yaml.MappingNode {
		return nil, &ParseError{Source: source, Message: "document root must be an object"}
	}

	doc := NewDocument()
	doc.OpenAPI = scalar(lookup(top, "openapi"))
	if !strings.HasPrefix(doc.OpenAPI, "3.") {
		return nil, &ParseError{
			Source:  source,
			Line:    top.Line,
			Message: fmt.Sprintf("unsupported OpenAPI version %q, only 3.x is supported", doc.OpenAPI),
		}
	}

	// Components first so that paths can resolve local references.
	components := lookup(top, "components")
	eachPair(lookup(components, "schemas"), func(name string, v *yaml.Node) {
		doc.Schemas.Set(name, ParseSchema(v))
	})
	eachPair(lookup(components, "parameters"), func(name string, v *yaml.Node) {
		if p := parseParameter(doc, v); p != nil {
			doc.Parameters[name] = p
		}
	})
	eachPair(lookup(components, "requestBodies"), func(name string, v *yaml.Node) {
		if rb := parseRequestBody(doc, v); rb != nil {
			doc.RequestBodies[name] = rb
		}
	})
	eachPair(lookup(components, "responses"), func(name string, v *yaml.Node) {
		if r := parseResponse(doc, v); r != nil {
			doc.Responses[name] = r
		}
	})

	paths := lookup(top, "paths")
	if paths != nil && paths.Kind != yaml.MappingNode && paths.Tag != "!!null" {
		return nil, &ParseError{Source: source, Line: paths.Line, Message: "paths must be an object"}
	}
	eachPair(paths, func(path string, v *yaml.Node) {
		doc.Paths.Set(path, parsePathItem(doc, v))
	})
	return doc, nil
}

func parsePathItem(doc *Document, n *yaml.Node) *PathItem {
	item := &PathItem{Operations: orderedmap.New[string, *Operation]()}
	eachPair(n, func(key string, v *yaml.Node) {
		switch {
		case key == "parameters":
			item.Parameters = parseParameters(doc, v)
		case pathItemFields[key], strings.HasPrefix(key, "x-"):
		default:
			item.Operations.Set(key, parseOperation(doc, v))
		}
	})
	return item
}

func parseOperation(doc *Document, n *yaml.Node) *Operation {
	op := &Operation{
		OperationID: scalar(lookup(n, "operationId")),
		Summary:     scalar(lookup(n, "summary")),
		Tags:        scalars(lookup(n, "tags")),
		Parameters:  parseParameters(doc, lookup(n, "parameters")),
		Responses:   orderedmap.New[string, *Response](),
	}
	if rb := lookup(n, "requestBody"); rb != nil {
		op.RequestBody = parseRequestBody(doc, rb)
	}
	eachPair(lookup(n, "responses"), func(code string, v *yaml.Node) {
		if r := parseResponse(doc, v); r != nil {
			op.Responses.Set(code, r)
		}
	})
	return op
}

func parseParameters(doc *Document, n *yaml.Node) []*Parameter {
	n = deref(n)
	if n == nil || n.Kind != yaml.SequenceNode {
		return nil
	}
	out := make([]*Parameter, 0, len(n.Content))
	for _, item := range n.Content {
		if p := parseParameter(doc, item); p != nil {
			out = append(out, p)
		}
	}
	return out
}

func parseParameter(doc *Document, n *yaml.Node) *Parameter {
	if ref := scalar(lookup(n, "$ref")); ref != "" {
		p, ok := doc.Parameters[strings.TrimPrefix(ref, parametersRefPrefix)]
		if !strings.HasPrefix(ref, parametersRefPrefix) || !ok {
			doc.warnf("unresolved parameter reference %q", ref)
			return nil
		}
		return p
	}
	required, _ := boolean(lookup(n, "required"))
	return &Parameter{
		Name:     scalar(lookup(n, "name")),
		In:       scalar(lookup(n, "in")),
		Required: required,
		Schema:   ParseSchema(lookup(n, "schema")),
	}
}

func parseRequestBody(doc *Document, n *yaml.Node) *RequestBody {
	if ref := scalar(lookup(n, "$ref")); ref != "" {
		rb, ok := doc.RequestBodies[strings.TrimPrefix(ref, requestBodiesRefPrefix)]
		if !strings.HasPrefix(ref, requestBodiesRefPrefix) || !ok {
			doc.warnf("unresolved request body reference %q", ref)
			return nil
		}
		return rb
	}
	rb := &RequestBody{Content: parseContent(lookup(n, "content"))}
	if required, ok := boolean(lookup(n, "required")); ok {
		rb.Required = &required
	}
	return rb
}

func parseResponse(doc *Document, n *yaml.Node) *Response {
	if ref := scalar(lookup(n, "$ref")); ref != "" {
		r, ok := doc.Responses[strings.TrimPrefix(ref, responsesRefPrefix)]
		if !strings.HasPrefix(ref, responsesRefPrefix) || !ok {
			doc.warnf("unresolved response reference %q", ref)
			return nil
		}
		return r
	}
	return &Response{
		Description: scalar(lookup(n, "description")),
		Content:     parseContent(lookup(n, "content")),
	}
}

func parseContent(n *yaml.Node) map[string]*MediaType {
	out := map[string]*MediaType{}
	eachPair(n, func(contentType string, v *yaml.Node) {
		mt := &MediaType{}
		if schema := lookup(v, "schema"); schema != nil {
			mt.Schema = ParseSchema(schema)
			mt.IsRef = isRef(schema)
		}
		out[contentType] = mt
	})
	return out
}

func (d *Document) warnf(format string, args ...any) {
	d.Warnings = append(d.Warnings, fmt.Sprintf(format, args...))
}
