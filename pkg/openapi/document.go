// Package openapi holds the declaration-ordered view of an OpenAPI v3
// document that the generator compiles, plus loading and validation helpers.
package openapi

import (
	"github.com/pb33f/libopenapi/orderedmap"

	"github.com/blimu-dev/tsclient-gen/pkg/ir"
)

// Document is an OpenAPI v3 document reduced to what client generation needs.
// Every map keeps the order in which keys appear in the source.
type Document struct {
	OpenAPI string
	Paths   *orderedmap.Map[string, *PathItem]
	// Schemas are components.schemas, parsed into type descriptors.
	Schemas *orderedmap.Map[string, ir.TypeDescriptor]

	// Reusable components used to resolve local $ref pointers.
	Parameters    map[string]*Parameter
	RequestBodies map[string]*RequestBody
	Responses     map[string]*Response

	// Warnings collects non-fatal problems found while parsing.
	Warnings []string
}

// PathItem is a single entry under paths.
type PathItem struct {
	// Operations holds every key that is not a path item field, keyed by the
	// raw key as written. Keys outside the supported HTTP methods are kept so
	// the generator can reject them.
	Operations *orderedmap.Map[string, *Operation]
	// Parameters declared on the path item apply to all of its operations.
	Parameters []*Parameter
}

// Operation is an operation object.
type Operation struct {
	OperationID string
	Summary     string
	Tags        []string
	Parameters  []*Parameter
	RequestBody *RequestBody
	Responses   *orderedmap.Map[string, *Response]
}

// Parameter is a parameter object.
type Parameter struct {
	Name     string
	In       string
	Required bool
	Schema   ir.TypeDescriptor
}

// RequestBody is a request body object. Required is nil when the document
// leaves the field out.
type RequestBody struct {
	Required *bool
	Content  map[string]*MediaType
}

// Response is a response object.
type Response struct {
	Description string
	Content     map[string]*MediaType
}

// MediaType is a content entry.
type MediaType struct {
	Schema ir.TypeDescriptor
	// IsRef reports whether the schema was a $ref rather than an inline schema.
	IsRef bool
}

// JSONContentType is the only media type the generator reads.
const JSONContentType = "application/json"

// JSON returns the application/json entry of a content map, if any.
func JSON(content map[string]*MediaType) (*MediaType, bool) {
	mt, ok := content[JSONContentType]
	if !ok || mt == nil || mt.Schema == nil {
		return nil, false
	}
	return mt, true
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{
		Paths:         orderedmap.New[string, *PathItem](),
		Schemas:       orderedmap.New[string, ir.TypeDescriptor](),
		Parameters:    map[string]*Parameter{},
		RequestBodies: map[string]*RequestBody{},
		Responses:     map[string]*Response{},
	}
}
