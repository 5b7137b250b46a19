package generator

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blimu-dev/tsclient-gen/pkg/ir"
	"github.com/blimu-dev/tsclient-gen/pkg/openapi"
)

func TestSplitOperationID(t *testing.T) {
	tests := []struct {
		input   string
		service string
		method  string
	}{
		{"UserController_getUser", "UserService", "getUser"},
		{"Users_list", "Users", "list"},
		{"ControllerController_x", "ServiceController", "x"},
		{"", "Service", "unknownName"},
		{"getUser", "Service", "unknownName"},
		{"User_get_by_id", "Service", "unknownName"},
		{"User-Controller_get-user", "User_Service", "get_user"},
		{"delete_delete", "delete_", "delete"},
	}

	for _, test := range tests {
		service, method := SplitOperationID(test.input)
		if service != test.service || method != test.method {
			t.Errorf("SplitOperationID(%q) = (%q, %q), expected (%q, %q)",
				test.input, service, method, test.service, test.method)
		}
	}
}

func TestSplitOperationIDFallbackIsStable(t *testing.T) {
	for i := 0; i < 3; i++ {
		service, method := SplitOperationID("a_b_c")
		assert.Equal(t, "Service", service)
		assert.Equal(t, "unknownName", method)
	}
}

func parseDoc(t *testing.T, src string) *openapi.Document {
	t.Helper()
	doc, err := openapi.Parse([]byte(src), "test.yaml")
	require.NoError(t, err)
	return doc
}

func operation(t *testing.T, doc *openapi.Document, path, method string) (*openapi.PathItem, *openapi.Operation) {
	t.Helper()
	item, ok := doc.Paths.Get(path)
	require.True(t, ok, "path %s", path)
	op, ok := item.Operations.Get(method)
	require.True(t, ok, "%s %s", method, path)
	return item, op
}

const extractorSpec = `
openapi: 3.0.3
paths:
  /orgs/{orgId}/users/{id}:
    parameters:
      - {name: orgId, in: path, required: true, schema: {type: string}}
      - {name: verbose, in: query, schema: {type: boolean}}
    patch:
      operationId: UserController_update
      parameters:
        - {name: limit, in: query, schema: {type: integer}}
        - {name: id, in: path, required: true, schema: {type: string}}
        - {name: verbose, in: query, required: true, schema: {type: string}}
        - {name: X-Request-Id, in: header, schema: {type: string}}
      requestBody:
        content:
          application/json:
            schema: {$ref: '#/components/schemas/UpdateUserDto'}
      responses:
        '201':
          description: created
          content:
            application/json:
              schema: {$ref: '#/components/schemas/User'}
  /inline:
    post:
      operationId: InlineController_create
      requestBody:
        required: false
        content:
          application/json:
            schema:
              type: object
              properties:
                name: {type: string}
      responses:
        '200':
          description: no json
          content:
            text/plain:
              schema: {type: string}
        '201':
          description: never read
          content:
            application/json:
              schema: {$ref: '#/components/schemas/User'}
  /text:
    put:
      requestBody:
        content:
          text/plain:
            schema: {type: string}
      responses:
        '200':
          description: ok
          content:
            application/json:
              schema:
                type: array
                items: {$ref: '#/components/schemas/User'}
`

func TestExtractOperation(t *testing.T) {
	doc := parseDoc(t, extractorSpec)
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	item, op := operation(t, doc, "/orgs/{orgId}/users/{id}", "patch")
	desc := ExtractOperation("/orgs/{orgId}/users/{id}", "patch", item, op, logger)

	assert.Equal(t, "UserService", desc.ServiceName)
	assert.Equal(t, "update", desc.MethodName)
	assert.Equal(t, "patch", desc.Method)
	assert.Equal(t, []string{"misc"}, desc.Tags)

	var names []string
	for _, p := range desc.Params {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"orgId", "verbose", "limit", "id"}, names, "path item parameters first, header skipped")
	assert.True(t, desc.Params[1].Required, "operation parameter overrides the path item one")
	assert.Equal(t, ir.KindString, desc.Params[1].Type.Kind())

	var pathNames, queryNames []string
	for _, p := range desc.PathParams() {
		pathNames = append(pathNames, p.Name)
	}
	for _, p := range desc.QueryParams() {
		queryNames = append(queryNames, p.Name)
	}
	assert.Equal(t, []string{"orgId", "id"}, pathNames)
	assert.Equal(t, []string{"verbose", "limit"}, queryNames)

	require.NotNil(t, desc.Body)
	assert.Equal(t, "updateUserDto", desc.Body.ArgumentName)
	assert.Equal(t, "UpdateUserDto", desc.Body.ImportName)
	assert.True(t, desc.Body.Required, "absent required defaults to true")

	require.NotNil(t, desc.Response, "201 is read when 200 is absent")
	assert.Equal(t, "User", desc.Response.ImportName)

	assert.Contains(t, logs.String(), "X-Request-Id")
}

func TestExtractOperationInlineBody(t *testing.T) {
	doc := parseDoc(t, extractorSpec)
	item, op := operation(t, doc, "/inline", "post")
	desc := ExtractOperation("/inline", "post", item, op, nil)

	assert.Equal(t, "InlineService", desc.ServiceName)
	assert.Equal(t, "create", desc.MethodName)
	require.NotNil(t, desc.Body)
	assert.Equal(t, "bodyArgs", desc.Body.ArgumentName)
	assert.Empty(t, desc.Body.ImportName)
	assert.False(t, desc.Body.Required)
	assert.Equal(t, ir.KindObject, desc.Body.Type.Kind())

	assert.Nil(t, desc.Response, "a 200 without JSON hides the 201")
}

func TestExtractOperationFallbacks(t *testing.T) {
	doc := parseDoc(t, extractorSpec)
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	item, op := operation(t, doc, "/text", "put")
	desc := ExtractOperation("/text", "put", item, op, logger)

	assert.Equal(t, "Service", desc.ServiceName)
	assert.Equal(t, "unknownName", desc.MethodName)
	assert.Nil(t, desc.Body, "non-JSON bodies are ignored")
	require.NotNil(t, desc.Response)
	assert.Empty(t, desc.Response.ImportName, "only direct references are imported by name")
	assert.Equal(t, ir.KindArray, desc.Response.Type.Kind())
	assert.Contains(t, logs.String(), "fallback names")
}

func TestMergeParamsWithoutPathItem(t *testing.T) {
	op := &openapi.Operation{Parameters: []*openapi.Parameter{{Name: "a", In: "query"}}}
	assert.Equal(t, op.Parameters, mergeParams(nil, op))
	assert.Equal(t, op.Parameters, mergeParams(&openapi.PathItem{}, op))
}

func TestExtractParamsWithoutSchema(t *testing.T) {
	params := extractParams("/a", "get", []*openapi.Parameter{{Name: "q", In: "query"}}, slog.Default())
	require.Len(t, params, 1)
	assert.Equal(t, &ir.RefType{}, params[0].Type)
}
