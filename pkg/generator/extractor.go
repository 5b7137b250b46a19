package generator

import (
	"log/slog"
	"strings"

	"github.com/blimu-dev/tsclient-gen/pkg/ir"
	"github.com/blimu-dev/tsclient-gen/pkg/openapi"
	"github.com/blimu-dev/tsclient-gen/pkg/utils"
)

const (
	fallbackServiceName = "Service"
	fallbackMethodName  = "unknownName"
	fallbackBodyArgName = "bodyArgs"
)

// SplitOperationID derives (serviceName, methodName) from an operation id of
// the form "UserController_getUser". Ids that do not split into exactly two
// segments get the fixed fallback pair.
func SplitOperationID(operationID string) (string, string) {
	service, method, _ := splitOperationID(operationID)
	return service, method
}

func splitOperationID(operationID string) (string, string, bool) {
	parts := strings.Split(operationID, "_")
	if len(parts) != 2 {
		return fallbackServiceName, fallbackMethodName, false
	}
	service := strings.Replace(parts[0], "Controller", "Service", 1)
	return utils.SafeBinding(service), utils.SanitizeIdentifier(parts[1]), true
}

// ExtractOperation builds the descriptor for one path+method pair. Parameters
// declared on the path item are passed in item and come first.
func ExtractOperation(path, method string, item *openapi.PathItem, op *openapi.Operation, logger *slog.Logger) ir.OperationDescriptor {
	if logger == nil {
		logger = slog.Default()
	}

	serviceName, methodName, ok := splitOperationID(op.OperationID)
	if !ok {
		logger.Warn("operationId does not split into two segments, using fallback names",
			"path", path, "method", method, "operationId", op.OperationID)
	}

	tags := op.Tags
	if len(tags) == 0 {
		tags = []string{untaggedTag}
	}

	return ir.OperationDescriptor{
		Path:        path,
		Method:      method,
		ServiceName: serviceName,
		MethodName:  methodName,
		Params:      extractParams(path, method, mergeParams(item, op), logger),
		Body:        extractBody(op.RequestBody),
		Response:    extractResponse(op),
		Tags:        tags,
	}
}

// mergeParams lists path item parameters first, each replaced in place by an
// operation parameter with the same name and location, followed by the
// remaining operation parameters.
func mergeParams(item *openapi.PathItem, op *openapi.Operation) []*openapi.Parameter {
	if item == nil || len(item.Parameters) == 0 {
		return op.Parameters
	}

	key := func(p *openapi.Parameter) string { return p.In + "\x00" + p.Name }
	overrides := make(map[string]*openapi.Parameter, len(op.Parameters))
	for _, p := range op.Parameters {
		overrides[key(p)] = p
	}

	merged := make([]*openapi.Parameter, 0, len(item.Parameters)+len(op.Parameters))
	used := map[string]bool{}
	for _, p := range item.Parameters {
		if o, ok := overrides[key(p)]; ok {
			merged = append(merged, o)
			used[key(p)] = true
			continue
		}
		merged = append(merged, p)
	}
	for _, p := range op.Parameters {
		if !used[key(p)] {
			merged = append(merged, p)
		}
	}
	return merged
}

func extractParams(path, method string, params []*openapi.Parameter, logger *slog.Logger) []ir.ParamDescriptor {
	out := make([]ir.ParamDescriptor, 0, len(params))
	for _, p := range params {
		loc := ir.Location(p.In)
		if loc != ir.LocationPath && loc != ir.LocationQuery {
			logger.Warn("skipping parameter with unsupported location",
				"path", path, "method", method, "parameter", p.Name, "in", p.In)
			continue
		}
		t := p.Schema
		if t == nil {
			t = &ir.RefType{}
		}
		out = append(out, ir.ParamDescriptor{
			Name:     p.Name,
			Required: p.Required,
			Location: loc,
			Type:     t,
		})
	}
	return out
}

func extractBody(body *openapi.RequestBody) *ir.ContentDescriptor {
	if body == nil {
		return nil
	}
	mt, ok := openapi.JSON(body.Content)
	if !ok {
		return nil
	}

	required := true
	if body.Required != nil {
		required = *body.Required
	}

	content := &ir.ContentDescriptor{
		ArgumentName: fallbackBodyArgName,
		Type:         mt.Schema,
		Required:     required,
	}
	if ref, isRef := mt.Schema.(*ir.RefType); isRef && ref.Name != "" {
		content.ArgumentName = utils.LowerFirst(ref.Name)
		content.ImportName = ref.Name
	}
	return content
}

// extractResponse reads 200, or 201 when 200 is absent. A 200 without a JSON
// schema means no response type even if 201 has one.
func extractResponse(op *openapi.Operation) *ir.ContentDescriptor {
	if op.Responses == nil {
		return nil
	}
	resp, ok := op.Responses.Get("200")
	if !ok {
		resp, ok = op.Responses.Get("201")
	}
	if !ok || resp == nil {
		return nil
	}
	mt, ok := openapi.JSON(resp.Content)
	if !ok {
		return nil
	}

	content := &ir.ContentDescriptor{Type: mt.Schema, Required: true}
	if ref, isRef := mt.Schema.(*ir.RefType); isRef {
		content.ImportName = ref.Name
	}
	return content
}
