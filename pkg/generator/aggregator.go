package generator

import (
	"github.com/pb33f/libopenapi/orderedmap"

	"github.com/blimu-dev/tsclient-gen/pkg/ir"
)

// Aggregator groups operations into service units. It owns the unit table
// for a single compilation and is not safe for concurrent use.
type Aggregator struct {
	units *orderedmap.Map[string, *ir.ServiceUnit]
}

// NewAggregator creates an empty aggregator
func NewAggregator() *Aggregator {
	return &Aggregator{units: orderedmap.New[string, *ir.ServiceUnit]()}
}

// Register upserts the operation's service unit and method. A method name seen
// before replaces the earlier operation in its original slot. Imports only
// ever grow.
func (a *Aggregator) Register(op ir.OperationDescriptor) {
	unit, ok := a.units.Get(op.ServiceName)
	if !ok {
		unit = ir.NewServiceUnit(op.ServiceName)
		a.units.Set(op.ServiceName, unit)
	}

	unit.Operations.Set(op.MethodName, op)

	for _, name := range operationImports(op) {
		unit.Imports.Set(name, struct{}{})
	}
}

// Services returns the units in first-registration order.
func (a *Aggregator) Services() []*ir.ServiceUnit {
	out := make([]*ir.ServiceUnit, 0, a.units.Len())
	for _, unit := range a.units.FromOldest() {
		out = append(out, unit)
	}
	return out
}

// operationImports lists the model names an operation's signature refers to:
// the body import first, then names nested in the body, the response and the
// parameters. The result may contain duplicates.
func operationImports(op ir.OperationDescriptor) []string {
	var names []string
	if op.Body != nil {
		if op.Body.ImportName != "" {
			names = append(names, op.Body.ImportName)
		}
		names = append(names, ir.ComplexNames(op.Body.Type)...)
	}
	if op.Response != nil {
		names = append(names, ir.ComplexNames(op.Response.Type)...)
	}
	for _, p := range op.Params {
		names = append(names, ir.ComplexNames(p.Type)...)
	}
	return names
}
