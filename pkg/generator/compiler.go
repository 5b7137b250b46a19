package generator

import (
	"log/slog"

	"github.com/blimu-dev/tsclient-gen/pkg/ir"
	"github.com/blimu-dev/tsclient-gen/pkg/openapi"
)

// supportedMethods are the only operation keys a path item may carry.
var supportedMethods = map[string]bool{
	"post":   true,
	"get":    true,
	"patch":  true,
	"delete": true,
	"put":    true,
}

// Options tunes a compilation.
type Options struct {
	Logger *slog.Logger
	// IncludeTags and ExcludeTags are regex patterns matched against
	// operation tags. Untagged operations are tagged "misc".
	IncludeTags []string
	ExcludeTags []string
}

// Compile turns a parsed document into models and service units. Paths,
// methods and schemas are visited in declaration order, so the result is
// deterministic for a given document.
//
// Any path carrying an unsupported method key fails the whole compilation
// with an *UnknownMethodError before a single operation is processed.
func Compile(doc *openapi.Document, opts Options) (*ir.Program, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	include, exclude, err := compileTagFilters(opts.IncludeTags, opts.ExcludeTags)
	if err != nil {
		return nil, err
	}

	if err := checkMethods(doc); err != nil {
		return nil, err
	}

	for _, w := range doc.Warnings {
		logger.Warn(w)
	}

	prog := &ir.Program{}
	for name, t := range doc.Schemas.FromOldest() {
		prog.Models = append(prog.Models, ir.ModelEntry{Name: name, Type: t})
	}

	agg := NewAggregator()
	for path, item := range doc.Paths.FromOldest() {
		if item == nil || item.Operations.Len() == 0 {
			logger.Warn("skipping path without operations", "path", path)
			continue
		}
		for method, op := range item.Operations.FromOldest() {
			desc := ExtractOperation(path, method, item, op, logger)
			if !shouldIncludeOperation(desc.Tags, include, exclude) {
				logger.Debug("operation filtered out by tags", "path", path, "method", method, "tags", desc.Tags)
				continue
			}
			agg.Register(desc)
		}
	}
	prog.Services = agg.Services()

	logger.Debug("compiled document",
		"models", len(prog.Models), "services", len(prog.Services))
	return prog, nil
}

func checkMethods(doc *openapi.Document) error {
	for path, item := range doc.Paths.FromOldest() {
		if item == nil {
			continue
		}
		var unknown []string
		for method := range item.Operations.FromOldest() {
			if !supportedMethods[method] {
				unknown = append(unknown, method)
			}
		}
		if len(unknown) > 0 {
			return &UnknownMethodError{Path: path, Methods: unknown}
		}
	}
	return nil
}
