// Package tsclientgen generates typed TypeScript clients from OpenAPI v3 specifications.
//
// The generated client contains a models.ts file with one type alias per
// component schema, a utils.ts file declaring the Adapter and Configuration
// types, and one class per service under services/. Every service method calls
// the injected adapter with the request url, method, query parameters and body.
//
// Quick Start:
//
//	import "github.com/blimu-dev/tsclient-gen"
//
//	err := tsclientgen.GenerateTypeScriptClient(ctx,
//		"https://petstore3.swagger.io/api/v3/openapi.json",
//		"./generated-client",
//	)
//
// For more advanced usage, see the generator package.
package tsclientgen

import (
	"context"

	"github.com/blimu-dev/tsclient-gen/pkg/generator"
)

// GenerateTypeScriptClient generates a client for spec into outDir using the
// default header and no tag filters.
//
// Parameters:
//   - spec: Path to OpenAPI specification file or HTTP(S) URL
//   - outDir: Output directory for the generated client
func GenerateTypeScriptClient(ctx context.Context, spec, outDir string) error {
	return generator.GenerateTypeScriptClient(ctx, spec, outDir)
}

// GenerateClient generates a client with full configuration options.
//
// Example:
//
//	err := tsclientgen.GenerateClient(ctx, tsclientgen.GenerateClientOptions{
//		Spec:        "./openapi.yaml",
//		OutDir:      "./client",
//		IncludeTags: []string{"users", "orders"},
//		ExcludeTags: []string{"internal"},
//	})
func GenerateClient(ctx context.Context, opts GenerateClientOptions) error {
	return generator.GenerateClient(ctx, generator.GenerateClientOptions{
		ConfigPath:   opts.ConfigPath,
		SingleClient: opts.SingleClient,
		Validate:     opts.Validate,
		Spec:         opts.Spec,
		OutDir:       opts.OutDir,
		NoHeader:     opts.NoHeader,
		IncludeTags:  opts.IncludeTags,
		ExcludeTags:  opts.ExcludeTags,
	})
}

// GenerateFromConfig generates clients from a YAML configuration file.
// Optionally, you can specify a single client name to generate only that client.
//
// Example:
//
//	// Generate all clients from config
//	err := tsclientgen.GenerateFromConfig(ctx, "./tsclient-gen.yaml")
//
//	// Generate only a specific client
//	err := tsclientgen.GenerateFromConfig(ctx, "./tsclient-gen.yaml", "admin")
func GenerateFromConfig(ctx context.Context, configPath string, singleClient ...string) error {
	return generator.GenerateFromConfig(ctx, configPath, singleClient...)
}

// ValidateSpec validates an OpenAPI specification file or URL.
func ValidateSpec(ctx context.Context, specPath string) error {
	return generator.ValidateSpec(ctx, specPath)
}

// GenerateClientOptions contains options for client generation
type GenerateClientOptions struct {
	// ConfigPath is the path to the configuration file (optional)
	ConfigPath string

	// SingleClient generates only the named client from config (optional)
	SingleClient string

	// Validate runs OpenAPI validation before generating
	Validate bool

	// Fallback options when no config file is provided
	Spec        string   // OpenAPI spec file or URL
	OutDir      string   // Output directory
	NoHeader    bool     // Omit the generated file header
	IncludeTags []string // Regex patterns for tags to include
	ExcludeTags []string // Regex patterns for tags to exclude
}
