package generator

import (
	"context"
	"path/filepath"

	"github.com/blimu-dev/tsclient-gen/pkg/config"
	"github.com/blimu-dev/tsclient-gen/pkg/openapi"
)

// GenerateClient is a convenience function for generating clients with minimal configuration
func GenerateClient(ctx context.Context, opts GenerateClientOptions) error {
	service := NewService(nil)

	genOpts := GenerateOptions{
		ConfigPath:   opts.ConfigPath,
		SingleClient: opts.SingleClient,
		Validate:     opts.Validate,
		Fallback: FallbackOptions{
			Spec:        opts.Spec,
			OutDir:      opts.OutDir,
			NoHeader:    opts.NoHeader,
			IncludeTags: opts.IncludeTags,
			ExcludeTags: opts.ExcludeTags,
		},
	}

	return service.Generate(ctx, genOpts)
}

// GenerateClientOptions contains options for the convenience GenerateClient function
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

// GenerateTypeScriptClient generates a client for spec into outDir
func GenerateTypeScriptClient(ctx context.Context, spec, outDir string) error {
	// Ensure absolute path for outDir
	absOutDir, err := filepath.Abs(outDir)
	if err != nil {
		return err
	}

	return GenerateClient(ctx, GenerateClientOptions{
		Spec:   spec,
		OutDir: absOutDir,
	})
}

// GenerateFromConfig is a convenience function for generating from a config file
func GenerateFromConfig(ctx context.Context, configPath string, singleClient ...string) error {
	service := NewService(nil)
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	onlyClient := ""
	if len(singleClient) > 0 {
		onlyClient = singleClient[0]
	}

	return service.GenerateFromConfig(ctx, cfg, onlyClient)
}

// ValidateSpec validates an OpenAPI specification
func ValidateSpec(ctx context.Context, specPath string) error {
	return openapi.ValidateDocument(ctx, specPath)
}
