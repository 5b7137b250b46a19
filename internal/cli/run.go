package cli

import (
	"context"
	"errors"
	"log/slog"

	"github.com/blimu-dev/tsclient-gen/pkg/generator"
	"github.com/blimu-dev/tsclient-gen/pkg/openapi"
)

type FallbackParams struct {
	Spec        string
	OutDir      string
	Header      bool
	IncludeTags []string
	ExcludeTags []string
}

type RunGenerateParams struct {
	ConfigPath   string
	SingleClient string
	Validate     bool
	Fallback     FallbackParams
}

func RunValidate(ctx context.Context, spec string) error {
	if spec == "" {
		return errors.New("--spec must be provided")
	}
	return openapi.ValidateDocument(ctx, spec)
}

func RunGenerate(ctx context.Context, logger *slog.Logger, p RunGenerateParams) error {
	if p.ConfigPath == "" && (p.Fallback.Spec == "" || p.Fallback.OutDir == "") {
		return errors.New("either --config or both --spec and --output must be provided")
	}
	if p.ConfigPath != "" && p.Fallback.Spec != "" {
		logger.Warn("--config is set, ignoring --spec and related flags")
	}

	service := generator.NewService(logger)
	return service.Generate(ctx, generator.GenerateOptions{
		ConfigPath:   p.ConfigPath,
		SingleClient: p.SingleClient,
		Validate:     p.Validate,
		Fallback: generator.FallbackOptions{
			Spec:        specLocation(p.Fallback.Spec),
			OutDir:      absPath(p.Fallback.OutDir),
			NoHeader:    !p.Fallback.Header,
			IncludeTags: p.Fallback.IncludeTags,
			ExcludeTags: p.Fallback.ExcludeTags,
		},
	})
}
