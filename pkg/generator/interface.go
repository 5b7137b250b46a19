package generator

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/blimu-dev/tsclient-gen/pkg/config"
	"github.com/blimu-dev/tsclient-gen/pkg/generator/typescript"
	"github.com/blimu-dev/tsclient-gen/pkg/ir"
	"github.com/blimu-dev/tsclient-gen/pkg/openapi"
	"github.com/blimu-dev/tsclient-gen/pkg/sink"
)

// Generator renders a compiled program for one client into a sink
type Generator interface {
	Generate(ctx context.Context, client config.Client, prog *ir.Program, out sink.OutputSink) error
}

// GenerateOptions contains options for client generation
type GenerateOptions struct {
	ConfigPath   string
	SingleClient string
	// Validate forces OpenAPI validation for every client.
	Validate bool
	Fallback FallbackOptions
}

// FallbackOptions contains fallback options when no config file is provided
type FallbackOptions struct {
	Spec   string
	OutDir string
	// NoHeader disables the generated file header.
	NoHeader    bool
	IncludeTags []string
	ExcludeTags []string
}

// Service provides high-level client generation functionality
type Service struct {
	generator Generator
	logger    *slog.Logger
	// sinkFor returns the sink for a client; tests swap in memory sinks.
	sinkFor func(client config.Client) sink.OutputSink
}

// NewService creates a generator service writing TypeScript clients to disk
func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		generator: typescript.NewTypeScriptGenerator(),
		logger:    logger,
		sinkFor: func(client config.Client) sink.OutputSink {
			return sink.NewFilesystemSink(client.OutDir)
		},
	}
}

// NewServiceWithSink creates a service that writes every client to out
func NewServiceWithSink(logger *slog.Logger, out sink.OutputSink) *Service {
	s := NewService(logger)
	s.sinkFor = func(config.Client) sink.OutputSink { return out }
	return s
}

// Generate generates clients based on the provided options
func (s *Service) Generate(ctx context.Context, opts GenerateOptions) error {
	var cfg *config.Config
	var err error

	if opts.ConfigPath == "" {
		cfg = fallbackConfig(opts.Fallback)
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("either config path or --spec and --output must be provided: %w", err)
		}
	} else {
		cfg, err = config.Load(opts.ConfigPath)
		if err != nil {
			return err
		}
	}

	if opts.Validate {
		for i := range cfg.Clients {
			cfg.Clients[i].Validate = true
		}
	}

	return s.GenerateFromConfig(ctx, cfg, opts.SingleClient)
}

func fallbackConfig(opts FallbackOptions) *config.Config {
	client := config.Client{
		Name:        "default",
		OutDir:      opts.OutDir,
		IncludeTags: opts.IncludeTags,
		ExcludeTags: opts.ExcludeTags,
	}
	if opts.NoHeader {
		client.Header = []string{}
	}
	return &config.Config{Spec: opts.Spec, Clients: []config.Client{client}}
}

// GenerateFromConfig generates clients from a configuration. The document is
// fetched once and shared by every client.
func (s *Service) GenerateFromConfig(ctx context.Context, cfg *config.Config, onlyClient string) error {
	doc, data, err := openapi.Load(ctx, cfg.Spec)
	if err != nil {
		return err
	}
	s.logger.Debug("loaded document", "spec", cfg.Spec, "openapi", doc.OpenAPI)

	matched := false
	for _, client := range cfg.Clients {
		if onlyClient != "" && client.Name != onlyClient {
			continue
		}
		matched = true

		if client.Validate {
			if err := openapi.Validate(ctx, data); err != nil {
				return err
			}
		}

		prog, err := Compile(doc, Options{
			Logger:      s.logger.With("client", client.Name),
			IncludeTags: client.IncludeTags,
			ExcludeTags: client.ExcludeTags,
		})
		if err != nil {
			return err
		}

		if err := s.generateClient(ctx, client, prog); err != nil {
			return err
		}
	}

	if onlyClient != "" && !matched {
		return fmt.Errorf("client %q not found in config", onlyClient)
	}
	return nil
}

func (s *Service) generateClient(ctx context.Context, client config.Client, prog *ir.Program) error {
	// Ensure output directory exists before pre-commands
	if err := os.MkdirAll(client.OutDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory for client %s: %w", client.Name, err)
	}

	if err := s.executePreCommands(ctx, client); err != nil {
		return fmt.Errorf("pre-generation commands failed for client %s: %w", client.Name, err)
	}

	out := &sink.FilterSink{
		Next:   s.sinkFor(client),
		Skip:   client.ShouldExcludeFile,
		Logger: s.logger,
	}
	if err := s.generator.Generate(ctx, client, prog, out); err != nil {
		return fmt.Errorf("generation failed for client %s: %w", client.Name, err)
	}
	s.logger.Info("generated client",
		"client", client.Name, "outDir", client.OutDir,
		"models", len(prog.Models), "services", len(prog.Services))

	if err := s.executePostGenCommands(ctx, client); err != nil {
		return fmt.Errorf("post-generation commands failed for client %s: %w", client.Name, err)
	}
	return nil
}

// executePreCommands executes the pre-generation command for a client
func (s *Service) executePreCommands(ctx context.Context, client config.Client) error {
	command := client.GetPreCommand()
	if len(command) == 0 {
		return nil // No command to execute
	}

	return s.executeCommand(ctx, command, client.OutDir, "pre-command")
}

// executePostGenCommands executes the post-generation command for a client
func (s *Service) executePostGenCommands(ctx context.Context, client config.Client) error {
	command := client.GetPostCommand()
	if len(command) == 0 {
		return nil // No command to execute
	}

	return s.executeCommand(ctx, command, client.OutDir, "post-command")
}

// executeCommand executes a single command in Docker Compose array format
func (s *Service) executeCommand(ctx context.Context, command []string, workDir, commandLabel string) error {
	if len(command) == 0 {
		return nil
	}

	cmd := exec.CommandContext(ctx, command[0], command[1:]...)
	cmd.Dir = workDir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	cmdDescription := strings.Join(command, " ")
	s.logger.Debug("running command", "label", commandLabel, "command", cmdDescription, "dir", workDir)

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s (%s) failed: %w", commandLabel, cmdDescription, err)
	}

	return nil
}
