package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = newValidator()

// Config represents the complete configuration for client generation
type Config struct {
	// Spec is a local path or an HTTP(S) URL of an OpenAPI v3 document.
	Spec    string   `yaml:"spec" validate:"required"`
	Clients []Client `yaml:"clients" validate:"required,min=1,unique=Name,dive"`
}

// Client represents configuration for a single generated client
type Client struct {
	Name   string `yaml:"name" validate:"required"`
	OutDir string `yaml:"outDir" validate:"required"`
	// Header lines are prepended to every generated file. Nil means the
	// generator default; an empty list disables the header.
	Header      []string `yaml:"header"`
	IncludeTags []string `yaml:"includeTags" validate:"dive,required"`
	ExcludeTags []string `yaml:"excludeTags" validate:"dive,required"`
	// PreCommand is an optional command to run before generation starts.
	// Uses Docker Compose array format: ["rm", "-rf", "services"]
	// The command will be executed in the output directory.
	PreCommand []string `yaml:"preCommand"`
	// PostCommand is an optional command to run after generation completes.
	// Uses Docker Compose array format: ["npx", "prettier", "--write", "."]
	// The command will be executed in the output directory.
	PostCommand []string `yaml:"postCommand"`
	// ExcludeFiles is a list of file paths (relative to outDir) that should not be generated
	// Example: ["utils.ts", "services/"]
	ExcludeFiles []string `yaml:"exclude" validate:"dive,required"`
	// Validate runs full OpenAPI validation before generating this client.
	Validate bool `yaml:"validate"`
}

// GetPreCommand returns the pre-generation command to execute.
func (c *Client) GetPreCommand() []string {
	return c.PreCommand
}

// GetPostCommand returns the post-generation command to execute.
func (c *Client) GetPostCommand() []string {
	return c.PostCommand
}

// ShouldExcludeFile reports whether a generated file, given by its path
// relative to OutDir, is listed in ExcludeFiles either directly or through
// one of its parent directories.
func (c *Client) ShouldExcludeFile(relPath string) bool {
	if len(c.ExcludeFiles) == 0 {
		return false
	}

	relPath = filepath.ToSlash(filepath.Clean(relPath))

	for _, excludePattern := range c.ExcludeFiles {
		normalizedExclude := strings.TrimSuffix(filepath.ToSlash(excludePattern), "/")

		// Exact match
		if relPath == normalizedExclude {
			return true
		}

		// "services" and "services/" both cover "services/UserService.ts"
		if normalizedExclude != "" && strings.HasPrefix(relPath, normalizedExclude+"/") {
			return true
		}
	}

	return false
}

// Load loads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	cfg.absolutize()
	return &cfg, nil
}

// Validate checks required fields and client name uniqueness.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationErrors(err)
	}
	return nil
}

// absolutize resolves relative output directories and local spec paths
// against the working directory.
func (c *Config) absolutize() {
	for i := range c.Clients {
		cl := &c.Clients[i]
		if !filepath.IsAbs(cl.OutDir) {
			abs, _ := filepath.Abs(cl.OutDir)
			cl.OutDir = abs
		}
	}
	// Do not absolutize when spec is an HTTP(S) URL
	if IsRemote(c.Spec) {
		return
	}
	if !filepath.IsAbs(c.Spec) {
		abs, _ := filepath.Abs(c.Spec)
		c.Spec = abs
	}
}

// IsRemote reports whether a spec location is an HTTP(S) URL.
func IsRemote(location string) bool {
	u, err := url.Parse(location)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https")
}

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their YAML names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func formatValidationErrors(err error) error {
	var valErrs validator.ValidationErrors
	if !errors.As(err, &valErrs) {
		return err
	}
	messages := make([]string, 0, len(valErrs))
	for _, ve := range valErrs {
		field := strings.TrimPrefix(ve.Namespace(), "Config.")
		messages = append(messages, field+": "+formatValidationError(ve))
	}
	return fmt.Errorf("%s", strings.Join(messages, "; "))
}

// formatValidationError converts a validator.FieldError to a human-readable message.
func formatValidationError(ve validator.FieldError) string {
	switch ve.Tag() {
	case "required":
		return "required"
	case "min":
		return fmt.Sprintf("must have at least %s entries", ve.Param())
	case "unique":
		return fmt.Sprintf("%s must be unique", strings.ToLower(ve.Param()))
	default:
		if ve.Param() != "" {
			return fmt.Sprintf("failed %s=%s validation", ve.Tag(), ve.Param())
		}
		return fmt.Sprintf("failed %s validation", ve.Tag())
	}
}
