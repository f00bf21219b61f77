package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Kinds recognized in task declarations.
var knownKinds = map[string]bool{
	"material": true,
	"ibl":      true,
	"mesh":     true,
}

// Load reads and validates an assetbake.yaml file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	return &cfg, nil
}

// ValidationError holds multiple validation failures.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed:\n  - %s", strings.Join(e.Errors, "\n  - "))
}

// Validate checks a Config for semantic correctness.
// Returns a list of validation error messages (empty if valid).
func Validate(cfg *Config) []string {
	var errs []string

	if cfg.Version != 1 {
		errs = append(errs, fmt.Sprintf("unsupported version %d — only version 1 is supported", cfg.Version))
	}

	if len(cfg.Tasks) == 0 {
		errs = append(errs, "at least one task is required")
	}

	names := make(map[string]bool)
	for i, t := range cfg.Tasks {
		prefix := fmt.Sprintf("task[%d]", i)
		if t.ResolvedName() != "" {
			prefix = fmt.Sprintf("task '%s'", t.ResolvedName())
		}

		if t.Kind == "" {
			errs = append(errs, fmt.Sprintf("%s: 'kind' is required", prefix))
		} else if !knownKinds[t.Kind] {
			errs = append(errs, fmt.Sprintf("%s: unknown kind '%s'", prefix, t.Kind))
		}

		if t.Input == "" {
			errs = append(errs, fmt.Sprintf("%s: 'input' is required", prefix))
		}
		if t.Output == "" {
			errs = append(errs, fmt.Sprintf("%s: 'output' is required", prefix))
		}

		name := t.ResolvedName()
		if name != "" {
			if names[name] {
				errs = append(errs, fmt.Sprintf("%s: duplicate task name '%s'", prefix, name))
			}
			names[name] = true
		}
	}

	return errs
}

// Environment variables overriding configured tool paths.
const (
	EnvMatc     = "ASSETBAKE_MATC"
	EnvCmgen    = "ASSETBAKE_CMGEN"
	EnvFilamesh = "ASSETBAKE_FILAMESH"
)

// ToolPath resolves the executable for a task kind.
// Resolution order: environment override, configured path, bare tool name
// (left for PATH lookup). Resolved once per build invocation.
func (c *Config) ToolPath(kind string) (string, error) {
	var env, configured, fallback string
	switch kind {
	case "material":
		env, configured, fallback = EnvMatc, c.Tools.Matc, "matc"
	case "ibl":
		env, configured, fallback = EnvCmgen, c.Tools.Cmgen, "cmgen"
	case "mesh":
		env, configured, fallback = EnvFilamesh, c.Tools.Filamesh, "filamesh"
	default:
		return "", fmt.Errorf("unknown task kind '%s'", kind)
	}

	if v := os.Getenv(env); v != "" {
		return v, nil
	}
	if configured != "" {
		return configured, nil
	}
	return fallback, nil
}
