package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rupor-github/gencfg"

	"dtc/common"
)

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}

	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}

	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `version: 1
resolver:
  dpi: 120
  base_size: "12pt"
  max_inheritance_depth: 5
  max_reference_depth: 4
  variables:
    theme: dark
    brand: acme
  strict:
    missing_base: true
    circular_ref: true
document:
  layers_dir: my-layers
  output_dir: /tmp/dtc-out
  default_target: css
logging:
  console:
    level: normal
  file:
    level: debug
    destination: /tmp/test.log
    mode: append
reporting:
  destination: /tmp/test-report.zip
`

	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := LoadConfiguration(configPath)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if cfg.Version != 1 {
		t.Errorf("Version = %d, want 1", cfg.Version)
	}

	if cfg.Resolver.DPI != 120 {
		t.Errorf("DPI = %f, want 120", cfg.Resolver.DPI)
	}

	if cfg.Resolver.BaseSize != "12pt" {
		t.Errorf("BaseSize = %q, want \"12pt\"", cfg.Resolver.BaseSize)
	}

	if cfg.Resolver.MaxInheritanceDepth != 5 {
		t.Errorf("MaxInheritanceDepth = %d, want 5", cfg.Resolver.MaxInheritanceDepth)
	}

	if cfg.Resolver.MaxReferenceDepth != 4 {
		t.Errorf("MaxReferenceDepth = %d, want 4", cfg.Resolver.MaxReferenceDepth)
	}

	if cfg.Resolver.Variables["theme"] != "dark" {
		t.Errorf("Variables[theme] = %q, want \"dark\"", cfg.Resolver.Variables["theme"])
	}

	if !cfg.Resolver.Strict.MissingBase {
		t.Error("Expected Strict.MissingBase to be true")
	}

	if !cfg.Resolver.Strict.CircularRef {
		t.Error("Expected Strict.CircularRef to be true")
	}

	if cfg.Resolver.Strict.MissingVariable {
		t.Error("Expected Strict.MissingVariable to keep its default")
	}

	if cfg.Document.LayersDir != "my-layers" {
		t.Errorf("LayersDir = %q, want \"my-layers\"", cfg.Document.LayersDir)
	}

	if cfg.Document.DefaultTarget != common.TargetFmtCss {
		t.Errorf("DefaultTarget = %v, want %v", cfg.Document.DefaultTarget, common.TargetFmtCss)
	}
}

func TestLoadConfiguration_NonExistentFile(t *testing.T) {
	_, err := LoadConfiguration("/nonexistent/config.yaml")
	if err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestLoadConfiguration_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `version: 1
resolver:
  dpi: 96
  invalid indent
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	_, err := LoadConfiguration(configPath)
	if err == nil {
		t.Error("Expected error for invalid YAML")
	}
}

func TestLoadConfiguration_UnknownFields(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "unknown.yaml")

	configWithUnknown := `version: 1
unknown_field: value
resolver:
  dpi: 96
`

	if err := os.WriteFile(configPath, []byte(configWithUnknown), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	_, err := LoadConfiguration(configPath)
	if err == nil {
		t.Error("Expected error for unknown fields")
	}
}

func TestLoadConfiguration_ValidationError(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid_values.yaml")

	// Invalid version number
	configWithInvalidVersion := `version: 2
resolver:
  dpi: 96
`

	if err := os.WriteFile(configPath, []byte(configWithInvalidVersion), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	_, err := LoadConfiguration(configPath)
	if err == nil {
		t.Error("Expected validation error for invalid version")
	}
}

func TestLoadConfiguration_DepthOutOfRange(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "depth.yaml")

	configWithBadDepth := `version: 1
resolver:
  max_inheritance_depth: 0
`

	if err := os.WriteFile(configPath, []byte(configWithBadDepth), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	_, err := LoadConfiguration(configPath)
	if err == nil {
		t.Error("Expected validation error for zero inheritance depth")
	}
}

func TestLoadConfiguration_BadTarget(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "target.yaml")

	configWithBadTarget := `version: 1
document:
  default_target: pdf
`

	if err := os.WriteFile(configPath, []byte(configWithBadTarget), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	_, err := LoadConfiguration(configPath)
	if err == nil {
		t.Error("Expected error for unsupported target format")
	}
}

func TestLoadConfiguration_WithOptions(t *testing.T) {
	option := func(opts *gencfg.ProcessingOptions) {
		// Options are opaque, just test that we can pass them
	}

	cfg, err := LoadConfiguration("", option)
	if err != nil {
		t.Fatalf("LoadConfiguration() with options error = %v", err)
	}

	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}
}

func TestPrepare(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	if len(data) == 0 {
		t.Error("Prepare() returned empty data")
	}

	// Verify it's valid YAML by trying to unmarshal
	cfg := &Config{}
	_, err = unmarshalConfig(data, cfg, true)
	if err != nil {
		t.Errorf("Prepared config is not valid: %v", err)
	}
}

func TestPrepare_KeepsNameTemplate(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	// The output name template is itself template syntax and must survive
	// expansion verbatim.
	if !strings.Contains(string(data), "{{.Name}}") {
		t.Error("Prepared config lost the output name template")
	}
}

func TestDump(t *testing.T) {
	cfg := &Config{
		Version: 1,
		Resolver: ResolverConfig{
			DPI:                 96,
			BaseSize:            "16pt",
			MaxInheritanceDepth: 10,
			MaxReferenceDepth:   10,
			Variables:           map[string]string{"theme": "light"},
		},
		Document: DocumentConfig{
			LayersDir:     "layers",
			OutputDir:     "build",
			DefaultTarget: common.TargetFmtJson,
		},
	}

	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}

	if len(data) == 0 {
		t.Error("Dump() returned empty data")
	}

	// Verify we can load it back
	cfg2 := &Config{}
	_, err = unmarshalConfig(data, cfg2, false)
	if err != nil {
		t.Errorf("Dumped config cannot be loaded: %v", err)
	}

	if cfg2.Version != cfg.Version {
		t.Errorf("Version mismatch after dump/load: got %d, want %d", cfg2.Version, cfg.Version)
	}

	if cfg2.Document.DefaultTarget != common.TargetFmtJson {
		t.Errorf("DefaultTarget after dump/load = %v, want %v", cfg2.Document.DefaultTarget, common.TargetFmtJson)
	}
}

func TestUnmarshalConfig(t *testing.T) {
	t.Run("valid config without processing", func(t *testing.T) {
		data := []byte(`version: 1`)
		cfg := &Config{}

		result, err := unmarshalConfig(data, cfg, false)
		if err != nil {
			t.Errorf("unmarshalConfig() error = %v", err)
		}

		if result == nil {
			t.Fatal("unmarshalConfig() returned nil")
		}

		if result.Version != 1 {
			t.Errorf("Version = %d, want 1", result.Version)
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		data := []byte(`invalid: [yaml`)
		cfg := &Config{}

		_, err := unmarshalConfig(data, cfg, false)
		if err == nil {
			t.Error("Expected error for invalid YAML")
		}
	})
}

func TestConfig_DefaultValues(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	// Check that default values are reasonable
	if cfg.Resolver.DPI <= 0 {
		t.Errorf("DPI = %f, should be positive", cfg.Resolver.DPI)
	}

	if cfg.Resolver.BaseSize == "" {
		t.Error("BaseSize should have a default")
	}

	if cfg.Resolver.MaxInheritanceDepth < 1 || cfg.Resolver.MaxInheritanceDepth > 100 {
		t.Errorf("MaxInheritanceDepth = %d, should be between 1 and 100", cfg.Resolver.MaxInheritanceDepth)
	}

	if cfg.Resolver.MaxReferenceDepth < 1 || cfg.Resolver.MaxReferenceDepth > 100 {
		t.Errorf("MaxReferenceDepth = %d, should be between 1 and 100", cfg.Resolver.MaxReferenceDepth)
	}

	if cfg.Document.LayersDir == "" {
		t.Error("LayersDir should have a default")
	}

	if cfg.Document.OutputNameTemplate == "" {
		t.Error("OutputNameTemplate should have a default")
	}

	if !cfg.Document.DefaultTarget.IsValid() {
		t.Errorf("DefaultTarget = %v, should be valid", cfg.Document.DefaultTarget)
	}

	if cfg.Resolver.Strict.MissingBase || cfg.Resolver.Strict.CircularRef {
		t.Error("Strict conditions should default to off")
	}
}

func TestLoadConfiguration_MergeWithDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "partial.yaml")

	// Partial config that only overrides some values
	partialConfig := `version: 1
resolver:
  dpi: 72
`

	if err := os.WriteFile(configPath, []byte(partialConfig), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := LoadConfiguration(configPath)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	// Check that explicitly set value is used
	if cfg.Resolver.DPI != 72 {
		t.Errorf("DPI = %f, want 72 from config file", cfg.Resolver.DPI)
	}

	// Check that default values are still present for unspecified fields
	if cfg.Document.LayersDir == "" {
		t.Error("LayersDir should have default value")
	}

	if cfg.Resolver.MaxInheritanceDepth < 1 {
		t.Error("MaxInheritanceDepth should have default value")
	}
}

func TestTargetFmt_String(t *testing.T) {
	tests := []struct {
		fmt      common.TargetFmt
		expected string
	}{
		{common.TargetFmtOoxml, "ooxml"},
		{common.TargetFmtCss, "css"},
		{common.TargetFmtJson, "json"},
		{common.TargetFmt(99), "TargetFmt(99)"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			got := tt.fmt.String()
			if got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestTargetFmt_IsValid(t *testing.T) {
	tests := []struct {
		fmt   common.TargetFmt
		valid bool
	}{
		{common.TargetFmtOoxml, true},
		{common.TargetFmtCss, true},
		{common.TargetFmtJson, true},
		{common.TargetFmt(99), false},
		{common.TargetFmt(-1), false},
	}

	for _, tt := range tests {
		t.Run(tt.fmt.String(), func(t *testing.T) {
			got := tt.fmt.IsValid()
			if got != tt.valid {
				t.Errorf("IsValid() = %v, want %v", got, tt.valid)
			}
		})
	}
}

func TestParseTargetFmt(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  common.TargetFmt
		shouldErr bool
	}{
		{"ooxml lowercase", "ooxml", common.TargetFmtOoxml, false},
		{"OOXML uppercase", "OOXML", common.TargetFmtOoxml, false},
		{"css", "css", common.TargetFmtCss, false},
		{"json", "json", common.TargetFmtJson, false},
		{"invalid", "invalid", common.TargetFmt(0), true},
		{"empty", "", common.TargetFmt(0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := common.ParseTargetFmt(tt.input)
			if tt.shouldErr {
				if err == nil {
					t.Error("Expected error, got nil")
				}
			} else {
				if err != nil {
					t.Errorf("Unexpected error: %v", err)
				}
				if got != tt.expected {
					t.Errorf("common.ParseTargetFmt(%q) = %v, want %v", tt.input, got, tt.expected)
				}
			}
		})
	}
}

func TestMustParseTargetFmt(t *testing.T) {
	t.Run("valid value", func(t *testing.T) {
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("common.MustParseTargetFmt panicked unexpectedly: %v", r)
			}
		}()
		got := common.MustParseTargetFmt("ooxml")
		if got != common.TargetFmtOoxml {
			t.Errorf("common.MustParseTargetFmt(\"ooxml\") = %v, want %v", got, common.TargetFmtOoxml)
		}
	})

	t.Run("invalid value panics", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("common.MustParseTargetFmt should have panicked")
			}
		}()
		common.MustParseTargetFmt("invalid")
	})
}

func TestTargetFmt_MarshalText(t *testing.T) {
	tests := []struct {
		fmt      common.TargetFmt
		expected string
	}{
		{common.TargetFmtOoxml, "ooxml"},
		{common.TargetFmtCss, "css"},
		{common.TargetFmtJson, "json"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			got, err := tt.fmt.MarshalText()
			if err != nil {
				t.Errorf("MarshalText() error = %v", err)
			}
			if string(got) != tt.expected {
				t.Errorf("MarshalText() = %q, want %q", string(got), tt.expected)
			}
		})
	}
}

func TestTargetFmt_UnmarshalText(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  common.TargetFmt
		shouldErr bool
	}{
		{"ooxml", "ooxml", common.TargetFmtOoxml, false},
		{"css", "css", common.TargetFmtCss, false},
		{"json", "json", common.TargetFmtJson, false},
		{"invalid", "invalid", common.TargetFmt(0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var fmt common.TargetFmt
			err := fmt.UnmarshalText([]byte(tt.input))
			if tt.shouldErr {
				if err == nil {
					t.Error("Expected error, got nil")
				}
			} else {
				if err != nil {
					t.Errorf("UnmarshalText() error = %v", err)
				}
				if fmt != tt.expected {
					t.Errorf("UnmarshalText(%q) = %v, want %v", tt.input, fmt, tt.expected)
				}
			}
		})
	}
}

func TestTargetFmtNames(t *testing.T) {
	names := common.TargetFmtNames()
	expected := []string{"ooxml", "css", "json"}

	if len(names) != len(expected) {
		t.Errorf("common.TargetFmtNames() length = %d, want %d", len(names), len(expected))
	}

	for i, name := range expected {
		if names[i] != name {
			t.Errorf("common.TargetFmtNames()[%d] = %q, want %q", i, names[i], name)
		}
	}
}

func TestTargetFmt_Inline(t *testing.T) {
	tests := []struct {
		fmt      common.TargetFmt
		expected bool
	}{
		{common.TargetFmtOoxml, false},
		{common.TargetFmtCss, true},
		{common.TargetFmtJson, false},
	}

	for _, tt := range tests {
		t.Run(tt.fmt.String(), func(t *testing.T) {
			got := tt.fmt.Inline()
			if got != tt.expected {
				t.Errorf("Inline() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestTargetFmt_Ext(t *testing.T) {
	tests := []struct {
		fmt      common.TargetFmt
		expected string
	}{
		{common.TargetFmtOoxml, ".xml"},
		{common.TargetFmtCss, ".css"},
		{common.TargetFmtJson, ".json"},
	}

	for _, tt := range tests {
		t.Run(tt.fmt.String(), func(t *testing.T) {
			got := tt.fmt.Ext()
			if got != tt.expected {
				t.Errorf("Ext() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestTargetFmt_Ext_Panic(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Ext() should panic for invalid format")
		}
	}()
	invalidFmt := common.TargetFmt(99)
	invalidFmt.Ext()
}

func TestUnmarshalConfig_WrapsValidationError(t *testing.T) {
	// version: 99 will fail validation (validate:"eq=1").
	data := []byte("version: 99\n")
	cfg := &Config{}

	_, err := unmarshalConfig(data, cfg, true)
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}

	if !strings.Contains(err.Error(), "validat") {
		t.Errorf("expected error to mention validation, got: %v", err)
	}

	// The underlying validation error must stay reachable through the chain.
	if errors.Unwrap(err) == nil {
		t.Errorf("expected wrapped error (errors.Unwrap non-nil), got bare error: %v", err)
	}
}
