package config

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

type sampleConfig struct {
	Backend  string `yaml:"backend" mapstructure:"backend"`
	Limit    int    `yaml:"limit" mapstructure:"limit"`
	Defaults bool   `yaml:"-" mapstructure:"-"`
	Nested   struct {
		Level string `yaml:"level" mapstructure:"level"`
	} `yaml:"nested" mapstructure:"nested"`
}

func (c *sampleConfig) ApplyDefaults() {
	c.Defaults = true
	if c.Limit == 0 {
		c.Limit = 5
	}
}

func (c *sampleConfig) Validate() error {
	if c.Limit < 0 {
		return errors.New("limit must not be negative")
	}
	return nil
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestLoadConfigWithYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "knife.yml", `
backend: lazy
limit: 3
nested:
  level: debug
`)

	var cfg sampleConfig
	if err := LoadConfig("knife", &cfg, WithConfigFile(path), WithEnvPrefix("KNIFE_CFGTEST")); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Backend != "lazy" || cfg.Limit != 3 || cfg.Nested.Level != "debug" {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.Defaults {
		t.Error("LoadConfig must not apply defaults")
	}
}

func TestLoad_AppliesDefaultsAndValidates(t *testing.T) {
	var cfg sampleConfig
	err := Load("knife", &cfg, WithConfigFile("/nonexistent/path.yml"), WithEnvFile("/nonexistent/.env"), WithEnvPrefix("KNIFE_CFGTEST"))
	if err != nil {
		t.Fatalf("expected Load to succeed with missing files, got %v", err)
	}
	if !cfg.Defaults || cfg.Limit != 5 {
		t.Errorf("expected defaults applied, got %+v", cfg)
	}

	dir := t.TempDir()
	path := writeFile(t, dir, "bad.yml", "limit: -1\n")
	err = Load("bad", &sampleConfig{}, WithConfigFile(path), WithEnvPrefix("KNIFE_CFGTEST"))
	if err == nil || !strings.Contains(err.Error(), "limit must not be negative") {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestLoad_EnvPrefixOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "knife.yml", "backend: eager\n")
	t.Setenv("KNIFE_CFGTEST_BACKEND", "lazy")
	t.Setenv("KNIFE_CFGTEST_NESTED_LEVEL", "warn")
	t.Setenv("BACKEND", "ignored")

	var cfg sampleConfig
	if err := Load("knife", &cfg, WithConfigFile(path), WithEnvPrefix("KNIFE_CFGTEST")); err != nil {
		t.Fatal(err)
	}
	if cfg.Backend != "lazy" {
		t.Errorf("expected env override lazy, got %q", cfg.Backend)
	}
	if cfg.Nested.Level != "warn" {
		t.Errorf("expected nested env override warn, got %q", cfg.Nested.Level)
	}
}

func TestLoad_EnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := writeFile(t, dir, ".env", "KNIFE_ENVTEST_LIMIT=9\n")
	t.Cleanup(func() { os.Unsetenv("KNIFE_ENVTEST_LIMIT") })

	var cfg sampleConfig
	if err := Load("knife", &cfg, WithConfigFile("/nonexistent.yml"), WithEnvFile(envPath), WithEnvPrefix("KNIFE_ENVTEST")); err != nil {
		t.Fatal(err)
	}
	if cfg.Limit != 9 {
		t.Errorf("expected limit from .env, got %d", cfg.Limit)
	}
}

type mockFS struct {
	files map[string]bool
}

func (m *mockFS) Exists(path string) bool  { return m.files[path] }
func (m *mockFS) LoadEnv(path string) error { return nil }

func TestResolverWithMockFS(t *testing.T) {
	tests := []struct {
		name       string
		files      []string
		wantConfig string
		wantEnv    string
	}{
		{"named yml", []string{"./knife.yml", "./config.yml"}, "./knife.yml", ""},
		{"config dir", []string{"./config/knife.yaml"}, "./config/knife.yaml", ""},
		{"fallback", []string{"./config.yml", "./.env"}, "./config.yml", "./.env"},
		{"named env first", []string{"./.env", "./.env.knife"}, "", "./.env.knife"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fs := &mockFS{files: map[string]bool{}}
			for _, f := range tc.files {
				fs.files[f] = true
			}
			resolver := &Resolver{FileSystem: fs}
			got := resolver.ResolveFiles("knife", LoaderConfig{})
			if got.ConfigFile != tc.wantConfig {
				t.Errorf("config = %q, want %q", got.ConfigFile, tc.wantConfig)
			}
			if got.EnvFile != tc.wantEnv {
				t.Errorf("env = %q, want %q", got.EnvFile, tc.wantEnv)
			}
		})
	}
}

func TestResolverExplicitPaths(t *testing.T) {
	resolver := &Resolver{FileSystem: &mockFS{}}
	got := resolver.ResolveFiles("knife", LoaderConfig{ConfigFile: "a.yml", EnvFile: "b.env"})
	if got.ConfigFile != "a.yml" || got.EnvFile != "b.env" {
		t.Errorf("expected explicit paths, got %+v", got)
	}
}

func TestOptions(t *testing.T) {
	var lc LoaderConfig
	WithFileSystem(&mockFS{})(&lc)
	WithConfigFile("/path/to/config.yml")(&lc)
	WithEnvFile("/path/to/.env")(&lc)
	WithEnvPrefix("knife_")(&lc)

	if lc.FileSystem == nil {
		t.Error("expected FileSystem to be set")
	}
	if lc.ConfigFile != "/path/to/config.yml" || lc.EnvFile != "/path/to/.env" {
		t.Errorf("unexpected paths %+v", lc)
	}
	if lc.EnvPrefix != "KNIFE" {
		t.Errorf("expected normalised prefix KNIFE, got %q", lc.EnvPrefix)
	}
}

func TestGenerateEnvKeyVariants(t *testing.T) {
	got := generateEnvKeyVariants("LOGGING_NO_COLOR")
	for _, want := range []string{"logging_no_color", "logging.no_color", "logging.no.color"} {
		if !slices.Contains(got, want) {
			t.Errorf("expected variant %q in %v", want, got)
		}
	}
	if got := generateEnvKeyVariants("POLICY"); len(got) != 1 || got[0] != "policy" {
		t.Errorf("expected single variant, got %v", got)
	}
}
