package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	data := `{
		"providers": {
			"openrouter": {
				"api_key": "sk-test",
				"model": "openai/gpt-5.2",
				"base_url": "https://openrouter.ai/api/v1",
				"enabled": true
			},
			"openai": {
				"api_key": "sk-unused",
				"enabled": false
			}
		}
	}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	name, p := cfg.GetDefaultProvider()
	if name != "openrouter" {
		t.Errorf("default provider = %s, want openrouter", name)
	}
	if p.APIKey != "sk-test" || p.Model != "openai/gpt-5.2" {
		t.Errorf("unexpected provider config: %+v", p)
	}
	if p.BaseURL != "https://openrouter.ai/api/v1" {
		t.Errorf("unexpected base url: %s", p.BaseURL)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("Load should fail for a missing file")
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load should fail for malformed JSON")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	name, p := cfg.GetDefaultProvider()
	if name != "openai" {
		t.Errorf("default provider = %s, want openai", name)
	}
	if p.APIKey != "" {
		t.Error("default config must not carry static credentials")
	}
}

func TestGetDefaultProvider_NoneEnabled(t *testing.T) {
	cfg := &Config{Providers: map[string]ProviderConfig{
		"openai": {Enabled: false},
	}}
	if name, _ := cfg.GetDefaultProvider(); name != "" {
		t.Errorf("expected no provider, got %s", name)
	}
}
