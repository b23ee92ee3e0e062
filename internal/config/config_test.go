package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URI", "postgres://localhost/todos")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("ADVICE_URL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DatabaseURI != "postgres://localhost/todos" {
		t.Fatalf("database uri: %q", cfg.DatabaseURI)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("expected default addr, got %q", cfg.HTTPAddr)
	}
	if cfg.AdviceURL != "https://api.adviceslip.com/advice" {
		t.Fatalf("expected default advice url, got %q", cfg.AdviceURL)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("AI_MODEL", "some/model")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTPAddr != ":9999" {
		t.Fatalf("addr override ignored: %q", cfg.HTTPAddr)
	}
	if cfg.AIModel != "some/model" {
		t.Fatalf("model override ignored: %q", cfg.AIModel)
	}
}
