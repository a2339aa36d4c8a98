package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg := LoadConfig(filepath.Join(dir, "missing.env"), filepath.Join(dir, "missing.toml"))

	if cfg.Server.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Server.Port)
	}
	if cfg.Session.TTLHours != 12 {
		t.Fatalf("expected 12h session ttl, got %d", cfg.Session.TTLHours)
	}
	if !cfg.Database.SeedFixture {
		t.Fatalf("fixtures should be seeded by default")
	}
	if cfg.Site.Name == "" {
		t.Fatalf("expected default site name")
	}
}

func TestLoadConfigReadsEnvFileAndSite(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "test.env")
	siteFile := filepath.Join(dir, "site.toml")

	env := "SERVER_PORT=9191\nSTRICT_ORDER_TRANSITIONS=true\nCORS_ORIGINS=http://a.test, http://b.test\n"
	if err := os.WriteFile(envFile, []byte(env), 0o600); err != nil {
		t.Fatalf("write env: %v", err)
	}
	site := "[site]\nname = \"Doceria Teste\"\ncurrency = \"USD\"\n"
	if err := os.WriteFile(siteFile, []byte(site), 0o600); err != nil {
		t.Fatalf("write site: %v", err)
	}

	cfg := LoadConfig(envFile, siteFile)
	if cfg.Server.Port != "9191" {
		t.Fatalf("expected port from env file, got %q", cfg.Server.Port)
	}
	if !cfg.Business.StrictOrderTransitions {
		t.Fatalf("expected strict transitions enabled")
	}
	if len(cfg.Server.CORSOrigins) != 2 || cfg.Server.CORSOrigins[1] != "http://b.test" {
		t.Fatalf("unexpected cors origins %v", cfg.Server.CORSOrigins)
	}
	if cfg.Site.Name != "Doceria Teste" || cfg.Site.Currency != "USD" {
		t.Fatalf("site info not loaded: %+v", cfg.Site)
	}
}
