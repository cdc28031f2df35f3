package config

import "testing"

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_USER", "wp")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "wordpress")
	t.Setenv("WC_URL", "https://shop.example")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)
	t.Setenv("DB_PORT", "")
	t.Setenv("DB_TABLE_PREFIX", "")
	t.Setenv("PG_DB_PORT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.MySQL.Port != "3306" {
		t.Errorf("mysql port = %q, want 3306", cfg.MySQL.Port)
	}
	if cfg.MySQL.TablePrefix != "wp_" {
		t.Errorf("table prefix = %q, want wp_", cfg.MySQL.TablePrefix)
	}
	if cfg.Postgres.Port != "5432" {
		t.Errorf("postgres port = %q, want 5432", cfg.Postgres.Port)
	}
	if cfg.QuerySubject != "support.queries" {
		t.Errorf("query subject = %q", cfg.QuerySubject)
	}
}

func TestLoadMissingRequired(t *testing.T) {
	setRequired(t)
	t.Setenv("DB_PASSWORD", "")

	if _, err := Load(); err == nil {
		t.Error("Load() = nil error without DB_PASSWORD")
	}
}

func TestLoadRejectsBadStoreURL(t *testing.T) {
	setRequired(t)
	t.Setenv("WC_URL", "not a url")

	if _, err := Load(); err == nil {
		t.Error("Load() = nil error with invalid WC_URL")
	}
}
