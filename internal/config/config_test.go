package config

import (
	"os"
	"testing"
)

func TestLoadConfig_Defaults(t *testing.T) {
	os.Unsetenv("MONGO_URI")
	os.Unsetenv("DB_NAME")
	os.Unsetenv("COLLECTION_NAME")
	os.Unsetenv("PORT")
	os.Unsetenv("SECRET_KEY")
	os.Unsetenv("DEBUG")
	os.Unsetenv("MONGO_TIMEOUT")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.MongoDB.URI != "" {
		t.Fatalf("expected empty MONGO_URI by default, got %q", cfg.MongoDB.URI)
	}
	if cfg.MongoDB.Database != "mydatabase" {
		t.Fatalf("unexpected default database: %q", cfg.MongoDB.Database)
	}
	if cfg.MongoDB.Collection != "submissions" {
		t.Fatalf("unexpected default collection: %q", cfg.MongoDB.Collection)
	}
	if cfg.Server.Port != "5000" {
		t.Fatalf("unexpected default port: %q", cfg.Server.Port)
	}
	if !cfg.Server.Debug {
		t.Fatal("expected debug to default to true")
	}
	if cfg.Admin.SecretKey != "change_this_in_production" {
		t.Fatalf("unexpected default secret key: %q", cfg.Admin.SecretKey)
	}
	if cfg.MongoDB.Timeout.Seconds() != 5 {
		t.Fatalf("unexpected default mongo timeout: %v", cfg.MongoDB.Timeout)
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("DB_NAME", "formbridge_test")
	t.Setenv("COLLECTION_NAME", "inbox")
	t.Setenv("PORT", "8081")
	t.Setenv("DEBUG", "false")
	t.Setenv("SECRET_KEY", "testsecret123456789012345678901234")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.MongoDB.URI != "mongodb://localhost:27017" {
		t.Fatalf("unexpected URI: %q", cfg.MongoDB.URI)
	}
	if cfg.MongoDB.Database != "formbridge_test" || cfg.MongoDB.Collection != "inbox" {
		t.Fatalf("unexpected mongo config: %+v", cfg.MongoDB)
	}
	if cfg.Server.Port != "8081" {
		t.Fatalf("unexpected port: %q", cfg.Server.Port)
	}
	if cfg.Server.Debug {
		t.Fatal("expected debug to be disabled")
	}
	if cfg.Admin.SecretKey == "change_this_in_production" {
		t.Fatal("secret key override not applied")
	}
}
