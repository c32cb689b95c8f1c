package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFrom(t *testing.T) {
	path := writeConfig(t, `
dir = "/home/ada/notes"
editor = "hx"
author = "Ada"
template = "/home/ada/template.yml"
preview_markdown = ["glow", "-p"]
`)

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.Dir != "/home/ada/notes" || cfg.Editor != "hx" || cfg.Author != "Ada" {
		t.Errorf("cfg = %+v", cfg)
	}
	if len(cfg.PreviewMarkdown) != 2 || cfg.PreviewMarkdown[0] != "glow" {
		t.Errorf("PreviewMarkdown = %v", cfg.PreviewMarkdown)
	}
}

func TestLoadFrom_Invalid(t *testing.T) {
	path := writeConfig(t, "dir = [not toml")
	if _, err := LoadFrom(path); err == nil {
		t.Error("invalid toml should fail")
	}
}

func TestResolveDir(t *testing.T) {
	cfg := &Config{Dir: "/from/config"}

	t.Run("flag wins", func(t *testing.T) {
		t.Setenv(EnvDir, "/from/env")
		if got := cfg.ResolveDir("/from/flag"); got != "/from/flag" {
			t.Errorf("ResolveDir = %q", got)
		}
	})

	t.Run("env beats config", func(t *testing.T) {
		t.Setenv(EnvDir, "/from/env")
		if got := cfg.ResolveDir(""); got != "/from/env" {
			t.Errorf("ResolveDir = %q", got)
		}
	})

	t.Run("config beats cwd", func(t *testing.T) {
		t.Setenv(EnvDir, "")
		if got := cfg.ResolveDir(""); got != "/from/config" {
			t.Errorf("ResolveDir = %q", got)
		}
	})

	t.Run("cwd fallback", func(t *testing.T) {
		t.Setenv(EnvDir, "")
		empty := &Config{}
		if got := empty.ResolveDir(""); got != "." {
			t.Errorf("ResolveDir = %q", got)
		}
	})
}

func TestGetAuthor(t *testing.T) {
	cfg := &Config{Author: "Config Author"}

	t.Setenv(EnvAuthor, "Env Author")
	if got := cfg.GetAuthor(); got != "Env Author" {
		t.Errorf("GetAuthor = %q", got)
	}

	t.Setenv(EnvAuthor, "")
	if got := cfg.GetAuthor(); got != "Config Author" {
		t.Errorf("GetAuthor = %q", got)
	}
}

func TestLoadRootEnv(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, ".env"), []byte("NOTA_AUTHOR=Root Author\n"), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv(EnvAuthor, "")
	os.Unsetenv(EnvAuthor)
	LoadRootEnv(root)
	if got := os.Getenv(EnvAuthor); got != "Root Author" {
		t.Errorf("NOTA_AUTHOR = %q after LoadRootEnv", got)
	}

	// The real environment wins over the root .env.
	t.Setenv(EnvAuthor, "Process Author")
	LoadRootEnv(root)
	if got := os.Getenv(EnvAuthor); got != "Process Author" {
		t.Errorf("NOTA_AUTHOR = %q, .env must not override the environment", got)
	}
}
