package project

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	content := `
[project]
name = "demo"
version = "1.2.3"
entry = "app.lum"

[language]
exponentiation_operator = false
strict_octal = true
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Project.Name != "demo" || cfg.Project.Version != "1.2.3" {
		t.Errorf("project info mismatch: %+v", cfg.Project)
	}
	if cfg.Language.ExponentiationOperator {
		t.Error("exponentiation_operator should be false")
	}
	if !cfg.Language.StrictOctal {
		t.Error("strict_octal should be true")
	}
	if cfg.ScannerOptions().AllowExponentiationOperator {
		t.Error("scanner options should mirror the language switch")
	}
}

func TestSaveAndReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)

	cfg := GenerateDefault(dir)
	if err := cfg.Save(path); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Project.Name != cfg.Project.Name {
		t.Errorf("name mismatch: got %q, want %q", loaded.Project.Name, cfg.Project.Name)
	}
	if !loaded.Language.ExponentiationOperator {
		t.Error("default exponentiation_operator should be true")
	}
}

func TestFindConfigFile(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "src", "deep")
	if err := os.MkdirAll(sub, 0755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(root, ConfigFileName)
	if err := os.WriteFile(path, []byte("[project]\nname = \"x\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	found := FindConfigFile(sub)
	if found == "" {
		t.Fatal("config not found from subdirectory")
	}
	if filepath.Dir(found) != root {
		t.Errorf("found %q, want under %q", found, root)
	}
	if got := GetProjectRoot(sub); got != root {
		t.Errorf("project root mismatch: got %q, want %q", got, root)
	}
}
