package project

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	p := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadValid(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `
[package]
name = "demo"

[check]
entry = "src"
max-diagnostics = 50
`)

	m, ok, err := Load(dir)
	if err != nil || !ok {
		t.Fatalf("Load: ok=%v err=%v", ok, err)
	}
	if m.Config.Package.Name != "demo" {
		t.Errorf("name = %q", m.Config.Package.Name)
	}
	if m.Config.Check.MaxDiagnostics != 50 {
		t.Errorf("max-diagnostics = %d", m.Config.Check.MaxDiagnostics)
	}
	if got, want := m.EntryPath(), filepath.Join(dir, "src"); got != want {
		t.Errorf("entry = %q, want %q", got, want)
	}
}

func TestLoadWalksUp(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[package]\nname = \"up\"\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	m, ok, err := Load(nested)
	if err != nil || !ok {
		t.Fatalf("Load: ok=%v err=%v", ok, err)
	}
	if m.Root != root {
		t.Errorf("root = %q, want %q", m.Root, root)
	}
	// No entry configured: check the whole project.
	if m.EntryPath() != root {
		t.Errorf("entry = %q", m.EntryPath())
	}
}

func TestLoadMissingIsNotError(t *testing.T) {
	_, ok, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if ok {
		t.Error("found a manifest in an empty directory")
	}
}

func TestLoadRejectsBadManifests(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"no package table", "[check]\nentry = \"src\"\n"},
		{"empty name", "[package]\nname = \"  \"\n"},
		{"negative cap", "[package]\nname = \"x\"\n[check]\nmax-diagnostics = -1\n"},
		{"invalid toml", "[package\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			writeManifest(t, dir, tc.content)
			if _, _, err := Load(dir); err == nil {
				t.Error("bad manifest accepted")
			}
		})
	}
}
