package driver

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"home/internal/diag"
)

func TestCheckSourceClean(t *testing.T) {
	res := CheckSource("clean.hm", []byte("let x = 1;\nlet y = x + 1;\n"), 0)
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", res.Bag.Items())
	}
}

func TestCheckSourceUseAfterMove(t *testing.T) {
	res := CheckSource("moved.hm", []byte("let a = 1;\nlet b = a;\nlet c = a;\n"), 0)
	if !res.Bag.HasErrors() {
		t.Fatal("expected a use-after-move error")
	}
	found := false
	for _, d := range res.Bag.Items() {
		if d.Code == diag.BrwUseAfterMove {
			found = true
		}
	}
	if !found {
		t.Errorf("no BRW3001 in %v", res.Bag.Items())
	}
}

func TestCheckSourceParseAndBorrowTogether(t *testing.T) {
	// A missing semicolon and a move error in the same file: one run
	// reports both.
	src := "let a = 1;\nlet b = a;\nlet c = a;\nlet d = 1\n"
	res := CheckSource("both.hm", []byte(src), 0)

	var sawSyn, sawBrw bool
	for _, d := range res.Bag.Items() {
		switch {
		case d.Code >= 2000 && d.Code < 3000:
			sawSyn = true
		case d.Code == diag.BrwUseAfterMove:
			sawBrw = true
		}
	}
	if !sawSyn || !sawBrw {
		t.Errorf("sawSyn=%v sawBrw=%v: %v", sawSyn, sawBrw, res.Bag.Items())
	}
}

func TestRenderFormats(t *testing.T) {
	res := CheckSource("r.hm", []byte("let a = 1;\nlet b = a;\nlet c = a;\n"), 0)

	var pretty strings.Builder
	if err := res.Render(&pretty, "pretty", false); err != nil {
		t.Fatalf("pretty: %v", err)
	}
	if !strings.Contains(pretty.String(), "BRW3001") {
		t.Errorf("pretty output missing code:\n%s", pretty.String())
	}

	var js strings.Builder
	if err := res.Render(&js, "json", false); err != nil {
		t.Fatalf("json: %v", err)
	}
	if !strings.Contains(js.String(), `"BRW3001"`) {
		t.Errorf("json output missing code:\n%s", js.String())
	}

	if err := res.Render(&pretty, "yaml", false); err == nil {
		t.Error("unknown format accepted")
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestCheckDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.hm", "let x = 1;\n")
	writeFile(t, dir, "b.hm", "let a = 1;\nlet b = a;\nlet c = a;\n")
	writeFile(t, dir, "notes.txt", "ignored")

	res, err := CheckDir(context.Background(), dir, 0, 2, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Files) != 2 {
		t.Fatalf("checked %d files, want 2", len(res.Files))
	}
	// Deterministic order regardless of goroutine scheduling.
	if !strings.HasSuffix(res.Files[0].Path, "a.hm") {
		t.Errorf("first result is %s", res.Files[0].Path)
	}
	if !res.Bag.HasErrors() {
		t.Error("b.hm error not merged")
	}
}

func TestCheckDirEmpty(t *testing.T) {
	res, err := CheckDir(context.Background(), t.TempDir(), 0, 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Files) != 0 || res.Bag.Len() != 0 {
		t.Errorf("got %d files, %d diagnostics", len(res.Files), res.Bag.Len())
	}
}

func TestCheckDirCacheHits(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.hm", "let x = 1;\n")
	writeFile(t, dir, "b.hm", "let a = 1;\nlet b = a;\nlet c = a;\n")

	cache, err := OpenCacheAt(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatal(err)
	}

	first, err := CheckDir(context.Background(), dir, 0, 1, cache)
	if err != nil {
		t.Fatal(err)
	}
	if first.CacheHits != 0 {
		t.Fatalf("cold run hit %d entries", first.CacheHits)
	}

	second, err := CheckDir(context.Background(), dir, 0, 1, cache)
	if err != nil {
		t.Fatal(err)
	}
	// Only the clean file is a hit; broken files are always re-checked so
	// their diagnostics can be re-rendered.
	if second.CacheHits != 1 {
		t.Errorf("warm run hit %d entries, want 1", second.CacheHits)
	}
	if !second.Bag.HasErrors() {
		t.Error("warm run lost b.hm's error")
	}
}

func TestCacheSchemaMismatchIsMiss(t *testing.T) {
	cache, err := OpenCacheAt(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatal(err)
	}

	key := [32]byte{1}
	if err := cache.Put(key, &Payload{Schema: payloadSchemaVersion + 1, Clean: true}); err != nil {
		t.Fatal(err)
	}
	var out Payload
	found, err := cache.Get(key, &out)
	if err != nil {
		t.Fatal(err)
	}
	if found {
		t.Error("stale schema returned as a hit")
	}
}

func TestCacheRoundTrip(t *testing.T) {
	cache, err := OpenCacheAt(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatal(err)
	}

	key := [32]byte{0xAB, 0xCD}
	in := Payload{Schema: payloadSchemaVersion, Path: "x.hm", Clean: false, Diagnostics: 3}
	if err := cache.Put(key, &in); err != nil {
		t.Fatal(err)
	}
	var out Payload
	found, err := cache.Get(key, &out)
	if err != nil {
		t.Fatal(err)
	}
	if !found || out != in {
		t.Errorf("got found=%v payload=%+v", found, out)
	}

	var miss Payload
	if found, _ := cache.Get([32]byte{9, 9}, &miss); found {
		t.Error("unknown key returned as a hit")
	}
}
