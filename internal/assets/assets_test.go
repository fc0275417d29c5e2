package assets

import (
	"context"
	"errors"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/vovakirdan/flap/internal/config"
	"github.com/vovakirdan/flap/internal/core"
)

func TestLoadEmbeddedDefaults(t *testing.T) {
	cfg := config.Default()
	sprites := make([]string, 0, len(cfg.Characters))
	for _, c := range cfg.Characters {
		sprites = append(sprites, c.Sprite)
	}
	names := RequiredNames(sprites)

	set, err := Load(context.Background(), Embedded(), names)
	if err != nil {
		t.Fatalf("Load(embedded) failed: %v", err)
	}
	if set.Len() != len(names) {
		t.Errorf("Len() = %d, expected %d", set.Len(), len(names))
	}
	for _, n := range names {
		sp, ok := set.Get(n)
		if !ok {
			t.Errorf("sprite %q missing", n)
			continue
		}
		if sp.Height() == 0 || sp.Width() == 0 {
			t.Errorf("sprite %q is empty", n)
		}
	}
}

func TestLoadParsesSprite(t *testing.T) {
	fsys := fstest.MapFS{
		"kite.yaml": {Data: []byte("color: cyan\nlines:\n  - \"/\\\\\"\n  - \"\\\\/ \"\n")},
	}

	set, err := Load(context.Background(), fsys, []string{"kite"})
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	sp, ok := set.Get("kite")
	if !ok {
		t.Fatal("kite sprite missing")
	}
	if sp.Color != core.ColorCyan {
		t.Errorf("Color = %v, expected cyan", sp.Color)
	}
	if sp.Height() != 2 || sp.Width() != 3 {
		t.Errorf("size = %dx%d, expected 3x2", sp.Width(), sp.Height())
	}
	if string(sp.Lines[0]) != `/\` {
		t.Errorf("line 0 = %q", string(sp.Lines[0]))
	}
}

func TestLoadFailures(t *testing.T) {
	fsys := fstest.MapFS{
		"ok.yaml":      {Data: []byte("lines: [\"x\"]\n")},
		"empty.yaml":   {Data: []byte("color: red\n")},
		"badcol.yaml":  {Data: []byte("color: plaid\nlines: [\"x\"]\n")},
		"garbage.yaml": {Data: []byte("lines: [unterminated\n")},
	}

	tests := []struct {
		name  string
		names []string
		want  string
	}{
		{"missing file", []string{"ok", "nope"}, "cannot read"},
		{"no lines", []string{"empty"}, "no lines"},
		{"unknown color", []string{"badcol"}, "unknown color"},
		{"invalid yaml", []string{"garbage"}, "cannot parse"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			set, err := Load(context.Background(), fsys, tc.names)
			if err == nil {
				t.Fatalf("Load(%v) should fail", tc.names)
			}
			if set != nil {
				t.Error("a failed load must not return a partial set")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should mention %q", err, tc.want)
			}
		})
	}

	_, err := Load(context.Background(), fsys, []string{"nope"})
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("missing sprite error should wrap fs.ErrNotExist, got %v", err)
	}
}

func TestLoadCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Load(ctx, Embedded(), []string{Background, Floor})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Load() with cancelled context = %v, expected context.Canceled", err)
	}
}

func TestRequiredNamesDedup(t *testing.T) {
	names := RequiredNames([]string{"bird_a", Floor, "bird_a", "bird_b"})
	want := []string{Background, Floor, TopPipe, BottomPipe, Title, "bird_a", "bird_b"}

	if len(names) != len(want) {
		t.Fatalf("RequiredNames() = %v, expected %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q, expected %q", i, names[i], want[i])
		}
	}
}
