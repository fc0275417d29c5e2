// Package assets loads the named sprites the renderer draws with. Sprites are
// small YAML documents (a color and lines of text art) read from an fs.FS:
// the embedded set by default, or a directory supplied by the user.
package assets

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/flap/internal/core"
)

// Names of the sprites every game needs besides the character sprites.
const (
	Background = "background"
	Floor      = "floor"
	TopPipe    = "toppipe"
	BottomPipe = "bottompipe"
	Title      = "title"
)

// maxParallelLoads bounds how many sprite files are read at once.
const maxParallelLoads = 4

//go:embed sprites/*.yaml
var embedded embed.FS

// Sprite is a block of text art drawn in one color. Spaces are transparent.
type Sprite struct {
	Name  string
	Color core.Color
	Lines [][]rune
}

// Width returns the length of the longest line.
func (s Sprite) Width() int {
	w := 0
	for _, l := range s.Lines {
		w = core.Max(w, len(l))
	}
	return w
}

// Height returns the number of lines.
func (s Sprite) Height() int {
	return len(s.Lines)
}

// Set is a fully loaded collection of sprites, keyed by name.
type Set struct {
	sprites map[string]Sprite
}

// Get returns the sprite with the given name.
func (s *Set) Get(name string) (Sprite, bool) {
	sp, ok := s.sprites[name]
	return sp, ok
}

// Len returns the number of loaded sprites.
func (s *Set) Len() int {
	return len(s.sprites)
}

// Embedded returns the built-in sprite files.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "sprites")
	if err != nil {
		panic(fmt.Sprintf("assets: embedded sprites missing: %v", err))
	}
	return sub
}

// Source returns the sprite filesystem: dir if set, the embedded set otherwise.
func Source(dir string) fs.FS {
	if dir == "" {
		return Embedded()
	}
	return os.DirFS(dir)
}

// RequiredNames returns the fixed sprite names followed by the given
// character sprites, without duplicates.
func RequiredNames(characterSprites []string) []string {
	names := []string{Background, Floor, TopPipe, BottomPipe, Title}
	seen := make(map[string]bool, len(names)+len(characterSprites))
	for _, n := range names {
		seen[n] = true
	}
	for _, n := range characterSprites {
		if !seen[n] {
			seen[n] = true
			names = append(names, n)
		}
	}
	return names
}

// Load reads every named sprite from fsys concurrently and returns once all
// of them are ready. The first failure cancels the remaining loads.
func Load(ctx context.Context, fsys fs.FS, names []string) (*Set, error) {
	loaded := make([]Sprite, len(names))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelLoads)
	for i, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sp, err := loadSprite(fsys, name)
			if err != nil {
				return err
			}
			loaded[i] = sp
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	set := &Set{sprites: make(map[string]Sprite, len(loaded))}
	for _, sp := range loaded {
		set.sprites[sp.Name] = sp
	}
	return set, nil
}

// spriteFile is the on-disk sprite format.
type spriteFile struct {
	Color string   `yaml:"color"`
	Lines []string `yaml:"lines"`
}

func loadSprite(fsys fs.FS, name string) (Sprite, error) {
	file := name + ".yaml"
	data, err := fs.ReadFile(fsys, file)
	if err != nil {
		return Sprite{}, fmt.Errorf("assets: cannot read sprite %q: %w", name, err)
	}

	var sf spriteFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return Sprite{}, fmt.Errorf("assets: cannot parse sprite %q: %w", name, err)
	}
	if len(sf.Lines) == 0 {
		return Sprite{}, fmt.Errorf("assets: sprite %q has no lines", name)
	}

	color, ok := core.ParseColor(sf.Color)
	if !ok {
		return Sprite{}, fmt.Errorf("assets: sprite %q has unknown color %q", name, sf.Color)
	}

	sp := Sprite{Name: name, Color: color, Lines: make([][]rune, len(sf.Lines))}
	for i, l := range sf.Lines {
		if !utf8.ValidString(l) {
			return Sprite{}, fmt.Errorf("assets: sprite %q line %d is not valid UTF-8", name, i+1)
		}
		sp.Lines[i] = []rune(l)
	}
	return sp, nil
}
