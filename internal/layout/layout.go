// Package layout loads menu declarations from TOML files and turns them into
// menu.Menu values with built-in actions.
package layout

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/atomicstack/grid-menu/internal/logging/events"
	"github.com/atomicstack/grid-menu/internal/menu"
)

//go:embed default.toml
var defaultLayout string

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid layout")

// File is the top-level document of a layout file.
type File struct {
	Menus []MenuSpec `toml:"menus"`
}

// MenuSpec declares one menu.
type MenuSpec struct {
	Name       string       `toml:"name"`
	Title      string       `toml:"title"`
	Rows       int          `toml:"rows"`
	Background string       `toml:"background"`
	Border     bool         `toml:"border"`
	Buttons    []ButtonSpec `toml:"buttons"`
}

// ButtonSpec declares one button.
type ButtonSpec struct {
	Slot    int      `toml:"slot"`
	Kind    string   `toml:"kind"`
	Name    string   `toml:"name"`
	Lore    []string `toml:"lore"`
	Amount  int      `toml:"amount"`
	Glint   bool     `toml:"glint"`
	Movable bool     `toml:"movable"`
	Silent  bool     `toml:"silent"`
	Action  string   `toml:"action"`
	Dynamic string   `toml:"dynamic"`
}

// Icon returns the static icon described by the spec.
func (b ButtonSpec) Icon() menu.Static {
	amount := b.Amount
	if amount <= 0 {
		amount = 1
	}
	return menu.NewIcon(b.Kind).
		WithName(b.Name).
		WithLore(b.Lore...).
		WithGlint(b.Glint).
		WithAmount(amount)
}

// Load reads and validates a layout file.
func Load(path string) (*Catalog, error) {
	var f File
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, fmt.Errorf("decode layout %s: %w", path, err)
	}
	return build(path, f, md)
}

// Parse decodes and validates layout text.
func Parse(source, data string) (*Catalog, error) {
	var f File
	md, err := toml.Decode(data, &f)
	if err != nil {
		return nil, fmt.Errorf("decode layout %s: %w", source, err)
	}
	return build(source, f, md)
}

// Default returns the built-in layout.
func Default() *Catalog {
	c, err := Parse("default", defaultLayout)
	if err != nil {
		panic(fmt.Sprintf("built-in layout: %v", err))
	}
	return c
}

func build(source string, f File, md toml.MetaData) (*Catalog, error) {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: %s: unknown keys %s", ErrInvalid, source, strings.Join(keys, ", "))
	}
	if err := Validate(f); err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	c := newCatalog(f)
	events.Layout.Load(source, len(f.Menus))
	return c, nil
}

// Validate checks names, sizes, slots and actions of every menu.
func Validate(f File) error {
	if len(f.Menus) == 0 {
		return fmt.Errorf("%w: no menus declared", ErrInvalid)
	}
	names := make(map[string]struct{}, len(f.Menus))
	for _, m := range f.Menus {
		name := strings.TrimSpace(m.Name)
		if name == "" {
			return fmt.Errorf("%w: menu without a name", ErrInvalid)
		}
		if _, dup := names[name]; dup {
			return fmt.Errorf("%w: duplicate menu %q", ErrInvalid, name)
		}
		names[name] = struct{}{}
		if m.Rows < 1 || m.Rows > menu.MaxRows {
			return fmt.Errorf("%w: menu %q: rows must be 1..%d (got %d)", ErrInvalid, name, menu.MaxRows, m.Rows)
		}
	}
	for _, m := range f.Menus {
		size := m.Rows * menu.Columns
		seen := make(map[int]struct{}, len(m.Buttons))
		for _, b := range m.Buttons {
			if b.Slot < 0 || b.Slot >= size {
				return fmt.Errorf("%w: menu %q: slot %d outside 0..%d", ErrInvalid, m.Name, b.Slot, size-1)
			}
			if _, dup := seen[b.Slot]; dup {
				return fmt.Errorf("%w: menu %q: slot %d declared twice", ErrInvalid, m.Name, b.Slot)
			}
			seen[b.Slot] = struct{}{}
			if strings.TrimSpace(b.Kind) == "" {
				return fmt.Errorf("%w: menu %q: slot %d has no kind", ErrInvalid, m.Name, b.Slot)
			}
			act, err := ParseAction(b.Action)
			if err != nil {
				return fmt.Errorf("%w: menu %q: slot %d: %v", ErrInvalid, m.Name, b.Slot, err)
			}
			if act.Kind == ActionOpen {
				if _, ok := names[act.Target]; !ok {
					return fmt.Errorf("%w: menu %q: slot %d opens unknown menu %q", ErrInvalid, m.Name, b.Slot, act.Target)
				}
			}
			switch b.Dynamic {
			case "", DynamicClock:
			default:
				return fmt.Errorf("%w: menu %q: slot %d: unknown dynamic icon %q", ErrInvalid, m.Name, b.Slot, b.Dynamic)
			}
		}
	}
	return nil
}
