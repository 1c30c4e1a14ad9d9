package layout

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/atomicstack/grid-menu/internal/logging/events"
	"github.com/atomicstack/grid-menu/internal/menu"
)

// ErrNoMenu is returned when a lookup matches no menu.
var ErrNoMenu = errors.New("no such menu")

// Catalog holds the menus declared by a layout.
type Catalog struct {
	specs map[string]MenuSpec
	menus map[string]*menu.Menu
	order []string
	now   func() time.Time
}

func newCatalog(f File) *Catalog {
	c := &Catalog{
		specs: make(map[string]MenuSpec, len(f.Menus)),
		menus: make(map[string]*menu.Menu, len(f.Menus)),
		now:   time.Now,
	}
	for _, spec := range f.Menus {
		spec.Name = strings.TrimSpace(spec.Name)
		c.specs[spec.Name] = spec
		c.menus[spec.Name] = c.buildMenu(spec)
		c.order = append(c.order, spec.Name)
	}
	return c
}

// SetClock replaces the time source used by clock icons.
func (c *Catalog) SetClock(now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	c.now = now
}

// Names lists menu names in declaration order.
func (c *Catalog) Names() []string {
	return append([]string(nil), c.order...)
}

// Menu returns the menu with the exact name.
func (c *Catalog) Menu(name string) (*menu.Menu, bool) {
	m, ok := c.menus[name]
	return m, ok
}

// Spec returns the declaration of the named menu.
func (c *Catalog) Spec(name string) (MenuSpec, bool) {
	spec, ok := c.specs[name]
	return spec, ok
}

// Find resolves a query to a menu. Exact names win; otherwise the closest
// fuzzy match over names and titles is used. An empty query selects the
// first declared menu.
func (c *Catalog) Find(query string) (*menu.Menu, string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		if len(c.order) == 0 {
			return nil, "", ErrNoMenu
		}
		name := c.order[0]
		return c.menus[name], name, nil
	}
	if m, ok := c.menus[query]; ok {
		events.Layout.Find(query, query)
		return m, query, nil
	}
	targets := make([]string, 0, len(c.order)*2)
	owners := make([]string, 0, len(c.order)*2)
	for _, name := range c.order {
		targets = append(targets, name, c.specs[name].Title)
		owners = append(owners, name, name)
	}
	ranks := fuzzy.RankFindNormalizedFold(query, targets)
	if len(ranks) == 0 {
		events.Layout.Find(query, "")
		return nil, "", fmt.Errorf("%w: %q", ErrNoMenu, query)
	}
	sort.Stable(ranks)
	name := owners[ranks[0].OriginalIndex]
	events.Layout.Find(query, name)
	return c.menus[name], name, nil
}

// Rows describes every menu for tabular listings.
func (c *Catalog) Rows() [][]string {
	rows := make([][]string, 0, len(c.order)+1)
	rows = append(rows, []string{"NAME", "TITLE", "SIZE", "BUTTONS"})
	for _, name := range c.order {
		spec := c.specs[name]
		rows = append(rows, []string{
			name,
			spec.Title,
			strconv.Itoa(spec.Rows * menu.Columns),
			strconv.Itoa(len(spec.Buttons)),
		})
	}
	return rows
}

func (c *Catalog) buildMenu(spec MenuSpec) *menu.Menu {
	title := spec.Title
	if title == "" {
		title = spec.Name
	}
	size := menu.Rows(spec.Rows)
	m := &menu.Menu{
		Title:      title,
		Size:       size,
		Background: background(spec, size),
	}
	buttons := append([]ButtonSpec(nil), spec.Buttons...)
	m.Setup = func(s *menu.Session) {
		for _, b := range buttons {
			s.Place(b.Slot, c.newButton(spec.Name, b))
		}
	}
	return m
}

func background(spec MenuSpec, size int) menu.Background {
	kind := strings.TrimSpace(spec.Background)
	if kind == "" {
		return nil
	}
	icon := menu.NewIcon(kind).WithName(" ")
	if spec.Border {
		return menu.Border(size, menu.Columns, icon)
	}
	return menu.Fill(icon)
}
