// Package catalog enumerates the views (navigation tabs) of the page and the
// ordered widget descriptors each view renders.
//
// The catalog is built once at startup and is read-only afterwards. The order
// returned by ListViews is the tab-bar order and is never re-sorted.
package catalog

import (
	stderrors "errors"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/pkg/errors"
)

var (
	// ErrUnknownView is returned for view identifiers that are not registered.
	ErrUnknownView = stderrors.New("unknown view")
	// ErrInvalidCatalog marks a malformed set of views.
	ErrInvalidCatalog = stderrors.New("invalid catalog")
)

// View is one navigation tab and the widgets it shows, in display order.
type View struct {
	ID      string       `json:"id" toml:"id"`
	Label   string       `json:"label" toml:"label"`
	Heading string       `json:"heading,omitempty" toml:"heading"`
	Widgets []Descriptor `json:"widgets" toml:"widget"`
}

// DisplayLabel returns the tab label, falling back to the identifier.
func (v View) DisplayLabel() string {
	if v.Label != "" {
		return v.Label
	}
	return v.ID
}

// Clone returns a copy of v that shares no descriptor data with it.
func (v View) Clone() View {
	v.Widgets = cloneDescriptors(v.Widgets)
	return v
}

// Catalog is the fixed, ordered set of views.
type Catalog struct {
	order       []string
	views       map[string]View
	defaultView string
}

// New builds a catalog. defaultID must name one of the views; an empty
// defaultID selects the first view.
func New(defaultID string, views ...View) (*Catalog, error) {
	if len(views) == 0 {
		return nil, errors.Wrap(ErrInvalidCatalog, "no views")
	}

	c := &Catalog{views: make(map[string]View, len(views))}
	for _, v := range views {
		id := strings.TrimSpace(v.ID)
		if id == "" || id != v.ID {
			return nil, errors.Wrapf(ErrInvalidCatalog, "view id %q", v.ID)
		}
		if _, dup := c.views[id]; dup {
			return nil, errors.Wrapf(ErrInvalidCatalog, "view %q declared twice", id)
		}
		for i, d := range v.Widgets {
			if !d.Kind.Valid() {
				return nil, errors.Wrapf(ErrInvalidCatalog, "view %q widget %d has unknown kind %q", id, i, d.Kind)
			}
		}
		c.views[id] = v.Clone()
		c.order = append(c.order, id)
	}

	if defaultID == "" {
		defaultID = c.order[0]
	}
	if _, ok := c.views[defaultID]; !ok {
		return nil, errors.Wrapf(ErrUnknownView, "default view %q", defaultID)
	}
	c.defaultView = defaultID
	return c, nil
}

// ListViews returns the view identifiers in tab-bar order.
func (c *Catalog) ListViews() []string {
	return append([]string(nil), c.order...)
}

// Resolve returns the view registered under id.
func (c *Catalog) Resolve(id string) (View, error) {
	v, ok := c.views[id]
	if !ok {
		return View{}, errors.Wrapf(ErrUnknownView, "view %q", id)
	}
	return v.Clone(), nil
}

// Has reports whether id is registered.
func (c *Catalog) Has(id string) bool {
	_, ok := c.views[id]
	return ok
}

// Default returns the view shown on a fresh start.
func (c *Catalog) Default() string { return c.defaultView }

// Views returns every view in tab-bar order.
func (c *Catalog) Views() []View {
	out := make([]View, 0, len(c.order))
	for _, id := range c.order {
		v, _ := c.Resolve(id)
		out = append(out, v)
	}
	return out
}

// Suggest returns the registered id closest to id, or "" when nothing is
// reasonably close.
func (c *Catalog) Suggest(id string) string {
	id = strings.ToLower(strings.TrimSpace(id))
	if id == "" {
		return ""
	}
	best, bestDist := "", -1
	for _, candidate := range c.order {
		d := levenshtein.ComputeDistance(id, strings.ToLower(candidate))
		if bestDist < 0 || d < bestDist {
			best, bestDist = candidate, d
		}
	}
	if bestDist > len(best)/2 {
		return ""
	}
	return best
}
