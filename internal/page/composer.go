// Package page lays out the static chrome (header, navigation, footer)
// around the widgets of the active view.
package page

import (
	"strconv"
	"strings"
	"time"

	"github.com/Mr-Dark-debug/abxdash/internal/catalog"
	"github.com/Mr-Dark-debug/abxdash/internal/render"
	"github.com/Mr-Dark-debug/abxdash/internal/tab"
)

// Asset is an inert static resource such as the institutional logo.
type Asset struct {
	Path string `json:"path" toml:"path"`
	Alt  string `json:"alt" toml:"alt"`
}

// Chrome is the static content around every view. Footer may contain
// "{year}", replaced with the current year.
type Chrome struct {
	Title       string `json:"title" toml:"title"`
	Presenter   string `json:"presenter,omitempty" toml:"presenter"`
	Institution string `json:"institution,omitempty" toml:"institution"`
	Logo        Asset  `json:"logo" toml:"logo"`
	Footer      string `json:"footer" toml:"footer"`
}

// Header is the rendered top of the page.
type Header struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	Logo     Asset  `json:"logo"`
}

// NavItem is one tab of the navigation bar.
type NavItem struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Active bool   `json:"active"`
}

// Page is the full visible output for one tab state.
type Page struct {
	Header  Header          `json:"header"`
	Nav     []NavItem       `json:"nav"`
	ViewID  string          `json:"view"`
	Heading string          `json:"heading,omitempty"`
	Widgets []render.Widget `json:"widgets"`
	Footer  string          `json:"footer"`
}

// Views is the part of the catalog the composer reads.
type Views interface {
	ListViews() []string
	Resolve(id string) (catalog.View, error)
}

// Composer builds pages. It holds no state of its own.
type Composer struct {
	views  Views
	chrome Chrome
	now    func() time.Time
}

// NewComposer returns a composer; now defaults to time.Now.
func NewComposer(views Views, chrome Chrome, now func() time.Time) *Composer {
	if now == nil {
		now = time.Now
	}
	return &Composer{views: views, chrome: chrome, now: now}
}

// Compose produces the page for st.
func (c *Composer) Compose(st tab.State) Page {
	p := Page{
		Header: Header{
			Title:    c.chrome.Title,
			Subtitle: subtitle(c.chrome),
			Logo:     c.chrome.Logo,
		},
		ViewID:  st.ViewID,
		Heading: st.View.Heading,
		Widgets: render.CloneWidgets(st.Widgets),
		Footer:  strings.ReplaceAll(c.chrome.Footer, "{year}", strconv.Itoa(c.now().Year())),
	}
	for _, id := range c.views.ListViews() {
		label := id
		if v, err := c.views.Resolve(id); err == nil {
			label = v.DisplayLabel()
		}
		p.Nav = append(p.Nav, NavItem{ID: id, Label: label, Active: id == st.ViewID})
	}
	return p
}

func subtitle(ch Chrome) string {
	switch {
	case ch.Presenter != "" && ch.Institution != "":
		return "Presented by " + ch.Presenter + " — " + ch.Institution
	case ch.Presenter != "":
		return "Presented by " + ch.Presenter
	default:
		return ch.Institution
	}
}
