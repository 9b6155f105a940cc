// Package tab owns the page's only mutable state: which view is active.
//
// A transition resolves and renders the target view completely before the
// state is swapped, so a caller never observes a half-rendered view and a
// failed transition leaves everything as it was.
package tab

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/Mr-Dark-debug/abxdash/internal/catalog"
	"github.com/Mr-Dark-debug/abxdash/internal/logging"
	"github.com/Mr-Dark-debug/abxdash/internal/render"
)

// Views is the read side of the view catalog the controller needs.
type Views interface {
	ListViews() []string
	Resolve(id string) (catalog.View, error)
	Default() string
}

// State is a snapshot of the active view and its rendered widgets.
type State struct {
	ViewID  string          `json:"view"`
	View    catalog.View    `json:"-"`
	Widgets []render.Widget `json:"widgets"`
}

// Controller holds the active view.
type Controller struct {
	views    Views
	data     render.DatasetSource
	renderer *render.Renderer
	log      logrus.FieldLogger

	mu      sync.RWMutex
	active  string
	view    catalog.View
	widgets []render.Widget
}

// Option configures a Controller.
type Option func(*config)

type config struct {
	initial string
	log     logrus.FieldLogger
}

// WithInitialView starts on id instead of the catalog default.
func WithInitialView(id string) Option {
	return func(c *config) { c.initial = id }
}

// WithLogger sets the logger used for transition events.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *config) { c.log = l }
}

// New creates a controller showing the catalog default view, fully rendered.
func New(views Views, data render.DatasetSource, r *render.Renderer, opts ...Option) (*Controller, error) {
	cfg := config{initial: views.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.log == nil {
		cfg.log = logging.Discard()
	}

	c := &Controller{views: views, data: data, renderer: r, log: cfg.log}
	if err := c.SelectView(cfg.initial); err != nil {
		return nil, err
	}
	return c, nil
}

// SelectView makes id the active view. Unknown ids return
// catalog.ErrUnknownView and leave the state unchanged.
func (c *Controller) SelectView(id string) error {
	v, err := c.views.Resolve(id)
	if err != nil {
		c.log.WithField("view", id).Debug("rejected view selection")
		return err
	}
	widgets, err := c.renderer.RenderView(v, c.data)
	if err != nil {
		c.log.WithError(err).WithField("view", id).Error("rendering view failed")
		return err
	}

	c.mu.Lock()
	from := c.active
	c.active, c.view, c.widgets = id, v, widgets
	c.mu.Unlock()

	c.log.WithFields(logrus.Fields{"from": from, "to": id, "widgets": len(widgets)}).Debug("view selected")
	return nil
}

// Next selects the view after the active one, wrapping to the first.
func (c *Controller) Next() error { return c.step(1) }

// Prev selects the view before the active one, wrapping to the last.
func (c *Controller) Prev() error { return c.step(-1) }

func (c *Controller) step(delta int) error {
	ids := c.views.ListViews()
	if len(ids) == 0 {
		return nil
	}
	cur := 0
	active := c.Active()
	for i, id := range ids {
		if id == active {
			cur = i
			break
		}
	}
	next := ((cur+delta)%len(ids) + len(ids)) % len(ids)
	return c.SelectView(ids[next])
}

// Active returns the active view id.
func (c *Controller) Active() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.active
}

// State returns a deep copy of the active view and its widgets. Changes
// made through the snapshot never reach the controller.
func (c *Controller) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return State{
		ViewID:  c.active,
		View:    c.view.Clone(),
		Widgets: render.CloneWidgets(c.widgets),
	}
}
