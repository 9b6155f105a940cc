// Package site wires the content, registry, catalog and renderer together
// and validates the result. Every failure here is a startup failure; once
// Open succeeds, nothing a user does can make a view fail to render.
package site

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/Mr-Dark-debug/abxdash/internal/catalog"
	"github.com/Mr-Dark-debug/abxdash/internal/config"
	"github.com/Mr-Dark-debug/abxdash/internal/content"
	"github.com/Mr-Dark-debug/abxdash/internal/database"
	"github.com/Mr-Dark-debug/abxdash/internal/dataset"
	"github.com/Mr-Dark-debug/abxdash/internal/logging"
	"github.com/Mr-Dark-debug/abxdash/internal/page"
	"github.com/Mr-Dark-debug/abxdash/internal/render"
	"github.com/Mr-Dark-debug/abxdash/internal/tab"
)

// Site is a validated, ready-to-display page.
type Site struct {
	Registry *dataset.Registry
	Catalog  *catalog.Catalog
	Renderer *render.Renderer
	Chrome   page.Chrome

	// Source describes where the datasets came from ("embedded", a
	// directory, or a database path).
	Source string

	log  logrus.FieldLogger
	year int
}

// Open loads content as directed by cfg and validates every view.
func Open(cfg config.Config, log logrus.FieldLogger) (*Site, error) {
	if log == nil {
		log = logging.Discard()
	}

	var (
		bundle *content.Bundle
		err    error
		source = "embedded"
	)
	if cfg.Content.Dir != "" {
		bundle, err = content.LoadDir(cfg.Content.Dir)
		source = cfg.Content.Dir
	} else {
		bundle, err = content.Default()
	}
	if err != nil {
		return nil, errors.Wrap(err, "loading content")
	}

	if cfg.Content.DB != "" {
		defs, err := loadFromDB(cfg.Content.DB)
		if err != nil {
			return nil, err
		}
		bundle.Datasets = defs
		source = cfg.Content.DB
	}

	reg, err := bundle.Registry()
	if err != nil {
		return nil, errors.Wrap(err, "building dataset registry")
	}
	cat, err := bundle.Catalog(cfg.UI.DefaultView)
	if err != nil {
		return nil, errors.Wrap(err, "building view catalog")
	}
	r := render.New()
	if err := r.ValidateCatalog(cat, reg); err != nil {
		return nil, errors.Wrap(err, "validating views")
	}

	log.WithFields(logrus.Fields{
		"source":   source,
		"datasets": len(reg.Names()),
		"views":    len(cat.ListViews()),
	}).Debug("content loaded")

	return &Site{
		Registry: reg,
		Catalog:  cat,
		Renderer: r,
		Chrome:   bundle.Chrome,
		Source:   source,
		log:      log,
		year:     cfg.UI.FooterYear,
	}, nil
}

func loadFromDB(path string) ([]dataset.Definition, error) {
	store, err := database.NewDBService(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening dataset store")
	}
	defer store.Close()

	defs, err := store.LoadDefinitions()
	if err != nil {
		return nil, errors.Wrapf(err, "loading datasets from %s", path)
	}
	if len(defs) == 0 {
		return nil, errors.Errorf("dataset store %s is empty", path)
	}
	return defs, nil
}

// NewController returns a tab controller over the site's views. The
// site's logger is used unless opts supply another.
func (s *Site) NewController(opts ...tab.Option) (*tab.Controller, error) {
	opts = append([]tab.Option{tab.WithLogger(s.log)}, opts...)
	return tab.New(s.Catalog, s.Registry, s.Renderer, opts...)
}

// Composer returns the page composer. A configured footer year pins the
// clock; otherwise the wall clock is used.
func (s *Site) Composer() *page.Composer {
	var now func() time.Time
	if s.year > 0 {
		year := s.year
		now = func() time.Time { return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC) }
	}
	return page.NewComposer(s.Catalog, s.Chrome, now)
}

// Export writes every registered dataset to store in registration order.
// Datasets left in store by an earlier export that are no longer registered
// are deleted, so the store ends up holding exactly the registry.
func (s *Site) Export(store database.Store) error {
	registered := make(map[string]bool)
	for _, ds := range s.Registry.Datasets() {
		if err := store.SaveDataset(ds); err != nil {
			return errors.Wrapf(err, "exporting %s", ds.Name())
		}
		registered[ds.Name()] = true
		s.log.WithField("dataset", ds.Name()).Debug("dataset exported")
	}

	infos, err := store.ListDatasets()
	if err != nil {
		return errors.Wrap(err, "listing exported datasets")
	}
	for _, info := range infos {
		if registered[info.Name] {
			continue
		}
		if err := store.DeleteDataset(info.Name); err != nil {
			return errors.Wrapf(err, "removing stale dataset %s", info.Name)
		}
		s.log.WithField("dataset", info.Name).Debug("stale dataset removed")
	}
	return nil
}
