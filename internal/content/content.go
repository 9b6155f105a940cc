// Package content loads the authored page content: datasets, views and the
// static chrome. The default content is embedded in the binary; a directory
// with the same three files can replace it.
package content

import (
	"embed"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/Mr-Dark-debug/abxdash/internal/catalog"
	"github.com/Mr-Dark-debug/abxdash/internal/dataset"
	"github.com/Mr-Dark-debug/abxdash/internal/page"
)

//go:embed data/*.toml
var embedded embed.FS

// File names expected in a content directory.
const (
	DatasetsFile = "datasets.toml"
	ViewsFile    = "views.toml"
	ChromeFile   = "chrome.toml"
)

// Bundle is the decoded, not yet validated, content.
type Bundle struct {
	Datasets    []dataset.Definition
	DefaultView string
	Views       []catalog.View
	Chrome      page.Chrome
}

type datasetsDoc struct {
	Datasets []dataset.Definition `toml:"dataset"`
}

type viewsDoc struct {
	Default string         `toml:"default"`
	Views   []catalog.View `toml:"view"`
}

// Default loads the embedded content.
func Default() (*Bundle, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, errors.Wrap(err, "opening embedded content")
	}
	return Load(sub)
}

// LoadDir loads content from a directory on disk.
func LoadDir(dir string) (*Bundle, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, errors.Wrapf(err, "content directory %s", dir)
	}
	return Load(os.DirFS(dir))
}

// Load decodes the three content files from fsys. Unknown keys are
// rejected so a typo in a field name fails at startup.
func Load(fsys fs.FS) (*Bundle, error) {
	var ds datasetsDoc
	if err := decode(fsys, DatasetsFile, &ds); err != nil {
		return nil, err
	}
	var vs viewsDoc
	if err := decode(fsys, ViewsFile, &vs); err != nil {
		return nil, err
	}
	var ch page.Chrome
	if err := decode(fsys, ChromeFile, &ch); err != nil {
		return nil, err
	}
	return &Bundle{
		Datasets:    ds.Datasets,
		DefaultView: vs.Default,
		Views:       vs.Views,
		Chrome:      ch,
	}, nil
}

func decode(fsys fs.FS, name string, v any) error {
	md, err := toml.DecodeFS(fsys, name, v)
	if err != nil {
		return errors.Wrapf(err, "decoding %s", name)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return errors.Errorf("%s: unknown keys %s", name, strings.Join(keys, ", "))
	}
	return nil
}

// Registry type-checks the bundle's datasets.
func (b *Bundle) Registry() (*dataset.Registry, error) {
	return dataset.NewRegistry(b.Datasets...)
}

// Catalog builds the view catalog. defaultView overrides the authored
// default when non-empty.
func (b *Bundle) Catalog(defaultView string) (*catalog.Catalog, error) {
	if defaultView == "" {
		defaultView = b.DefaultView
	}
	return catalog.New(defaultView, b.Views...)
}
