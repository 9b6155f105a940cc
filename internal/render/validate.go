package render

import (
	stderrors "errors"

	"github.com/pkg/errors"

	"github.com/Mr-Dark-debug/abxdash/internal/catalog"
)

// ViewSource is the read side of the view catalog.
type ViewSource interface {
	ListViews() []string
	Resolve(id string) (catalog.View, error)
}

// ValidateCatalog renders every widget of every view once and reports all
// dangling dataset or field references together. Run it before the page is
// shown so no authoring error can surface during navigation.
func (r *Renderer) ValidateCatalog(views ViewSource, src DatasetSource) error {
	var errs []error
	for _, id := range views.ListViews() {
		v, err := views.Resolve(id)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		for i, d := range v.Widgets {
			if _, err := r.Render(d, src); err != nil {
				errs = append(errs, errors.Wrapf(err, "view %q widget %d (%s)", id, i, d.Kind))
			}
		}
	}
	return stderrors.Join(errs...)
}
