package tab

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mr-Dark-debug/abxdash/internal/catalog"
	"github.com/Mr-Dark-debug/abxdash/internal/dataset"
	"github.com/Mr-Dark-debug/abxdash/internal/render"
)

func fixture(t *testing.T) (*catalog.Catalog, *dataset.Registry) {
	t.Helper()
	reg, err := dataset.NewRegistry(dataset.Definition{
		Name: "misuse",
		Fields: []dataset.Field{
			{Name: "year", Kind: dataset.KindInt},
			{Name: "antibiotic_use", Kind: dataset.KindNumber},
		},
		Rows: []map[string]any{
			{"year": int64(2000), "antibiotic_use": int64(100)},
			{"year": int64(2024), "antibiotic_use": int64(260)},
		},
	})
	require.NoError(t, err)

	cat, err := catalog.New("overview",
		catalog.View{ID: "overview", Widgets: []catalog.Descriptor{{Kind: catalog.KindText, Text: &catalog.TextBlock{Heading: "Overview"}}}},
		catalog.View{ID: "charts", Widgets: []catalog.Descriptor{{Kind: catalog.KindLine, Dataset: "misuse", XField: "year", YFields: []string{"antibiotic_use"}}}},
		catalog.View{ID: "tables", Widgets: []catalog.Descriptor{{Kind: catalog.KindTable, Dataset: "misuse"}}},
		catalog.View{ID: "solutions"},
		catalog.View{ID: "about"},
	)
	require.NoError(t, err)
	return cat, reg
}

func TestStartsOnDefaultView(t *testing.T) {
	cat, reg := fixture(t)
	c, err := New(cat, reg, render.New())
	require.NoError(t, err)

	st := c.State()
	assert.Equal(t, "overview", st.ViewID)
	require.Len(t, st.Widgets, 1)
	assert.Equal(t, catalog.KindText, st.Widgets[0].Kind)
}

func TestSelectRegisteredView(t *testing.T) {
	cat, reg := fixture(t)
	c, err := New(cat, reg, render.New())
	require.NoError(t, err)

	require.NoError(t, c.SelectView("charts"))
	assert.Equal(t, "charts", c.Active())
	st := c.State()
	require.Len(t, st.Widgets, 1)
	assert.Equal(t, 260.0, st.Widgets[0].Series[0].Points[1].Y)
}

func TestSelectUnknownViewLeavesStateUnchanged(t *testing.T) {
	cat, reg := fixture(t)
	c, err := New(cat, reg, render.New())
	require.NoError(t, err)
	require.NoError(t, c.SelectView("tables"))
	before := c.State()

	err = c.SelectView("settings")
	assert.True(t, errors.Is(err, catalog.ErrUnknownView))
	assert.Equal(t, before, c.State())
}

func TestReselectingActiveViewIsNoOp(t *testing.T) {
	cat, reg := fixture(t)
	c, err := New(cat, reg, render.New())
	require.NoError(t, err)
	require.NoError(t, c.SelectView("charts"))
	before := c.State()

	require.NoError(t, c.SelectView("charts"))
	assert.Equal(t, before, c.State())
}

func TestFailedRenderLeavesStateUnchanged(t *testing.T) {
	reg, err := dataset.NewRegistry()
	require.NoError(t, err)
	cat, err := catalog.New("about",
		catalog.View{ID: "about"},
		catalog.View{ID: "broken", Widgets: []catalog.Descriptor{{Kind: catalog.KindTable, Dataset: "missing"}}},
	)
	require.NoError(t, err)

	c, err := New(cat, reg, render.New())
	require.NoError(t, err)
	err = c.SelectView("broken")
	assert.True(t, errors.Is(err, dataset.ErrUnknownDataset))
	assert.Equal(t, "about", c.Active())
}

func TestNextPrevWrapInTabOrder(t *testing.T) {
	cat, reg := fixture(t)
	c, err := New(cat, reg, render.New())
	require.NoError(t, err)

	require.NoError(t, c.Prev())
	assert.Equal(t, "about", c.Active())
	require.NoError(t, c.Next())
	assert.Equal(t, "overview", c.Active())
	require.NoError(t, c.Next())
	assert.Equal(t, "charts", c.Active())
}

func TestInitialViewOption(t *testing.T) {
	cat, reg := fixture(t)
	c, err := New(cat, reg, render.New(), WithInitialView("tables"))
	require.NoError(t, err)
	assert.Equal(t, "tables", c.Active())

	_, err = New(cat, reg, render.New(), WithInitialView("home"))
	assert.True(t, errors.Is(err, catalog.ErrUnknownView))
}

func TestTransitionsAreLogged(t *testing.T) {
	cat, reg := fixture(t)
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	c, err := New(cat, reg, render.New(), WithLogger(logger))
	require.NoError(t, err)
	require.NoError(t, c.SelectView("charts"))

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "view selected", entry.Message)
	assert.Equal(t, "overview", entry.Data["from"])
	assert.Equal(t, "charts", entry.Data["to"])
}

func TestStateIsACopy(t *testing.T) {
	cat, reg := fixture(t)
	c, err := New(cat, reg, render.New())
	require.NoError(t, err)

	st := c.State()
	st.Widgets[0] = render.Widget{}
	assert.Equal(t, catalog.KindText, c.State().Widgets[0].Kind)
}

func TestStateNestedDataIsACopy(t *testing.T) {
	cat, reg := fixture(t)
	c, err := New(cat, reg, render.New())
	require.NoError(t, err)

	st := c.State()
	st.Widgets[0].Text.Heading = "changed"
	st.View.Widgets[0].Text.Heading = "changed"
	assert.Equal(t, "Overview", c.State().Widgets[0].Text.Heading)
	assert.Equal(t, "Overview", c.State().View.Widgets[0].Text.Heading)

	require.NoError(t, c.SelectView("charts"))
	st = c.State()
	st.Widgets[0].Series[0].Points[0].Y = -1
	st.View.Widgets[0].YFields[0] = "changed"
	assert.Equal(t, 100.0, c.State().Widgets[0].Series[0].Points[0].Y)
	assert.Equal(t, "antibiotic_use", c.State().View.Widgets[0].YFields[0])

	require.NoError(t, c.SelectView("tables"))
	st = c.State()
	st.Widgets[0].Grid.Rows[0][0] = "changed"
	assert.Equal(t, "2000", c.State().Widgets[0].Grid.Rows[0][0])
}
