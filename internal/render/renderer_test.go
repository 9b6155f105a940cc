package render

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mr-Dark-debug/abxdash/internal/catalog"
	"github.com/Mr-Dark-debug/abxdash/internal/dataset"
)

func testRegistry(t *testing.T) *dataset.Registry {
	t.Helper()
	reg, err := dataset.NewRegistry(
		dataset.Definition{
			Name: "misuse",
			Fields: []dataset.Field{
				{Name: "year", Label: "Year", Kind: dataset.KindInt},
				{Name: "antibiotic_use", Label: "Antibiotic Use (index)", Kind: dataset.KindNumber},
				{Name: "resistance_rate", Label: "Resistance Rate (%)", Kind: dataset.KindNumber, Unit: "%"},
			},
			Rows: []map[string]any{
				{"year": int64(2000), "antibiotic_use": int64(100), "resistance_rate": int64(10)},
				{"year": int64(2024), "antibiotic_use": int64(260), "resistance_rate": int64(47)},
			},
		},
		dataset.Definition{
			Name: "misuse_pie",
			Fields: []dataset.Field{
				{Name: "name", Kind: dataset.KindText},
				{Name: "value", Kind: dataset.KindNumber},
			},
			Rows: []map[string]any{
				{"name": "Human misuse", "value": int64(50)},
				{"name": "Animal agriculture", "value": int64(35)},
				{"name": "Proper use", "value": int64(15)},
			},
		},
		dataset.Definition{
			Name: "lopsided",
			Fields: []dataset.Field{
				{Name: "name", Kind: dataset.KindText},
				{Name: "value", Kind: dataset.KindNumber},
			},
			Rows: []map[string]any{
				{"name": "a", "value": int64(2)},
				{"name": "b", "value": int64(1)},
				{"name": "c", "value": int64(1)},
			},
		},
		dataset.Definition{
			Name: "negative",
			Fields: []dataset.Field{
				{Name: "name", Kind: dataset.KindText},
				{Name: "value", Kind: dataset.KindNumber},
			},
			Rows: []map[string]any{
				{"name": "a", "value": int64(5)},
				{"name": "b", "value": int64(-1)},
			},
		},
	)
	require.NoError(t, err)
	return reg
}

func TestLineSeriesProducesOrderedPairs(t *testing.T) {
	reg := testRegistry(t)
	d := catalog.Descriptor{Kind: catalog.KindLine, Dataset: "misuse", XField: "year", YFields: []string{"antibiotic_use"}}

	w, err := New().Render(d, reg)
	require.NoError(t, err)
	require.Len(t, w.Series, 1)

	var pairs [][2]float64
	for _, p := range w.Series[0].Points {
		pairs = append(pairs, [2]float64{p.X, p.Y})
	}
	assert.Equal(t, [][2]float64{{2000, 100}, {2024, 260}}, pairs)
	assert.Equal(t, "Year", w.XLabel)
	assert.Equal(t, "#006B3F", w.Series[0].Color)
}

func TestBarSeriesColorsBySeriesPosition(t *testing.T) {
	reg := testRegistry(t)
	d := catalog.Descriptor{Kind: catalog.KindBar, Dataset: "misuse", XField: "year", YFields: []string{"antibiotic_use", "resistance_rate"}}

	w, err := New().Render(d, reg)
	require.NoError(t, err)
	require.Len(t, w.Series, 2)
	assert.Equal(t, "#006B3F", w.Series[0].Color)
	assert.Equal(t, "#C9A900", w.Series[1].Color)
	assert.Equal(t, "2024", w.Series[1].Points[1].Label)
	assert.Equal(t, 47.0, w.Series[1].Points[1].Y)
}

func TestSeriesFieldErrors(t *testing.T) {
	reg := testRegistry(t)
	r := New()

	_, err := r.Render(catalog.Descriptor{Kind: catalog.KindLine, Dataset: "misuse", XField: "year", YFields: []string{"mortality"}}, reg)
	assert.True(t, errors.Is(err, ErrFieldNotFound), "got %v", err)

	_, err = r.Render(catalog.Descriptor{Kind: catalog.KindLine, Dataset: "misuse", XField: "decade", YFields: []string{"antibiotic_use"}}, reg)
	assert.True(t, errors.Is(err, ErrFieldNotFound), "got %v", err)

	_, err = r.Render(catalog.Descriptor{Kind: catalog.KindLine, Dataset: "misuse", XField: "year"}, reg)
	assert.True(t, errors.Is(err, ErrFieldNotFound), "got %v", err)

	_, err = r.Render(catalog.Descriptor{Kind: catalog.KindLine, Dataset: "misuse_pie", XField: "name", YFields: []string{"value"}}, reg)
	assert.True(t, errors.Is(err, ErrFieldType), "got %v", err)

	_, err = r.Render(catalog.Descriptor{Kind: catalog.KindLine, Dataset: "absent", XField: "year", YFields: []string{"x"}}, reg)
	assert.True(t, errors.Is(err, dataset.ErrUnknownDataset), "got %v", err)
}

func TestBarSeriesAcceptsTextCategories(t *testing.T) {
	reg := testRegistry(t)
	w, err := New().Render(catalog.Descriptor{Kind: catalog.KindBar, Dataset: "misuse_pie", XField: "name", YFields: []string{"value"}}, reg)
	require.NoError(t, err)

	pts := w.Series[0].Points
	require.Len(t, pts, 3)
	assert.Equal(t, "Animal agriculture", pts[1].Label)
	assert.Equal(t, 1.0, pts[1].X)
}

func TestPieKeepsAuthoredValues(t *testing.T) {
	reg := testRegistry(t)
	w, err := New().Render(catalog.Descriptor{Kind: catalog.KindPie, Dataset: "misuse_pie", LabelField: "name", ValueField: "value"}, reg)
	require.NoError(t, err)
	require.Len(t, w.Slices, 3)

	assert.Equal(t, []float64{50, 35, 15}, []float64{w.Slices[0].Value, w.Slices[1].Value, w.Slices[2].Value})
	assert.InDelta(t, 0.35, w.Slices[1].Share, 1e-9)
	assert.Equal(t, "#00C49F", w.Slices[2].Color)
}

func TestPieDoesNotNormaliseValues(t *testing.T) {
	reg := testRegistry(t)
	w, err := New().Render(catalog.Descriptor{Kind: catalog.KindPie, Dataset: "lopsided", LabelField: "name", ValueField: "value"}, reg)
	require.NoError(t, err)

	var sum float64
	for _, s := range w.Slices {
		sum += s.Value
	}
	assert.Equal(t, 4.0, sum)
	assert.Equal(t, 2.0, w.Slices[0].Value)
	assert.InDelta(t, 0.5, w.Slices[0].Share, 1e-9)
	assert.InDelta(t, 0.25, w.Slices[1].Share, 1e-9)
}

func TestPieRejectsNegativeShare(t *testing.T) {
	reg := testRegistry(t)
	_, err := New().Render(catalog.Descriptor{Kind: catalog.KindPie, Dataset: "negative", LabelField: "name", ValueField: "value"}, reg)
	assert.True(t, errors.Is(err, ErrInvalidShare), "got %v", err)
}

func TestPieMissingFields(t *testing.T) {
	reg := testRegistry(t)
	_, err := New().Render(catalog.Descriptor{Kind: catalog.KindPie, Dataset: "misuse_pie", LabelField: "label", ValueField: "value"}, reg)
	assert.True(t, errors.Is(err, ErrFieldNotFound))
	_, err = New().Render(catalog.Descriptor{Kind: catalog.KindPie, Dataset: "misuse_pie", LabelField: "name", ValueField: "share"}, reg)
	assert.True(t, errors.Is(err, ErrFieldNotFound))
}

func TestGridUsesSchemaOrder(t *testing.T) {
	reg := testRegistry(t)
	w, err := New().Render(catalog.Descriptor{Kind: catalog.KindTable, Dataset: "misuse"}, reg)
	require.NoError(t, err)
	require.NotNil(t, w.Grid)

	var labels []string
	for _, c := range w.Grid.Columns {
		labels = append(labels, c.Label)
	}
	assert.Equal(t, []string{"Year", "Antibiotic Use (index)", "Resistance Rate (%)"}, labels)
	assert.Equal(t, [][]string{{"2000", "100", "10%"}, {"2024", "260", "47%"}}, w.Grid.Rows)
}

func TestStaticTextPassesThrough(t *testing.T) {
	block := &catalog.TextBlock{
		Heading:    "Quick Facts",
		Bullets:    []string{"Penicillin discovered in 1928 by Alexander Fleming"},
		Paragraphs: []string{"  spacing is kept  "},
	}
	w, err := New().Render(catalog.Descriptor{Kind: catalog.KindText, Text: block}, nil)
	require.NoError(t, err)
	assert.Equal(t, *block, *w.Text)
	assert.Empty(t, w.Dataset)
}

func TestUnknownKind(t *testing.T) {
	_, err := New().Render(catalog.Descriptor{Kind: "scatter"}, testRegistry(t))
	assert.True(t, errors.Is(err, ErrUnknownKind))
}

func TestRenderingIsDeterministic(t *testing.T) {
	reg := testRegistry(t)
	r := New()
	for _, d := range []catalog.Descriptor{
		{Kind: catalog.KindLine, Dataset: "misuse", XField: "year", YFields: []string{"antibiotic_use", "resistance_rate"}},
		{Kind: catalog.KindPie, Dataset: "misuse_pie", LabelField: "name", ValueField: "value"},
		{Kind: catalog.KindTable, Dataset: "misuse"},
	} {
		a, err := r.Render(d, reg)
		require.NoError(t, err)
		b, err := r.Render(d, reg)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	}
}

func TestPaletteWrapsAndHintsOverride(t *testing.T) {
	p := Palette{"#111111", "#222222"}
	assert.Equal(t, "#111111", p.Color(2))
	assert.Equal(t, "#222222", p.Color(5))
	assert.Equal(t, "", Palette(nil).Color(0))

	reg := testRegistry(t)
	w, err := New(WithPalette(p)).Render(catalog.Descriptor{Kind: catalog.KindPie, Dataset: "misuse_pie", LabelField: "name", ValueField: "value"}, reg)
	require.NoError(t, err)
	assert.Equal(t, []string{"#111111", "#222222", "#111111"}, []string{w.Slices[0].Color, w.Slices[1].Color, w.Slices[2].Color})

	w, err = New().Render(catalog.Descriptor{
		Kind: catalog.KindLine, Dataset: "misuse", XField: "year", YFields: []string{"resistance_rate"},
		Hints: catalog.Hints{Colors: []string{"#C9A900"}},
	}, reg)
	require.NoError(t, err)
	assert.Equal(t, "#C9A900", w.Series[0].Color)
}

func TestWidgetCloneIsDeep(t *testing.T) {
	reg := testRegistry(t)
	r := New()
	var ws []Widget
	for _, d := range []catalog.Descriptor{
		{Kind: catalog.KindLine, Dataset: "misuse", XField: "year", YFields: []string{"antibiotic_use"}},
		{Kind: catalog.KindPie, Dataset: "misuse_pie", LabelField: "name", ValueField: "value"},
		{Kind: catalog.KindTable, Dataset: "misuse"},
		{Kind: catalog.KindText, Text: &catalog.TextBlock{Heading: "Facts", Bullets: []string{"one"}}},
	} {
		w, err := r.Render(d, reg)
		require.NoError(t, err)
		ws = append(ws, w)
	}

	cp := CloneWidgets(ws)
	require.Equal(t, ws, cp)

	cp[0].Series[0].Points[0].Y = -1
	cp[1].Slices[0].Value = -1
	cp[2].Grid.Rows[0][0] = "changed"
	cp[2].Grid.Columns[0].Label = "changed"
	cp[3].Text.Heading = "changed"
	cp[3].Text.Bullets[0] = "changed"

	assert.Equal(t, 100.0, ws[0].Series[0].Points[0].Y)
	assert.NotEqual(t, -1.0, ws[1].Slices[0].Value)
	assert.Equal(t, "2000", ws[2].Grid.Rows[0][0])
	assert.Equal(t, "Year", ws[2].Grid.Columns[0].Label)
	assert.Equal(t, "Facts", ws[3].Text.Heading)
	assert.Equal(t, "one", ws[3].Text.Bullets[0])

	assert.Nil(t, CloneWidgets(nil))
}

func TestTextWidgetDoesNotShareDescriptorSlices(t *testing.T) {
	block := &catalog.TextBlock{Bullets: []string{"one"}}
	w, err := New().Render(catalog.Descriptor{Kind: catalog.KindText, Text: block}, nil)
	require.NoError(t, err)
	w.Text.Bullets[0] = "changed"
	assert.Equal(t, "one", block.Bullets[0])
}
