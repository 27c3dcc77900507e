package texttable_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/texttable"
)

// --- Test types: minimal ---

type basicRow struct {
	Name string
	Age  string
}

func (r basicRow) Row() []string { return []string{r.Name, r.Age} }

// --- Test types: full table ---

type richRow struct {
	Name   string
	Age    string
	Status string
}

func (r richRow) Row() []string    { return []string{r.Name, r.Age, r.Status} }
func (r richRow) Header() []string { return []string{"Name", "Age", "Status"} }
func (r richRow) Title() string    { return "People" }
func (r richRow) Alignments() []texttable.Alignment {
	return []texttable.Alignment{texttable.AlignLeft, texttable.AlignRight, texttable.AlignCenter}
}
func (r richRow) Footer() []string { return []string{"Total", "2"} }

// --- Test types: ragged ---

type raggedRow struct{ cells []string }

func (r raggedRow) Row() []string    { return r.cells }
func (r raggedRow) Header() []string { return []string{"A", "B"} }

var people = []richRow{
	{Name: "Alice", Age: "30", Status: "active"},
	{Name: "Bob", Age: "5", Status: "inactive"},
}

const peopleGrid = `+------------------------+
|         People         |
+-------+-----+----------+
| Name  | Age |  Status  |
+-------+-----+----------+
| Alice |  30 |  active  |
| Bob   |   5 | inactive |
+-------+-----+----------+
| Total              | 2 |
+------------------------+`

func TestFromItems(t *testing.T) {
	t.Parallel()
	tbl, err := texttable.FromItems(people...)
	require.NoError(t, err)
	assert.Equal(t, "People", tbl.Title)
	assert.Equal(t, 2, tbl.Len())
	assert.Equal(t, []any{"Total", "2"}, tbl.Footer())

	got, err := tbl.RenderString(texttable.LayoutCompact)
	require.NoError(t, err)
	assert.Equal(t, peopleGrid, got)
}

func TestFromItemsWithoutHeader(t *testing.T) {
	t.Parallel()
	tbl, err := texttable.FromItems(basicRow{"Alice", "30"}, basicRow{"Bob", "25"})
	require.NoError(t, err)
	assert.False(t, tbl.Options.ShowHeader)
	got, err := tbl.RenderString(texttable.LayoutMinimal)
	require.NoError(t, err)
	assert.Equal(t, grid(
		"| Alice | 30 |",
		"| Bob   | 25 |",
	), got)
}

func TestFromItemsEmpty(t *testing.T) {
	t.Parallel()
	tbl, err := texttable.FromItems[richRow]()
	require.NoError(t, err)
	assert.Len(t, tbl.Columns(), 3)
	assert.Zero(t, tbl.Len())

	bare, err := texttable.FromItems[basicRow]()
	require.NoError(t, err)
	_, err = bare.RenderString(texttable.LayoutStandard)
	require.ErrorIs(t, err, texttable.ErrNoColumns)
}

func TestFromItemsRaggedRow(t *testing.T) {
	t.Parallel()
	_, err := texttable.FromItems(raggedRow{[]string{"a", "b"}}, raggedRow{[]string{"c"}})
	require.ErrorIs(t, err, texttable.ErrRowWidth)
}

func TestFromSeq(t *testing.T) {
	t.Parallel()
	tbl, err := texttable.FromSeq(slices.Values(people))
	require.NoError(t, err)
	got, err := tbl.RenderString(texttable.LayoutCompact)
	require.NoError(t, err)
	assert.Equal(t, peopleGrid, got)
}

func TestFromChan(t *testing.T) {
	t.Parallel()
	ch := make(chan richRow)
	go func() {
		defer close(ch)
		for _, p := range people {
			ch <- p
		}
	}()
	tbl, err := texttable.FromChan(ch)
	require.NoError(t, err)
	got, err := tbl.RenderString(texttable.LayoutCompact)
	require.NoError(t, err)
	assert.Equal(t, peopleGrid, got)
}
