package format

// Mode selects the rendering style for displayable values.
type Mode string

const (
	// ModeTable renders tables with a visible frame.
	ModeTable Mode = "table"
	// ModeRaw renders borderless, headerless, left-aligned text.
	ModeRaw Mode = "raw"
)

// Modes lists every accepted --format value.
func Modes() []string {
	return []string{string(ModeTable), string(ModeRaw)}
}

// Value is the closed set of results a command may return for display.
type Value interface {
	displayable()
}

// Text is already-rendered output, passed through unchanged.
type Text string

// Raw carries an arbitrary value that is stringified at render time.
type Raw struct {
	V any
}

// FormattedItem pairs a machine-readable value with its human-readable form.
// Table mode shows Formatted; raw mode falls back to the underlying value.
type FormattedItem struct {
	Value     any
	Formatted string
}

// List renders its elements one per line.
type List []Value

// Table is an ordered sequence of columns and rows. Cells are themselves
// displayable values, so tables may nest.
type Table struct {
	Columns []string
	Rows    [][]Value
}

func (Text) displayable()          {}
func (Raw) displayable()           {}
func (FormattedItem) displayable() {}
func (List) displayable()          {}
func (*Table) displayable()        {}

// NewTable returns an empty table with the given column names.
func NewTable(columns ...string) *Table {
	return &Table{Columns: columns}
}

// Add appends one row of cells.
func (t *Table) Add(cells ...Value) {
	t.Rows = append(t.Rows, cells)
}

// Item builds a FormattedItem from a value and its display form.
func Item(value any, formatted string) FormattedItem {
	return FormattedItem{Value: value, Formatted: formatted}
}
