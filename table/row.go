package table

// Row is one data row of a table. Cell access past the end of the row is
// recorded rather than panicking; see Err.
type Row struct {
	path  string
	line  int
	cells []string
	err   *ShortRowError
}

// NewRow builds a Row from raw cells. Line is the 1-based source line.
func NewRow(path string, line int, cells []string) *Row {
	return &Row{path: path, line: line, cells: cells}
}

// Line returns the 1-based line number the row started on.
func (r *Row) Line() int { return r.line }

// Len returns the number of cells in the row.
func (r *Row) Len() int { return len(r.cells) }

// Cell returns the raw value of column i.
func (r *Row) Cell(i int) string {
	if i < 0 || i >= len(r.cells) {
		r.fail(i)
		return ""
	}
	return r.cells[i]
}

// Cells returns the values of the given columns in selector order.
func (r *Row) Cells(idx []int) []string {
	out := make([]string, len(idx))
	for n, i := range idx {
		out[n] = r.Cell(i)
	}
	return out
}

// Err returns the first out-of-range access, or nil.
func (r *Row) Err() error {
	if r.err == nil {
		return nil
	}
	return r.err
}

func (r *Row) fail(col int) {
	if r.err != nil {
		return
	}
	r.err = &ShortRowError{Path: r.path, Line: r.line, Column: col, Width: len(r.cells)}
}
