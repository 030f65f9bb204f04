package mmu

// printable range of the side panel
const (
	firstDisplayable = 32
	lastDisplayable  = 126
)

// row keeps the state of a single hexdump row.
// index  : rows flushed so far, the row offset label is index*RowWidth
// column : bytes (or padding) placed in the current row
// panel  : printable side panel of the current row
type row struct {
	index  int
	column int
	panel  [RowWidth]byte
}

func printable(b byte) byte {
	if b < firstDisplayable || b > lastDisplayable {
		return '.'
	}
	return b
}

// feed places a byte in the row. Returns true once the row is full.
func (r *row) feed(b byte) bool {
	r.panel[r.column] = printable(b)
	r.column++
	return r.column == RowWidth
}

// pad fills one empty column of a partial row. Returns true once the row
// is full.
func (r *row) pad() bool {
	r.panel[r.column] = '.'
	r.column++
	return r.column == RowWidth
}

// missing returns how many columns are left to pad before a partial row
// can be flushed. Zero for an empty row.
func (r *row) missing() int {
	if r.column == 0 {
		return 0
	}
	return RowWidth - r.column
}

// group is true when an extra space separates the hex column.
func (r *row) group() bool {
	return r.column%8 == 0
}

// offset returns the value of the current row label.
func (r *row) offset() int {
	return r.index * RowWidth
}

// flush returns the bounded side panel and starts the next row.
func (r *row) flush() string {
	s := "|" + string(r.panel[:]) + "|"
	r.index++
	r.column = 0
	return s
}
