package logic

// Row is one combination of variable values, optionally followed by the
// expression result.
type Row []bool

// Bits returns the row as 0/1 values.
func (r Row) Bits() []int {
	bits := make([]int, len(r))
	for i, v := range r {
		if v {
			bits[i] = 1
		}
	}
	return bits
}

// Combinations returns all 2^n combinations of n values, counting in binary
// from all-false to all-true with the first column as the most significant.
// n == 0 yields a single empty row. n outside [0, MaxVariablesLimit] yields nil.
func Combinations(n int) []Row {
	if n < 0 || n > MaxVariablesLimit {
		return nil
	}
	rows := make([]Row, 0, 1<<n)

	var traverse func(prefix Row)
	traverse = func(prefix Row) {
		if len(prefix) == n {
			row := make(Row, n, n+1)
			copy(row, prefix)
			rows = append(rows, row)
			return
		}
		traverse(append(prefix, false))
		traverse(append(prefix, true))
	}
	traverse(make(Row, 0, n))

	return rows
}
