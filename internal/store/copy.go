package store

import "github.com/jackc/pgx/v5"

// rowSource implements pgx.CopyFromSource over a Row slice.
type rowSource struct {
	rows []*Row
	idx  int
}

func newRowSource(rows []*Row) *rowSource {
	return &rowSource{rows: rows, idx: -1}
}

// Next advances to the next row.
func (s *rowSource) Next() bool {
	s.idx++
	return s.idx < len(s.rows)
}

// Values returns the current row's values in COPY column order.
func (s *rowSource) Values() ([]any, error) {
	return s.rows[s.idx].CopyValues(), nil
}

// Err returns any error encountered during iteration.
func (s *rowSource) Err() error {
	return nil
}

// Compile-time check that rowSource satisfies the interface.
var _ pgx.CopyFromSource = (*rowSource)(nil)
