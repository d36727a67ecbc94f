package repository

// table is an ordered, append-only sequence of records with linear-scan
// predicate matching. Mutation happens only through in-place patches.
// Callers are expected to hold the owning store's lock.
type table[T any] struct {
	records []T
}

// insert appends a record to the table.
func (t *table[T]) insert(rec T) {
	t.records = append(t.records, rec)
}

// selectWhere returns copies of all records matching the predicate, in
// insertion order.
func (t *table[T]) selectWhere(pred func(T) bool) []T {
	var res []T
	for _, rec := range t.records {
		if pred(rec) {
			res = append(res, rec)
		}
	}
	return res
}

// updateWhere applies the patch to every record matching the predicate and
// returns the number of records patched.
func (t *table[T]) updateWhere(pred func(T) bool, patch func(*T)) int {
	n := 0
	for i := range t.records {
		if pred(t.records[i]) {
			patch(&t.records[i])
			n++
		}
	}
	return n
}
