package pure

// Table is an int-keyed memo table.
// Find may reorganize the table, so even lookups count as mutations.
type Table[V any] interface {
	Find(key int) (V, bool)
	Insert(key int, value V)
}

// TableizeI1O1 memoizes pureFn in table.
// The returned function looks key up first and only calls pureFn on a miss,
// storing the result before returning it. Recursive functions should call the
// returned function, not pureFn, so that subresults land in the same table.
func TableizeI1O1[O any](
	pureFn func(int) O,
	table Table[O],
) func(int) O {
	if table == nil {
		panic("table should not be nil")
	}
	return func(i int) O {
		v, ok := table.Find(i)
		if !ok {
			v = pureFn(i)
			table.Insert(i, v)
		}
		return v
	}
}
