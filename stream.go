package texttable

import "iter"

// FromSeq builds a table from the items yielded by seq. The whole sequence is
// collected before the table is built.
func FromSeq[T Rower](seq iter.Seq[T]) (*Table, error) {
	var items []T
	for item := range seq {
		items = append(items, item)
	}
	return FromItems(items...)
}

// FromChan builds a table from the items received on ch until it is closed.
// It is a thin wrapper around [FromSeq].
func FromChan[T Rower](ch <-chan T) (*Table, error) {
	return FromSeq(chanToIter(ch))
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
