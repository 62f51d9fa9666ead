package disjoint

import "slices"

// SetVec pairs a slice of values with a Set that tracks which of them are
// joined. Value i and element i always describe the same thing: the two
// sides grow together through Push and there is no operation that can change
// the length of one without the other.
//
// The zero value is an empty SetVec ready for use.
type SetVec[T any] struct {
	values []T
	set    Set
}

// NewSetVec creates an empty SetVec.
func NewSetVec[T any]() *SetVec[T] {
	return &SetVec[T]{}
}

// NewSetVecWithCapacity creates an empty SetVec with room for capacity
// elements, so the first capacity Push calls do not reallocate.
func NewSetVecWithCapacity[T any](capacity int) *SetVec[T] {
	return &SetVec[T]{
		values: make([]T, 0, capacity),
		set:    *NewSetWithCapacity(capacity),
	}
}

// SetVecOf creates a SetVec from the given values, each one a singleton not
// joined to anything. The values are copied; insertion order becomes index
// order.
func SetVecOf[T any](values ...T) *SetVec[T] {
	return &SetVec[T]{
		values: slices.Clone(values),
		set:    *NewSet(len(values)),
	}
}

// Len returns the number of values (and elements; the two are always equal).
func (v *SetVec[T]) Len() int {
	return len(v.values)
}

// IsEmpty reports whether the SetVec holds no values.
func (v *SetVec[T]) IsEmpty() bool {
	return len(v.values) == 0
}

// Count returns the current number of disjoint sets.
func (v *SetVec[T]) Count() int {
	return v.set.Count()
}

// Push appends value as a new singleton element and returns its index. This
// is the only way to grow a SetVec, which is what keeps values and partition
// aligned.
func (v *SetVec[T]) Push(value T) int {
	v.values = append(v.values, value)
	return v.set.AddSingleton()
}

// Values returns the backing slice of values in index order. Callers may
// read and overwrite elements in place, which leaves the partition untouched;
// standard slice operations and the slices package apply directly. Growing
// the structure must go through Push.
func (v *SetVec[T]) Values() []T {
	return v.values
}

// Value returns the value at index i.
func (v *SetVec[T]) Value(i int) (T, error) {
	if err := checkIndex(i, len(v.values)); err != nil {
		var zero T
		return zero, err
	}
	return v.values[i], nil
}

// SetValue overwrites the value at index i. The partition is unaffected.
func (v *SetVec[T]) SetValue(i int, value T) error {
	if err := checkIndex(i, len(v.values)); err != nil {
		return err
	}
	v.values[i] = value
	return nil
}

// Find returns the canonical root of the set containing element i.
func (v *SetVec[T]) Find(i int) (int, error) {
	return v.set.Find(i)
}

// Root returns the current representative of element i's set.
func (v *SetVec[T]) Root(i int) (int, error) {
	return v.set.Root(i)
}

// Joined reports whether the values at i and j are in the same set.
func (v *SetVec[T]) Joined(i, j int) (bool, error) {
	return v.set.Joined(i, j)
}

// Join merges the sets containing the values at i and j. It returns true if
// they were previously distinct, false if they were already the same set.
func (v *SetVec[T]) Join(i, j int) (bool, error) {
	return v.set.Join(i, j)
}

// Indices returns a query view over the partition, scoped to this SetVec.
// Indices().Sets() yields groups of element indices where Sets() on the
// SetVec itself yields groups of values. The view exposes no operation that
// changes the element count, so it cannot desynchronize values and partition.
func (v *SetVec[T]) Indices() Indices {
	return Indices{set: &v.set}
}

// Sets returns the values grouped by partition: one group per set, each
// group holding copies of the member values. Group and member order match
// Indices().Sets().
func (v *SetVec[T]) Sets() [][]T {
	indexSets := v.set.Sets()
	out := make([][]T, len(indexSets))
	for i, indices := range indexSets {
		group := make([]T, len(indices))
		for j, e := range indices {
			group[j] = v.values[e]
		}
		out[i] = group
	}
	return out
}

// Clear removes all values and elements but keeps the allocated capacity.
func (v *SetVec[T]) Clear() {
	clear(v.values)
	v.values = v.values[:0]
	v.set.Clear()
}

// EqualFunc reports whether v and other hold equal values (under eq) in the
// same order with the same partition. For comparable value types, use
// [SetVecEqual].
func (v *SetVec[T]) EqualFunc(other *SetVec[T], eq func(a, b T) bool) bool {
	return slices.EqualFunc(v.values, other.values, eq) && v.set.Equal(&other.set)
}

// SetVecEqual reports whether a and b hold equal values in the same order
// with the same partition. Like [Set.Equal], internal tree shape does not
// matter.
func SetVecEqual[T comparable](a, b *SetVec[T]) bool {
	return slices.Equal(a.values, b.values) && a.set.Equal(&b.set)
}

// Indices is a read-only view over a SetVec's partition. It mirrors the
// query surface of Set but has no way to add elements, so handing it out
// never endangers the value/element alignment of its SetVec.
//
// The view is live: joins performed on the SetVec after the view was taken
// are visible through it.
type Indices struct {
	set *Set
}

// Len returns the number of elements.
func (ix Indices) Len() int { return ix.set.Len() }

// IsEmpty reports whether there are no elements.
func (ix Indices) IsEmpty() bool { return ix.set.IsEmpty() }

// Count returns the current number of disjoint sets.
func (ix Indices) Count() int { return ix.set.Count() }

// Find returns the canonical root of the set containing x.
func (ix Indices) Find(x int) (int, error) { return ix.set.Find(x) }

// Root returns the current representative of x's set.
func (ix Indices) Root(x int) (int, error) { return ix.set.Root(x) }

// Joined reports whether x and y are in the same set.
func (ix Indices) Joined(x, y int) (bool, error) { return ix.set.Joined(x, y) }

// SizeOf returns the number of elements in the set containing x.
func (ix Indices) SizeOf(x int) (int, error) { return ix.set.SizeOf(x) }

// Sets returns the partition as groups of element indices, in the same
// deterministic order as [Set.Sets].
func (ix Indices) Sets() [][]int { return ix.set.Sets() }

// String renders the partition for debugging.
func (ix Indices) String() string { return ix.set.String() }
