package disjoint

import (
	"fmt"
	"strings"
)

// Set is a disjoint-set (union-find) data structure over the dense element
// range [0, Len()). It uses path compression and union by size, so sequences
// of Find and Join calls run in effectively constant amortized time per call.
//
// Elements are identified by index. A Set grows only by AddSingleton and
// never shrinks; Clear resets the whole structure. The zero value is an
// empty Set ready for use.
type Set struct {
	parent []int // parent[i] == i means i is a root
	size   []int // element count of the tree rooted at i; maintained for roots only
	count  int   // number of disjoint sets
}

// NewSet creates a Set of n elements, each in its own singleton set.
func NewSet(n int) *Set {
	s := &Set{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := range s.parent {
		s.parent[i] = i
		s.size[i] = 1
	}
	return s
}

// NewSetWithCapacity creates an empty Set with room for capacity elements,
// so the first capacity AddSingleton calls do not reallocate.
func NewSetWithCapacity(capacity int) *Set {
	return &Set{
		parent: make([]int, 0, capacity),
		size:   make([]int, 0, capacity),
	}
}

// Len returns the number of elements, regardless of how they are joined.
func (s *Set) Len() int {
	return len(s.parent)
}

// IsEmpty reports whether the Set has no elements.
func (s *Set) IsEmpty() bool {
	return len(s.parent) == 0
}

// Count returns the current number of disjoint sets. It starts at Len() and
// decreases by one with every merging Join.
func (s *Set) Count() int {
	return s.count
}

// AddSingleton appends one new element in its own set and returns its index.
// Existing elements and their joins are unaffected.
func (s *Set) AddSingleton() int {
	id := len(s.parent)
	s.parent = append(s.parent, id)
	s.size = append(s.size, 1)
	s.count++
	return id
}

// Find returns the canonical root of the set containing x. All members of a
// set report the same root until a Join merges the set with another.
//
// Find compresses the path it traverses: every visited element is relinked
// directly to the root, which is what keeps later lookups cheap. The answers
// returned are identical with or without compression having happened.
func (s *Set) Find(x int) (int, error) {
	if err := checkIndex(x, len(s.parent)); err != nil {
		return 0, err
	}
	return s.find(x), nil
}

// find is Find for callers that already validated x.
func (s *Set) find(x int) int {
	// Walk to the root.
	root := x
	for s.parent[root] != root {
		root = s.parent[root]
	}
	// Path compression: point all nodes along the path directly to root.
	for s.parent[x] != root {
		x, s.parent[x] = s.parent[x], root
	}
	return root
}

// Root returns the current representative of x's set. It is Find under the
// name callers reach for when they want a stable set identifier rather than
// a lookup.
func (s *Set) Root(x int) (int, error) {
	return s.Find(x)
}

// Joined reports whether x and y are in the same set.
func (s *Set) Joined(x, y int) (bool, error) {
	if err := checkIndex(x, len(s.parent)); err != nil {
		return false, err
	}
	if err := checkIndex(y, len(s.parent)); err != nil {
		return false, err
	}
	return s.find(x) == s.find(y), nil
}

// Join merges the sets containing x and y. It returns true if they were
// previously distinct, false if they were already the same set, in which
// case nothing changes.
func (s *Set) Join(x, y int) (bool, error) {
	if err := checkIndex(x, len(s.parent)); err != nil {
		return false, err
	}
	if err := checkIndex(y, len(s.parent)); err != nil {
		return false, err
	}
	return s.join(x, y), nil
}

// join is Join for callers that already validated x and y.
func (s *Set) join(x, y int) bool {
	rootX := s.find(x)
	rootY := s.find(y)
	if rootX == rootY {
		return false
	}

	// Attach the smaller tree under the larger; on equal size the first
	// argument's root stays the root.
	if s.size[rootX] < s.size[rootY] {
		rootX, rootY = rootY, rootX
	}
	s.parent[rootY] = rootX
	s.size[rootX] += s.size[rootY]
	s.count--
	return true
}

// SizeOf returns the number of elements in the set containing x.
func (s *Set) SizeOf(x int) (int, error) {
	if err := checkIndex(x, len(s.parent)); err != nil {
		return 0, err
	}
	return s.size[s.find(x)], nil
}

// Sets returns the current partition as a freshly built slice of groups of
// element indices. Every element appears in exactly one group. Groups are
// ordered by their smallest member and elements within a group ascend, so
// the result is deterministic for a given sequence of operations.
func (s *Set) Sets() [][]int {
	groups := make([][]int, 0, s.count)
	groupOf := make(map[int]int, s.count)
	for i := range s.parent {
		root := s.find(i)
		gi, ok := groupOf[root]
		if !ok {
			gi = len(groups)
			groups = append(groups, make([]int, 0, s.size[root]))
			groupOf[root] = gi
		}
		groups[gi] = append(groups[gi], i)
	}
	return groups
}

// Clear removes all elements but keeps the allocated capacity, so adding
// elements again does not allocate.
func (s *Set) Clear() {
	s.parent = s.parent[:0]
	s.size = s.size[:0]
	s.count = 0
}

// Equal reports whether s and other represent the same partition: the same
// length with the same grouping of elements into sets. Internal tree shape
// and compression state do not matter, so two Sets built by different join
// orders compare equal as long as they join the same elements.
func (s *Set) Equal(other *Set) bool {
	if s.Len() != other.Len() || s.count != other.count {
		return false
	}
	// With equal set counts, a consistent root-to-root correspondence over
	// all elements means the groupings coincide.
	rootMap := make(map[int]int, s.count)
	for i := range s.parent {
		root := s.find(i)
		otherRoot := other.find(i)
		if mapped, ok := rootMap[root]; ok {
			if mapped != otherRoot {
				return false
			}
			continue
		}
		rootMap[root] = otherRoot
	}
	return true
}

// String renders the partition for debugging, e.g. "{[0 1] [2] [3 4]}".
// The format is not part of the compatibility contract.
func (s *Set) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, group := range s.Sets() {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v", group)
	}
	b.WriteByte('}')
	return b.String()
}
