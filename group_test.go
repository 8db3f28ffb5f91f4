// group_test.go - tests for the duplicate chain registry (C8)
//
// (c) 2024 Sudhi Herle <sudhi@herle.net>
//
// Licensing Terms: GPLv2
//
// If you need a commercial license for this work, please contact
// the author.
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

package dupes

import "testing"

func newTestRec(name string) *FileRec {
	return &FileRec{path: name}
}

func TestRegisterPairNameOrder(t *testing.T) {
	assert := newAsserter(t)
	cfg := &Config{SortKey: OrderName}
	cmp := NewComparator(cfg)

	y := newTestRec("/tmp/y")
	x := newTestRec("/tmp/x")

	head := RegisterPair(y, x, cmp)
	assert(head == x, "expected 'x' to become the new chain head, natural order puts it first")
	assert(head.HasFlag(HasDupes), "new head should carry HasDupes")
	assert(!y.HasFlag(HasDupes), "demoted head should no longer carry HasDupes")
	assert(head.Duplicates == y, "expected x -> y chain")
}

func TestRegisterPairThreeWayOrdering(t *testing.T) {
	assert := newAsserter(t)
	cfg := &Config{SortKey: OrderName}
	cmp := NewComparator(cfg)

	b := newTestRec("/tmp/b")
	a := newTestRec("/tmp/a")
	c := newTestRec("/tmp/c")

	head := RegisterPair(b, a, cmp)
	head = RegisterPair(head, c, cmp)

	assert(head.path == "/tmp/a", "expected head 'a', got %s", head.path)
	assert(head.Duplicates.path == "/tmp/b", "expected second member 'b', got %s", head.Duplicates.path)
	assert(head.Duplicates.Duplicates.path == "/tmp/c", "expected third member 'c', got %s", head.Duplicates.Duplicates.path)
}
