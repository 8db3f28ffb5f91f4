// group.go - the duplicate chain registry (C8)
//
// ORDER_NAME uses maruel/natural for a numeric-aware filename compare
// (so "file2" sorts before "file10"), the same library godu uses for
// its name-sort mode.
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

import (
	"github.com/maruel/natural"
)

// Comparator orders two members of a duplicate chain; negative means a
// sorts before b, positive the reverse, zero means equal.
type Comparator func(a, b *FileRec) int

// NewComparator builds the C8 comparator from the run configuration:
// parameter-order tie-break first (if enabled and the orders differ),
// else by mtime or by natural-order filename, then negated if
// ReverseSort is set.
func NewComparator(cfg *Config) Comparator {
	return func(a, b *FileRec) int {
		c := 0
		if cfg.ParameterOrder && a.UserOrder != b.UserOrder {
			c = a.UserOrder - b.UserOrder
		} else {
			switch cfg.SortKey {
			case OrderTime:
				switch {
				case a.Mtim.Before(b.Mtim):
					c = -1
				case a.Mtim.After(b.Mtim):
					c = 1
				}
			default: // OrderName
				an, bn := a.Name(), b.Name()
				switch {
				case an == bn:
					c = 0
				case natural.Less(an, bn):
					c = -1
				default:
					c = 1
				}
			}
		}
		if cfg.ReverseSort {
			c = -c
		}
		return c
	}
}

// RegisterPair folds newFile into head's duplicate chain (C8). head is
// the existing record the comparison tree matched against; it may
// already be a chain head (HasDupes set) or a lone file about to
// become one.
//
// Known limitation (spec §9): cmp is only ever invoked pairwise at
// insertion time against the chain as it stands, never re-sorted
// against the whole chain afterward, so the chain's order can drift
// out of the comparator's transitive ordering as more members arrive.
// This mirrors the original engine and is preserved deliberately;
// callers that need a fully sorted chain should re-sort each completed
// chain as a final pass.
func RegisterPair(head, newFile *FileRec, cmp Comparator) *FileRec {
	head.setFlag(HasDupes)

	if cmp(newFile, head) <= 0 {
		newFile.Duplicates = head
		newFile.setFlag(HasDupes)
		clearHasDupes(head, newFile)
		return newFile
	}

	prev := head
	for cur := head.Duplicates; cur != nil; cur = cur.Duplicates {
		if cmp(newFile, cur) <= 0 {
			newFile.Duplicates = cur
			prev.Duplicates = newFile
			return head
		}
		prev = cur
	}

	prev.Duplicates = newFile
	return head
}

// clearHasDupes is called only when newFile has displaced oldHead as
// the chain head; oldHead keeps its place in the chain but is no
// longer the head, so it must give up HAS_DUPES.
func clearHasDupes(oldHead, newHead *FileRec) {
	if oldHead == newHead {
		return
	}
	oldHead.Flags &^= HasDupes
}
