// walker.go - the directory walker (C3)
//
// Rewritten from go-fio's walk package into a strictly synchronous
// recursive walker: the original walk.go fanned each directory out to
// a worker pool and merged results through channels, which this
// engine's single-threaded design (spec §5) rules out. The control
// flow below — stat, register in the ledger, enumerate, per-entry
// stat+filter, recurse-or-admit — follows spec §4.3 step by step.
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
	"os"
	"path/filepath"
)

// PathMax bounds the walker's path-assembly scratch; exceeding it is
// fatal (spec §4.3 step 4, §6).
const PathMax = 4096

// Walker drives C3 over one or more root arguments, admitting survivors
// to 'admit' and honoring the traversal ledger (C2) and exclusion
// filter (C4) along the way.
type Walker struct {
	cfg    *Config
	ledger *Ledger
	can    *Canceler
}

// NewWalker creates a Walker bound to cfg, ledger and can.
func NewWalker(cfg *Config, ledger *Ledger, can *Canceler) *Walker {
	return &Walker{cfg: cfg, ledger: ledger, can: can}
}

// Walk enumerates root (spec §4.3), calling admit for every regular
// file that survives the exclusion filter. userOrder is stamped on
// every FileRec produced from this root, for parameter-isolation and
// parameter-order tie-breaks.
func (w *Walker) Walk(root string, userOrder int, admit func(*FileRec) error) error {
	if len(root) > PathMax {
		return &StatError{Op: "walk", Path: root, Err: ErrPathOverflow}
	}

	fr := NewFileRec(root, userOrder)
	if err := StatInto(fr); err != nil {
		return err
	}

	if !fr.IsDir() {
		if !Admit(fr, w.cfg) {
			return nil
		}
		return admit(fr)
	}

	recurse := w.cfg.Recurse != RecurseOff
	return w.walkDir(fr, recurse, userOrder, admit)
}

// walkDir implements spec §4.3 steps 2-7 for one directory FileRec
// already known to be a directory.
func (w *Walker) walkDir(dir *FileRec, recurse bool, userOrder int, admit func(*FileRec) error) error {
	if err := w.can.Poll(); err != nil {
		return err
	}

	if w.ledger.VisitOrSkip(dir.Ino, dir.Dev) == Repeat {
		return nil
	}

	entries, err := os.ReadDir(dir.Path())
	if err != nil {
		// a directory we can't enumerate is skipped without a report, not fatal.
		return nil
	}

	for _, ent := range entries {
		name := ent.Name()
		if name == "." || name == ".." {
			continue
		}

		full := filepath.Join(dir.Path(), name)
		if len(full) > PathMax {
			return &StatError{Op: "walk", Path: full, Err: ErrPathOverflow}
		}

		child := NewFileRec(full, userOrder)
		if err := StatInto(child); err != nil {
			// per-entry stat failure: skip without a report, not fatal.
			continue
		}

		if !Admit(child, w.cfg) {
			continue
		}

		if child.IsDir() {
			if !recurse {
				continue
			}
			if w.cfg.OneFilesystem && child.Dev != dir.Dev {
				continue
			}
			if child.HasFlag(IsSymlink) && !w.cfg.FollowSymlinks {
				continue
			}
			if err := w.walkDir(child, recurse, userOrder, admit); err != nil {
				return err
			}
			continue
		}

		if child.IsRegular() || (child.HasFlag(IsSymlink) && w.cfg.FollowSymlinks) {
			if err := admit(child); err != nil {
				return err
			}
		}
	}

	return nil
}
