// engine.go - the run controller (C9) and its Engine value
//
// Spec §9 re-architects the original's process-wide singletons (file
// list head, tree root, ledger root, cancellation flag) as fields of
// one Engine value owned by the caller, instead of globals. That's
// exactly what this struct is.
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


// Engine owns one run of the discovery pipeline: the file list, the
// comparison tree, the traversal ledger, the duplicate-chain heads and
// the cancellation flag.
type Engine struct {
	cfg *Config
	cmp Comparator

	ledger Ledger
	tree   *Tree
	can    Canceler

	files *FileRec // head of the insertion-ordered file list
	heads []*FileRec // duplicate chain heads, in the order first formed

	nFiles int
	nBytes int64
}

// NewEngine validates cfg and returns a ready-to-run Engine.
func NewEngine(cfg *Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{cfg: cfg, cmp: NewComparator(cfg)}
	e.can.SetSoftAbort(cfg.SoftAbort)
	e.tree = NewTree(cfg, &e.can)
	return e, nil
}

// Cancel raises the engine's cooperative-cancellation flag; safe to
// call from a signal handler (spec §4.11, §9).
func (e *Engine) Cancel() {
	e.can.Cancel()
}

// ToggleSoftAbort flips whether a future Cancel stops the run cleanly
// (reporting matches found so far) or is expected to be followed by an
// immediate process exit. Safe to call from a signal handler; this is
// the engine-level hook behind the CLI's SIGUSR1 toggle (spec §4.9).
func (e *Engine) ToggleSoftAbort() bool {
	return e.can.ToggleSoftAbort()
}

// SoftAbortEnabled reports the engine's current soft-abort policy.
func (e *Engine) SoftAbortEnabled() bool {
	return e.can.SoftAbortEnabled()
}

// Files returns the head of the insertion-ordered file list.
func (e *Engine) Files() *FileRec {
	return e.files
}

// DuplicateHeads returns every chain head produced so far, in the
// order each chain was first formed.
func (e *Engine) DuplicateHeads() []*FileRec {
	return e.heads
}

// Run drives C9 over the given root arguments (spec §4.9): walk each
// root, insert every admitted file into the comparison tree, confirm
// candidate matches with C7 unless quick/partial-only/hardlink-hit,
// and register confirmed matches with C8. Returns early, with whatever
// chains already exist, if the cancellation flag is raised mid-scan.
func (e *Engine) Run(roots []string) error {
	w := NewWalker(e.cfg, &e.ledger, &e.can)

	for order, root := range roots {
		err := w.Walk(root, order, func(fr *FileRec) error {
			fr.Next = e.files
			e.files = fr
			e.nFiles++
			e.nBytes += fr.Size
			return nil
		})
		if err != nil {
			if isFatal(err) {
				return err
			}
			// FileGone/IO/AccessDenied on a root argument: the error
			// is dropped unreported and the run moves on to the next
			// root rather than aborting.
		}
	}

	for fr := e.files; fr != nil; fr = fr.Next {
		if err := e.can.Poll(); err != nil {
			break
		}

		match, err := e.tree.Insert(fr)
		if err != nil {
			// a MATCH candidate that fails to hash is treated as a
			// non-match, not a fatal run error (spec §7).
			continue
		}
		if match == nil {
			continue
		}

		confirmed := true
		hardlinkHit := fr.Dev == match.Dev && fr.Ino == match.Ino
		needsConfirm := !e.cfg.Quick && !e.cfg.PartialOnly && !hardlinkHit
		if needsConfirm {
			chunk := ChunkSize(e.cfg.ChunkSizeOverride)
			ok, err := Confirm(fr, match, chunk, &e.can)
			if err != nil {
				// open/read failure during confirmation: treat the
				// candidate as a non-match (spec §7), keep scanning.
				continue
			}
			confirmed = ok
		}
		if !confirmed {
			continue
		}

		e.registerOrAppend(match, fr)
	}

	return nil
}

// registerOrAppend folds fr into the chain that already holds match via
// C8, or starts a new chain headed by match or fr. match may have been
// displaced as head by an earlier RegisterPair, so the chain is found by
// membership rather than by match's HasDupes flag.
func (e *Engine) registerOrAppend(match, fr *FileRec) *FileRec {
	for i, h := range e.heads {
		for m := h; m != nil; m = m.Duplicates {
			if m == match {
				head := RegisterPair(h, fr, e.cmp)
				e.heads[i] = head
				return head
			}
		}
	}
	head := RegisterPair(match, fr, e.cmp)
	e.heads = append(e.heads, head)
	return head
}

func isFatal(err error) bool {
	return errAny(err, ErrPathOverflow, ErrOom, ErrBadConfig)
}

// Stats returns the number of admitted files and their total byte size.
func (e *Engine) Stats() (files int, bytes int64) {
	return e.nFiles, e.nBytes
}
