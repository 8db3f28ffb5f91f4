// action.go - turn a confirmed duplicate chain into file-system changes
//
// The discovery engine (package dupes) only ever produces read-only
// findings: a FileRec chain linked through Duplicates. Everything in
// this package is what a caller does AFTER that decision has been
// made - delete the extra copies, or collapse them into hardlinks,
// symlinks, or CoW reflinks of the one file that survives.
//
// Unlike the discovery core, this package is deliberately concurrent:
// once a run is finished, the chains it produced are immutable and
// independent of one another, so applying an action to chain A can't
// race with applying one to chain B. WorkPool and ResultMap (adapted
// from go-fio's workpool.go/fiomap.go) give us that fan-out safely.
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

package action

import (
	"fmt"
	"os"
	"runtime"

	"github.com/opencoff/go-dupes"
)

// Mode selects how a duplicate's extra copies are collapsed.
type Mode int

const (
	// Delete removes every duplicate but the keeper outright.
	Delete Mode = iota
	// Hardlink replaces every duplicate with a hard link to the
	// keeper. Falls back to Symlink on EXDEV (cross-device).
	Hardlink
	// Symlink replaces every duplicate with a symlink to the keeper.
	Symlink
	// Reflink replaces every duplicate with a copy-on-write clone of
	// the keeper where the filesystem supports it, falling back to a
	// full byte copy otherwise. Unlike Hardlink/Symlink this keeps
	// the duplicate as an independent inode, just a cheap one.
	Reflink
)

// Job is one duplicate-to-keeper pair to collapse.
type Job struct {
	Keep   *dupes.FileRec
	Victim *dupes.FileRec
}

// Plan expands every confirmed duplicate chain in groups into Jobs.
// The first record in each chain (the head passed to the registry) is
// always the keeper; everything reachable via Duplicates is a victim.
// Re-stats every victim against the Change Detector's signature before
// it's scheduled, so a file touched between discovery and execution is
// dropped from the plan instead of being collapsed out from under the
// user.
func Plan(heads []*dupes.FileRec) ([]Job, []error) {
	var jobs []Job
	var errs []error

	for _, head := range heads {
		if head == nil || !head.HasFlag(dupes.HasDupes) {
			continue
		}
		keep := head
		for v := head.Duplicates; v != nil; v = v.Duplicates {
			if dupes.Changed(v) {
				errs = append(errs, fmt.Errorf("action: plan: %s: %w", v.Path(), dupes.ErrAborted))
				continue
			}
			jobs = append(jobs, Job{Keep: keep, Victim: v})
		}
	}
	return jobs, errs
}

// Execute runs every job in the plan with mode 'm', fanning out across
// up to nworkers goroutines (0 means runtime.NumCPU()). It returns a
// map of victim path -> Result and the aggregate worker error, if any.
func Execute(jobs []Job, m Mode, nworkers int) (*ResultMap, error) {
	if nworkers <= 0 {
		nworkers = runtime.NumCPU()
	}

	results := NewResultMap()
	var exec func(Job) Result

	switch m {
	case Delete:
		exec = execDelete
	case Hardlink:
		exec = execHardlink
	case Symlink:
		exec = execSymlink
	case Reflink:
		exec = execReflink
	default:
		return results, fmt.Errorf("action: unknown mode %d", m)
	}

	pool := NewWorkPool[Job](nworkers, func(_ int, j Job) error {
		r := exec(j)
		results.Store(r.Path, r)
		return r.Err
	})

	go func() {
		for _, j := range jobs {
			pool.Submit(j)
		}
		pool.Close()
	}()

	err := pool.Wait()
	return results, err
}

func execDelete(j Job) Result {
	p := j.Victim.Path()
	if err := os.Remove(p); err != nil {
		return Result{Path: p, Err: &Error{"delete", p, err}}
	}
	return Result{Path: p, BytesReclaimed: j.Victim.Size}
}
