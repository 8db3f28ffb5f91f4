// cancel.go - cooperative cancellation (C11)
//
// A single process-wide flag, flipped from a signal handler and
// polled at bounded intervals by the hasher, confirmer and main scan
// loop. Nothing about setting the flag raises an error by itself; the
// polling site is what turns it into ErrAborted.
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
	"sync/atomic"
)

// Canceler is the scoped cooperative-cancellation signal (C11). Its
// zero value is ready to use.
type Canceler struct {
	flag atomic.Bool

	// soft holds the runtime soft-abort policy (spec §4.9/§4.11): when
	// set, a cancellation mid-run is treated as "stop and report
	// matches found so far" rather than "discard everything". It
	// starts at Config.SoftAbort but can be flipped at any time via
	// ToggleSoftAbort, mirroring jdupes's SIGUSR1 handler toggling
	// F_SOFTABORT independently of the original -Z flag.
	soft atomic.Bool
}

// Cancel raises the flag. Safe to call from a signal handler.
func (c *Canceler) Cancel() {
	c.flag.Store(true)
}

// Reset clears the flag, e.g. at re-entry to the scan loop of a new run.
func (c *Canceler) Reset() {
	c.flag.Store(false)
}

// Canceled reports whether Cancel has been called since the last Reset.
func (c *Canceler) Canceled() bool {
	return c.flag.Load()
}

// Poll returns ErrAborted if the flag is raised, else nil. Hot loops
// (hasher, confirmer, walker) call this at bounded intervals.
func (c *Canceler) Poll() error {
	if c.flag.Load() {
		return ErrAborted
	}
	return nil
}

// SetSoftAbort sets the soft-abort policy to v, e.g. from Config at
// startup.
func (c *Canceler) SetSoftAbort(v bool) {
	c.soft.Store(v)
}

// ToggleSoftAbort flips the soft-abort policy and returns its new
// value. Safe to call from a signal handler (a SIGUSR1 in the CLI,
// per spec §4.9's "a separate user signal toggles the soft-abort
// policy mid-run").
func (c *Canceler) ToggleSoftAbort() bool {
	v := !c.soft.Load()
	c.soft.Store(v)
	return v
}

// SoftAbortEnabled reports the current soft-abort policy.
func (c *Canceler) SoftAbortEnabled() bool {
	return c.soft.Load()
}
