// signal_unix.go -- the SIGUSR1 soft-abort toggle, unix only
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

//go:build unix

package main

import (
	"os"
	"syscall"
)

// softAbortToggleSignal returns the signal that flips the engine's
// soft-abort policy mid-run (spec §4.9), grounded on jdupes.c's own
// `signal(SIGUSR1, sigusr1)` registration. Windows has no SIGUSR1, so
// there's nothing to register there; see signal_other.go.
func softAbortToggleSignal() os.Signal {
	return syscall.SIGUSR1
}
