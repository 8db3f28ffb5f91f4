// signal_other.go -- no SIGUSR1 equivalent outside unix
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

//go:build !unix

package main

import "os"

// softAbortToggleSignal reports that this platform has no runtime
// soft-abort toggle; the policy is still set from --soft-abort at
// startup (spec §4.11), it just can't be flipped mid-run here.
func softAbortToggleSignal() os.Signal {
	return nil
}
