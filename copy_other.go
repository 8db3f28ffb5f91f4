// copy_other.go - non-Linux, non-Darwin file copy
//
// (c) 2021 Sudhi Herle <sudhi@herle.net>
//
// Licensing Terms: GPLv2
//
// If you need a commercial license for this work, please contact
// the author.
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

//go:build !linux && !darwin

package dupes

import (
	"os"
)

// No CoW primitive on these platforms at all; the reflink action (see
// go-dupes/action) falls back to the mmap copy unconditionally.
func sysCopyFd(dst, src *os.File) error {
	return copyViaMmap(dst, src)
}
