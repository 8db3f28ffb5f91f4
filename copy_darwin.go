// copy_darwin.go - macOS specific file copy
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

//go:build darwin

package dupes

import (
	"os"
)

// macOS has no fclonefile() that takes two open fds, and clonefile(2)
// requires that the destination not already exist - but CloneFile
// always copies into a freshly created SafeFile, so this path never
// sees an unborn destination path to clone onto. The reflink action
// (see go-dupes/action) falls back to the mmap copy on Darwin, same
// as it would on any filesystem without CoW support.
func sysCopyFd(d, s *os.File) error {
	return copyViaMmap(d, s)
}
