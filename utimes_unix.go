// utimes_unix.go -- set file times for unixish platforms
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

//go:build unix

package dupes

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// utimes sets dest's atime and mtime to fr.Mtim without following a
// trailing symlink, so a cloned symlink gets the times itself.
func utimes(dest string, _ string, fr *FileRec) error {
	ts := unix.NsecToTimespec(fr.Mtim.UnixNano())
	tv := []unix.Timespec{ts, ts}
	if err := unix.UtimesNanoAt(unix.AT_FDCWD, dest, tv, unix.AT_SYMLINK_NOFOLLOW); err != nil {
		return fmt.Errorf("utimes: %w", err)
	}
	return nil
}
