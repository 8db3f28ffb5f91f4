// symlink.go -- collapse a duplicate into a symlink to its keeper
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
	"os"
	"path/filepath"
)

func execSymlink(j Job) Result {
	p := j.Victim.Path()

	target, err := filepath.Abs(j.Keep.Path())
	if err != nil {
		return Result{Path: p, Err: &Error{"abs", p, err}}
	}

	tmp := p + ".dupes-tmp"
	if err := os.Symlink(target, tmp); err != nil {
		return Result{Path: p, Err: &Error{"symlink", p, err}}
	}

	if err := os.Rename(tmp, p); err != nil {
		os.Remove(tmp)
		return Result{Path: p, Err: &Error{"rename", p, err}}
	}

	return Result{Path: p, BytesReclaimed: j.Victim.Size}
}
