// reflink.go -- collapse a duplicate into a CoW clone of its keeper
//
// Grounded on go-fio's copy_linux.go (FICLONE via unix.IoctlFileClone,
// falling back to copy_file_range(2)) and copy_darwin.go
// (unix.Clonefile). Both are reached through dupes.CloneFile, so this
// file is a thin driver: remove the victim, clone the keeper in its
// place. Unlike Hardlink/Symlink, the victim keeps its own inode - a
// reflink only saves the underlying storage blocks, not the directory
// entry, so it survives the keeper being deleted later.
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

	"github.com/opencoff/go-dupes"
)

func execReflink(j Job) Result {
	p := j.Victim.Path()
	tmp := p + ".dupes-tmp"

	if err := os.Remove(tmp); err != nil && !os.IsNotExist(err) {
		return Result{Path: p, Err: &Error{"cleanup-tmp", p, err}}
	}

	if err := dupes.CloneFile(tmp, j.Keep.Path()); err != nil {
		return Result{Path: p, Err: &Error{"reflink", p, fmt.Errorf("%w", err)}}
	}

	if err := os.Remove(p); err != nil {
		os.Remove(tmp)
		return Result{Path: p, Err: &Error{"remove-victim", p, err}}
	}

	if err := os.Rename(tmp, p); err != nil {
		return Result{Path: p, Err: &Error{"rename", p, err}}
	}

	return Result{Path: p, BytesReclaimed: j.Victim.Size}
}
