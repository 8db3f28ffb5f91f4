// meta_unix.go -- clone file metadata for unixish platforms
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
	"os"
	"syscall"
)

func chown(dest string, _ string, fr *FileRec) error {
	if err := syscall.Chown(dest, int(fr.Uid), int(fr.Gid)); err != nil {
		return fmt.Errorf("chown: %w", err)
	}
	return nil
}

func chmod(dest string, _ string, fr *FileRec) error {
	return os.Chmod(dest, fr.Mode)
}

// clone a symlink - ie we make the target point to the same one as src
func clonelink(dest string, src string, fr *FileRec) error {
	targ, err := os.Readlink(src)
	if err != nil {
		return fmt.Errorf("readlink: %w", err)
	}
	if err = os.Symlink(targ, dest); err != nil {
		return fmt.Errorf("symlink: %w", err)
	}

	if err := utimes(dest, src, fr); err != nil {
		return err
	}
	return lclonexattr(dest, src, fr)
}

func clonexattr(dest, src string, _ *FileRec) error {
	x, err := GetXattr(src)
	if err != nil {
		return err
	}

	return ReplaceXattr(dest, x)
}

// clone the xattr of the symlink itself
func lclonexattr(dest, src string, _ *FileRec) error {
	x, err := LgetXattr(src)
	if err != nil {
		return err
	}

	return LreplaceXattr(dest, x)
}

// mknod is unsupported: the discovery engine only ever admits regular
// files (C4 excludes everything else), so device nodes and named pipes
// never reach the action layer in practice. Kept only so CloneFile's
// type switch has somewhere to go.
func mknod(dest string, src string, _ *FileRec) error {
	return fmt.Errorf("mknod: not supported")
}
