// copyfile.go - copy a file entry (file|dir|symlink) efficiently using
// platform specific primitives, falling back to a simple mmap'd copy.
//
// The action layer's reflink executor uses CloneFile from here to put a
// CoW clone (or, without CoW support, a byte copy) of the keeper in
// place of a duplicate.
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

package dupes

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// copyFile copies the open file 'src' into the open file 'dst' using
// the best OS primitive for the platform, falling back to a mmap'd
// copy when that primitive isn't available (different filesystems,
// EXDEV, unsupported ioctl, etc). When the two descriptors are known
// to live on different filesystems, CoW/reflink primitives can never
// work, so we skip straight to the portable mmap path instead of
// paying for a doomed syscall attempt first.
func copyFile(dst, src *os.File) error {
	si, serr := Fstat(src)
	di, derr := Fstat(dst)
	if serr == nil && derr == nil && !di.IsSameFS(si) {
		return copyViaMmap(dst, src)
	}
	return sysCopyFd(dst, src)
}

// CopyFile copies 'src' to 'dst' using the most efficient OS primitive
// available on the runtime platform. CopyFile will use copy-on-write
// facilities if the underlying file-system implements it. It will
// fallback to copying via memory mapping 'src' and writing the blocks
// to 'dst'.
func CopyFile(dst, src string, perm fs.FileMode) error {
	s, err := os.Open(src)
	if err != nil {
		return err
	}

	defer s.Close()

	// never overwrite an existing file.
	if _, err = Lstat(dst); err == nil {
		return fmt.Errorf("copyfile: destination %s already exists", dst)
	}

	d, err := NewSafeFile(dst, OPT_COW, os.O_CREATE|os.O_RDWR|os.O_EXCL, perm)
	if err != nil {
		return fmt.Errorf("copyfile: %w", err)
	}

	defer d.Abort()
	if err = copyFile(d.File, s); err != nil {
		return fmt.Errorf("copyfile: %w", err)
	}

	return d.Close()
}

// op mutates one piece of dest's metadata, copying it from src/fr.
type op func(dest, src string, fr *FileRec) error

// order of applying these is important; we can't update certain
// attributes if we're not the owner anymore. So chown/chmod go last.
var mdUpdaters = []op{
	clonexattr,
	utimes,
	chown,
	chmod,
}

// updateMeta applies every metadata updater in mdUpdaters to dest,
// copying from the stat record of src.
func updateMeta(dest, src string, fr *FileRec) error {
	for _, fp := range mdUpdaters {
		if err := fp(dest, src, fr); err != nil {
			return fmt.Errorf("clonefile: %w", err)
		}
	}
	return nil
}

// CloneMetadata clones all copyable metadata from src to dst: mtime,
// uid, gid, mode/perm and xattr.
func CloneMetadata(dst, src string) error {
	fr, err := Lstat(src)
	if err != nil {
		return fmt.Errorf("clonemeta: %w", err)
	}
	if err := updateMeta(dst, src, fr); err != nil {
		return fmt.Errorf("clonemeta: %w", err)
	}
	return nil
}

// CloneFile copies src to dst - including all copyable file attributes
// and xattr. CloneFile will use the best available CoW facilities
// provided by the OS and filesystem, falling back to mmap(2) on
// systems without CoW semantics.
func CloneFile(dst, src string) error {
	// never overwrite an existing file.
	if _, err := Lstat(dst); err == nil {
		return fmt.Errorf("clonefile: destination %s already exists", dst)
	}

	fr, err := Lstat(src)
	if err != nil {
		return fmt.Errorf("clonefile: %w", err)
	}

	mode := fr.Mode
	if mode.IsRegular() {
		s, err := os.Open(src)
		if err != nil {
			return fmt.Errorf("clonefile: %w", err)
		}
		defer s.Close()
		return copyRegular(dst, s, fr)
	}

	switch mode.Type() {
	case fs.ModeDir:
		if err = os.MkdirAll(dst, mode&fs.ModePerm); err != nil {
			return err
		}
		// caller is responsible for deep-cloning a directory's contents.
		err = updateMeta(dst, src, fr)

	case fs.ModeSymlink:
		err = clonelink(dst, src, fr)

	case fs.ModeDevice, fs.ModeNamedPipe:
		err = mknod(dst, src, fr)

	default:
		err = fmt.Errorf("clonefile: %s: unsupported type %#x", src, mode)
	}

	if err != nil {
		return fmt.Errorf("clonefile: %s from %s: %w", dst, src, err)
	}
	return nil
}

// copy a regular file to another regular file, then clone its metadata.
func copyRegular(dst string, s *os.File, fr *FileRec) error {
	if dn := filepath.Dir(dst); dn != "." {
		if err := os.MkdirAll(dn, 0700); err != nil {
			return fmt.Errorf("clonefile: %w", err)
		}
	}

	// We create the file so that we can write to it; we'll update the
	// perm bits later on via updateMeta.
	d, err := NewSafeFile(dst, OPT_COW, os.O_CREATE|os.O_RDWR|os.O_EXCL, 0600)
	if err != nil {
		return fmt.Errorf("clonefile: %w", err)
	}

	defer d.Abort()
	if err = copyFile(d.File, s); err != nil {
		return fmt.Errorf("clonefile: %w", err)
	}

	if err = updateMeta(d.Name(), s.Name(), fr); err != nil {
		return err
	}

	return d.Close()
}

// CopyFd copies open files 'src' to 'dst' using the most efficient OS
// primitive available on the runtime platform, falling back to mmap(2).
func CopyFd(dst, src *os.File) error {
	err := copyFile(dst, src)
	if err == nil {
		err = dst.Sync()
	}
	return err
}
