// filerec.go - per-file metadata record and the stat acquirer
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

// Package dupes implements the duplicate-file discovery engine: a
// directory-traversal pipeline, a size+hash comparison tree, a
// byte-level confirmation step and the grouping of confirmed matches
// into duplicate chains.
package dupes

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
	"time"
)

// Flag captures the lifecycle state of a FileRec.
type Flag uint32

const (
	ValidStat   Flag = 1 << iota // stat fields have been populated
	HashPartial                  // PartialHash is valid
	HashFull                     // FullHash is valid
	IsSymlink                    // the entry itself (not its target) is a symlink
	HasDupes                     // this record is the head of a duplicate chain
)

// SizeUnknown is the permanent-rejection sentinel used for FileRec.Size
// before a successful stat, or when stat yields no usable size.
const SizeUnknown int64 = -1

// FileRec is the per-admitted-file record that flows through the
// discovery pipeline: one per regular file that survives the
// exclusion filter. Every FileRec is owned by the engine's file list;
// the comparison tree and duplicate chains hold non-owning references
// to it.
type FileRec struct {
	path string

	Size  int64
	Ino   uint64
	Dev   uint64
	Rdev  uint64
	Mode  fs.FileMode
	Uid   uint32
	Gid   uint32
	Nlink uint32

	Mtim     time.Time
	Birthtim time.Time // optional; zero value if the platform doesn't report it
	Ctim     time.Time

	// Xattr is a best-effort snapshot of the entry's extended
	// attributes (nil if they could not be read). The comparison tree
	// compares it under PermissionsStrict, and Changed compares it
	// against a fresh stat.
	Xattr Xattr

	PartialHash uint64
	FullHash    uint64

	Flags Flag

	// UserOrder is the 0-based position of the CLI argument that
	// introduced this file; used by parameter-isolation and by the
	// parameter-order tie-break policy.
	UserOrder int

	// Next is this record's successor in the engine's global,
	// insertion-ordered file list.
	Next *FileRec

	// Duplicates is this record's successor in its duplicate chain.
	// Only meaningful once HasDupes is set on the chain head.
	Duplicates *FileRec

	// hstate is the streaming hasher left over from computing
	// PartialHash, kept around so a later full-hash extends the same
	// one-pass digest instead of re-reading the first K bytes. It is
	// pure hashing scratch state, never part of the data model proper.
	hstate *partialState
}

// NewFileRec allocates a FileRec for 'path' at the given user-supplied
// argument index. The caller must still call StatInto before using any
// stat-derived field.
func NewFileRec(path string, userOrder int) *FileRec {
	return &FileRec{
		path:      path,
		Size:      SizeUnknown,
		UserOrder: userOrder,
	}
}

// Path returns the path this record refers to.
func (fr *FileRec) Path() string { return fr.path }

// Name returns the basename of the path, satisfying the common
// fs.FileInfo-ish convention used elsewhere in this module.
func (fr *FileRec) Name() string { return filepath.Base(fr.path) }

// IsDir reports whether this entry is a directory.
func (fr *FileRec) IsDir() bool { return fr.Mode.IsDir() }

// IsRegular reports whether this entry is a regular file.
func (fr *FileRec) IsRegular() bool { return fr.Mode.IsRegular() }

// HasFlag reports whether every bit in 'f' is set.
func (fr *FileRec) HasFlag(f Flag) bool { return fr.Flags&f == f }

func (fr *FileRec) setFlag(f Flag) { fr.Flags |= f }

// SameInode reports whether fr and other refer to the same on-disk
// object (hard-link or the same path visited twice).
func (fr *FileRec) SameInode(other *FileRec) bool {
	return fr.Ino == other.Ino && fr.Dev == other.Dev
}

// String is a human-readable summary, in the style of go-fio's Info.String().
func (fr *FileRec) String() string {
	return fmt.Sprintf("%s: %d bytes, ino=%d dev=%d nlink=%d mtime=%s",
		fr.path, fr.Size, fr.Ino, fr.Dev, fr.Nlink, fr.Mtim.UTC())
}

// StatInto acquires metadata for fr.Path() into fr (C1, spec §4.1).
// It always performs a non-dereferencing stat (lstat semantics): if
// the path itself is a symlink, IsSymlink is set but the symlink is
// not followed. StatInto is idempotent: a second call on a record
// that already carries ValidStat is a no-op that returns nil.
func StatInto(fr *FileRec) error {
	if fr.HasFlag(ValidStat) {
		return nil
	}

	var st syscall.Stat_t
	if err := syscall.Lstat(fr.path, &st); err != nil {
		if os.IsNotExist(err) {
			return &StatError{Op: "lstat", Path: fr.path, Err: ErrFileGone}
		}
		if os.IsPermission(err) {
			return &StatError{Op: "lstat", Path: fr.path, Err: ErrAccessDenied}
		}
		return &StatError{Op: "lstat", Path: fr.path, Err: err}
	}

	fillFromStat(fr, &st)

	// xattr is ambient, best-effort: many filesystems (tmpfs, some
	// overlays) don't support it at all. Never fail the stat over it.
	if x, err := LgetXattr(fr.path); err == nil {
		fr.Xattr = x
	}

	if fr.Mode&fs.ModeSymlink != 0 {
		fr.setFlag(IsSymlink)
	}

	if fr.Size < 0 {
		fr.Size = SizeUnknown
		return &StatError{Op: "lstat", Path: fr.path, Err: fmt.Errorf("negative size")}
	}

	fr.setFlag(ValidStat)
	return nil
}

// Stat is a convenience wrapper that allocates and stats a FileRec in
// one call. Stat never follows a trailing symlink (see StatInto).
func Stat(path string, userOrder int) (*FileRec, error) {
	fr := NewFileRec(path, userOrder)
	if err := StatInto(fr); err != nil {
		return nil, err
	}
	return fr, nil
}

// Lstat is an alias for Stat kept for readability at call sites in the
// copy/clone helpers below, where "we never follow symlinks" is the
// point being made.
func Lstat(path string) (*FileRec, error) {
	return Stat(path, 0)
}

// Fstat stats an already-open file by re-resolving its name. FileRec
// has no portable fstat(2) path of its own, so this is lstat-by-name
// on the descriptor's name, same as go-fio's Fstatm does internally.
func Fstat(fd *os.File) (*FileRec, error) {
	return Stat(fd.Name(), 0)
}

// IsSameFS reports whether fr and other live on the same device, the
// way go-fio's Info.IsSameFS does; used to decide whether a reflink/CoW
// fast path is even possible between two paths.
func (fr *FileRec) IsSameFS(other *FileRec) bool {
	return fr.Dev == other.Dev && fr.Rdev == other.Rdev
}
