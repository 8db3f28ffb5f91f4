// errors.go - descriptive errors for the dupes engine
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

package dupes

import (
	"errors"
	"fmt"
)

// Sentinel error kinds from spec §7. Per-file errors (FileGone, IO,
// AccessDenied) are non-fatal: the offending record is dropped from
// its current operation. PathOverflow, Oom and BadConfig are fatal.
// Aborted is returned at a cancellation checkpoint (§4.11).
var (
	ErrFileGone     = errors.New("dupes: file gone")
	ErrIO           = errors.New("dupes: i/o error")
	ErrAccessDenied = errors.New("dupes: access denied")
	ErrPathOverflow = errors.New("dupes: path exceeds buffer")
	ErrOom          = errors.New("dupes: out of memory")
	ErrBadConfig    = errors.New("dupes: conflicting configuration")
	ErrAborted      = errors.New("dupes: aborted")
)

// StatError wraps a failure from the stat acquirer (C1).
type StatError struct {
	Op   string
	Path string
	Err  error
}

func (e *StatError) Error() string {
	return fmt.Sprintf("dupes: %s %q: %s", e.Op, e.Path, e.Err)
}

func (e *StatError) Unwrap() error { return e.Err }

// HashError wraps a failure from the hasher (C5).
type HashError struct {
	Path string
	Err  error
}

func (e *HashError) Error() string {
	return fmt.Sprintf("dupes: hash %q: %s", e.Path, e.Err)
}

func (e *HashError) Unwrap() error { return e.Err }

// CopyError represents the errors returned by CopyFile and CopyFd.
type CopyError struct {
	Op  string
	Src string
	Dst string
	Err error
}

// Error returns a string representation of CopyError
func (e *CopyError) Error() string {
	return fmt.Sprintf("copyfile: %s '%s' '%s': %s",
		e.Op, e.Src, e.Dst, e.Err.Error())
}

// Unwrap returns the underlying wrapped error
func (e *CopyError) Unwrap() error {
	return e.Err
}

var _ error = &CopyError{}
var _ error = &StatError{}
var _ error = &HashError{}

// errAny returns true if the target error 'err' matches
// any in the list 'errs'; and returns false otherwise
func errAny(err error, errs ...error) bool {
	for _, e := range errs {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
