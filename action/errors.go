// errors.go - descriptive errors for the action package
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
)

// Error represents an error returned while executing a Delete,
// Hardlink, Symlink or Reflink job.
type Error struct {
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("action: %s %q: %s", e.Op, e.Path, e.Err.Error())
}

func (e *Error) Unwrap() error {
	return e.Err
}

var _ error = &Error{}
