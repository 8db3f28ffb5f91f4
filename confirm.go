// confirm.go - byte-for-byte confirmation (C7)
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
	"bytes"
	"io"
	"os"
)

// Confirm does a byte-for-byte comparison of a and b, reading paired
// chunks of the configured chunk size from the start of each file. It
// returns true only on a clean, simultaneous EOF with every chunk
// equal. A cancellation mid-comparison is reported as ErrAborted, and
// the pair must be treated as unconfirmed, not as a match.
func Confirm(a, b *FileRec, chunk int, can *Canceler) (bool, error) {
	fa, err := os.Open(a.path)
	if err != nil {
		return false, &HashError{Path: a.path, Err: classifyOpenErr(err)}
	}
	defer fa.Close()

	fb, err := os.Open(b.path)
	if err != nil {
		return false, &HashError{Path: b.path, Err: classifyOpenErr(err)}
	}
	defer fb.Close()

	if chunk <= 0 {
		chunk = ChunkSize(0)
	}
	bufA := make([]byte, chunk)
	bufB := make([]byte, chunk)
	nchunks := 0

	for {
		na, erra := io.ReadFull(fa, bufA)
		nb, errb := io.ReadFull(fb, bufB)

		if na != nb {
			return false, nil
		}
		if na > 0 && !bytes.Equal(bufA[:na], bufB[:nb]) {
			return false, nil
		}

		aEOF := erra == io.EOF || erra == io.ErrUnexpectedEOF
		bEOF := errb == io.EOF || errb == io.ErrUnexpectedEOF

		if aEOF != bEOF {
			return false, nil
		}
		if aEOF && bEOF {
			return true, nil
		}
		if erra != nil && !aEOF {
			return false, &HashError{Path: a.path, Err: ErrIO}
		}
		if errb != nil && !bEOF {
			return false, &HashError{Path: b.path, Err: ErrIO}
		}

		nchunks++
		if can != nil && nchunks%pollEvery == 0 {
			if err := can.Poll(); err != nil {
				return false, err
			}
		}
	}
}
