// hasher.go - partial and full content hashing (C5)
//
// Both digests are 64-bit non-cryptographic xxh3 sums (zeebo/xxh3,
// already vendored by the retrieval pack's duplicate-finder examples).
// The full hash is required to equal the single-pass digest over the
// whole file regardless of the partial-hash fast path, so we keep the
// xxh3.Hasher object around between the partial and full calls instead
// of hashing the first K bytes twice: xxh3.Hasher.Write is resumable,
// and Sum64 can be read mid-stream without resetting it.
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
	"io"
	"os"

	"github.com/zeebo/xxh3"
)

const (
	// PartialSize is K: the number of leading bytes used for the
	// partial hash, per spec's compile-time default.
	PartialSize int64 = 4096

	// MinChunk and MaxChunk bound the auto-tuned chunk size.
	MinChunk = 4 * 1024
	MaxChunk = 16 * 1024 * 1024

	// defaultChunk is used when auto-tuning can't size to the L1
	// cache (we have no portable way to query it); chosen well within
	// [MinChunk, MaxChunk] and a 4KiB multiple.
	defaultChunk = 64 * 1024

	// pollEvery is how many chunks elapse between cancellation polls.
	pollEvery = 256
)

// partialState is the hashing scratch left on a FileRec between a
// partial-hash call and a later full-hash call.
type partialState struct {
	h      *xxh3.Hasher
	nread  int64 // bytes fed into h so far (== min(size, PartialSize) once partial is done)
}

// ChunkSize returns the configured chunk size, clamped to
// [MinChunk, MaxChunk] and rounded up to a 4KiB multiple. override<=0
// means "use the built-in default".
func ChunkSize(override int) int {
	n := override
	if n <= 0 {
		n = defaultChunk
	}
	if n < MinChunk {
		n = MinChunk
	}
	if n > MaxChunk {
		n = MaxChunk
	}
	const unit = 4 * 1024
	if r := n % unit; r != 0 {
		n += unit - r
	}
	return n
}

// HashPartial computes fr.PartialHash over the first PartialSize bytes
// (or the whole file, if smaller), and leaves the streaming hasher
// state on fr for a later HashFull to extend. Idempotent: a second
// call on a record that already has HashPartial is a no-op.
func HashPartial(fr *FileRec, chunk int, c *Canceler) error {
	if fr.HasFlag(HashPartial) {
		return nil
	}

	f, err := os.Open(fr.path)
	if err != nil {
		return &HashError{Path: fr.path, Err: classifyOpenErr(err)}
	}
	defer f.Close()

	h := xxh3.New()
	n, err := copyHashed(h, io.LimitReader(f, PartialSize), chunk, c)
	if err != nil {
		return &HashError{Path: fr.path, Err: err}
	}

	fr.PartialHash = h.Sum64()
	fr.hstate = &partialState{h: h, nread: n}
	fr.setFlag(HashPartial)
	return nil
}

// HashFull computes fr.FullHash over the entire file, extending the
// partial hasher's state if HashPartial already ran so the result is
// the same digest a single pass over the whole file would produce.
// Idempotent: a second call on a record that already has HashFull is
// a no-op.
func HashFull(fr *FileRec, chunk int, c *Canceler) error {
	if fr.HasFlag(HashFull) {
		return nil
	}

	f, err := os.Open(fr.path)
	if err != nil {
		return &HashError{Path: fr.path, Err: classifyOpenErr(err)}
	}
	defer f.Close()

	var h *xxh3.Hasher
	var skip int64

	if fr.hstate != nil {
		h = fr.hstate.h
		skip = fr.hstate.nread
	} else {
		h = xxh3.New()
	}

	if skip > 0 {
		if _, err := f.Seek(skip, io.SeekStart); err != nil {
			return &HashError{Path: fr.path, Err: err}
		}
	}

	if _, err := copyHashed(h, f, chunk, c); err != nil {
		return &HashError{Path: fr.path, Err: err}
	}

	fr.FullHash = h.Sum64()
	fr.setFlag(HashFull)
	fr.hstate = nil
	return nil
}

// copyHashed streams r into h in chunk-sized reads, polling c every
// pollEvery chunks. Returns the number of bytes written to h.
func copyHashed(h io.Writer, r io.Reader, chunk int, c *Canceler) (int64, error) {
	if chunk <= 0 {
		chunk = ChunkSize(0)
	}
	buf := make([]byte, chunk)
	var total int64
	var nchunks int

	for {
		n, err := r.Read(buf)
		if n > 0 {
			if _, werr := h.Write(buf[:n]); werr != nil {
				return total, werr
			}
			total += int64(n)
		}
		if err != nil {
			if err == io.EOF {
				return total, nil
			}
			return total, err
		}

		nchunks++
		if c != nil && nchunks%pollEvery == 0 {
			if perr := c.Poll(); perr != nil {
				return total, perr
			}
		}
	}
}

func classifyOpenErr(err error) error {
	if os.IsNotExist(err) {
		return ErrFileGone
	}
	if os.IsPermission(err) {
		return ErrAccessDenied
	}
	return ErrIO
}
