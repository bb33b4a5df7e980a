package vm

import (
	"fmt"

	"github.com/mlproof/aml-checker/internal/aml-checker/pattern"
)

// reader walks one phase's byte buffer one byte at a time. It has no
// notion of instruction boundaries on its own: each opcode handler pulls
// exactly as many bytes as its own encoding defines, the same way the
// reference checker drives everything off a single next-byte closure.
type reader struct {
	buf []byte
	pos int
}

func newReader(buf []byte) *reader {
	return &reader{buf: buf}
}

// next returns the next byte and true, or 0 and false at end of buffer.
func (r *reader) next() (byte, bool) {
	if r.pos >= len(r.buf) {
		return 0, false
	}
	b := r.buf[r.pos]
	r.pos++
	return b, true
}

// byteOrErr reads one byte, wrapping end-of-buffer as a named error for
// whichever field the caller was trying to decode.
func (r *reader) byteOrErr(what string) (byte, error) {
	b, ok := r.next()
	if !ok {
		return 0, fmt.Errorf("%w: expected %s, ran out of input", ErrDecodeTruncatedOperand, what)
	}
	return b, nil
}

// idList reads a length-prefixed list of identifiers: one length byte
// followed by that many id bytes.
func (r *reader) idList(what string) (pattern.IdList, error) {
	n, err := r.byteOrErr(what + " length")
	if err != nil {
		return nil, err
	}
	out := make(pattern.IdList, 0, n)
	for i := 0; i < int(n); i++ {
		id, err := r.byteOrErr(what)
		if err != nil {
			return nil, fmt.Errorf("%w: %s entry %d of %d", ErrDecodeIdListOverrun, what, i, n)
		}
		out = append(out, id)
	}
	return out, nil
}
