package vm

import "errors"

// Sentinel errors for the kernel's fatal conditions. Every one of them is
// terminal: there is no recovery path once raised, only propagation up to
// the caller with %w wrapping for context, mirroring the reference
// checker's "panic on any violation" discipline translated into Go's
// explicit-error idiom.
var (
	ErrDecodeUnknownOpcode       = errors.New("unknown opcode")
	ErrDecodeTruncatedOperand    = errors.New("truncated operand")
	ErrDecodeIdListOverrun       = errors.New("id list overran buffer")
	ErrStackUnderflow            = errors.New("insufficient stack items")
	ErrStackWrongTag             = errors.New("stack entry has the wrong tag")
	ErrMemoryOutOfRange          = errors.New("memory index out of range")
	ErrStackOverflow             = errors.New("stack depth limit exceeded")
	ErrMemoryOverflow            = errors.New("memory entry limit exceeded")
	ErrBufferTooLarge            = errors.New("input buffer exceeds the configured size limit")
	ErrIllFormedMetaVar          = errors.New("constructed meta-variable is ill-formed")
	ErrIllFormedMu               = errors.New("constructed mu-pattern is ill-formed")
	ErrConcreteSubst             = errors.New("cannot apply a substitution to a concrete pattern")
	ErrInferenceMismatch         = errors.New("inference rule premises do not match")
	ErrJournalMismatch           = errors.New("insufficient claims in the journal")
	ErrJournalNotExhausted       = errors.New("claims remain undischarged at end of proof")
	ErrUnimplementedOpcode       = errors.New("opcode is recognized but deliberately unimplemented")
)
