package vm

import "github.com/mlproof/aml-checker/internal/aml-checker/pattern"

// Tag discriminates whether a Term carries a constructed Pattern awaiting
// further use, or a Pattern that has been proved as a theorem.
type Tag uint8

const (
	// TagPattern marks an unproved, merely-constructed pattern.
	TagPattern Tag = iota
	// TagProved marks a pattern established as a theorem.
	TagProved
)

// Term is the stack's element type: a pattern together with the claim
// being made about it. Entry is the memory's element type; the two are the
// same shape, so Entry is an alias rather than a distinct type.
type Term struct {
	Tag     Tag
	Pattern *pattern.Pattern
}

// Entry is the same shape as Term.
type Entry = Term
