package amlchecker

import (
	"errors"

	"github.com/mlproof/aml-checker/internal/aml-checker/config"
	"github.com/mlproof/aml-checker/internal/aml-checker/pattern"
	"github.com/mlproof/aml-checker/internal/aml-checker/vm"
)

// Verify checks a proof against a set of claims under the default
// configuration. It returns true, nil only if every claim the Claims
// buffer raised was discharged by the Proof buffer.
func Verify(buffers Buffers) (bool, error) {
	return VerifyWithConfig(buffers, config.DefaultConfig())
}

// VerifyWithConfig checks a proof the same way Verify does, under a
// caller-supplied resource configuration. A nil cfg is equivalent to
// config.DefaultConfig().
func VerifyWithConfig(buffers Buffers, cfg *config.Config) (bool, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return false, &VerifierError{
			Code:    ErrInvalidConfig,
			Message: "invalid configuration",
			Cause:   err,
		}
	}

	limits := vm.Limits{
		MaxStackDepth:    cfg.MaxStackDepth,
		MaxMemoryEntries: cfg.MaxMemoryEntries,
	}

	err := vm.Execute(buffers.Gamma, buffers.Claims, buffers.Proof, limits, cfg.MaxBufferBytes)
	if err == nil {
		return true, nil
	}

	return false, &VerifierError{
		Code:        classify(err),
		Message:     "proof verification failed: " + err.Error(),
		Cause:       err,
		Fingerprint: vm.Fingerprint(cfg.HashFunction, buffers.Proof),
	}
}

// classify maps a kernel error to the public classification a caller can
// act on without depending on internal/aml-checker/vm's sentinels.
func classify(err error) ErrorCode {
	var constraintErr *pattern.ConstraintError
	switch {
	case errors.Is(err, vm.ErrDecodeUnknownOpcode),
		errors.Is(err, vm.ErrDecodeTruncatedOperand),
		errors.Is(err, vm.ErrDecodeIdListOverrun),
		errors.Is(err, vm.ErrUnimplementedOpcode):
		return ErrDecode

	case errors.Is(err, vm.ErrStackOverflow),
		errors.Is(err, vm.ErrMemoryOverflow),
		errors.Is(err, vm.ErrBufferTooLarge):
		return ErrResourceLimit

	case errors.Is(err, vm.ErrStackUnderflow),
		errors.Is(err, vm.ErrStackWrongTag),
		errors.Is(err, vm.ErrMemoryOutOfRange),
		errors.Is(err, vm.ErrIllFormedMetaVar),
		errors.Is(err, vm.ErrIllFormedMu),
		errors.Is(err, vm.ErrConcreteSubst),
		errors.Is(err, vm.ErrInferenceMismatch),
		errors.Is(err, vm.ErrJournalMismatch),
		errors.Is(err, vm.ErrJournalNotExhausted),
		errors.As(err, &constraintErr):
		return ErrVerification

	default:
		return ErrInternal
	}
}
