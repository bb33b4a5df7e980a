// Package amlchecker is the public API for verifying matching logic
// proofs encoded as the gamma/claims/proof bytecode triple.
//
// # Quick Start
//
// Verifying a proof against a set of claims, with default resource
// limits:
//
//	ok, err := amlchecker.Verify(amlchecker.Buffers{
//		Gamma:  gammaBytes,
//		Claims: claimsBytes,
//		Proof:  proofBytes,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	if ok {
//		fmt.Println("proof verified")
//	}
//
// A custom configuration (buffer size caps, stack/memory limits, the
// diagnostic hash function) can be supplied with VerifyWithConfig:
//
//	cfg := config.DefaultConfig().WithMaxStackDepth(256)
//	ok, err := amlchecker.VerifyWithConfig(buffers, cfg)
//
// # Architecture
//
// - pkg/aml-checker/: public API (this package)
// - internal/aml-checker/pattern/: the pattern algebra and its predicates
// - internal/aml-checker/vm/: the stack/memory/journal bytecode kernel
// - internal/aml-checker/config/: ambient resource-limit configuration
//
// Only this package can be imported from outside this module. The config
// package sits under internal/, so only code inside this module can build a
// custom *config.Config; a caller outside it passes nil to
// VerifyWithConfig to get the defaults.
package amlchecker
