package htlc

import (
	"bytes"
	"encoding/hex"
)

// Names of the sub-checks reported in a Verdict.
const (
	CheckSecretHash  = "secret hash"
	CheckClaimantKey = "claimant key hash"
	CheckRefundKey   = "refund key hash"
	CheckTimeout     = "timeout"
)

// Check is the outcome of a single sub-check of an evaluation. Want and Got
// carry hex encoded commitments (or decimal heights for the timeout check)
// so that a failed attempt can be audited without re-running it.
type Check struct {
	Name string
	Pass bool
	Want string
	Got  string
}

// Verdict is the outcome of evaluating one spending attempt. Every sub-check
// is reported, also the ones that passed, so the verdict is self explanatory.
type Verdict struct {
	Authorized bool
	Checks     []Check
}

// Find returns the sub-check with the given name, if present.
func (v Verdict) Find(name string) (Check, bool) {
	for _, c := range v.Checks {
		if c.Name == name {
			return c, true
		}
	}
	return Check{}, false
}

// Evaluator decides whether a spending attempt against a contract is
// authorized. It is bound to the contract it evaluates and holds no other
// state, both operations are pure and safe for concurrent use.
type Evaluator struct {
	contract *Contract
}

// NewEvaluator returns an evaluator bound to the given contract.
func NewEvaluator(c *Contract) Evaluator {
	return Evaluator{contract: c}
}

// Claim evaluates the secret-reveal branch. It is authorized when the sha256
// hash of the candidate secret matches the contract commitment and the
// HASH160 of the candidate identity matches the claimant commitment. There
// is no height restriction on this branch, a claim with the secret stays
// valid also past the timeout, until the funds are swept back.
//
// Invalid input never errors, it fails the corresponding sub-check instead.
func (e Evaluator) Claim(secret, claimantID []byte) Verdict {
	secretCheck := matchCheck(CheckSecretHash, e.contract.secretHash, HashBytes(secret))
	keyCheck := matchCheck(CheckClaimantKey, e.contract.claimantKeyHash, KeyHash(claimantID))

	return Verdict{
		Authorized: secretCheck.Pass && keyCheck.Pass,
		Checks:     []Check{secretCheck, keyCheck},
	}
}

// Refund evaluates the timeout branch. It is authorized when the current
// height reached the contract timeout (the boundary is inclusive) and the
// HASH160 of the candidate identity matches the refund commitment. The
// secret plays no role on this branch.
//
// Note that at or past the timeout both a correct Claim and a correct Refund
// are individually authorized. Resolving that race is first-spend-wins on
// the ledger and out of scope here.
func (e Evaluator) Refund(refundID []byte, current Height) Verdict {
	timeoutCheck := Check{
		Name: CheckTimeout,
		Pass: e.contract.timeout.Reached(current),
		Want: e.contract.timeout.String(),
		Got:  current.String(),
	}
	keyCheck := matchCheck(CheckRefundKey, e.contract.refundKeyHash, KeyHash(refundID))

	return Verdict{
		Authorized: timeoutCheck.Pass && keyCheck.Pass,
		Checks:     []Check{timeoutCheck, keyCheck},
	}
}

func matchCheck(name string, want, got []byte) Check {
	return Check{
		Name: name,
		Pass: bytes.Equal(want, got),
		Want: hex.EncodeToString(want),
		Got:  hex.EncodeToString(got),
	}
}
