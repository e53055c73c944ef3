package htlc

import (
	"github.com/iov-one/htlc/errors"
)

// Contract holds the immutable parameters of a single HTLC instance: the
// commitments to the secret and to both parties' identities, and the timeout
// height at which the refund branch opens. A Contract is created once and
// never mutated. A new swap requires a new Contract.
type Contract struct {
	secretHash      []byte
	claimantKeyHash []byte
	refundKeyHash   []byte
	timeout         Height
}

// NewContract commits to the given secret preimage and party identities and
// returns the contract parameters. The secret commitment is the sha256 hash
// of the preimage, identity commitments are HASH160 digests of the raw
// identity bytes. All inputs must be non-empty and the timeout height must
// not be negative.
func NewContract(secret, claimantID, refundID []byte, timeout Height) (*Contract, error) {
	if len(secret) == 0 {
		return nil, errors.Wrap(errors.ErrEmpty, "secret")
	}
	if len(claimantID) == 0 {
		return nil, errors.Wrap(errors.ErrEmpty, "claimant identity")
	}
	if len(refundID) == 0 {
		return nil, errors.Wrap(errors.ErrEmpty, "refund identity")
	}
	if err := timeout.Validate(); err != nil {
		return nil, errors.Wrap(err, "timeout")
	}
	return &Contract{
		secretHash:      HashBytes(secret),
		claimantKeyHash: KeyHash(claimantID),
		refundKeyHash:   KeyHash(refundID),
		timeout:         timeout,
	}, nil
}

// SecretHash returns the sha256 commitment of the secret preimage.
func (c *Contract) SecretHash() []byte {
	return dup(c.secretHash)
}

// ClaimantKeyHash returns the HASH160 commitment of the claimant identity.
func (c *Contract) ClaimantKeyHash() []byte {
	return dup(c.claimantKeyHash)
}

// RefundKeyHash returns the HASH160 commitment of the refunding party
// identity.
func (c *Contract) RefundKeyHash() []byte {
	return dup(c.refundKeyHash)
}

// Timeout returns the height at which the refund branch becomes eligible.
func (c *Contract) Timeout() Height {
	return c.timeout
}

// Validate ensures the contract commitments are well formed.
func (c *Contract) Validate() error {
	if len(c.secretHash) != SecretHashSize {
		return errors.Wrapf(errors.ErrInput,
			"secret hash has to be exactly %d bytes", SecretHashSize)
	}
	if len(c.claimantKeyHash) != KeyHashSize {
		return errors.Wrapf(errors.ErrInput,
			"claimant key hash has to be exactly %d bytes", KeyHashSize)
	}
	if len(c.refundKeyHash) != KeyHashSize {
		return errors.Wrapf(errors.ErrInput,
			"refund key hash has to be exactly %d bytes", KeyHashSize)
	}
	if err := c.timeout.Validate(); err != nil {
		return errors.Wrap(err, "timeout")
	}
	return nil
}

// dup returns a copy so that accessors never leak a mutable reference to the
// contract internals.
func dup(b []byte) []byte {
	if b == nil {
		return nil
	}
	cpy := make([]byte, len(b))
	copy(cpy, b)
	return cpy
}
