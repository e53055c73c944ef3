package htlctest

import (
	"fmt"
	"sync/atomic"

	"github.com/iov-one/htlc"
)

// cnt is a global counter to ensure all generated fixture values are unique
// within a test run.
var cnt int64

func seq() int64 {
	return atomic.AddInt64(&cnt, 1)
}

// NewSecret returns a unique secret preimage.
func NewSecret() []byte {
	return []byte(fmt.Sprintf("a-secret-preimage-%d", seq()))
}

// NewIdentity returns a unique raw party identity.
func NewIdentity() []byte {
	return []byte(fmt.Sprintf("a-party-identity-%d", seq()))
}

// Swap bundles a contract together with the raw material it was created
// from, so tests can present both correct and corrupted evidence.
type Swap struct {
	Secret     []byte
	ClaimantID []byte
	RefundID   []byte
	Timeout    htlc.Height
	Contract   *htlc.Contract
}

// NewSwap returns a contract fixture with unique secret and identities and
// the given timeout. This function panics on an invalid fixture as that is
// always a programmer error.
func NewSwap(timeout htlc.Height) *Swap {
	s := &Swap{
		Secret:     NewSecret(),
		ClaimantID: NewIdentity(),
		RefundID:   NewIdentity(),
		Timeout:    timeout,
	}
	c, err := htlc.NewContract(s.Secret, s.ClaimantID, s.RefundID, s.Timeout)
	if err != nil {
		panic(err)
	}
	s.Contract = c
	return s
}
