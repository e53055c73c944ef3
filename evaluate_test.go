package htlc_test

import (
	"testing"

	"github.com/iov-one/htlc"
	"github.com/iov-one/htlc/htlctest"
	"github.com/iov-one/htlc/htlctest/assert"
)

func TestClaim(t *testing.T) {
	swap := htlctest.NewSwap(21)
	ev := htlc.NewEvaluator(swap.Contract)

	cases := map[string]struct {
		secret         []byte
		claimantID     []byte
		wantAuthorized bool
		wantFailed     []string
	}{
		"correct secret and identity": {
			secret:         swap.Secret,
			claimantID:     swap.ClaimantID,
			wantAuthorized: true,
		},
		"wrong secret": {
			secret:     []byte("wrong_secret"),
			claimantID: swap.ClaimantID,
			wantFailed: []string{htlc.CheckSecretHash},
		},
		"wrong identity": {
			secret:     swap.Secret,
			claimantID: htlctest.NewIdentity(),
			wantFailed: []string{htlc.CheckClaimantKey},
		},
		"refund identity cannot claim even with the secret": {
			secret:     swap.Secret,
			claimantID: swap.RefundID,
			wantFailed: []string{htlc.CheckClaimantKey},
		},
		"nil evidence fails both checks without erroring": {
			secret:     nil,
			claimantID: nil,
			wantFailed: []string{htlc.CheckSecretHash, htlc.CheckClaimantKey},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			v := ev.Claim(tc.secret, tc.claimantID)
			assert.Equal(t, tc.wantAuthorized, v.Authorized)
			// Both sub-checks are always reported.
			assert.Equal(t, 2, len(v.Checks))
			for _, name := range tc.wantFailed {
				c, ok := v.Find(name)
				assert.Equal(t, true, ok)
				assert.Equal(t, false, c.Pass)
			}
		})
	}
}

func TestRefundTimeoutBoundary(t *testing.T) {
	const timeout = htlc.Height(21)
	swap := htlctest.NewSwap(timeout)
	ev := htlc.NewEvaluator(swap.Contract)

	cases := map[string]struct {
		refundID       []byte
		current        htlc.Height
		wantAuthorized bool
		wantFailed     []string
	}{
		"one block before the timeout": {
			refundID:   swap.RefundID,
			current:    timeout - 1,
			wantFailed: []string{htlc.CheckTimeout},
		},
		"exactly at the timeout": {
			refundID:       swap.RefundID,
			current:        timeout,
			wantAuthorized: true,
		},
		"past the timeout": {
			refundID:       swap.RefundID,
			current:        timeout + 4,
			wantAuthorized: true,
		},
		"far past the timeout": {
			refundID:       swap.RefundID,
			current:        timeout.Add(1000000),
			wantAuthorized: true,
		},
		"claimant identity cannot refund even after the timeout": {
			refundID:   swap.ClaimantID,
			current:    timeout + 4,
			wantFailed: []string{htlc.CheckRefundKey},
		},
		"wrong identity before the timeout fails both checks": {
			refundID:   htlctest.NewIdentity(),
			current:    timeout - 1,
			wantFailed: []string{htlc.CheckTimeout, htlc.CheckRefundKey},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			v := ev.Refund(tc.refundID, tc.current)
			assert.Equal(t, tc.wantAuthorized, v.Authorized)
			assert.Equal(t, 2, len(v.Checks))
			for _, name := range tc.wantFailed {
				c, ok := v.Find(name)
				assert.Equal(t, true, ok)
				assert.Equal(t, false, c.Pass)
			}
		})
	}
}

// Both branches can be individually authorized once the timeout is reached.
// Which one wins is first-spend-wins on the ledger, not a concern of the
// evaluator.
func TestClaimAndRefundAreNotExclusive(t *testing.T) {
	swap := htlctest.NewSwap(21)
	ev := htlc.NewEvaluator(swap.Contract)

	claim := ev.Claim(swap.Secret, swap.ClaimantID)
	refund := ev.Refund(swap.RefundID, 25)

	assert.Equal(t, true, claim.Authorized)
	assert.Equal(t, true, refund.Authorized)
}

// The canonical swap scenario between Alice and Bob.
func TestAtomicSwapScenario(t *testing.T) {
	secret := []byte("super_secret_preimage_12345")
	alice := []byte("alice_public_key_xyz")
	bob := []byte("bob_public_key_abc")

	contract, err := htlc.NewContract(secret, alice, bob, 21)
	assert.Nil(t, err)
	ev := htlc.NewEvaluator(contract)

	// Alice claims with the correct secret at block 10.
	assert.Equal(t, true, ev.Claim(secret, alice).Authorized)

	// A wrong secret at block 10 is rejected and the verdict names the
	// mismatching commitment.
	v := ev.Claim([]byte("wrong_secret"), alice)
	assert.Equal(t, false, v.Authorized)
	c, ok := v.Find(htlc.CheckSecretHash)
	assert.Equal(t, true, ok)
	assert.Equal(t, false, c.Pass)

	// Bob cannot refund at block 15, the timeout is not reached.
	assert.Equal(t, false, ev.Refund(bob, 15).Authorized)

	// At block 25 the refund is open.
	assert.Equal(t, true, ev.Refund(bob, 25).Authorized)

	// And Alice can still claim with the secret at block 25.
	assert.Equal(t, true, ev.Claim(secret, alice).Authorized)
}

func TestVerdictReportsCommitments(t *testing.T) {
	swap := htlctest.NewSwap(21)
	ev := htlc.NewEvaluator(swap.Contract)

	v := ev.Claim([]byte("wrong_secret"), swap.ClaimantID)

	c, ok := v.Find(htlc.CheckSecretHash)
	assert.Equal(t, true, ok)
	if c.Want == c.Got {
		t.Fatalf("a failed check must show differing commitments, got %q", c.Got)
	}
	if len(c.Want) != 2*htlc.SecretHashSize {
		t.Fatalf("want a hex encoded commitment, got %q", c.Want)
	}
}
