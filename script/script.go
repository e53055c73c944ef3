package script

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/iov-one/htlc"
)

// Opcode names as rendered in the locking script.
const (
	OpIf                  = "OP_IF"
	OpElse                = "OP_ELSE"
	OpEndIf               = "OP_ENDIF"
	OpSha256              = "OP_SHA256"
	OpDup                 = "OP_DUP"
	OpHash160             = "OP_HASH160"
	OpEqualVerify         = "OP_EQUALVERIFY"
	OpCheckSig            = "OP_CHECKSIG"
	OpCheckLockTimeVerify = "OP_CHECKLOCKTIMEVERIFY"
	OpDrop                = "OP_DROP"
)

// Lock renders the locking script of the contract. The first branch is the
// claim path guarded by the secret commitment and the claimant key hash, the
// second branch is the refund path guarded by the timeout and the refund key
// hash.
func Lock(c *htlc.Contract) string {
	var b strings.Builder

	line := func(depth int, op, comment string) {
		fmt.Fprintf(&b, "%s%-28s # %s\n", strings.Repeat("    ", depth), op, comment)
	}

	line(0, OpIf, "claim branch, selected by witness 1")
	line(1, OpSha256, "hash the revealed secret")
	line(1, push(hex.EncodeToString(c.SecretHash())), "secret commitment")
	line(1, OpEqualVerify, "secret must match")
	line(1, OpDup, "")
	line(1, OpHash160, "hash the claimant key")
	line(1, push(hex.EncodeToString(c.ClaimantKeyHash())), "claimant key commitment")
	line(1, OpEqualVerify, "claimant key must match")
	line(1, OpCheckSig, "claimant signature")
	line(0, OpElse, "refund branch, selected by witness 0")
	line(1, push(c.Timeout().String()), "timeout height")
	line(1, OpCheckLockTimeVerify, "spendable at or past the timeout")
	line(1, OpDrop, "")
	line(1, OpDup, "")
	line(1, OpHash160, "hash the refund key")
	line(1, push(hex.EncodeToString(c.RefundKeyHash())), "refund key commitment")
	line(1, OpEqualVerify, "refund key must match")
	line(1, OpCheckSig, "refund signature")
	line(0, OpEndIf, "")

	return b.String()
}

// ClaimWitness renders the unlocking script of the claim branch: signature,
// public key, the revealed secret and the branch selector.
func ClaimWitness(sig, pubkey, secret []byte) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", push(hex.EncodeToString(sig)))
	fmt.Fprintf(&b, "%s\n", push(hex.EncodeToString(pubkey)))
	fmt.Fprintf(&b, "%s\n", push(hex.EncodeToString(secret)))
	fmt.Fprintf(&b, "1\n")
	return b.String()
}

// RefundWitness renders the unlocking script of the refund branch:
// signature, public key and the branch selector.
func RefundWitness(sig, pubkey []byte) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", push(hex.EncodeToString(sig)))
	fmt.Fprintf(&b, "%s\n", push(hex.EncodeToString(pubkey)))
	fmt.Fprintf(&b, "0\n")
	return b.String()
}

func push(data string) string {
	return "<" + data + ">"
}
