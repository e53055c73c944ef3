/*

Package htlc models the spending conditions of a Hashed Time-Lock Contract
as used in cross-chain atomic swaps.

An HTLC locks funds behind a script with two branches. The claimant (say
Alice) can spend by revealing the secret preimage whose sha256 hash was
committed at contract creation, at any block height. The counterparty (Bob)
can instead reclaim the funds through the refund branch, but only once the
timeout height is reached.

The flow is as follows:
1. Alice generates a secret preimage and computes its sha256 hash.
2. A Contract is created committing to that hash, to the HASH160 of both
parties' identities and to a timeout height.
3. Before the funds are swept back, Alice can claim by presenting the
preimage together with her identity.
4. From the timeout height on, Bob can claim a refund by presenting his
identity. The refund branch never inspects the secret.

Both branches are evaluated independently. At or past the timeout a correct
claim and a correct refund are each authorized on their own; which one
actually executes is decided by whichever spend confirms first on the ledger,
not by this package.

The package performs no signature verification and holds no lifecycle state.
Evaluations are pure functions producing a Verdict that reports every
sub-check individually, so a failed attempt explains itself.

*/
package htlc
