/*

Package script renders human readable representations of an HTLC. It is a
presentation layer on top of the htlc package: the locking script with its
two conditional branches, the witness scripts that select a branch, and a
step-by-step narration of an evaluation verdict.

Output of this package is diagnostic text, not a consensus-serialized
script. Signature verification opcodes are rendered but their semantics are
outside this module.

*/
package script
