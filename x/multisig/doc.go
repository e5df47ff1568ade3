/*
Package multisig gates privileged operations behind a quorum of
independent signers.

A contract fixes an owner set and a threshold at creation time and is
immutable afterwards. Any party may present an operation hash together
with enough owner signatures; the gate verifies the quorum, consumes the
hash so it can never authorize twice, and grants the contract condition
to the transaction context. What the hash authorizes is decided by the
handler down the stack, not by this package.
*/
package multisig
