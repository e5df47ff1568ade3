/*
Package replay implements write-once consumption tracking.

A guard remembers every identifier it has seen. Marking an identifier a
second time fails deterministically, which gives redemption proofs and
multisig operation hashes their exactly-once semantics. Records are kept
forever; there is no eviction.
*/
package replay
