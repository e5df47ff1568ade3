/*
Package sigs provides basic authentication
middleware to verify the signatures on transactions,
and maintain nonces for replay protection.

It also provides the recovery based authorization used by the
redemption and multisig paths: a signature over a domain bound
digest is mapped back to the signer identity and checked against
a whitelist or an owner set.
*/
package sigs
