/*
Package vesting implements the entitlement core: per recipient vesting
tranches, the claim engine, burn redemption, expiry reclamation, and the
administrative surface that governs them.

A tranche releases linearly between its cliff and its duration and is
forfeited past its expiry. Claims move value from the pool account to the
recipient on the cash ledger. Every precondition failure leaves state
untouched; atomicity comes from the savepoint decorator above the router.
*/
package vesting
