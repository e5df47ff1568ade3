/*
Package cash implements the fungible ledger the entitlement service moves
value on.

Balances are whole units of the single system asset, stored per address.
The package exposes a controller API only; all mutation happens through
handlers of other packages that own the authorization story.
*/
package cash
