/*
Package timelock delays privileged parameter changes.

A change is proposed with a value and a delay, then applied in a second
step once the delay has passed. Both steps are restricted to a single
authority. At most one change is pending per parameter; a new proposal
overwrites the old one. Values are validated against a per-parameter
rule before they reach live configuration.
*/
package timelock
