/*

Package errors implements custom error interfaces for the engine.

The idea is to reuse as many errors from this package as possible and define
custom package errors when absolutely necessary. Errors are registered with
a unique code so that clients can match on the failure class without parsing
strings. Extensions register their own codes in their own errors.go file,
using a range that does not collide with any other package.

*/
package errors
