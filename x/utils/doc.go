/*
Package utils contains generic decorators that are useful in the
middleware stack of most applications: request logging, panic recovery
and transactional savepoints.
*/
package utils
