/*
Package gconf provides a lightweight configuration singleton store.

Each package keeps at most one configuration object, stored under a
reserved key derived from the package name. Configuration is initialized
from genesis and afterwards mutated only through handlers that own the
authorization for it.
*/
package gconf
