/*

Package vested defines the interfaces used throughout the application:
storage, transactions, handlers, decorators and context accessors. The
extensions under x/ build the entitlement accounting engine on top of these
building blocks, and app/ wires them together into a runnable service.

*/

package vested
