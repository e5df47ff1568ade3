/*
Package vestedtest provides mocks and helpers for testing extensions.

Structures implemented here are mocks and do not provide full
functionality of the entities they mock. They allow a test to control
the behaviour of a dependency without pulling the real implementation
into scope.
*/
package vestedtest
