/*
Package batch provides batch transaction support
middleware to support multiple operations in one
transaction
*/
package batch
