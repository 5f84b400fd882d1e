/*
Package sigs provides basic authentication middleware to verify the signatures
on the transaction, and maintain sequences for replay protection.

It also provides the building blocks of the aggregated signature path: the
canonical message encoding, the stateless verifier and the signature nonce,
which is checked for exact equality and advanced only after a successful
signature authorized operation.
*/
package sigs
