/*
Package crypto provides the ed25519 keys and signatures used to authorize
vault operations.

A public key is represented on chain by its condition
("sigs/ed25519/<key bytes>") and the address derived from it.
*/
package crypto
