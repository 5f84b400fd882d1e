/*
Package multisig implements a vault whose funds and membership are governed by
a fixed set of owners with an M of N approval requirement.

Two authorization paths exist. An owner submits a proposal which the other
owners confirm until the threshold is reached, after which any owner executes
it once the optional time delay passed and before it expires. Alternatively,
an aggregated signature made with the vault aggregate key over the canonical
message of an operation authorizes that operation immediately.

Every operation is atomic: it either applies all its changes or none.
*/
package multisig
