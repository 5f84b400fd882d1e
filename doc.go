/*
Package linera defines the interfaces shared by every vault extension: the
key value storage, operation context, messages, transactions, handlers and
decorators. It also contains the primitive types used across the state such
as Address, Condition and Timestamp.

All state of the vault lives in a single KVStore. Every operation is executed
against a cache wrap of that store and is either written completely or
discarded, which makes each operation an atomic transaction. Extensions that
live under x/ never keep state outside of the store.
*/
package linera
