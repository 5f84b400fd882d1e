/*
Package cash keeps the balance of every account and implements the transfer
primitive used by the vault. Balances are expressed in the smallest indivisible
unit, so they are plain unsigned integers.
*/
package cash
