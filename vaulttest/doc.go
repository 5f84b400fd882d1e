// Package vaulttest provides mocks and helpers used when testing extensions.
package vaulttest
