/*
Package gconf implements a configuration store intended to be used as a global,
in-database configuration.

Each extension keeps its configuration as a single protobuf message stored
under the "_c:<package name>" key. The configuration is loaded from the genesis
file ("conf" section) and validated before being saved.
*/
package gconf
