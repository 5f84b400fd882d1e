/*
Package orm provides an easy to use db wrapper.

State is broken into prefixed sections called buckets. Each bucket contains
only one type of model, stored under "<bucket name>:<key>" and serialized
with the protobuf encoding. Sequences provide monotonically increasing,
big endian encoded keys so that iterating a bucket follows creation order.
*/
package orm
