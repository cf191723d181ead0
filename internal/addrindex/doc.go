// Package addrindex is an in-memory search index over subscriber addresses.
//
// An Index is built from a snapshot of the subscriber list and is immutable
// afterwards, so a single Index can be shared by concurrent readers. It
// provides autocomplete suggestions for the address field (city, district,
// street), suggestions for the house field scoped to an address, and the
// final filter that combines an address query with a house query which may
// be a numeric range such as "5-10".
package addrindex
