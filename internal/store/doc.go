// Package store provides abstractions for data persistence.
//
// The interfaces in this package are implemented by the postgres platform
// package and by in-memory fakes for tests. Services and handlers depend on
// these interfaces, never on a concrete database.
package store
