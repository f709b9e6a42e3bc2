// Package mocks provides hand-written in-memory implementations of the
// store interfaces for testing. Each mock has a working default backed by
// maps/slices plus optional function fields to override single methods.
package mocks
