// Package store keeps finished runs in an embedded BadgerDB.
//
// Each Snapshot is gob-encoded, zstd-compressed and stored under
// "snap/<uuid>". The same encoding is used by WriteFile/ReadFile for
// standalone .gob.zst exports.
//
// Open a persistent store with DefaultConfig plus a Path, or a throwaway one
// with InMemoryConfig. Persistent stores run value-log GC in the background
// until Close.
package store
