// Package npz reads and writes array bundles: zip archives whose entries
// are array files, one per named array.
//
// Member names are stored with the ".npy" extension. [Archive.Get]
// accepts a name with or without it and [Archive.Keys] returns names
// without it.
//
//	ar, err := npz.ReadFile("model.npz")
//	w, ok := ar.Get("weights")
//
// Loading is all-or-nothing: if any member fails to decode, [Load] returns
// a [*MemberError] naming it and no archive.
//
// The zip container itself is handled by an archive collaborator, the
// [Store] interface. The default store writes Deflate-compressed entries
// and reads both stored and deflated entries.
package npz
