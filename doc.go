// Package checksumcache tracks file changes through content fingerprints
// and lets callers skip redundant work when a file has not changed since
// the last check.
//
// A Cache owns a persisted store mapping canonical file paths to SHA-256
// digests. HasChanged is a consuming check: on a changed observation the
// store is updated and persisted before the method returns, so calling it
// twice in a row on an unmodified file reports true then false.
//
// Every blocking method has a Context twin with identical semantics;
// cancellation points sit around file I/O only.
package checksumcache
