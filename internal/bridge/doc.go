// Package bridge re-exports a fixed subset of libgit2's repository-inspection
// functions under stable git2_shim_* symbol names so that foreign callers can
// link against the shim without reproducing libgit2's header surface.
//
// Every exported function is a single forwarding call: status codes, borrowed
// pointers, and crash conditions are identical to calling libgit2 directly.
// The package adds no error taxonomy, no retries, and no logging.
//
// Ownership follows libgit2's contract verbatim. Every handle produced by a
// create-style operation (OpenRepository, NewStatusList, RepositoryHead) is
// owned by the caller and must be released through its matching free
// operation exactly once; a freed handle must never be used again. Borrowed
// strings (Workdir, Shorthand) stay owned by the handle they were read from
// and are valid only while that handle is alive. The bridge enforces none of
// this: the contract is inherited transparently from libgit2.
//
// Library init and shutdown are process-wide. Callers must serialize them
// relative to all other bridge calls: Init once before first use, Shutdown
// once after every handle has been freed.
package bridge
