// Command libgit2shim is the build root for the C-linkable shim artifact.
//
// Building it with -buildmode=c-shared (or c-archive) emits a library whose
// exported symbol table is the git2_shim_* surface declared in
// internal/bridge. The main function is never executed in those build modes.
package main

import (
	_ "github.com/temirov/git2bridge/internal/bridge"
)

func main() {}
