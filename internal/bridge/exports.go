package bridge

/*
#include "libgit2.h"
*/
import "C"

// The git2_shim_* functions are the stable C symbol surface. Each body is a
// single forwarding call into libgit2; building cmd/libgit2shim with
// -buildmode=c-shared or c-archive places these symbols in the artifact.

//export git2_shim_init
func git2_shim_init() C.int {
	return C.git_libgit2_init()
}

//export git2_shim_shutdown
func git2_shim_shutdown() C.int {
	return C.git_libgit2_shutdown()
}

//export git2_shim_repository_open
func git2_shim_repository_open(out **C.git_repository, path *C.char) C.int {
	return C.git_repository_open(out, path)
}

//export git2_shim_repository_free
func git2_shim_repository_free(repo *C.git_repository) {
	C.git_repository_free(repo)
}

//export git2_shim_repository_is_bare
func git2_shim_repository_is_bare(repo *C.git_repository) C.int {
	return C.git_repository_is_bare(repo)
}

//export git2_shim_repository_workdir
func git2_shim_repository_workdir(repo *C.git_repository) *C.char {
	return C.git_repository_workdir(repo)
}

//export git2_shim_status_options_init
func git2_shim_status_options_init(opts *C.git_status_options, version C.uint) C.int {
	return C.git_status_options_init(opts, version)
}

//export git2_shim_status_list_new
func git2_shim_status_list_new(out **C.git_status_list, repo *C.git_repository, opts *C.git_status_options) C.int {
	return C.git_status_list_new(out, repo, opts)
}

//export git2_shim_status_list_free
func git2_shim_status_list_free(list *C.git_status_list) {
	C.git_status_list_free(list)
}

//export git2_shim_status_list_entrycount
func git2_shim_status_list_entrycount(list *C.git_status_list) C.size_t {
	return C.git_status_list_entrycount(list)
}

//export git2_shim_repository_head
func git2_shim_repository_head(out **C.git_reference, repo *C.git_repository) C.int {
	return C.git_repository_head(out, repo)
}

//export git2_shim_reference_free
func git2_shim_reference_free(reference *C.git_reference) {
	C.git_reference_free(reference)
}

//export git2_shim_reference_shorthand
func git2_shim_reference_shorthand(reference *C.git_reference) *C.char {
	return C.git_reference_shorthand(reference)
}

//export git2_shim_graph_ahead_behind
func git2_shim_graph_ahead_behind(ahead *C.size_t, behind *C.size_t, repo *C.git_repository, local *C.git_oid, upstream *C.git_oid) C.int {
	return C.git_graph_ahead_behind(ahead, behind, repo, local, upstream)
}
