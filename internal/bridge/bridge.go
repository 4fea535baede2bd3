package bridge

/*
#cgo LDFLAGS: -lgit2

#include <stdlib.h>
#include "libgit2.h"
*/
import "C"
import "unsafe"

// Constants mirrored from libgit2 so callers never need its headers. The
// status-options version is pinned to the struct layout declared in
// libgit2.h; a libgit2 release that bumps the version rejects the record in
// git_status_options_init instead of reading a mismatched layout.
const (
	// OIDRawSize is the byte length of a binary object identifier.
	OIDRawSize = C.GIT2BRIDGE_OID_RAWSZ

	// StatusOptionsVersion is the version tag git_status_options_init expects
	// for the layout declared in libgit2.h.
	StatusOptionsVersion uint = 1
)

// Status show values selecting which detection passes a status list runs.
const (
	StatusShowIndexAndWorkdir uint = 0
	StatusShowIndexOnly       uint = 1
	StatusShowWorkdirOnly     uint = 2
)

// Status flag bits combined into the options record's flags field.
const (
	StatusOptIncludeUntracked     uint = 1 << 0
	StatusOptIncludeIgnored       uint = 1 << 1
	StatusOptIncludeUnmodified    uint = 1 << 2
	StatusOptRecurseUntrackedDirs uint = 1 << 3
	StatusOptExcludeSubmodules    uint = 1 << 4
	StatusOptDisablePathspecMatch uint = 1 << 7
	StatusOptIncludeUnreadable    uint = 1 << 14
)

// Result codes libgit2 reports that callers of this package name in code.
// The full taxonomy stays libgit2's; zero is success, negatives are errors,
// and every code is propagated verbatim.
const (
	ErrorCodeOK           = 0
	ErrorCodeGeneric      = -1
	ErrorCodeNotFound     = -3
	ErrorCodeUnbornBranch = -9
)

// Repository is an opaque handle to a libgit2 repository object. The zero
// value is nil; a non-nil handle is owned by the caller until Free.
type Repository struct {
	ptr *C.git_repository
}

// Reference is an opaque handle to a named ref. It must not outlive the
// repository handle it was derived from.
type Reference struct {
	ptr *C.git_reference
}

// StatusList is an opaque handle to a computed working-tree status snapshot.
// It must not outlive its source repository handle.
type StatusList struct {
	ptr *C.git_status_list
}

// StatusOptions wraps libgit2's status-options record. It must be prepared
// through InitStatusOptions before use; a zero-constructed record carries no
// version tag and passing it to NewStatusList is undefined behavior.
type StatusOptions struct {
	raw C.git_status_options
}

// ObjectID is a binary object identifier. It is plain copied data with no
// ownership semantics.
type ObjectID [OIDRawSize]byte

// BorrowedString wraps a C string owned by the handle it was read from. It
// is valid only while that handle is alive and must never be freed by the
// receiver.
type BorrowedString struct {
	ptr *C.char
}

// IsNull reports whether the underlying pointer is null.
func (borrowed BorrowedString) IsNull() bool {
	return borrowed.ptr == nil
}

// String copies the borrowed bytes into a Go string. It returns the empty
// string for a null pointer.
func (borrowed BorrowedString) String() string {
	if borrowed.ptr == nil {
		return ""
	}
	return C.GoString(borrowed.ptr)
}

// Init initializes libgit2's process-wide state. It must complete
// successfully before any other operation and has a matching Shutdown.
func Init() int {
	return int(C.git_libgit2_init())
}

// Shutdown tears down libgit2's process-wide state. No handle may remain
// open when it runs.
func Shutdown() int {
	return int(C.git_libgit2_shutdown())
}

// OpenRepository opens the repository at repositoryPath. On success the
// returned handle is owned by the caller and must be released with Free; on
// failure the handle is nil and the libgit2 code is returned verbatim.
func OpenRepository(repositoryPath string) (Repository, int) {
	pathValue := C.CString(repositoryPath)
	defer C.free(unsafe.Pointer(pathValue))

	var repositoryPointer *C.git_repository
	resultCode := C.git_repository_open(&repositoryPointer, pathValue)
	return Repository{ptr: repositoryPointer}, int(resultCode)
}

// IsNil reports whether the handle holds no repository.
func (repository Repository) IsNil() bool {
	return repository.ptr == nil
}

// Free releases the repository. The handle must not be used afterwards.
func (repository Repository) Free() {
	C.git_repository_free(repository.ptr)
}

// IsBare returns libgit2's integer boolean: non-zero when the repository has
// no working directory.
func (repository Repository) IsBare() int {
	return int(C.git_repository_is_bare(repository.ptr))
}

// Workdir returns the repository's working directory as a borrowed string,
// null for a bare repository.
func (repository Repository) Workdir() BorrowedString {
	return BorrowedString{ptr: C.git_repository_workdir(repository.ptr)}
}

// Head resolves the repository's HEAD reference. A repository with no
// commits yet fails with ErrorCodeUnbornBranch. On success the reference is
// owned by the caller and must be released with Free.
func (repository Repository) Head() (Reference, int) {
	var referencePointer *C.git_reference
	resultCode := C.git_repository_head(&referencePointer, repository.ptr)
	return Reference{ptr: referencePointer}, int(resultCode)
}

// IsNil reports whether the handle holds no reference.
func (reference Reference) IsNil() bool {
	return reference.ptr == nil
}

// Free releases the reference. The handle must not be used afterwards.
func (reference Reference) Free() {
	C.git_reference_free(reference.ptr)
}

// Shorthand returns the reference's short name (for example a branch name
// without the refs/heads/ prefix) as a borrowed string.
func (reference Reference) Shorthand() BorrowedString {
	return BorrowedString{ptr: C.git_reference_shorthand(reference.ptr)}
}

// InitStatusOptions initializes the options record for the given structure
// version. It must run before the record is populated or used; libgit2
// rejects a version it does not know with a negative code.
func InitStatusOptions(options *StatusOptions, version uint) int {
	return int(C.git_status_options_init(&options.raw, C.uint(version)))
}

// SetShow selects which detection passes the status computation runs.
func (options *StatusOptions) SetShow(showValue uint) {
	options.raw.show = C.uint(showValue)
}

// SetFlags replaces the options record's flag bits.
func (options *StatusOptions) SetFlags(flagBits uint) {
	options.raw.flags = C.uint(flagBits)
}

// SetPathspec copies the given paths into a C string array and installs it
// as the options record's path filter. The allocation is owned by the
// options record and must be released with FreePathspec after the status
// list has been freed. An empty slice clears the filter.
func (options *StatusOptions) SetPathspec(paths []string) {
	options.FreePathspec()
	if len(paths) == 0 {
		return
	}

	arrayPointer := (**C.char)(C.malloc(C.size_t(len(paths)) * C.size_t(unsafe.Sizeof(uintptr(0)))))
	arraySlice := unsafe.Slice(arrayPointer, len(paths))
	for pathIndex, pathValue := range paths {
		arraySlice[pathIndex] = C.CString(pathValue)
	}

	options.raw.pathspec.strings = arrayPointer
	options.raw.pathspec.count = C.size_t(len(paths))
}

// FreePathspec releases the C strings installed by SetPathspec. It is safe
// to call on a record without a filter.
func (options *StatusOptions) FreePathspec() {
	if options.raw.pathspec.strings == nil {
		return
	}

	arraySlice := unsafe.Slice(options.raw.pathspec.strings, int(options.raw.pathspec.count))
	for _, entryPointer := range arraySlice {
		C.free(unsafe.Pointer(entryPointer))
	}
	C.free(unsafe.Pointer(options.raw.pathspec.strings))

	options.raw.pathspec.strings = nil
	options.raw.pathspec.count = 0
}

// NewStatusList computes working-tree status for the repository as of the
// call. On success the list is owned by the caller and must be released with
// Free before the options record's pathspec (if any) is freed.
func NewStatusList(repository Repository, options *StatusOptions) (StatusList, int) {
	var listPointer *C.git_status_list
	resultCode := C.git_status_list_new(&listPointer, repository.ptr, &options.raw)
	return StatusList{ptr: listPointer}, int(resultCode)
}

// IsNil reports whether the handle holds no status list.
func (statusList StatusList) IsNil() bool {
	return statusList.ptr == nil
}

// Free releases the status list. The handle must not be used afterwards.
func (statusList StatusList) Free() {
	C.git_status_list_free(statusList.ptr)
}

// EntryCount returns the number of entries in the computed status list.
func (statusList StatusList) EntryCount() uint {
	return uint(C.git_status_list_entrycount(statusList.ptr))
}

// AheadBehind counts the commits reachable from localIdentifier but not
// upstreamIdentifier and vice versa. Both counts are written only when the
// returned code is zero.
func AheadBehind(repository Repository, localIdentifier ObjectID, upstreamIdentifier ObjectID) (uint, uint, int) {
	localRaw := localIdentifier.rawOID()
	upstreamRaw := upstreamIdentifier.rawOID()

	var aheadCount C.size_t
	var behindCount C.size_t
	resultCode := C.git_graph_ahead_behind(&aheadCount, &behindCount, repository.ptr, &localRaw, &upstreamRaw)
	return uint(aheadCount), uint(behindCount), int(resultCode)
}

func (identifier ObjectID) rawOID() C.git_oid {
	var raw C.git_oid
	for byteIndex, byteValue := range identifier {
		raw.id[byteIndex] = C.uchar(byteValue)
	}
	return raw
}
