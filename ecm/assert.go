package ecm

// ASSERT aborts via panic when cond is false, formatting msg/args the way
// fmt.Sprintf would. It is a contract-violation surface, not a policy one:
// reserve it for states that mean the collaborator broke an invariant the
// rest of the package depends on (double unique ownership, reading a
// Required component whose set does not exist, conflicting tags), never for
// recoverable input like a
// zero entity id or a NoStack overflow — those log a warning and return.
//
// Its behavior is split across two build-tag-gated files: assert_dev.go
// (default) logs before panicking; assert_release.go (tag "release") skips
// the log and panics directly. Both builds abort.
func ASSERT(cond bool, format string, args ...any) {
	assertImpl(cond, format, args...)
}
