package cmd

import "strings"

// isCacheLockError returns true if the error chain contains a bbolt
// lock timeout. bbolt returns the string "timeout" when it cannot
// acquire the file lock within the configured deadline.
func isCacheLockError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "timeout")
}

// diagnoseCacheLock returns guidance when the cache open fails due to
// lock contention, typically a code-ls watch holding the store open.
func diagnoseCacheLock() string {
	return "cache is locked by another code-ls process (a running watch?)\n" +
		"  → continuing without the cache; pass --no-cache to silence this"
}
