package ports

// Matcher filters symbol names against a set of substring patterns in
// a single pass (Aho-Corasick). With an automaton this is O(n + m + z)
// for n=name length, m=total pattern length, z=matches, independent of
// how many patterns are in the set.
type Matcher interface {
	// Build compiles the automaton from patterns. Replaces any prior
	// pattern set.
	Build(patterns []string)

	// Matches reports whether any pattern occurs in name. With no
	// patterns built, every name matches (an empty filter filters
	// nothing out).
	Matches(name string) bool
}
