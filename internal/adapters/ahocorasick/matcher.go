// Package ahocorasick provides multi-pattern symbol name matching
// using an Aho-Corasick automaton. It wraps the
// petar-dambovaliev/aho-corasick library for O(n + m + z) matching.
package ahocorasick

import (
	aho "github.com/petar-dambovaliev/aho-corasick"
)

// Matcher implements ports.Matcher. Build() compiles an automaton;
// Matches() reports whether any pattern occurs in a name.
type Matcher struct {
	automaton aho.AhoCorasick
	built     bool
}

// Build compiles the Aho-Corasick automaton from the given patterns.
// Replaces any prior pattern set. An empty set leaves the matcher
// unbuilt, in which case every name matches.
func (m *Matcher) Build(patterns []string) {
	if len(patterns) == 0 {
		m.built = false
		return
	}
	builder := aho.NewAhoCorasickBuilder(aho.Opts{
		DFA: true,
	})
	m.automaton = builder.Build(patterns)
	m.built = true
}

// Matches reports whether any pattern occurs in name.
func (m *Matcher) Matches(name string) bool {
	if !m.built {
		return true
	}
	return len(m.automaton.FindAll(name)) > 0
}
