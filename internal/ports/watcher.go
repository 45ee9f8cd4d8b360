package ports

// Watcher monitors a single database file for rewrites. The adapter
// (fsnotify) must debounce rapid events (cscope writes the file in
// several chunks and may replace it by rename) and keep watching
// across replacement. Only one Watch call should be active at a time.
type Watcher interface {
	// Watch starts monitoring path. onChange fires once per settled
	// rewrite of the file and may be invoked from any goroutine.
	// Returns an error if the containing directory does not exist.
	Watch(path string, onChange func()) error

	// Stop ends monitoring and releases all resources. After Stop
	// returns, no further onChange calls will fire. Safe to call
	// multiple times.
	Stop() error
}
