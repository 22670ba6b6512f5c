package cutscene

import "time"

// DirectorOption configures a Director.
type DirectorOption func(*directorImpl)

// WithModules sets the tengo standard library modules a script may import.
// The default is every module except "os".
//
// Parameters:
//   - names: module names, e.g. "math", "fmt", "text"
//
// Returns:
//   - DirectorOption: option function
func WithModules(names ...string) DirectorOption {
	return func(d *directorImpl) {
		d.modules = names
	}
}

// WithMaxAllocs caps the objects a single run may allocate. Negative means unlimited.
//
// Parameters:
//   - n: allocation limit
//
// Returns:
//   - DirectorOption: option function
func WithMaxAllocs(n int64) DirectorOption {
	return func(d *directorImpl) {
		d.maxAllocs = n
	}
}

// WithRunTimeout aborts a single script run that takes longer than timeout. Zero disables the limit.
//
// Parameters:
//   - timeout: per-run limit
//
// Returns:
//   - DirectorOption: option function
func WithRunTimeout(timeout time.Duration) DirectorOption {
	return func(d *directorImpl) {
		d.timeout = timeout
	}
}
