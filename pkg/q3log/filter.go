package q3log

// compiledFilter holds pre-compiled filter configuration for efficient
// event filtering. It is created during watcher/parser initialization.
type compiledFilter struct {
	include map[ActionKind]struct{}
	exclude map[ActionKind]struct{}
}

// newCompiledFilter creates a new compiledFilter from include and exclude slices.
// Returns nil if both slices are empty (no filtering needed).
func newCompiledFilter(include, exclude []ActionKind) *compiledFilter {
	if len(include) == 0 && len(exclude) == 0 {
		return nil
	}

	f := &compiledFilter{}

	if len(include) > 0 {
		f.include = make(map[ActionKind]struct{}, len(include))
		for _, k := range include {
			f.include[k] = struct{}{}
		}
	}

	if len(exclude) > 0 {
		f.exclude = make(map[ActionKind]struct{}, len(exclude))
		for _, k := range exclude {
			f.exclude[k] = struct{}{}
		}
	}

	return f
}

// Allows returns true if the given action kind passes the filter.
// If include is non-empty, only kinds in include are allowed.
// Kinds in exclude are always rejected (exclude takes precedence).
func (f *compiledFilter) Allows(k ActionKind) bool {
	if f == nil {
		return true
	}

	if len(f.include) > 0 {
		if _, ok := f.include[k]; !ok {
			return false
		}
	}

	if len(f.exclude) > 0 {
		if _, ok := f.exclude[k]; ok {
			return false
		}
	}

	return true
}
