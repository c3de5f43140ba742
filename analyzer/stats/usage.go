package stats

import "sort"

// Usage maps a library component name to its occurrence count
type Usage map[string]int

// Add increments name by count
func (u Usage) Add(name string, count int) {
	if count <= 0 {
		return
	}
	u[name] += count
}

// Merge adds every count of other into u
func (u Usage) Merge(other Usage) {
	for name, count := range other {
		u.Add(name, count)
	}
}

// Clone returns an independent copy, never nil
func (u Usage) Clone() Usage {
	result := make(Usage, len(u))
	for name, count := range u {
		result[name] = count
	}
	return result
}

// Total returns sum of all counts
func (u Usage) Total() int {
	total := 0
	for _, count := range u {
		total += count
	}
	return total
}

// Names returns component names in lexical order
func (u Usage) Names() []string {
	names := make([]string, 0, len(u))
	for name := range u {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FileIndex maps a canonical file path to the usage found in that file.
// An empty, non-nil Usage means the file was scanned and nothing was found.
type FileIndex map[string]Usage

// Record stores usage for path unless path was already recorded; it reports whether the entry was written
func (f FileIndex) Record(path string, usage Usage) bool {
	if _, ok := f[path]; ok {
		return false
	}
	f[path] = usage.Clone()
	return true
}

// Scanned reports whether path has an entry
func (f FileIndex) Scanned(path string) bool {
	_, ok := f[path]
	return ok
}

// Clone returns a deep copy
func (f FileIndex) Clone() FileIndex {
	result := make(FileIndex, len(f))
	for path, usage := range f {
		result[path] = usage.Clone()
	}
	return result
}

// Paths returns recorded paths in lexical order
func (f FileIndex) Paths() []string {
	paths := make([]string, 0, len(f))
	for path := range f {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}
