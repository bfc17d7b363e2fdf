package index

import "sort"

// Origin tags where a file came from. Framework files are eligible for
// path-convention fallback naming and sort ahead of application files in
// bootstrap decisions; application files never are.
type Origin string

const (
	OriginFramework   Origin = "framework"
	OriginApplication Origin = "application"
)

// Entry is one binding in the FileIndex.
type Entry struct {
	Path   string
	Origin Origin
}

// FileIndex maps qualified class names to their defining file. Bindings
// are first-wins: a later file claiming an existing name is a conflict
// recorded by the indexer, never a replacement.
type FileIndex struct {
	entries map[string]Entry
}

// NewFileIndex returns an empty index.
func NewFileIndex() *FileIndex {
	return &FileIndex{entries: make(map[string]Entry)}
}

// Lookup returns the binding for name.
func (x *FileIndex) Lookup(name string) (Entry, bool) {
	e, ok := x.entries[name]
	return e, ok
}

// Add binds name to entry, reporting false when the name is already bound
// to a different path. First binding wins.
func (x *FileIndex) Add(name string, e Entry) bool {
	if existing, ok := x.entries[name]; ok {
		return existing.Path == e.Path
	}
	x.entries[name] = e
	return true
}

// Len returns the number of bindings.
func (x *FileIndex) Len() int {
	return len(x.entries)
}

// Names returns all bound names in sorted order. Sorting keeps wildcard
// expansion and logging deterministic across runs.
func (x *FileIndex) Names() []string {
	names := make([]string, 0, len(x.entries))
	for name := range x.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
