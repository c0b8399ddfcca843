package domain

// ProjectInfo is a discovered project root with its existing cache targets.
type ProjectInfo struct {
	RootPath   string        `json:"root_path"`
	Targets    []CacheTarget `json:"targets"`
	IsPriority bool          `json:"is_priority"`
}

// TotalBytes returns the summed size of the project's targets.
func (p ProjectInfo) TotalBytes() int64 {
	var total int64
	for _, t := range p.Targets {
		total += t.SizeBytes
	}
	return total
}

// RootProjects holds the project roots found under one input root.
type RootProjects struct {
	Root     string
	Projects []string
}

// VisitedSet records canonical directories already inspected during one multi-root walk.
// The zero value is not usable; create it with NewVisitedSet.
type VisitedSet struct {
	seen map[string]struct{}
}

// NewVisitedSet creates an empty VisitedSet.
func NewVisitedSet() *VisitedSet {
	return &VisitedSet{seen: make(map[string]struct{})}
}

// Visit marks path as visited and reports whether it was new.
func (v *VisitedSet) Visit(path string) bool {
	if _, ok := v.seen[path]; ok {
		return false
	}
	v.seen[path] = struct{}{}
	return true
}

// Contains reports whether path was already visited.
func (v *VisitedSet) Contains(path string) bool {
	_, ok := v.seen[path]
	return ok
}

// Len returns the number of visited directories.
func (v *VisitedSet) Len() int {
	return len(v.seen)
}
