package domain

// ScanResult is the value produced by one scan.
// Totals are derived on read and never stored.
type ScanResult struct {
	PriorityProjects []ProjectInfo `json:"priority_projects"`
	DefaultProjects  []ProjectInfo `json:"default_projects"`
	GlobalTargets    []CacheTarget `json:"global_targets"`
}

// Projects returns priority projects followed by default projects.
func (r *ScanResult) Projects() []ProjectInfo {
	out := make([]ProjectInfo, 0, len(r.PriorityProjects)+len(r.DefaultProjects))
	out = append(out, r.PriorityProjects...)
	return append(out, r.DefaultProjects...)
}

// ProjectCount returns the number of discovered projects.
func (r *ScanResult) ProjectCount() int {
	return len(r.PriorityProjects) + len(r.DefaultProjects)
}

// TargetCount returns the number of project and global targets.
func (r *ScanResult) TargetCount() int {
	n := len(r.GlobalTargets)
	for _, p := range r.Projects() {
		n += len(p.Targets)
	}
	return n
}

// TotalBytes returns the reclaimable size across all targets.
func (r *ScanResult) TotalBytes() int64 {
	var total int64
	for _, p := range r.Projects() {
		total += p.TotalBytes()
	}
	for _, t := range r.GlobalTargets {
		total += t.SizeBytes
	}
	return total
}

// CleanItems flattens the result into the executor's input, projects first.
func (r *ScanResult) CleanItems() []CleanItem {
	items := make([]CleanItem, 0, r.TargetCount())
	for _, p := range r.Projects() {
		for _, t := range p.Targets {
			items = append(items, CleanItem{Target: t, ProjectRoot: p.RootPath})
		}
	}
	for _, t := range r.GlobalTargets {
		items = append(items, CleanItem{Target: t})
	}
	return items
}
