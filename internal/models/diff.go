package models

// RequiredChange lists the create-time required fields that changed on one
// component schema
type RequiredChange struct {
	Schema  string   `json:"schema"`
	Added   []string `json:"added,omitempty"`
	Removed []string `json:"removed,omitempty"`
}

// Diff is the contract difference between two snapshots
type Diff struct {
	From              string           `json:"from"`
	To                string           `json:"to"`
	AddedPaths        []string         `json:"added_paths"`
	RemovedPaths      []string         `json:"removed_paths"`
	AddedOperations   []string         `json:"added_operations"`
	RemovedOperations []string         `json:"removed_operations"`
	AddedSchemas      []string         `json:"added_schemas"`
	RemovedSchemas    []string         `json:"removed_schemas"`
	ChangedRequired   []RequiredChange `json:"changed_required"`
}

// Breaking reports whether clients of From may fail against To
func (d *Diff) Breaking() bool {
	if len(d.RemovedPaths) > 0 || len(d.RemovedOperations) > 0 || len(d.RemovedSchemas) > 0 {
		return true
	}
	for _, c := range d.ChangedRequired {
		if len(c.Added) > 0 {
			return true
		}
	}
	return false
}

// Empty reports whether the two snapshots document the same contract
func (d *Diff) Empty() bool {
	return len(d.AddedPaths) == 0 && len(d.RemovedPaths) == 0 &&
		len(d.AddedOperations) == 0 && len(d.RemovedOperations) == 0 &&
		len(d.AddedSchemas) == 0 && len(d.RemovedSchemas) == 0 &&
		len(d.ChangedRequired) == 0
}
