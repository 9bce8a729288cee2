package types

type SyncStatus string

const (
	SyncStatusUpdated  SyncStatus = "updated"
	SyncStatusInserted SyncStatus = "inserted"
	SyncStatusSkipped  SyncStatus = "skipped"
	SyncStatusFailed   SyncStatus = "failed"
)

type SyncReport struct {
	Package         string     `yaml:"package"`
	Group           string     `yaml:"group,omitempty"`
	Path            string     `yaml:"path,omitempty"`
	Status          SyncStatus `yaml:"status"`
	Reason          string     `yaml:"reason,omitempty"`
	Kind            ErrorKind  `yaml:"kind,omitempty"`
	PreviousVersion string     `yaml:"previous_version,omitempty"`
	Version         string     `yaml:"version,omitempty"`
	Changed         bool       `yaml:"changed"`
	Suggestions     []string   `yaml:"suggestions,omitempty"`
}

type PrimedPackage struct {
	Name       string            `yaml:"name"`
	Params     PackageParameters `yaml:"params"`
	Expression PackageExpression `yaml:"expression"`
}

type BulkReport struct {
	Policy  FailurePolicy `yaml:"policy"`
	Primed  int           `yaml:"primed"`
	Reports []SyncReport  `yaml:"reports"`
}

// Count returns the number of reports with the given status.
func (r BulkReport) Count(status SyncStatus) int {
	count := 0
	for _, report := range r.Reports {
		if report.Status == status {
			count++
		}
	}
	return count
}

type FailurePolicy string

const (
	FailurePolicyIsolate FailurePolicy = "isolate"
	FailurePolicyAbort   FailurePolicy = "abort"
)
