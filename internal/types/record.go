package types

// FileEntry is a file discovered by a directory scan.
type FileEntry struct {
	Name string // Base name including extension
	Path string // Full path
	Ext  string // Extension including the leading dot, case preserved
	Size int64  // Size in bytes, 0 when unknown
}

// FileRecord is the per-file outcome of a run. It is built once and never mutated.
type FileRecord struct {
	OriginalName string
	NewName      string
	NeedsRename  bool
	Size         int64
}

// Failure pairs a record with the rename error it produced.
type Failure struct {
	Record FileRecord
	Err    error
}

// Result holds everything a run produced.
type Result struct {
	Dir            string
	Found          int
	Renamed        int
	All            []FileRecord
	RenamedRecords []FileRecord
	Failures       []Failure
	DryRun         bool
}

// Pending returns the records that need a rename but were not renamed
// (dry-run plans and failures).
func (r *Result) Pending() []FileRecord {
	if r == nil {
		return nil
	}
	done := make(map[string]bool, len(r.RenamedRecords))
	for _, rec := range r.RenamedRecords {
		done[rec.OriginalName] = true
	}
	var pending []FileRecord
	for _, rec := range r.All {
		if rec.NeedsRename && !done[rec.OriginalName] {
			pending = append(pending, rec)
		}
	}
	return pending
}

// EventType identifies a per-file notice emitted during a run.
type EventType string

const (
	EventRename EventType = "rename"
	EventSkip   EventType = "skip"
	EventPlan   EventType = "plan"
	EventFail   EventType = "fail"
)

// Event is a per-file notice emitted during a run.
type Event struct {
	Type    EventType
	Message string
	Record  FileRecord
	Err     error
}
