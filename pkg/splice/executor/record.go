package executor

// InsertionRecord is the pre-mutation state of one target file. One record
// exists per path; re-inserting into the same file overwrites it, and a
// successful rollback deletes it.
type InsertionRecord struct {
	Path            string
	OriginalContent []byte
	Pattern         string
	Fragment        string
	Positions       []int
}

// Record returns the rollback record held for a path, if any.
func (e *Executor) Record(path string) (*InsertionRecord, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	rec, ok := e.records[path]
	return rec, ok
}

// Drop discards the record for a path without restoring anything.
func (e *Executor) Drop(path string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.records, path)
}

func (e *Executor) store(rec *InsertionRecord) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.records[rec.Path] = rec
}
