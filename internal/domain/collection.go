package domain

// WorkerState is the stage an account worker is in. Failed and Done are
// terminal.
type WorkerState string

const (
	StateAuthenticating       WorkerState = "authenticating"
	StateEnumeratingCampaigns WorkerState = "enumerating_campaigns"
	StateCollecting           WorkerState = "collecting"
	StateSaving               WorkerState = "saving"
	StateDone                 WorkerState = "done"
	StateFailed               WorkerState = "failed"
)

// ReportOutcome records one report attempt. Err is nil and Path set for
// reports that made it to disk; a failed batch keeps its tagged error so
// the run report can say exactly what is missing.
type ReportOutcome struct {
	Kind  ReportKind
	Label string
	Path  string
	Err   error
}

// Failed reports whether the attempt produced no file.
func (o ReportOutcome) Failed() bool {
	return o.Err != nil
}

// CollectionResult is the terminal outcome of one account worker.
type CollectionResult struct {
	AccountID int64
	ClientID  string
	State     WorkerState
	// Err is set when the worker ended in StateFailed.
	Err       error
	Campaigns int
	Reports   []ReportOutcome
}

// SavedReports counts the reports that reached disk.
func (r *CollectionResult) SavedReports() int {
	n := 0
	for _, o := range r.Reports {
		if !o.Failed() {
			n++
		}
	}
	return n
}

// FailedReports counts the report attempts that produced nothing.
func (r *CollectionResult) FailedReports() int {
	return len(r.Reports) - r.SavedReports()
}
