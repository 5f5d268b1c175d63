package constants

// JobStatus is the canonical status for rows in extraction_job.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusQueued     JobStatus = "QUEUED"     // waiting for a worker
	JobStatusRunning    JobStatus = "RUNNING"    // pipeline in progress
	JobStatusExtracted  JobStatus = "EXTRACTED"  // validated ExtractionResult persisted
	JobStatusCalculated JobStatus = "CALCULATED" // load calculation persisted
	JobStatusFailed     JobStatus = "FAILED"     // terminal failure with typed reason
)

// JobStatuses holds the allowed values for the status field in ExtractionJob.
var JobStatuses = []string{
	string(JobStatusQueued),
	string(JobStatusRunning),
	string(JobStatusExtracted),
	string(JobStatusCalculated),
	string(JobStatusFailed),
}
