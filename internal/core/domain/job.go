package domain

// Job is one entry in a replay queue: the unit to rebuild, its cached
// invocation, and the queue-internal dependencies that must complete first.
type Job struct {
	Unit UnitID

	// Spec is a private copy of the cached invocation; executors receive it
	// exactly as it was recorded.
	Spec ProcessSpec

	// Deps lists the identities of jobs earlier in the queue that this job
	// depends on. An executor may run jobs with disjoint dependencies in
	// parallel as long as each job starts only after all of its Deps
	// finished.
	Deps []UnitID
}

// JobQueue is an ordered list of jobs. The order is dependency-first:
// a job's dependencies always appear at lower indices.
type JobQueue []Job

// UnitIDs returns the queue's unit identities in queue order.
func (q JobQueue) UnitIDs() []string {
	ids := make([]string, len(q))
	for i, job := range q {
		ids[i] = job.Unit.String()
	}
	return ids
}
