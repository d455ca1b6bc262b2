package backfill

// NormalizeResult reports a NormalizeUsernames run.
type NormalizeResult struct {
	UpdatedCount int
}

// BackfillResult reports a BackfillCommunityFeed run. Counts include work
// done by an interrupted earlier run that this run resumed.
type BackfillResult struct {
	ProcessedCount int
	SharedCount    int
	Resumed        bool
}
