package metrics

const namespaceCollator = "collator"

// Reasons a collation round ended without a candidate.
const (
	SkipReasonInherentData     = "inherent_data"
	SkipReasonAuthoringFailed  = "authoring_failed"
	SkipReasonEngineDeclined   = "engine_declined"
	SkipReasonDuplicateAttempt = "duplicate_relay_parent"
)
