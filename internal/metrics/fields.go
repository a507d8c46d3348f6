package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrProvider = "provider"
	AttrKind     = "kind"
	AttrMode     = "mode"
	AttrDivision = "division"
	AttrOutcome  = "outcome"
)

// Fetch kinds recorded with AttrKind.
const (
	KindManifest = "manifest"
	KindSeason   = "season"
)
