package metrics

import "testing"

func TestMetricFieldKeysAreStable(t *testing.T) {
	if AttrProvider == "" || AttrKind == "" || AttrMode == "" || AttrDivision == "" || AttrOutcome == "" {
		t.Fatalf("expected metric attribute keys to be non-empty")
	}
	if KindManifest == KindSeason {
		t.Fatalf("expected distinct fetch kinds")
	}
}
