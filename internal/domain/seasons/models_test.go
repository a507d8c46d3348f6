package seasons

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestRecordDecodesNonObjectDivisionsAsEmpty(t *testing.T) {
	raw := `{"season":{"startYear":2021},"winners":{"boys":"oops","girls":null}}`
	var rec Record
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Season.StartYear != 2021 {
		t.Fatalf("expected start year 2021, got %d", rec.Season.StartYear)
	}
	if rec.Winners.Boys != (Division{}) || rec.Winners.Girls != (Division{}) {
		t.Fatalf("expected empty divisions, got %+v", rec.Winners)
	}
}

func TestRecordWithoutWinners(t *testing.T) {
	var rec Record
	if err := json.Unmarshal([]byte(`{"season":{"startYear":2020,"label":"2019-20"}}`), &rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Winners.Division(Boys) != (Division{}) {
		t.Fatalf("expected empty boys division")
	}
}

func TestRecordRejectsInvalidStartYear(t *testing.T) {
	var rec Record
	if err := json.Unmarshal([]byte(`{"season":{"startYear":"soon"}}`), &rec); err == nil {
		t.Fatal("expected error for non-numeric start year")
	}
}

func TestDisplayLabelFallbacks(t *testing.T) {
	end := 2024
	cases := []struct {
		info Info
		want string
	}{
		{Info{StartYear: 2023, EndYear: &end, Label: " 2023-24 "}, "2023-24"},
		{Info{StartYear: 2023, EndYear: &end}, "2024"},
		{Info{StartYear: 2023}, "2023"},
	}
	for _, tc := range cases {
		if got := tc.info.DisplayLabel(); got != tc.want {
			t.Fatalf("expected %q, got %q", tc.want, got)
		}
	}
}

func TestEventAndDivisionTitles(t *testing.T) {
	if EventSAChamps.Title() != "SA Champs" || EventBoatrace.Title() != "Boatrace" {
		t.Fatal("unexpected event titles")
	}
	if Girls.Title() != "Girls" || Boys.Title() != "Boys" {
		t.Fatal("unexpected division titles")
	}
}

func TestRecordRejectsNonRecords(t *testing.T) {
	cases := map[string]string{
		"null":           `null`,
		"empty object":   `{}`,
		"array":          `[]`,
		"string":         `"2024"`,
		"season not obj": `{"season":2024}`,
		"null season":    `{"season":null}`,
		"missing year":   `{"season":{"label":"2023-24"}}`,
		"null year":      `{"season":{"startYear":null}}`,
		"winners only":   `{"winners":{"boys":{"boatrace":"Acme"}}}`,
	}
	for name, raw := range cases {
		var rec Record
		err := json.Unmarshal([]byte(raw), &rec)
		if !errors.Is(err, ErrInvalidRecord) {
			t.Fatalf("%s: expected ErrInvalidRecord, got %v", name, err)
		}
	}
}

func TestRecordKeepsSeasonFields(t *testing.T) {
	var rec Record
	raw := `{"season":{"startYear":2023,"endYear":2024,"label":"2023-24"},"winners":{"girls":{"sachamps":"Acme"}}}`
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Season.StartYear != 2023 || rec.Season.EndYear == nil || *rec.Season.EndYear != 2024 || rec.Season.Label != "2023-24" {
		t.Fatalf("unexpected season %+v", rec.Season)
	}
	if rec.Winners.Girls.SAChamps != Name("Acme") {
		t.Fatalf("unexpected winners %+v", rec.Winners)
	}
}
