package providers

import (
	"errors"
	"strings"
	"testing"
)

func TestDecodeJSON(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		wantErr error
		ok      bool
	}{
		{name: "single value", body: `{"a":1}`, ok: true},
		{name: "trailing whitespace", body: "{\"a\":1}\n\t ", ok: true},
		{name: "trailing text", body: `{"a":1} not json`, wantErr: ErrTrailingData},
		{name: "trailing braces", body: `{"a":1}}}garbage`, wantErr: ErrTrailingData},
		{name: "second value", body: `{"a":1}{"a":2}`, wantErr: ErrTrailingData},
		{name: "truncated", body: `{"a":`},
		{name: "empty", body: ``},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			var dest map[string]int
			err := DecodeJSON(strings.NewReader(tc.body), &dest)
			if tc.ok {
				if err != nil || dest["a"] != 1 {
					t.Fatalf("expected decoded value, got %v err=%v", dest, err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error")
			}
			if tc.wantErr != nil && !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}
