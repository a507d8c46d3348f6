package httpdata

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/preston-bernstein/triple-crown/internal/crown"
	"github.com/preston-bernstein/triple-crown/internal/providers"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func respond(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

func TestFetchManifestAndSeasonFromServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/data/seasons/index.json":
			_, _ = io.WriteString(w, `{"files":["2024.json"]}`)
		case "/data/seasons/2024.json":
			_, _ = io.WriteString(w, `{"season":{"startYear":2024,"label":"2023-24"},
				"winners":{"boys":{"boatrace":"Acme","buffalo":{"school":"acme"},"sachamps":"ACME"},
				"girls":{"boatrace":"X","buffalo":"Y","sachamps":null}}}`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL + "/data/seasons/"})

	m, err := client.FetchManifest(context.Background())
	if err != nil {
		t.Fatalf("expected manifest, got %v", err)
	}
	if len(m.Files) != 1 || m.Files[0] != "2024.json" {
		t.Fatalf("unexpected manifest %+v", m)
	}

	rec, err := client.FetchSeason(context.Background(), "2024.json")
	if err != nil {
		t.Fatalf("expected season, got %v", err)
	}
	if rec.Season.StartYear != 2024 || crown.DisplayValue(rec.Winners.Boys.Buffalo) != "acme" {
		t.Fatalf("unexpected record %+v", rec)
	}

	if _, err := client.FetchSeason(context.Background(), "2019.json"); !errors.Is(err, providers.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestFetchSetsHeadersAndEscapesNames(t *testing.T) {
	var gotPath, gotCache string
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		gotPath = req.URL.EscapedPath()
		gotCache = req.Header.Get("Cache-Control")
		return respond(http.StatusOK, `{"season":{"startYear":2020}}`), nil
	})
	client := NewClient(Config{BaseURL: "http://example.com/seasons", HTTPClient: &http.Client{Transport: rt}})

	if _, err := client.FetchSeason(context.Background(), "2020 season.json"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/seasons/2020%20season.json" {
		t.Fatalf("expected escaped path, got %s", gotPath)
	}
	if gotCache != "no-store" {
		t.Fatalf("expected no-store cache header, got %q", gotCache)
	}
}

func TestFetchHandlesNon200(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return respond(http.StatusBadGateway, "boom"), nil
	})
	client := NewClient(Config{BaseURL: "http://example.com", HTTPClient: &http.Client{Transport: rt}})

	_, err := client.FetchManifest(context.Background())
	statusErr, ok := providers.AsStatusError(err)
	if !ok {
		t.Fatalf("expected status error, got %v", err)
	}
	if statusErr.StatusCode != http.StatusBadGateway || statusErr.Message != "boom" {
		t.Fatalf("unexpected status error %+v", statusErr)
	}
	if providers.IsPermanent(err) {
		t.Fatal("expected 502 to be retryable")
	}
}

func TestFetchHandlesDecodeError(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return respond(http.StatusOK, "{bad json"), nil
	})
	client := NewClient(Config{BaseURL: "http://example.com", HTTPClient: &http.Client{Transport: rt}})

	_, err := client.FetchSeason(context.Background(), "2024.json")
	var decodeErr *providers.DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected decode error, got %v", err)
	}
	if decodeErr.Path != "http://example.com/2024.json" {
		t.Fatalf("unexpected decode path %s", decodeErr.Path)
	}
}

func TestFetchWithoutBaseURLIsUnavailable(t *testing.T) {
	client := NewClient(Config{})
	if _, err := client.FetchManifest(context.Background()); !errors.Is(err, providers.ErrProviderUnavailable) {
		t.Fatalf("expected unavailable error, got %v", err)
	}
}

func TestFetchTransportError(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return nil, errors.New("dial tcp: refused")
	})
	client := NewClient(Config{BaseURL: "http://example.com", HTTPClient: &http.Client{Transport: rt}})
	if _, err := client.FetchManifest(context.Background()); err == nil {
		t.Fatal("expected transport error")
	}
}

func TestFetchRejectsTrailingData(t *testing.T) {
	bodies := map[string]string{
		"index.json": `{"files":[]} not json`,
		"2024.json":  `{"season":{"startYear":2024}}}}garbage`,
	}
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return respond(http.StatusOK, bodies[strings.TrimPrefix(req.URL.Path, "/")]), nil
	})
	client := NewClient(Config{BaseURL: "http://example.com", HTTPClient: &http.Client{Transport: rt}})

	var decodeErr *providers.DecodeError
	if _, err := client.FetchManifest(context.Background()); !errors.As(err, &decodeErr) || !errors.Is(err, providers.ErrTrailingData) {
		t.Fatalf("expected trailing data decode error for manifest, got %v", err)
	}
	if _, err := client.FetchSeason(context.Background(), "2024.json"); !errors.As(err, &decodeErr) || !errors.Is(err, providers.ErrTrailingData) {
		t.Fatalf("expected trailing data decode error for season, got %v", err)
	}
}

func TestFetchAcceptsAny2xx(t *testing.T) {
	for _, status := range []int{http.StatusOK, http.StatusNonAuthoritativeInfo, 299} {
		status := status
		rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			return respond(status, `{"files":["2024.json"]}`), nil
		})
		client := NewClient(Config{BaseURL: "http://example.com", HTTPClient: &http.Client{Transport: rt}})
		m, err := client.FetchManifest(context.Background())
		if err != nil || len(m.Files) != 1 {
			t.Fatalf("status %d: expected manifest, got %+v err=%v", status, m, err)
		}
	}

	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return respond(http.StatusMultipleChoices, `{"files":[]}`), nil
	})
	client := NewClient(Config{BaseURL: "http://example.com", HTTPClient: &http.Client{Transport: rt}})
	if _, err := client.FetchManifest(context.Background()); err == nil {
		t.Fatal("expected 300 to be rejected")
	}
}
