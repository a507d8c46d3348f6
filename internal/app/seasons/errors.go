package seasons

import (
	"errors"
	"fmt"
)

// ManifestError reports a manifest that could not be fetched or parsed. No seasons are returned with it.
type ManifestError struct {
	Path string
	Err  error
}

func (e *ManifestError) Error() string {
	return fmt.Sprintf("load manifest %s: %v", e.Path, e.Err)
}

func (e *ManifestError) Unwrap() error { return e.Err }

// SeasonLoadError reports a season file that could not be fetched or parsed.
// It aborts a strict load; lenient loads record it as a skip instead.
type SeasonLoadError struct {
	File string
	Path string
	Err  error
}

func (e *SeasonLoadError) Error() string {
	return fmt.Sprintf("load season %s: %v", e.Path, e.Err)
}

func (e *SeasonLoadError) Unwrap() error { return e.Err }

// AsManifestError attempts to unwrap an error into a ManifestError.
func AsManifestError(err error) (*ManifestError, bool) {
	var target *ManifestError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}

// AsSeasonLoadError attempts to unwrap an error into a SeasonLoadError.
func AsSeasonLoadError(err error) (*SeasonLoadError, bool) {
	var target *SeasonLoadError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}
