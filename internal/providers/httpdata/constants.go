package httpdata

import "time"

const (
	providerName       = "http"
	defaultHTTPTimeout = 10 * time.Second
	// Season files are a few hundred bytes; anything near this limit is not a season file.
	maxBodyBytes = 1 << 20
)
