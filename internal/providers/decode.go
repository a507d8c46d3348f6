package providers

import (
	"encoding/json"
	"errors"
	"io"
)

// ErrTrailingData reports bytes after the first JSON value in a body.
var ErrTrailingData = errors.New("unexpected data after JSON value")

// DecodeJSON decodes exactly one JSON value from r into dest. Anything but
// whitespace after that value is an error, as in json.Unmarshal.
func DecodeJSON(r io.Reader, dest any) error {
	dec := json.NewDecoder(r)
	if err := dec.Decode(dest); err != nil {
		return err
	}
	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return ErrTrailingData
	}
	return nil
}
