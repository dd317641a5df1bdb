// Package bluepage builds hand-off URLs for the external Blue Page
// scheduling tool. The quote payload travels compressed inside a query
// parameter; nothing is stored.
package bluepage

import (
	"bytes"
	"compress/flate"
	"encoding/base64"
	"fmt"
	"io"
	"net/url"
)

// Encode compresses the payload and base64url-encodes it for transport in
// a query string.
func Encode(payload []byte) (string, error) {
	var buf bytes.Buffer
	zw, err := flate.NewWriter(&buf, flate.BestCompression)
	if err != nil {
		return "", err
	}
	if _, err := zw.Write(payload); err != nil {
		return "", err
	}
	if err := zw.Close(); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf.Bytes()), nil
}

// Decode reverses Encode. The scheduling tool owns the real decoder; this
// one keeps the round trip testable.
func Decode(encoded string) ([]byte, error) {
	compressed, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, err
	}
	zr := flate.NewReader(bytes.NewReader(compressed))
	defer func() {
		_ = zr.Close()
	}()
	return io.ReadAll(zr)
}

// BuildURL appends the encoded payload as the data parameter on the
// scheduling-tool base URL.
func BuildURL(baseURL string, payload []byte) (string, error) {
	encoded, err := Encode(payload)
	if err != nil {
		return "", err
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("bluepage: parse base url: %w", err)
	}
	q := u.Query()
	q.Set("data", encoded)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
