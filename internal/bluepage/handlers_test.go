package bluepage

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	payload := []byte(`{"name":"Ireland & Scotland Group Tour","travelerCount":14}`)
	encoded, err := Encode(payload)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if strings.ContainsAny(encoded, "+/=") {
		t.Fatalf("encoded payload is not url-safe: %q", encoded)
	}
	decoded, err := Decode(encoded)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !bytes.Equal(decoded, payload) {
		t.Fatalf("round trip mismatch: %s", decoded)
	}
}

func TestBuildURL(t *testing.T) {
	raw, err := BuildURL("https://scheduling.example.com/blue-page", []byte(`{"a":1}`))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	data := u.Query().Get("data")
	if data == "" {
		t.Fatalf("expected data parameter in %q", raw)
	}
	decoded, err := Decode(data)
	if err != nil {
		t.Fatalf("decode data param: %v", err)
	}
	if string(decoded) != `{"a":1}` {
		t.Fatalf("unexpected payload: %s", decoded)
	}
}

func TestPreviewHandler(t *testing.T) {
	handler := &Handler{BaseURL: "https://scheduling.example.com/blue-page"}
	body := []byte(`{"name":"Test Quote"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/quotes/preview-blue-page", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Preview(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !strings.HasPrefix(resp.URL, "https://scheduling.example.com/blue-page?data=") {
		t.Fatalf("unexpected url %q", resp.URL)
	}
}

func TestPreviewHandlerRejectsInvalidJSON(t *testing.T) {
	handler := &Handler{BaseURL: "https://scheduling.example.com/blue-page"}
	req := httptest.NewRequest(http.MethodPost, "/api/quotes/preview-blue-page", strings.NewReader("not json"))
	rec := httptest.NewRecorder()
	handler.Preview(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
