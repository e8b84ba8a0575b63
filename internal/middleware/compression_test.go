// bundlerelay - bundle.social API Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bundlerelay

package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func largeJSON(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"items":"` + strings.Repeat("x", 2048) + `"}`))
}

func TestCompression_WithGzipAccept(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/post", nil)
	req.Header.Set("Accept-Encoding", "br;q=1.0, gzip;q=0.8")
	rec := httptest.NewRecorder()

	Compression(http.HandlerFunc(largeJSON)).ServeHTTP(rec, req)

	if rec.Header().Get("Content-Encoding") != "gzip" {
		t.Fatalf("Content-Encoding = %q, want gzip", rec.Header().Get("Content-Encoding"))
	}

	reader, err := gzip.NewReader(rec.Body)
	if err != nil {
		t.Fatalf("Failed to create gzip reader: %v", err)
	}
	defer reader.Close()

	body, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("Failed to read decompressed data: %v", err)
	}
	if !strings.HasPrefix(string(body), `{"items":"xxx`) {
		t.Errorf("unexpected decompressed body prefix: %.20s", body)
	}
}

func TestCompression_Passthrough(t *testing.T) {
	tests := []struct {
		name    string
		method  string
		headers map[string]string
	}{
		{"no accept-encoding", http.MethodGet, nil},
		{"identity only", http.MethodGet, map[string]string{"Accept-Encoding": "identity"}},
		{"websocket upgrade", http.MethodGet, map[string]string{"Accept-Encoding": "gzip", "Upgrade": "websocket"}},
		{"head request", http.MethodHead, map[string]string{"Accept-Encoding": "gzip"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/api/v1/post", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()

			Compression(http.HandlerFunc(largeJSON)).ServeHTTP(rec, req)

			if rec.Header().Get("Content-Encoding") == "gzip" {
				t.Error("response should not be gzipped")
			}
		})
	}
}
