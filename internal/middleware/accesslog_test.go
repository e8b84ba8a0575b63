// bundlerelay - bundle.social API Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bundlerelay

package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/bundlerelay/internal/logging"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	previous := logging.Logger()
	logging.SetLogger(zerolog.New(&buf).Level(zerolog.DebugLevel))
	t.Cleanup(func() { logging.SetLogger(previous) })
	return &buf
}

func TestAccessLog_Levels(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		status    int
		sleep     time.Duration
		threshold time.Duration
		wantLevel string
	}{
		{"ok request", "/api/v1/team/T1", http.StatusOK, 0, time.Second, `"level":"info"`},
		{"server error", "/api/v1/team/T1", http.StatusBadGateway, 0, time.Second, `"level":"error"`},
		{"health check", "/api/health", http.StatusOK, 0, time.Second, `"level":"debug"`},
		{"slow request", "/api/v1/post", http.StatusOK, 20 * time.Millisecond, time.Millisecond, `"level":"warn"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLogs(t)
			handler := RequestID(AccessLog(tt.threshold)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				time.Sleep(tt.sleep)
				w.WriteHeader(tt.status)
			})))

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			out := buf.String()
			if !strings.Contains(out, tt.wantLevel) {
				t.Errorf("log %q missing %s", out, tt.wantLevel)
			}
			if !strings.Contains(out, `"request_id":"`+rec.Header().Get(RequestIDHeader)+`"`) {
				t.Errorf("log %q missing request_id", out)
			}
		})
	}
}

func TestStatusWriter_FirstStatusWins(t *testing.T) {
	rec := httptest.NewRecorder()
	sw := newStatusWriter(rec)
	sw.WriteHeader(http.StatusCreated)
	sw.WriteHeader(http.StatusInternalServerError)
	n, _ := sw.Write([]byte("abc"))

	if sw.statusCode != http.StatusCreated || rec.Code != http.StatusCreated {
		t.Errorf("status = %d/%d, want 201", sw.statusCode, rec.Code)
	}
	if n != 3 || sw.bytes != 3 {
		t.Errorf("bytes = %d, want 3", sw.bytes)
	}
}

func TestStatusWriter_HijackUnsupported(t *testing.T) {
	sw := newStatusWriter(httptest.NewRecorder())
	if _, _, err := sw.Hijack(); err == nil {
		t.Error("expected error hijacking a recorder")
	}
}
