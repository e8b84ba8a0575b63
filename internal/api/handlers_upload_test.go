// bundlerelay - bundle.social API Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bundlerelay

package api

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/tomtom215/bundlerelay/internal/upstream"
)

// pngHeader is enough of a PNG file for content sniffing.
var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

type formFile struct {
	name        string
	contentType string
	data        []byte
}

// multipartRequest builds a multipart upload. fields are written before the
// file unless fileFirst is set.
func multipartRequest(t *testing.T, target string, fields map[string]string, file *formFile, fileFirst bool) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	writeFile := func() {
		if file == nil {
			return
		}
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="file"; filename="`+file.name+`"`)
		if file.contentType != "" {
			h.Set("Content-Type", file.contentType)
		}
		part, err := mw.CreatePart(h)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := part.Write(file.data); err != nil {
			t.Fatal(err)
		}
	}
	writeFields := func() {
		for k, v := range fields {
			if err := mw.WriteField(k, v); err != nil {
				t.Fatal(err)
			}
		}
	}

	if fileFirst {
		writeFile()
		writeFields()
	} else {
		writeFields()
		writeFile()
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func (s *testServer) serve(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

// =====================================================
// Multipart upload
// =====================================================

func TestCreateUpload_StreamsFile(t *testing.T) {
	s := newTestServer(t)
	file := &formFile{name: "clip.mp4", contentType: "video/mp4", data: []byte("not really a video")}

	rec := s.serve(multipartRequest(t, "/api/v1/upload/create", map[string]string{"teamId": "T1"}, file, true))
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	got := s.onlyCall(t, upstream.OpCreateUpload).Arg(0).(*upstream.UploadFile)
	if got.TeamID != "T1" || got.FileName != "clip.mp4" || got.ContentType != "video/mp4" {
		t.Errorf("upload = %+v", got)
	}
	uploaded := s.mock.Uploaded()
	if len(uploaded) != 1 || string(uploaded[0]) != "not really a video" {
		t.Errorf("uploaded = %q", uploaded)
	}
}

func TestCreateUpload_SniffsContentType(t *testing.T) {
	for _, declared := range []string{"", "application/octet-stream"} {
		t.Run("declared="+declared, func(t *testing.T) {
			s := newTestServer(t)
			file := &formFile{name: "image", contentType: declared, data: pngHeader}

			rec := s.serve(multipartRequest(t, "/api/v1/upload/create", map[string]string{"teamId": "T1"}, file, false))
			if rec.Code != http.StatusCreated {
				t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
			}
			got := s.onlyCall(t, upstream.OpCreateUpload).Arg(0).(*upstream.UploadFile)
			if got.ContentType != "image/png" {
				t.Errorf("content type = %q, want image/png", got.ContentType)
			}
			// The sniffed bytes must still reach upstream.
			if uploaded := s.mock.Uploaded(); len(uploaded) != 1 || !bytes.Equal(uploaded[0], pngHeader) {
				t.Errorf("uploaded = %q, want the PNG header", uploaded)
			}
		})
	}
}

func TestCreateUpload_Errors(t *testing.T) {
	small := &formFile{name: "a.png", contentType: "image/png", data: pngHeader}

	tests := []struct {
		name   string
		req    func(t *testing.T) *http.Request
		status int
		code   string
		msg    string
	}{
		{
			name: "team required before file",
			req: func(t *testing.T) *http.Request {
				return multipartRequest(t, "/api/v1/upload/create", nil, nil, false)
			},
			status: http.StatusBadRequest, code: ErrCodeBadRequest, msg: "teamId is required",
		},
		{
			name: "file required",
			req: func(t *testing.T) *http.Request {
				return multipartRequest(t, "/api/v1/upload/create", map[string]string{"teamId": "T1"}, nil, false)
			},
			status: http.StatusBadRequest, code: ErrCodeBadRequest, msg: "file is required",
		},
		{
			name: "not multipart",
			req: func(t *testing.T) *http.Request {
				r := httptest.NewRequest(http.MethodPost, "/api/v1/upload/create", bytes.NewReader([]byte(`{"teamId":"T1"}`)))
				r.Header.Set("Content-Type", "application/json")
				return r
			},
			status: http.StatusBadRequest, code: ErrCodeBadRequest, msg: "teamId is required",
		},
		{
			name: "file too large",
			req: func(t *testing.T) *http.Request {
				big := &formFile{name: "big.png", contentType: "image/png", data: bytes.Repeat([]byte{1}, 1<<20+1)}
				return multipartRequest(t, "/api/v1/upload/create", map[string]string{"teamId": "T1"}, big, false)
			},
			status: http.StatusRequestEntityTooLarge, code: ErrCodePayloadTooLarge,
		},
		{
			name: "instagram route shares checks",
			req: func(t *testing.T) *http.Request {
				return multipartRequest(t, "/api/instagram/uploads/simple", map[string]string{"teamId": " "}, small, false)
			},
			status: http.StatusBadRequest, code: ErrCodeBadRequest, msg: "teamId is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			rec := s.serve(tt.req(t))
			assertError(t, rec, tt.status, tt.code, tt.msg)
			s.assertNoUpstreamCalls(t)
		})
	}
}

// =====================================================
// Large uploads and listing
// =====================================================

func TestInitLargeUpload(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/v1/upload/init", `{"fileName":" v.mp4 ","mimeType":"VIDEO/MP4"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	req := s.onlyCall(t, upstream.OpInitLargeUpload).Arg(0).(*upstream.InitUploadRequest)
	want := upstream.InitUploadRequest{FileName: "v.mp4", MimeType: "video/mp4"}
	if *req != want {
		t.Errorf("request = %+v, want %+v", *req, want)
	}
}

func TestInitLargeUpload_RejectsUnknownMime(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/v1/upload/init", `{"fileName":"v.gif","mimeType":"image/gif"}`)
	assertError(t, rec, http.StatusBadRequest, ErrCodeBadRequest, "")
	s.assertNoUpstreamCalls(t)
}

func TestFinalizeLargeUpload_RequiresPath(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/v1/upload/finalize", `{"teamId":"T1"}`)
	assertError(t, rec, http.StatusBadRequest, ErrCodeBadRequest, "path is required")
	s.assertNoUpstreamCalls(t)
}

func TestListUploads_DropsUnknownFilters(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/api/v1/upload?teamId=T1&status=used&type=gif", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	p := s.onlyCall(t, upstream.OpListUploads).Arg(0).(upstream.ListUploadsParams)
	if p.TeamID != "T1" || p.Status != "USED" || p.Type != "" {
		t.Errorf("params = %+v", p)
	}
}
