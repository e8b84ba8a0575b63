// bundlerelay - bundle.social API Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bundlerelay

package upstream

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"
)

var quoteEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// streamUploadForm encodes file as a multipart form without buffering it.
// The encoder goroutine exits once the form is written or the returned
// reader is closed.
func streamUploadForm(file *UploadFile) (io.ReadCloser, string) {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		pw.CloseWithError(writeUploadForm(mw, file))
	}()

	return pr, mw.FormDataContentType()
}

func writeUploadForm(mw *multipart.Writer, file *UploadFile) error {
	if err := mw.WriteField("teamId", file.TeamID); err != nil {
		return fmt.Errorf("write teamId field: %w", err)
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="file"; filename="%s"`, quoteEscaper.Replace(file.FileName)))
	header.Set("Content-Type", file.ContentType)

	part, err := mw.CreatePart(header)
	if err != nil {
		return fmt.Errorf("create file part: %w", err)
	}
	if _, err := io.Copy(part, file.Body); err != nil {
		return fmt.Errorf("copy file: %w", err)
	}
	return mw.Close()
}
