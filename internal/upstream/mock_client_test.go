// bundlerelay - bundle.social API Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bundlerelay

package upstream

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestMockClient_RecordsCalls(t *testing.T) {
	m := NewMockClient()
	ctx := context.Background()

	raw, err := m.GetComment(ctx, "C1")
	if err != nil {
		t.Fatalf("GetComment() error = %v", err)
	}
	if string(raw) != `{"operation":"GetComment"}` {
		t.Errorf("default response = %s", raw)
	}

	_, _ = m.ListPosts(ctx, ListPostsParams{TeamID: "T1"})

	calls := m.Calls()
	if len(calls) != 2 {
		t.Fatalf("Calls() = %d, want 2", len(calls))
	}
	if calls[0].Operation != OpGetComment || calls[0].Arg(0) != "C1" {
		t.Errorf("first call = %+v", calls[0])
	}
	params, ok := calls[1].Arg(0).(ListPostsParams)
	if !ok || params.TeamID != "T1" {
		t.Errorf("second call arg = %#v", calls[1].Arg(0))
	}
	if calls[1].Arg(5) != nil {
		t.Error("Arg out of range should be nil")
	}
}

func TestMockClient_ErrorsStillRecord(t *testing.T) {
	m := NewMockClient()
	boom := errors.New("boom")
	m.SetError(OpGetTeam, boom)

	if _, err := m.GetTeam(context.Background(), "T1"); !errors.Is(err, boom) {
		t.Fatalf("GetTeam() error = %v, want boom", err)
	}
	if len(m.CallsTo(OpGetTeam)) != 1 {
		t.Error("failed call was not recorded")
	}

	m.Reset()
	if len(m.Calls()) != 0 {
		t.Error("Reset did not clear calls")
	}
	if _, err := m.GetTeam(context.Background(), "T1"); err != nil {
		t.Errorf("Reset did not clear errors: %v", err)
	}
}

func TestMockClient_CreateUploadDrainsBody(t *testing.T) {
	m := NewMockClient()
	_, err := m.CreateUpload(context.Background(), &UploadFile{
		TeamID: "T1", FileName: "a.png", ContentType: "image/png", Body: strings.NewReader("data"),
	})
	if err != nil {
		t.Fatalf("CreateUpload() error = %v", err)
	}
	uploaded := m.Uploaded()
	if len(uploaded) != 1 || string(uploaded[0]) != "data" {
		t.Errorf("Uploaded() = %q", uploaded)
	}
}
