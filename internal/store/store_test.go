package store

import (
	"context"
	"testing"

	"github.com/israyx/sintrade/internal/gateway"
)

func TestStore_AppendAndReadBack(t *testing.T) {
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer s.Close()

	ctx := context.Background()
	events := []gateway.RequestEvent{
		{Purpose: "lesson", Model: "mock", LatencyMs: 120, Success: true},
		{Purpose: "quiz_pack", Model: "mock", LatencyMs: 4300, Success: false, Error: "timeout"},
	}
	for _, ev := range events {
		if err := s.AppendRequest(ctx, ev); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	records, err := s.RecentRequests(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	for _, r := range records {
		if r.ID == "" || r.CreatedAt.IsZero() {
			t.Fatalf("record missing id or timestamp: %+v", r)
		}
	}

	var failed *RequestRecord
	for i := range records {
		if !records[i].Success {
			failed = &records[i]
		}
	}
	if failed == nil || failed.Error != "timeout" {
		t.Fatalf("failed event not persisted correctly: %+v", records)
	}
}

func TestStore_RecentRespectsLimit(t *testing.T) {
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer s.Close()

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		if err := s.AppendRequest(ctx, gateway.RequestEvent{Purpose: "answer", Model: "mock", Success: true}); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	records, err := s.RecentRequests(ctx, 3)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
}
