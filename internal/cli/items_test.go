package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"wheresmy/internal/model"
)

func TestFindItem(t *testing.T) {
	items := []model.Item{
		{ID: 42, Name: "Keys", Location: "Hook"},
		{ID: 7, Name: "Water bottle", Location: "Car"},
	}

	if item, ok := findItem(items, "keys"); !ok || item.ID != 42 {
		t.Errorf("findItem(keys) = %+v, %v, expected the Keys item", item, ok)
	}
	if item, ok := findItem(items, "  Water Bottle "); !ok || item.ID != 7 {
		t.Errorf("findItem trimmed name = %+v, %v, expected the Water bottle item", item, ok)
	}
	if item, ok := findItem(items, "7"); !ok || item.Name != "Water bottle" {
		t.Errorf("findItem(7) = %+v, %v, expected lookup by id", item, ok)
	}
	if _, ok := findItem(items, "Wallet"); ok {
		t.Error("expected no match for an untracked name")
	}
	if _, ok := findItem(items, "99"); ok {
		t.Error("expected no match for an unknown id")
	}
}

func TestRenderItemsEmptyStates(t *testing.T) {
	var buf bytes.Buffer
	renderItems(&buf, nil, "", time.Now())
	if !strings.Contains(buf.String(), "nothing tracked yet") {
		t.Errorf("expected empty-state hint, got %q", buf.String())
	}

	buf.Reset()
	renderItems(&buf, nil, "wallet", time.Now())
	if !strings.Contains(buf.String(), "nothing matches") {
		t.Errorf("expected filter empty-state, got %q", buf.String())
	}
}

func TestRenderHistoryMarksCurrentLocation(t *testing.T) {
	now := time.Now()
	item := model.Item{
		ID: 1, Name: "Keys", Icon: "🔑", Location: "Hook",
		UpdatedAt: now.UnixMilli(),
		History: []model.HistoryEntry{
			{Location: "Hook", Timestamp: now.UnixMilli()},
			{Location: "Counter", Timestamp: now.Add(-time.Hour).UnixMilli()},
		},
	}

	var buf bytes.Buffer
	renderHistory(&buf, item, now)
	out := buf.String()
	if !strings.Contains(out, "Hook") || !strings.Contains(out, "Counter") {
		t.Errorf("expected both locations in output, got %q", out)
	}
	if !strings.Contains(out, "●") {
		t.Errorf("expected the current location marker, got %q", out)
	}
}
