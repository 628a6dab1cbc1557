package model

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func testNow() time.Time {
	return time.UnixMilli(1700000000000)
}

func TestNormalizeRoomCode(t *testing.T) {
	if got := NormalizeRoomCode("  ab1"); got != "AB1" {
		t.Errorf("NormalizeRoomCode(\"  ab1\") = %q, want AB1", got)
	}
}

func TestValidateRoomCode(t *testing.T) {
	code, err := ValidateRoomCode("  ab1")
	if err != nil {
		t.Fatalf("ValidateRoomCode: %v", err)
	}
	if code != "AB1" {
		t.Errorf("expected AB1, got %q", code)
	}

	// Length is checked after normalization, so "ab" -> "AB" is too short.
	if _, err := ValidateRoomCode("ab"); !errors.Is(err, ErrRoomCodeTooShort) {
		t.Errorf("expected ErrRoomCodeTooShort for \"ab\", got %v", err)
	}
	if _, err := ValidateRoomCode("   a   "); !errors.Is(err, ErrRoomCodeTooShort) {
		t.Errorf("expected ErrRoomCodeTooShort for padded short code, got %v", err)
	}
}

func TestGenerateRoomCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		code, err := GenerateRoomCode()
		if err != nil {
			t.Fatalf("GenerateRoomCode: %v", err)
		}
		if len(code) != 6 {
			t.Fatalf("expected 6-character code, got %q", code)
		}
		for _, c := range code {
			if !strings.ContainsRune(roomCodeCharset, c) {
				t.Fatalf("code %q contains %q outside charset", code, c)
			}
		}
		if code != NormalizeRoomCode(code) {
			t.Errorf("generated code %q is not normalized", code)
		}
		seen[code] = true
	}
	if len(seen) < 2 {
		t.Error("generated codes show no variety")
	}
}

func TestDemoItemsInvariants(t *testing.T) {
	items := DemoItems(testNow())
	if len(items) != 6 {
		t.Fatalf("expected 6 demo items, got %d", len(items))
	}
	ids := make(map[int64]bool)
	for _, item := range items {
		if len(item.History) == 0 {
			t.Errorf("item %q has empty history", item.Name)
			continue
		}
		head := item.History[0]
		if head.Location != item.Location || head.Timestamp != item.UpdatedAt {
			t.Errorf("item %q: history head %v does not mirror location/updatedAt", item.Name, head)
		}
		for i := 1; i < len(item.History); i++ {
			if item.History[i].Timestamp > item.History[i-1].Timestamp {
				t.Errorf("item %q: history not newest-first at entry %d", item.Name, i)
			}
		}
		if ids[item.ID] {
			t.Errorf("duplicate demo item id %d", item.ID)
		}
		ids[item.ID] = true
	}
}
