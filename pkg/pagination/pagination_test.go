package pagination

import "testing"

func TestNormalizeDefaults(t *testing.T) {
	got := Normalize(Params{}, 20)
	if got.Offset != 0 {
		t.Fatalf("expected offset 0, got %d", got.Offset)
	}
	if got.Limit != 20 {
		t.Fatalf("expected default limit 20, got %d", got.Limit)
	}
}

func TestNormalizeNegativeOffset(t *testing.T) {
	got := Normalize(Params{Offset: -5, Limit: 10}, 20)
	if got.Offset != 0 {
		t.Fatalf("expected offset reset to 0, got %d", got.Offset)
	}
	if got.Limit != 10 {
		t.Fatalf("expected limit 10, got %d", got.Limit)
	}
}

func TestNormalizeClampsLimit(t *testing.T) {
	got := Normalize(Params{Limit: MaxLimit + 1}, 20)
	if got.Limit != MaxLimit {
		t.Fatalf("expected limit clamped to %d, got %d", MaxLimit, got.Limit)
	}
}

func TestNormalizeNegativeLimitUsesDefault(t *testing.T) {
	got := Normalize(Params{Limit: -1}, 20)
	if got.Limit != 20 {
		t.Fatalf("expected default limit 20, got %d", got.Limit)
	}
}

func TestNormalizePreservesValidValues(t *testing.T) {
	got := Normalize(Params{Offset: 40, Limit: 50}, 20)
	if got.Offset != 40 || got.Limit != 50 {
		t.Fatalf("unexpected params %+v", got)
	}
}
