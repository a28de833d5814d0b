package pagination

import "testing"

func TestNormalizeLimit(t *testing.T) {
	if got := NormalizeLimit(0); got != DefaultLimit {
		t.Fatalf("expected default limit, got %d", got)
	}
	if got := NormalizeLimit(-5); got != DefaultLimit {
		t.Fatalf("expected default limit for negative input, got %d", got)
	}
	if got := NormalizeLimit(25); got != 25 {
		t.Fatalf("expected 25, got %d", got)
	}
	if got := NormalizeLimit(MaxLimit + 1); got != MaxLimit {
		t.Fatalf("expected cap at %d, got %d", MaxLimit, got)
	}
}

func TestNormalize(t *testing.T) {
	p := Normalize(Params{Skip: -1, Limit: 1000})
	if p.Skip != 0 {
		t.Fatalf("expected skip 0, got %d", p.Skip)
	}
	if p.Limit != MaxLimit {
		t.Fatalf("expected limit %d, got %d", MaxLimit, p.Limit)
	}
}
