package colour

import (
	"slices"
	"testing"
)

func TestSelectDistinctOrdersByWeight(t *testing.T) {
	buckets := []Bucket{
		{Count: 1, RGB: RGB{R: 255}},
		{Count: 5, RGB: RGB{G: 255}},
		{Count: 3, RGB: RGB{B: 255}},
	}

	got := SelectDistinct(buckets, MaxColours, DistinctThreshold)
	want := []RGB{{G: 255}, {B: 255}, {R: 255}}
	if !slices.Equal(got, want) {
		t.Errorf("SelectDistinct = %v, want %v", got, want)
	}
}

func TestSelectDistinctStableTies(t *testing.T) {
	buckets := []Bucket{
		{Count: 2, RGB: RGB{R: 255}},
		{Count: 2, RGB: RGB{G: 255}},
		{Count: 2, RGB: RGB{B: 255}},
	}

	got := SelectDistinct(buckets, MaxColours, DistinctThreshold)
	want := []RGB{{R: 255}, {G: 255}, {B: 255}}
	if !slices.Equal(got, want) {
		t.Errorf("SelectDistinct = %v, want input order %v", got, want)
	}
}

func TestSelectDistinctThreshold(t *testing.T) {
	buckets := []Bucket{
		{Count: 10, RGB: RGB{R: 100, G: 100, B: 100}},
		// Exactly DistinctThreshold away: rejected.
		{Count: 9, RGB: RGB{R: 140, G: 100, B: 100}},
		{Count: 8, RGB: RGB{R: 141, G: 100, B: 100}},
		{Count: 7, RGB: RGB{R: 120, G: 110, B: 100}},
	}

	got := SelectDistinct(buckets, MaxColours, DistinctThreshold)
	want := []RGB{{R: 100, G: 100, B: 100}, {R: 141, G: 100, B: 100}}
	if !slices.Equal(got, want) {
		t.Errorf("SelectDistinct = %v, want %v", got, want)
	}
}

func TestSelectDistinctLimit(t *testing.T) {
	var buckets []Bucket
	for i := range 20 {
		buckets = append(buckets, Bucket{Count: float64(20 - i), RGB: RGB{R: uint8(i * 12), G: uint8(255 - i*12), B: uint8(i * 6)}})
	}

	got := SelectDistinct(buckets, 3, 0)
	if len(got) != 3 {
		t.Fatalf("expected 3 colours, got %d", len(got))
	}
	if got[0] != buckets[0].RGB {
		t.Errorf("first colour = %v, want heaviest bucket", got[0])
	}
}

func TestSelectDistinctDoesNotMutateInput(t *testing.T) {
	buckets := []Bucket{
		{Count: 1, RGB: RGB{R: 255}},
		{Count: 5, RGB: RGB{G: 255}},
	}
	SelectDistinct(buckets, MaxColours, DistinctThreshold)
	if buckets[0].Count != 1 {
		t.Error("input slice was reordered")
	}
}

func TestSelectDistinctEmpty(t *testing.T) {
	if got := SelectDistinct(nil, MaxColours, DistinctThreshold); len(got) != 0 {
		t.Errorf("expected no colours, got %v", got)
	}
}
