package colour

import "testing"

func TestQuantize(t *testing.T) {
	tests := []struct {
		in      RGB
		r, g, b int
	}{
		{in: RGB{R: 0, G: 4, B: 5}, r: 0, g: 0, b: 10},
		{in: RGB{R: 14, G: 15, B: 16}, r: 10, g: 20, b: 20},
		{in: RGB{R: 254, G: 255, B: 245}, r: 250, g: 260, b: 250},
	}

	for _, tt := range tests {
		r, g, b := Quantize(tt.in)
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("Quantize(%+v) = (%d, %d, %d), want (%d, %d, %d)", tt.in, r, g, b, tt.r, tt.g, tt.b)
		}
	}
}

func TestQuantizeKeyDistinct(t *testing.T) {
	seen := make(map[uint32][3]int)
	for v := 0; v < 256; v += 10 {
		for _, c := range []RGB{{R: uint8(v)}, {G: uint8(v)}, {B: uint8(v)}} {
			key := QuantizeKey(c)
			r, g, b := Quantize(c)
			if prev, ok := seen[key]; ok && prev != [3]int{r, g, b} {
				t.Fatalf("key collision for %v and %v", prev, [3]int{r, g, b})
			}
			seen[key] = [3]int{r, g, b}
		}
	}
}

func TestQuantizerPinsFirstColour(t *testing.T) {
	q := NewQuantizer()
	q.Add(RGB{R: 12, G: 12, B: 12}, 1)
	q.Add(RGB{R: 200}, 0.5)
	q.Add(RGB{R: 8, G: 9, B: 11}, 2)

	buckets := q.Buckets()
	if q.Len() != 2 || len(buckets) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(buckets))
	}

	first := buckets[0]
	if first.RGB != (RGB{R: 12, G: 12, B: 12}) {
		t.Errorf("representative = %+v, want first colour seen", first.RGB)
	}
	if first.Count != 3 {
		t.Errorf("count = %v, want 3", first.Count)
	}
	if buckets[1].RGB != (RGB{R: 200}) {
		t.Errorf("second bucket = %+v, want creation order", buckets[1].RGB)
	}
}

func TestQuantizerBucketsIsCopy(t *testing.T) {
	q := NewQuantizer()
	q.Add(RGB{R: 100}, 1)

	buckets := q.Buckets()
	buckets[0].Count = 99

	if q.Buckets()[0].Count != 1 {
		t.Error("Buckets() must not expose internal state")
	}
}
