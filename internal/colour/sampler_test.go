package colour

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestSurfaceDownscale(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantW, wantH  int
	}{
		{name: "small image unchanged", width: 120, height: 80, wantW: 120, wantH: 80},
		{name: "exactly max width", width: MaxSampleWidth, height: 10, wantW: MaxSampleWidth, wantH: 10},
		{name: "wide image halved", width: 800, height: 600, wantW: 400, wantH: 300},
		{name: "height truncates", width: 1600, height: 10, wantW: 400, wantH: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			surface, err := Surface(newSolid(tt.width, tt.height, nrgba(10, 20, 30)))
			if err != nil {
				t.Fatalf("Surface() error: %v", err)
			}
			b := surface.Bounds()
			if b.Dx() != tt.wantW || b.Dy() != tt.wantH {
				t.Errorf("surface = %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestSurfaceUnavailable(t *testing.T) {
	tests := []struct {
		name string
		img  image.Image
	}{
		{name: "nil image", img: nil},
		{name: "empty image", img: image.NewNRGBA(image.Rect(0, 0, 0, 0))},
		{name: "scales to zero height", img: newSolid(1000, 1, nrgba(1, 2, 3))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Surface(tt.img)
			if !errors.Is(err, ErrCanvasUnavailable) {
				t.Errorf("Surface() error = %v, want ErrCanvasUnavailable", err)
			}
		})
	}
}

func TestSampleImageStride(t *testing.T) {
	img := newSolid(10, 10, nrgba(200, 100, 50))

	seq, err := SampleImage(img)
	if err != nil {
		t.Fatalf("SampleImage() error: %v", err)
	}

	count := 0
	for s := range seq {
		count++
		if s.RGB != (RGB{R: 200, G: 100, B: 50}) || s.A != 255 {
			t.Errorf("unexpected sample %+v", s)
		}
		if s.HSL != s.RGB.HSL() {
			t.Errorf("sample HSL %+v does not match RGB", s.HSL)
		}
	}

	if want := 100 / SampleStride; count != want {
		t.Errorf("sampled %d pixels, want %d", count, want)
	}
}

func TestSampleImageRasterOrder(t *testing.T) {
	// Width 7: sampled pixel indices 0, 10, 20 land on (0,0), (3,1), (6,2).
	img := image.NewNRGBA(image.Rect(0, 0, 7, 3))
	img.SetNRGBA(0, 0, nrgba(1, 0, 0))
	img.SetNRGBA(3, 1, nrgba(2, 0, 0))
	img.SetNRGBA(6, 2, nrgba(3, 0, 0))

	seq, err := SampleImage(img)
	if err != nil {
		t.Fatalf("SampleImage() error: %v", err)
	}

	// Unset pixels are transparent and skipped.
	var got []uint8
	for s := range seq {
		got = append(got, s.R)
	}
	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Errorf("sampled reds = %v, want [1 2 3]", got)
	}
}

func TestSampleImageAlphaFilter(t *testing.T) {
	tests := []struct {
		name  string
		alpha uint8
		want  int
	}{
		{name: "fully transparent", alpha: 0, want: 0},
		{name: "just below threshold", alpha: AlphaThreshold - 1, want: 0},
		{name: "at threshold", alpha: AlphaThreshold, want: 10},
		{name: "opaque", alpha: 255, want: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := newSolid(10, 10, color.NRGBA{R: 255, A: tt.alpha})
			seq, err := SampleImage(img)
			if err != nil {
				t.Fatalf("SampleImage() error: %v", err)
			}
			count := 0
			for range seq {
				count++
			}
			if count != tt.want {
				t.Errorf("sampled %d pixels, want %d", count, tt.want)
			}
		})
	}
}

func TestSampleImageEarlyStop(t *testing.T) {
	seq, err := SampleImage(newSolid(50, 50, nrgba(9, 9, 9)))
	if err != nil {
		t.Fatalf("SampleImage() error: %v", err)
	}
	count := 0
	for range seq {
		count++
		if count == 3 {
			break
		}
	}
	if count != 3 {
		t.Errorf("expected to stop after 3 samples, got %d", count)
	}
}
