package colour

import (
	"fmt"
	"image"

	"github.com/EdlinOrg/prominentcolor"
	"github.com/cenkalti/dominantcolor"
	"github.com/hashicorp/go-hclog"
)

const (
	// dominantCandidatesCount is how many colours dominant detection proposes.
	dominantCandidatesCount = MaxColours * 3

	// prominentResize is the working size prominentcolor shrinks the surface to.
	prominentResize uint = 80
)

// dominantCandidates proposes dominant colours of the sampling surface, scaling
// each detected weight by the theme weight of the colour.
func dominantCandidates(img image.Image, weight WeightFunc, logger hclog.Logger) ([]Bucket, error) {
	surface, err := Surface(img)
	if err != nil {
		return nil, err
	}

	found := dominantcolor.FindWeight(surface, dominantCandidatesCount)
	buckets := make([]Bucket, 0, len(found))
	for _, c := range found {
		rgb := RGB{R: c.RGBA.R, G: c.RGBA.G, B: c.RGBA.B}
		buckets = append(buckets, Bucket{
			Key:   QuantizeKey(rgb),
			Count: c.Weight * weigh(weight, rgb, rgb.HSL()),
			RGB:   rgb,
		})
	}

	logger.Trace("detected dominant colours", "candidates", len(buckets))
	return buckets, nil
}

// prominentCandidates proposes k-means centroids from prominentcolor, weighting
// each by its pixel count and the theme weight of the colour.
func prominentCandidates(img image.Image, weight WeightFunc, logger hclog.Logger) ([]Bucket, error) {
	surface, err := Surface(img)
	if err != nil {
		return nil, err
	}

	items, err := prominentcolor.KmeansWithAll(MaxColours, surface, prominentcolor.ArgumentNoCropping,
		prominentResize, []prominentcolor.ColorBackgroundMask{})
	if err != nil {
		return nil, fmt.Errorf("prominent colour detection failed: %w", err)
	}

	buckets := make([]Bucket, 0, len(items))
	for _, item := range items {
		rgb := RGB{R: uint8(item.Color.R), G: uint8(item.Color.G), B: uint8(item.Color.B)}
		buckets = append(buckets, Bucket{
			Key:   QuantizeKey(rgb),
			Count: float64(item.Cnt) * weigh(weight, rgb, rgb.HSL()),
			RGB:   rgb,
		})
	}

	logger.Trace("detected prominent colours", "candidates", len(buckets))
	return buckets, nil
}
