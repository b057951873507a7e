package colour

import (
	"fmt"
	"image"
	"math"

	"github.com/hashicorp/go-hclog"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
)

// kmeansClusters is the number of clusters formed before distinct selection.
// It is larger than MaxColours so that selection can drop near-duplicates.
const kmeansClusters = MaxColours * 2

// weightedObservation is a sample in RGB space carrying its theme weight.
type weightedObservation struct {
	point  clusters.Coordinates
	weight float64
}

func (o weightedObservation) Coordinates() clusters.Coordinates {
	return o.point
}

func (o weightedObservation) Distance(point clusters.Coordinates) float64 {
	return o.point.Distance(point)
}

// kmeansCandidates clusters the strided samples and turns each cluster into a
// bucket whose count is the summed weight of its members.
func kmeansCandidates(img image.Image, weight WeightFunc, logger hclog.Logger) ([]Bucket, error) {
	seq, err := SampleImage(img)
	if err != nil {
		return nil, err
	}

	var dataset clusters.Observations
	distinct := make(map[RGB]struct{})
	for s := range seq {
		distinct[s.RGB] = struct{}{}
		dataset = append(dataset, weightedObservation{
			point:  clusters.Coordinates{float64(s.R), float64(s.G), float64(s.B)},
			weight: weigh(weight, s.RGB, s.HSL),
		})
	}
	if len(dataset) == 0 {
		return nil, nil
	}

	// More clusters than distinct colours would leave clusters empty.
	k := min(kmeansClusters, len(distinct))
	cc, err := kmeans.New().Partition(dataset, k)
	if err != nil {
		return nil, fmt.Errorf("k-means partition failed: %w", err)
	}

	buckets := make([]Bucket, 0, len(cc))
	for _, c := range cc {
		if len(c.Observations) == 0 || len(c.Center) < 3 {
			continue
		}

		var total float64
		for _, o := range c.Observations {
			if wo, ok := o.(weightedObservation); ok {
				total += wo.weight
			}
		}

		rgb := RGB{R: toChannel(c.Center[0]), G: toChannel(c.Center[1]), B: toChannel(c.Center[2])}
		buckets = append(buckets, Bucket{Key: QuantizeKey(rgb), Count: total, RGB: rgb})
	}

	logger.Trace("clustered samples", "samples", len(dataset), "clusters", len(buckets))
	return buckets, nil
}

// toChannel rounds and clamps v to an 8-bit channel.
func toChannel(v float64) uint8 {
	return uint8(math.Max(0, math.Min(255, math.Round(v))))
}
