package colour

import (
	"fmt"
	"image"

	"github.com/hashicorp/go-hclog"
)

// Extractor defines the interface for palette extraction.
type Extractor interface {
	// Extract extracts a palette from img, scoring samples with weight.
	// A nil weight counts every sample equally.
	Extract(img image.Image, weight WeightFunc) (*Palette, error)
}

// Algorithm represents the candidate colour source used before distinct selection.
type Algorithm string

const (
	// AlgorithmBucket quantizes strided samples into weighted buckets.
	// It is the default and the only deterministic algorithm.
	AlgorithmBucket Algorithm = "bucket"

	// AlgorithmKMeans clusters the weighted samples with k-means.
	AlgorithmKMeans Algorithm = "kmeans"

	// AlgorithmDominant uses dominant colour detection on the sampling surface.
	AlgorithmDominant Algorithm = "dominant"

	// AlgorithmProminent uses prominent colour k-means on the sampling surface.
	AlgorithmProminent Algorithm = "prominent"
)

// ValidAlgorithms returns a list of valid algorithm names.
func ValidAlgorithms() []Algorithm {
	return []Algorithm{
		AlgorithmBucket,
		AlgorithmKMeans,
		AlgorithmDominant,
		AlgorithmProminent,
	}
}

// IsValidAlgorithm checks if the given algorithm name is valid.
func IsValidAlgorithm(alg Algorithm) bool {
	for _, valid := range ValidAlgorithms() {
		if alg == valid {
			return true
		}
	}
	return false
}

// candidateFunc produces weighted candidate buckets for distinct selection.
type candidateFunc func(img image.Image, weight WeightFunc, logger hclog.Logger) ([]Bucket, error)

// Option configures an extractor.
type Option func(*extractor)

// WithLogger sets the logger used for extraction diagnostics.
func WithLogger(logger hclog.Logger) Option {
	return func(e *extractor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

type extractor struct {
	algorithm  Algorithm
	candidates candidateFunc
	logger     hclog.Logger
}

// NewExtractor creates a new Extractor based on the specified algorithm.
// Returns an error if the algorithm is not recognised.
func NewExtractor(alg Algorithm, opts ...Option) (Extractor, error) {
	e := &extractor{
		algorithm: alg,
		logger:    hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(e)
	}

	switch alg {
	case AlgorithmBucket:
		e.candidates = bucketCandidates
	case AlgorithmKMeans:
		e.candidates = kmeansCandidates
	case AlgorithmDominant:
		e.candidates = dominantCandidates
	case AlgorithmProminent:
		e.candidates = prominentCandidates
	default:
		return nil, fmt.Errorf("unknown algorithm: %s (valid algorithms: %v)", alg, ValidAlgorithms())
	}

	e.logger = e.logger.Named(string(alg))
	return e, nil
}

// Extract implements Extractor.
func (e *extractor) Extract(img image.Image, weight WeightFunc) (*Palette, error) {
	if weight == nil {
		weight = NeutralWeight
	}

	buckets, err := e.candidates(img, weight, e.logger)
	if err != nil {
		return nil, err
	}

	selected := SelectDistinct(buckets, MaxColours, DistinctThreshold)
	e.logger.Debug("selected distinct colours", "candidates", len(buckets), "selected", len(selected))

	return Assemble(selected), nil
}

// bucketCandidates quantizes every retained sample into a bucket.
func bucketCandidates(img image.Image, weight WeightFunc, logger hclog.Logger) ([]Bucket, error) {
	seq, err := SampleImage(img)
	if err != nil {
		return nil, err
	}

	q := NewQuantizer()
	sampled := 0
	for s := range seq {
		q.Add(s.RGB, weigh(weight, s.RGB, s.HSL))
		sampled++
	}

	logger.Trace("quantized samples", "samples", sampled, "buckets", q.Len())
	return q.Buckets(), nil
}

var defaultExtractor = &extractor{
	algorithm:  AlgorithmBucket,
	candidates: bucketCandidates,
	logger:     hclog.NewNullLogger(),
}

// Extract runs the default bucket pipeline over img with the given weighting.
func Extract(img image.Image, weight WeightFunc) (*Palette, error) {
	return defaultExtractor.Extract(img, weight)
}

// ExtractSunset extracts a palette weighted towards sunset tones.
func ExtractSunset(img image.Image) (*Palette, error) {
	return Extract(img, SunsetWeight)
}

// ExtractGeneral extracts a palette without any weighting bias.
func ExtractGeneral(img image.Image) (*Palette, error) {
	return Extract(img, NeutralWeight)
}

// ExtractorConfig holds configuration for palette extraction.
type ExtractorConfig struct {
	Algorithm Algorithm
	Theme     Theme
}

// DefaultExtractorConfig returns the default extractor configuration.
func DefaultExtractorConfig() ExtractorConfig {
	return ExtractorConfig{
		Algorithm: AlgorithmBucket,
		Theme:     ThemeSunset,
	}
}

// Validate validates the extractor configuration.
func (c ExtractorConfig) Validate() error {
	if !IsValidAlgorithm(c.Algorithm) {
		return fmt.Errorf("invalid algorithm: %s", c.Algorithm)
	}
	if _, err := c.Theme.Weight(); err != nil {
		return fmt.Errorf("invalid theme: %w", err)
	}
	return nil
}
