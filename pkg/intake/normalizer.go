// Package intake composes extraction and normalization into the single
// transformation the rest of the service consumes: one raw intake note
// in, one complete normalized record out. Deterministic raw-text
// detectors take precedence over the LLM's guess for consignment,
// location, vendor, and size labels.
package intake

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/streetcommerce/intake/pkg/extract"
	domain "github.com/streetcommerce/intake/pkg/types"
)

// Default business policy, overridable via Config.
const (
	DefaultPayoutPct = 60.0
	DefaultVendor    = "Street Commerce"
)

// VendorDirectory resolves a vendor name fragment to its canonical
// directory entry. A miss returns "" with a nil error.
type VendorDirectory interface {
	BestMatch(ctx context.Context, query string) (string, error)
}

// Config holds the normalizer's business policy knobs.
type Config struct {
	// DefaultPayoutPct is the consignor's cut when a note marks
	// consignment without stating a percentage.
	DefaultPayoutPct float64

	// DefaultVendor is credited when a purchased item (positive cost,
	// not consignment) names no vendor.
	DefaultVendor string
}

// Normalizer turns raw intake notes into normalized records.
type Normalizer struct {
	extractor extract.Extractor
	directory VendorDirectory
	cfg       Config
	logger    *slog.Logger
}

// Option configures the Normalizer.
type Option func(*Normalizer)

// WithDirectory sets the vendor directory used to canonicalize vendor
// names. Without one, extracted fragments pass through as-is.
func WithDirectory(d VendorDirectory) Option {
	return func(n *Normalizer) {
		n.directory = d
	}
}

// WithConfig overrides the default business policy.
func WithConfig(cfg Config) Option {
	return func(n *Normalizer) {
		n.cfg = cfg
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(n *Normalizer) {
		n.logger = l
	}
}

// NewNormalizer creates a Normalizer backed by the given extractor.
func NewNormalizer(extractor extract.Extractor, opts ...Option) *Normalizer {
	n := &Normalizer{
		extractor: extractor,
		cfg: Config{
			DefaultPayoutPct: DefaultPayoutPct,
			DefaultVendor:    DefaultVendor,
		},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Normalize runs the full pipeline for one raw note: one extraction
// call, strict validation, then the ordered field rules. Callers get a
// complete record or an error, never a partial record. Recomputing with
// a deterministic extractor is idempotent.
func (n *Normalizer) Normalize(
	ctx context.Context,
	rawInput string,
) (*domain.IntakeFields, error) {
	result, err := n.extractor.Extract(ctx, rawInput)
	if err != nil {
		return nil, fmt.Errorf("extracting intake fields: %w", err)
	}

	r := &resolution{
		ctx:       ctx,
		raw:       rawInput,
		oracle:    result,
		cfg:       n.cfg,
		directory: n.directory,
		logger:    n.logger,
	}
	for _, rule := range fieldRules {
		rule.resolve(r)
	}

	out := r.out
	return &out, nil
}
