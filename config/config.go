// Package config assembles the line-detection core's recognized
// configuration options (spec.md §6) into a Config struct, using the same
// functional-options pattern the teacher library uses for its geometry
// operations (options.GeometryOptionsFunc / options.ApplyGeometryOptions),
// generalized here from a single Epsilon knob to the full parameter table.
package config

// Range is a closed real interval, used for AllowedLineLengthInField.
type Range struct {
	Min float64
	Max float64
}

// Config holds the recognized configuration options from spec.md §6. The
// enclosing framework is responsible for sourcing these values (e.g. from
// a parameter file); this package only knows how to assemble and default
// them.
type Config struct {
	// AllowedLineLengthInField is the accepted line ground-length range,
	// in meters.
	AllowedLineLengthInField Range

	// CheckLineDistance enables the §4.6 step 6 distance gate.
	CheckLineDistance bool

	// CheckLineLength enables the §4.6 step 5 length gate.
	CheckLineLength bool

	// CheckEdgeGradient enables the §4.3 check 3 gradient-alignment gate.
	CheckEdgeGradient bool

	// CheckLineSegmentsProjection enables the §4.3 check 2 projected-length
	// gate.
	CheckLineSegmentsProjection bool

	// GradientAlignment is the dot-product rejection threshold: a segment
	// passes the gradient check iff dot < GradientAlignment.
	GradientAlignment float64

	// MaximumDistanceToRobot is the maximum ground distance, in meters,
	// from the robot to an accepted line's midpoint.
	MaximumDistanceToRobot float64

	// MaximumFitDistanceInGround is the RANSAC inlier threshold, in
	// meters.
	MaximumFitDistanceInGround float64

	// MaximumGapOnLine is the maximum ground gap, in meters, between
	// consecutive projected support points before a line is split.
	MaximumGapOnLine float64

	// MaximumNumberOfLines caps the number of RANSAC outer iterations
	// (and therefore the number of lines extracted per cycle).
	MaximumNumberOfLines int

	// MaximumProjectedSegmentLength is the §4.3 check 2 upper bound, in
	// meters.
	MaximumProjectedSegmentLength float64

	// MinimumNumberOfPointsOnLine is the minimum support size for a line
	// to be retained.
	MinimumNumberOfPointsOnLine int

	// MaximumMergeGapInPixels is the §4.1 segment-merger threshold.
	MaximumMergeGapInPixels int
}

// Option mutates a Config being assembled by New.
type Option func(*Config)

// defaults returns a Config with conservative, commonly-useful defaults.
// Every field is still expected to be tuned per robot/camera by the
// caller via Option overrides; these defaults only keep New() usable
// out of the box for tests and examples.
func defaults() Config {
	return Config{
		AllowedLineLengthInField:      Range{Min: 0.1, Max: 3.0},
		CheckLineDistance:             true,
		CheckLineLength:               true,
		CheckEdgeGradient:             true,
		CheckLineSegmentsProjection:   true,
		GradientAlignment:             -0.9,
		MaximumDistanceToRobot:        5.0,
		MaximumFitDistanceInGround:    0.02,
		MaximumGapOnLine:              0.5,
		MaximumNumberOfLines:          8,
		MaximumProjectedSegmentLength: 0.3,
		MinimumNumberOfPointsOnLine:   3,
		MaximumMergeGapInPixels:       3,
	}
}

// New assembles a Config by applying opts over top of the package
// defaults, in order.
func New(opts ...Option) Config {
	cfg := defaults()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithAllowedLineLengthInField sets the accepted line ground-length range.
func WithAllowedLineLengthInField(r Range) Option {
	return func(c *Config) { c.AllowedLineLengthInField = r }
}

// WithCheckLineDistance toggles the §4.6 step 6 distance gate.
func WithCheckLineDistance(enabled bool) Option {
	return func(c *Config) { c.CheckLineDistance = enabled }
}

// WithCheckLineLength toggles the §4.6 step 5 length gate.
func WithCheckLineLength(enabled bool) Option {
	return func(c *Config) { c.CheckLineLength = enabled }
}

// WithCheckEdgeGradient toggles the §4.3 check 3 gradient-alignment gate.
func WithCheckEdgeGradient(enabled bool) Option {
	return func(c *Config) { c.CheckEdgeGradient = enabled }
}

// WithCheckLineSegmentsProjection toggles the §4.3 check 2 projected-length
// gate.
func WithCheckLineSegmentsProjection(enabled bool) Option {
	return func(c *Config) { c.CheckLineSegmentsProjection = enabled }
}

// WithGradientAlignment sets the dot-product rejection threshold.
func WithGradientAlignment(threshold float64) Option {
	return func(c *Config) { c.GradientAlignment = threshold }
}

// WithMaximumDistanceToRobot sets the maximum accepted line-midpoint
// distance, in meters.
func WithMaximumDistanceToRobot(meters float64) Option {
	return func(c *Config) { c.MaximumDistanceToRobot = meters }
}

// WithMaximumFitDistanceInGround sets the RANSAC inlier threshold, in
// meters.
func WithMaximumFitDistanceInGround(meters float64) Option {
	return func(c *Config) { c.MaximumFitDistanceInGround = meters }
}

// WithMaximumGapOnLine sets the maximum ground gap between consecutive
// projected support points, in meters.
func WithMaximumGapOnLine(meters float64) Option {
	return func(c *Config) { c.MaximumGapOnLine = meters }
}

// WithMaximumNumberOfLines caps the number of RANSAC outer iterations.
func WithMaximumNumberOfLines(n int) Option {
	return func(c *Config) { c.MaximumNumberOfLines = n }
}

// WithMaximumProjectedSegmentLength sets the §4.3 check 2 upper bound, in
// meters.
func WithMaximumProjectedSegmentLength(meters float64) Option {
	return func(c *Config) { c.MaximumProjectedSegmentLength = meters }
}

// WithMinimumNumberOfPointsOnLine sets the minimum support size for a line
// to be retained.
func WithMinimumNumberOfPointsOnLine(n int) Option {
	return func(c *Config) { c.MinimumNumberOfPointsOnLine = n }
}

// WithMaximumMergeGapInPixels sets the §4.1 segment-merger threshold.
func WithMaximumMergeGapInPixels(pixels int) Option {
	return func(c *Config) { c.MaximumMergeGapInPixels = pixels }
}
