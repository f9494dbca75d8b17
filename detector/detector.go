package detector

import (
	"math"
	"math/rand/v2"
	"sort"

	"github.com/fieldvision/linedetect/admit"
	"github.com/fieldvision/linedetect/camera"
	"github.com/fieldvision/linedetect/config"
	"github.com/fieldvision/linedetect/geom"
	"github.com/fieldvision/linedetect/imagesrc"
	"github.com/fieldvision/linedetect/internal/dbg"
	"github.com/fieldvision/linedetect/merge"
	"github.com/fieldvision/linedetect/numeric"
	"github.com/fieldvision/linedetect/ransac"
	"github.com/fieldvision/linedetect/segment"
)

// ransacIterations is the default sample count spec.md §4.5 specifies
// for each next_line call.
const ransacIterations = 20

// Detector is the per-cycle line-detection entry point. It owns its own
// RNG, advanced (never reseeded from a global source) across calls to
// Detect, per spec.md §4.5/§9.
type Detector struct {
	cfg        config.Config
	rng        *rand.Rand
	subscriber Subscriber
}

// Option configures a Detector at construction time.
type Option func(*Detector)

// WithSeed fixes the Detector's RNG to a deterministic two-part seed,
// for tests and reproducible runs.
func WithSeed(seed1, seed2 uint64) Option {
	return func(d *Detector) { d.rng = rand.New(rand.NewPCG(seed1, seed2)) }
}

// WithSubscriber attaches a debug-output subscriber (spec.md §4.7).
func WithSubscriber(sub Subscriber) Option {
	return func(d *Detector) { d.subscriber = sub }
}

// New creates a Detector over cfg. Without a WithSeed option, the RNG
// starts from a fixed default seed; callers that need cycle-to-cycle
// variation should advance a single long-lived Detector rather than
// constructing a fresh one every cycle.
func New(cfg config.Config, opts ...Option) *Detector {
	d := &Detector{
		cfg: cfg,
		rng: rand.New(rand.NewPCG(1, 2)),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// candidate pairs a ground-projected point with the pixel origin of the
// segment it came from.
type candidate struct {
	ground GroundPoint
	origin PixelPoint
}

// Detect runs one full cycle: candidate extraction, RANSAC extraction,
// and post-processing. It must not retain cam, segs, or img past return.
func (d *Detector) Detect(cam camera.Matrix, segs segment.FilteredSegments, img imagesrc.LumaImage) (LineData, *ImageLines) {
	candidates := extractCandidates(cam, segs, img, d.cfg)

	groundPoints := make([]GroundPoint, len(candidates))
	used := newUsedSet()
	for i, c := range candidates {
		groundPoints[i] = c.ground
		// Every admissible, projectable segment contributes its origin to
		// the used-set at extraction time (spec.md §4.4), independent of
		// whether any line is later fitted from or accepts its point.
		used.Add(c.origin)
	}

	subscribed := d.subscriber != nil && d.subscriber.IsSubscribed()

	fitter := ransac.New(groundPoints, d.rng.Uint64(), d.rng.Uint64())

	var linesInRobot []geom.LineSegment[float64]
	var imagePixelLines []geom.LineSegment[int]
	var discarded []DiscardedLine

	for i := 0; i < d.cfg.MaximumNumberOfLines; i++ {
		rawLine, support, ok := fitter.NextLine(ransacIterations, d.cfg.MaximumFitDistanceInGround)
		if !ok {
			break
		}

		if len(support) < d.cfg.MinimumNumberOfPointsOnLine {
			// Raw RANSAC support was already too small: further
			// extraction from this shrinking pool is unlikely to find
			// anything, so abandon the outer loop entirely rather than
			// trying another iteration (spec.md §9 open question).
			dbg.Printf("detector: cycle %d raw support %d below minimum, stopping extraction", i, len(support))
			if subscribed {
				discarded = append(discarded, makeDiscarded(cam, rawLine, TooFewPoints))
			}
			break
		}

		prefixFeet, remainder := gapSplit(rawLine, support, d.cfg.MaximumGapOnLine)
		if len(remainder) > 0 {
			fitter.Return(remainder)
		}

		if len(prefixFeet) < d.cfg.MinimumNumberOfPointsOnLine {
			if subscribed {
				discarded = append(discarded, makeDiscarded(cam, rawLine, TooFewPoints))
			}
			continue
		}

		startFoot := prefixFeet[0]
		endFoot := prefixFeet[len(prefixFeet)-1]
		acceptedLine := geom.NewLineSegment(startFoot, endFoot)

		if d.cfg.CheckLineLength {
			length := acceptedLine.Length()
			if length < d.cfg.AllowedLineLengthInField.Min {
				if subscribed {
					discarded = append(discarded, makeDiscarded(cam, rawLine, LineTooShort))
				}
				continue
			}
			if length > d.cfg.AllowedLineLengthInField.Max {
				if subscribed {
					discarded = append(discarded, makeDiscarded(cam, rawLine, LineTooLong))
				}
				continue
			}
		}

		if d.cfg.CheckLineDistance {
			center := acceptedLine.Center()
			distance := math.Hypot(center.X(), center.Y())
			if distance > d.cfg.MaximumDistanceToRobot {
				if subscribed {
					discarded = append(discarded, makeDiscarded(cam, rawLine, TooFarAway))
				}
				continue
			}
		}

		dbg.Printf("detector: cycle %d accepted line %v with %d support points", i, acceptedLine, len(prefixFeet))
		linesInRobot = append(linesInRobot, acceptedLine)
		if subscribed {
			startPixel, startOK := cam.GroundToPixel(startFoot)
			endPixel, endOK := cam.GroundToPixel(endFoot)
			if !startOK || !endOK {
				panic("detector: debug re-projection of an accepted line endpoint failed")
			}
			imagePixelLines = append(imagePixelLines, geom.NewLineSegment(startPixel, endPixel))
		}
	}

	lineData := LineData{
		LinesInRobot:                 linesInRobot,
		UsedVerticalFilteredSegments: used.Slice(),
	}

	if !subscribed {
		return lineData, nil
	}

	points := make([]PixelPoint, 0, len(groundPoints))
	for _, g := range groundPoints {
		pixel, ok := cam.GroundToPixel(g)
		if !ok {
			panic("detector: debug re-projection of a candidate point failed")
		}
		points = append(points, pixel)
	}

	imageLines := ImageLines{
		Points:         points,
		Lines:          imagePixelLines,
		DiscardedLines: discarded,
	}
	d.subscriber.FillIfSubscribed(func() ImageLines { return imageLines })

	return lineData, &imageLines
}

// makeDiscarded builds a DiscardedLine from the raw RANSAC line (the two
// sampled points that define the fitted line, before gap-split), re-
// projecting its endpoints to pixel coordinates. Called only when a
// debug subscriber is attached.
func makeDiscarded(cam camera.Matrix, rawLine geom.LineSegment[float64], reason DiscardReason) DiscardedLine {
	startPixel, startOK := cam.GroundToPixel(rawLine.Start())
	endPixel, endOK := cam.GroundToPixel(rawLine.End())
	if !startOK || !endOK {
		panic("detector: debug re-projection of a discarded line endpoint failed")
	}
	return DiscardedLine{
		Line:   geom.NewLineSegment(startPixel, endPixel),
		Reason: reason,
	}
}

// extractCandidates walks every scanline, merges its segments, and keeps
// the ground-projected midpoint of every admissible merged segment
// (spec.md §4.4).
func extractCandidates(cam camera.Matrix, segs segment.FilteredSegments, img imagesrc.LumaImage, cfg config.Config) []candidate {
	var out []candidate
	for _, scanLine := range segs.VerticalScanLines {
		column := scanLine.Position
		merged := merge.Merge(scanLine.Segments, cfg.MaximumMergeGapInPixels)
		for _, seg := range merged {
			if !admit.IsLineSegment(seg, column, img, cam, cfg) {
				continue
			}
			midRow := (seg.Start + seg.End) / 2
			midPixel := geom.NewPoint(column, midRow)
			ground, ok := cam.PixelToGround(midPixel)
			if !ok {
				continue
			}
			out = append(out, candidate{
				ground: ground,
				origin: geom.NewPoint(column, seg.Start),
			})
		}
	}
	return out
}

// footedPoint is a RANSAC support point together with its perpendicular
// foot on the fitted line.
type footedPoint struct {
	point GroundPoint
	foot  GroundPoint
	footX float64
}

// gapSplit implements spec.md §4.6 steps 1-2: project every support
// point onto line, sort by foot x ascending, and split at the first gap
// exceeding maximumGap. prefixFeet holds the accepted run's projected
// feet, which become the accepted line's endpoints so the output sits
// exactly on the fitted line; remainder holds the original (unprojected)
// points to return to the RANSAC pool.
func gapSplit(line geom.LineSegment[float64], support []GroundPoint, maximumGap float64) (prefixFeet, remainder []GroundPoint) {
	feet := make([]footedPoint, len(support))
	for i, p := range support {
		foot := p.ProjectOntoLine(line)
		numeric.AssertNotNaN(foot.X(), "ransac support projection foot x of point "+p.String())
		numeric.AssertNotNaN(foot.Y(), "ransac support projection foot y of point "+p.String())
		feet[i] = footedPoint{point: p, foot: foot, footX: foot.X()}
	}
	sort.Slice(feet, func(i, j int) bool { return feet[i].footX < feet[j].footX })

	splitIndex := len(feet)
	for i := 1; i < len(feet); i++ {
		if feet[i].foot.DistanceToPoint(feet[i-1].foot) > maximumGap {
			splitIndex = i
			break
		}
	}

	prefixFeet = make([]GroundPoint, splitIndex)
	for i := 0; i < splitIndex; i++ {
		prefixFeet[i] = feet[i].foot
	}
	remainder = make([]GroundPoint, len(feet)-splitIndex)
	for i := splitIndex; i < len(feet); i++ {
		remainder[i-splitIndex] = feet[i].point
	}
	return prefixFeet, remainder
}
