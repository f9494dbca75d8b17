// Command linedetect drives one synthetic cycle of the line-detection
// core and prints the resulting LineData as JSON. It generates a random
// field of candidate scanline segments rather than reading a real camera
// frame, since the upstream image segmenter is outside this module's
// scope (spec.md §1) — mirroring how cmd/genlinesegments generates a
// random point set rather than reading one from a file.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand/v2"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/fieldvision/linedetect/camera"
	"github.com/fieldvision/linedetect/config"
	"github.com/fieldvision/linedetect/detector"
	"github.com/fieldvision/linedetect/imagesrc"
	"github.com/fieldvision/linedetect/segment"
)

func main() {
	cmd := &cli.Command{
		Name:      "linedetect",
		Usage:     "Runs one synthetic cycle of the line-detection core and prints LineData as JSON",
		UsageText: "linedetect --columns <value> --width <value> --height <value> --pitch <value> --camera-height <value>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:     "columns",
				Usage:    "The number of scanline columns to synthesize",
				Value:    40,
				Aliases:  []string{"n"},
				OnlyOnce: true,
				Validator: func(v int64) error {
					if v <= 0 {
						return fmt.Errorf("columns must be greater than zero")
					}
					return nil
				},
			},
			&cli.IntFlag{
				Name:     "width",
				Usage:    "Synthetic image width in pixels",
				Value:    640,
				OnlyOnce: true,
			},
			&cli.IntFlag{
				Name:     "height",
				Usage:    "Synthetic image height in pixels",
				Value:    480,
				OnlyOnce: true,
			},
			&cli.FloatFlag{
				Name:     "pitch",
				Usage:    "Downward camera pitch in radians",
				Value:    0.5,
				OnlyOnce: true,
			},
			&cli.FloatFlag{
				Name:     "camera-height",
				Usage:    "Camera height above the ground plane, in meters",
				Value:    1.0,
				OnlyOnce: true,
			},
			&cli.IntFlag{
				Name:     "seed1",
				Usage:    "First half of the RANSAC RNG seed",
				Value:    1,
				OnlyOnce: true,
			},
			&cli.IntFlag{
				Name:     "seed2",
				Usage:    "Second half of the RANSAC RNG seed",
				Value:    2,
				OnlyOnce: true,
			},
		},
		HideVersion: true,
		Action:      run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func randomIntInRange(rng *rand.Rand, min, max int64) int64 {
	return min + rng.Int64N(max-min+1)
}

func run(_ context.Context, cmd *cli.Command) error {
	width := cmd.Int("width")
	height := cmd.Int("height")
	columns := cmd.Int("columns")
	pitch := cmd.Float("pitch")
	cameraHeight := cmd.Float("camera-height")
	seed1 := uint64(cmd.Int("seed1"))
	seed2 := uint64(cmd.Int("seed2"))

	if columns > width {
		return fmt.Errorf("columns must not exceed width")
	}

	rng := rand.New(rand.NewPCG(seed1, seed2))

	scanLines := make([]segment.ScanLine, columns)
	for i := int64(0); i < columns; i++ {
		start := randomIntInRange(rng, 0, height-2)
		end := start + randomIntInRange(rng, 1, height-1-start)
		scanLines[i] = segment.ScanLine{
			Position: int(i),
			Segments: []segment.Segment{
				{Start: int(start), End: int(end), StartEdge: segment.Rising, EndEdge: segment.Falling},
			},
		}
	}
	filtered := segment.FilteredSegments{VerticalScanLines: scanLines}

	cam := camera.NewPinhole(1, 1, 0.5, 0.5, int(width), int(height), pitch, [3]float64{0, 0, cameraHeight})
	cfg := config.New(config.WithCheckEdgeGradient(false))
	det := detector.New(cfg, detector.WithSeed(seed1, seed2))

	img := imagesrc.NewGrid(int(width), int(height))
	lineData, _ := det.Detect(cam, filtered, img)

	b, err := json.Marshal(lineData)
	if err != nil {
		return err
	}
	fmt.Print(string(b))
	return nil
}
