// Package camera defines the CameraMatrix capability the line-detection
// core depends on (spec.md §3/§6): a pixel<->ground-plane projection that
// may fail (ray above the horizon, behind the camera, or numerically
// ill-conditioned). Calibration of the matrix itself is out of scope
// (spec.md §1 lists it as an external collaborator); this package defines
// the interface plus a reference pinhole-on-ground-plane implementation
// used by this repo's own tests.
package camera

import (
	"math"

	"github.com/fieldvision/linedetect/geom"
)

// Matrix is the capability the detection core borrows read-only for the
// duration of a cycle. Both operations return ok=false on failure
// (spec.md's "Option") rather than an error, since projection failure for
// an individual pixel is an expected, silently-handled outcome, not an
// exceptional one.
type Matrix interface {
	PixelToGround(p geom.Point[int]) (ground geom.Point[float64], ok bool)
	GroundToPixel(g geom.Point[float64]) (pixel geom.Point[int], ok bool)
}

// Pinhole is a reference CameraMatrix implementation: a pinhole camera at
// a fixed height, pitched down from horizontal, projecting onto the
// z=0 ground plane. It exists so this repo's tests (and the cmd/linedetect
// demo) have a concrete, invertible Matrix to exercise — it is not the
// production calibration, which is an external collaborator per spec.md
// §1.
//
// Axis convention: world frame is X-forward, Y-left, Z-up, matching the
// robot-relative ground frame spec.md §3 describes for GroundPoint.
// Camera-local axes before extrinsic rotation are X-right, Y-down,
// Z-forward (the conventional image-plane axes); Pitch rotates the
// camera's forward axis toward -Z (downward) as pitch increases from
// zero, the expected direction for a robot looking down at the field.
type Pinhole struct {
	focalX, focalY   float64
	centerX, centerY float64
	imageWidth       float64
	imageHeight      float64
	pitch            float64
	position         [3]float64 // camera position in world (ground-relative) frame
}

// NewPinhole constructs a Pinhole camera matrix.
//
// Parameters:
//   - focalX, focalY: normalized focal lengths (fractions of image size).
//   - centerX, centerY: normalized principal point (fractions of image
//     size).
//   - imageWidth, imageHeight: pixel dimensions of the image plane, used
//     to convert between normalized and pixel coordinates.
//   - pitch: downward camera pitch, in radians, about the world Y (left)
//     axis.
//   - position: camera position in the world/ground frame (position[2]
//     is the camera height above the z=0 ground plane).
func NewPinhole(focalX, focalY, centerX, centerY float64, imageWidth, imageHeight int, pitch float64, position [3]float64) Pinhole {
	return Pinhole{
		focalX:      focalX,
		focalY:      focalY,
		centerX:     centerX,
		centerY:     centerY,
		imageWidth:  float64(imageWidth),
		imageHeight: float64(imageHeight),
		pitch:       pitch,
		position:    position,
	}
}

// PixelToGround projects a pixel onto the z=0 ground plane. It fails
// (ok=false) when the resulting ray points above the horizon (does not
// intersect the ground plane in front of the camera).
func (c Pinhole) PixelToGround(p geom.Point[int]) (geom.Point[float64], bool) {
	nx := (float64(p.X())/c.imageWidth - c.centerX) / c.focalX
	ny := (float64(p.Y())/c.imageHeight - c.centerY) / c.focalY

	sinP, cosP := math.Sincos(c.pitch)

	// camera-local (right, down, forward) ray, mapped to world-aligned
	// (forward, left, up) axes before extrinsic rotation.
	forward, left, up := 1.0, -nx, -ny

	dirX := forward*cosP + up*sinP
	dirY := left
	dirZ := -forward*sinP + up*cosP

	if dirZ >= 0 {
		// ray points at or above the horizon; never reaches the ground
		// plane in front of the camera.
		return geom.Point[float64]{}, false
	}

	t := -c.position[2] / dirZ
	if t <= 0 {
		return geom.Point[float64]{}, false
	}

	groundX := c.position[0] + t*dirX
	groundY := c.position[1] + t*dirY
	return geom.NewPoint(groundX, groundY), true
}

// GroundToPixel re-projects a ground-plane point into pixel coordinates.
// It fails (ok=false) when the point is behind the camera.
func (c Pinhole) GroundToPixel(g geom.Point[float64]) (geom.Point[int], bool) {
	relX := g.X() - c.position[0]
	relY := g.Y() - c.position[1]
	relZ := -c.position[2]

	sinP, cosP := math.Sincos(c.pitch)

	// inverse rotation (pitch by -c.pitch)
	alignedForward := relX*cosP - relZ*sinP
	alignedLeft := relY
	alignedUp := relX*sinP + relZ*cosP

	if alignedForward <= 0 {
		return geom.Point[float64]{}.AsIntRounded(), false
	}

	nx := -alignedLeft / alignedForward
	ny := -alignedUp / alignedForward

	u := (nx*c.focalX + c.centerX) * c.imageWidth
	v := (ny*c.focalY + c.centerY) * c.imageHeight

	return geom.NewPoint(u, v).AsIntRounded(), true
}
