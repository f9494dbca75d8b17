// Package imagesrc defines the luma-indexable image capability the
// gradient probe reads from (spec.md §3/§6: "image: luma-indexable image
// with width(), height(), at(u,v).y -> u8"), plus adapters over the
// stdlib image package so callers can hand this repo an *image.Gray or
// *image.YCbCr directly, the way [geom.NewPointFromImagePoint] bridges
// pixel points from the stdlib image package.
package imagesrc

import "image"

// LumaImage is a read-only view onto an image's luma (Y) channel.
type LumaImage interface {
	Width() int
	Height() int
	// At returns the luma value at pixel (u, v). Behavior is undefined
	// for out-of-bounds coordinates; callers (the gradient probe) never
	// query outside [0,Width)x[0,Height).
	At(u, v int) uint8
}

// grayImage adapts an *image.Gray to LumaImage.
type grayImage struct {
	img *image.Gray
}

// FromGray adapts an *image.Gray to LumaImage.
func FromGray(img *image.Gray) LumaImage {
	return grayImage{img: img}
}

func (g grayImage) Width() int  { return g.img.Bounds().Dx() }
func (g grayImage) Height() int { return g.img.Bounds().Dy() }
func (g grayImage) At(u, v int) uint8 {
	b := g.img.Bounds()
	return g.img.GrayAt(b.Min.X+u, b.Min.Y+v).Y
}

// ycbcrImage adapts an *image.YCbCr to LumaImage.
type ycbcrImage struct {
	img *image.YCbCr
}

// FromYCbCr adapts an *image.YCbCr to LumaImage, reading only its Y
// plane.
func FromYCbCr(img *image.YCbCr) LumaImage {
	return ycbcrImage{img: img}
}

func (y ycbcrImage) Width() int  { return y.img.Bounds().Dx() }
func (y ycbcrImage) Height() int { return y.img.Bounds().Dy() }
func (y ycbcrImage) At(u, v int) uint8 {
	b := y.img.Bounds()
	yi := y.img.YOffset(b.Min.X+u, b.Min.Y+v)
	return y.img.Y[yi]
}
