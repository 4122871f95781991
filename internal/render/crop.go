package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
)

// CropOptions describes how a screenshot becomes a logo.
type CropOptions struct {
	Top    int
	Bottom int
	// Threshold is the per-channel difference (0-255) from the top-left
	// pixel above which a pixel counts as content.
	Threshold int
}

// ErrEmptyCrop reports a crop that leaves no pixels.
var ErrEmptyCrop = errors.New("crop leaves an empty image")

// CropLogo removes Top and Bottom rows and then trims the background border.
// An image with no content after trimming is returned uncropped by the trim
// step.
func CropLogo(src image.Image, opts CropOptions) (image.Image, error) {
	bounds := src.Bounds()
	if opts.Top < 0 || opts.Bottom < 0 {
		return nil, fmt.Errorf("crop margins must be >= 0 (top=%d bottom=%d)", opts.Top, opts.Bottom)
	}
	band := image.Rect(bounds.Min.X, bounds.Min.Y+opts.Top, bounds.Max.X, bounds.Max.Y-opts.Bottom)
	if band.Empty() {
		return nil, fmt.Errorf("%w: %dx%d minus top=%d bottom=%d", ErrEmptyCrop, bounds.Dx(), bounds.Dy(), opts.Top, opts.Bottom)
	}
	banded := subImage(src, band)
	box, ok := ContentBounds(banded, opts.Threshold)
	if !ok {
		return banded, nil
	}
	return subImage(banded, box), nil
}

// ContentBounds finds the smallest rectangle holding every pixel that
// differs from the top-left pixel by more than threshold in any channel.
// ok is false when the image is uniform.
func ContentBounds(img image.Image, threshold int) (image.Rectangle, bool) {
	bounds := img.Bounds()
	if bounds.Empty() {
		return image.Rectangle{}, false
	}
	bg := color.NRGBAModel.Convert(img.At(bounds.Min.X, bounds.Min.Y)).(color.NRGBA)

	minX, minY := bounds.Max.X, bounds.Max.Y
	maxX, maxY := bounds.Min.X-1, bounds.Min.Y-1
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			px := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if !differs(px, bg, threshold) {
				continue
			}
			minX = min(minX, x)
			minY = min(minY, y)
			maxX = max(maxX, x)
			maxY = max(maxY, y)
		}
	}
	if maxX < minX {
		return image.Rectangle{}, false
	}
	return image.Rect(minX, minY, maxX+1, maxY+1), true
}

func differs(a, b color.NRGBA, threshold int) bool {
	return channelDiff(a.R, b.R) > threshold ||
		channelDiff(a.G, b.G) > threshold ||
		channelDiff(a.B, b.B) > threshold ||
		channelDiff(a.A, b.A) > threshold
}

func channelDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

func subImage(src image.Image, r image.Rectangle) image.Image {
	if s, ok := src.(subImager); ok {
		return s.SubImage(r)
	}
	dst := image.NewNRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(dst, dst.Bounds(), src, r.Min, draw.Src)
	return dst
}
