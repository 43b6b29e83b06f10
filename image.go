package diskcache

import (
	"fmt"
	"image"
	"image/jpeg"
)

// Orientation follows the EXIF orientation tag (1..8). The zero value is
// treated as OrientationUp.
type Orientation uint8

const (
	OrientationUp            Orientation = 1 // as stored
	OrientationUpMirrored    Orientation = 2 // mirrored horizontally
	OrientationDown          Orientation = 3 // rotated 180
	OrientationDownMirrored  Orientation = 4 // mirrored vertically
	OrientationLeftMirrored  Orientation = 5 // transposed
	OrientationRight         Orientation = 6 // needs 90 clockwise
	OrientationRightMirrored Orientation = 7 // transversed
	OrientationLeft          Orientation = 8 // needs 90 counter-clockwise
)

// Bitmap is an image together with the orientation it was captured in.
type Bitmap struct {
	Image       image.Image
	Orientation Orientation
}

// upright reports whether the pixels can be used without a transform.
func (b Bitmap) upright() bool {
	return b.Orientation == 0 || b.Orientation == OrientationUp
}

// Normalize returns an upright bitmap. Bitmaps that are already upright are
// returned unchanged; the others are redrawn into a new RGBA image.
func Normalize(b Bitmap) Bitmap {
	if b.Image == nil || b.upright() || b.Orientation > OrientationLeft {
		return b
	}
	src := b.Image
	r := src.Bounds()
	w, h := r.Dx(), r.Dy()

	dw, dh := w, h
	if b.Orientation >= OrientationLeftMirrored {
		dw, dh = h, w
	}
	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var dx, dy int
			switch b.Orientation {
			case OrientationUpMirrored:
				dx, dy = w-1-x, y
			case OrientationDown:
				dx, dy = w-1-x, h-1-y
			case OrientationDownMirrored:
				dx, dy = x, h-1-y
			case OrientationLeftMirrored:
				dx, dy = y, x
			case OrientationRight:
				dx, dy = h-1-y, x
			case OrientationRightMirrored:
				dx, dy = h-1-y, w-1-x
			case OrientationLeft:
				dx, dy = y, w-1-x
			}
			dst.Set(dx, dy, src.At(r.Min.X+x, r.Min.Y+y))
		}
	}
	return Bitmap{Image: dst, Orientation: OrientationUp}
}

// encodeJPEG normalises b and encodes it. Empty images yield ErrEmptyEncoding.
func encodeJPEG(b Bitmap, quality int) ([]byte, error) {
	if b.Image == nil || b.Image.Bounds().Empty() {
		return nil, ErrEmptyEncoding
	}
	if b.Orientation > OrientationLeft {
		return nil, fmt.Errorf("invalid orientation %d", b.Orientation)
	}
	n := Normalize(b)

	buf := getBuf()
	defer putBuf(buf)
	if err := jpeg.Encode(buf, n.Image, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("jpeg encode: %w", err)
	}
	if buf.Len() == 0 {
		return nil, ErrEmptyEncoding
	}
	return detach(buf), nil
}
