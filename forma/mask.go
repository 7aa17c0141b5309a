package forma

import (
	"image"
	"image/color"

	bildsegment "github.com/anthonynsimon/bild/segment"
	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

// Mask is a binary raster: zero cells are background, nonzero cells are foreground.
// Metric and containment functions never write to a mask.
type Mask struct {
	width  int
	height int
	pix    []uint8
}

// NewMask creates empty (all background) mask
func NewMask(width, height int) *Mask {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Mask{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height),
	}
}

// NewMaskFromPix wraps row-major raster. The slice is not copied.
func NewMaskFromPix(width, height int, pix []uint8) (*Mask, error) {
	if width < 0 || height < 0 {
		return nil, errors.Errorf("Invalid mask dimensions %dx%d", width, height)
	}
	if len(pix) != width*height {
		return nil, errors.Errorf("Mask data has %d cells, but %dx%d raster needs %d", len(pix), width, height, width*height)
	}
	return &Mask{
		width:  width,
		height: height,
		pix:    pix,
	}, nil
}

// NewMaskFromGray treats every nonzero pixel of gray image as foreground.
// Nil image gives an empty 0x0 mask.
func NewMaskFromGray(gray *image.Gray) *Mask {
	if gray == nil {
		return NewMask(0, 0)
	}
	bounds := gray.Bounds()
	mask := NewMask(bounds.Dx(), bounds.Dy())
	for y := 0; y < mask.height; y++ {
		for x := 0; x < mask.width; x++ {
			if gray.GrayAt(bounds.Min.X+x, bounds.Min.Y+y).Y != 0 {
				mask.pix[y*mask.width+x] = 1
			}
		}
	}
	return mask
}

// NewMaskFromImage binarizes image: pixels with luminance >= level become foreground
func NewMaskFromImage(img image.Image, level uint8) (*Mask, error) {
	if img == nil {
		return nil, errors.New("Can't create mask from nil image")
	}
	return NewMaskFromGray(bildsegment.Threshold(img, level)), nil
}

// Width returns number of columns
func (mask *Mask) Width() int {
	return mask.width
}

// Height returns number of rows
func (mask *Mask) Height() int {
	return mask.height
}

// At reports whether cell (x, y) is foreground. Cells outside of raster are background.
func (mask *Mask) At(x, y int) bool {
	if x < 0 || y < 0 || x >= mask.width || y >= mask.height {
		return false
	}
	return mask.pix[y*mask.width+x] != 0
}

// Set marks cell (x, y). Cells outside of raster are ignored.
func (mask *Mask) Set(x, y int, foreground bool) {
	if x < 0 || y < 0 || x >= mask.width || y >= mask.height {
		return
	}
	if foreground {
		mask.pix[y*mask.width+x] = 1
	} else {
		mask.pix[y*mask.width+x] = 0
	}
}

// FillRect paints filled rectangle with inclusive corners (x0, y0) and (x1, y1), clipped to raster
func (mask *Mask) FillRect(x0, y0, x1, y1 int) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	x0 = maxInt(x0, 0)
	y0 = maxInt(y0, 0)
	for y := y0; y <= y1 && y < mask.height; y++ {
		for x := x0; x <= x1 && x < mask.width; x++ {
			mask.pix[y*mask.width+x] = 1
		}
	}
}

// Count returns number of foreground cells
func (mask *Mask) Count() int {
	count := 0
	for _, v := range mask.pix {
		if v != 0 {
			count++
		}
	}
	return count
}

// Gray exports mask as 8-bit image (foreground is 255)
func (mask *Mask) Gray() *image.Gray {
	gray := image.NewGray(image.Rect(0, 0, mask.width, mask.height))
	for i, v := range mask.pix {
		if v != 0 {
			gray.Pix[i] = 255
		}
	}
	return gray
}

// Resize resamples mask to new size with nearest neighbour filter.
// Useful when segmentation head produces masks at lower resolution than the frame.
func (mask *Mask) Resize(width, height int) *Mask {
	if width <= 0 || height <= 0 || mask.width == 0 || mask.height == 0 {
		return NewMask(width, height)
	}
	resized := imaging.Resize(mask.Gray(), width, height, imaging.NearestNeighbor)
	out := NewMask(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := color.GrayModel.Convert(resized.At(x, y)).(color.Gray)
			if c.Y >= 128 {
				out.pix[y*width+x] = 1
			}
		}
	}
	return out
}

// MultiPolygon returns outer contours of the mask's connected components
func (mask *Mask) MultiPolygon() MultiPolygon {
	return MaskToPolygon(mask)
}
