package blob

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"
	"sort"

	"echoverse-be/pkg/emotion"
)

const (
	canvasSize = 1200
)

var backgroundColor = color.RGBA{R: 26, G: 26, B: 46, A: 255}

// Render draws a mood blob for the current emotional state on top of the
// recent history and returns the encoded PNG. Output is deterministic for
// the same inputs.
func Render(current *emotion.Analysis, history []Snapshot) ([]byte, Params, error) {
	params := CalculateParams(current, history)
	colors := ColorEvolution(current, history)

	img := image.NewRGBA(image.Rect(0, 0, canvasSize, canvasSize))
	for y := 0; y < canvasSize; y++ {
		for x := 0; x < canvasSize; x++ {
			img.SetRGBA(x, y, backgroundColor)
		}
	}

	cx := float64(canvasSize) / 2
	cy := float64(canvasSize) / 2

	base := emotionShape(current.PrimaryEmotion, cx, cy, params.Radius, contourPoints)
	contour := organicDeform(base, cx, cy, params.Radius, params.Variation, params.Seed)

	secondary := colors[0]
	if len(colors) > 1 {
		secondary = colors[1]
	}

	// Layered fills from faded halo to bright core.
	fillPolygon(img, scalePoints(contour, 1.2), withAlpha(colors[0], 0.2))
	fillPolygon(img, contour, withAlpha(blendColors(colors[0], secondary, 0.6), 0.4))
	fillPolygon(img, scalePoints(contour, 0.85), withAlpha(colors[0], 0.7))
	fillPolygon(img, scalePoints(contour, 0.6), withAlpha(brightenColor(colors[0], 1.3), 0.9))

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, params, err
	}
	return buf.Bytes(), params, nil
}

func withAlpha(c emotion.Color, opacity float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(255 * opacity)}
}

// fillPolygon rasterizes a closed polygon with even-odd scanline filling,
// compositing the translucent fill over whatever is already on the canvas.
func fillPolygon(img *image.RGBA, pts []point, fill color.NRGBA) {
	if len(pts) < 3 {
		return
	}

	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	bounds := img.Bounds()
	yStart := int(math.Max(math.Floor(minY), float64(bounds.Min.Y)))
	yEnd := int(math.Min(math.Ceil(maxY), float64(bounds.Max.Y-1)))

	n := len(pts)
	for y := yStart; y <= yEnd; y++ {
		scanY := float64(y) + 0.5

		var crossings []float64
		for i := 0; i < n; i++ {
			p1 := pts[i]
			p2 := pts[(i+1)%n]
			if (p1.Y <= scanY && p2.Y > scanY) || (p2.Y <= scanY && p1.Y > scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				crossings = append(crossings, p1.X+t*(p2.X-p1.X))
			}
		}
		sort.Float64s(crossings)

		for i := 0; i+1 < len(crossings); i += 2 {
			xStart := int(math.Max(math.Ceil(crossings[i]), float64(bounds.Min.X)))
			xEnd := int(math.Min(math.Floor(crossings[i+1]), float64(bounds.Max.X-1)))
			for x := xStart; x <= xEnd; x++ {
				blendPixel(img, x, y, fill)
			}
		}
	}
}

// blendPixel composites src over the existing pixel.
func blendPixel(img *image.RGBA, x, y int, src color.NRGBA) {
	dst := img.RGBAAt(x, y)
	alpha := float64(src.A) / 255.0
	inv := 1 - alpha

	img.SetRGBA(x, y, color.RGBA{
		R: uint8(float64(src.R)*alpha + float64(dst.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(dst.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(dst.B)*inv),
		A: 255,
	})
}
