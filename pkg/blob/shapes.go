package blob

import (
	"math"

	"echoverse-be/pkg/emotion"
)

type point struct {
	X float64
	Y float64
}

const contourPoints = 360

// emotionShape generates the base contour for an emotion before organic
// deformation. Each emotion has a distinct geometric feel: anger spikes,
// anxiety coils inward, love traces a parametric heart.
func emotionShape(name string, cx, cy float64, radius int, points int) []point {
	r := float64(radius)
	contour := make([]point, 0, points)

	for i := 0; i < points; i++ {
		angle := float64(i) / float64(points) * 2 * math.Pi

		var dist float64
		switch name {
		case emotion.Joy:
			dist = r
		case emotion.Sadness:
			dist = r * (0.9 + 0.1*math.Sin(angle))
			if angle > math.Pi {
				dist *= 1.2
			}
		case emotion.Anger:
			dist = r * (1 + 0.4*math.Sin(5*angle))
		case emotion.Fear:
			dist = r * (1 + 0.25*math.Sin(9*angle))
		case emotion.Love:
			t := angle
			x := 16 * math.Pow(math.Sin(t), 3)
			y := 13*math.Cos(t) - 5*math.Cos(2*t) - 2*math.Cos(3*t) - math.Cos(4*t)
			contour = append(contour, point{cx + x*r*0.05, cy - y*r*0.05})
			continue
		case emotion.Anxiety:
			dist = r * (1 - 0.3*math.Sin(6*angle))
		case emotion.Excitement:
			dist = r * (1 + 0.5*math.Sin(8*angle))
		case emotion.Disgust:
			dist = r * (1 + 0.2*math.Sin(3*angle+math.Sin(angle*6)))
		case emotion.Surprise:
			dist = r * (1 + 0.35*math.Sin(4*angle))
		default:
			dist = r
		}

		contour = append(contour, point{cx + dist*math.Cos(angle), cy + dist*math.Sin(angle)})
	}

	return contour
}

// organicDeform perturbs a base contour with seeded multi-frequency noise.
// The same seed always produces the same deformation.
func organicDeform(base []point, cx, cy float64, radius, variation, seed int) []point {
	n := len(base)
	s := float64(seed)
	out := make([]point, 0, n)

	for i, p := range base {
		angle := float64(i) / float64(n) * 2 * math.Pi

		noise := math.Sin(angle*3+s*0.1)*0.3 +
			math.Sin(angle*5+s*0.2)*0.2 +
			math.Sin(angle*7+s*0.3)*0.1

		dx := p.X - cx
		dy := p.Y - cy
		factor := 1 + noise*float64(variation)/float64(radius)

		out = append(out, point{cx + dx*factor, cy + dy*factor})
	}

	return out
}

// scalePoints expands or contracts a contour around its centroid.
func scalePoints(pts []point, factor float64) []point {
	var cx, cy float64
	for _, p := range pts {
		cx += p.X
		cy += p.Y
	}
	cx /= float64(len(pts))
	cy /= float64(len(pts))

	out := make([]point, 0, len(pts))
	for _, p := range pts {
		out = append(out, point{cx + (p.X-cx)*factor, cy + (p.Y-cy)*factor})
	}
	return out
}
