package glowsphere

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io/fs"
	"math"
	"math/rand"
	"os"
	"path/filepath"

	_ "image/jpeg"
	_ "image/png"
)

// ErrNormalMapDecode is returned when a normal map file exists but isn't a decodable image.
var ErrNormalMapDecode = errors.New("normal map could not be decoded")

// LoadNormalMap opens and decodes the normal map image at path within fsys. PNG and JPEG are supported.
func LoadNormalMap(fsys fs.FS, path string) (image.Image, error) {

	file, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open normal map %q: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrNormalMapDecode, path, err)
	}

	return img, nil

}

// LoadNormalMapFile loads the normal map at the given filesystem path, which may be absolute.
func LoadNormalMapFile(path string) (image.Image, error) {
	return LoadNormalMap(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}

// NewProceduralNormalMap generates a tangent-space normal map of the given size from a tileable field of soft bumps.
// The same seed always produces the same map.
func NewProceduralNormalMap(w, h int, seed int64) *image.NRGBA {

	random := rand.New(rand.NewSource(seed))

	type wave struct {
		fx, fy, phase, amp float64
	}

	// Integer frequencies keep the field tileable across the U seam.
	waves := make([]wave, 0, 12)
	for i := 0; i < cap(waves); i++ {
		waves = append(waves, wave{
			fx:    float64(4 + random.Intn(28)),
			fy:    float64(4 + random.Intn(28)),
			phase: random.Float64() * math.Pi * 2,
			amp:   0.5 + random.Float64(),
		})
	}

	height := func(u, v float64) float64 {
		sum := 0.0
		for _, w := range waves {
			sum += w.amp * math.Sin((u*w.fx+v*w.fy)*math.Pi*2+w.phase)
		}
		return sum / float64(len(waves))
	}

	img := image.NewNRGBA(image.Rect(0, 0, w, h))

	du := 1 / float64(w)
	dv := 1 / float64(h)
	bumpiness := 0.006

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {

			u := float64(x) * du
			v := float64(y) * dv

			dx := (height(u+du, v) - height(u-du, v)) / (2 * du) * bumpiness
			dy := (height(u, v-dv) - height(u, v+dv)) / (2 * dv) * bumpiness

			n := NewVector(-dx, -dy, 1).Unit()
			img.SetNRGBA(x, y, encodeNormal(n))

		}
	}

	return img

}

func encodeNormal(n Vector) color.NRGBA {
	return color.NRGBA{
		R: uint8(math.Round((n.X*0.5 + 0.5) * 255)),
		G: uint8(math.Round((n.Y*0.5 + 0.5) * 255)),
		B: uint8(math.Round((n.Z*0.5 + 0.5) * 255)),
		A: 255,
	}
}
