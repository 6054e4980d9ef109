package montyhall

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"montyhall/internal/anim"
	"montyhall/internal/monty"
)

func TestFromMap(t *testing.T) {
	assert.Equal(t, DefaultConfig(), FromMap(nil))
	assert.Equal(t, Config{Pick: 2, Image: "car.png"}, FromMap(map[string]string{"pick": "3", "image": "car.png"}))
	assert.Equal(t, 0, FromMap(map[string]string{"pick": "7"}).Pick)
}

func TestMissingImageFailsBuild(t *testing.T) {
	_, err := New(Config{Image: filepath.Join(t.TempDir(), "nope.png")}).Build(1)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestImageShownOnCarDoor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "car.png")
	img := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	img.Set(0, 0, color.White)
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	tl, err := New(Config{Image: path}).Build(3)
	require.NoError(t, err)

	var pictures []anim.Shape
	for _, s := range tl.Frame(tl.Duration()).Shapes() {
		if s.Kind == anim.KindImage {
			pictures = append(pictures, s)
		}
	}
	require.Len(t, pictures, 1)
	assert.InDelta(t, 2*pictures[0].Height, pictures[0].Width, 1e-9)

	car := Contents(3).CarIndex()
	xs := []float64{-4, 0, 4}
	assert.InDelta(t, xs[car], pictures[0].Center.X, 1e-9)
}

func TestContentsFollowSeed(t *testing.T) {
	assert.Equal(t, Contents(9), Contents(9))
	assert.Len(t, Contents(9), 3)
	assert.Len(t, Contents(9).Goats(), 2)
	assert.Contains(t, Contents(9), monty.Car)
}
