package imagenormalizer

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makePNG renders a test image. Noisy pixels defeat JPEG compression and
// force the size-reduction loop to do real work.
func makePNG(t *testing.T, width, height int, noisy bool) []byte {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	seed := uint32(2463534242)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := color.NRGBA{R: 40, G: 80, B: 120, A: 255}
			if noisy {
				seed ^= seed << 13
				seed ^= seed >> 17
				seed ^= seed << 5
				c = color.NRGBA{R: uint8(seed), G: uint8(seed >> 8), B: uint8(seed >> 16), A: 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func decodeDataURI(t *testing.T, uri string) image.Image {
	t.Helper()

	require.True(t, strings.HasPrefix(uri, "data:image/jpeg;base64,"))
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, "data:image/jpeg;base64,"))
	require.NoError(t, err)
	img, format, err := image.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	require.Equal(t, "jpeg", format)
	return img
}

func TestNormalizeSmallImageSinglePass(t *testing.T) {
	data := makePNG(t, 120, 80, false)

	uri, err := Normalize(data, DefaultOptions())

	require.NoError(t, err)
	img := decodeDataURI(t, uri)
	assert.Equal(t, 120, img.Bounds().Dx())
	assert.LessOrEqual(t, EstimateBytes(uri), DefaultTarget)
}

func TestNormalizeResizesOversizedImage(t *testing.T) {
	data := makePNG(t, 1600, 1200, true)

	uri, err := Normalize(data, DefaultOptions())

	require.NoError(t, err)
	img := decodeDataURI(t, uri)
	assert.LessOrEqual(t, img.Bounds().Dx(), DefaultMaxWidth)
	assert.LessOrEqual(t, EstimateBytes(uri), DefaultCeiling)
}

func TestNormalizeRejectsNonImageInput(t *testing.T) {
	_, err := Normalize([]byte("this is definitely not an image payload"), DefaultOptions())

	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestNormalizeRejectsTruncatedImage(t *testing.T) {
	data := makePNG(t, 200, 200, true)

	_, err := Normalize(data[:40], DefaultOptions())

	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestNormalizeTooLargeAfterAllAttempts(t *testing.T) {
	data := makePNG(t, 1600, 1200, true)

	opts := DefaultOptions()
	opts.TargetBytes = 10
	opts.CeilingBytes = 10

	_, err := Normalize(data, opts)

	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestScreenshotOptionsTighterBudget(t *testing.T) {
	opts := ScreenshotOptions()

	assert.Equal(t, ScreenshotQuality, opts.Quality)
	assert.Equal(t, ScreenshotTarget, opts.TargetBytes)
	assert.Equal(t, ScreenshotTarget, opts.CeilingBytes)
	assert.Less(t, opts.CeilingBytes, DefaultCeiling)
}

func TestEstimateBytes(t *testing.T) {
	assert.Equal(t, 75, EstimateBytes(strings.Repeat("a", 100)))
	assert.Equal(t, 0, EstimateBytes(""))
}
