package imagenormalizer

import (
	"bytes"
	"encoding/base64"
	"errors"
	"net/http"

	"github.com/disintegration/imaging"

	// Register WebP decoding for image.Decode; output is always JPEG.
	_ "golang.org/x/image/webp"
)

const (
	DefaultQuality  = 0.8
	DefaultMaxWidth = 800
	DefaultTarget   = 943718 // 0.9 MiB
	DefaultCeiling  = 1 << 20

	// Payment screenshots must stay well under the 1 MiB document limit of
	// the backing store, so they get a tighter budget and a lower starting
	// quality.
	ScreenshotQuality = 0.6
	ScreenshotTarget  = 900000

	MaxAttempts = 5

	minQuality  = 0.1
	qualityStep = 0.15
	minWidth    = 300
	widthStep   = 100
)

var (
	// ErrUnsupportedFormat is returned for inputs outside the JPEG/PNG/WebP
	// allow-list, before any compression work is attempted.
	ErrUnsupportedFormat = errors.New("imagenormalizer: unsupported image format")

	// ErrTooLarge is returned when the bounded retry loop cannot bring the
	// encoded image under the ceiling. The caller must reject the upload.
	ErrTooLarge = errors.New("imagenormalizer: image too large after compression")
)

// Options controls a normalization run.
type Options struct {
	Quality      float64 // initial JPEG quality, 0..1
	MaxWidth     int     // initial resize width in pixels
	TargetBytes  int     // stop as soon as the estimate is at or below this
	CeilingBytes int     // hard limit after the final attempt
}

// DefaultOptions is the profile/raasi photo profile: target 0.9 MiB with a
// 1 MiB hard ceiling.
func DefaultOptions() Options {
	return Options{
		Quality:      DefaultQuality,
		MaxWidth:     DefaultMaxWidth,
		TargetBytes:  DefaultTarget,
		CeilingBytes: DefaultCeiling,
	}
}

// ScreenshotOptions is the payment screenshot profile.
func ScreenshotOptions() Options {
	return Options{
		Quality:      ScreenshotQuality,
		MaxWidth:     DefaultMaxWidth,
		TargetBytes:  ScreenshotTarget,
		CeilingBytes: ScreenshotTarget,
	}
}

var allowedContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// Normalize re-encodes an arbitrary raster image into a self-contained JPEG
// data URI no larger than the ceiling. It searches iteratively: resize to the
// current max width (never upscaling), encode at the current quality, and if
// the estimated size is still above the target, degrade quality and width and
// try again, up to MaxAttempts times.
func Normalize(data []byte, opts Options) (string, error) {
	if !allowedContentTypes[http.DetectContentType(data)] {
		return "", ErrUnsupportedFormat
	}

	src, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return "", ErrUnsupportedFormat
	}

	quality := opts.Quality
	width := opts.MaxWidth
	encoded := ""

	for attempt := 0; attempt < MaxAttempts; attempt++ {
		img := src
		if src.Bounds().Dx() > width {
			img = imaging.Resize(src, width, 0, imaging.Lanczos)
		}

		var buf bytes.Buffer
		if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(int(quality*100))); err != nil {
			return "", err
		}
		encoded = "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())

		if EstimateBytes(encoded) <= opts.TargetBytes {
			return encoded, nil
		}

		quality -= qualityStep
		if quality < minQuality {
			quality = minQuality
		}
		width -= widthStep
		if width < minWidth {
			width = minWidth
		}
	}

	if EstimateBytes(encoded) > opts.CeilingBytes {
		return "", ErrTooLarge
	}
	return encoded, nil
}

// EstimateBytes approximates the decoded byte count of an encoded image
// string using the standard base64 length ratio. It is an approximation, not
// an exact count.
func EstimateBytes(encoded string) int {
	return len(encoded) * 3 / 4
}
