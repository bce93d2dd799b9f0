package assets

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// PNGContentType is the only image format the system clipboard accepts
const PNGContentType = "image/png"

// ToPNG returns the asset encoded as PNG, re-encoding gif, jpeg and webp.
func ToPNG(asset *Asset) ([]byte, error) {
	if asset.ContentType == PNGContentType {
		return asset.Data, nil
	}

	img, format, err := image.Decode(bytes.NewReader(asset.Data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", asset.Filename, err)
	}
	if format == "png" {
		return asset.Data, nil
	}

	return encodePNG(img)
}

// Thumbnail decodes data and scales it down to fit within maxPixels on its
// longer side. Smaller images keep their size.
func Thumbnail(data []byte, maxPixels int) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode thumbnail source: %w", err)
	}

	return encodePNG(scaleToFit(src, maxPixels))
}

// scaleToFit scales src down so that neither side exceeds maxPixels
func scaleToFit(src image.Image, maxPixels int) image.Image {
	bounds := src.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if maxPixels <= 0 || (width <= maxPixels && height <= maxPixels) {
		return src
	}

	var scale float64
	if width > height {
		scale = float64(maxPixels) / float64(width)
	} else {
		scale = float64(maxPixels) / float64(height)
	}

	newWidth := max(1, int(float64(width)*scale))
	newHeight := max(1, int(float64(height)*scale))

	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.BiLinear.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
	return dst
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}
	return buf.Bytes(), nil
}
