// Copyright (c) 2026 Hot Ink. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package media

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math"

	"github.com/disintegration/imaging"
)

// Variant is the output of rendering one style.
type Variant struct {
	Body        []byte
	ContentType string
}

// VariantRenderer turns an original image into one of its styles.
type VariantRenderer interface {
	Render(ctx context.Context, original []byte, contentType string, style Style) (Variant, error)
}

// # Imaging

const jpegQuality = 85

// ImagingRenderer scales images to the style geometry.
type ImagingRenderer struct{}

/*
Render decodes the original, resizes it according to style.Geometry and
encodes it as JPEG when the style forces "jpg", otherwise in the original
format.

Returns:
  - Variant: encoded rendition and its content type
  - error: when the original cannot be decoded or encoded
*/
func (ImagingRenderer) Render(context context.Context, original []byte, contentType string, style Style) (Variant, error) {
	if err := context.Err(); err != nil {
		return Variant{}, err
	}

	src, err := imaging.Decode(bytes.NewReader(original), imaging.AutoOrientation(true))
	if err != nil {
		return Variant{}, fmt.Errorf("media: decode original: %w", err)
	}

	format, outputType := outputFormat(contentType, style)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resize(src, style.Geometry), format, imaging.JPEGQuality(jpegQuality)); err != nil {
		return Variant{}, fmt.Errorf("media: encode %s: %w", style.Name, err)
	}
	return Variant{Body: buf.Bytes(), ContentType: outputType}, nil
}

func outputFormat(contentType string, style Style) (imaging.Format, string) {
	if style.Format == "jpg" {
		return imaging.JPEG, "image/jpeg"
	}
	switch contentType {
	case "image/png":
		return imaging.PNG, contentType
	case "image/gif":
		return imaging.GIF, contentType
	default:
		return imaging.JPEG, "image/jpeg"
	}
}

func resize(src image.Image, g Geometry) image.Image {
	bounds := src.Bounds()

	// "#" crops to the exact box around the centre.
	if g.Modifier == "#" && g.Width > 0 && g.Height > 0 {
		return imaging.Fill(src, g.Width, g.Height, imaging.Center, imaging.Lanczos)
	}

	width, height := targetSize(g, bounds.Dx(), bounds.Dy())
	if width == bounds.Dx() && height == bounds.Dy() {
		return src
	}
	return imaging.Resize(src, width, height, imaging.Lanczos)
}

// targetSize applies an ImageMagick geometry to a w x h image. The aspect
// ratio is kept unless the modifier is "!".
func targetSize(g Geometry, w, h int) (int, int) {
	if w <= 0 || h <= 0 {
		return w, h
	}
	if g.Modifier == "!" && g.Width > 0 && g.Height > 0 {
		return g.Width, g.Height
	}

	scaleX := float64(g.Width) / float64(w)
	scaleY := float64(g.Height) / float64(h)

	var scale float64
	switch {
	case g.Width == 0:
		scale = scaleY
	case g.Height == 0:
		scale = scaleX
	case g.Modifier == "^":
		scale = math.Max(scaleX, scaleY)
	default:
		scale = math.Min(scaleX, scaleY)
	}

	if (g.Modifier == ">" && scale >= 1) || (g.Modifier == "<" && scale <= 1) {
		return w, h
	}

	return max(1, int(math.Round(float64(w)*scale))), max(1, int(math.Round(float64(h)*scale)))
}

// probeDimensions reads the pixel size from the image header without
// decoding the whole image.
func probeDimensions(body []byte) (int, int, error) {
	config, _, err := image.DecodeConfig(bytes.NewReader(body))
	if err != nil {
		return 0, 0, err
	}
	return config.Width, config.Height, nil
}
