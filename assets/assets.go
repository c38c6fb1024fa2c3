// Package assets embeds the game's sprites and fonts and rasterizes them
// into plain images.
package assets

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/font/gofont/gomonobold"
)

//go:embed ball.svg
var ballSVG []byte

// BallImage rasterizes the ball sprite into a diameter x diameter image
func BallImage(diameter int) (*image.RGBA, error) {
	img, err := Rasterize(ballSVG, diameter, diameter)
	if err != nil {
		return nil, fmt.Errorf("ball sprite: %w", err)
	}
	return img, nil
}

// Rasterize renders SVG data into a width x height RGBA image
func Rasterize(svgData []byte, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid sprite size %dx%d", width, height)
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(svgData))
	if err != nil {
		return nil, fmt.Errorf("failed to parse svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(width), float64(height))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	raster := rasterx.NewDasher(width, height, scanner)
	icon.Draw(raster, 1.0)

	return img, nil
}

// ScoreFont returns the TrueType data used for the score line
func ScoreFont() []byte {
	return gomonobold.TTF
}

// SaveDebugPNG writes img to filename for inspecting rasterized sprites
func SaveDebugPNG(img image.Image, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create debug PNG: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode debug PNG: %w", err)
	}
	return nil
}
