// Package banner renders text as large block art using half-block characters.
package banner

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var face = basicfont.Face7x13

// threshold is the gray level above which a pixel counts as ink.
const threshold = 40

// Render draws text with the built-in 7x13 font and converts it to rows of
// half-block characters (▀▄█). Each output row covers two pixel rows.
func Render(text string) string {
	if text == "" {
		return ""
	}

	d := &font.Drawer{Face: face}
	width := d.MeasureString(text).Ceil()
	metrics := face.Metrics()
	height := (metrics.Ascent + metrics.Descent).Ceil()
	if height%2 == 1 {
		height++
	}

	img := image.NewGray(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.Black}, image.Point{}, draw.Src)

	d.Dst = img
	d.Src = image.White
	d.Dot = fixed.Point26_6{X: 0, Y: metrics.Ascent}
	d.DrawString(text)

	return trimBlankRows(imageToHalfBlocks(img, width, height/2))
}

// Width returns the number of terminal cells Render uses for text.
func Width(text string) int {
	return font.MeasureString(face, text).Ceil()
}

// imageToHalfBlocks converts a grayscale image to half-block art.
func imageToHalfBlocks(img *image.Gray, cols, rows int) string {
	var result strings.Builder

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			topOn := pixelOn(img, col, row*2)
			bottomOn := pixelOn(img, col, row*2+1)

			switch {
			case topOn && bottomOn:
				result.WriteRune('█')
			case topOn:
				result.WriteRune('▀')
			case bottomOn:
				result.WriteRune('▄')
			default:
				result.WriteRune(' ')
			}
		}
		if row < rows-1 {
			result.WriteRune('\n')
		}
	}

	return result.String()
}

func pixelOn(img *image.Gray, x, y int) bool {
	b := img.Bounds()
	if x < b.Min.X || y < b.Min.Y || x >= b.Max.X || y >= b.Max.Y {
		return false
	}
	return img.GrayAt(x, y).Y > threshold
}

func trimBlankRows(s string) string {
	lines := strings.Split(s, "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}
