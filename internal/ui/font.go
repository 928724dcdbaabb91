// Package ui implements the chess board window using Ebitengine.
package ui

import (
	"bytes"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Text sizes as fractions of the square size, so labels follow the
// configured board size.
const (
	labelRatio  = 1.0 / 6
	statusRatio = 0.2
	toastRatio  = 0.19

	minFontSize = 9.0
)

var regularSource, boldSource *text.GoTextFaceSource

func init() {
	regularSource = loadSource("regular", goregular.TTF)
	boldSource = loadSource("bold", gobold.TTF)
}

func loadSource(name string, ttf []byte) *text.GoTextFaceSource {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
	if err != nil {
		log.Printf("Failed to load %s font: %v", name, err)
		return nil
	}
	return src
}

// faceFor returns a face of src for a square of squareSize logical pixels
// at the given HiDPI scale, or nil if the font failed to load.
func faceFor(src *text.GoTextFaceSource, squareSize int, ratio, scale float64) *text.GoTextFace {
	if src == nil {
		return nil
	}
	size := math.Max(minFontSize, float64(squareSize)*ratio)
	return &text.GoTextFace{Source: src, Size: size * scale}
}

// labelFace is used for the coordinates drawn inside the edge squares.
func labelFace(squareSize int, scale float64) *text.GoTextFace {
	return faceFor(regularSource, squareSize, labelRatio, scale)
}

// statusFace is used for the status bar. It never outgrows the bar.
func statusFace(squareSize int, scale float64) *text.GoTextFace {
	face := faceFor(regularSource, squareSize, statusRatio, scale)
	if face != nil {
		face.Size = math.Min(face.Size, StatusHeight*0.6*scale)
	}
	return face
}

// toastFace is used for notifications.
func toastFace(squareSize int, scale float64) *text.GoTextFace {
	return faceFor(boldSource, squareSize, toastRatio, scale)
}
