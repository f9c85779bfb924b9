package snapshot

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	imagedraw "image/draw"
	"image/png"
	"io"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/park285/cheese-termchess/pkg/chessdto"
)

const (
	squareSize   = 48
	boardSquares = 8
	boardSize    = squareSize * boardSquares
	margin       = 16
	statusHeight = 40
	lineHeight   = 16
)

var (
	lightSquare      = color.RGBA{233, 207, 163, 255}
	darkSquare       = color.RGBA{187, 136, 96, 255}
	moveBlockFill    = color.NRGBA{R: 64, G: 120, B: 230, A: 170}
	attackBlockFill  = color.NRGBA{R: 220, G: 50, B: 47, A: 170}
	cursorOutline    = color.NRGBA{R: 190, G: 60, B: 200, A: 255}
	backgroundColor  = color.NRGBA{R: 28, G: 31, B: 46, A: 255}
	whiteLabelColor  = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	blackLabelColor  = color.NRGBA{R: 10, G: 10, B: 10, A: 255}
	statusTextColor  = color.NRGBA{R: 236, G: 239, B: 255, A: 255}
	boardShadowColor = color.NRGBA{0, 0, 0, 60}
)

// PNGRenderer draws frames as PNG images. Render writes one image per frame to w.
type PNGRenderer struct {
	w io.Writer
}

func NewPNGRenderer(w io.Writer) *PNGRenderer {
	return &PNGRenderer{w: w}
}

func (r *PNGRenderer) Render(frame chessdto.Frame) error {
	data, err := RenderPNG(context.Background(), frame)
	if err != nil {
		return err
	}
	if _, err := r.w.Write(data); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	return nil
}

// RenderPNG draws the board with rank 1 at the top, matching the terminal layout.
func RenderPNG(ctx context.Context, frame chessdto.Frame) ([]byte, error) {
	totalWidth := boardSize + margin*2
	totalHeight := boardSize + margin*2 + statusHeight
	origin := image.Point{X: margin, Y: margin}
	boardRect := image.Rect(origin.X, origin.Y, origin.X+boardSize, origin.Y+boardSize)

	img := image.NewRGBA(image.Rect(0, 0, totalWidth, totalHeight))
	imagedraw.Draw(img, img.Bounds(), image.NewUniform(backgroundColor), image.Point{}, imagedraw.Src)
	drawBoardShadow(img, boardRect)

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	drawer := &font.Drawer{Dst: img, Face: basicfont.Face7x13}
	for row := 0; row < boardSquares; row++ {
		for col := 0; col < boardSquares; col++ {
			drawCell(img, drawer, frame.Cells[row][col], squareRect(origin, col, row))
		}
	}
	drawStatus(drawer, frame.Status, image.Point{X: margin, Y: boardRect.Max.Y + margin})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func squareRect(origin image.Point, col, row int) image.Rectangle {
	x := origin.X + col*squareSize
	y := origin.Y + row*squareSize
	return image.Rect(x, y, x+squareSize, y+squareSize)
}

// SquareColor is the base colour of a square before highlights.
func SquareColor(file, rank uint8) color.Color {
	if file%2 == rank%2 {
		return lightSquare
	}
	return darkSquare
}

func drawCell(img *image.RGBA, drawer *font.Drawer, c chessdto.Cell, rect image.Rectangle) {
	imagedraw.Draw(img, rect, image.NewUniform(SquareColor(c.File, c.Rank)), image.Point{}, imagedraw.Src)
	switch c.Highlight {
	case chessdto.HighlightMove:
		imagedraw.Draw(img, rect, image.NewUniform(moveBlockFill), image.Point{}, imagedraw.Over)
	case chessdto.HighlightAttack:
		imagedraw.Draw(img, rect, image.NewUniform(attackBlockFill), image.Point{}, imagedraw.Over)
	}
	if c.Cursor {
		drawOutline(img, rect, 3, cursorOutline)
	}
	if !c.Occupied {
		return
	}
	label := strings.TrimSpace(c.Label)
	drawer.Src = image.NewUniform(blackLabelColor)
	if c.White {
		drawer.Src = image.NewUniform(whiteLabelColor)
	}
	width := drawer.MeasureString(label).Round()
	x := rect.Min.X + (squareSize-width)/2
	y := rect.Min.Y + squareSize/2 + basicfont.Face7x13.Ascent/2
	drawer.Dot = fixed.P(x, y)
	drawer.DrawString(label)
}

func drawOutline(img *image.RGBA, rect image.Rectangle, width int, clr color.Color) {
	src := image.NewUniform(clr)
	edges := []image.Rectangle{
		image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y+width),
		image.Rect(rect.Min.X, rect.Max.Y-width, rect.Max.X, rect.Max.Y),
		image.Rect(rect.Min.X, rect.Min.Y, rect.Min.X+width, rect.Max.Y),
		image.Rect(rect.Max.X-width, rect.Min.Y, rect.Max.X, rect.Max.Y),
	}
	for _, e := range edges {
		imagedraw.Draw(img, e, src, image.Point{}, imagedraw.Src)
	}
}

func drawBoardShadow(img *image.RGBA, boardRect image.Rectangle) {
	shadowRect := image.Rect(
		boardRect.Min.X+4,
		boardRect.Min.Y+6,
		boardRect.Max.X+6,
		boardRect.Max.Y+8,
	)
	imagedraw.Draw(img, shadowRect, image.NewUniform(boardShadowColor), image.Point{}, imagedraw.Over)
}

func drawStatus(drawer *font.Drawer, status string, at image.Point) {
	drawer.Src = image.NewUniform(statusTextColor)
	y := at.Y + basicfont.Face7x13.Ascent
	for _, line := range strings.Split(status, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		drawer.Dot = fixed.P(at.X, y)
		drawer.DrawString(line)
		y += lineHeight
	}
}
