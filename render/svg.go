package render

import (
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/oliverans/chesscore"
)

const squareSize = 60

// SVG writes an 8x8 board diagram of b to w: alternating light/dark
// squares with each piece's FEN letter centered on its square. It is a
// debugging aid, not a full board-graphics renderer.
func SVG(w io.Writer, b *chess.Board) {
	side := squareSize * 8
	canvas := svg.New(w)
	canvas.Start(side, side)
	defer canvas.End()

	for r := 0; r < 8; r++ {
		for f := 0; f < 8; f++ {
			x := f * squareSize
			y := (7 - r) * squareSize
			fill := "#eeeed2"
			if (r+f)%2 == 0 {
				fill = "#769656"
			}
			canvas.Rect(x, y, squareSize, squareSize, "fill:"+fill)

			sq := chess.MakeSquare(chess.File(f), chess.Rank(r))
			p := b.PieceAt(sq)
			if p.IsNone() {
				continue
			}
			textColor := "black"
			if p.Color() == chess.White {
				textColor = "white"
			}
			canvas.Text(x+squareSize/2, y+squareSize/2+8, string(p.Char()),
				"text-anchor:middle;font-size:28px;fill:"+textColor)
		}
	}
}
