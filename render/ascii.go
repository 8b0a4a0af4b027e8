// Package render provides debug board renderers used by the fenprobe
// command-line tool: a plain-text ASCII board and an optional SVG
// diagram.
package render

import (
	"fmt"
	"strings"

	"github.com/oliverans/chesscore"
)

// ASCII renders b as an 8x8 grid (rank 8 first, file a first) followed
// by a line summarizing side to move, castling rights, en-passant
// square, and the two clocks.
func ASCII(b *chess.Board) string {
	var sb strings.Builder
	for r := 7; r >= 0; r-- {
		sb.WriteByte('1' + byte(r))
		sb.WriteByte(' ')
		for f := 0; f < 8; f++ {
			sq := chess.MakeSquare(chess.File(f), chess.Rank(r))
			sb.WriteByte(b.PieceAt(sq).Char())
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")

	fmt.Fprintf(&sb, "side=%s castling=%s ep=%s halfmove=%d fullmove=%d\n",
		b.SideToMove(), castlingString(b.Castling()), b.EnPassant(), b.HalfmoveClock(), b.FullmoveNumber())
	return sb.String()
}

func castlingString(c chess.CastlingRights) string {
	var sb strings.Builder
	if c.Has(chess.CastleWhiteK) {
		sb.WriteByte('K')
	}
	if c.Has(chess.CastleWhiteQ) {
		sb.WriteByte('Q')
	}
	if c.Has(chess.CastleBlackK) {
		sb.WriteByte('k')
	}
	if c.Has(chess.CastleBlackQ) {
		sb.WriteByte('q')
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}
