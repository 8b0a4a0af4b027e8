package chess

import (
	"strconv"
	"strings"
)

// ParseFEN parses a Forsyth-Edwards Notation string into a Board,
// validating every field. Rejections are returned as *FenParseError
// with a specific Kind: malformed placement, a side not composed of
// exactly one king each, the side not to move being in check, pawns on
// the back ranks, an en-passant square that isn't on the correct rank
// for the side to move, and clock fields that don't parse as
// non-negative integers.
func ParseFEN(fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return nil, &FenParseError{Kind: ErrUnexpectedChar, Msg: "FEN must have 6 space-separated fields"}
	}

	b := &Board{epSquare: NoSquare}
	if err := parsePlacement(b, fields[0]); err != nil {
		return nil, err
	}
	if err := parseSide(b, fields[1]); err != nil {
		return nil, err
	}
	if err := parseCastling(b, fields[2]); err != nil {
		return nil, err
	}
	if err := parseEnPassant(b, fields[3]); err != nil {
		return nil, err
	}
	if err := parseClocks(b, fields[4], fields[5]); err != nil {
		return nil, err
	}

	var kings [2]int
	for sq := 0; sq < 64; sq++ {
		if p := b.board[sq]; p.Type() == King {
			kings[p.Color()]++
		}
		if p := b.board[sq]; p != NoPiece && p.Type() == Pawn {
			r := Square(sq).Rank()
			if r == 0 || r == 7 {
				return nil, newFenError(ErrPawnOnBackRank)
			}
		}
	}
	if kings[White] != 1 || kings[Black] != 1 {
		return nil, newFenError(ErrBadKingCount)
	}

	notToMove := b.side.Other()
	if isSquareAttacked(b.Occupied(), &b.board, &b.pieceBB, &b.colorBB, b.KingSquare(notToMove), b.side) {
		return nil, newFenError(ErrSideNotToMoveInCheck)
	}

	b.checkers = b.computeCheckers()
	b.hash = b.computeHash()
	return b, nil
}

func parsePlacement(b *Board, field string) error {
	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return newFenError(ErrBadPlacement)
	}
	for i, rankStr := range ranks {
		rank := Rank(7 - i)
		file := File(0)
		for j := 0; j < len(rankStr); j++ {
			ch := rankStr[j]
			if ch >= '1' && ch <= '8' {
				file += File(ch - '0')
				if file > 8 {
					return newFenError(ErrBadPlacement)
				}
				continue
			}
			p, ok := PieceFromChar(ch)
			if !ok || file >= 8 {
				return newFenError(ErrBadPlacement)
			}
			b.addPiece(MakeSquare(file, rank), p)
			file++
		}
		if file != 8 {
			return newFenError(ErrBadPlacement)
		}
	}
	return nil
}

func parseSide(b *Board, field string) error {
	switch field {
	case "w":
		b.side = White
	case "b":
		b.side = Black
	default:
		return newFenError(ErrBadSide)
	}
	return nil
}

func parseCastling(b *Board, field string) error {
	if field == "-" {
		return nil
	}
	if len(field) == 0 || len(field) > 4 {
		return newFenError(ErrBadCastling)
	}
	seen := map[byte]bool{}
	for i := 0; i < len(field); i++ {
		ch := field[i]
		if seen[ch] {
			return newFenError(ErrBadCastling)
		}
		seen[ch] = true
		switch ch {
		case 'K':
			b.castling |= CastleWhiteK
		case 'Q':
			b.castling |= CastleWhiteQ
		case 'k':
			b.castling |= CastleBlackK
		case 'q':
			b.castling |= CastleBlackQ
		default:
			return newFenError(ErrBadCastling)
		}
	}
	return nil
}

func parseEnPassant(b *Board, field string) error {
	if field == "-" {
		return nil
	}
	sq, ok := ParseSquare(field)
	if !ok {
		return newFenError(ErrBadEnPassant)
	}
	wantRank := Rank(5)
	if b.side == Black {
		wantRank = Rank(2)
	}
	if sq.Rank() != wantRank {
		return newFenError(ErrBadEnPassant)
	}
	b.epSquare = sq
	return nil
}

func parseClocks(b *Board, halfField, fullField string) error {
	half, err := strconv.Atoi(halfField)
	if err != nil || half < 0 || half > 100 {
		return newFenError(ErrBadClock)
	}
	full, err := strconv.Atoi(fullField)
	if err != nil || full < 1 {
		return newFenError(ErrBadClock)
	}
	b.halfmove = half
	b.fullmove = full
	return nil
}

// String renders the board as a FEN string.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 7; r >= 0; r-- {
		empty := 0
		for f := 0; f < 8; f++ {
			p := b.board[MakeSquare(File(f), Rank(r))]
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(p.Char())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if r > 0 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')
	sb.WriteString(b.side.String())
	sb.WriteByte(' ')
	if b.castling == 0 {
		sb.WriteByte('-')
	} else {
		if b.castling.Has(CastleWhiteK) {
			sb.WriteByte('K')
		}
		if b.castling.Has(CastleWhiteQ) {
			sb.WriteByte('Q')
		}
		if b.castling.Has(CastleBlackK) {
			sb.WriteByte('k')
		}
		if b.castling.Has(CastleBlackQ) {
			sb.WriteByte('q')
		}
	}
	sb.WriteByte(' ')
	sb.WriteString(b.epSquare.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.halfmove))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.fullmove))
	return sb.String()
}
