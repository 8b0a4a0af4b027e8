package chess

// MakeMove applies m to b and returns the resulting position. m must
// be a legal move for b (typically one produced by Generate); MakeMove
// is a total function on that precondition and performs no legality
// check of its own (the pin/check-mask discipline in Generate and the
// simulated-occupancy check in en-passant/king-move generation are what
// make that precondition hold).
func MakeMove(b *Board, m Move) *Board {
	nb := *b
	from, to, flag := m.From(), m.To(), m.Flag()
	us := nb.side
	them := us.Other()
	moved := nb.PieceAt(from)

	if nb.epSquare != NoSquare {
		nb.hash ^= zobristEnPassant[nb.epSquare.File()]
		nb.epSquare = NoSquare
	}

	capturedType := NoPieceType
	if flag == FlagEnPassant {
		capSq := to.Bit().DownFor(us).LSB()
		capturedType = Pawn
		nb.removePiece(capSq)
	} else if m.IsCapture() {
		capturedType = nb.PieceAt(to).Type()
		nb.removePiece(to)
	}

	nb.removePiece(from)
	if pt := m.PromotionType(); pt != NoPieceType {
		nb.addPiece(to, MakePiece(us, pt))
	} else {
		nb.addPiece(to, moved)
	}

	if flag == FlagKingCastle || flag == FlagQueenCastle {
		rookFrom, rookTo := castleRookSquares(us, flag)
		rook := nb.removePiece(rookFrom)
		nb.addPiece(rookTo, rook)
	}

	newRights := nb.castling &^ castlingClearMask(from) &^ castlingClearMask(to)
	if newRights != nb.castling {
		nb.hash ^= zobristCastle[nb.castling]
		nb.hash ^= zobristCastle[newRights]
		nb.castling = newRights
	}

	if flag == FlagDoublePush {
		ep := to.Bit().DownFor(us).LSB()
		nb.epSquare = ep
		nb.hash ^= zobristEnPassant[ep.File()]
	}

	if moved.Type() == Pawn || capturedType != NoPieceType {
		nb.halfmove = 0
	} else {
		nb.halfmove++
	}
	if us == Black {
		nb.fullmove++
	}

	nb.side = them
	nb.hash ^= zobristSide
	nb.checkers = nb.computeCheckers()
	return &nb
}

// castlingClearMask returns the castling-rights bits that are cleared
// whenever a king or rook moves onto or off of one of the six special
// squares (e1, h1, a1, e8, h8, a8). Applied to both the move's from and
// to square: a rook captured on its home square loses its side the
// right just as surely as the rook moving away does.
func castlingClearMask(sq Square) CastlingRights {
	switch sq {
	case 4:
		return CastleWhiteK | CastleWhiteQ
	case 7:
		return CastleWhiteK
	case 0:
		return CastleWhiteQ
	case 60:
		return CastleBlackK | CastleBlackQ
	case 63:
		return CastleBlackK
	case 56:
		return CastleBlackQ
	default:
		return 0
	}
}

func castleRookSquares(us Color, flag MoveFlag) (from, to Square) {
	if us == White {
		if flag == FlagKingCastle {
			return 7, 5
		}
		return 0, 3
	}
	if flag == FlagKingCastle {
		return 63, 61
	}
	return 56, 59
}

// MakeNullMove returns a copy of b with the side to move flipped, the
// en-passant square cleared, and the halfmove clock incremented;
// castling rights and placement are unchanged. The caller must not
// call this while in check.
func MakeNullMove(b *Board) *Board {
	nb := *b
	if nb.epSquare != NoSquare {
		nb.hash ^= zobristEnPassant[nb.epSquare.File()]
		nb.epSquare = NoSquare
	}
	nb.halfmove++
	if nb.side == Black {
		nb.fullmove++
	}
	nb.side = nb.side.Other()
	nb.hash ^= zobristSide
	nb.checkers = nb.computeCheckers()
	return &nb
}

// MakeUciMove parses a 4- or 5-character UCI move string, matches it
// against the legal moves generated for b, and returns the resulting
// board. It returns a *UciMoveError if the string is malformed or
// names no legal move in this position.
func MakeUciMove(b *Board, s string) (*Board, error) {
	if len(s) != 4 && len(s) != 5 {
		return nil, newUciError(ErrMalformedString, "UCI move must be 4 or 5 characters")
	}
	from, ok := ParseSquare(s[0:2])
	if !ok {
		return nil, newUciError(ErrMalformedString, "invalid source square")
	}
	to, ok := ParseSquare(s[2:4])
	if !ok {
		return nil, newUciError(ErrMalformedString, "invalid destination square")
	}
	wantPromo := NoPieceType
	if len(s) == 5 {
		switch s[4] {
		case 'q':
			wantPromo = Queen
		case 'r':
			wantPromo = Rook
		case 'b':
			wantPromo = Bishop
		case 'n':
			wantPromo = Knight
		default:
			return nil, newUciError(ErrMalformedString, "invalid promotion letter")
		}
	}

	var list MoveList
	Generate(b, FilterAll, &list)
	for i := 0; i < list.Len(); i++ {
		m := list.Get(i)
		if m.From() == from && m.To() == to && m.PromotionType() == wantPromo {
			return MakeMove(b, m), nil
		}
	}
	return nil, newUciError(ErrNotLegalInPosition, "move is not legal in this position: "+s)
}
