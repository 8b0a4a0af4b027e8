package chess

// MoveFilter selects which subset of legal moves a generation call
// produces. It is a runtime value rather than a compile-time
// specialization: Go has no monomorphization over non-type parameters,
// so a plain int flag is the accepted fallback, matching the shape
// this package's generator was grounded on.
type MoveFilter int

const (
	FilterAll MoveFilter = iota
	FilterQuiet
	FilterTactical
)

func includeMove(m Move, filter MoveFilter) bool {
	switch filter {
	case FilterTactical:
		return m.IsTactical()
	case FilterQuiet:
		return m.IsQuiet()
	default:
		return true
	}
}

// pinAndCheckState holds the per-generation-call check/pin analysis
// shared by every piece loop.
type pinAndCheckState struct {
	inCheck     bool
	doubleCheck bool
	checkMask   BitBoard // squares a non-king move must land on; full board if not in check
	pinLine     [64]BitBoard
}

// computePinsAndCheckMask derives, from the already-known checkers set,
// the mask of squares that resolve a single check (capture the checker
// or block its ray) and the pin line of every absolutely pinned piece.
func computePinsAndCheckMask(b *Board) pinAndCheckState {
	us := b.side
	them := us.Other()
	ksq := b.KingSquare(us)
	occ := b.Occupied()
	ownOcc := b.colorBB[us]

	var st pinAndCheckState
	checkers := b.checkers
	st.inCheck = checkers != 0
	st.doubleCheck = st.inCheck && (checkers&(checkers-1)) != 0

	if st.inCheck && !st.doubleCheck {
		c := checkers.LSB()
		cbb := c.Bit()
		switch b.PieceAt(c).Type() {
		case Rook:
			st.checkMask = rayBetweenOrOn(ksq, c, rookRays)
		case Bishop:
			st.checkMask = rayBetweenOrOn(ksq, c, bishopRays)
		case Queen:
			if m := rayBetweenOrOn(ksq, c, rookRays); m != 0 {
				st.checkMask = m
			} else {
				st.checkMask = rayBetweenOrOn(ksq, c, bishopRays)
			}
		default:
			st.checkMask = cbb
		}
	} else if !st.inCheck {
		st.checkMask = Full
	}

	for d := 0; d < 4; d++ {
		findPin(ksq, d, rookRays, occ, ownOcc, b, us, them, true, &st.pinLine)
		findPin(ksq, d, bishopRays, occ, ownOcc, b, us, them, false, &st.pinLine)
	}
	return st
}

// rayBetweenOrOn returns the ray from king to checker, inclusive of the
// checker square, for whichever of the four directions in rays
// (rookRays or bishopRays) actually contains the checker.
func rayBetweenOrOn(ksq, c Square, rays [64][4]BitBoard) BitBoard {
	for d := 0; d < 4; d++ {
		if rays[ksq][d]&c.Bit() != 0 {
			return rays[ksq][d] &^ rays[c][d]
		}
	}
	return 0
}

// findPin walks ray direction d from the king; if the first occupant is
// ours and the next occupant beyond it is an enemy slider that attacks
// along this ray family, the first occupant is pinned to the line
// between the king and that slider.
func findPin(ksq Square, d int, rays [64][4]BitBoard, occ, ownOcc BitBoard, b *Board, us, them Color, rookLike bool, pinLine *[64]BitBoard) {
	increasing := d == 0 || d == 2
	if !rookLike {
		increasing = d == 0 || d == 1
	}

	ray := rays[ksq][d]
	blockers := ray & occ
	if blockers == 0 {
		return
	}
	var first Square
	if increasing {
		first = blockers.LSB()
	} else {
		first = blockers.MSB()
	}
	if first.Bit()&ownOcc == 0 {
		return
	}

	beyond := rays[first][d] & occ
	if beyond == 0 {
		return
	}
	var next Square
	if increasing {
		next = beyond.LSB()
	} else {
		next = beyond.MSB()
	}

	p := b.PieceAt(next)
	if p.Color() != them {
		return
	}
	isSlider := p.Type() == Queen || (rookLike && p.Type() == Rook) || (!rookLike && p.Type() == Bishop)
	if !isSlider {
		return
	}
	pinLine[first] = rays[ksq][d] &^ rays[next][d]
}

// Generate appends every legal move matching filter, for the side to
// move in b, into dst. dst is not reset first; callers that want a
// fresh list call dst.Reset() themselves.
func Generate(b *Board, filter MoveFilter, dst *MoveList) {
	us := b.side
	them := us.Other()
	ownOcc := b.colorBB[us]
	oppOcc := b.colorBB[them]
	occ := ownOcc | oppOcc

	st := computePinsAndCheckMask(b)

	generatePawnMoves(b, us, them, occ, oppOcc, st, filter, dst)

	if !st.doubleCheck {
		generateKnightMoves(b, us, ownOcc, oppOcc, st, filter, dst)
		generateSliderMoves(b, us, Bishop, ownOcc, oppOcc, occ, st, filter, dst)
		generateSliderMoves(b, us, Rook, ownOcc, oppOcc, occ, st, filter, dst)
		generateSliderMoves(b, us, Queen, ownOcc, oppOcc, occ, st, filter, dst)
	}

	generateKingMoves(b, us, them, ownOcc, oppOcc, occ, st, filter, dst)
	if !st.inCheck {
		generateCastling(b, us, occ, filter, dst)
	}
}

func targetsFor(from Square, attacks BitBoard, ownOcc BitBoard, st pinAndCheckState) BitBoard {
	targets := attacks &^ ownOcc
	if pin := st.pinLine[from]; pin != 0 {
		targets &= pin
	}
	if st.inCheck {
		targets &= st.checkMask
	}
	return targets
}

func generateKnightMoves(b *Board, us Color, ownOcc, oppOcc BitBoard, st pinAndCheckState, filter MoveFilter, dst *MoveList) {
	knights := b.Pieces(us, Knight)
	for knights != 0 {
		var from Square
		from, knights = knights.PopLSB()
		targets := targetsFor(from, knightAttacks[from], ownOcc, st)
		emitTargets(from, targets, oppOcc, filter, dst)
	}
}

func generateSliderMoves(b *Board, us Color, pt PieceType, ownOcc, oppOcc, occ BitBoard, st pinAndCheckState, filter MoveFilter, dst *MoveList) {
	pieces := b.Pieces(us, pt)
	for pieces != 0 {
		var from Square
		from, pieces = pieces.PopLSB()
		var attacks BitBoard
		switch pt {
		case Bishop:
			attacks = BishopAttacks(from, occ)
		case Rook:
			attacks = RookAttacks(from, occ)
		case Queen:
			attacks = QueenAttacks(from, occ)
		}
		targets := targetsFor(from, attacks, ownOcc, st)
		emitTargets(from, targets, oppOcc, filter, dst)
	}
}

func emitTargets(from Square, targets, oppOcc BitBoard, filter MoveFilter, dst *MoveList) {
	for targets != 0 {
		var to Square
		to, targets = targets.PopLSB()
		flag := FlagQuiet
		if to.Bit()&oppOcc != 0 {
			flag = FlagCapture
		}
		m := NewMove(from, to, flag)
		if includeMove(m, filter) {
			dst.Add(m)
		}
	}
}

func generateKingMoves(b *Board, us, them Color, ownOcc, oppOcc, occ BitBoard, st pinAndCheckState, filter MoveFilter, dst *MoveList) {
	from := b.KingSquare(us)
	targets := kingAttacks[from] &^ ownOcc
	for targets != 0 {
		var to Square
		to, targets = targets.PopLSB()
		occAfter := (occ &^ from.Bit() &^ to.Bit()) | to.Bit()
		if isSquareAttacked(occAfter, &b.board, &b.pieceBB, &b.colorBB, to, them) {
			continue
		}
		flag := FlagQuiet
		if to.Bit()&oppOcc != 0 {
			flag = FlagCapture
		}
		m := NewMove(from, to, flag)
		if includeMove(m, filter) {
			dst.Add(m)
		}
	}
}

// castling square/mask constants, White on ranks 0, Black on rank 7.
var (
	castleKingPath  = [2]BitBoard{Square(5).Bit() | Square(6).Bit(), Square(61).Bit() | Square(62).Bit()}
	castleQueenPath = [2]BitBoard{Square(1).Bit() | Square(2).Bit() | Square(3).Bit(), Square(57).Bit() | Square(58).Bit() | Square(59).Bit()}
	castleKingSafe  = [2][2]Square{{4, 6}, {60, 62}} // squares the king passes through/lands on, inclusive of start
	castleQueenSafe = [2][2]Square{{2, 4}, {58, 60}}
	castleKingTo    = [2]Square{6, 62}
	castleQueenTo   = [2]Square{2, 58}
	castleRight     = [2][2]CastlingRights{{CastleWhiteK, CastleWhiteQ}, {CastleBlackK, CastleBlackQ}}
	castleRookFrom  = [2][2]Square{{7, 0}, {63, 56}} // king-side, queen-side rook home square
)

func generateCastling(b *Board, us Color, occ BitBoard, filter MoveFilter, dst *MoveList) {
	if filter == FilterTactical {
		return
	}
	them := us.Other()
	ksq := b.KingSquare(us)
	rights := castleRight[us]
	rookHome := castleRookFrom[us]

	if b.castling.Has(rights[0]) && occ&castleKingPath[us] == 0 && b.PieceAt(rookHome[0]) == MakePiece(us, Rook) {
		if !anyAttacked(b, castleKingSafe[us][0], castleKingSafe[us][1], them, occ) {
			dst.Add(NewMove(ksq, castleKingTo[us], FlagKingCastle))
		}
	}
	if b.castling.Has(rights[1]) && occ&castleQueenPath[us] == 0 && b.PieceAt(rookHome[1]) == MakePiece(us, Rook) {
		lo, hi := castleQueenSafe[us][0], castleQueenSafe[us][1]
		if lo > hi {
			lo, hi = hi, lo
		}
		if !anyAttacked(b, lo, hi, them, occ) {
			dst.Add(NewMove(ksq, castleQueenTo[us], FlagQueenCastle))
		}
	}
}

func anyAttacked(b *Board, lo, hi Square, by Color, occ BitBoard) bool {
	for sq := lo; sq <= hi; sq++ {
		if isSquareAttacked(occ, &b.board, &b.pieceBB, &b.colorBB, sq, by) {
			return true
		}
	}
	return false
}

func generatePawnMoves(b *Board, us, them Color, occ, oppOcc BitBoard, st pinAndCheckState, filter MoveFilter, dst *MoveList) {
	pawns := b.Pieces(us, Pawn)
	promoRank := Rank(7)
	startRank := Rank(1)
	if us == Black {
		promoRank = Rank(0)
		startRank = Rank(6)
	}

	for pawns != 0 {
		var from Square
		from, pawns = pawns.PopLSB()
		pin := st.pinLine[from]

		oneBB := from.Bit().UpFor(us)
		if oneBB != 0 && occ&oneBB == 0 {
			one := oneBB.LSB()
			legal := (pin == 0 || pin&oneBB != 0) && (!st.inCheck || st.checkMask&oneBB != 0)
			if legal {
				emitPawnAdvance(from, one, one.Rank() == promoRank, filter, dst)
			}
			if from.Rank() == startRank {
				twoBB := oneBB.UpFor(us)
				if twoBB != 0 && occ&twoBB == 0 {
					legal2 := (pin == 0 || pin&twoBB != 0) && (!st.inCheck || st.checkMask&twoBB != 0)
					if legal2 && filter != FilterTactical {
						dst.Add(NewMove(from, twoBB.LSB(), FlagDoublePush))
					}
				}
			}
		}

		caps := pawnAttacks[us][from] & oppOcc
		for caps != 0 {
			var to Square
			to, caps = caps.PopLSB()
			if pin != 0 && pin&to.Bit() == 0 {
				continue
			}
			if st.inCheck && st.checkMask&to.Bit() == 0 {
				continue
			}
			emitPawnCapture(from, to, to.Rank() == promoRank, filter, dst)
		}

		if b.epSquare != NoSquare && pawnAttacks[us][from]&b.epSquare.Bit() != 0 {
			if pin == 0 || pin&b.epSquare.Bit() != 0 {
				if enPassantIsLegal(b, us, them, occ, from, b.epSquare) {
					m := NewMove(from, b.epSquare, FlagEnPassant)
					if includeMove(m, filter) {
						dst.Add(m)
					}
				}
			}
		}
	}
}

func emitPawnAdvance(from, to Square, promotes bool, filter MoveFilter, dst *MoveList) {
	if promotes {
		if filter == FilterTactical {
			dst.Add(NewMove(from, to, FlagPromoQ))
			return
		}
		for _, f := range []MoveFlag{FlagPromoN, FlagPromoB, FlagPromoR, FlagPromoQ} {
			m := NewMove(from, to, f)
			if includeMove(m, filter) {
				dst.Add(m)
			}
		}
		return
	}
	if filter != FilterTactical {
		dst.Add(NewMove(from, to, FlagQuiet))
	}
}

func emitPawnCapture(from, to Square, promotes bool, filter MoveFilter, dst *MoveList) {
	if promotes {
		for _, f := range []MoveFlag{FlagPromoCaptureN, FlagPromoCaptureB, FlagPromoCaptureR, FlagPromoCaptureQ} {
			m := NewMove(from, to, f)
			if includeMove(m, filter) {
				dst.Add(m)
			}
		}
		return
	}
	m := NewMove(from, to, FlagCapture)
	if includeMove(m, filter) {
		dst.Add(m)
	}
}

// enPassantIsLegal simulates the capture's occupancy change (mover
// gone, captured pawn gone, mover now on the ep square) and confirms
// the king is not left in check. This is the only case where a pin
// mask along the capture ray isn't enough: a horizontally pinned pawn
// can be exposed to a rook/queen attack only once both pawns leave the
// rank simultaneously.
//
// Only rook/queen and bishop/queen attacks are recomputed against the
// post-capture occupancy. Pawn, knight and king attackers can't be
// newly created by this capture, and checking them against the stale
// pieceBB/colorBB (which still holds the captured pawn) would false-
// positive when that pawn is itself the checker being captured.
func enPassantIsLegal(b *Board, us, them Color, occ BitBoard, from, epSq Square) bool {
	capturedSq := epSq.Bit().DownFor(us).LSB()
	occAfter := occ &^ from.Bit() &^ capturedSq.Bit() | epSq.Bit()
	ksq := b.KingSquare(us)
	rq := (b.pieceBB[Rook] | b.pieceBB[Queen]) & b.colorBB[them]
	if rq != 0 && RookAttacks(ksq, occAfter)&rq != 0 {
		return false
	}
	bq := (b.pieceBB[Bishop] | b.pieceBB[Queen]) & b.colorBB[them]
	if bq != 0 && BishopAttacks(ksq, occAfter)&bq != 0 {
		return false
	}
	return true
}
