package chess

import "strings"

// Move packs a chess move into 16 bits: 6 bits source square, 6 bits
// destination square, 4 bits flag. The flag encoding mirrors the
// layout in the Rust move generator this core's semantics were
// checked against: bit 3 marks a promotion, bit 2 marks a capture, so
// IsPromotion/IsCapture are single-bit tests rather than table lookups.
type Move uint16

const (
	srcShift  = 0
	destShift = 6
	flagShift = 12

	srcMask  = 0x3F
	destMask = 0x3F << destShift
	flagMask = 0xF << flagShift
)

// MoveFlag enumerates the sixteen (fourteen used) move kinds.
type MoveFlag uint8

const (
	FlagQuiet MoveFlag = iota
	FlagDoublePush
	FlagKingCastle
	FlagQueenCastle
	FlagCapture
	FlagEnPassant
	_ // 6: unused, reserved
	_ // 7: unused, reserved
	FlagPromoN
	FlagPromoB
	FlagPromoR
	FlagPromoQ
	FlagPromoCaptureN
	FlagPromoCaptureB
	FlagPromoCaptureR
	FlagPromoCaptureQ
)

const (
	flagPromoBit   = 0x8
	flagCaptureBit = 0x4
)

// NullMove is the zero move, used as a "no move" sentinel.
const NullMove Move = 0

// NewMove packs a move from its source, destination and flag.
func NewMove(from, to Square, flag MoveFlag) Move {
	return Move(uint16(from)&srcMask | (uint16(to)&0x3F)<<destShift | uint16(flag)<<flagShift)
}

// From returns the source square.
func (m Move) From() Square { return Square(m & srcMask) }

// To returns the destination square.
func (m Move) To() Square { return Square((m & destMask) >> destShift) }

// Flag returns the move's flag.
func (m Move) Flag() MoveFlag { return MoveFlag((m & flagMask) >> flagShift) }

// IsNull reports whether this is the zero/sentinel move.
func (m Move) IsNull() bool { return m == NullMove }

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool { return uint8(m.Flag())&flagPromoBit != 0 }

// IsCapture reports whether the move captures a piece, including en
// passant.
func (m Move) IsCapture() bool {
	f := m.Flag()
	return f == FlagEnPassant || uint8(f)&flagCaptureBit != 0
}

// IsEnPassant reports whether the move is an en-passant capture.
func (m Move) IsEnPassant() bool { return m.Flag() == FlagEnPassant }

// IsCastle reports whether the move is a castling move.
func (m Move) IsCastle() bool { f := m.Flag(); return f == FlagKingCastle || f == FlagQueenCastle }

// IsDoublePush reports whether the move is a two-square pawn push.
func (m Move) IsDoublePush() bool { return m.Flag() == FlagDoublePush }

// PromotionType returns the colorless piece type a promotion move
// promotes to, or NoPieceType if the move is not a promotion.
func (m Move) PromotionType() PieceType {
	if !m.IsPromotion() {
		return NoPieceType
	}
	switch m.Flag() & 0x3 {
	case 0:
		return Knight
	case 1:
		return Bishop
	case 2:
		return Rook
	default:
		return Queen
	}
}

// IsTactical reports whether the move is tactical under the default
// filter policy: captures, en passant, and queen promotions (with or
// without capture) are tactical; every other move, including
// under-promotions, is quiet.
func (m Move) IsTactical() bool {
	switch m.Flag() {
	case FlagCapture, FlagEnPassant, FlagPromoQ, FlagPromoCaptureQ:
		return true
	default:
		return false
	}
}

// IsQuiet is the complement of IsTactical.
func (m Move) IsQuiet() bool { return !m.IsTactical() }

func promoFlag(pt PieceType, capture bool) MoveFlag {
	var base MoveFlag
	switch pt {
	case Knight:
		base = FlagPromoN
	case Bishop:
		base = FlagPromoB
	case Rook:
		base = FlagPromoR
	case Queen:
		base = FlagPromoQ
	}
	if capture {
		return base | flagPromoCaptureOffset
	}
	return base
}

const flagPromoCaptureOffset = MoveFlag(FlagPromoCaptureN - FlagPromoN)

// UCI renders the move as a UCI move string: "<from><to>[promo]", with
// the promotion letter lowercase (q, r, b, n) when present.
func (m Move) UCI() string {
	var sb strings.Builder
	sb.WriteString(m.From().String())
	sb.WriteString(m.To().String())
	if m.IsPromotion() {
		switch m.PromotionType() {
		case Knight:
			sb.WriteByte('n')
		case Bishop:
			sb.WriteByte('b')
		case Rook:
			sb.WriteByte('r')
		case Queen:
			sb.WriteByte('q')
		}
	}
	return sb.String()
}

func (m Move) String() string { return m.UCI() }
