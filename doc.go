// Package chess implements the core of a legal chess move generator:
// bitboard primitives, precomputed and sliding-piece attack tables, a
// staged legal move generator with check/pin handling, board state with
// incremental Zobrist hashing, and the FEN and UCI move-string boundary
// codecs.
//
// Move generation into a MoveList does not allocate. Board is an
// immutable value type; MakeMove returns a pointer to a new Board rather
// than mutating in place, and that Board is heap-allocated on every call.
// Attack tables and the Zobrist key schedule are initialized once at
// package load and are read-only afterwards, so they may be shared freely
// across goroutines. Search, evaluation, and the UCI protocol loop are
// out of scope; this package only supplies the move generator a chess
// engine builds on top of.
package chess
