// Package perft counts leaf nodes of the legal-move tree rooted at a
// position, the standard correctness and performance benchmark for a
// chess move generator.
package perft

import "github.com/oliverans/chesscore"

// Count returns the number of leaf positions reachable from b in
// exactly depth plies of legal moves. Count(b, 0) is 1 by definition.
func Count(b *chess.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	bufs := make([]chess.MoveList, depth+1)
	return count(b, depth, bufs)
}

func count(b *chess.Board, depth int, bufs []chess.MoveList) uint64 {
	if depth == 0 {
		return 1
	}
	list := &bufs[depth]
	list.Reset()
	chess.Generate(b, chess.FilterAll, list)

	if depth == 1 {
		return uint64(list.Len())
	}

	var nodes uint64
	for i := 0; i < list.Len(); i++ {
		next := chess.MakeMove(b, list.Get(i))
		nodes += count(next, depth-1, bufs)
	}
	return nodes
}

// Divide returns, for each legal root move, the leaf-node count
// reachable after playing it to depth-1 further plies. It is a
// debugging aid for isolating which root move diverges from a known
// engine's perft output.
func Divide(b *chess.Board, depth int) map[chess.Move]uint64 {
	result := make(map[chess.Move]uint64)
	if depth <= 0 {
		return result
	}
	var list chess.MoveList
	chess.Generate(b, chess.FilterAll, &list)
	for i := 0; i < list.Len(); i++ {
		m := list.Get(i)
		next := chess.MakeMove(b, m)
		result[m] = Count(next, depth-1)
	}
	return result
}
