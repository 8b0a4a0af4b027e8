// Command fenprobe parses a FEN position and prints its board,
// Zobrist hash, and legal moves, exercising the FEN and UCI move
// boundary interfaces from the command line.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/oliverans/chesscore"
	"github.com/oliverans/chesscore/render"
)

func main() {
	fen := flag.String("fen", chess.StartFEN, "FEN string to probe")
	svgPath := flag.String("svg", "", "optional path to write an SVG board diagram")
	flag.Parse()

	board, err := chess.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse FEN: %v\n", err)
		os.Exit(2)
	}

	fmt.Print(render.ASCII(board))
	fmt.Printf("zobrist=%016x checkers=%d\n", board.Hash(), board.Checkers().PopCount())

	var moves chess.MoveList
	chess.Generate(board, chess.FilterAll, &moves)
	fmt.Printf("legal moves (%d):\n", moves.Len())
	for i := 0; i < moves.Len(); i++ {
		fmt.Printf(" %s", moves.Get(i))
	}
	fmt.Println()

	if *svgPath != "" {
		f, err := os.Create(*svgPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating svg: %v\n", err)
			os.Exit(2)
		}
		defer f.Close()
		render.SVG(f, board)
	}
}
