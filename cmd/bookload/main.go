// Command bookload populates the opening book database from a JSON file
// mapping position keys (the first four FEN fields: piece placement,
// side to move, castling rights, en passant square — see
// book.PositionKey) to weighted candidate moves:
//
//	{
//	  "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -": [
//	    {"uci": "e2e4", "weight": 100}, {"uci": "d2d4", "weight": 80}
//	  ],
//	  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3": [
//	    {"uci": "c7c5", "weight": 100}
//	  ]
//	}
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/dkelso/chesscore/internal/book"
)

var (
	input = flag.String("input", "", "path to the book JSON file")
	dbDir = flag.String("db", "", "book database directory (default: module data dir)")
)

func main() {
	flag.Parse()
	if *input == "" {
		log.Fatal("-input is required")
	}

	data, err := os.ReadFile(*input)
	if err != nil {
		log.Fatalf("reading %s: %v", *input, err)
	}

	var entries map[string][]book.Candidate
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Fatalf("parsing %s: %v", *input, err)
	}

	var ob *book.Book
	if *dbDir != "" {
		ob, err = book.OpenAt(*dbDir)
	} else {
		ob, err = book.Open()
	}
	if err != nil {
		log.Fatalf("opening book database: %v", err)
	}
	defer ob.Close()

	for key, candidates := range entries {
		if err := ob.Put(key, candidates); err != nil {
			log.Fatalf("storing position %q: %v", key, err)
		}
	}

	size, err := ob.Size()
	if err != nil {
		log.Fatalf("reading book size: %v", err)
	}
	log.Printf("loaded %d positions (%d total)", len(entries), size)
}
