// Command chesscore-uci drives internal/engine over the UCI protocol on
// stdin/stdout.
package main

import (
	"flag"
	"log"

	"github.com/dkelso/chesscore/internal/book"
	"github.com/dkelso/chesscore/internal/engine"
	"github.com/dkelso/chesscore/internal/ttstore"
	"github.com/dkelso/chesscore/internal/uci"
)

var (
	hashMB   = flag.Int("hash", 64, "transposition table size in MB")
	noBook   = flag.Bool("nobook", false, "disable the opening book")
	noTTLoad = flag.Bool("nottcache", false, "disable loading/saving the transposition table cache")
)

func main() {
	flag.Parse()

	eng := engine.NewEngine(*hashMB)

	var ob *book.Book
	if !*noBook {
		var err error
		ob, err = book.Open()
		if err != nil {
			log.Printf("opening book unavailable: %v", err)
			ob = nil
		} else {
			defer ob.Close()
		}
	}

	var tts *ttstore.Store
	if !*noTTLoad {
		var err error
		tts, err = ttstore.Open()
		if err != nil {
			log.Printf("tt cache unavailable: %v", err)
			tts = nil
		} else {
			defer tts.Close()
			if err := tts.Load(eng.TT()); err != nil {
				log.Printf("tt cache load failed: %v", err)
			}
		}
	}

	protocol := uci.New(eng, ob)
	protocol.Run()

	if tts != nil {
		if err := tts.Save(eng.TT()); err != nil {
			log.Printf("tt cache save failed: %v", err)
		}
	}
}
