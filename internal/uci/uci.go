// Package uci implements a Universal Chess Interface protocol handler
// driving internal/engine over a line-oriented stdin/stdout loop. Time
// control is out of scope: "go" always searches to a fixed depth.
package uci

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dkelso/chesscore/internal/board"
	"github.com/dkelso/chesscore/internal/book"
	"github.com/dkelso/chesscore/internal/engine"
)

// UCI holds the protocol handler's session state.
type UCI struct {
	engine   *engine.Engine
	position *board.Board
	book     *book.Book

	positionHashes []uint64

	defaultDepth int
}

// New creates a UCI protocol handler around eng. ob may be nil to
// disable opening-book probing.
func New(eng *engine.Engine, ob *book.Book) *UCI {
	return &UCI{
		engine:       eng,
		position:     board.NewBoard(),
		book:         ob,
		defaultDepth: engine.DifficultyDepth[engine.Medium],
	}
}

// Run reads commands from stdin until "quit" or EOF.
func (u *UCI) Run() {
	scanner := bufio.NewScanner(os.Stdin)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "uci":
			u.handleUCI()
		case "isready":
			fmt.Println("readyok")
		case "ucinewgame":
			u.handleNewGame()
		case "position":
			u.handlePosition(args)
		case "go":
			u.handleGo(args)
		case "stop":
			u.engine.Stop()
		case "quit":
			return
		case "setoption":
			u.handleSetOption(args)
		case "d":
			fmt.Println(u.position.String())
		case "perft":
			u.handlePerft(args)
		}
	}
}

func (u *UCI) handleUCI() {
	fmt.Println("id name chesscore")
	fmt.Println("id author chesscore")
	fmt.Println()
	fmt.Println("option name Hash type spin default 64 min 1 max 4096")
	fmt.Println("option name OwnBook type check default true")
	fmt.Println("option name Debug type check default false")
	fmt.Println("uciok")
}

func (u *UCI) handleNewGame() {
	u.engine.Clear()
	u.position = board.NewBoard()
	u.positionHashes = []uint64{u.position.Hash}
}

// handlePosition supports:
//
//	position startpos
//	position startpos moves e2e4 e7e5
//	position fen <fen>
//	position fen <fen> moves e2e4
func (u *UCI) handlePosition(args []string) {
	if len(args) == 0 {
		return
	}

	u.positionHashes = nil
	var moveStart int

	switch args[0] {
	case "startpos":
		u.position = board.NewBoard()
		moveStart = len(args)
		for i, arg := range args {
			if arg == "moves" {
				moveStart = i + 1
				break
			}
		}
	case "fen":
		fenEnd := len(args)
		for i, arg := range args[1:] {
			if arg == "moves" {
				fenEnd = i + 1
				break
			}
		}
		pos, err := board.ParseFEN(strings.Join(args[1:fenEnd], " "))
		if err != nil {
			fmt.Fprintf(os.Stderr, "info string invalid FEN: %v\n", err)
			return
		}
		u.position = pos
		moveStart = len(args)
		for i, arg := range args {
			if arg == "moves" {
				moveStart = i + 1
				break
			}
		}
	default:
		return
	}

	u.positionHashes = append(u.positionHashes, u.position.Hash)

	if moveStart < len(args) {
		for _, s := range args[moveStart:] {
			m, err := board.ParseUCIMove(s, u.position)
			if err != nil {
				fmt.Fprintf(os.Stderr, "info string invalid move %s: %v\n", s, err)
				return
			}
			u.position.Make(m)
			u.positionHashes = append(u.positionHashes, u.position.Hash)
		}
	}
}

// handleGo probes the opening book first; on a miss it runs iterative
// deepening to the requested (or default) depth and prints "bestmove".
// A non-standard "noise" argument sets the leaf-evaluation noise this
// module's search accepts (search(board, depth, noise=0)); UCI has no
// dedicated keyword for it, so it's exposed the same way "depth" is.
func (u *UCI) handleGo(args []string) {
	depth := u.defaultDepth
	noise := 0
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "depth":
			if i+1 < len(args) {
				if d, err := strconv.Atoi(args[i+1]); err == nil && d > 0 {
					depth = d
				}
				i++
			}
		case "noise":
			if i+1 < len(args) {
				if n, err := strconv.Atoi(args[i+1]); err == nil && n >= 0 {
					noise = n
				}
				i++
			}
		}
	}

	if u.book != nil {
		if move, ok := u.book.Probe(u.position); ok {
			fmt.Printf("bestmove %s\n", move.String())
			return
		}
	}

	u.engine.SetRootHistory(u.positionHashes)
	u.engine.OnInfo = u.sendInfo

	bestMove := u.engine.SearchDepth(u.position, depth, noise)

	if bestMove == board.NoMove {
		fmt.Println("bestmove 0000")
		return
	}
	fmt.Printf("bestmove %s\n", bestMove.String())
}

func (u *UCI) sendInfo(info engine.SearchInfo) {
	var parts []string
	parts = append(parts, fmt.Sprintf("depth %d", info.Depth))

	switch {
	case info.Score > engine.MateScore-engine.MaxPly:
		mateIn := (engine.MateScore - info.Score + 1) / 2
		parts = append(parts, fmt.Sprintf("score mate %d", mateIn))
	case info.Score < -engine.MateScore+engine.MaxPly:
		mateIn := -(engine.MateScore + info.Score + 1) / 2
		parts = append(parts, fmt.Sprintf("score mate %d", mateIn))
	default:
		parts = append(parts, fmt.Sprintf("score cp %d", info.Score))
	}

	parts = append(parts, fmt.Sprintf("nodes %d", info.Nodes))
	parts = append(parts, fmt.Sprintf("time %d", info.Time.Milliseconds()))
	if info.Time > 0 {
		nps := uint64(float64(info.Nodes) / info.Time.Seconds())
		parts = append(parts, fmt.Sprintf("nps %d", nps))
	}
	parts = append(parts, fmt.Sprintf("hashfull %d", info.HashFull))

	if len(info.PV) > 0 {
		strs := make([]string, len(info.PV))
		for i, m := range info.PV {
			strs[i] = m.String()
		}
		parts = append(parts, "pv "+strings.Join(strs, " "))
	}

	fmt.Printf("info %s\n", strings.Join(parts, " "))
}

func (u *UCI) handleSetOption(args []string) {
	var name, value string
	readingName, readingValue := false, false

	for _, arg := range args {
		switch arg {
		case "name":
			readingName, readingValue = true, false
		case "value":
			readingName, readingValue = false, true
		default:
			if readingName {
				name = joinField(name, arg)
			} else if readingValue {
				value = joinField(value, arg)
			}
		}
	}

	switch strings.ToLower(name) {
	case "debug":
		board.DebugAssertions = strings.ToLower(value) == "true"
	case "ownbook":
		if strings.ToLower(value) != "true" {
			u.book = nil
		}
	}
}

func joinField(field, word string) string {
	if field == "" {
		return word
	}
	return field + " " + word
}

func (u *UCI) handlePerft(args []string) {
	depth := 5
	if len(args) > 0 {
		if d, err := strconv.Atoi(args[0]); err == nil {
			depth = d
		}
	}
	nodes := u.engine.Perft(u.position, depth)
	fmt.Printf("Nodes: %d\n", nodes)
}
