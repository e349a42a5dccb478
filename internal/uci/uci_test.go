package uci

import (
	"bufio"
	"os"
	"strings"
	"testing"

	"github.com/dkelso/chesscore/internal/engine"
)

func captureStdout(t *testing.T, f func()) []string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	old := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = old }()

	f()
	w.Close()

	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines
}

func TestHandlePositionAndGo(t *testing.T) {
	u := New(engine.NewEngine(1), nil)

	lines := captureStdout(t, func() {
		u.handlePosition([]string{"startpos", "moves", "e2e4", "e7e5"})
		u.handleGo([]string{"depth", "2"})
	})

	found := false
	for _, l := range lines {
		if strings.HasPrefix(l, "bestmove ") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a bestmove line, got: %v", lines)
	}
}

func TestHandleUCIIdentifies(t *testing.T) {
	u := New(engine.NewEngine(1), nil)

	lines := captureStdout(t, u.handleUCI)

	if len(lines) == 0 || !strings.HasPrefix(lines[0], "id name") {
		t.Errorf("expected id name line first, got: %v", lines)
	}
	if lines[len(lines)-1] != "uciok" {
		t.Errorf("expected final line uciok, got: %v", lines)
	}
}
