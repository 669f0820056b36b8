// Package fakeserver provides an in-process chess server for tests.
//
// It speaks the same routes as the real server (/hello, /position, /move)
// and plays moves with github.com/notnil/chess. Individual routes can be
// scripted with raw replies to simulate a misbehaving server.
package fakeserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/notnil/chess"
)

// StartFEN is the standard starting position as the server reports it.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Move is a move request the server received.
type Move struct {
	Src string `json:"src"`
	Dst string `json:"dst"`
}

type reply struct {
	status int
	body   string
}

// Server is a chess server backed by an httptest.Server.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	game     *chess.Game
	moves    []Move
	scripted map[string]reply
}

// New starts a server holding the starting position. Callers must Close it.
func New() *Server {
	s := &Server{
		game:     chess.NewGame(),
		scripted: make(map[string]reply),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /hello", s.handleHello)
	mux.HandleFunc("GET /position", s.handlePosition)
	mux.HandleFunc("POST /move", s.handleMove)
	s.Server = httptest.NewServer(mux)
	return s
}

// SetPosition replaces the current game with one starting from fen.
func (s *Server) SetPosition(fen string) error {
	opt, err := chess.FEN(fen)
	if err != nil {
		return fmt.Errorf("parsing FEN: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.game = chess.NewGame(opt)
	return nil
}

// Position returns the current FEN.
func (s *Server) Position() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Position().String()
}

// Respond makes every request to path ("/position", "/move", "/hello")
// answer with status and the raw body instead of the normal behavior.
func (s *Server) Respond(path string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scripted[path] = reply{status: status, body: body}
}

// Moves returns the move requests received so far, scripted or not.
func (s *Server) Moves() []Move {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Move(nil), s.moves...)
}

func (s *Server) handleHello(w http.ResponseWriter, r *http.Request) {
	if s.writeScripted(w, r.URL.Path) {
		return
	}
	writeJSON(w, map[string]string{"message": "hello"})
}

func (s *Server) handlePosition(w http.ResponseWriter, r *http.Request) {
	if s.writeScripted(w, r.URL.Path) {
		return
	}
	writeJSON(w, map[string]string{"position_fen": s.Position()})
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	var m Move
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 16<<10)).Decode(&m); err != nil {
		http.Error(w, "bad request body", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	s.moves = append(s.moves, m)
	s.mu.Unlock()

	if s.writeScripted(w, r.URL.Path) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.play(m); err != nil {
		// Same shape the real server uses for a refused move.
		writeJSON(w, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, map[string]any{
		"position_fen": s.game.Position().String(),
		"error":        nil,
	})
}

// play applies m to the game. Promotions default to a queen.
func (s *Server) play(m Move) error {
	for _, valid := range s.game.ValidMoves() {
		if valid.S1().String() != m.Src || valid.S2().String() != m.Dst {
			continue
		}
		if p := valid.Promo(); p != chess.NoPieceType && p != chess.Queen {
			continue
		}
		return s.game.Move(valid)
	}
	return fmt.Errorf("illegal move %s => %s", m.Src, m.Dst)
}

func (s *Server) writeScripted(w http.ResponseWriter, path string) bool {
	s.mu.Lock()
	rep, ok := s.scripted[path]
	s.mu.Unlock()
	if !ok {
		return false
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(rep.status)
	fmt.Fprint(w, rep.body)
	return true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
