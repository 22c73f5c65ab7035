/*
File    : noctis/internal/playground/server.go
*/

// Package playground serves a tiny development server that streams live
// parse feedback over a websocket: a client sends a source text frame,
// the server tokenizes and parses it, and replies with the JSON tree or a
// diagnostic. Grounded in the teacher pack's eliasdb websocket-upgrade
// pattern (gorilla/websocket), adapted from a long-lived RPC channel to a
// one-shot-per-message parse/respond loop.
package playground

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/noctis-lang/noctis/internal/jsonast"
	"github.com/noctis-lang/noctis/lexer"
	"github.com/noctis-lang/noctis/parser"
)

var upgrader = websocket.Upgrader{
	Subprotocols:    []string{"noctis-playground"},
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	// The playground is a local development aid, not a public endpoint;
	// it accepts upgrade requests from any origin.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Response is what each parsed source frame turns into.
type Response struct {
	OK     bool        `json:"ok"`
	Error  string      `json:"error,omitempty"`
	Tokens []string    `json:"tokens,omitempty"`
	Module interface{} `json:"module,omitempty"`
}

// Server holds the playground's HTTP mux.
type Server struct {
	mux *http.ServeMux
}

// NewServer builds a Server with its routes registered.
func NewServer() *Server {
	s := &Server{mux: http.NewServeMux()}
	s.mux.HandleFunc("/parse", s.handleParse)
	s.mux.HandleFunc("/", s.handleIndex)
	return s
}

// ListenAndServe starts the HTTP server on addr.
func (s *Server) ListenAndServe(addr string) error {
	log.Printf("noctis playground listening on %s", addr)
	return http.ListenAndServe(addr, s.mux)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("Noctis playground: connect to /parse over a websocket and send source text frames.\n"))
}

// handleParse upgrades the connection and loops: read one text frame,
// parse it, write back a Response frame. The connection stays open
// across many parses so a client can stream keystrokes.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("playground: upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	for {
		msgType, payload, err := conn.ReadMessage()
		if err != nil {
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}

		resp := parseOne(string(payload))
		out, err := json.Marshal(resp)
		if err != nil {
			log.Printf("playground: marshal failed: %v", err)
			return
		}
		if err := conn.WriteMessage(websocket.TextMessage, out); err != nil {
			return
		}
	}
}

func parseOne(source string) Response {
	tokens, lexErr := lexer.Tokenize(source)
	if lexErr != nil {
		return Response{OK: false, Error: lexErr.Error()}
	}

	lexemes := make([]string, 0, len(tokens))
	for _, t := range tokens {
		lexemes = append(lexemes, t.Lexeme)
	}

	m, parseErr := parser.ParseTokens(tokens)
	if parseErr != nil {
		return Response{OK: false, Error: parseErr.Error(), Tokens: lexemes}
	}

	return Response{OK: true, Tokens: lexemes, Module: jsonast.ModuleOf(m)}
}
