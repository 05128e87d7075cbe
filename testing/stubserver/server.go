// Package stubserver is an in-process game service for tests: the REST routes under /api
// and the push channel under /ws, with rooms, a robot opponent and 3D win detection.
package stubserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	gorillaws "github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe3d-client/internal/entity"
	"github.com/rocketscienceinc/tictactoe3d-client/internal/transport/websocket"
)

// Move is one move request the server received.
type Move struct {
	GameID string
	Cell   entity.Coord
}

type game struct {
	mode     entity.Mode
	board    entity.Board
	turn     entity.Mark
	winner   entity.Mark
	status   entity.Status
	winLine  []entity.Coord
	joinCode string
	joined   bool
}

func (that *game) snapshot() entity.Snapshot {
	return entity.Snapshot{
		Board:   that.board,
		Turn:    that.turn,
		Winner:  that.winner,
		Status:  that.status,
		WinLine: that.winLine,
	}
}

type peer struct {
	conn    *gorillaws.Conn
	writeMu sync.Mutex
}

func (that *peer) send(msg websocket.Message) {
	that.writeMu.Lock()
	defer that.writeMu.Unlock()

	_ = that.conn.WriteJSON(msg)
}

type Server struct {
	server   *httptest.Server
	upgrader gorillaws.Upgrader

	mu        sync.Mutex
	games     map[string]*game
	codes     map[string]string
	joinCodes []string
	rooms     map[string]map[*peer]struct{}
	peers     map[*peer]struct{}
	events    []websocket.Message
	moves     []Move
	robot     bool
}

type Option func(*Server)

// WithJoinCodes - codes handed out to created games, in order. Random ones follow.
func WithJoinCodes(codes ...string) Option {
	return func(that *Server) {
		that.joinCodes = append(that.joinCodes, codes...)
	}
}

// WithoutRobot - single games wait for the test to move O through Play.
func WithoutRobot() Option {
	return func(that *Server) {
		that.robot = false
	}
}

func New(opts ...Option) *Server {
	srv := &Server{
		games: make(map[string]*game),
		codes: make(map[string]string),
		rooms: make(map[string]map[*peer]struct{}),
		peers: make(map[*peer]struct{}),
		robot: true,
	}

	for _, opt := range opts {
		opt(srv)
	}

	router := mux.NewRouter()
	api := router.PathPrefix("/api/game").Subrouter()
	api.HandleFunc("/new", srv.handleNew).Methods(http.MethodPost)
	api.HandleFunc("/join", srv.handleJoin).Methods(http.MethodPost)
	api.HandleFunc("/{id}/state", srv.handleState).Methods(http.MethodGet)
	api.HandleFunc("/{id}/move", srv.handleMove).Methods(http.MethodPost)
	router.HandleFunc("/ws", srv.handleSocket)

	srv.server = httptest.NewServer(router)

	return srv
}

// URL - service root, as configured in api-url.
func (that *Server) URL() string {
	return that.server.URL
}

// APIURL - REST base, including /api.
func (that *Server) APIURL() string {
	return that.server.URL + "/api"
}

func (that *Server) SocketURL() string {
	return "ws" + strings.TrimPrefix(that.server.URL, "http") + "/ws"
}

// Events - every frame clients sent on the push channel.
func (that *Server) Events() []websocket.Message {
	that.mu.Lock()
	defer that.mu.Unlock()

	return append([]websocket.Message(nil), that.events...)
}

// CountEvents - frames of the given event clients sent.
func (that *Server) CountEvents(event string) int {
	count := 0
	for _, msg := range that.Events() {
		if msg.Event == event {
			count++
		}
	}

	return count
}

func (that *Server) Moves() []Move {
	that.mu.Lock()
	defer that.mu.Unlock()

	return append([]Move(nil), that.moves...)
}

// RoomSize - push connections currently in the room of gameID.
func (that *Server) RoomSize(gameID string) int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return len(that.rooms[gameID])
}

func (that *Server) Snapshot(gameID string) (entity.Snapshot, bool) {
	that.mu.Lock()
	defer that.mu.Unlock()

	g, ok := that.games[gameID]
	if !ok {
		return entity.Snapshot{}, false
	}

	return g.snapshot(), true
}

// Play - applies a move as whoever holds the turn, bypassing the REST route.
func (that *Server) Play(gameID string, cell entity.Coord) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	g, ok := that.games[gameID]
	if !ok {
		return fmt.Errorf("game %s not found", gameID)
	}

	if err := g.apply(cell); err != nil {
		return err
	}

	that.broadcastLocked(gameID, websocket.EventGameUpdate, g.snapshot())

	return nil
}

// Broadcast - pushes event to every connection in the room of gameID.
func (that *Server) Broadcast(gameID, event string, payload any) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.broadcastLocked(gameID, event, payload)
}

// DropConnections - closes every push connection server-side.
func (that *Server) DropConnections() {
	that.mu.Lock()
	defer that.mu.Unlock()

	for p := range that.peers {
		_ = p.conn.Close()
	}
}

func (that *Server) Close() {
	that.DropConnections()
	that.server.Close()
}

func (that *Server) handleNew(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Mode entity.Mode `json:"mode"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || !req.Mode.IsValid() {
		writeError(w, http.StatusNotFound, "Invalid game type.")
		return
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	g := &game{
		mode:   req.Mode,
		turn:   entity.PlayerX,
		status: entity.StatusActive,
	}
	if req.Mode == entity.ModeDouble {
		g.status = entity.StatusWaiting
	}

	gameID := uuid.NewString()
	g.joinCode = that.nextJoinCodeLocked(gameID)

	that.games[gameID] = g
	that.codes[g.joinCode] = gameID

	writeJSON(w, http.StatusOK, map[string]string{"gameId": gameID, "joinCode": g.joinCode})
}

func (that *Server) handleJoin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Code string `json:"code"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	gameID, ok := that.codes[req.Code]
	g := that.games[gameID]
	if !ok || g == nil {
		writeError(w, http.StatusNotFound, "Invalid game code")
		return
	}

	if g.joined || g.mode != entity.ModeDouble {
		writeError(w, http.StatusBadRequest, "Game already full")
		return
	}

	g.joined = true
	g.status = entity.StatusActive
	that.broadcastLocked(gameID, websocket.EventGameUpdate, g.snapshot())

	writeJSON(w, http.StatusOK, map[string]string{"gameId": gameID})
}

func (that *Server) handleState(w http.ResponseWriter, r *http.Request) {
	that.mu.Lock()
	defer that.mu.Unlock()

	g, ok := that.games[mux.Vars(r)["id"]]
	if !ok {
		writeError(w, http.StatusNotFound, "Game not found")
		return
	}

	writeJSON(w, http.StatusOK, g.snapshot())
}

func (that *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	gameID := mux.Vars(r)["id"]

	var req struct {
		X *int `json:"x"`
		Y *int `json:"y"`
		Z *int `json:"z"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.X == nil || req.Y == nil || req.Z == nil {
		writeError(w, http.StatusBadRequest, "Missing coordinates")
		return
	}

	cell := entity.Coord{X: *req.X, Y: *req.Y, Z: *req.Z}

	that.mu.Lock()
	defer that.mu.Unlock()

	that.moves = append(that.moves, Move{GameID: gameID, Cell: cell})

	g, ok := that.games[gameID]
	if !ok {
		writeError(w, http.StatusNotFound, "Game not found")
		return
	}

	if err := g.apply(cell); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid move")
		return
	}

	if that.robot && g.mode == entity.ModeSingle && g.winner == entity.EmptyCell {
		g.robotMove()
	}

	that.broadcastLocked(gameID, websocket.EventGameUpdate, g.snapshot())

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (that *Server) handleSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	p := &peer{conn: conn}

	that.mu.Lock()
	that.peers[p] = struct{}{}
	that.mu.Unlock()

	defer func() {
		that.mu.Lock()
		delete(that.peers, p)
		for _, members := range that.rooms {
			delete(members, p)
		}
		that.mu.Unlock()

		_ = conn.Close()
	}()

	for {
		var msg websocket.Message
		if err = conn.ReadJSON(&msg); err != nil {
			return
		}

		that.handleEvent(p, msg)
	}
}

func (that *Server) handleEvent(p *peer, msg websocket.Message) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.events = append(that.events, msg)

	switch msg.Event {
	case websocket.EventJoin:
		var payload websocket.RoomPayload
		if json.Unmarshal(msg.Data, &payload) != nil {
			return
		}

		that.joinRoomLocked(payload.GameID, p)

		if g, ok := that.games[payload.GameID]; ok {
			that.broadcastLocked(payload.GameID, websocket.EventGameUpdate, g.snapshot())
		}

	case websocket.EventLeave:
		var payload websocket.RoomPayload
		if json.Unmarshal(msg.Data, &payload) != nil {
			return
		}

		if g, ok := that.games[payload.GameID]; ok && g.mode == entity.ModeDouble {
			if g.winner == entity.EmptyCell {
				g.status = entity.StatusWaiting
			}
			delete(that.rooms[payload.GameID], p)
			that.broadcastLocked(payload.GameID, websocket.EventPlayerLeft, websocket.PlayerLeftPayload{Status: string(g.status)})
		}

		delete(that.rooms[payload.GameID], p)

	case websocket.EventNewGame:
		var payload websocket.NewGamePayload
		if json.Unmarshal(msg.Data, &payload) != nil {
			return
		}

		if g, ok := that.games[payload.NewGameID]; ok && g.mode == entity.ModeDouble {
			g.joined = true
			g.status = entity.StatusActive
		}

		// membership carries over to the new game
		for member := range that.rooms[payload.OldGameID] {
			that.joinRoomLocked(payload.NewGameID, member)
		}
		delete(that.rooms, payload.OldGameID)

		that.broadcastLocked(payload.NewGameID, websocket.EventSwitchGame, websocket.SwitchGamePayload{GameID: payload.NewGameID})
	}
}

func (that *Server) joinRoomLocked(gameID string, p *peer) {
	members, ok := that.rooms[gameID]
	if !ok {
		members = make(map[*peer]struct{})
		that.rooms[gameID] = members
	}

	members[p] = struct{}{}
}

func (that *Server) broadcastLocked(gameID, event string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}

	for p := range that.rooms[gameID] {
		p.send(websocket.Message{Event: event, Data: data})
	}
}

func (that *Server) nextJoinCodeLocked(gameID string) string {
	if len(that.joinCodes) > 0 {
		code := that.joinCodes[0]
		that.joinCodes = that.joinCodes[1:]

		return code
	}

	return strings.ToUpper(strings.ReplaceAll(gameID, "-", "")[:6])
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
