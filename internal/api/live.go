package api

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"partymenu/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// liveSession streams filter results back for every criteria frame the client sends
type liveSession struct {
	id     string
	conn   *websocket.Conn
	send   chan []byte
	mu     sync.Mutex
	closed bool
	api    *MenuAPI
	logger *zap.SugaredLogger
}

// liveResult is one frame sent back to the client
type liveResult struct {
	Session  string                `json:"session"`
	Criteria models.FilterCriteria `json:"criteria"`
	DishList
}

// handleWebSocket upgrades the request and starts the session pumps
func (m *MenuAPI) handleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		m.logger.Warnw("Failed to upgrade connection", "error", err)
		return
	}

	id := uuid.NewString()
	s := &liveSession{
		id:     id,
		conn:   conn,
		send:   make(chan []byte, 16),
		api:    m,
		logger: m.logger.With("session", id),
	}
	s.logger.Debug("Live filter session opened")

	go s.writePump()
	go s.readPump()
}

// readPump decodes criteria frames until the client goes away
func (s *liveSession) readPump() {
	defer func() {
		s.close()
		s.logger.Debug("Live filter session closed")
	}()

	s.conn.SetReadLimit(64 * 1024)
	s.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	s.conn.SetPongHandler(func(string) error {
		s.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		_, message, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				s.logger.Warnw("WebSocket error", "error", err)
			}
			return
		}
		s.handleMessage(message)
	}
}

// writePump writes queued frames and keeps the connection alive
func (s *liveSession) writePump() {
	ticker := time.NewTicker(30 * time.Second)
	defer func() {
		ticker.Stop()
		s.conn.Close()
	}()

	for {
		select {
		case message, ok := <-s.send:
			s.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				s.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := s.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			s.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// handleMessage recomputes the dish list for one criteria frame
func (s *liveSession) handleMessage(message []byte) {
	var criteria models.FilterCriteria
	if err := json.Unmarshal(message, &criteria); err != nil {
		s.sendJSON(gin.H{"session": s.id, "error": "invalid criteria: " + err.Error()})
		return
	}

	s.sendJSON(liveResult{
		Session:  s.id,
		Criteria: criteria,
		DishList: s.api.Filter("ws", criteria),
	})
}

func (s *liveSession) sendJSON(v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		s.logger.Errorw("Error marshaling frame", "error", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	select {
	case s.send <- data:
	default:
		s.logger.Warn("WebSocket buffer full, dropping frame")
	}
}

func (s *liveSession) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.closed = true
		close(s.send)
	}
}
