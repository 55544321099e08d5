package playground

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait = 10 * time.Second
	pongWait  = 60 * time.Second
)

// handleWS answers every text message with the response of Pathfind. A
// malformed message gets an ErrorResponse and the connection stays open.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	conn.SetReadLimit(maxBodyBytes)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		kind, payload, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Debug("websocket closed", zap.Error(err))
			}
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		if kind != websocket.TextMessage {
			continue
		}

		var reply any
		var req PathRequest
		if err := json.Unmarshal(payload, &req); err != nil {
			reply = errorResponse(fmt.Errorf("%w: %w", ErrBadRequest, err))
		} else if resp, err := s.Pathfind(req); err != nil {
			reply = errorResponse(err)
		} else {
			reply = resp
		}

		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(reply); err != nil {
			s.logger.Debug("websocket write failed", zap.Error(err))
			return
		}
	}
}
