package web

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Server serves the spectator websocket and a JSON snapshot endpoint.
type Server struct {
	hub    *Broadcaster
	logger *log.Logger
	srv    *http.Server
	ln     net.Listener
	nextID atomic.Uint64
}

// NewServer creates a spectator server for the given hub.
func NewServer(hub *Broadcaster, logger *log.Logger) *Server {
	s := &Server{hub: hub, logger: logger}
	s.srv = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)
	mux.HandleFunc("/snapshot", s.handleSnapshot)
	mux.HandleFunc("/health", s.handleHealth)
	return mux
}

// Start listens on addr and serves in the background.
func (s *Server) Start(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("web: listen %s: %w", addr, err)
	}
	s.ln = ln
	s.logger.Info("spectator server listening", "address", ln.Addr().String())

	go func() {
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("spectator server error", "error", err)
		}
	}()
	return nil
}

// Addr returns the bound address, or "" before Start.
func (s *Server) Addr() string {
	if s.ln == nil {
		return ""
	}
	return s.ln.Addr().String()
}

// Shutdown closes all spectators and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.hub.Close()
	return s.srv.Shutdown(ctx)
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	// Subscribe before the handshake completes so no frame is missed.
	id := fmt.Sprintf("spectator-%d", s.nextID.Add(1))
	send := s.hub.Register(id)

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.hub.Unregister(id)
		s.logger.Warn("upgrade failed", "error", err)
		return
	}

	c := &client{
		id:     id,
		conn:   conn,
		hub:    s.hub,
		send:   send,
		logger: s.logger,
	}
	s.logger.Info("spectator connected", "id", id, "remote", r.RemoteAddr)

	go c.writePump()
	go c.readPump()
}

func (s *Server) handleSnapshot(w http.ResponseWriter, _ *http.Request) {
	latest := s.hub.Latest()
	if latest == nil {
		http.Error(w, "no snapshot yet", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(latest) //nolint:errcheck // client may have gone away
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok")) //nolint:errcheck // client may have gone away
}

// client relays hub frames to one websocket connection.
type client struct {
	id     string
	conn   *websocket.Conn
	hub    *Broadcaster
	send   <-chan []byte
	logger *log.Logger
}

// readPump discards incoming messages and unregisters on disconnect.
func (c *client) readPump() {
	defer func() {
		c.hub.Unregister(c.id)
		c.conn.Close()
		c.logger.Info("spectator disconnected", "id", c.id)
	}()

	c.conn.SetReadLimit(maxMessageSize)
	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		c.logger.Warn("failed to set read deadline", "error", err)
	}
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Warn("websocket error", "id", c.id, "error", err)
			}
			return
		}
	}
}

// writePump sends frames and keepalive pings.
func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case frame, ok := <-c.send:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.logger.Warn("failed to set write deadline", "error", err)
			}
			if !ok {
				//nolint:errcheck // connection is closing anyway
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				c.logger.Debug("write failed", "id", c.id, "error", err)
				return
			}

		case <-ticker.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.logger.Warn("failed to set ping write deadline", "error", err)
			}
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.logger.Debug("ping failed", "id", c.id, "error", err)
				return
			}
		}
	}
}
