package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Send/receive timing configuration and message size limits.
const (
	writeWait        = 10 * time.Second
	pongWait         = 60 * time.Second
	pingPeriod       = (pongWait * 9) / 10
	maxMsgSize       = 1 << 12 // 4 KB
	defaultInterval  = 5 * time.Second
	maxInterval      = 60 * time.Second
	maxIntervalMilli = 60_000
)

// Envelope used for WebSocket messages.
type wsEnvelope struct {
	Type  string      `json:"type"`
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

// Upgrader for HTTP -> WebSocket. Consider tightening CheckOrigin in production.
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true }, // TODO: restrict origins for production
}

// wsConnect streams the caller's flower state. The client authenticates with
// ?token= (browsers cannot set headers on the upgrade request). When the
// flower feature runs in interval mode, states are pushed on its ticks;
// otherwise a local ticker polls at the client's requested interval.
func (h *Handler) wsConnect(c *gin.Context) {
	userID, err := h.services.ParseToken(c.Query("token"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("ws_upgrade_failed", "err", err)
		}
		return
	}
	defer func() { _ = conn.Close() }()

	// Configure read limits and pong handler to extend the read deadline.
	conn.SetReadLimit(maxMsgSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	// Reader goroutine to handle control frames and detect disconnects.
	done := make(chan struct{})
	go h.startReader(conn, done)

	// Prefer the flower feature's own tick stream. The subscription's initial
	// synchronous notification covers the first send.
	ticks := make(chan time.Time, 1)
	cancel, subscribed := h.services.Watch(func(at time.Time) {
		select {
		case ticks <- at:
		default: // drop a tick rather than block the adapter's dispatch
		}
	})
	var tickerC <-chan time.Time // nil (never ready) when subscribed
	if subscribed {
		defer cancel()
	} else {
		ticker := time.NewTicker(h.parseInterval(c))
		defer ticker.Stop()
		tickerC = ticker.C
		// a plain ticker has no initial notification; prime the first send
		ticks <- time.Now()
	}

	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()

	for {
		select {
		case <-done:
			return
		case <-c.Request.Context().Done():
			return
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				if h.log != nil {
					h.log.Infow("ws_ping_failed", "err", err)
				}
				return
			}
		case <-tickerC:
			if err := h.sendFlowerState(c.Request.Context(), conn, userID); err != nil {
				if h.log != nil {
					h.log.Infow("ws_write_failed", "err", err)
				}
				return
			}
		case <-ticks:
			if err := h.sendFlowerState(c.Request.Context(), conn, userID); err != nil {
				if h.log != nil {
					h.log.Infow("ws_write_failed", "err", err)
				}
				return
			}
		}
	}
}

// parseInterval reads ?interval=5s or ?interval_ms=5000 with bounds.
func (h *Handler) parseInterval(c *gin.Context) time.Duration {
	if s := c.Query("interval"); s != "" {
		if d, err := time.ParseDuration(s); err == nil && d > 0 && d <= maxInterval {
			return d
		}
	}
	if ms := c.Query("interval_ms"); ms != "" {
		if v, err := strconv.Atoi(ms); err == nil && v > 0 && v <= maxIntervalMilli {
			return time.Duration(v) * time.Millisecond
		}
	}
	return defaultInterval
}

// startReader drains incoming messages to handle control frames and detect closure.
func (h *Handler) startReader(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if h.log != nil {
				h.log.Infow("ws_read_closed", "err", err)
			}
			return
		}
	}
}

// sendFlowerState derives and writes the current flower state with a write deadline.
func (h *Handler) sendFlowerState(ctx context.Context, conn *websocket.Conn, userID int) error {
	state, err := h.services.State(ctx, userID)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("ws_flower_state_failed", "err", err)
		}
		return err
	}
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(wsEnvelope{Type: "flower_state", Data: state})
}
