package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"

	"GymSimulator/internal/view"
)

// ErrUnknownIntent is returned for a message type the game does not handle.
var ErrUnknownIntent = errors.New("unknown intent")

// Game is the set of player intents a connection can send.
type Game interface {
	Click()
	Buy(id string) error
	BuyPerk(id string) error
	Prestige() error
	Ascend() error
	ToggleStation(name string) error
	Reset()
	CloseOfflineReport()
	Snapshot() view.Snapshot
}

// Runner executes fn on the goroutine that owns the game and waits for it.
type Runner interface {
	Call(fn func()) error
}

// HandlerConfig tunes per-connection message limits.
type HandlerConfig struct {
	MessagesPerSec float64
	Burst          int
}

type clientMessage struct {
	Type string `json:"type"`
	ID   string `json:"id,omitempty"`
}

// Handler upgrades HTTP requests to websocket sessions that drive the game.
type Handler struct {
	game     Game
	loop     Runner
	hub      *Hub
	cfg      HandlerConfig
	upgrader websocket.Upgrader
}

func NewHandler(g Game, loop Runner, hub *Hub, cfg HandlerConfig) *Handler {
	return &Handler{
		game: g,
		loop: loop,
		hub:  hub,
		cfg:  cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[WARN] websocket upgrade: %v", err)
		return
	}

	c := h.hub.add()
	defer h.hub.remove(c)
	go writePump(conn, c.send)

	var snap view.Snapshot
	if err := h.loop.Call(func() { snap = h.game.Snapshot() }); err != nil {
		log.Printf("[WARN] initial snapshot: %v", err)
		return
	}
	h.hub.sendTo(c, serverMessage{Type: "snapshot", Snapshot: &snap})

	limiter := rate.NewLimiter(rate.Limit(h.cfg.MessagesPerSec), h.cfg.Burst)
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[WARN] websocket read: %v", err)
			}
			return
		}
		if !limiter.Allow() {
			h.reply(c, "Slow down, bro! Too many reps per second.")
			continue
		}

		var msg clientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			log.Printf("[WARN] malformed client message: %v", err)
			continue
		}

		var derr error
		if err := h.loop.Call(func() { derr = dispatch(h.game, msg) }); err != nil {
			log.Printf("[WARN] dispatch %s: %v", msg.Type, err)
			return
		}
		if errors.Is(derr, ErrUnknownIntent) {
			h.reply(c, fmt.Sprintf("Unknown command: %s", msg.Type))
		}
	}
}

// reply sends an error notice to one connection only.
func (h *Handler) reply(c *client, text string) {
	h.hub.sendTo(c, serverMessage{Type: "notice", Notice: &view.Notice{Kind: view.NoticeError, Text: text}})
}

// dispatch routes one client message to the matching intent. Rejections the
// game reports itself are returned for the caller to inspect.
func dispatch(g Game, msg clientMessage) error {
	switch msg.Type {
	case "click":
		g.Click()
	case "buy":
		return g.Buy(msg.ID)
	case "buyPerk":
		return g.BuyPerk(msg.ID)
	case "prestige":
		return g.Prestige()
	case "ascend":
		return g.Ascend()
	case "station":
		return g.ToggleStation(msg.ID)
	case "reset":
		g.Reset()
	case "closeOffline":
		g.CloseOfflineReport()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownIntent, msg.Type)
	}
	return nil
}

func writePump(conn *websocket.Conn, send <-chan []byte) {
	defer conn.Close()
	for data := range send {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Printf("[WARN] websocket write: %v", err)
			return
		}
	}
	_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}
