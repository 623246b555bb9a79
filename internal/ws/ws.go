package ws

import (
	"encoding/json"
	"log"
	"net/http"

	"ge-flipper/internal/engine"
	"ge-flipper/internal/flip"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The companion runs on the player's own machine.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Message is the envelope pushed by the companion client.
//
//	{"type": "offer", "offer": {...}}   one exchange-slot transition
//	{"type": "wallet", "coins": 1234}   currently visible gold
type Message struct {
	Type  string           `json:"type"`
	Offer *flip.SlotUpdate `json:"offer,omitempty"`
	Coins int64            `json:"coins,omitempty"`
}

// Handler accepts the companion connection and feeds its events into the
// engine. Messages are processed synchronously in the read loop, so slot
// updates apply exactly once and in delivery order.
type Handler struct {
	engine *engine.Engine
}

func NewHandler(e *engine.Engine) *Handler {
	return &Handler{engine: e}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()
	log.Printf("Companion connected from %s", conn.RemoteAddr())

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			log.Printf("Companion disconnected: %v", err)
			return
		}

		var msg Message
		if err := json.Unmarshal(raw, &msg); err != nil {
			log.Printf("Skipping malformed companion message: %v", err)
			continue
		}
		h.dispatch(msg)
	}
}

func (h *Handler) dispatch(msg Message) {
	switch msg.Type {
	case "offer":
		if msg.Offer == nil {
			log.Println("Skipping offer message without a payload")
			return
		}
		h.engine.HandleSlotUpdate(*msg.Offer)
	case "wallet":
		h.engine.HandleWallet(msg.Coins)
	default:
		log.Printf("Skipping companion message of unknown type %q", msg.Type)
	}
}
