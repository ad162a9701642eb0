package handlers

import (
	"log"
	"net/http"

	"github.com/Dosada05/swiss-tournament/broadcast"
	"github.com/gorilla/websocket"
)

type WebSocketHandler struct {
	hub      *broadcast.Hub
	upgrader websocket.Upgrader
}

// NewWebSocketHandler accepts connections only from allowedOrigins; "*" allows any origin.
func NewWebSocketHandler(hub *broadcast.Hub, allowedOrigins []string) *WebSocketHandler {
	allowAll := false
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		if origin == "*" {
			allowAll = true
		}
		allowed[origin] = true
	}

	return &WebSocketHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return allowAll || origin == "" || allowed[origin]
			},
		},
	}
}

// ServeWs подписывает клиента на события турнира (таблица, пары, результаты).
func (h *WebSocketHandler) ServeWs(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// upgrader.Upgrade сам отправляет HTTP ошибку клиенту, так что здесь просто логируем.
		log.Printf("Failed to upgrade websocket connection: %v", err)
		return
	}

	client := broadcast.NewClient(h.hub, conn)
	if !h.hub.Subscribe(client) {
		conn.Close()
		return
	}

	go client.WritePump()
	go client.ReadPump()
}
