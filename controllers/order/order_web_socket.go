package ordercontroller

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/storelane/storefront-api/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

var (
	wsMu      sync.Mutex
	wsClients = make(map[*websocket.Conn]string) // conn -> store name
)

// GET /orders/ws — dashboard clients receive new orders for their store
// as they are placed.
func OrderWebSocketHandler(c *gin.Context) {
	store, _ := c.Get("store_name")
	storeName, _ := store.(string)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	wsMu.Lock()
	wsClients[conn] = storeName
	wsMu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			wsMu.Lock()
			delete(wsClients, conn)
			wsMu.Unlock()
			break
		}
	}
}

func broadcastNewOrder(order models.Order) {
	data, err := json.Marshal(order)
	if err != nil {
		return
	}
	wsMu.Lock()
	defer wsMu.Unlock()
	for client, store := range wsClients {
		if store != order.StoreName {
			continue
		}
		if err := client.WriteMessage(websocket.TextMessage, data); err != nil {
			// Dead connection, drop it instead of waiting on its read loop
			client.Close()
			delete(wsClients, client)
		}
	}
}
