package websocket

import "github.com/gofiber/websocket/v2"

// ServeWs registers the connection and blocks until the browser goes away.
func ServeWs(hub *Hub, c *websocket.Conn) {
	client := NewClient(hub, c)
	if !hub.add(client) {
		c.Close()
		return
	}

	go client.writePump()
	client.readPump()
}
