package websocket

import (
	"context"
	"encoding/json"
	"time"

	"stembills-dashboard/internal/dto"
	"stembills-dashboard/internal/pkg/serverutils"
	"stembills-dashboard/pkg/dash"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 64 * 1024
	sendBuffer     = 64
)

// Client is a middleman between the websocket connection and the hub.
type Client struct {
	Hub *Hub

	// The websocket connection.
	Conn *websocket.Conn

	ID uuid.UUID

	// Buffered channel of outbound messages.
	Send chan []byte
}

func NewClient(hub *Hub, conn *websocket.Conn) *Client {
	return &Client{Hub: hub, Conn: conn, ID: uuid.New(), Send: make(chan []byte, sendBuffer)}
}

// readPump decodes update requests from the browser and queues the replies.
func (c *Client) readPump() {
	defer func() {
		c.Hub.remove(c)
		c.Conn.Close()
	}()
	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.Hub.logger.Warn("Client", "Unexpected close", map[string]interface{}{"client_id": c.ID, "error": err.Error()})
			}
			break
		}

		reply := c.handle(context.Background(), data)
		if !c.Hub.deliver(c, reply) {
			c.Hub.logger.Warn("Client", "Reply dropped", map[string]interface{}{"client_id": c.ID})
		}
	}
}

// handle turns one inbound frame into one outbound frame. Failures are
// reported to the browser rather than closing the connection.
func (c *Client) handle(ctx context.Context, data []byte) []byte {
	var req dash.UpdateRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return encode(dto.WsUpdateMessage{Error: "malformed update request: " + err.Error()})
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return encode(dto.WsUpdateMessage{Output: req.Output, Error: err.Error()})
	}

	resp, err := c.Hub.dispatcher.Update(ctx, req)
	if err != nil {
		return encode(dto.WsUpdateMessage{Output: req.Output, Error: err.Error()})
	}
	return encode(dto.WsUpdateMessage{Output: req.Output, Response: resp.Response})
}

func encode(msg dto.WsUpdateMessage) []byte {
	data, err := json.Marshal(msg)
	if err != nil {
		data, _ = json.Marshal(dto.WsUpdateMessage{Output: msg.Output, Error: err.Error()})
	}
	return data
}

// writePump pumps messages from the hub to the websocket connection.
// Every queued message goes out as its own frame.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub closed the channel.
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
