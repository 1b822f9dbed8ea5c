package socket

import (
	"log"

	socketio "github.com/googollee/go-socket.io"
)

// NewSocketServer initializes the Socket.IO relay. Clients join a room
// named after their pair id; messages are broadcast to the room, with
// persistence handled by the chat API.
func NewSocketServer() *socketio.Server {
	server := socketio.NewServer(nil)

	server.OnConnect("/", func(s socketio.Conn) error {
		log.Println("✅ Socket connected:", s.ID())
		return nil
	})

	server.OnEvent("/", "join", func(s socketio.Conn, pairID string) {
		if pairID == "" {
			log.Println("❌ Invalid pairId in join request")
			return
		}
		log.Printf("👥 Socket %s joined pair %s", s.ID(), pairID)
		s.Join(pairID)
	})

	server.OnEvent("/", "sendMessage", func(s socketio.Conn, message map[string]interface{}) {
		pairID, _ := message["pairId"].(string)
		if pairID == "" {
			return
		}
		server.BroadcastToRoom("/", pairID, "newMessage", message)
	})

	server.OnDisconnect("/", func(s socketio.Conn, reason string) {
		log.Println("❌ Socket disconnected:", s.ID(), reason)
	})

	return server
}
