package websocket

import (
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

func TestHubRegisterUnregister(t *testing.T) {
	hub := NewHub()
	a := &websocket.Conn{}
	b := &websocket.Conn{}

	hub.Register("s1", a)
	hub.Register("s1", b)
	require.Len(t, hub.conns["s1"], 2)

	hub.Unregister("s1", a)
	require.Len(t, hub.conns["s1"], 1)

	hub.Unregister("s1", b)
	require.NotContains(t, hub.conns, "s1")

	// Unregistering an unknown session must not panic.
	hub.Unregister("ghost", a)
}
