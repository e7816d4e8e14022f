package transport

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"GymSimulator/internal/scheduler"
	"GymSimulator/internal/view"
)

type fakeGame struct {
	hub      *Hub
	clicks   int
	bought   []string
	perks    []string
	stations []string
	resets   int
}

func (f *fakeGame) Click() {
	f.clicks++
	f.hub.Render(view.Snapshot{Reps: "1 REPS"})
}
func (f *fakeGame) Buy(id string) error     { f.bought = append(f.bought, id); return nil }
func (f *fakeGame) BuyPerk(id string) error { f.perks = append(f.perks, id); return nil }
func (f *fakeGame) Prestige() error         { return nil }
func (f *fakeGame) Ascend() error           { return nil }
func (f *fakeGame) ToggleStation(name string) error {
	f.stations = append(f.stations, name)
	return nil
}
func (f *fakeGame) Reset()                  { f.resets++ }
func (f *fakeGame) CloseOfflineReport()     {}
func (f *fakeGame) Snapshot() view.Snapshot { return view.Snapshot{Reps: "0 REPS"} }

type fixture struct {
	game *fakeGame
	loop *scheduler.Loop
	conn *websocket.Conn
}

func newFixture(t *testing.T, cfg HandlerConfig) *fixture {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	loop := scheduler.NewLoop(16)
	go loop.Run(ctx)

	hub := NewHub()
	g := &fakeGame{hub: hub}
	server := httptest.NewServer(NewHandler(g, loop, hub, cfg))
	t.Cleanup(server.Close)

	conn, _, err := websocket.DefaultDialer.Dial(websocketURL(server.URL), nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	f := &fixture{game: g, loop: loop, conn: conn}
	msg := f.read(t)
	require.Equal(t, "snapshot", msg.Type)
	require.Equal(t, "0 REPS", msg.Snapshot.Reps)
	return f
}

func websocketURL(httpURL string) string {
	return "ws" + strings.TrimPrefix(httpURL, "http")
}

func (f *fixture) send(t *testing.T, msg clientMessage) {
	t.Helper()
	require.NoError(t, f.conn.WriteJSON(msg))
}

func (f *fixture) read(t *testing.T) serverMessage {
	t.Helper()
	require.NoError(t, f.conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg serverMessage
	require.NoError(t, f.conn.ReadJSON(&msg))
	return msg
}

// inLoop reads fake game state from the loop goroutine.
func (f *fixture) inLoop(t *testing.T, fn func(g *fakeGame)) {
	t.Helper()
	require.NoError(t, f.loop.Call(func() { fn(f.game) }))
}

func TestIntentsAreDispatched(t *testing.T) {
	f := newFixture(t, HandlerConfig{MessagesPerSec: 100, Burst: 100})

	f.send(t, clientMessage{Type: "buy", ID: "proteinShake"})
	f.send(t, clientMessage{Type: "buyPerk", ID: "eventChaser"})
	f.send(t, clientMessage{Type: "station", ID: "metal"})
	f.send(t, clientMessage{Type: "reset"})
	f.send(t, clientMessage{Type: "click"})

	msg := f.read(t)
	assert.Equal(t, "snapshot", msg.Type)
	assert.Equal(t, "1 REPS", msg.Snapshot.Reps)

	f.inLoop(t, func(g *fakeGame) {
		assert.Equal(t, 1, g.clicks)
		assert.Equal(t, []string{"proteinShake"}, g.bought)
		assert.Equal(t, []string{"eventChaser"}, g.perks)
		assert.Equal(t, []string{"metal"}, g.stations)
		assert.Equal(t, 1, g.resets)
	})
}

func TestUnknownIntentRepliesWithNotice(t *testing.T) {
	f := newFixture(t, HandlerConfig{MessagesPerSec: 100, Burst: 100})

	f.send(t, clientMessage{Type: "bench"})

	msg := f.read(t)
	require.Equal(t, "notice", msg.Type)
	assert.Equal(t, view.NoticeError, msg.Notice.Kind)
	assert.Contains(t, msg.Notice.Text, "bench")
}

func TestMalformedMessageIsIgnored(t *testing.T) {
	f := newFixture(t, HandlerConfig{MessagesPerSec: 100, Burst: 100})

	require.NoError(t, f.conn.WriteMessage(websocket.TextMessage, []byte("{not json")))
	f.send(t, clientMessage{Type: "click"})

	msg := f.read(t)
	assert.Equal(t, "snapshot", msg.Type)
	f.inLoop(t, func(g *fakeGame) { assert.Equal(t, 1, g.clicks) })
}

func TestRateLimitDropsExcessMessages(t *testing.T) {
	f := newFixture(t, HandlerConfig{MessagesPerSec: 0.001, Burst: 2})

	f.send(t, clientMessage{Type: "reset"})
	f.send(t, clientMessage{Type: "reset"})
	f.send(t, clientMessage{Type: "reset"})

	msg := f.read(t)
	require.Equal(t, "notice", msg.Type)
	assert.Contains(t, msg.Notice.Text, "Slow down")
	f.inLoop(t, func(g *fakeGame) { assert.Equal(t, 2, g.resets) })
}

func TestDispatchUnknown(t *testing.T) {
	err := dispatch(&fakeGame{hub: NewHub()}, clientMessage{Type: "deadlift"})
	assert.ErrorIs(t, err, ErrUnknownIntent)
}

func TestHubBroadcastsToEveryClient(t *testing.T) {
	hub := NewHub()
	a, b := hub.add(), hub.add()
	assert.Equal(t, 2, hub.Clients())

	hub.Notify(view.Notice{Kind: view.NoticeCongrats, Text: "gains"})
	assert.Len(t, a.send, 1)
	assert.Len(t, b.send, 1)

	hub.remove(a)
	hub.remove(a)
	hub.Render(view.Snapshot{})
	assert.Equal(t, 1, hub.Clients())
	assert.Len(t, b.send, 2)
}
