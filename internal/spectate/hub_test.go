package spectate

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/vmihailenco/msgpack/v5"

	"go-magic-survivor/internal/app"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met in time")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestSpectatorReceivesSnapshot(t *testing.T) {
	hub := NewHub(4)
	srv := httptest.NewServer(hub)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	conn, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer conn.CloseNow()
	waitFor(t, func() bool { return hub.Count() == 1 })

	game, err := app.NewGame(app.Options{Seed: 5})
	if err != nil {
		t.Fatal(err)
	}
	game.Start()
	game.Update(0.05)
	want := game.Snapshot()
	if err := hub.Publish(want); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	typ, data, err := conn.Read(ctx)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if typ != websocket.MessageBinary {
		t.Errorf("message type = %v, want binary", typ)
	}
	var got app.Snapshot
	if err := msgpack.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.EncounterID != want.EncounterID || got.Tick != want.Tick || got.Phase != want.Phase || got.Wave != want.Wave {
		t.Errorf("got %+v, want %+v", got, want)
	}
	if len(got.Player.Slots) != len(want.Player.Slots) {
		t.Errorf("slots = %d, want %d", len(got.Player.Slots), len(want.Player.Slots))
	}

	conn.Close(websocket.StatusNormalClosure, "")
	waitFor(t, func() bool { return hub.Count() == 0 })
}

func TestSlowSpectatorDropsFrames(t *testing.T) {
	hub := NewHub(2)
	slow := hub.register()
	fast := hub.register()

	for i := range 5 {
		hub.Broadcast([]byte{byte(i)})
		<-fast.send
	}
	if got := len(slow.send); got != 2 {
		t.Errorf("slow queue = %d, want 2", got)
	}
	if got := hub.Dropped(); got != 3 {
		t.Errorf("dropped = %d, want 3", got)
	}
	// В очереди остаются самые ранние кадры.
	if first := <-slow.send; first[0] != 0 {
		t.Errorf("first queued frame = %d, want 0", first[0])
	}
}

func TestNewHubDefaultBuffer(t *testing.T) {
	hub := NewHub(0)
	if hub.buffer != DefaultBuffer {
		t.Errorf("buffer = %d, want %d", hub.buffer, DefaultBuffer)
	}
}
