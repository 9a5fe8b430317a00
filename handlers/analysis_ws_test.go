package handlers_test

import (
	"net"
	"testing"
	"time"

	"github.com/anjiri1684/mockprep/data"
	"github.com/anjiri1684/mockprep/models"
	fastws "github.com/fasthttp/websocket"
)

func serve(t *testing.T, api *testAPI) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Failed to listen: %v", err)
	}
	go func() { _ = api.app.Listener(ln) }()
	t.Cleanup(func() { _ = api.app.Shutdown() })
	return "ws://" + ln.Addr().String()
}

func dialAnalysis(t *testing.T, base string, interviewID string) *fastws.Conn {
	t.Helper()
	conn, _, err := fastws.DefaultDialer.Dial(base+"/api/v1/ws/interviews/"+interviewID+"/analysis", nil)
	if err != nil {
		t.Fatalf("Failed to dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	return conn
}

func TestAnalysisSocketStreamsSnapshot(t *testing.T) {
	api := newTestAPI(t)
	base := serve(t, api)
	id := data.ID("interview", "upcoming-1")

	conn := dialAnalysis(t, base, id.String())
	if err := conn.WriteJSON(map[string]string{"type": "auth", "token": token(t, data.AlexID, models.RoleStudent)}); err != nil {
		t.Fatalf("Failed to send auth: %v", err)
	}

	var snap map[string]interface{}
	if err := conn.ReadJSON(&snap); err != nil {
		t.Fatalf("Failed to read snapshot: %v", err)
	}
	if snap["tier"] != "basic" || snap["locked"] != false {
		t.Fatalf("Unexpected snapshot: %v", snap)
	}
	if metrics, _ := snap["metrics"].([]interface{}); len(metrics) != 4 {
		t.Errorf("Expected 4 metrics, got %v", snap["metrics"])
	}

	deadline := time.Now().Add(2 * time.Second)
	for api.h.Hub.Subscribers(id) != 1 {
		if time.Now().After(deadline) {
			t.Fatal("Expected the socket to be registered with the hub")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestAnalysisSocketRejectsBadToken(t *testing.T) {
	api := newTestAPI(t)
	base := serve(t, api)

	conn := dialAnalysis(t, base, data.ID("interview", "upcoming-1").String())
	if err := conn.WriteJSON(map[string]string{"type": "auth", "token": "not-a-token"}); err != nil {
		t.Fatalf("Failed to send auth: %v", err)
	}

	var reply map[string]interface{}
	if err := conn.ReadJSON(&reply); err != nil {
		t.Fatalf("Failed to read reply: %v", err)
	}
	if reply["error"] != "Invalid token" {
		t.Errorf("Expected invalid token error, got %v", reply)
	}
}

func TestAnalysisSocketHidesOtherInterviews(t *testing.T) {
	api := newTestAPI(t)
	base := serve(t, api)

	// scheduled-2 belongs to Jamie
	conn := dialAnalysis(t, base, data.ID("interview", "scheduled-2").String())
	if err := conn.WriteJSON(map[string]string{"type": "auth", "token": token(t, data.AlexID, models.RoleStudent)}); err != nil {
		t.Fatalf("Failed to send auth: %v", err)
	}

	var reply map[string]interface{}
	if err := conn.ReadJSON(&reply); err != nil {
		t.Fatalf("Failed to read reply: %v", err)
	}
	if reply["error"] != "Interview not found" {
		t.Errorf("Expected not found error, got %v", reply)
	}
}
