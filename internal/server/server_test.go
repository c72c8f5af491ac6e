package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/coder/quartz"
	"github.com/rs/zerolog"

	"github.com/ayusman/janken/internal/app"
	"github.com/ayusman/janken/internal/game"
)

func newTestServer(t *testing.T) (*httptest.Server, *app.App) {
	t.Helper()

	session := game.NewSession(game.Easy, game.NewSeededStrategist(1))
	controller := game.NewController(session, quartz.NewMock(t))
	a := app.New(app.Config{Logger: zerolog.Nop()}, session, controller)

	srv := New(Config{App: a, Logger: zerolog.Nop()})
	ts := httptest.NewServer(srv)
	t.Cleanup(ts.Close)
	return ts, a
}

func getState(t *testing.T, ts *httptest.Server) map[string]any {
	t.Helper()

	resp, err := ts.Client().Get(ts.URL + "/api/state")
	if err != nil {
		t.Fatalf("GET /api/state error = %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET /api/state status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	var state map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&state); err != nil {
		t.Fatalf("decoding state: %v", err)
	}
	return state
}

func TestAPI_State(t *testing.T) {
	ts, _ := newTestServer(t)

	state := getState(t, ts)

	if state["armed"] != false {
		t.Errorf("armed = %v, want false", state["armed"])
	}
	if state["countdown"] != float64(game.CountdownSeconds) {
		t.Errorf("countdown = %v, want %d", state["countdown"], game.CountdownSeconds)
	}
	if state["user_choice"] != nil {
		t.Errorf("user_choice = %v, want null", state["user_choice"])
	}
	if state["stable_gesture"] != nil {
		t.Errorf("stable_gesture = %v, want null", state["stable_gesture"])
	}

	status, ok := state["game_status"].(map[string]any)
	if !ok {
		t.Fatalf("game_status missing or wrong type: %v", state["game_status"])
	}
	if status["level"] != "Easy" {
		t.Errorf("level = %v, want Easy", status["level"])
	}
	if status["max_rounds"] != float64(game.MaxRounds) {
		t.Errorf("max_rounds = %v, want %d", status["max_rounds"], game.MaxRounds)
	}
}

func TestAPI_Start(t *testing.T) {
	ts, a := newTestServer(t)

	resp, err := ts.Client().Post(ts.URL+"/api/start", "application/json", nil)
	if err != nil {
		t.Fatalf("POST /api/start error = %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("POST /api/start status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	if !a.Controller().Armed() {
		t.Error("expected controller armed after /api/start")
	}

	state := getState(t, ts)
	if state["armed"] != true {
		t.Errorf("armed = %v, want true", state["armed"])
	}
}

func TestAPI_Difficulty(t *testing.T) {
	ts, a := newTestServer(t)

	t.Run("accepts a known level", func(t *testing.T) {
		resp, err := ts.Client().Post(ts.URL+"/api/difficulty/Hard", "application/json", nil)
		if err != nil {
			t.Fatalf("POST /api/difficulty/Hard error = %v", err)
		}
		defer resp.Body.Close()

		var body struct {
			Success    bool   `json:"success"`
			Difficulty string `json:"difficulty"`
		}
		json.NewDecoder(resp.Body).Decode(&body)

		if !body.Success {
			t.Error("success = false, want true")
		}
		if body.Difficulty != "Hard" {
			t.Errorf("difficulty = %s, want Hard", body.Difficulty)
		}
		if a.Session().Level() != game.Hard {
			t.Errorf("session level = %s, want Hard", a.Session().Level())
		}
	})

	t.Run("rejects an unknown level", func(t *testing.T) {
		resp, err := ts.Client().Post(ts.URL+"/api/difficulty/Impossible", "application/json", nil)
		if err != nil {
			t.Fatalf("POST /api/difficulty/Impossible error = %v", err)
		}
		defer resp.Body.Close()

		var body struct {
			Success bool `json:"success"`
		}
		json.NewDecoder(resp.Body).Decode(&body)

		if body.Success {
			t.Error("success = true, want false")
		}
		if a.Session().Level() != game.Hard {
			t.Errorf("session level = %s, want Hard (unchanged)", a.Session().Level())
		}
	})
}

func TestAPI_Reset(t *testing.T) {
	ts, a := newTestServer(t)

	a.Session().PlayRound(game.Rock, game.Scissors)
	a.Controller().Arm()

	resp, err := ts.Client().Post(ts.URL+"/api/reset", "application/json", nil)
	if err != nil {
		t.Fatalf("POST /api/reset error = %v", err)
	}
	resp.Body.Close()

	status := a.Session().Status()
	if status.Round != 0 || status.PlayerScore != 0 {
		t.Errorf("expected cleared session, got round=%d score=%d", status.Round, status.PlayerScore)
	}
	if a.Controller().Armed() {
		t.Error("expected controller disarmed after reset")
	}
}

func TestAPI_Health(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := ts.Client().Get(ts.URL + "/api/health")
	if err != nil {
		t.Fatalf("GET /api/health error = %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET /api/health status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	var body map[string]any
	json.NewDecoder(resp.Body).Decode(&body)
	if body["ok"] != true {
		t.Errorf("ok = %v, want true", body["ok"])
	}
}

func TestAPI_MethodNotAllowed(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := ts.Client().Post(ts.URL+"/api/state", "application/json", nil)
	if err != nil {
		t.Fatalf("POST /api/state error = %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("POST /api/state status = %d, want %d", resp.StatusCode, http.StatusMethodNotAllowed)
	}
}

func TestCORSHeaders(t *testing.T) {
	ts, _ := newTestServer(t)

	req, _ := http.NewRequest(http.MethodOptions, ts.URL+"/api/state", nil)
	resp, err := ts.Client().Do(req)
	if err != nil {
		t.Fatalf("OPTIONS /api/state error = %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("OPTIONS status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
}
