package mock

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
)

const defaultAdvisorReply = "Start with an emergency fund covering three months of expenses."

// Advisor emulates a chat-completions endpoint for the advice relay.
type Advisor struct {
	mu          sync.Mutex
	server      *httptest.Server
	reply       string
	status      int
	lastRequest map[string]any
	lastAuth    string
}

// NewAdvisor starts the emulated upstream and returns it.
func NewAdvisor() *Advisor {
	a := &Advisor{
		reply:  defaultAdvisorReply,
		status: http.StatusOK,
	}
	a.server = httptest.NewServer(http.HandlerFunc(a.handle))
	return a
}

func (a *Advisor) handle(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()

	var body map[string]any
	_ = json.NewDecoder(r.Body).Decode(&body)
	a.lastRequest = body
	a.lastAuth = r.Header.Get("Authorization")

	if a.status != http.StatusOK {
		w.WriteHeader(a.status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"role": "assistant", "content": a.reply}},
		},
	})
}

// URL returns the base URL of the emulated upstream.
func (a *Advisor) URL() string {
	return a.server.URL
}

// SetReply sets the content returned for subsequent requests.
func (a *Advisor) SetReply(reply string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.reply = reply
}

// SetStatus sets the HTTP status returned for subsequent requests.
func (a *Advisor) SetStatus(status int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.status = status
}

// LastRequest returns the most recently received request body.
func (a *Advisor) LastRequest() map[string]any {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastRequest
}

// Reset restores the default reply and clears the recorded request.
func (a *Advisor) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.reply = defaultAdvisorReply
	a.status = http.StatusOK
	a.lastRequest = nil
	a.lastAuth = ""
}

// Close shuts down the emulated upstream.
func (a *Advisor) Close() {
	a.server.Close()
}
