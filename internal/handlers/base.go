package handlers

import "net/http"

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "GiftFlow Mock API running"})
}

func (s *Server) handleHello(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Hello from GiftFlow backend!"})
}

// handleMockStatus is a connectivity check. There is no database behind the
// mock, and the body says so in the exact shape the frontend's status page
// renders.
func (s *Server) handleMockStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"backend":           "✅ Running",
		"database":          "⏸️ Mock mode (no DB)",
		"database_url":      "❌ Not Set",
		"database_name":     "❌ Not Set",
		"connection_status": "Mock",
		"collections":       []string{},
	})
}
