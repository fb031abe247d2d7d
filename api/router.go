package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"moodbot/ledger"
	"moodbot/metrics"
	"moodbot/router"
)

// defaultUserID is used when the client does not identify the user.
const defaultUserID = "user1"

type chatRequest struct {
	Input  string `json:"input"`
	Mode   string `json:"mode"`
	Task   string `json:"type"`
	Coins  *int64 `json:"coins"`
	UserID string `json:"user_id"`
}

// NewRouter builds the HTTP surface: POST /chat for commands and chat,
// plus health and metrics endpoints.
func NewRouter(cmds *router.Router, l *ledger.Ledger) http.Handler {
	r := chi.NewRouter()
	r.Use(RequestID, Recover, Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", metrics.Handler())

	r.Post("/chat", func(w http.ResponseWriter, req *http.Request) {
		var body chatRequest
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "bad request")
			return
		}

		userID := body.UserID
		if userID == "" {
			userID = defaultUserID
		}
		// A client-supplied balance only seeds a user the ledger has
		// never seen; after that the ledger is authoritative.
		if body.Coins != nil {
			l.SeedIfAbsent(userID, *body.Coins)
		}

		resp := cmds.Handle(req.Context(), router.Request{
			UserID: userID,
			Input:  body.Input,
			Mode:   body.Mode,
			Task:   body.Task,
		})
		writeJSON(w, http.StatusOK, resp)
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
