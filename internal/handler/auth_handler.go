package handler

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"restaurant-api/internal/auth"
)

// AuthHandler handles session-token HTTP requests.
type AuthHandler struct {
	tokens *auth.TokenManager
	logger zerolog.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(tokens *auth.TokenManager, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		tokens: tokens,
		logger: logger.With().Str("handler", "auth").Logger(),
	}
}

// identityPayload is the client-supplied identity for token issuance. The
// payload is taken on trust: whatever email the client claims is the email
// that gets signed. The guard downstream only compares identities, it never
// re-verifies them.
type identityPayload struct {
	Email string `json:"email"`
}

// IssueToken handles POST /jwt requests: it signs a session token for the
// supplied identity and stores it in the http-only session cookie.
func (h *AuthHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var payload identityPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	token, err := h.tokens.Issue(payload.Email)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to issue token", h.logger)
		return
	}

	auth.SetCookie(w, token)
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Logout handles POST /logout requests: it expires the session cookie on
// the client. The token itself stays valid until natural expiry; the server
// keeps no session list to revoke it from.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	auth.ClearCookie(w)
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
