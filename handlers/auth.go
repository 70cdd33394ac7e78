package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/bellacucina/api/utils"
)

// AdminLogin exchanges the shared admin password for a session token.
// There are no user accounts; one password guards the whole admin panel.
func AdminLogin(w http.ResponseWriter, r *http.Request) {
	type request struct {
		Password string `json:"password"`
	}

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if !utils.CheckAdminPassword(req.Password) {
		writeError(w, http.StatusUnauthorized, "incorrect password")
		return
	}

	token, err := utils.GenerateAdminToken()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}
