package controllers

import "net/http"

// Health answers GET /api/health
func Health(w http.ResponseWriter, r *http.Request) {
	sendJSON(w, r, http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "Servidor funcionando",
	})
}
