package controllers

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"galleria/app/services"

	"github.com/gorilla/mux"
	"golang.org/x/crypto/sha3"
)

const msgInvalidJSON = "JSON inválido"

// sendJSON writes data with the given status. Successful GET responses get
// a content hash ETag and honour If-None-Match.
func sendJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	body, err := json.Marshal(data)
	if err != nil {
		log.Printf("failed to encode response for %s %s: %v", r.Method, r.URL.Path, err)
		sendError(w, http.StatusInternalServerError, "Erro interno do servidor", err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if r.Method == http.MethodGet && status == http.StatusOK {
		etag := computeETag(body)
		w.Header().Set("ETag", etag)
		if r.Header.Get("If-None-Match") == etag {
			w.WriteHeader(http.StatusNotModified)
			return
		}
	}
	w.WriteHeader(status)
	w.Write(body)
	w.Write([]byte("\n"))
}

// sendError writes {error, message?}
func sendError(w http.ResponseWriter, status int, message, detail string) {
	payload := map[string]string{"error": message}
	if detail != "" {
		payload["message"] = detail
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func sendSuccess(w http.ResponseWriter, r *http.Request) {
	sendJSON(w, r, http.StatusOK, map[string]bool{"success": true})
}

// handleServiceError maps domain errors to 400/403/404 and anything else to
// 500 with the generic message of the failed operation.
func handleServiceError(w http.ResponseWriter, r *http.Request, err error, generic string) {
	switch {
	case errors.Is(err, services.ErrValidation):
		sendError(w, http.StatusBadRequest, services.Message(err), "")
	case errors.Is(err, services.ErrNotFound):
		sendError(w, http.StatusNotFound, services.Message(err), "")
	case errors.Is(err, services.ErrForbidden):
		sendError(w, http.StatusForbidden, services.Message(err), "")
	default:
		log.Printf("%s %s failed: %v", r.Method, r.URL.Path, err)
		sendError(w, http.StatusInternalServerError, generic, err.Error())
	}
}

// decodeBody reads an optional JSON body into dst. An empty body leaves dst untouched.
func decodeBody(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return nil
	}
	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// pathID parses a numeric route variable
func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)[name], 10, 64)
}

func computeETag(body []byte) string {
	sum := sha3.Sum256(body)
	return `"` + hex.EncodeToString(sum[:]) + `"`
}
