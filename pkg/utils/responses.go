package utils

import (
	"encoding/json"
	"net/http"

	"travel-functions/pkg/apperror"
)

type ErrorBody struct {
	Error string `json:"error"`
}

// ResponseJSON writes body as JSON with custom status code
func ResponseJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}

// ------------- Success responses -------------

// returns 200 OK
func ResponseSuccess(w http.ResponseWriter, body any) {
	ResponseJSON(w, http.StatusOK, body)
}

// returns 201 Created
func ResponseCreated(w http.ResponseWriter, body any) {
	ResponseJSON(w, http.StatusCreated, body)
}

// writes a plain text reply. net/http drops the text for 204.
func ResponseText(w http.ResponseWriter, code int, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	w.Write([]byte(text))
}

// ------------- Error responses -------------

// returns the status carried by err, 500 for anything untyped
func ResponseError(w http.ResponseWriter, err error) {
	appErr := apperror.From(err)
	ResponseJSON(w, appErr.HTTPStatus, ErrorBody{Error: appErr.Message})
}
