package controllers

import (
	"encoding/json"
	"encoding/xml"
	"net/http"
	"strings"
)

// Helper functions for common HTTP responses

// Error codes carried in the error envelope.
const (
	codeInvalidQueueName = "InvalidQueueName"
	codeBadRequest       = "BadRequest"
	codeInternalError    = "InternalError"
)

// errorBody is the error envelope, rendered as JSON or XML.
type errorBody struct {
	XMLName xml.Name `json:"-" xml:"error"`
	Code    string   `json:"code" xml:"code"`
	Message string   `json:"message" xml:"message"`
}

// wantsXML reports whether the Accept header names an XML type before it
// names JSON.
func wantsXML(r *http.Request) bool {
	for _, part := range strings.Split(r.Header.Get("Accept"), ",") {
		mt := strings.TrimSpace(part)
		if i := strings.IndexByte(mt, ';'); i >= 0 {
			mt = strings.TrimSpace(mt[:i])
		}
		switch mt {
		case "application/xml", "text/xml":
			return true
		case "application/json":
			return false
		}
	}
	return false
}

// writeBody renders v with the given status, as XML when the request asks
// for it and JSON otherwise.
func writeBody(w http.ResponseWriter, r *http.Request, status int, v any) {
	if wantsXML(r) {
		w.Header().Set("Content-Type", "application/xml")
		w.WriteHeader(status)
		_ = xml.NewEncoder(w).Encode(v)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes the error envelope with the given status and code.
func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	writeBody(w, r, status, errorBody{Code: code, Message: message})
}

// writeJSON writes a JSON response with the given data.
func writeJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(data)
}

// writeNoContent writes a 204 No Content response.
func writeNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
