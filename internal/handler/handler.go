package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// actingUser resolves the caller identity set by the auth layer in front of
// this service.
func actingUser(r *http.Request) string {
	if v := r.Header.Get("X-User-ID"); v != "" {
		return v
	}
	return "anonymous"
}

// queryInt reads an integer query parameter, falling back to def when the
// parameter is absent or unparseable. Range policy is handled downstream by
// clamping, never by rejection.
func queryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

// queryInt64Ptr reads an optional id filter, nil when absent or invalid.
func queryInt64Ptr(r *http.Request, name string) *int64 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &n
}

// pathID extracts the {id} route variable.
func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}
