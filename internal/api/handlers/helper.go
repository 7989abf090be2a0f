package handlers

import (
	"net/http"
	"strconv"

	appErrors "github.com/crazebite/crazebite-api/internal/errors"
	"github.com/crazebite/crazebite-api/internal/utils/response"
)

const sessionHeader = "X-Session-ID"

// sessionID extracts the caller's session from the request header. Carts
// are keyed by this opaque value; identity is someone else's problem.
func sessionID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := r.Header.Get(sessionHeader)
	if id == "" {
		response.Error(w, appErrors.BadRequestError("Session ID is required"))
		return "", false
	}

	return id, true
}

func lineItemID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		response.Error(w, appErrors.BadRequestError("Invalid line item id"))
		return 0, false
	}

	return id, true
}
