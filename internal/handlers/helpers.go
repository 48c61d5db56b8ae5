package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nailnav/nailnav/internal/httperr"
)

// businessStatus maps use case error codes to HTTP statuses; anything
// missing here is a 400.
var businessStatus = map[string]int{
	"application_not_found":    http.StatusNotFound,
	"email_already_registered": http.StatusConflict,
	"invalid_credentials":      http.StatusUnauthorized,
	"invalid_state":            http.StatusConflict,
}

// writeError renders a business error with its mapped status and anything
// else as a 500 carrying the raw message.
func writeError(c *gin.Context, fallbackCode string, err error) {
	if code, ok := httperr.CodeOf(err); ok {
		status, known := businessStatus[code]
		if !known {
			status = http.StatusBadRequest
		}
		httperr.Write(c, status, code, "")
		return
	}
	httperr.WithDetails(c, http.StatusInternalServerError, fallbackCode, err)
}

// queryInt parses a query value, returning def when absent or malformed.
func queryInt(c *gin.Context, key string, def int) int {
	v := strings.TrimSpace(c.Query(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func queryBool(c *gin.Context, key string) bool {
	b, _ := strconv.ParseBool(c.Query(key))
	return b
}

func paramUint(c *gin.Context, key string) (uint, bool) {
	n, err := strconv.ParseUint(c.Param(key), 10, 64)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}
