package middleware_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pr-poehali-dev/hundai-parts-catalog/internal/http/middleware"
)

// A panicking handler must come back as a 500 JSON error, not as an
// empty 200. Clients that treat any 2xx as success would otherwise
// report a crashed operation as accepted.
func TestPanicBecomes500(t *testing.T) {
	gin.SetMode(gin.TestMode)
	l := slog.New(slog.NewTextHandler(io.Discard, nil))

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.ErrorHandler(l), middleware.Recovery(l))
	r.GET("/boom", func(c *gin.Context) {
		panic("kaboom")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code, w.Body.String())

	var body struct {
		Error     string `json:"error"`
		RequestID string `json:"request_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Something went wrong.", body.Error)
	assert.NotEmpty(t, body.RequestID)
}
