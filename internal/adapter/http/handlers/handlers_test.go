package handlers

import (
	"bytes"
	"io"
	"net/http/httptest"

	"taller_xpto/internal/adapter/http/middleware"
	"taller_xpto/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

// newTestRouter mounts one handler with role already set, as RequireRole would do.
func newTestRouter(role entities.Role, method, path string, h gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Handle(method, path, func(c *gin.Context) {
		if role != "" {
			middleware.SetRole(c, role)
		}
		c.Next()
	}, h)
	return r
}

func serve(r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
