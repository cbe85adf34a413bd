package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("read failure")
}

func TestLogger_AbortsOnUnreadableBody(t *testing.T) {
	t.Setenv("CONFIG_PATH", "testdata")
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodPost, "/api/v1/chat", failingReader{})

	Logger(ctx)

	assert.True(t, ctx.IsAborted())
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogger_ReadableBodyPassesThrough(t *testing.T) {
	t.Setenv("CONFIG_PATH", "testdata")
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(`{"message":"hola"}`))

	Logger(ctx)

	assert.False(t, ctx.IsAborted())
	assert.Equal(t, http.StatusOK, w.Code)
}
