package middleware

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"reserva_bot/config"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	RequestIDHeader    = "X-Request-ID"
	RequestIDInLogName = "request_id"
)

// Logger logs one line per request. The body is only captured when
// application.log_request is enabled, since chat turns carry user text.
func Logger(ctx *gin.Context) {
	start := time.Now().UTC()
	path := ctx.Request.URL.Path
	ip := ctx.ClientIP()

	logBody := config.GetInstance().GetBool(config.ApplicationLogRequest)
	request := ""
	if logBody && ctx.Request.Body != nil {
		bodyBytes, err := io.ReadAll(ctx.Request.Body)
		if err != nil {
			logrus.Errorf("read body bytes err:%v", err)
			ctx.AbortWithStatus(http.StatusBadRequest)
			return
		}
		request = string(bodyBytes)
		ctx.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
	}

	ctx.Next()

	latency := time.Now().UTC().Sub(start)
	entry := logrus.NewEntry(logrus.StandardLogger())
	if requestID, ok := ctx.Get(RequestIDHeader); ok {
		entry = entry.WithField(RequestIDInLogName, requestID)
	}
	if logBody {
		entry.Infof("%s| %s| %s| %s |request: %s", ctx.Request.Method, latency, ip, path, request)
	} else {
		entry.Infof("%s| %s| %s| %s| %d", ctx.Request.Method, latency, ip, path, ctx.Writer.Status())
	}
}
