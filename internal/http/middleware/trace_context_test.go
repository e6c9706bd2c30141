package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/lineboard/lineboard-backend/internal/pkg/ctxutil"
)

func TestAttachTraceContext(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var seen *ctxutil.TraceData
	r := gin.New()
	r.Use(AttachTraceContext())
	r.GET("/api/trend_chart", func(c *gin.Context) {
		seen = ctxutil.GetTraceData(c.Request.Context())
		c.Status(http.StatusOK)
	})

	t.Run("inbound ids pass through", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/trend_chart", nil)
		req.Header.Set(headerTraceID, "trace-123")
		req.Header.Set(headerRequestID, "req-456")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if seen == nil || seen.TraceID != "trace-123" || seen.RequestID != "req-456" {
			t.Fatalf("context trace data = %+v", seen)
		}
		if w.Header().Get(headerTraceID) != "trace-123" || w.Header().Get(headerRequestID) != "req-456" {
			t.Fatalf("ids not echoed: %v", w.Header())
		}
	})

	t.Run("missing ids are generated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/trend_chart", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if seen == nil || seen.TraceID == "" || seen.RequestID == "" {
			t.Fatalf("ids not generated: %+v", seen)
		}
		if w.Header().Get(headerTraceID) != seen.TraceID {
			t.Fatal("response trace id differs from context trace id")
		}
	})
}
