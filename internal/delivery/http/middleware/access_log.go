package middleware

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

const HeaderRequestID = "X-Request-ID"

type AccessLogMiddleware struct {
	logger    *log.Logger
	skipPaths map[string]struct{}
}

// NewAccessLogMiddleware logs one line per request. Requests to skipPaths
// still get a request id but are not logged.
func NewAccessLogMiddleware(logger *log.Logger, skipPaths ...string) *AccessLogMiddleware {
	if logger == nil {
		logger = log.Default()
	}
	skip := make(map[string]struct{}, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = struct{}{}
	}
	return &AccessLogMiddleware{logger: logger, skipPaths: skip}
}

func requestID(c fiber.Ctx) string {
	if rid := string(c.Response().Header.Peek(HeaderRequestID)); rid != "" {
		return rid
	}
	return c.Get(HeaderRequestID)
}

func (m *AccessLogMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()

		rid := c.Get(HeaderRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(HeaderRequestID, rid)

		err := c.Next()
		if _, skip := m.skipPaths[c.Path()]; skip {
			return err
		}

		dur := time.Since(start)
		status := c.Response().StatusCode()

		ip := c.IP()
		method := c.Method()
		path := c.OriginalURL()

		ua := c.Get("User-Agent")

		reqBytes := c.Request().Header.ContentLength()
		respBytes := c.Response().Header.ContentLength()

		if m != nil && m.logger != nil {
			m.logger.Printf(
				"[HTTP] access rid=%s ip=%s method=%s path=%s status=%d latency=%s req_bytes=%d resp_bytes=%d ua=%q",
				rid, ip, method, path, status, dur, reqBytes, respBytes, ua,
			)
		}

		return err
	}
}
