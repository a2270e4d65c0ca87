package middleware

import (
	"github.com/google/uuid"
	"github.com/grachmannico95/gig-earnings/pkg/logger"
	"github.com/labstack/echo/v4"
)

const HeaderTraceID = "X-Trace-ID"

// RequestID propagates an inbound X-Trace-ID or X-Request-ID into the
// request context, minting a uuid when neither is present.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			traceID := req.Header.Get(HeaderTraceID)
			if traceID == "" {
				traceID = req.Header.Get(echo.HeaderXRequestID)
			}
			if traceID == "" {
				traceID = uuid.New().String()
			}

			ctx := logger.WithTraceID(req.Context(), traceID)
			c.SetRequest(req.WithContext(ctx))

			c.Response().Header().Set(HeaderTraceID, traceID)

			return next(c)
		}
	}
}
