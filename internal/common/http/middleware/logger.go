package middleware

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"bitbucket.org/Amartha/go-savings-engine/internal/common/log"

	"github.com/labstack/echo/v4"
	"golang.org/x/exp/slices"
)

type bodyDumpResponseWriter struct {
	io.Writer
	http.ResponseWriter
}

func (w *bodyDumpResponseWriter) WriteHeader(code int) {
	w.ResponseWriter.WriteHeader(code)
}

func (w *bodyDumpResponseWriter) Write(b []byte) (int, error) {
	return w.Writer.Write(b)
}

func (w *bodyDumpResponseWriter) Flush() {
	err := http.NewResponseController(w.ResponseWriter).Flush()
	if err != nil && errors.Is(err, http.ErrNotSupported) {
		panic(errors.New("response writer flushing is not supported"))
	}
}

func (w *bodyDumpResponseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	return http.NewResponseController(w.ResponseWriter).Hijack()
}

func (w *bodyDumpResponseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

func (m *AppMiddleware) parseRequestBody(c echo.Context) []byte {
	var body []byte
	if c.Request().Body != nil {
		body, _ = io.ReadAll(c.Request().Body)
	}
	c.Request().Body = io.NopCloser(bytes.NewBuffer(body))
	return body
}

var sensitiveHeaders = map[string]struct{}{
	"authorization": {},
	"cookie":        {},
	"set-cookie":    {},
	"x-secret-key":  {},
}

func (m *AppMiddleware) parseRequestHeader(c echo.Context) []byte {
	headers := make(map[string][]string)
	for k, vals := range c.Request().Header {
		if _, ok := sensitiveHeaders[strings.ToLower(k)]; ok {
			headers[k] = []string{"*****"}
		} else {
			headers[k] = vals
		}
	}

	b, _ := json.Marshal(headers)
	return b
}

func (m *AppMiddleware) getResponseBodyBuffer(c echo.Context) *bytes.Buffer {
	resBody := new(bytes.Buffer)
	mw := io.MultiWriter(c.Response().Writer, resBody)
	writer := &bodyDumpResponseWriter{
		mw,
		c.Response().Writer,
	}
	c.Response().Writer = writer
	return resBody
}

var excludedLogs = []string{
	"/api/health",
	"/metrics",
}

func (m *AppMiddleware) Logger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if slices.Contains(excludedLogs, c.Path()) {
				return next(c)
			}

			start := time.Now()
			ctx := c.Request().Context()
			req := c.Request()
			res := c.Response()
			reqBody := m.parseRequestBody(c)
			reqHeader := m.parseRequestHeader(c)
			resBodyBuff := m.getResponseBodyBuffer(c)

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			latency := time.Since(start)

			fields := []log.Field{
				log.String("timestamp", start.String()),
				log.String("end_time", start.Add(latency).String()),
				log.String("method", req.Method),
				log.String("url_path", req.URL.String()),
				log.String("request_body", string(reqBody)),
				log.String("request_header", string(reqHeader)),
				log.Int("status", res.Status),
				log.String("response", resBodyBuff.String()),
				log.String("latency", latency.String()),
			}

			message := fmt.Sprintf("%v %v %v %v", res.Status, req.Method, req.URL.String(), latency)

			switch {
			case res.Status >= 500:
				log.Error(ctx, message, fields...)
			case res.Status >= 300:
				log.Warn(ctx, message, fields...)
			default:
				log.Info(ctx, message, fields...)
			}

			return nil
		}
	}
}
