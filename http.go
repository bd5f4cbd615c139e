package main

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
)

const requestIDHeader = "X-Request-ID"

type loggerTransport struct {
	transport http.RoundTripper
	logger    *log.Logger
}

func (l *loggerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	requestID := req.Header.Get(requestIDHeader)

	l.logger.Debug("HTTP Request",
		"method", req.Method,
		"url", req.URL.Redacted(),
		"request_id", requestID,
	)

	startTime := time.Now()
	resp, err := l.transport.RoundTrip(req)
	if err != nil {
		l.logger.Error("HTTP Request failed", "error", err, "request_id", requestID)
		return nil, err
	}
	duration := time.Since(startTime)

	logFn := l.logger.Debug
	if resp.StatusCode >= http.StatusBadRequest {
		logFn = l.logger.Warn
	}
	logFn("HTTP Response",
		"status", resp.Status,
		"duration", duration,
		"url", req.URL.Redacted(),
		"method", req.Method,
		"request_id", requestID,
	)

	return resp, nil
}

func newLoggingTransport(transport http.RoundTripper, logger *log.Logger) http.RoundTripper {
	if transport == nil {
		transport = http.DefaultTransport
	}
	return &loggerTransport{transport: transport, logger: logger}
}
