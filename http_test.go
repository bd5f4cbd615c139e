package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/carlmjohnson/be"
	"github.com/charmbracelet/log"
	"github.com/rshep3087/ledgerly/config"
)

func TestLoggingTransport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	client := &http.Client{Transport: newLoggingTransport(nil, logger)}

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/ok", nil)
	be.NilErr(t, err)
	req.Header.Set(requestIDHeader, "req-123")

	resp, err := client.Do(req)
	be.NilErr(t, err)
	resp.Body.Close()

	out := buf.String()
	be.True(t, strings.Contains(out, "HTTP Request"))
	be.True(t, strings.Contains(out, "HTTP Response"))
	be.True(t, strings.Contains(out, "req-123"))

	buf.Reset()
	resp, err = client.Get(srv.URL + "/missing")
	be.NilErr(t, err)
	resp.Body.Close()
	be.True(t, strings.Contains(buf.String(), "WARN"))
}

func TestLoggingTransportError(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	client := &http.Client{Transport: newLoggingTransport(nil, logger)}

	_, err := client.Get("http://127.0.0.1:0/unreachable")
	be.Nonzero(t, err)
	be.True(t, strings.Contains(buf.String(), "HTTP Request failed"))
}

func TestNewAPIClientHeaders(t *testing.T) {
	var header http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header = r.Header.Clone()
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	cfg := config.Default()
	cfg.BaseURL = srv.URL
	cfg.Token = "tok-123"

	client, err := newAPIClient(cfg)
	be.NilErr(t, err)
	be.NilErr(t, client.Delete(context.Background(), "/things/1", nil))

	be.Equal(t, userAgent, header.Get("User-Agent"))
	be.Equal(t, "Bearer tok-123", header.Get("Authorization"))
}
