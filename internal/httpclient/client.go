// Package httpclient builds the *http.Client the pinestore CLI hands to the
// catalog client.
package httpclient

import (
	"net"
	"net/http"
	"time"
)

// Config tunes the client's transport.
type Config struct {
	// Timeout bounds a whole request, body included. Zero leaves requests
	// bounded only by their context, and also lifts ResponseHeader.
	Timeout time.Duration

	DialTimeout     time.Duration
	KeepAlive       time.Duration
	TLSHandshake    time.Duration
	ResponseHeader  time.Duration
	IdleConnTimeout time.Duration

	// The CLI talks to a single catalog host.
	MaxIdleConns        int
	MaxIdleConnsPerHost int
}

// DefaultConfig returns the settings used for catalog requests.
func DefaultConfig() Config {
	return Config{
		Timeout:             30 * time.Second,
		DialTimeout:         5 * time.Second,
		KeepAlive:           30 * time.Second,
		TLSHandshake:        5 * time.Second,
		ResponseHeader:      10 * time.Second,
		IdleConnTimeout:     90 * time.Second,
		MaxIdleConns:        4,
		MaxIdleConnsPerHost: 4,
	}
}

// WithTimeout returns DefaultConfig with the overall timeout replaced.
func WithTimeout(d time.Duration) Config {
	cfg := DefaultConfig()
	cfg.Timeout = d
	return cfg
}

// New builds an *http.Client from cfg. Proxy settings come from the
// environment.
func New(cfg Config) *http.Client {
	dialer := &net.Dialer{
		Timeout:   cfg.DialTimeout,
		KeepAlive: cfg.KeepAlive,
	}

	headerWait := cfg.ResponseHeader
	if cfg.Timeout == 0 {
		headerWait = 0
	}

	return &http.Client{
		Timeout: cfg.Timeout,
		Transport: &http.Transport{
			Proxy:                 http.ProxyFromEnvironment,
			DialContext:           dialer.DialContext,
			ForceAttemptHTTP2:     true,
			MaxIdleConns:          cfg.MaxIdleConns,
			MaxIdleConnsPerHost:   cfg.MaxIdleConnsPerHost,
			IdleConnTimeout:       cfg.IdleConnTimeout,
			TLSHandshakeTimeout:   cfg.TLSHandshake,
			ResponseHeaderTimeout: headerWait,
		},
	}
}
