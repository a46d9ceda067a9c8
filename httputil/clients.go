package httputil

import (
	"net/http"
	"net/url"
	"time"

	"propfinder/config"
)

type Clients struct {
	Upstream *http.Client // authenticated listing-source calls
	Probe    *http.Client // short-timeout healthcheck probes
}

func NewClients(cfg *config.UpstreamConfig) *Clients {
	transport := http.DefaultTransport.(*http.Transport).Clone()

	if cfg.ProxyURL != "" {
		if proxyURL, err := url.Parse(cfg.ProxyURL); err == nil {
			transport.Proxy = http.ProxyURL(proxyURL)
		}
	}

	timeout := time.Duration(cfg.TimeoutMS) * time.Millisecond
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &Clients{
		Upstream: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		Probe: &http.Client{
			Timeout:   5 * time.Second,
			Transport: transport,
		},
	}
}
