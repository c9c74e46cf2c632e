package transport

import (
	"context"
	"net"
	"net/url"
	"time"
)

// ConnectivityChecker reports whether the network is reachable.
type ConnectivityChecker interface {
	Connected(ctx context.Context) bool
}

// AlwaysOnline never blocks a request.
type AlwaysOnline struct{}

func (AlwaysOnline) Connected(context.Context) bool { return true }

// StaticConnectivity reports a fixed state.
type StaticConnectivity bool

func (s StaticConnectivity) Connected(context.Context) bool { return bool(s) }

// DialChecker treats the network as up when a TCP connection to Addr succeeds.
type DialChecker struct {
	Addr    string
	Timeout time.Duration
}

// NewDialChecker derives the address to probe from baseURL.
func NewDialChecker(baseURL string, timeout time.Duration) (*DialChecker, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}
	port := u.Port()
	if port == "" {
		port = "80"
		if u.Scheme == "https" {
			port = "443"
		}
	}
	return &DialChecker{Addr: net.JoinHostPort(u.Hostname(), port), Timeout: timeout}, nil
}

func (d *DialChecker) Connected(ctx context.Context) bool {
	timeout := d.Timeout
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	dialer := net.Dialer{Timeout: timeout}
	conn, err := dialer.DialContext(ctx, "tcp", d.Addr)
	if err != nil {
		return false
	}
	_ = conn.Close()
	return true
}
