package crawl

import (
	"context"
	"net/url"
	"strings"
	"sync"

	"github.com/fwojciec/sharh"
	"golang.org/x/time/rate"
)

// DefaultRequestsPerSecond is the politeness rate applied to each host.
const DefaultRequestsPerSecond = 1.0

var _ sharh.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter spaces out requests to each host with its own token bucket.
// Host names are compared case-insensitively.
type DomainLimiter struct {
	limit rate.Limit

	mu    sync.Mutex
	hosts map[string]*rate.Limiter
}

// NewDomainLimiter allows rps requests per second to each host with a burst
// of one. A non-positive rps disables limiting.
func NewDomainLimiter(rps float64) *DomainLimiter {
	limit := rate.Inf
	if rps > 0 {
		limit = rate.Limit(rps)
	}
	return &DomainLimiter{
		limit: limit,
		hosts: make(map[string]*rate.Limiter),
	}
}

func (d *DomainLimiter) bucket(host string) *rate.Limiter {
	host = strings.ToLower(host)

	d.mu.Lock()
	defer d.mu.Unlock()
	l, ok := d.hosts[host]
	if !ok {
		l = rate.NewLimiter(d.limit, 1)
		d.hosts[host] = l
	}
	return l
}

// Wait blocks until a request to domain is allowed or ctx is done.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return d.bucket(domain).Wait(ctx)
}

// waitURL waits on the limiter for the host of rawURL. A nil limiter never
// blocks.
func waitURL(ctx context.Context, limiter sharh.DomainLimiter, rawURL string) error {
	if limiter == nil {
		return nil
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return sharh.Errorf(sharh.EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	return limiter.Wait(ctx, u.Host)
}
