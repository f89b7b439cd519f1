package middleware

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/netip"
	"strings"
)

type originContextKey struct{}

// OriginResolver derives the client's network origin. X-Forwarded-For is only
// read when the direct peer is one of the trusted proxies.
type OriginResolver struct {
	trusted []netip.Prefix
}

// NewOriginResolver accepts bare addresses and CIDR ranges.
func NewOriginResolver(trustedProxies []string) (*OriginResolver, error) {
	resolver := &OriginResolver{}

	for _, entry := range trustedProxies {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		if prefix, err := netip.ParsePrefix(entry); err == nil {
			resolver.trusted = append(resolver.trusted, prefix.Masked())
			continue
		}

		addr, err := netip.ParseAddr(entry)
		if err != nil {
			return nil, fmt.Errorf("invalid trusted proxy %q: %w", entry, err)
		}
		addr = addr.Unmap()
		resolver.trusted = append(resolver.trusted, netip.PrefixFrom(addr, addr.BitLen()))
	}

	return resolver, nil
}

func (o *OriginResolver) isTrusted(addr netip.Addr) bool {
	addr = addr.Unmap()
	for _, prefix := range o.trusted {
		if prefix.Contains(addr) {
			return true
		}
	}
	return false
}

// Resolve returns the peer address, or, behind trusted proxies, the nearest
// forwarded hop that is not itself a trusted proxy.
func (o *OriginResolver) Resolve(r *http.Request) string {
	peer := RemoteHost(r)

	peerAddr, err := netip.ParseAddr(peer)
	if err != nil || !o.isTrusted(peerAddr) {
		return peer
	}

	forwarded := r.Header.Values("X-Forwarded-For")
	hops := strings.Split(strings.Join(forwarded, ","), ",")

	origin := peer
	for i := len(hops) - 1; i >= 0; i-- {
		hop := strings.TrimSpace(hops[i])
		if hop == "" {
			continue
		}

		addr, err := netip.ParseAddr(hop)
		if err != nil {
			return origin
		}

		origin = addr.Unmap().String()
		if !o.isTrusted(addr) {
			return origin
		}
	}

	return origin
}

func (o *OriginResolver) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), originContextKey{}, o.Resolve(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OriginFromContext returns the origin stored by OriginResolver.Middleware.
func OriginFromContext(ctx context.Context) (string, bool) {
	origin, ok := ctx.Value(originContextKey{}).(string)
	return origin, ok && origin != ""
}

// RemoteHost is the host part of the socket peer address.
func RemoteHost(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
