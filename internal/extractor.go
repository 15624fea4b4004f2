package internal

import (
	"net"
	"strings"
)

// ExtractorSource extracts a value from the request.
// Returns the value and true if found, or ("", false) if not present.
type ExtractorSource = func(Context) (string, bool)

// Extractor tries multiple sources in order and returns the first match.
type Extractor struct {
	sources []ExtractorSource
}

// NewExtractor creates an Extractor that tries the given sources in order.
func NewExtractor(sources ...ExtractorSource) Extractor {
	return Extractor{sources: sources}
}

// Extract returns the first non-empty value produced by the sources.
func (e Extractor) Extract(c Context) (string, bool) {
	for _, src := range e.sources {
		if v, ok := src(c); ok && v != "" {
			return v, true
		}
	}
	return "", false
}

// FromHeader returns a source that reads a request header verbatim.
func FromHeader(name string) ExtractorSource {
	return func(c Context) (string, bool) {
		v := strings.TrimSpace(c.Header(name))
		if v == "" {
			return "", false
		}
		return v, true
	}
}

// FromQuery returns a source that reads from a query parameter.
func FromQuery(name string) ExtractorSource {
	return func(c Context) (string, bool) {
		v := c.Query(name)
		if v == "" {
			return "", false
		}
		return v, true
	}
}

// FromForwardedFor returns a source yielding the left-most address of
// X-Forwarded-For. Only trust it behind a proxy that overwrites the header.
func FromForwardedFor() ExtractorSource {
	return func(c Context) (string, bool) {
		v := c.Header("X-Forwarded-For")
		if v == "" {
			return "", false
		}
		first, _, _ := strings.Cut(v, ",")
		first = strings.TrimSpace(first)
		if net.ParseIP(first) == nil {
			return "", false
		}
		return first, true
	}
}

// FromRemoteAddr returns a source yielding the host part of the
// connection's remote address.
func FromRemoteAddr() ExtractorSource {
	return func(c Context) (string, bool) {
		addr := c.RemoteAddr()
		if addr == "" {
			return "", false
		}
		host, _, err := net.SplitHostPort(addr)
		if err != nil {
			return addr, true
		}
		return host, true
	}
}
