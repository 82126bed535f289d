// Package geoip resolves client IP addresses to ISO country codes using a
// local MaxMind database.
package geoip

import (
	"fmt"
	"net"

	"github.com/oschwald/geoip2-golang"
)

// CountryResolver maps an IP address to an ISO 3166-1 alpha-2 country code.
type CountryResolver interface {
	CountryCode(ip string) (string, error)
	Close() error
}

// Resolver reads country records from a MaxMind GeoLite2/GeoIP2 database file.
type Resolver struct {
	db *geoip2.Reader
}

var _ CountryResolver = (*Resolver)(nil)

// NewResolver opens the database at path. An empty path disables resolution:
// the returned resolver is nil and callers should skip the lookup.
func NewResolver(path string) (*Resolver, error) {
	if path == "" {
		return nil, nil
	}

	db, err := geoip2.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open geoip database: %w", err)
	}

	return &Resolver{db: db}, nil
}

// CountryCode resolves ip to its country code. Unknown addresses resolve to
// an empty string without error.
func (r *Resolver) CountryCode(ip string) (string, error) {
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return "", fmt.Errorf("invalid ip address: %q", ip)
	}

	rec, err := r.db.Country(parsed)
	if err != nil {
		return "", err
	}

	return rec.Country.IsoCode, nil
}

func (r *Resolver) Close() error {
	return r.db.Close()
}
