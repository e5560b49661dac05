// Package config handles configuration for the server component,
// including defaults, JSON overlay, and command-line flags.
package config

import "golang.org/x/crypto/bcrypt"

// Config holds runtime settings for the auth server.
//
// Fields:
//   - EndpointAddrGRPC: bind address for the public gRPC endpoint.
//   - BcryptCost: work factor for password hashing (bcrypt).
//   - SessionTokenSize: number of random bytes per session token; the
//     issued token is the hex encoding, twice as long.
type Config struct {
	EndpointAddrGRPC string
	BcryptCost       int
	SessionTokenSize int
}

// LoadDefaults populates Config with sensible development defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":50051"
	c.BcryptCost = bcrypt.DefaultCost
	c.SessionTokenSize = 32
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
