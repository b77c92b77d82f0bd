package redis

import (
	"errors"
	"fmt"
	"time"
)

// Config represents Redis configuration options
type Config struct {
	// Host is the Redis server host
	Host string
	// Port is the Redis server port
	Port int
	// Password is the Redis server password
	Password string
	// Database is the Redis database number
	Database int
	// MinIdleConns is the minimum number of idle connections kept open
	MinIdleConns int
	// MaxIdleConns is the maximum number of idle connections kept in the pool
	MaxIdleConns int
	// MaxActive is the maximum number of active connections
	MaxActive int
	// MaxRetries is the maximum number of retries for failed commands
	MaxRetries int
	// DialTimeout bounds establishing a connection
	DialTimeout time.Duration
	// ReadTimeout bounds socket reads
	ReadTimeout time.Duration
	// WriteTimeout bounds socket writes
	WriteTimeout time.Duration
	// PoolTimeout bounds waiting for a pooled connection
	PoolTimeout time.Duration
	// CacheTTLs maps cache names to their TTL
	CacheTTLs map[string]time.Duration
	// DefaultCacheTTL applies to named caches missing from CacheTTLs
	DefaultCacheTTL time.Duration
}

// NewRedisConfig creates a new Redis configuration with default values
func NewRedisConfig() *Config {
	return &Config{
		Host:            "localhost",
		Port:            6379,
		MinIdleConns:    2,
		MaxIdleConns:    10,
		MaxActive:       50,
		MaxRetries:      2,
		DialTimeout:     5 * time.Second,
		ReadTimeout:     3 * time.Second,
		WriteTimeout:    3 * time.Second,
		PoolTimeout:     4 * time.Second,
		CacheTTLs:       make(map[string]time.Duration),
		DefaultCacheTTL: 15 * time.Minute,
	}
}

// DefaultConfig is an alias of NewRedisConfig
func DefaultConfig() *Config {
	return NewRedisConfig()
}

// WithHost sets the Redis server host
func (c *Config) WithHost(host string) *Config {
	c.Host = host
	return c
}

// WithPort sets the Redis server port
func (c *Config) WithPort(port int) *Config {
	if port < 1 || port > 65535 {
		panic(fmt.Sprintf("invalid port: %d, must be between 1 and 65535", port))
	}
	c.Port = port
	return c
}

// WithPassword sets the Redis server password
func (c *Config) WithPassword(password string) *Config {
	c.Password = password
	return c
}

// WithDatabase sets the Redis database number
func (c *Config) WithDatabase(database int) *Config {
	if database < 0 || database > 15 {
		panic(fmt.Sprintf("invalid database: %d, must be between 0 and 15", database))
	}
	c.Database = database
	return c
}

// WithCacheTTL sets the TTL used by the named cache
func (c *Config) WithCacheTTL(cacheName string, ttl time.Duration) *Config {
	if ttl < 0 {
		panic(fmt.Sprintf("invalid TTL for cache %s: %v, must be non-negative", cacheName, ttl))
	}
	c.CacheTTLs[cacheName] = ttl
	return c
}

// Validate checks the configuration for inconsistent values
func (c *Config) Validate() error {
	if c.Host == "" {
		return errors.New("host is required")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.MaxIdleConns < c.MinIdleConns {
		return fmt.Errorf("max idle connections (%d) lower than min idle connections (%d)", c.MaxIdleConns, c.MinIdleConns)
	}
	return nil
}

// Addr returns host:port
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
