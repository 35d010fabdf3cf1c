package config

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const minJWTSecretLen = 32

// Validate checks business rules cleanenv tags cannot express. Every
// problem is reported, not only the first. Load calls it.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Database.validate(),
		c.Auth.validate(),
		c.Booking.validate(),
	)
}

func (s ServerConfig) validate() error {
	var errs []error
	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be within [1, 65535] (got %d)", s.Port))
	}
	if s.ShutdownTimeout < 0 {
		errs = append(errs, fmt.Errorf("server.shutdown_timeout must not be negative (got %v)", s.ShutdownTimeout))
	}
	return errors.Join(errs...)
}

func (d DatabaseConfig) validate() error {
	var errs []error
	if d.MaxConns <= 0 {
		errs = append(errs, fmt.Errorf("database.max_conns must be > 0 (got %d)", d.MaxConns))
	}
	if d.MinConns < 0 || d.MinConns > d.MaxConns {
		errs = append(errs, fmt.Errorf("database.min_conns must be within [0, max_conns] (got %d)", d.MinConns))
	}
	return errors.Join(errs...)
}

func (a AuthConfig) validate() error {
	var errs []error
	if len(a.JWTSecret) < minJWTSecretLen {
		errs = append(errs, fmt.Errorf("auth.jwt_secret must be at least %d characters (got %d)", minJWTSecretLen, len(a.JWTSecret)))
	}
	if a.AccessTokenTTL <= 0 {
		errs = append(errs, fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", a.AccessTokenTTL))
	}
	if a.BcryptCost < bcrypt.MinCost || a.BcryptCost > bcrypt.MaxCost {
		errs = append(errs, fmt.Errorf("auth.bcrypt_cost must be within [%d, %d] (got %d)", bcrypt.MinCost, bcrypt.MaxCost, a.BcryptCost))
	}
	if a.LoginRateLimit <= 0 {
		errs = append(errs, fmt.Errorf("auth.login_rate_limit must be > 0 (got %d)", a.LoginRateLimit))
	}
	return errors.Join(errs...)
}

func (b BookingConfig) validate() error {
	var errs []error
	if b.MaxMeetingDuration <= 0 {
		errs = append(errs, fmt.Errorf("booking.max_meeting_duration must be > 0 (got %v)", b.MaxMeetingDuration))
	}
	if b.MaxParticipants <= 0 {
		errs = append(errs, fmt.Errorf("booking.max_participants must be > 0 (got %d)", b.MaxParticipants))
	}
	return errors.Join(errs...)
}
