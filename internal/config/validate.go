package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Auth.validate(); err != nil {
		return fmt.Errorf("auth: %w", err)
	}
	if err := c.Parts.validate(); err != nil {
		return fmt.Errorf("parts: %w", err)
	}
	if err := c.Attachments.validate(); err != nil {
		return fmt.Errorf("attachments: %w", err)
	}

	if c.Audit.BufferSize <= 0 {
		return fmt.Errorf("audit.buffer_size must be > 0 (got %d)", c.Audit.BufferSize)
	}
	if c.Audit.WriteTimeout <= 0 {
		return fmt.Errorf("audit.write_timeout must be > 0 (got %v)", c.Audit.WriteTimeout)
	}
	if c.Users.CacheSize <= 0 {
		return fmt.Errorf("users.cache_size must be > 0 (got %d)", c.Users.CacheSize)
	}
	if c.RateLimit.Enabled && c.RateLimit.WritesPerMinute <= 0 {
		return fmt.Errorf("rate_limit.writes_per_minute must be > 0 (got %d)", c.RateLimit.WritesPerMinute)
	}

	return nil
}

func (a *AuthConfig) validate() error {
	if a.JWKSURL == "" && a.JWTSecret == "" {
		return fmt.Errorf("either jwt_secret or jwks_url must be set")
	}
	if a.JWTSecret != "" && len(a.JWTSecret) < 32 {
		return fmt.Errorf("jwt_secret must be at least 32 characters (got %d)", len(a.JWTSecret))
	}
	if strings.TrimSpace(a.UsersGroup) == "" || strings.TrimSpace(a.AdminsGroup) == "" {
		return fmt.Errorf("users_group and admins_group must not be empty")
	}
	return nil
}

func (p *PartsConfig) validate() error {
	if strings.TrimSpace(p.LabPrefix) == "" {
		return fmt.Errorf("lab_prefix must not be empty")
	}
	if p.DeleteWindow <= 0 {
		return fmt.Errorf("delete_window must be > 0 (got %v)", p.DeleteWindow)
	}
	if p.MaxAttachmentBytes <= 0 {
		return fmt.Errorf("max_attachment_bytes must be > 0 (got %d)", p.MaxAttachmentBytes)
	}
	if p.MaxPageSize <= 0 {
		return fmt.Errorf("max_page_size must be > 0 (got %d)", p.MaxPageSize)
	}
	return nil
}

func (a *AttachmentsConfig) validate() error {
	switch a.Driver {
	case AttachmentDriverPostgres:
	case AttachmentDriverS3:
		if a.Bucket == "" {
			return fmt.Errorf("bucket is required for the s3 driver")
		}
	default:
		return fmt.Errorf("unknown driver %q (want %q or %q)", a.Driver, AttachmentDriverPostgres, AttachmentDriverS3)
	}
	return nil
}
