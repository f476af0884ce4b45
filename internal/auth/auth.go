package auth

import "github.com/giftflow-app/backend/internal/config"

// ForConfig picks the credential strategies for the configured mode.
func ForConfig(cfg config.Config) (PasswordChecker, TokenMinter) {
	if cfg.MockMode {
		return PlainChecker{}, MockMinter{}
	}
	return BcryptChecker{}, JWTMinter{
		Secret: []byte(cfg.JWTSecret),
		TTL:    cfg.JWTExpiry,
	}
}
