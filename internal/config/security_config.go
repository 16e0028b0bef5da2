package config

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"
)

type SecurityConfig interface {
	GetSessionSecret() []byte
	GetMaxSessionAge() time.Duration
}

type Security struct{}

var _ SecurityConfig = Security{}

var (
	generatedSecret     []byte
	generatedSecretOnce sync.Once
)

// GetSessionSecret returns the key used to sign session cookies.
// Falls back to a random per-process key, which invalidates all
// sessions on restart.
func (Security) GetSessionSecret() []byte {
	if secret := GetEnv("SESSION_SECRET", ""); secret != "" {
		return []byte(secret)
	}
	generatedSecretOnce.Do(func() {
		b := make([]byte, 32)
		rand.Read(b)
		generatedSecret = []byte(hex.EncodeToString(b))
	})
	return generatedSecret
}

func (Security) GetMaxSessionAge() time.Duration {
	return 30 * time.Minute // Session cookie lifetime
}
