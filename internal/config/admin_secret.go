package config

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/crypto/argon2"
)

// argon2id parameters for the admin secret.
const (
	argonTime    = 3
	argonMemory  = 64 * 1024
	argonThreads = 2
	argonKeyLen  = 32
	argonSaltLen = 16
)

const argon2idPrefix = "$argon2id$"

// HashAdminSecret derives an argon2id PHC string from a plaintext secret.
func HashAdminSecret(secret string) (string, error) {
	salt := make([]byte, argonSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	key := argon2.IDKey([]byte(secret), salt, argonTime, argonMemory, argonThreads, argonKeyLen)
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, argonMemory, argonTime, argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// VerifyAdminSecret checks a plaintext secret against a PHC string produced
// by HashAdminSecret.
func VerifyAdminSecret(phc, secret string) (bool, error) {
	var version int
	var memory, timeCost uint32
	var threads uint8
	var saltB64, keyB64 string

	rest, ok := strings.CutPrefix(phc, argon2idPrefix)
	if !ok {
		return false, fmt.Errorf("not an argon2id hash")
	}
	if _, err := fmt.Sscanf(rest, "v=%d$m=%d,t=%d,p=%d$", &version, &memory, &timeCost, &threads); err != nil {
		return false, fmt.Errorf("parse argon2id parameters: %w", err)
	}
	parts := strings.Split(rest, "$")
	if len(parts) != 4 {
		return false, fmt.Errorf("malformed argon2id hash")
	}
	saltB64, keyB64 = parts[2], parts[3]

	salt, err := base64.RawStdEncoding.DecodeString(saltB64)
	if err != nil {
		return false, fmt.Errorf("decode salt: %w", err)
	}
	want, err := base64.RawStdEncoding.DecodeString(keyB64)
	if err != nil {
		return false, fmt.Errorf("decode key: %w", err)
	}

	got := argon2.IDKey([]byte(secret), salt, timeCost, memory, threads, uint32(len(want)))
	return subtle.ConstantTimeCompare(got, want) == 1, nil
}

// EnsureHashedAdminSecret treats a config file whose admin.secret is not a
// recognized argon2id string as plaintext: it hashes the value and rewrites
// the file atomically. Returns true when the file was rewritten.
func EnsureHashedAdminSecret(path string) (bool, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("read config file: %w", err)
	}

	var doc map[string]any
	if err := toml.Unmarshal(raw, &doc); err != nil {
		return false, fmt.Errorf("parse config file: %w", err)
	}

	admin, ok := doc["admin"].(map[string]any)
	if !ok {
		return false, nil
	}
	secret, ok := admin["secret"].(string)
	if !ok || secret == "" || strings.HasPrefix(secret, argon2idPrefix) {
		return false, nil
	}

	hashed, err := HashAdminSecret(secret)
	if err != nil {
		return false, err
	}
	admin["secret"] = hashed

	out, err := toml.Marshal(doc)
	if err != nil {
		return false, fmt.Errorf("serialize config file: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".ocrch-config-*")
	if err != nil {
		return false, fmt.Errorf("create temp config file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(out); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return false, fmt.Errorf("write temp config file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return false, fmt.Errorf("close temp config file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return false, fmt.Errorf("replace config file: %w", err)
	}
	return true, nil
}
