// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MemberDash Contributors

package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"github.com/samber/oops"
	"golang.org/x/crypto/argon2"
)

// OWASP-recommended argon2id parameters.
const (
	DefaultArgon2Time    = 1         // iterations
	DefaultArgon2Memory  = 64 * 1024 // KiB, 64 MB
	DefaultArgon2Threads = 4         // parallelism
	DefaultArgon2SaltLen = 16        // salt length in bytes
	DefaultArgon2KeyLen  = 32        // output length in bytes
)

// Argon2Params holds the cost parameters used when producing new hashes.
// Verification always uses the parameters embedded in the stored hash.
type Argon2Params struct {
	Memory  uint32
	Time    uint32
	Threads uint8
	SaltLen uint32
	KeyLen  uint32
}

// DefaultArgon2Params returns the OWASP-recommended parameters.
func DefaultArgon2Params() Argon2Params {
	return Argon2Params{
		Memory:  DefaultArgon2Memory,
		Time:    DefaultArgon2Time,
		Threads: DefaultArgon2Threads,
		SaltLen: DefaultArgon2SaltLen,
		KeyLen:  DefaultArgon2KeyLen,
	}
}

// Validate checks that the parameters can produce a usable hash.
func (p Argon2Params) Validate() error {
	switch {
	case p.Time < 1:
		return oops.Code("AUTH_INVALID_PARAMS").With("time", p.Time).Errorf("argon2 time must be at least 1")
	case p.Threads < 1:
		return oops.Code("AUTH_INVALID_PARAMS").With("threads", p.Threads).Errorf("argon2 threads must be at least 1")
	case p.Memory < 8*uint32(p.Threads):
		return oops.Code("AUTH_INVALID_PARAMS").
			With("memory", p.Memory).
			With("threads", p.Threads).
			Errorf("argon2 memory must be at least 8 KiB per thread")
	case p.SaltLen < 8:
		return oops.Code("AUTH_INVALID_PARAMS").With("salt_len", p.SaltLen).Errorf("argon2 salt must be at least 8 bytes")
	case p.KeyLen < 16:
		return oops.Code("AUTH_INVALID_PARAMS").With("key_len", p.KeyLen).Errorf("argon2 key must be at least 16 bytes")
	}
	return nil
}

// PasswordHasher provides password hashing and verification.
type PasswordHasher interface {
	// Hash produces a self-describing argon2id hash of the password.
	Hash(password string) (string, error)

	// Verify checks if the password matches the hash.
	// Returns (true, nil) on match, (false, nil) on mismatch, or an error
	// wrapping ErrMalformedHash if the hash cannot be parsed.
	Verify(password, hash string) (bool, error)
}

// Argon2idHasher implements PasswordHasher using argon2id.
type Argon2idHasher struct {
	params Argon2Params
	rand   io.Reader
}

// NewArgon2idHasher creates an Argon2idHasher with the default parameters.
func NewArgon2idHasher() *Argon2idHasher {
	return &Argon2idHasher{params: DefaultArgon2Params(), rand: rand.Reader}
}

// NewArgon2idHasherWithParams creates an Argon2idHasher with custom parameters.
func NewArgon2idHasherWithParams(params Argon2Params) (*Argon2idHasher, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Argon2idHasher{params: params, rand: rand.Reader}, nil
}

// Params returns the parameters used for new hashes.
func (h *Argon2idHasher) Params() Argon2Params {
	return h.params
}

// Hash produces an argon2id hash of the password.
func (h *Argon2idHasher) Hash(password string) (string, error) {
	salt := make([]byte, h.params.SaltLen)
	if _, err := io.ReadFull(h.rand, salt); err != nil {
		return "", oops.Code("AUTH_SALT_FAILED").With("salt_len", h.params.SaltLen).Wrap(err)
	}

	hash := argon2.IDKey([]byte(password), salt, h.params.Time, h.params.Memory, h.params.Threads, h.params.KeyLen)

	// PHC string format
	// $argon2id$v=19$m=65536,t=1,p=4$<salt>$<hash>
	encoded := fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.params.Memory,
		h.params.Time,
		h.params.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	)

	return encoded, nil
}

// Verify checks if the password matches the hash.
func (h *Argon2idHasher) Verify(password, encodedHash string) (bool, error) {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 || parts[0] != "" {
		return false, malformedHash("invalid hash format")
	}

	if parts[1] != "argon2id" {
		return false, malformedHash("unsupported hash algorithm: %s", parts[1])
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return false, malformedHash("invalid version segment")
	}
	if version != argon2.Version {
		return false, malformedHash("unsupported argon2 version: %d", version)
	}

	var memory, time, threads uint32
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return false, malformedHash("invalid parameter segment")
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, malformedHash("invalid salt encoding")
	}

	expectedHash, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false, malformedHash("invalid digest encoding")
	}

	// threads is stored as uint8 by argon2; reject values that would truncate
	if threads < 1 || threads > 255 {
		return false, malformedHash("threads value %d out of range", threads)
	}
	if time < 1 {
		return false, malformedHash("time value %d out of range", time)
	}

	keyLen := len(expectedHash)
	if keyLen == 0 || keyLen > 1<<30 {
		return false, malformedHash("invalid hash key length: %d", keyLen)
	}

	computedHash := argon2.IDKey([]byte(password), salt, time, memory, uint8(threads), uint32(keyLen))

	return subtle.ConstantTimeCompare(computedHash, expectedHash) == 1, nil
}

func malformedHash(format string, args ...any) error {
	return oops.Code("AUTH_INVALID_HASH").Wrapf(ErrMalformedHash, format, args...)
}
