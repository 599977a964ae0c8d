package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/binary"
	"os"
	"sync/atomic"
	"time"
)

// Counter for sequential uniqueness
var sequenceCounter uint64 = 0

// GenerateID creates a cryptographically secure unique ID from a timestamp,
// the process ID, an atomic counter and random bytes, hashed to a fixed size.
func GenerateID() string {
	buf := make([]byte, 0, 128)

	// High-precision timestamp (8 bytes)
	timeBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(timeBytes, uint64(time.Now().UnixNano()))
	buf = append(buf, timeBytes...)

	// Process ID (4 bytes)
	pidBytes := make([]byte, 4)
	binary.BigEndian.PutUint32(pidBytes, uint32(os.Getpid()))
	buf = append(buf, pidBytes...)

	// Atomic counter for sequential uniqueness (8 bytes)
	counterBytes := make([]byte, 8)
	counter := atomic.AddUint64(&sequenceCounter, 1)
	binary.BigEndian.PutUint64(counterBytes, counter)
	buf = append(buf, counterBytes...)

	// Cryptographically secure random bytes (32 bytes)
	randomBytes := make([]byte, 32)
	_, err := rand.Read(randomBytes)
	if err != nil {
		// Fallback to something deterministic but still unique if rand fails
		h := sha256.New()
		h.Write(buf)
		h.Write([]byte(time.Now().String()))
		randomBytes = h.Sum(nil)
	}
	buf = append(buf, randomBytes...)

	hash := sha256.Sum256(buf)
	encoded := base64.URLEncoding.EncodeToString(hash[:])

	// Without padding
	return encoded[:43]
}

// GenerateShortID creates a shorter ID (good for visible IDs but still secure)
func GenerateShortID() string {
	buf := make([]byte, 0, 64)

	timeBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(timeBytes, uint64(time.Now().UnixNano()))
	buf = append(buf, timeBytes...)

	counterBytes := make([]byte, 8)
	counter := atomic.AddUint64(&sequenceCounter, 1)
	binary.BigEndian.PutUint64(counterBytes, counter)
	buf = append(buf, counterBytes...)

	randomBytes := make([]byte, 8)
	rand.Read(randomBytes)
	buf = append(buf, randomBytes...)

	hash := sha256.Sum256(buf)

	// Use just the first 16 bytes for a shorter ID
	encoded := base64.URLEncoding.EncodeToString(hash[:16])

	// Without padding
	return encoded[:22]
}

// GeneratePrefixedID generates an ID with a readable prefix
func GeneratePrefixedID(prefix string) string {
	return prefix + "-" + GenerateShortID()
}

// GenerateUserID creates a user record ID
func GenerateUserID() string {
	return GeneratePrefixedID("user")
}
