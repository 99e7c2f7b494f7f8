// Package idgenerator provides functionality for generating unique IDs
// that are composed of a prefix, a timestamp, and a base64-encoded UUID.
package idgenerator

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Generator interface {
	Generate(prefixes ...string) string
}

type IDGenerator struct{}

func New() Generator {
	return &IDGenerator{}
}

// Generate combines the joined prefixes, a millisecond epoch timestamp and a
// raw-URL-base64 UUID. Without a prefix only the timestamp+UUID is returned.
func (g *IDGenerator) Generate(prefixes ...string) string {
	prefix := strings.Join(prefixes, "-")
	epocTime := time.Now().UnixMilli()
	encodedUUID := rawURLEncodedUUID(uuid.New())
	generatedID := fmt.Sprintf("%s-%d%s", prefix, epocTime, encodedUUID)

	if len(prefixes) == 0 || prefix == "" {
		generatedID = fmt.Sprintf("%d%s", epocTime, encodedUUID)
	}

	return generatedID
}

func rawURLEncodedUUID(id uuid.UUID) string {
	uuidInBytes := id[:]
	return base64.RawURLEncoding.EncodeToString(uuidInBytes)
}
