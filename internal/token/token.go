// Package token implements the two token kinds used by handoffs: single-use
// DB-backed handoff secrets and stateless HMAC-signed item tag capabilities.
package token

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

const tagPurpose = "item_tag"

type Service struct {
	tagSecret []byte
}

func NewService(tagSecret []byte) *Service {
	return &Service{tagSecret: tagSecret}
}

// GenerateHandoffSecret returns a fresh opaque secret and its storable hash.
// The secret itself is never persisted, only handed back for link building.
func GenerateHandoffSecret() (string, string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", "", err
	}
	secret := hex.EncodeToString(buf)
	return secret, HashSecret(secret), nil
}

func HashSecret(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}

// VerifyHandoffSecret checks a supplied secret against the stored hash of a
// live token. All failure modes look identical to the caller.
func VerifyHandoffSecret(storedHash, supplied string, usedAt, expiresAt *time.Time, now time.Time) bool {
	suppliedHash := HashSecret(supplied)
	match := subtle.ConstantTimeCompare([]byte(storedHash), []byte(suppliedHash)) == 1
	if !match {
		return false
	}
	if usedAt != nil {
		return false
	}
	if expiresAt != nil && !expiresAt.After(now) {
		return false
	}
	return true
}

type tagPayload struct {
	ItemID  string `json:"item_id"`
	Version int    `json:"version"`
	Purpose string `json:"purpose"`
}

// IssueTagToken signs a stateless capability bound to an item and its tag
// version. Rotating the version on the item invalidates every previously
// printed tag at once.
func (s *Service) IssueTagToken(itemID uuid.UUID, version int) string {
	raw, _ := json.Marshal(tagPayload{
		ItemID:  itemID.String(),
		Version: version,
		Purpose: tagPurpose,
	})
	payload := base64.RawURLEncoding.EncodeToString(raw)
	return payload + "." + s.signTagPayload(payload)
}

func (s *Service) VerifyTagToken(token string, itemID uuid.UUID, currentVersion int) bool {
	payload, providedSignature, ok := strings.Cut(token, ".")
	if !ok || payload == "" || providedSignature == "" {
		return false
	}

	expected := s.signTagPayload(payload)
	if subtle.ConstantTimeCompare([]byte(providedSignature), []byte(expected)) != 1 {
		return false
	}

	raw, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return false
	}
	var parsed tagPayload
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return false
	}

	return parsed.Purpose == tagPurpose &&
		parsed.ItemID == itemID.String() &&
		parsed.Version == currentVersion
}

func (s *Service) signTagPayload(payload string) string {
	mac := hmac.New(sha256.New, s.tagSecret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
