// Package webhook verifies identity-provider webhook signatures. The provider
// signs svix-style: HMAC-SHA256 over "{id}.{timestamp}.{body}" with a shared
// secret delivered as "whsec_<base64>", and sends the result in a
// space-separated list of "v1,<base64 signature>" values.
package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrMissingHeaders   = errors.New("missing webhook signature headers")
	ErrInvalidSignature = errors.New("webhook signature mismatch")
	ErrStaleTimestamp   = errors.New("webhook timestamp outside tolerance")
)

// Tolerance bounds how old (or how far in the future) a signed timestamp may
// be before the message is rejected as a replay.
const Tolerance = 5 * time.Minute

const secretPrefix = "whsec_"

// Verify checks the signature headers of one webhook delivery against the
// shared secret. msgID, timestamp and signature come from the svix-id,
// svix-timestamp and svix-signature headers.
func Verify(secret, msgID, timestamp, signature string, body []byte, now time.Time) error {
	if msgID == "" || timestamp == "" || signature == "" {
		return ErrMissingHeaders
	}

	key, err := decodeSecret(secret)
	if err != nil {
		return err
	}

	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid webhook timestamp: %w", err)
	}
	age := now.Sub(time.Unix(ts, 0))
	if age > Tolerance || age < -Tolerance {
		return ErrStaleTimestamp
	}

	signed := msgID + "." + timestamp + "." + string(body)
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(signed))
	expected := mac.Sum(nil)

	// The header may carry several versioned signatures; any matching v1
	// signature accepts the delivery.
	for _, part := range strings.Fields(signature) {
		version, sig, found := strings.Cut(part, ",")
		if !found || version != "v1" {
			continue
		}
		got, err := base64.StdEncoding.DecodeString(sig)
		if err != nil {
			continue
		}
		if hmac.Equal(expected, got) {
			return nil
		}
	}

	return ErrInvalidSignature
}

func decodeSecret(secret string) ([]byte, error) {
	trimmed := strings.TrimPrefix(secret, secretPrefix)
	key, err := base64.StdEncoding.DecodeString(trimmed)
	if err != nil {
		return nil, fmt.Errorf("invalid webhook secret: %w", err)
	}
	return key, nil
}

// Sign produces a v1 signature for a payload. Exported for tests and local
// tooling that replays provider events.
func Sign(secret, msgID, timestamp string, body []byte) (string, error) {
	key, err := decodeSecret(secret)
	if err != nil {
		return "", err
	}
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(msgID + "." + timestamp + "." + string(body)))
	return "v1," + base64.StdEncoding.EncodeToString(mac.Sum(nil)), nil
}
