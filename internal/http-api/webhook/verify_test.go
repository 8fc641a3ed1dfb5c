package webhook

import (
	"encoding/base64"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "whsec_" + "dGhpcy1pcy1hLXRlc3Qtd2ViaG9vay1zZWNyZXQ=" // "this-is-a-test-webhook-secret"

func signedDelivery(t *testing.T, body []byte, at time.Time) (msgID, timestamp, signature string) {
	t.Helper()
	msgID = "msg_2abc"
	timestamp = fmt.Sprintf("%d", at.Unix())
	signature, err := Sign(testSecret, msgID, timestamp, body)
	require.NoError(t, err)
	return msgID, timestamp, signature
}

func TestVerify_ValidSignature(t *testing.T) {
	now := time.Now()
	body := []byte(`{"type":"user.created","data":{"id":"user_1"}}`)
	msgID, ts, sig := signedDelivery(t, body, now)

	err := Verify(testSecret, msgID, ts, sig, body, now)

	assert.NoError(t, err)
}

func TestVerify_TamperedBody(t *testing.T) {
	now := time.Now()
	body := []byte(`{"type":"user.created","data":{"id":"user_1"}}`)
	msgID, ts, sig := signedDelivery(t, body, now)

	tampered := []byte(`{"type":"user.deleted","data":{"id":"user_1"}}`)
	err := Verify(testSecret, msgID, ts, sig, tampered, now)

	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestVerify_WrongSecret(t *testing.T) {
	now := time.Now()
	body := []byte(`{}`)
	msgID, ts, sig := signedDelivery(t, body, now)

	other := "whsec_" + base64.StdEncoding.EncodeToString([]byte("another-secret-entirely-here"))
	err := Verify(other, msgID, ts, sig, body, now)

	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestVerify_MissingHeaders(t *testing.T) {
	now := time.Now()
	body := []byte(`{}`)
	msgID, ts, sig := signedDelivery(t, body, now)

	assert.ErrorIs(t, Verify(testSecret, "", ts, sig, body, now), ErrMissingHeaders)
	assert.ErrorIs(t, Verify(testSecret, msgID, "", sig, body, now), ErrMissingHeaders)
	assert.ErrorIs(t, Verify(testSecret, msgID, ts, "", body, now), ErrMissingHeaders)
}

func TestVerify_StaleTimestamp(t *testing.T) {
	now := time.Now()
	body := []byte(`{}`)

	past := now.Add(-Tolerance - time.Minute)
	msgID, ts, sig := signedDelivery(t, body, past)
	assert.ErrorIs(t, Verify(testSecret, msgID, ts, sig, body, now), ErrStaleTimestamp)

	future := now.Add(Tolerance + time.Minute)
	msgID, ts, sig = signedDelivery(t, body, future)
	assert.ErrorIs(t, Verify(testSecret, msgID, ts, sig, body, now), ErrStaleTimestamp)
}

func TestVerify_AcceptsAnyMatchingSignatureInList(t *testing.T) {
	now := time.Now()
	body := []byte(`{"type":"user.updated"}`)
	msgID, ts, sig := signedDelivery(t, body, now)

	// Providers send multiple signatures during secret rotation; one match
	// is enough, and unknown versions are skipped.
	list := "v1," + base64.StdEncoding.EncodeToString([]byte("garbage")) + " v2,bm9wZQ== " + sig

	assert.NoError(t, Verify(testSecret, msgID, ts, list, body, now))
}

func TestVerify_RejectsMalformedSecret(t *testing.T) {
	now := time.Now()
	body := []byte(`{}`)
	msgID, ts, sig := signedDelivery(t, body, now)

	err := Verify("whsec_%%%not-base64%%%", msgID, ts, sig, body, now)

	assert.Error(t, err)
}
