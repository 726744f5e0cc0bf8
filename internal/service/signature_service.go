package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"hash"
	"io"

	"gear-client/internal/core/ports"
	"gear-client/pkg/apperror"
)

// Signature schemes selectable through configuration.
const (
	SchemeGear      = "gear"
	SchemeHexSHA256 = "hmac-sha256-hex"
)

// NewSignatureService returns the signature service for a configured scheme.
// An empty scheme selects the gateway's own protocol.
func NewSignatureService(scheme string) (ports.SignatureService, error) {
	switch scheme {
	case "", SchemeGear:
		return NewGearSignatureService(), nil
	case SchemeHexSHA256:
		return NewHMACSignatureService(), nil
	default:
		return nil, apperror.ErrConfiguration(fmt.Sprintf("unknown signature scheme %q", scheme))
	}
}

// GearSignatureService implements ports.SignatureService with the gateway's
// documented protocol:
//
//	base64(HMAC-SHA512(secret, METHOD + URL + SHA512(NONCE + BODY)))
//
// The inner digest is appended raw. Callbacks are signed with an empty nonce
// and an empty body.
type GearSignatureService struct{}

// NewGearSignatureService creates the gateway protocol signature service.
func NewGearSignatureService() *GearSignatureService {
	return &GearSignatureService{}
}

// Sign signs a callback-style request (no nonce, no body).
func (s *GearSignatureService) Sign(secret, method, requestURL string) string {
	return s.SignRequest(secret, method, requestURL, "", nil)
}

// SignRequest signs an outbound API request.
func (s *GearSignatureService) SignRequest(secret, method, requestURL, nonce string, body []byte) string {
	return base64.StdEncoding.EncodeToString(s.digest(secret, method, requestURL, nonce, body))
}

// Verify reports whether presented is exactly the encoded callback signature.
// The comparison runs over the encoded text in constant time, so alternate
// base64 spellings of the same digest are rejected.
func (s *GearSignatureService) Verify(secret, method, requestURL, presented string) bool {
	return presented != "" && encodedEqual(s.Sign(secret, method, requestURL), presented)
}

func (s *GearSignatureService) digest(secret, method, requestURL, nonce string, body []byte) []byte {
	inner := sha512.New()
	io.WriteString(inner, nonce)
	inner.Write(body)

	return keyedDigest(sha512.New, secret, method, requestURL, inner.Sum(nil))
}

// HMACSignatureService implements ports.SignatureService using HMAC-SHA256
// over METHOD + URL + NONCE + BODY, returned as lowercase hex.
type HMACSignatureService struct{}

// NewHMACSignatureService creates a new HMAC-SHA256 signature service.
func NewHMACSignatureService() *HMACSignatureService {
	return &HMACSignatureService{}
}

// Sign computes HMAC-SHA256 of method + URL.
func (s *HMACSignatureService) Sign(secret, method, requestURL string) string {
	return s.SignRequest(secret, method, requestURL, "", nil)
}

// SignRequest computes HMAC-SHA256 of method + URL + nonce + body.
func (s *HMACSignatureService) SignRequest(secret, method, requestURL, nonce string, body []byte) string {
	return hex.EncodeToString(keyedDigest(sha256.New, secret, method, requestURL, []byte(nonce), body))
}

// Verify reports whether presented is exactly the lowercase hex
// HMAC-SHA256(secret, method + URL).
func (s *HMACSignatureService) Verify(secret, method, requestURL, presented string) bool {
	return presented != "" && encodedEqual(s.Sign(secret, method, requestURL), presented)
}

// encodedEqual compares two encoded signatures in constant time. A signature
// verifies only in the spelling Sign produces, which also keeps it usable as
// a de-duplication key.
func encodedEqual(expected, presented string) bool {
	return hmac.Equal([]byte(expected), []byte(presented))
}

func keyedDigest(h func() hash.Hash, secret, method, requestURL string, tail ...[]byte) []byte {
	mac := hmac.New(h, []byte(secret))
	io.WriteString(mac, method)
	io.WriteString(mac, requestURL)
	for _, part := range tail {
		mac.Write(part)
	}
	return mac.Sum(nil)
}
