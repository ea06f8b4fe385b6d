// Package qr builds the signed payment reference shown to the payer and renders it as a PNG.
package qr

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/hoaht-8203/Badminton-Court-Management-System-sub003/internal/domain"
	"github.com/skip2/go-qrcode"
)

const (
	prefix      = "CBK1"
	DefaultSize = 256
)

var ErrBadSignature = errors.New("qr payload signature mismatch")

type Signer struct {
	secret []byte
}

func NewSigner(secret string) *Signer {
	return &Signer{secret: []byte(secret)}
}

// Payload returns prefix|paymentID|bookingID|amount|expiresUnix|signature.
func (s *Signer) Payload(p *domain.Payment) string {
	data := fmt.Sprintf("%s|%s|%s|%d|%d", prefix, p.ID, p.BookingID, p.Amount, p.ExpiresAtUTC.Unix())
	return data + "|" + s.sign(data)
}

// Verify checks the signature and returns the payment id the payload refers to.
func (s *Signer) Verify(payload string) (string, error) {
	i := strings.LastIndex(payload, "|")
	if i < 0 {
		return "", ErrBadSignature
	}
	data, sig := payload[:i], payload[i+1:]
	if !hmac.Equal([]byte(sig), []byte(s.sign(data))) {
		return "", ErrBadSignature
	}

	parts := strings.Split(data, "|")
	if len(parts) != 5 || parts[0] != prefix {
		return "", ErrBadSignature
	}
	if _, err := strconv.ParseInt(parts[3], 10, 64); err != nil {
		return "", ErrBadSignature
	}
	return parts[1], nil
}

func (s *Signer) sign(data string) string {
	h := hmac.New(sha256.New, s.secret)
	h.Write([]byte(data))
	return base64.RawURLEncoding.EncodeToString(h.Sum(nil))
}

// PNG renders payload as a QR code image of size pixels.
func PNG(payload string, size int) ([]byte, error) {
	if size <= 0 {
		size = DefaultSize
	}
	png, err := qrcode.Encode(payload, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	return png, nil
}
