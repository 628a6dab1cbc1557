package model

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// ErrRoomCodeTooShort marks a room code that fails validation at the join
// boundary. It is a user-facing validation error, not a transport fault.
var ErrRoomCodeTooShort = errors.New("room code must be at least 3 characters")

// roomCodeCharset omits I/1/O/0 to avoid confusion when reading codes aloud.
const roomCodeCharset = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const (
	roomCodeLength    = 6
	roomCodeMinLength = 3
)

// NormalizeRoomCode trims whitespace and upper-cases a room code. Every
// existence check, join, and creation goes through this first.
func NormalizeRoomCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ValidateRoomCode normalizes the code and checks the minimum length.
func ValidateRoomCode(code string) (string, error) {
	code = NormalizeRoomCode(code)
	if len(code) < roomCodeMinLength {
		return "", ErrRoomCodeTooShort
	}
	return code, nil
}

// GenerateRoomCode creates a random 6-character room code.
func GenerateRoomCode() (string, error) {
	result := make([]byte, roomCodeLength)
	for i := range result {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(roomCodeCharset))))
		if err != nil {
			return "", fmt.Errorf("generating room code: %w", err)
		}
		result[i] = roomCodeCharset[n.Int64()]
	}
	return string(result), nil
}
