package utils

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"strconv"
	"time"
)

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// GenerateRandomString returns n characters drawn from [0-9a-z] using crypto/rand.
func GenerateRandomString(n int) (string, error) {
	return randomString(rand.Reader, n)
}

func randomString(r io.Reader, n int) (string, error) {
	result := make([]byte, n)
	max := big.NewInt(int64(len(base36)))
	for i := 0; i < n; i++ {
		num, err := rand.Int(r, max)
		if err != nil {
			return "", fmt.Errorf("read random bytes: %w", err)
		}
		result[i] = base36[num.Int64()]
	}
	return string(result), nil
}

// GenerateSessionID returns an opaque cart session token: random base36
// followed by the current time in base36, so tokens also sort by creation.
func GenerateSessionID() (string, error) {
	prefix, err := GenerateRandomString(11)
	if err != nil {
		return "", err
	}
	return prefix + strconv.FormatInt(time.Now().UnixMilli(), 36), nil
}
