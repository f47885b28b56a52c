package utils

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RandomInt32 generates a secure random 32-bit integer
func RandomInt32() int32 {
	var num int32
	err := binary.Read(rand.Reader, binary.BigEndian, &num)
	if err != nil {
		panic("generate random int32 failed")
	}

	return num
}

// RandomFileName builds a unique filename with the given prefix and extension,
// e.g. "id-photo-1714038000-4f9d.jpg". The extension must include the dot.
func RandomFileName(prefix, ext string) string {
	return fmt.Sprintf("%s-%d-%s%s", prefix, time.Now().Unix(), uuid.NewString()[:8], ext)
}
