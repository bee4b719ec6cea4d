package service

import (
	"math/rand"
	"strconv"
	"strings"
	"time"
)

const (
	trackingCodePrefix = "RC"
	trackingSuffixLen  = 5
	base36Digits       = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// trackingCode produces a candidate booking code: a millisecond timestamp
// in base36 for rough chronological ordering plus a random suffix. Codes
// are not security-sensitive, so math/rand is enough. Uniqueness is the
// database constraint's job, never this function's.
func trackingCode(now time.Time) string {
	var b strings.Builder
	b.WriteString(trackingCodePrefix)
	b.WriteString(strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36)))
	for i := 0; i < trackingSuffixLen; i++ {
		b.WriteByte(base36Digits[rand.Intn(len(base36Digits))])
	}
	return b.String()
}
