package utils

import (
	"math/rand"
	"strings"
)

const letterBytes = "abcdefghijklmnopqrstuvwxyz"

const MeetingBaseURL = "https://meet.mockprep.dev/"

// GenerateCode returns n random lowercase letters.
func GenerateCode(r *rand.Rand, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = letterBytes[r.Intn(len(letterBytes))]
	}
	return string(b)
}

// MeetingCode returns a room code in the xxx-xxxx-xxx form.
func MeetingCode(r *rand.Rand) string {
	return strings.Join([]string{GenerateCode(r, 3), GenerateCode(r, 4), GenerateCode(r, 3)}, "-")
}

func MeetingLink(r *rand.Rand) string {
	return MeetingBaseURL + MeetingCode(r)
}
