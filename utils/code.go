package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateInvitationCode returns a 32-char code with 122 bits of
// randomness. Codes must be unguessable; do not shorten this.
func GenerateInvitationCode() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
