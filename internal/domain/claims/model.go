package claims

import (
	"encoding/json"
	"fmt"
	"maps"
	"sort"
	"strings"
)

// AdminClaim is the custom claim this tool grants.
const AdminClaim = "isAdmin"

const (
	maxUIDLength     = 128
	maxClaimsPayload = 1000
)

// reservedClaims cannot be used as custom claim names.
var reservedClaims = []string{
	"acr", "amr", "at_hash", "aud", "auth_time", "azp", "cnf", "c_hash",
	"exp", "firebase", "iat", "iss", "jti", "nbf", "nonce", "sub",
}

// Claims is a custom claim set attached to a user.
type Claims map[string]any

// Merge returns a copy of c with every key of update written over it.
func (c Claims) Merge(update Claims) Claims {
	out := make(Claims, len(c)+len(update))
	maps.Copy(out, c)
	maps.Copy(out, update)
	return out
}

// IsAdmin reports whether the admin flag is set to true.
func (c Claims) IsAdmin() bool {
	v, ok := c[AdminClaim].(bool)
	return ok && v
}

// Validate checks the limits the backend enforces on custom claims.
func (c Claims) Validate() error {
	for _, k := range reservedClaims {
		if _, ok := c[k]; ok {
			return fmt.Errorf("%w: claim %q is reserved", ErrInvalidArgument, k)
		}
	}
	b, err := json.Marshal(map[string]any(c))
	if err != nil {
		return fmt.Errorf("%w: claims are not serializable: %v", ErrInvalidArgument, err)
	}
	if len(b) > maxClaimsPayload {
		return fmt.Errorf("%w: serialized claims must not exceed %d bytes", ErrInvalidArgument, maxClaimsPayload)
	}
	return nil
}

// String renders claims with sorted keys so output is stable.
func (c Claims) String() string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %v", k, c[k]))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

type User struct {
	UID          string
	Email        string
	CustomClaims Claims
}

// Result describes a completed claim update.
type Result struct {
	UID     string
	Applied Claims
	// Verified is set after a successful verification read.
	Verified *User
}

func ValidateUID(uid string) error {
	if uid == "" {
		return fmt.Errorf("%w: uid must be a non-empty string", ErrInvalidArgument)
	}
	if len(uid) > maxUIDLength {
		return fmt.Errorf("%w: uid must not be longer than %d characters", ErrInvalidArgument, maxUIDLength)
	}
	return nil
}
