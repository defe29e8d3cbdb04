package hint

import (
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
)

// UUID4Hint generates a random (version 4) UUID string.
type UUID4Hint struct{}

// Tag implements Hint.
func (UUID4Hint) Tag() Tag { return UUID4 }

// Process implements Hint.
func (UUID4Hint) Process(rng *rand.Rand, seed Result) Result {
	if seed.Set {
		return passThrough(seed)
	}

	var b [16]byte
	for i := range b {
		b[i] = byte(rng.IntN(256))
	}

	id, err := uuid.FromBytes(b[:])
	if err != nil {
		return Result{Value: uuid.New().String(), Set: true}
	}

	id[6] = (id[6] & 0x0f) | 0x40
	id[8] = (id[8] & 0x3f) | 0x80

	return Result{Value: id.String(), Set: true}
}

// MACHint generates a random MAC address in colon-separated hex form.
type MACHint struct{}

// Tag implements Hint.
func (MACHint) Tag() Tag { return MAC }

// Process implements Hint.
func (MACHint) Process(rng *rand.Rand, seed Result) Result {
	if seed.Set {
		return passThrough(seed)
	}

	octets := make([]any, 6)
	for i := range octets {
		octets[i] = rng.IntN(256)
	}

	return Result{Value: fmt.Sprintf("%02x:%02x:%02x:%02x:%02x:%02x", octets...), Set: true}
}

// Auth0IDHint generates an `auth0|`-prefixed identifier.
type Auth0IDHint struct{}

// Tag implements Hint.
func (Auth0IDHint) Tag() Tag { return Auth0ID }

// Process implements Hint.
func (Auth0IDHint) Process(rng *rand.Rand, seed Result) Result {
	if seed.Set {
		return passThrough(seed)
	}

	const alphabet = "0123456789abcdef"

	b := make([]byte, 24)
	for i := range b {
		b[i] = alphabet[rng.IntN(len(alphabet))]
	}

	return Result{Value: "auth0|" + string(b), Set: true}
}
