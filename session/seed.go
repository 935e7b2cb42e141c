package session

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/devlikebear/gamehub-sub000/parameter"
)

// DeriveSeed mixes the level number with elapsed wall-clock time at retry.
// The core treats the result as opaque; non-positive results become 1.
func DeriveSeed(level int, elapsed time.Duration) int64 {
	seed := int64(level)*parameter.SeedLevelStride + elapsed.Milliseconds()
	if seed <= 0 {
		return 1
	}
	return seed
}

// AttemptID is a stable name-based id for one level attempt
func AttemptID(level int, seed int64) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("stealth/level=%d/seed=%d", level, seed)))
}
