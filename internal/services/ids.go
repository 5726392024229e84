package services

import (
	"fmt"

	"github.com/google/uuid"
)

// newID builds a prefixed identifier in the same shape as the seeded
// fixtures (u_..., w_..., p_...).
func newID(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, uuid.NewString())
}
