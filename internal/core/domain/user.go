package domain

import (
	"github.com/google/uuid"
)

// User is the root owner of models, audits and reports. There is no
// authentication surface; users exist so ownership references resolve.
type User struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Password string    `json:"-"`
}
