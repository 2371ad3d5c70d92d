package tag

import (
	"time"

	"github.com/google/uuid"
)

const MaxNameLength = 50

// Tag labels articles. An article must carry at least one tag before
// it is considered publishable.
type Tag struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
