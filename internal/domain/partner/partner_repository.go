package partner

import (
	"github.com/bhslighting/backend/internal/domain/shared"
)

// PartnerRepository defines the persistence contract for partners
type PartnerRepository interface {
	shared.Repository[Partner]
}
