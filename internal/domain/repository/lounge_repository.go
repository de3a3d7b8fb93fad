package repository

import (
	"context"

	"loungeadvisor-service/internal/domain/entity"
)

// LoungeRepository defines the lounge catalog gateway. The result always
// carries the normalized airport code, with an empty lounge list when the
// airport has no catalog entries.
type LoungeRepository interface {
	GetLoungesWithAccessRules(ctx context.Context, airportCode string) (*entity.AirportLounges, error)
}
