package split

import (
	"errors"

	"github.com/fanvault/payments/internal/domain"
)

var (
	ErrUnknownCategory = errors.New("unknown revenue category")
	ErrNegativeAmount  = errors.New("amount must not be negative")
)

// creatorPercent maps each known category to the creator's share.
// The platform keeps the rest.
var creatorPercent = map[domain.Category]int64{
	domain.CategorySubscription:     80,
	domain.CategoryOneTimeExclusive: 80,
	domain.CategoryTip:              80,
	domain.CategoryMerchandise:      90,
}

// CreatorPercent returns the creator's percentage for a category.
func CreatorPercent(category domain.Category) (int64, error) {
	pct, ok := creatorPercent[category]
	if !ok {
		return 0, ErrUnknownCategory
	}
	return pct, nil
}

// Split divides an amount of minor currency units between creator and
// platform. The creator share is floor-rounded and the platform keeps the
// remainder, so creatorShare + platformShare == amount always holds.
func Split(amount int64, category domain.Category) (creatorShare, platformShare int64, err error) {
	if amount < 0 {
		return 0, 0, ErrNegativeAmount
	}
	pct, err := CreatorPercent(category)
	if err != nil {
		return 0, 0, err
	}
	creatorShare = amount * pct / 100
	platformShare = amount - creatorShare
	return creatorShare, platformShare, nil
}
