package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetDeliveriesByPartnerQueryIsNotConstructed = errors.New(
	"GetDeliveriesByPartnerQuery must be created via NewGetDeliveriesByPartnerQuery constructor",
)

// GetDeliveriesByPartnerQuery retrieves every delivery held by one partner,
// including completed history. Backs the partner's own job list.
//
// Example:
//
//	query, err := NewGetDeliveriesByPartnerQuery(partnerID)
//	if err != nil {
//	    return err
//	}
//	jobs, err := handler.Handle(ctx, query)
type GetDeliveriesByPartnerQuery struct { //nolint:recvcheck //using for validation
	partnerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDeliveriesByPartnerQuery creates a query for one partner's deliveries.
// The partner ID must be a valid UUID.
func NewGetDeliveriesByPartnerQuery(partnerID kernel.UUID) (GetDeliveriesByPartnerQuery, error) {
	if err := partnerID.Validate(); err != nil {
		return GetDeliveriesByPartnerQuery{}, err
	}

	return GetDeliveriesByPartnerQuery{
		partnerID: partnerID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDeliveriesByPartnerQueryIsNotConstructed if validation fails.
func (q GetDeliveriesByPartnerQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveriesByPartnerQueryIsNotConstructed)
}

// PartnerID returns the partner whose deliveries are listed.
func (q GetDeliveriesByPartnerQuery) PartnerID() kernel.UUID {
	return q.partnerID
}
