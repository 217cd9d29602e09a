package queries

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/domain/model/pricing"
	"fulfillment/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CalculateDeliveryFeeQueryHandler produces fee quotes against the active
// zone schedule. Reads the schedule directly from the database on every call;
// the schedule is tiny and quote traffic decides how fresh it needs to be.
//
// Example:
//
//	handler := NewCalculateDeliveryFeeQueryHandler(db)
//	quote, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	if quote.IsFallback {
//	    // distance fell outside every configured zone
//	}
type CalculateDeliveryFeeQueryHandler struct {
	db *gorm.DB
}

// NewCalculateDeliveryFeeQueryHandler creates a handler for fee quote queries.
// Requires a GORM database connection for reading the zone schedule.
func NewCalculateDeliveryFeeQueryHandler(db *gorm.DB) CalculateDeliveryFeeQueryHandler {
	return CalculateDeliveryFeeQueryHandler{db: db}
}

// Handle executes the quote. Loads active zones in ascending minDistance
// order, measures the great-circle distance (or takes the distance the
// caller supplied), and resolves the fee with first-match-wins semantics. A distance outside every zone gets the flat
// default fee and a warning in the log so a schedule gap is noticed.
func (h CalculateDeliveryFeeQueryHandler) Handle(
	ctx context.Context,
	query CalculateDeliveryFeeQuery,
) (CalculateDeliveryFeeQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return CalculateDeliveryFeeQueryResponse{}, err
	}

	tiers, err := h.loadActiveTiers(ctx)
	if err != nil {
		return CalculateDeliveryFeeQueryResponse{}, err
	}

	calculator := services.NewQuoteCalculator()

	var quote services.Quote
	if query.FromDistance() {
		quote = calculator.CalculateFromDistance(query.DistanceKm(), tiers)
	} else {
		quote, err = calculator.Calculate(
			query.PickupLocation(), query.DropoffLocation(), tiers)
		if err != nil {
			return CalculateDeliveryFeeQueryResponse{}, err
		}
	}

	response := CalculateDeliveryFeeQueryResponse{
		DistanceKm:       quote.DistanceKm,
		BaseFee:          quote.Fee.BaseFee,
		DistanceFee:      quote.Fee.DistanceFee,
		TotalFee:         quote.Fee.TotalFee,
		IsFallback:       quote.Fee.IsFallback(),
		EstimatedMinutes: quote.EstimatedMinutes,
	}
	if quote.Fee.MatchedTier != nil {
		response.ZoneName = quote.Fee.MatchedTier.Name()
	} else {
		slog.Warn("no zone covers quoted distance, default fee applied",
			"distanceKm", quote.DistanceKm)
	}

	return response, nil
}

func (h CalculateDeliveryFeeQueryHandler) loadActiveTiers(ctx context.Context) ([]pricing.ZoneTier, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			name,
			min_distance,
			max_distance,
			base_fee,
			per_km_rate
		FROM zone_tiers
		WHERE is_active
		ORDER BY min_distance
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tiers := make([]pricing.ZoneTier, 0)
	for rows.Next() {
		var (
			name                     string
			minDistance, maxDistance float64
			baseFee, perKmRate       decimal.Decimal
		)

		if err = rows.Scan(&name, &minDistance, &maxDistance, &baseFee, &perKmRate); err != nil {
			return nil, err
		}

		tier, tierErr := pricing.NewZoneTier(name, minDistance, maxDistance, baseFee, perKmRate, true)
		if tierErr != nil {
			return nil, tierErr
		}
		tiers = append(tiers, tier)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tiers, nil
}
