package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fulfillment/internal/core/domain/model/kernel"
)

// GetMessengerCandidatesQueryHandler lists the active messenger pool,
// zone-affine messengers first.
type GetMessengerCandidatesQueryHandler struct {
	db *gorm.DB
}

// NewGetMessengerCandidatesQueryHandler creates a handler for candidate queries.
func NewGetMessengerCandidatesQueryHandler(db *gorm.DB) GetMessengerCandidatesQueryHandler {
	return GetMessengerCandidatesQueryHandler{db: db}
}

// Handle executes the candidates query.
func (h GetMessengerCandidatesQueryHandler) Handle(
	ctx context.Context,
	query GetMessengerCandidatesQuery,
) ([]GetMessengerCandidatesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	candidates := make([]GetMessengerCandidatesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, zone, (zone = ? AND zone <> '') AS zone_match
		FROM messengers
		WHERE active
		ORDER BY zone_match DESC, name
	`, query.Zone()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var candidate GetMessengerCandidatesQueryResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &candidate.Name, &candidate.Zone, &candidate.ZoneMatch); err != nil {
			return nil, err
		}

		messengerID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		candidate.ID = messengerID
		candidates = append(candidates, candidate)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return candidates, nil
}
