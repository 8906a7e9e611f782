package postgres

import (
	"context"
	"database/sql"
	"errors"

	"easypark/internal/domain"
	"easypark/internal/repository"
)

// IncidentRepository is a PostgreSQL implementation of repository.IncidentRepository.
type IncidentRepository struct {
	q Querier
}

// NewIncidentRepository creates a new PostgreSQL incident repository.
func NewIncidentRepository(db *sql.DB) *IncidentRepository {
	return &IncidentRepository{q: db}
}

const incidentColumns = `id, business_id, vehicle_id, description, reported_by,
	status, resolution, reported_at, resolved_at`

// Create persists a new incident.
func (r *IncidentRepository) Create(ctx context.Context, incident *domain.Incident) error {
	query := `
		INSERT INTO incidents
			(id, business_id, vehicle_id, description, reported_by, status, resolution, reported_at, resolved_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	var resolvedAt sql.NullTime
	if !incident.ResolvedAt.IsZero() {
		resolvedAt = sql.NullTime{Time: incident.ResolvedAt, Valid: true}
	}

	_, err := r.q.ExecContext(ctx, query,
		incident.ID,
		incident.BusinessID,
		incident.VehicleID,
		incident.Description,
		incident.ReportedBy,
		incident.Status,
		incident.Resolution,
		incident.ReportedAt,
		resolvedAt,
	)

	return err
}

func scanIncident(row interface{ Scan(...any) error }) (*domain.Incident, error) {
	var incident domain.Incident
	var resolvedAt sql.NullTime

	err := row.Scan(
		&incident.ID,
		&incident.BusinessID,
		&incident.VehicleID,
		&incident.Description,
		&incident.ReportedBy,
		&incident.Status,
		&incident.Resolution,
		&incident.ReportedAt,
		&resolvedAt,
	)
	if err != nil {
		return nil, err
	}

	if resolvedAt.Valid {
		incident.ResolvedAt = resolvedAt.Time
	}

	return &incident, nil
}

// GetByID retrieves an incident by ID.
func (r *IncidentRepository) GetByID(ctx context.Context, id string) (*domain.Incident, error) {
	query := `SELECT ` + incidentColumns + ` FROM incidents WHERE id = $1`

	incident, err := scanIncident(r.q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return incident, nil
}

// GetByBusiness retrieves incidents for a business, newest first.
func (r *IncidentRepository) GetByBusiness(ctx context.Context, businessID string) ([]*domain.Incident, error) {
	query := `
		SELECT ` + incidentColumns + `
		FROM incidents WHERE business_id = $1
		ORDER BY reported_at DESC LIMIT 200
	`
	return r.queryIncidents(ctx, query, businessID)
}

// GetPendingByBusiness retrieves unresolved incidents for a business.
func (r *IncidentRepository) GetPendingByBusiness(ctx context.Context, businessID string) ([]*domain.Incident, error) {
	query := `
		SELECT ` + incidentColumns + `
		FROM incidents WHERE business_id = $1 AND status = $2
		ORDER BY reported_at DESC
	`
	return r.queryIncidents(ctx, query, businessID, domain.IncidentPending)
}

func (r *IncidentRepository) queryIncidents(ctx context.Context, query string, args ...any) ([]*domain.Incident, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var incidents []*domain.Incident
	for rows.Next() {
		incident, err := scanIncident(rows)
		if err != nil {
			return nil, err
		}
		incidents = append(incidents, incident)
	}

	return incidents, rows.Err()
}

// CountPending counts unresolved incidents for a business.
func (r *IncidentRepository) CountPending(ctx context.Context, businessID string) (int, error) {
	query := `SELECT COUNT(*) FROM incidents WHERE business_id = $1 AND status = $2`

	var count int
	err := r.q.QueryRowContext(ctx, query, businessID, domain.IncidentPending).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

// Update updates an existing incident.
func (r *IncidentRepository) Update(ctx context.Context, incident *domain.Incident) error {
	query := `
		UPDATE incidents
		SET description = $1, status = $2, resolution = $3, resolved_at = $4
		WHERE id = $5
	`

	var resolvedAt sql.NullTime
	if !incident.ResolvedAt.IsZero() {
		resolvedAt = sql.NullTime{Time: incident.ResolvedAt, Valid: true}
	}

	result, err := r.q.ExecContext(ctx, query,
		incident.Description,
		incident.Status,
		incident.Resolution,
		resolvedAt,
		incident.ID,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// Ensure IncidentRepository implements repository.IncidentRepository.
var _ repository.IncidentRepository = (*IncidentRepository)(nil)
