package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"listing-service/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ListingStorageAdapter implements the listing storage port on PostgreSQL.
// The `seq` column preserves insertion order; updates keep seq and
// created_at so position and creation time survive, matching the in-memory
// backend's behavior.
type ListingStorageAdapter struct {
	pool *pgxpool.Pool
}

func NewListingStorageAdapter(pool *pgxpool.Pool) (*ListingStorageAdapter, error) {
	if pool == nil {
		return nil, fmt.Errorf("postgres listing storage: pool is required")
	}
	return &ListingStorageAdapter{pool: pool}, nil
}

const listingColumns = `
	id, title, description, price, deal_type, listing_type,
	bedrooms, bathrooms, area, parking_spaces,
	address, city, state, neighborhood, lat, lng,
	images, floor_plan, features, company, agent, agents,
	status, highlighted, work_progress, delivery_date, created_at`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanListing(row rowScanner) (domain.Listing, error) {
	var l domain.Listing
	var agentsJSON []byte

	err := row.Scan(
		&l.ID, &l.Title, &l.Description, &l.Price, &l.DealType, &l.ListingType,
		&l.Bedrooms, &l.Bathrooms, &l.Area, &l.ParkingSpaces,
		&l.Location.Address, &l.Location.City, &l.Location.State, &l.Location.Neighborhood,
		&l.Location.Lat, &l.Location.Lng,
		&l.Images, &l.FloorPlan, &l.Features, &l.Company, &l.Agent, &agentsJSON,
		&l.Status, &l.Highlighted, &l.WorkProgress, &l.DeliveryDate, &l.CreatedAt,
	)
	if err != nil {
		return domain.Listing{}, err
	}
	if len(agentsJSON) > 0 {
		if err := json.Unmarshal(agentsJSON, &l.Agents); err != nil {
			return domain.Listing{}, fmt.Errorf("decode agents column: %w", err)
		}
	}
	return l, nil
}

func (a *ListingStorageAdapter) queryListings(ctx context.Context, where string, args []interface{}) ([]domain.Listing, error) {
	query := `SELECT` + listingColumns + ` FROM listings` + where + ` ORDER BY seq`

	rows, err := a.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query listings: %w", err)
	}
	defer rows.Close()

	var out []domain.Listing
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("scan listing: %w", err)
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate listings: %w", err)
	}
	if out == nil {
		out = []domain.Listing{}
	}
	return out, nil
}

func (a *ListingStorageAdapter) List(ctx context.Context) ([]domain.Listing, error) {
	return a.queryListings(ctx, "", nil)
}

func (a *ListingStorageAdapter) Find(ctx context.Context, filters domain.ListingFilters) ([]domain.Listing, error) {
	where, args := buildFilterWhere(filters)
	return a.queryListings(ctx, where, args)
}

func (a *ListingStorageAdapter) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	row := a.pool.QueryRow(ctx, `SELECT`+listingColumns+` FROM listings WHERE id = $1`, id)

	l, err := scanListing(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrListingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get listing by id: %w", err)
	}
	return &l, nil
}

func (a *ListingStorageAdapter) Add(ctx context.Context, listing domain.Listing) error {
	agentsJSON, err := json.Marshal(listing.Agents)
	if err != nil {
		return fmt.Errorf("encode agents column: %w", err)
	}

	_, err = a.pool.Exec(ctx, `
		INSERT INTO listings (
			id, title, description, price, deal_type, listing_type,
			bedrooms, bathrooms, area, parking_spaces,
			address, city, state, neighborhood, lat, lng,
			images, floor_plan, features, company, company_slug, agent, agents,
			status, highlighted, work_progress, delivery_date, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20,
			$21, $22, $23, $24, $25, $26, $27, $28
		)`,
		listing.ID, listing.Title, listing.Description, listing.Price,
		string(listing.DealType), string(listing.ListingType),
		listing.Bedrooms, listing.Bathrooms, listing.Area, listing.ParkingSpaces,
		listing.Location.Address, listing.Location.City, listing.Location.State,
		listing.Location.Neighborhood, listing.Location.Lat, listing.Location.Lng,
		listing.Images, listing.FloorPlan, listing.Features,
		listing.Company, domain.CompanySlug(listing.Company), listing.Agent, agentsJSON,
		string(listing.Status), listing.Highlighted, listing.WorkProgress,
		listing.DeliveryDate, listing.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert listing: %w", err)
	}
	return nil
}

func (a *ListingStorageAdapter) Update(ctx context.Context, listing domain.Listing) error {
	agentsJSON, err := json.Marshal(listing.Agents)
	if err != nil {
		return fmt.Errorf("encode agents column: %w", err)
	}

	// seq and created_at are deliberately left alone.
	tag, err := a.pool.Exec(ctx, `
		UPDATE listings SET
			title = $2, description = $3, price = $4, deal_type = $5,
			listing_type = $6, bedrooms = $7, bathrooms = $8, area = $9,
			parking_spaces = $10, address = $11, city = $12, state = $13,
			neighborhood = $14, lat = $15, lng = $16, images = $17,
			floor_plan = $18, features = $19, company = $20, company_slug = $21,
			agent = $22, agents = $23, status = $24, highlighted = $25,
			work_progress = $26, delivery_date = $27
		WHERE id = $1`,
		listing.ID, listing.Title, listing.Description, listing.Price,
		string(listing.DealType), string(listing.ListingType),
		listing.Bedrooms, listing.Bathrooms, listing.Area, listing.ParkingSpaces,
		listing.Location.Address, listing.Location.City, listing.Location.State,
		listing.Location.Neighborhood, listing.Location.Lat, listing.Location.Lng,
		listing.Images, listing.FloorPlan, listing.Features,
		listing.Company, domain.CompanySlug(listing.Company), listing.Agent, agentsJSON,
		string(listing.Status), listing.Highlighted, listing.WorkProgress,
		listing.DeliveryDate,
	)
	if err != nil {
		return fmt.Errorf("update listing: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrListingNotFound
	}
	return nil
}

func (a *ListingStorageAdapter) AttachAgent(ctx context.Context, listingID string, agent domain.ListingAgent) error {
	tx, err := a.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin attach agent: %w", err)
	}
	defer tx.Rollback(ctx)

	var agentsJSON []byte
	err = tx.QueryRow(ctx, `SELECT agents FROM listings WHERE id = $1 FOR UPDATE`, listingID).Scan(&agentsJSON)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrListingNotFound
	}
	if err != nil {
		return fmt.Errorf("read agents column: %w", err)
	}

	var agents []domain.ListingAgent
	if len(agentsJSON) > 0 {
		if err := json.Unmarshal(agentsJSON, &agents); err != nil {
			return fmt.Errorf("decode agents column: %w", err)
		}
	}
	agents = append(agents, agent)

	next, err := json.Marshal(agents)
	if err != nil {
		return fmt.Errorf("encode agents column: %w", err)
	}
	if _, err := tx.Exec(ctx, `UPDATE listings SET agents = $2 WHERE id = $1`, listingID, next); err != nil {
		return fmt.Errorf("write agents column: %w", err)
	}
	return tx.Commit(ctx)
}
