package destination

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const selectDestination = `
	SELECT
		id,
		name,
		state,
		description,
		image,
		best_time_to_visit,
		average_budget,
		attractions,
		transport_options,
		accommodations,
		weather
	FROM destinations
`

// --------------------------------------------------
// Get a single destination
// --------------------------------------------------
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Destination, error) {
	row := r.db.QueryRow(ctx, selectDestination+` WHERE id = $1`, id)

	d, err := scanDestination(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return d, nil
}

// --------------------------------------------------
// List in catalog order
// --------------------------------------------------
func (r *PostgresRepository) ListAll(ctx context.Context) ([]Destination, error) {
	rows, err := r.db.Query(ctx, selectDestination+` ORDER BY sort_order, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var destinations []Destination

	for rows.Next() {
		d, err := scanDestination(rows)
		if err != nil {
			return nil, err
		}
		destinations = append(destinations, *d)
	}

	return destinations, rows.Err()
}

// --------------------------------------------------
// Seed (bootstrap only, upserts by id)
// --------------------------------------------------
func (r *PostgresRepository) Seed(ctx context.Context, destinations []Destination) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for i, d := range destinations {
		docs, err := encodeDocuments(&d)
		if err != nil {
			return fmt.Errorf("encoding %s: %w", d.ID, err)
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO destinations (
				id,
				sort_order,
				name,
				state,
				description,
				image,
				best_time_to_visit,
				average_budget,
				attractions,
				transport_options,
				accommodations,
				weather
			)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
			ON CONFLICT (id)
			DO UPDATE SET
				sort_order = EXCLUDED.sort_order,
				name = EXCLUDED.name,
				state = EXCLUDED.state,
				description = EXCLUDED.description,
				image = EXCLUDED.image,
				best_time_to_visit = EXCLUDED.best_time_to_visit,
				average_budget = EXCLUDED.average_budget,
				attractions = EXCLUDED.attractions,
				transport_options = EXCLUDED.transport_options,
				accommodations = EXCLUDED.accommodations,
				weather = EXCLUDED.weather,
				updated_at = now()
		`,
			d.ID,
			i,
			d.Name,
			d.State,
			d.Description,
			d.Image,
			d.BestTimeToVisit,
			docs.averageBudget,
			docs.attractions,
			docs.transport,
			docs.accommodations,
			docs.weather,
		)
		if err != nil {
			return fmt.Errorf("upserting %s: %w", d.ID, err)
		}
	}

	return tx.Commit(ctx)
}

type jsonDocuments struct {
	averageBudget  []byte
	attractions    []byte
	transport      []byte
	accommodations []byte
	weather        []byte
}

func encodeDocuments(d *Destination) (*jsonDocuments, error) {
	var (
		docs jsonDocuments
		err  error
	)
	if docs.averageBudget, err = json.Marshal(d.AverageBudget); err != nil {
		return nil, err
	}
	if docs.attractions, err = json.Marshal(nonNil(d.Attractions)); err != nil {
		return nil, err
	}
	if docs.transport, err = json.Marshal(nonNil(d.TransportOptions)); err != nil {
		return nil, err
	}
	if docs.accommodations, err = json.Marshal(nonNil(d.Accommodations)); err != nil {
		return nil, err
	}
	if docs.weather, err = json.Marshal(d.Weather); err != nil {
		return nil, err
	}
	return &docs, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func scanDestination(row pgx.Row) (*Destination, error) {
	var (
		d    Destination
		docs jsonDocuments
	)

	if err := row.Scan(
		&d.ID,
		&d.Name,
		&d.State,
		&d.Description,
		&d.Image,
		&d.BestTimeToVisit,
		&docs.averageBudget,
		&docs.attractions,
		&docs.transport,
		&docs.accommodations,
		&docs.weather,
	); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(docs.averageBudget, &d.AverageBudget); err != nil {
		return nil, fmt.Errorf("decoding average_budget: %w", err)
	}
	if err := json.Unmarshal(docs.attractions, &d.Attractions); err != nil {
		return nil, fmt.Errorf("decoding attractions: %w", err)
	}
	if err := json.Unmarshal(docs.transport, &d.TransportOptions); err != nil {
		return nil, fmt.Errorf("decoding transport_options: %w", err)
	}
	if err := json.Unmarshal(docs.accommodations, &d.Accommodations); err != nil {
		return nil, fmt.Errorf("decoding accommodations: %w", err)
	}
	if err := json.Unmarshal(docs.weather, &d.Weather); err != nil {
		return nil, fmt.Errorf("decoding weather: %w", err)
	}

	return &d, nil
}
