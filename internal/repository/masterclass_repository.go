package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/rosabel/glambook/internal/model"
)

// MasterclassRepo persists artist-hosted masterclass listings.
type MasterclassRepo struct{ DB *sql.DB }

func NewMasterclassRepo(db *sql.DB) *MasterclassRepo { return &MasterclassRepo{DB: db} }

const masterclassColumns = "id,artist_id,title,description,price,duration_minutes,event_date,location,image,created_at"

// Create inserts a masterclass row and populates the generated ID.
func (r *MasterclassRepo) Create(ctx context.Context, m *model.Masterclass) error {
	m.CreatedAt = time.Now().UTC()
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO masterclasses (artist_id, title, description, price, duration_minutes, event_date, location, image, created_at) VALUES (?,?,?,?,?,?,?,?,?)",
		m.ArtistID, m.Title, m.Description, m.Price, m.DurationMinutes, m.EventDate, m.Location, m.Image, m.CreatedAt)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	m.ID = uint64(id)
	return nil
}

// GetByID fetches one masterclass.
func (r *MasterclassRepo) GetByID(ctx context.Context, id uint64) (model.Masterclass, error) {
	var m model.Masterclass
	var image sql.NullString
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+masterclassColumns+" FROM masterclasses WHERE id=? LIMIT 1", id).
		Scan(&m.ID, &m.ArtistID, &m.Title, &m.Description, &m.Price,
			&m.DurationMinutes, &m.EventDate, &m.Location, &image, &m.CreatedAt)
	if err == sql.ErrNoRows {
		return model.Masterclass{}, ErrMasterclassNotFound
	}
	if err != nil {
		return model.Masterclass{}, err
	}
	if image.Valid {
		m.Image = image.String
	}
	return m, nil
}

// ListUpcoming returns masterclasses whose event date is not in the
// past, soonest first.
func (r *MasterclassRepo) ListUpcoming(ctx context.Context) ([]model.Masterclass, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+masterclassColumns+" FROM masterclasses WHERE event_date >= NOW() ORDER BY event_date ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Masterclass{}
	for rows.Next() {
		var m model.Masterclass
		var image sql.NullString
		if err := rows.Scan(&m.ID, &m.ArtistID, &m.Title, &m.Description, &m.Price,
			&m.DurationMinutes, &m.EventDate, &m.Location, &image, &m.CreatedAt); err != nil {
			return nil, err
		}
		if image.Valid {
			m.Image = image.String
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
