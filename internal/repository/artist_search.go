package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
)

// ArtistSearchQuery defines filters & pagination for searching the
// artist directory.
type ArtistSearchQuery struct {
	Name      string
	Location  string
	Specialty string
	Page      int
	PageSize  int
}

// ArtistRow is the sanitized directory row returned by search and
// public listings, joined with the artist's review summary.
type ArtistRow struct {
	ID             uint64   `json:"id"`
	Name           string   `json:"name"`
	Specialties    string   `json:"specialties"`
	Location       string   `json:"location,omitempty"`
	Rate           *float64 `json:"rate,omitempty"`
	ProfilePicture string   `json:"profile_picture,omitempty"`
	Portfolio      []string `json:"portfolio"`
	ReviewCount    int64    `json:"review_count"`
	AvgRating      float64  `json:"avg_rating"`
}

// Search returns a page of artists matching the query plus the total
// match count.  All filters are case-insensitive substring matches.
func (r *ArtistRepo) Search(ctx context.Context, q ArtistSearchQuery) ([]ArtistRow, int64, error) {
	where := []string{}
	args := []any{}

	if q.Name != "" {
		where = append(where, "LOWER(a.name) LIKE ?")
		args = append(args, "%"+strings.ToLower(q.Name)+"%")
	}
	if q.Location != "" {
		where = append(where, "LOWER(a.location) LIKE ?")
		args = append(args, "%"+strings.ToLower(q.Location)+"%")
	}
	if q.Specialty != "" {
		where = append(where, "LOWER(a.specialties) LIKE ?")
		args = append(args, "%"+strings.ToLower(q.Specialty)+"%")
	}

	cond := "1=1"
	if len(where) > 0 {
		cond = strings.Join(where, " AND ")
	}

	var total int64
	countSQL := `SELECT COUNT(*) FROM artists a WHERE ` + cond
	if err := r.DB.QueryRowContext(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 || q.PageSize > 100 {
		q.PageSize = 20
	}
	limit := q.PageSize
	offset := (q.Page - 1) * q.PageSize

	dataSQL := `SELECT
			a.user_id,
			a.name,
			a.specialties,
			a.location,
			a.rate,
			a.profile_picture,
			a.portfolio,
			COUNT(rv.id)                 AS review_count,
			COALESCE(AVG(rv.rating), 0)  AS avg_rating
		FROM artists a
		LEFT JOIN reviews rv ON rv.artist_id = a.user_id
		WHERE ` + cond + `
		GROUP BY a.user_id
		ORDER BY a.name ASC
		LIMIT ? OFFSET ?`

	argsData := append(append([]any{}, args...), limit, offset)

	rows, err := r.DB.QueryContext(ctx, dataSQL, argsData...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]ArtistRow, 0, limit)
	for rows.Next() {
		var (
			d         ArtistRow
			rate      sql.NullFloat64
			picture   sql.NullString
			portfolio []byte
		)
		if err := rows.Scan(
			&d.ID,
			&d.Name,
			&d.Specialties,
			&d.Location,
			&rate,
			&picture,
			&portfolio,
			&d.ReviewCount,
			&d.AvgRating,
		); err != nil {
			return nil, 0, err
		}
		if rate.Valid {
			v := rate.Float64
			d.Rate = &v
		}
		if picture.Valid {
			d.ProfilePicture = picture.String
		}
		d.Portfolio = []string{}
		if len(portfolio) > 0 {
			if err := json.Unmarshal(portfolio, &d.Portfolio); err != nil {
				return nil, 0, err
			}
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}
