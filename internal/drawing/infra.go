package drawing

import (
	"context"
	"database/sql"
)

type repo struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) Repo {
	return &repo{db: db}
}

func (r *repo) SaveGeneration(ctx context.Context, g *Generation) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO generations (material, finish, material_description, grade, general_notes, finish_notes)
		VALUES ($1, $2, $3, $4, $5, $6)
	`,
		g.Material,
		g.Finish,
		g.Notes.MaterialDescription,
		g.Notes.Grade,
		g.Notes.GeneralNotes,
		g.Notes.FinishNotes,
	)
	return err
}

func (r *repo) ListRecent(ctx context.Context, limit int) ([]Generation, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, material, finish, material_description, grade, general_notes, finish_notes, extract(epoch from created_at)::bigint
		FROM generations
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Generation
	for rows.Next() {
		var g Generation
		if err := rows.Scan(
			&g.ID,
			&g.Material,
			&g.Finish,
			&g.Notes.MaterialDescription,
			&g.Notes.Grade,
			&g.Notes.GeneralNotes,
			&g.Notes.FinishNotes,
			&g.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, g)
	}

	return out, rows.Err()
}
