package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/opencode-ai/swatch/themes"
)

// Theme repository errors.
var (
	ErrThemeNotFound = errors.New("saved theme not found")
	ErrInvalidTheme  = errors.New("invalid theme")
)

// SavedTheme is a theme row with persistence metadata.
type SavedTheme struct {
	ID          string
	Name        string
	Description string
	Colors      map[string]themes.ColorSpec
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Theme converts the row back to a theme, marked with the store source.
func (s *SavedTheme) Theme() *themes.Theme {
	return &themes.Theme{
		Name:        s.Name,
		Description: s.Description,
		Colors:      s.Colors,
		Source:      "store",
	}
}

// ThemeRepository handles saved theme persistence.
type ThemeRepository struct {
	db *DB
}

// NewThemeRepository creates a new ThemeRepository.
func NewThemeRepository(db *DB) *ThemeRepository {
	return &ThemeRepository{db: db}
}

// Save upserts a theme by name. Inserts assign a new ID; updates keep the
// existing ID and creation time.
func (r *ThemeRepository) Save(ctx context.Context, theme *themes.Theme) (*SavedTheme, error) {
	if theme == nil {
		return nil, ErrInvalidTheme
	}
	if err := theme.Validate(); err != nil {
		return nil, err
	}

	colorsJSON, err := json.Marshal(theme.Colors)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal theme colors: %w", err)
	}

	now := time.Now().UTC()
	existing, err := r.GetByName(ctx, theme.Name)
	switch {
	case err == nil:
		_, err = r.db.ExecContext(ctx, `
			UPDATE themes SET description = ?, colors_json = ?, updated_at = ?
			WHERE id = ?
		`, theme.Description, string(colorsJSON), now.Format(time.RFC3339), existing.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to update theme: %w", err)
		}
		existing.Description = theme.Description
		existing.Colors = theme.Colors
		existing.UpdatedAt = now
		return existing, nil
	case errors.Is(err, ErrThemeNotFound):
		saved := &SavedTheme{
			ID:          uuid.New().String(),
			Name:        theme.Name,
			Description: theme.Description,
			Colors:      theme.Colors,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		_, err = r.db.ExecContext(ctx, `
			INSERT INTO themes (id, name, description, colors_json, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?)
		`,
			saved.ID,
			saved.Name,
			saved.Description,
			string(colorsJSON),
			now.Format(time.RFC3339),
			now.Format(time.RFC3339),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to insert theme: %w", err)
		}
		return saved, nil
	default:
		return nil, err
	}
}

// Get retrieves a saved theme by ID.
func (r *ThemeRepository) Get(ctx context.Context, id string) (*SavedTheme, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, description, colors_json, created_at, updated_at
		FROM themes WHERE id = ?
	`, id)
	return r.scanTheme(row)
}

// GetByName retrieves a saved theme by its unique name.
func (r *ThemeRepository) GetByName(ctx context.Context, name string) (*SavedTheme, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, description, colors_json, created_at, updated_at
		FROM themes WHERE name = ?
	`, name)
	return r.scanTheme(row)
}

// List returns all saved themes ordered by name.
func (r *ThemeRepository) List(ctx context.Context) ([]*SavedTheme, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, description, colors_json, created_at, updated_at
		FROM themes ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list themes: %w", err)
	}
	defer rows.Close()

	var saved []*SavedTheme
	for rows.Next() {
		theme, err := r.scanThemeFromRows(rows)
		if err != nil {
			return nil, err
		}
		saved = append(saved, theme)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating themes: %w", err)
	}
	return saved, nil
}

// Delete removes a saved theme by name.
func (r *ThemeRepository) Delete(ctx context.Context, name string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM themes WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("failed to delete theme: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return ErrThemeNotFound
	}
	return nil
}

func (r *ThemeRepository) scanTheme(row *sql.Row) (*SavedTheme, error) {
	var theme SavedTheme
	var description sql.NullString
	var colorsJSON, createdAt, updatedAt string

	err := row.Scan(&theme.ID, &theme.Name, &description, &colorsJSON, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrThemeNotFound
		}
		return nil, fmt.Errorf("failed to scan theme: %w", err)
	}

	if description.Valid {
		theme.Description = description.String
	}
	if err := json.Unmarshal([]byte(colorsJSON), &theme.Colors); err != nil {
		return nil, fmt.Errorf("failed to parse theme colors: %w", err)
	}
	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		theme.CreatedAt = t
	}
	if t, err := time.Parse(time.RFC3339, updatedAt); err == nil {
		theme.UpdatedAt = t
	}
	return &theme, nil
}

func (r *ThemeRepository) scanThemeFromRows(rows *sql.Rows) (*SavedTheme, error) {
	var theme SavedTheme
	var description sql.NullString
	var colorsJSON, createdAt, updatedAt string

	if err := rows.Scan(&theme.ID, &theme.Name, &description, &colorsJSON, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("failed to scan theme: %w", err)
	}

	if description.Valid {
		theme.Description = description.String
	}
	if err := json.Unmarshal([]byte(colorsJSON), &theme.Colors); err != nil {
		return nil, fmt.Errorf("failed to parse theme colors: %w", err)
	}
	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		theme.CreatedAt = t
	}
	if t, err := time.Parse(time.RFC3339, updatedAt); err == nil {
		theme.UpdatedAt = t
	}
	return &theme, nil
}
