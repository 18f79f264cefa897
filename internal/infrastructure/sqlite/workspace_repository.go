// Package sqlite guarda los espacios de trabajo en un archivo SQLite local
// (driver puro Go, sin cgo).
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/tradyon/schema-api/internal/domain/entity"
	"github.com/tradyon/schema-api/internal/domain/repository"
)

// Asegura que WorkspaceRepo implementa repository.WorkspaceRepository.
var _ repository.WorkspaceRepository = (*WorkspaceRepo)(nil)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS workspaces (
	id         TEXT PRIMARY KEY,
	data       TEXT NOT NULL,
	updated_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
)`

// WorkspaceRepo adaptador SQLite; cada empresa es un documento JSON.
type WorkspaceRepo struct {
	db *sql.DB
}

// Open abre (o crea) la base en path y devuelve el repositorio con el esquema listo.
func Open(ctx context.Context, path string) (*WorkspaceRepo, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("crear directorio %s: %w", dir, err)
		}
	}
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite: %w", err)
	}
	// Un único escritor evita SQLITE_BUSY entre conexiones del pool.
	db.SetMaxOpenConns(1)
	repo := NewWorkspaceRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return repo, nil
}

// NewWorkspaceRepository construye el adaptador sobre una conexión existente.
func NewWorkspaceRepository(db *sql.DB) *WorkspaceRepo {
	return &WorkspaceRepo{db: db}
}

// EnsureSchema crea la tabla workspaces si no existe.
func (r *WorkspaceRepo) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create workspaces table: %w", err)
	}
	return nil
}

// Close cierra la base.
func (r *WorkspaceRepo) Close() error {
	return r.db.Close()
}

// Get obtiene una empresa por ID normalizado; (nil, nil) si no existe.
func (r *WorkspaceRepo) Get(ctx context.Context, id string) (*entity.Company, error) {
	var data string
	err := r.db.QueryRowContext(ctx, `SELECT data FROM workspaces WHERE id = ?`, entity.NormalizeCompanyID(id)).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get workspace: %w", err)
	}
	return decodeCompany(data)
}

// Create inserta el documento solo si el ID no existe.
func (r *WorkspaceRepo) Create(ctx context.Context, company *entity.Company) (bool, error) {
	id, data, err := encodeCompany(company)
	if err != nil {
		return false, err
	}
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO workspaces (id, data, updated_at) VALUES (?, ?, strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
		ON CONFLICT (id) DO NOTHING`, id, data)
	if err != nil {
		return false, fmt.Errorf("insert workspace: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("insert workspace: %w", err)
	}
	return n > 0, nil
}

// Set inserta o reemplaza el documento de la empresa.
func (r *WorkspaceRepo) Set(ctx context.Context, company *entity.Company) error {
	id, data, err := encodeCompany(company)
	if err != nil {
		return err
	}
	return upsert(ctx, r.db, id, data)
}

// Update aplica fn dentro de una transacción; no guarda si fn falla.
func (r *WorkspaceRepo) Update(ctx context.Context, id string, fn func(*entity.Company) error) (bool, error) {
	key := entity.NormalizeCompanyID(id)
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var data string
	err = tx.QueryRowContext(ctx, `SELECT data FROM workspaces WHERE id = ?`, key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get workspace: %w", err)
	}
	company, err := decodeCompany(data)
	if err != nil {
		return true, err
	}
	if err := fn(company); err != nil {
		return true, err
	}
	company.ID = key
	_, data, err = encodeCompany(company)
	if err != nil {
		return true, err
	}
	if err := upsert(ctx, tx, key, data); err != nil {
		return true, err
	}
	if err := tx.Commit(); err != nil {
		return true, fmt.Errorf("commit transaction: %w", err)
	}
	return true, nil
}

// Delete elimina una empresa. Devuelve true si existía.
func (r *WorkspaceRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM workspaces WHERE id = ?`, entity.NormalizeCompanyID(id))
	if err != nil {
		return false, fmt.Errorf("delete workspace: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete workspace: %w", err)
	}
	return n > 0, nil
}

// List devuelve todas las empresas ordenadas por ID.
func (r *WorkspaceRepo) List(ctx context.Context) ([]*entity.Company, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT data FROM workspaces ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list workspaces: %w", err)
	}
	defer rows.Close()

	list := []*entity.Company{}
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("scan workspace: %w", err)
		}
		c, err := decodeCompany(data)
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Clear elimina todos los registros.
func (r *WorkspaceRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM workspaces`); err != nil {
		return fmt.Errorf("clear workspaces: %w", err)
	}
	return nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func upsert(ctx context.Context, db execer, id, data string) error {
	query := `
		INSERT INTO workspaces (id, data, updated_at) VALUES (?, ?, strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
		ON CONFLICT (id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`
	if _, err := db.ExecContext(ctx, query, id, data); err != nil {
		return fmt.Errorf("upsert workspace: %w", err)
	}
	return nil
}

func encodeCompany(company *entity.Company) (string, string, error) {
	cp := company.Clone()
	cp.ID = entity.NormalizeCompanyID(cp.ID)
	data, err := json.Marshal(cp)
	if err != nil {
		return "", "", fmt.Errorf("encode workspace: %w", err)
	}
	return cp.ID, string(data), nil
}

func decodeCompany(data string) (*entity.Company, error) {
	var c entity.Company
	if err := json.Unmarshal([]byte(data), &c); err != nil {
		return nil, fmt.Errorf("decode workspace: %w", err)
	}
	c.Normalize()
	return &c, nil
}
