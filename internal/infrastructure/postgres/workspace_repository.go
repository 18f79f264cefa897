package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tradyon/schema-api/internal/domain/entity"
	"github.com/tradyon/schema-api/internal/domain/repository"
)

// Asegura que WorkspaceRepo implementa repository.WorkspaceRepository.
var _ repository.WorkspaceRepository = (*WorkspaceRepo)(nil)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS workspaces (
	id         TEXT PRIMARY KEY,
	data       JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// WorkspaceRepo guarda cada empresa como un documento JSONB (árbol completo).
type WorkspaceRepo struct {
	pool *pgxpool.Pool
	tx   *TxRunner
}

// NewWorkspaceRepository construye el adaptador de persistencia.
func NewWorkspaceRepository(pool *pgxpool.Pool) *WorkspaceRepo {
	return &WorkspaceRepo{pool: pool, tx: NewTxRunner(pool)}
}

// EnsureSchema crea la tabla workspaces si no existe.
func (r *WorkspaceRepo) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create workspaces table: %w", err)
	}
	return nil
}

// Get obtiene una empresa por ID normalizado; (nil, nil) si no existe.
func (r *WorkspaceRepo) Get(ctx context.Context, id string) (*entity.Company, error) {
	var data []byte
	err := r.pool.QueryRow(ctx, `SELECT data FROM workspaces WHERE id = $1`, entity.NormalizeCompanyID(id)).Scan(&data)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get workspace: %w", err)
	}
	return decodeCompany(data)
}

// Create inserta el documento; ON CONFLICT DO NOTHING deja intacta una fila existente.
func (r *WorkspaceRepo) Create(ctx context.Context, company *entity.Company) (bool, error) {
	id, data, err := encodeCompany(company)
	if err != nil {
		return false, err
	}
	query := `
		INSERT INTO workspaces (id, data, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (id) DO NOTHING`
	cmd, err := r.pool.Exec(ctx, query, id, data)
	if err != nil {
		return false, fmt.Errorf("insert workspace: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Set inserta o reemplaza el documento de la empresa.
func (r *WorkspaceRepo) Set(ctx context.Context, company *entity.Company) error {
	id, data, err := encodeCompany(company)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO workspaces (id, data, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`
	if _, err := r.pool.Exec(ctx, query, id, data); err != nil {
		return fmt.Errorf("upsert workspace: %w", err)
	}
	return nil
}

// Update bloquea la fila (SELECT ... FOR UPDATE), aplica fn y guarda en la misma transacción.
func (r *WorkspaceRepo) Update(ctx context.Context, id string, fn func(*entity.Company) error) (bool, error) {
	key := entity.NormalizeCompanyID(id)
	found := false
	err := r.tx.Run(ctx, func(tx pgx.Tx) error {
		var data []byte
		err := tx.QueryRow(ctx, `SELECT data FROM workspaces WHERE id = $1 FOR UPDATE`, key).Scan(&data)
		if err != nil {
			if isNoRows(err) {
				return nil
			}
			return fmt.Errorf("lock workspace: %w", err)
		}
		found = true
		company, err := decodeCompany(data)
		if err != nil {
			return err
		}
		if err := fn(company); err != nil {
			return err
		}
		company.ID = key
		_, data, err = encodeCompany(company)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `UPDATE workspaces SET data = $2, updated_at = now() WHERE id = $1`, key, data); err != nil {
			return fmt.Errorf("update workspace: %w", err)
		}
		return nil
	})
	return found, err
}

// Delete elimina una empresa. Devuelve true si existía.
func (r *WorkspaceRepo) Delete(ctx context.Context, id string) (bool, error) {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM workspaces WHERE id = $1`, entity.NormalizeCompanyID(id))
	if err != nil {
		return false, fmt.Errorf("delete workspace: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// List devuelve todas las empresas ordenadas por ID.
func (r *WorkspaceRepo) List(ctx context.Context) ([]*entity.Company, error) {
	rows, err := r.pool.Query(ctx, `SELECT data FROM workspaces ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list workspaces: %w", err)
	}
	defer rows.Close()

	list := []*entity.Company{}
	for rows.Next() {
		var data []byte
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
	if _, err := r.pool.Exec(ctx, `DELETE FROM workspaces`); err != nil {
		return fmt.Errorf("clear workspaces: %w", err)
	}
	return nil
}
