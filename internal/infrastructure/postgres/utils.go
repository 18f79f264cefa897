package postgres

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tradyon/schema-api/internal/domain/entity"
)

// encodeCompany serializa una copia con el ID normalizado.
func encodeCompany(company *entity.Company) (string, []byte, error) {
	cp := company.Clone()
	cp.ID = entity.NormalizeCompanyID(cp.ID)
	data, err := json.Marshal(cp)
	if err != nil {
		return "", nil, fmt.Errorf("encode workspace: %w", err)
	}
	return cp.ID, data, nil
}

func decodeCompany(data []byte) (*entity.Company, error) {
	var c entity.Company
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode workspace: %w", err)
	}
	c.Normalize()
	return &c, nil
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
