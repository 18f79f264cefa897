package export

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tradyon/schema-api/internal/application/dto"
	"github.com/tradyon/schema-api/internal/application/workspace"
	"github.com/tradyon/schema-api/internal/domain"
	"github.com/tradyon/schema-api/internal/domain/entity"
	"github.com/tradyon/schema-api/pkg/logger"
)

// Config formatos que Export escribe en disco además del JSON.
type Config struct {
	Workbook bool // <nombre>.xlsx
	PDF      bool // <nombre>.pdf
	XML      bool // <nombre>.xml
}

// Rendered archivo generado para descarga.
type Rendered struct {
	FileName    string
	ContentType string
	Data        []byte
}

// ExportUseCase genera y publica los exports de una empresa.
type ExportUseCase struct {
	workspace *workspace.WorkspaceUseCase
	files     FileStore
	renderers map[string]Renderer
	publisher SheetPublisher
	cfg       Config
	log       *logger.Logger
	now       func() time.Time
}

// NewExportUseCase construye el caso de uso. publisher puede ser nil (Google
// Sheets deshabilitado). El renderer JSON se registra siempre.
func NewExportUseCase(
	ws *workspace.WorkspaceUseCase,
	files FileStore,
	renderers []Renderer,
	publisher SheetPublisher,
	cfg Config,
	log *logger.Logger,
) *ExportUseCase {
	uc := &ExportUseCase{
		workspace: ws,
		files:     files,
		renderers: map[string]Renderer{"json": JSONRenderer{}},
		publisher: publisher,
		cfg:       cfg,
		log:       log,
		now:       time.Now,
	}
	for _, r := range renderers {
		uc.renderers[r.Format()] = r
	}
	return uc
}

// SetClock reemplaza el reloj (tests).
func (uc *ExportUseCase) SetClock(now func() time.Time) {
	uc.now = now
}

// Formats formatos disponibles para Render.
func (uc *ExportUseCase) Formats() []string {
	out := make([]string, 0, len(uc.renderers))
	for f := range uc.renderers {
		out = append(out, f)
	}
	return sortStrings(out)
}

// Export escribe <nombre>.json (y los formatos habilitados) en la carpeta de
// salida y, si hay publicador, crea la hoja de cálculo. Si el servidor perdió
// la empresa, se restaura desde CompanyData.
func (uc *ExportUseCase) Export(ctx context.Context, in dto.ExportRequest) (*dto.ExportResponse, error) {
	company, err := uc.load(ctx, in.CompanyName, in.CompanyData)
	if err != nil {
		return nil, err
	}
	now := uc.now().UTC()
	doc := BuildDocument(company, now)
	base := entity.SanitizeFileName(company.DisplayName)

	data, err := JSONRenderer{}.Render(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("%w: serializar export: %v", domain.ErrInternal, err)
	}
	jsonName := base + ".json"
	jsonPath, err := uc.files.WriteFile(jsonName, data)
	if err != nil {
		return nil, fmt.Errorf("%w: escribir %s: %v", domain.ErrInternal, jsonName, err)
	}
	out := &dto.ExportResponse{
		Success:         true,
		JSONFilePath:    jsonPath,
		JSONFileName:    jsonName,
		CompanyName:     doc.CompanyName,
		ContactPerson:   doc.ContactPerson,
		ProductCount:    doc.ProductCount,
		ExportTimestamp: doc.ExportDate,
	}

	for _, extra := range []struct {
		enabled bool
		format  string
	}{{uc.cfg.Workbook, "xlsx"}, {uc.cfg.PDF, "pdf"}, {uc.cfg.XML, "xml"}} {
		if !extra.enabled {
			continue
		}
		name, err := uc.writeFormat(ctx, doc, base, extra.format)
		if err != nil {
			return nil, err
		}
		if extra.format == "xlsx" {
			out.WorkbookFileName = name
		}
	}

	if uc.publisher != nil {
		url, err := uc.publisher.Publish(ctx, doc)
		if err != nil {
			return nil, fmt.Errorf("%w: publicar en Google Sheets: %v", domain.ErrInternal, err)
		}
		out.SheetURL = url
	}

	uc.log.Info().
		Str("company", company.ID).
		Int("products", doc.ProductCount).
		Str("file", jsonPath).
		Bool("sheet", out.SheetURL != "").
		Msg("export generado")
	return out, nil
}

// Render genera el export en el formato pedido sin escribir en disco.
func (uc *ExportUseCase) Render(ctx context.Context, companyName, format string) (*Rendered, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	r, ok := uc.renderers[format]
	if !ok {
		return nil, fmt.Errorf("%w: formato %q no soportado (disponibles: %s)",
			domain.ErrInvalidInput, format, strings.Join(uc.Formats(), ", "))
	}
	company, err := uc.load(ctx, companyName, nil)
	if err != nil {
		return nil, err
	}
	doc := BuildDocument(company, uc.now().UTC())
	data, err := r.Render(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("%w: generar %s: %v", domain.ErrInternal, format, err)
	}
	return &Rendered{
		FileName:    entity.SanitizeFileName(company.DisplayName) + r.Extension(),
		ContentType: r.ContentType(),
		Data:        data,
	}, nil
}

func (uc *ExportUseCase) writeFormat(ctx context.Context, doc Document, base, format string) (string, error) {
	r, ok := uc.renderers[format]
	if !ok {
		return "", fmt.Errorf("%w: renderer %s no registrado", domain.ErrInternal, format)
	}
	data, err := r.Render(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("%w: generar %s: %v", domain.ErrInternal, format, err)
	}
	name := base + r.Extension()
	if _, err := uc.files.WriteFile(name, data); err != nil {
		return "", fmt.Errorf("%w: escribir %s: %v", domain.ErrInternal, name, err)
	}
	return name, nil
}

// load obtiene la empresa (restaurándola desde snapshot si hace falta) y exige
// al menos un producto.
func (uc *ExportUseCase) load(ctx context.Context, name string, snapshot []byte) (*entity.Company, error) {
	company, err := uc.workspace.Snapshot(ctx, name)
	if errors.Is(err, domain.ErrNotFound) && len(snapshot) > 0 && string(snapshot) != "null" {
		company, err = uc.workspace.RestoreCompany(ctx, name, snapshot)
	}
	if err != nil {
		return nil, err
	}
	if len(company.Products) == 0 {
		return nil, fmt.Errorf("%w: la empresa %q no tiene productos para exportar", domain.ErrInvalidInput, company.DisplayName)
	}
	return company, nil
}
