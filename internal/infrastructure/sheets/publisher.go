// Package sheets publica el export de una empresa en Google Sheets: un
// spreadsheet nuevo con una hoja por producto.
package sheets

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"

	"github.com/tradyon/schema-api/internal/application/export"
)

// Asegura que Publisher implementa export.SheetPublisher.
var _ export.SheetPublisher = (*Publisher)(nil)

// Config credenciales de la cuenta de servicio. Se usa CredentialsJSON si
// está definido; si no, CredentialsFile.
type Config struct {
	CredentialsFile string
	CredentialsJSON string
}

// Publisher cliente de la API de Google Sheets v4.
type Publisher struct {
	svc *gsheets.Service
}

// NewPublisher crea el cliente autenticado con la cuenta de servicio.
func NewPublisher(ctx context.Context, cfg Config, opts ...option.ClientOption) (*Publisher, error) {
	switch {
	case cfg.CredentialsJSON != "":
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.CredentialsJSON)))
	case cfg.CredentialsFile != "":
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	default:
		return nil, errors.New("sheets: faltan credenciales (GOOGLE_APPLICATION_CREDENTIALS o GOOGLE_APPLICATION_CREDENTIALS_JSON)")
	}
	opts = append(opts, option.WithScopes(gsheets.SpreadsheetsScope))
	return NewPublisherWithOptions(ctx, opts...)
}

// NewPublisherWithOptions crea el cliente con opciones arbitrarias (endpoint, http client).
func NewPublisherWithOptions(ctx context.Context, opts ...option.ClientOption) (*Publisher, error) {
	svc, err := gsheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("sheets: crear servicio: %w", err)
	}
	return &Publisher{svc: svc}, nil
}

// Publish crea el spreadsheet "<empresa> - Product Specifications", escribe las
// filas de cada producto y da formato al encabezado. Devuelve la URL.
func (p *Publisher) Publish(ctx context.Context, doc export.Document) (string, error) {
	names := doc.ProductNames()
	titles := export.SheetTitles(names)

	created, err := p.svc.Spreadsheets.Create(buildSpreadsheet(doc.CompanyName, titles)).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("sheets: crear spreadsheet: %w", err)
	}
	if created.SpreadsheetId == "" {
		return "", errors.New("sheets: la API no devolvió spreadsheetId")
	}

	data, headers := buildValues(doc, names, titles)
	if len(data) > 0 {
		_, err = p.svc.Spreadsheets.Values.BatchUpdate(created.SpreadsheetId, &gsheets.BatchUpdateValuesRequest{
			ValueInputOption: "RAW",
			Data:             data,
		}).Context(ctx).Do()
		if err != nil {
			return "", fmt.Errorf("sheets: escribir valores: %w", err)
		}
	}

	if reqs := formatRequests(headers); len(reqs) > 0 {
		_, err = p.svc.Spreadsheets.BatchUpdate(created.SpreadsheetId, &gsheets.BatchUpdateSpreadsheetRequest{
			Requests: reqs,
		}).Context(ctx).Do()
		if err != nil {
			return "", fmt.Errorf("sheets: formatear encabezados: %w", err)
		}
	}

	if created.SpreadsheetUrl != "" {
		return created.SpreadsheetUrl, nil
	}
	return "https://docs.google.com/spreadsheets/d/" + created.SpreadsheetId + "/edit", nil
}

// buildSpreadsheet todas las hojas se crean en la misma llamada. Los sheetId
// empiezan en 1: el 0 se omitiría al serializar (omitempty).
func buildSpreadsheet(company string, titles []string) *gsheets.Spreadsheet {
	ss := &gsheets.Spreadsheet{
		Properties: &gsheets.SpreadsheetProperties{Title: company + " - Product Specifications"},
	}
	for i, t := range titles {
		ss.Sheets = append(ss.Sheets, &gsheets.Sheet{
			Properties: &gsheets.SheetProperties{SheetId: int64(i + 1), Title: t, Index: int64(i)},
		})
	}
	return ss
}

// buildValues un rango por hoja; headers lista los sheetId cuya primera fila es encabezado.
func buildValues(doc export.Document, names, titles []string) ([]*gsheets.ValueRange, []int64) {
	var (
		data    []*gsheets.ValueRange
		headers []int64
	)
	for i, name := range names {
		rows := export.SheetRows(name, doc.Products[name])
		values := make([][]interface{}, len(rows))
		for j, row := range rows {
			values[j] = make([]interface{}, len(row))
			for k, v := range row {
				values[j][k] = v
			}
		}
		data = append(data, &gsheets.ValueRange{
			Range:  quoteSheet(titles[i]) + "!A1",
			Values: values,
		})
		if len(rows) > 1 {
			headers = append(headers, int64(i+1))
		}
	}
	return data, headers
}

// formatRequests encabezado azul con texto blanco en negrita y ancho automático.
func formatRequests(sheetIDs []int64) []*gsheets.Request {
	var reqs []*gsheets.Request
	for _, id := range sheetIDs {
		reqs = append(reqs,
			&gsheets.Request{RepeatCell: &gsheets.RepeatCellRequest{
				Range: &gsheets.GridRange{SheetId: id, StartRowIndex: 0, EndRowIndex: 1},
				Cell: &gsheets.CellData{UserEnteredFormat: &gsheets.CellFormat{
					BackgroundColor: &gsheets.Color{Red: 0.2, Green: 0.6, Blue: 0.9},
					TextFormat: &gsheets.TextFormat{
						Bold:            true,
						ForegroundColor: &gsheets.Color{Red: 1, Green: 1, Blue: 1},
					},
				}},
				Fields: "userEnteredFormat(backgroundColor,textFormat)",
			}},
			&gsheets.Request{AutoResizeDimensions: &gsheets.AutoResizeDimensionsRequest{
				Dimensions: &gsheets.DimensionRange{SheetId: id, Dimension: "COLUMNS", StartIndex: 0, EndIndex: 3},
			}},
		)
	}
	return reqs
}

// quoteSheet notación A1 con comillas simples (las internas se duplican).
func quoteSheet(title string) string {
	return "'" + strings.ReplaceAll(title, "'", "''") + "'"
}
