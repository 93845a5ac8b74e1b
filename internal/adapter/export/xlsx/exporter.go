// Package xlsx renders part lists as spreadsheets.
package xlsx

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/heartmarshall/partsdb-backend/internal/domain"
)

// ContentType is the MIME type of the rendered workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const sheetName = "parts"

var header = []string{
	"labName", "personalName", "sampleType", "comment", "date", "tags",
	"ownerName", "plasmidName", "hostStrain", "markers", "sequence",
	"orientation", "meltingTemperature", "concentration", "vendor",
	"parents", "genotype", "plasmidType", "attachments", "createdAt", "updatedAt",
}

// Exporter writes parts to an xlsx workbook, one row per part.
type Exporter struct{}

// NewExporter creates an Exporter.
func NewExporter() *Exporter {
	return &Exporter{}
}

// ContentType returns the MIME type of the produced document.
func (e *Exporter) ContentType() string { return ContentType }

// FileName returns the suggested download name.
func (e *Exporter) FileName() string { return "parts.xlsx" }

// Write renders parts into w.
func (e *Exporter) Write(w io.Writer, parts []domain.Part) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return fmt.Errorf("xlsx: rename sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("xlsx: header style: %w", err)
	}

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		return fmt.Errorf("xlsx: stream writer: %w", err)
	}

	head := make([]any, len(header))
	for i, h := range header {
		head[i] = excelize.Cell{StyleID: bold, Value: h}
	}
	if err := sw.SetRow("A1", head); err != nil {
		return fmt.Errorf("xlsx: header row: %w", err)
	}

	for i, p := range parts {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("xlsx: cell name: %w", err)
		}
		if err := sw.SetRow(cell, row(p)); err != nil {
			return fmt.Errorf("xlsx: row %d: %w", i+2, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("xlsx: flush: %w", err)
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("xlsx: write: %w", err)
	}
	return nil
}

func row(p domain.Part) []any {
	c := p.Content.Flatten()

	date := ""
	if p.Date != nil {
		date = p.Date.Format(time.DateOnly)
	}
	melting := ""
	if c.MeltingTemperature != nil {
		melting = strconv.FormatFloat(*c.MeltingTemperature, 'f', -1, 64)
	}
	names := make([]string, len(p.Attachments))
	for i, a := range p.Attachments {
		names[i] = a.FileName
	}

	return []any{
		p.LabName,
		p.PersonalName,
		string(p.SampleType),
		p.Comment,
		date,
		strings.Join(p.Tags, ";"),
		p.OwnerName,
		deref(c.PlasmidName),
		deref(c.HostStrain),
		strings.Join(c.Markers, ";"),
		deref(c.Sequence),
		deref(c.Orientation),
		melting,
		deref(c.Concentration),
		deref(c.Vendor),
		strings.Join(c.Parents, ";"),
		strings.Join(c.Genotype, ";"),
		deref(c.PlasmidType),
		strings.Join(names, ";"),
		p.CreatedAt.UTC().Format(time.RFC3339),
		p.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
