package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/Zafar-Sheik/roadworks-service/internal/domain/model"
	"github.com/Zafar-Sheik/roadworks-service/internal/query"
	"github.com/Zafar-Sheik/roadworks-service/internal/repository"
)

const potholeSheetName = "Potholes"

var potholeExportHeader = []interface{}{
	"Sheet ID", "Job ID", "Length (m)", "Width (m)", "Depth (m)",
	"Bags", "Area (m2)", "Volume (m3)", "Materials (kg)", "Weather", "Recorded At",
}

func (s *PotholeServiceImpl) Export(ctx context.Context, params query.Params, w io.Writer) (int, error) {
	f, err := buildFilter("potholes", potholeFilters, params)
	if err != nil {
		return 0, err
	}

	potholes, err := s.potholes.List(ctx, f.BSON(), repository.ListOptions{})
	if err != nil {
		return 0, fmt.Errorf("list potholes for export: %w", err)
	}

	book, err := buildPotholeWorkbook(potholes)
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = book.Close()
	}()

	if _, err := book.WriteTo(w); err != nil {
		return 0, fmt.Errorf("write workbook: %w", err)
	}
	return len(potholes), nil
}

func buildPotholeWorkbook(potholes []*model.Pothole) (*excelize.File, error) {
	book := excelize.NewFile()
	if err := book.SetSheetName(book.GetSheetName(0), potholeSheetName); err != nil {
		_ = book.Close()
		return nil, fmt.Errorf("name sheet: %w", err)
	}

	header := potholeExportHeader
	if err := book.SetSheetRow(potholeSheetName, "A1", &header); err != nil {
		_ = book.Close()
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, p := range potholes {
		row := []interface{}{
			p.ID.Hex(),
			p.Job.Hex(),
			p.Dimensions.L,
			p.Dimensions.W,
			p.Dimensions.D,
			p.NumberOfBags,
			p.Area,
			p.Volume,
			p.MaterialsInKg,
			p.Weather,
			p.CreatedAt.UTC().Format(time.RFC3339),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			_ = book.Close()
			return nil, err
		}
		if err := book.SetSheetRow(potholeSheetName, cell, &row); err != nil {
			_ = book.Close()
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := book.SetPanes(potholeSheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		_ = book.Close()
		return nil, fmt.Errorf("freeze header: %w", err)
	}

	return book, nil
}
