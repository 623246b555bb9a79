package export

import (
	"fmt"

	"ge-flipper/internal/engine"

	"github.com/xuri/excelize/v2"
)

// SuggestionsWorkbook renders a refresh result as an xlsx report.
func SuggestionsWorkbook(r engine.Result) (*excelize.File, error) {
	f := excelize.NewFile()
	const sheet = "Suggestions"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	headers := []string{"Rank", "Item", "Item ID", "Buy Price", "Sell Price", "Quantity", "Expected Profit", "Daily Volume", "Buy Limit", "Volatility %"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for row, c := range r.Candidates {
		values := []interface{}{
			row + 1, c.Name, c.ItemID, c.BuyPrice, c.SellPrice,
			c.Quantity, c.ExpectedProfit, c.DailyVolume, c.BuyLimit, c.VolatilityPct,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	summary := fmt.Sprintf("Refreshed %s | gold considered %d | open slots %d",
		r.RefreshedAt.Format("2006-01-02 15:04:05"), r.GoldConsidered, r.OpenSlots)
	footer := len(r.Candidates) + 3
	cell, err := excelize.CoordinatesToCellName(1, footer)
	if err != nil {
		return nil, err
	}
	if err := f.SetCellValue(sheet, cell, summary); err != nil {
		return nil, err
	}

	return f, nil
}
