package export

import (
	"io"

	"staffing_service/internal/adapter/http/dto/response"

	"github.com/xuri/excelize/v2"
)

const (
	ServiceOrdersSheet = "Service orders"
	ContentTypeXLSX    = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var serviceOrderHeaders = []string{
	"ID", "Title", "Status", "Supplier", "Specialist", "Role", "Domain",
	"Start date", "Current end date", "Actual end date",
	"Current man days", "Consumed man days", "Remaining man days",
	"Daily rate", "Current contract value", "Extended", "Substituted",
}

// WriteServiceOrders renders orders as a single-sheet workbook.
func WriteServiceOrders(w io.Writer, orders []response.ServiceOrderResponse) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ServiceOrdersSheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(ServiceOrdersSheet, "A1", &serviceOrderHeaders); err != nil {
		return err
	}
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(serviceOrderHeaders), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(ServiceOrdersSheet, "A1", last, style); err != nil {
		return err
	}

	for i, o := range orders {
		actualEnd := ""
		if o.ActualEndDate != nil {
			actualEnd = *o.ActualEndDate
		}
		row := []any{
			o.ID, o.Title, o.Status, o.SupplierName, o.CurrentSpecialistName, o.Role, o.Domain,
			o.StartDate, o.CurrentEndDate, actualEnd,
			o.CurrentManDays, o.ConsumedManDays, o.RemainingManDays,
			o.DailyRate, o.CurrentContractValue, o.HasBeenExtended, o.HasBeenSubstituted,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(ServiceOrdersSheet, cell, &row); err != nil {
			return err
		}
	}
	return f.Write(w)
}
