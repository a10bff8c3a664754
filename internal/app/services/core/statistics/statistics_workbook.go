package statistics

import (
	"dental-clinic-service/internal/pkg/dto/responses"
	"fmt"
	"sort"
	"time"

	"github.com/360EntSecGroup-Skylar/excelize"
)

const (
	sheetSummary       = "Summary"
	sheetTopTreatments = "Top Treatments"
	sheetAppointments  = "Appointments"
	defaultSheet       = "Sheet1"
)

// buildWorkbook renders the summary as a three sheet xlsx file.
func buildWorkbook(summary *responses.StatisticsSummary) ([]byte, error) {
	file := excelize.NewFile()
	summaryIndex := file.NewSheet(sheetSummary)
	file.NewSheet(sheetTopTreatments)
	file.NewSheet(sheetAppointments)
	file.DeleteSheet(defaultSheet)
	file.SetActiveSheet(summaryIndex)

	rows := [][]interface{}{
		{"Metric", "Value"},
		{"From", summary.From.Format(time.RFC3339)},
		{"To", summary.To.Format(time.RFC3339)},
		{"Branch", branchLabel(summary.BranchID)},
		{"Revenue", summary.Revenue},
		{"Invoiced", summary.Invoiced},
		{"Outstanding", summary.Outstanding},
		{"New patients", summary.NewPatients},
		{"Stock valuation", summary.StockValuation},
		{"Low stock products", summary.LowStockProducts},
	}
	for _, method := range sortedKeys(summary.RevenueByMethod) {
		rows = append(rows, []interface{}{"Revenue (" + method + ")", summary.RevenueByMethod[method]})
	}
	rows = append(rows, []interface{}{"Generated at", summary.GeneratedAt.Format(time.RFC3339)})
	writeRows(file, sheetSummary, rows)

	treatmentRows := [][]interface{}{{"Treatment", "Quantity", "Revenue"}}
	for _, treatment := range summary.TopTreatments {
		treatmentRows = append(treatmentRows, []interface{}{treatment.Description, treatment.Quantity, treatment.Revenue})
	}
	writeRows(file, sheetTopTreatments, treatmentRows)

	appointmentRows := [][]interface{}{{"Status", "Count"}}
	for _, status := range sortedKeys(summary.Appointments) {
		appointmentRows = append(appointmentRows, []interface{}{status, summary.Appointments[status]})
	}
	writeRows(file, sheetAppointments, appointmentRows)

	buffer, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

func writeRows(file *excelize.File, sheet string, rows [][]interface{}) {
	for i, row := range rows {
		for j, value := range row {
			file.SetCellValue(sheet, fmt.Sprintf("%c%d", 'A'+j, i+1), value)
		}
	}
}

func branchLabel(branchID string) string {
	if branchID == "" {
		return allBranches
	}
	return branchID
}

func sortedKeys(values map[string]int64) []string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
