package worksheet

import (
	"io"

	"github.com/xuri/excelize/v2"
)

const (
	questionSheet = "Worksheet"
	answerSheet   = "Answers"
)

// WriteXLSX writes the sheet as a workbook. The Worksheet sheet leaves the
// answer column blank unless ShowAnswers is set; in that case no separate
// Answers sheet is added.
func WriteXLSX(w io.Writer, sheet Sheet) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", questionSheet); err != nil {
		return err
	}
	if err := fillSheet(f, questionSheet, sheet.Items, sheet.ShowAnswers); err != nil {
		return err
	}

	if !sheet.ShowAnswers {
		if _, err := f.NewSheet(answerSheet); err != nil {
			return err
		}
		if err := fillSheet(f, answerSheet, sheet.Items, true); err != nil {
			return err
		}
	}

	if err := f.SetDocProps(&excelize.DocProperties{
		Title:       "Gojuon writing drill",
		Subject:     sheet.Direction.Label() + " | " + sheet.Range.Label(),
		Created:     sheet.GeneratedAt.UTC().Format("2006-01-02T15:04:05Z"),
		Description: "Generated kana worksheet",
	}); err != nil {
		return err
	}

	_, err := f.WriteTo(w)
	return err
}

func fillSheet(f *excelize.File, name string, items []Item, withAnswers bool) error {
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(name, "A1", &[]any{"No", "Question", "Answer"}); err != nil {
		return err
	}
	if err := f.SetCellStyle(name, "A1", "C1", bold); err != nil {
		return err
	}
	if err := f.SetColWidth(name, "B", "C", 16); err != nil {
		return err
	}

	for i, item := range items {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{item.Number, item.Question, ""}
		if withAnswers {
			row[2] = item.Answer
		}
		if err := f.SetSheetRow(name, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
