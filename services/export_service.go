package services

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// BuildAssessmentWorkbook renders a patient's full assessment history
// as a spreadsheet for the nutritionist to download.
func BuildAssessmentWorkbook(patientID uint) (*excelize.File, error) {
	assessments, err := ListAssessments(patientID)
	if err != nil {
		return nil, err
	}

	file := excelize.NewFile()
	sheet := "Sheet1"

	headers := map[string]string{
		"A1": "Data",
		"B1": "Peso (kg)",
		"C1": "IMC",
		"D1": "Gordura corporal (%)",
		"E1": "Cintura (cm)",
		"F1": "Quadril (cm)",
		"G1": "Braço (cm)",
		"H1": "Panturrilha (cm)",
		"I1": "TMB (kcal)",
		"J1": "Observações",
	}
	for cell, value := range headers {
		file.SetCellValue(sheet, cell, value)
	}

	for i, a := range assessments {
		row := i + 2
		file.SetCellValue(sheet, fmt.Sprintf("A%d", row), a.Date.Format("02/01/2006"))
		file.SetCellValue(sheet, fmt.Sprintf("B%d", row), a.Weight)
		file.SetCellValue(sheet, fmt.Sprintf("C%d", row), a.BMI)
		file.SetCellValue(sheet, fmt.Sprintf("D%d", row), a.BodyFatPercentage)
		file.SetCellValue(sheet, fmt.Sprintf("E%d", row), a.Waist)
		file.SetCellValue(sheet, fmt.Sprintf("F%d", row), a.Hip)
		file.SetCellValue(sheet, fmt.Sprintf("G%d", row), a.Arm)
		file.SetCellValue(sheet, fmt.Sprintf("H%d", row), a.Calf)
		file.SetCellValue(sheet, fmt.Sprintf("I%d", row), a.BasalMetabolicRate)
		file.SetCellValue(sheet, fmt.Sprintf("J%d", row), a.Notes)
	}

	return file, nil
}
