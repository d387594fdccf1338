package services

import (
	"testing"

	"github.com/vReis72/nutri-vita-plan-sub000/config"
	"github.com/vReis72/nutri-vita-plan-sub000/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAssessmentComputesSnapshot(t *testing.T) {
	setupTestDB(t)
	_, n1 := seedNutritionist(t, "n1@example.com")
	patient := seedPatient(t, &n1.ID) // male, 180cm, 30y

	assessment, err := CreateAssessment(patient.ID, AssessmentInput{
		Date:   "2026-08-01",
		Weight: 80,
		Waist:  92,
	})
	require.NoError(t, err)

	// 80 / 1.80² and Mifflin-St Jeor, frozen into the record
	assert.InDelta(t, 24.69, assessment.BMI, 0.001)
	assert.Equal(t, 1913.0, assessment.BasalMetabolicRate)

	// the patient's current weight follows the latest assessment
	var refreshed models.Patient
	require.NoError(t, config.DB.First(&refreshed, patient.ID).Error)
	assert.Equal(t, 80.0, refreshed.Weight)
}

func TestAssessmentsAreAppendOnlyOrderedByDate(t *testing.T) {
	setupTestDB(t)
	_, n1 := seedNutritionist(t, "n1@example.com")
	patient := seedPatient(t, &n1.ID)

	for _, c := range []struct {
		date   string
		weight float64
	}{
		{"2026-06-01", 84},
		{"2026-08-01", 80},
		{"2026-07-01", 82},
	} {
		_, err := CreateAssessment(patient.ID, AssessmentInput{Date: c.date, Weight: c.weight})
		require.NoError(t, err)
	}

	assessments, err := ListAssessments(patient.ID)
	require.NoError(t, err)
	require.Len(t, assessments, 3)
	assert.Equal(t, 80.0, assessments[0].Weight)
	assert.Equal(t, 82.0, assessments[1].Weight)
	assert.Equal(t, 84.0, assessments[2].Weight)

	latest, err := LatestAssessment(patient.ID)
	require.NoError(t, err)
	assert.Equal(t, 80.0, latest.Weight)
}

// Backfilling an old record must not regress the patient's current
// weight; only the most recent assessment drives the sync.
func TestBackdatedAssessmentKeepsCurrentWeight(t *testing.T) {
	setupTestDB(t)
	_, n1 := seedNutritionist(t, "n1@example.com")
	patient := seedPatient(t, &n1.ID)

	_, err := CreateAssessment(patient.ID, AssessmentInput{Date: "2026-08-01", Weight: 80})
	require.NoError(t, err)

	// historical entry, heavier
	_, err = CreateAssessment(patient.ID, AssessmentInput{Date: "2026-06-01", Weight: 86})
	require.NoError(t, err)

	var refreshed models.Patient
	require.NoError(t, config.DB.First(&refreshed, patient.ID).Error)
	assert.Equal(t, 80.0, refreshed.Weight)

	// a genuinely newer one still syncs
	_, err = CreateAssessment(patient.ID, AssessmentInput{Date: "2026-08-20", Weight: 78})
	require.NoError(t, err)
	require.NoError(t, config.DB.First(&refreshed, patient.ID).Error)
	assert.Equal(t, 78.0, refreshed.Weight)
}

func TestCreateAssessmentUnknownPatient(t *testing.T) {
	setupTestDB(t)

	_, err := CreateAssessment(12345, AssessmentInput{Weight: 70})
	assert.Error(t, err)
}
