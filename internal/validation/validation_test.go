package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "portfolio/internal/errors"
	"portfolio/internal/model"
)

func level(n int) *int { return &n }

func newTestValidator() *Validator {
	clock := func() time.Time { return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) }
	return New([]string{"civil", "math", "technical"}, WithClock(clock))
}

func fieldNames(t *testing.T, err error) []string {
	t.Helper()
	var appErr *apperrors.Error
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, apperrors.KindValidation, appErr.Kind)
	names := make([]string, 0, len(appErr.Fields))
	for _, f := range appErr.Fields {
		names = append(names, f.Field)
	}
	return names
}

func TestStruct_Skill(t *testing.T) {
	v := newTestValidator()

	assert.NoError(t, v.Struct(&model.Skill{CategoryID: 1, Name: "Topographie", Level: level(70)}))
	assert.NoError(t, v.Struct(&model.Skill{CategoryID: 1, Name: "Topographie", Level: level(0)}))

	err := v.Struct(&model.Skill{CategoryID: 1, Name: "", Level: level(70)})
	assert.Equal(t, []string{"name"}, fieldNames(t, err))

	err = v.Struct(&model.Skill{CategoryID: 1, Name: "x", Level: level(101)})
	assert.Equal(t, []string{"level"}, fieldNames(t, err))

	err = v.Struct(&model.Skill{Name: "x", Level: level(-1)})
	assert.ElementsMatch(t, []string{"categoryId", "level"}, fieldNames(t, err))

	err = v.Struct(&model.Skill{CategoryID: 1, Name: "x"})
	assert.Equal(t, []string{"level"}, fieldNames(t, err))
}

func TestStruct_CertificationYear(t *testing.T) {
	v := newTestValidator()
	cert := model.Certification{
		Name: "Baccalauréat série C", Description: "d", Type: "Diplôme national",
		Institution: "Lycée de Mimboman", Location: "Yaoundé", Color: "from-blue-500",
	}

	for _, year := range []int{1900, 2020, 2025} {
		cert.Year = year
		assert.NoError(t, v.Struct(&cert), "year %d", year)
	}
	for _, year := range []int{1899, 2026} {
		cert.Year = year
		assert.Equal(t, []string{"year"}, fieldNames(t, v.Struct(&cert)), "year %d", year)
	}
}

func TestStruct_EducationEnums(t *testing.T) {
	v := newTestValidator()
	edu := model.Education{
		Period: "2024-2025", Title: "Master 2", Institutions: []string{"Université de Yaoundé I"},
		Location: "Yaoundé", Status: "En cours", Type: "current",
	}
	require.NoError(t, v.Struct(&edu))

	edu.Status = "Terminé"
	edu.Type = "paused"
	assert.ElementsMatch(t, []string{"status", "type"}, fieldNames(t, v.Struct(&edu)))

	edu.Status = "Validé"
	edu.Type = "completed"
	edu.Institutions = nil
	assert.Equal(t, []string{"institutions"}, fieldNames(t, v.Struct(&edu)))

	edu.Institutions = []string{"ok", ""}
	assert.Equal(t, []string{"institutions[1]"}, fieldNames(t, v.Struct(&edu)))
}

func TestStruct_Project(t *testing.T) {
	v := newTestValidator()
	p := model.Project{
		Title: "Pont", Description: "Analyse", Category: "civil",
		Status: "Terminé", StartDate: "2023-09", EndDate: "2023-12",
	}
	require.NoError(t, v.Struct(&p))

	p.Category = "cooking"
	p.StartDate = "2023-13"
	p.Link = "not a url"
	assert.ElementsMatch(t, []string{"category", "startDate", "link"}, fieldNames(t, v.Struct(&p)))
}

func TestStruct_Message(t *testing.T) {
	v := newTestValidator()
	msg := model.Message{Name: "A", Email: "nope", Subject: "Hi", Content: "short"}

	assert.ElementsMatch(t, []string{"name", "email", "subject", "content"}, fieldNames(t, v.Struct(&msg)))

	msg = model.Message{Name: "Jean", Email: "jean@example.com", Subject: "Collaboration", Content: "Bonjour, je souhaite échanger."}
	assert.NoError(t, v.Struct(&msg))
}
