package repository

import (
	"testing"

	"essay_coach_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKaoyanCreateDenormalizesDetailedScores(t *testing.T) {
	repo := NewKaoyanRepository(newTestDB(t))

	analysis := map[string]any{
		"score": map[string]any{
			"total":           13.0,
			"language_score":  4.5,
			"structure_score": 4.0,
			"logic_score":     4.5,
		},
	}
	id, err := repo.Create(model.ExamEnglishII, model.PaperLargeEssay, "Topic", "Content", analysis, "")
	require.NoError(t, err)

	rec, err := repo.GetByID(id)
	require.NoError(t, err)
	require.NotNil(t, rec)
	require.NotNil(t, rec.TotalScore)
	assert.Equal(t, 13.0, *rec.TotalScore)
	require.NotNil(t, rec.LanguageScore)
	assert.Equal(t, 4.5, *rec.LanguageScore)
	require.NotNil(t, rec.StructureScore)
	require.NotNil(t, rec.LogicScore)
}

func TestKaoyanCreateDenormalizesTotalOnly(t *testing.T) {
	repo := NewKaoyanRepository(newTestDB(t))

	analysis := map[string]any{
		"score": map[string]any{
			"total_score":        14.0,
			"band":               "第四档",
			"evaluation_summary": "良好",
		},
	}
	id, err := repo.Create(model.ExamEnglishI, model.PaperLargeEssay, "Topic", "Content", analysis, "")
	require.NoError(t, err)

	rec, err := repo.GetByID(id)
	require.NoError(t, err)
	require.NotNil(t, rec.TotalScore)
	assert.Equal(t, 14.0, *rec.TotalScore)
	assert.Nil(t, rec.LanguageScore)
	assert.Nil(t, rec.StructureScore)
	assert.Nil(t, rec.LogicScore)
}

func TestKaoyanCreateScoreExtractionIsAtomic(t *testing.T) {
	repo := NewKaoyanRepository(newTestDB(t))

	// structure_score cannot convert, so no column may survive.
	analysis := map[string]any{
		"score": map[string]any{
			"total":           13.0,
			"language_score":  4.5,
			"structure_score": []any{"broken"},
			"logic_score":     4.5,
		},
	}
	id, err := repo.Create(model.ExamEnglishI, model.PaperSmallEssay, "Topic", "Content", analysis, "")
	require.NoError(t, err)

	rec, err := repo.GetByID(id)
	require.NoError(t, err)
	assert.Nil(t, rec.TotalScore)
	assert.Nil(t, rec.LanguageScore)
	assert.Nil(t, rec.StructureScore)
	assert.Nil(t, rec.LogicScore)

	// The blob itself still round-trips untouched.
	got, err := rec.Analysis()
	require.NoError(t, err)
	assert.Equal(t, analysis, got)
}

func TestKaoyanSoftDeleteExcludesFromList(t *testing.T) {
	repo := NewKaoyanRepository(newTestDB(t))

	id1, err := repo.Create(model.ExamEnglishI, model.PaperSmallEssay, "a", "c", nil, "")
	require.NoError(t, err)
	id2, err := repo.Create(model.ExamEnglishI, model.PaperSmallEssay, "b", "c", nil, "")
	require.NoError(t, err)

	require.NoError(t, repo.Delete(id1, true))

	recs, err := repo.ListActive()
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, id2, recs[0].ID)
}
