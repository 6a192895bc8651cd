package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeScoresDetailedShape(t *testing.T) {
	analysis := map[string]any{
		"score": map[string]any{
			"total":           12.5,
			"language_score":  4.0,
			"structure_score": 4.5,
			"logic_score":     4.0,
		},
	}

	cols := NormalizeScores(analysis)
	require.NotNil(t, cols.Total)
	require.NotNil(t, cols.Language)
	require.NotNil(t, cols.Structure)
	require.NotNil(t, cols.Logic)
	assert.Equal(t, 12.5, *cols.Total)
	assert.Equal(t, 4.0, *cols.Language)
	assert.Equal(t, 4.5, *cols.Structure)
	assert.Equal(t, 4.0, *cols.Logic)
}

func TestNormalizeScoresDetailedShapeMissingField(t *testing.T) {
	// A missing sub-score stays absent on its own; the others survive.
	analysis := map[string]any{
		"score": map[string]any{
			"total":          12.0,
			"language_score": 4.0,
		},
	}

	cols := NormalizeScores(analysis)
	require.NotNil(t, cols.Total)
	require.NotNil(t, cols.Language)
	assert.Nil(t, cols.Structure)
	assert.Nil(t, cols.Logic)
}

func TestNormalizeScoresAtomicity(t *testing.T) {
	// One unconvertible value in the detailed shape discards all four.
	analysis := map[string]any{
		"score": map[string]any{
			"total":           12.0,
			"language_score":  4.0,
			"structure_score": map[string]any{"oops": true},
			"logic_score":     4.0,
		},
	}

	cols := NormalizeScores(analysis)
	assert.Nil(t, cols.Total)
	assert.Nil(t, cols.Language)
	assert.Nil(t, cols.Structure)
	assert.Nil(t, cols.Logic)
}

func TestNormalizeScoresTotalOnlyShape(t *testing.T) {
	analysis := map[string]any{
		"score": map[string]any{
			"total_score":        14.0,
			"band":               "第四档",
			"evaluation_summary": "整体良好",
		},
	}

	cols := NormalizeScores(analysis)
	require.NotNil(t, cols.Total)
	assert.Equal(t, 14.0, *cols.Total)
	assert.Nil(t, cols.Language)
	assert.Nil(t, cols.Structure)
	assert.Nil(t, cols.Logic)
}

func TestNormalizeScoresAbsent(t *testing.T) {
	tests := []struct {
		name     string
		analysis map[string]any
	}{
		{"no score object", map[string]any{"feedback": "x"}},
		{"score not a mapping", map[string]any{"score": "high"}},
		{"empty score object", map[string]any{"score": map[string]any{}}},
		{"unconvertible total_score", map[string]any{"score": map[string]any{"total_score": []any{1}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cols := NormalizeScores(tt.analysis)
			assert.Nil(t, cols.Total)
			assert.Nil(t, cols.Language)
			assert.Nil(t, cols.Structure)
			assert.Nil(t, cols.Logic)
		})
	}
}

func TestToFloat(t *testing.T) {
	tests := []struct {
		name   string
		arg    any
		want   float64
		wantOK bool
	}{
		{"float64", 7.5, 7.5, true},
		{"int", 7, 7, true},
		{"numeric string", "6.5", 6.5, true},
		{"non-numeric string", "seven", 0, false},
		{"nil", nil, 0, false},
		{"bool", true, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToFloat(tt.arg)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
