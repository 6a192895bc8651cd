package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeIELTSResult(t *testing.T) {
	payload := `{
		"scores": {"TR": 7.0, "CC": 6.5, "LR": 7.0, "GRA": 6.0, "overall": 6.5},
		"feedback": {
			"strengths": ["clear position"],
			"weaknesses": ["limited linking"],
			"logic_check": "body paragraphs follow Idea-Explain-Example",
			"detailed_comments": "solid overall"
		},
		"improvements": ["vary cohesive devices"],
		"vocabulary": {
			"good_collocations_used": ["growing concern"],
			"recommended_collocations": ["mounting concern"],
			"advanced_structures": ["inversion"]
		},
		"band_9_sample": "Sample text."
	}`

	var raw map[string]any
	require.NoError(t, json.Unmarshal([]byte(payload), &raw))

	res, err := DecodeIELTSResult(raw)
	require.NoError(t, err)
	assert.Equal(t, 7.0, res.Scores.TR)
	assert.Equal(t, 6.5, res.Scores.Overall)
	assert.Equal(t, []string{"limited linking"}, res.Feedback.Weaknesses)
	assert.Equal(t, "Sample text.", res.Band9Sample)
	assert.Equal(t, raw, res.Raw)
}

func TestDecodeKaoyanResult(t *testing.T) {
	payload := `{
		"score": {"total_score": 13, "band": "第四档", "evaluation_summary": "结构清晰"},
		"dimension_analysis": {
			"content_relevance": "要点齐全",
			"language_accuracy": "个别错误",
			"coherence_format": "衔接自然"
		},
		"grammar_and_vocab_errors": [
			{"original_sentence": "He go to school.", "error_type": "语法错误",
			 "correction": "He goes to school.", "explanation": "主谓一致"}
		],
		"vocabulary": {
			"good_collocations_used": [],
			"recommended_collocations": [],
			"advanced_structures": []
		},
		"improved_version": "Rewritten essay."
	}`

	var raw map[string]any
	require.NoError(t, json.Unmarshal([]byte(payload), &raw))

	res, err := DecodeKaoyanResult(raw)
	require.NoError(t, err)
	assert.Equal(t, 13.0, res.Score.TotalScore)
	assert.Equal(t, "第四档", res.Score.Band)
	require.Len(t, res.GrammarErrors, 1)
	assert.Equal(t, "He goes to school.", res.GrammarErrors[0].Correction)
}

func TestDecodeTrendReport(t *testing.T) {
	raw := map[string]any{
		"persistent_weaknesses": []any{"linking words"},
		"progress_analysis":     "scores trending up",
		"learning_plan": map[string]any{
			"focus_areas":         []any{"cohesion"},
			"suggested_exercises": []any{"paragraph drills"},
		},
		"trend_summary": "整体进步明显。",
	}

	report, err := DecodeTrendReport(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"linking words"}, report.PersistentWeaknesses)
	assert.Equal(t, []string{"cohesion"}, report.LearningPlan.FocusAreas)
	assert.Equal(t, "整体进步明显。", report.TrendSummary)
}

func TestDecodeIELTSResultWrongShape(t *testing.T) {
	raw := map[string]any{"scores": "very good"}
	_, err := DecodeIELTSResult(raw)
	assert.Error(t, err)
}
