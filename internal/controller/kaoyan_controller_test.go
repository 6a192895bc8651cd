package controller

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const kaoyanCompletion = `{
	"score": {"total_score": 13, "band": "第四档", "evaluation_summary": "结构清晰"},
	"dimension_analysis": {"content_relevance": "要点齐全", "language_accuracy": "个别错误", "coherence_format": "衔接自然"},
	"grammar_and_vocab_errors": [],
	"vocabulary": {"good_collocations_used": [], "recommended_collocations": [], "advanced_structures": []},
	"improved_version": "Rewritten essay."
}`

func TestSubmitKaoyanNormalizesTypes(t *testing.T) {
	srv := completionServer(t, kaoyanCompletion, http.StatusOK)
	defer srv.Close()
	router := newTestRouter(t, srv.URL)

	rec, envelope := doJSON(t, router, http.MethodPost, "/api/kaoyan", gin.H{
		"exam_type":  "英语二",
		"paper_type": "大作文",
		"topic":      "An invitation letter",
		"content":    "Dear Professor...",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	data := envelope["data"].(map[string]any)
	assert.Equal(t, 1.0, data["id"])
	assert.Equal(t, "English II", data["exam_type"])
	assert.Equal(t, "large_essay", data["paper_type"])
	assert.Equal(t, 15.0, data["max_score"])

	analysis := data["analysis"].(map[string]any)
	score := analysis["score"].(map[string]any)
	assert.Equal(t, 13.0, score["total_score"])
}

func TestSubmitKaoyanDefaultsToEnglishILarge(t *testing.T) {
	srv := completionServer(t, kaoyanCompletion, http.StatusOK)
	defer srv.Close()
	router := newTestRouter(t, srv.URL)

	rec, envelope := doJSON(t, router, http.MethodPost, "/api/kaoyan", gin.H{
		"topic":   "Topic",
		"content": "Content",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	data := envelope["data"].(map[string]any)
	assert.Equal(t, "English I", data["exam_type"])
	assert.Equal(t, "large_essay", data["paper_type"])
	assert.Equal(t, 20.0, data["max_score"])
}

func TestKaoyanGetDenormalizedScores(t *testing.T) {
	srv := completionServer(t, kaoyanCompletion, http.StatusOK)
	defer srv.Close()
	router := newTestRouter(t, srv.URL)

	rec, _ := doJSON(t, router, http.MethodPost, "/api/kaoyan", gin.H{
		"exam_type": "1", "paper_type": "small", "topic": "Topic", "content": "Content",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, envelope := doJSON(t, router, http.MethodGet, "/api/kaoyan/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	record := envelope["data"].(map[string]any)["record"].(map[string]any)
	assert.Equal(t, "English I", record["exam_type"])
	assert.Equal(t, "small_essay", record["paper_type"])
	assert.Equal(t, 13.0, record["total_score"])
}

func TestKaoyanTrajectory(t *testing.T) {
	srv := completionServer(t, kaoyanCompletion, http.StatusOK)
	defer srv.Close()
	router := newTestRouter(t, srv.URL)

	for range 2 {
		rec, _ := doJSON(t, router, http.MethodPost, "/api/kaoyan", gin.H{
			"exam_type": "英语一", "paper_type": "大作文", "topic": "Topic", "content": "Content",
		})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec, envelope := doJSON(t, router, http.MethodGet, "/api/kaoyan/trajectory", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	points := envelope["data"].([]any)
	require.Len(t, points, 2)
	first := points[0].(map[string]any)
	assert.Equal(t, 1.0, first["index"])
	assert.Equal(t, 13.0, first["total_score"])
	assert.Equal(t, "第四档", first["band"])
}

func TestKaoyanAnalysisEmptyHistoryReturns400(t *testing.T) {
	srv := completionServer(t, kaoyanCompletion, http.StatusOK)
	defer srv.Close()
	router := newTestRouter(t, srv.URL)

	rec, _ := doJSON(t, router, http.MethodPost, "/api/kaoyan/analysis", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
