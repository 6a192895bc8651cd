package service

import (
	"context"
	"encoding/json"
	"fmt"

	"essay_coach_backend/internal/model"
	"essay_coach_backend/internal/repository"
	"essay_coach_backend/internal/util"
	"essay_coach_backend/pkg/logger"

	"go.uber.org/zap"
)

// TrajectoryService rebuilds a student's submission history from the
// record store and feeds it to the trend-analysis prompt. History points
// are chronological (oldest first) and 1-indexed by submission order,
// independent of storage ids. A stored blob that no longer parses is
// skipped silently: one corrupt historical row must not block a report.
type TrajectoryService struct {
	essays  *repository.EssayRepository
	kaoyan  *repository.KaoyanRepository
	grading *GradingService
}

func NewTrajectoryService(essays *repository.EssayRepository, kaoyan *repository.KaoyanRepository, grading *GradingService) *TrajectoryService {
	return &TrajectoryService{essays: essays, kaoyan: kaoyan, grading: grading}
}

func (s *TrajectoryService) IELTSHistory() ([]model.IELTSTrajectoryPoint, error) {
	recs, err := s.essays.ListActive()
	if err != nil {
		return nil, err
	}
	reverseEssays(recs)

	points := make([]model.IELTSTrajectoryPoint, 0, len(recs))
	idx := 0
	for _, rec := range recs {
		idx++
		analysis, err := rec.Analysis()
		if err != nil {
			logger.Log.Debug("skipping essay with unparsable analysis",
				zap.Uint("id", rec.ID), zap.Error(err))
			continue
		}

		scores, _ := analysis["scores"].(map[string]any)
		weaknesses := []string{}
		if feedback, ok := analysis["feedback"].(map[string]any); ok {
			weaknesses = stringSlice(feedback["weaknesses"])
		}

		points = append(points, model.IELTSTrajectoryPoint{
			ID:         rec.ID,
			Index:      idx,
			CreatedAt:  rec.CreatedAt,
			Topic:      rec.Topic,
			TaskType:   rec.TaskType,
			Scores:     scores,
			Weaknesses: weaknesses,
		})
	}
	return points, nil
}

func (s *TrajectoryService) KaoyanHistory() ([]model.KaoyanTrajectoryPoint, error) {
	recs, err := s.kaoyan.ListActive()
	if err != nil {
		return nil, err
	}
	reverseKaoyan(recs)

	points := make([]model.KaoyanTrajectoryPoint, 0, len(recs))
	idx := 0
	for _, rec := range recs {
		idx++
		analysis, err := rec.Analysis()
		if err != nil {
			logger.Log.Debug("skipping kaoyan record with unparsable analysis",
				zap.Uint("id", rec.ID), zap.Error(err))
			continue
		}

		score, _ := analysis["score"].(map[string]any)

		// Prefer the total from the stored JSON; the denormalized column
		// is the fallback snapshot.
		total := rec.TotalScore
		if v, ok := model.ToFloat(score["total_score"]); ok {
			total = &v
		}

		band, _ := score["band"].(string)
		summary, _ := score["evaluation_summary"].(string)

		points = append(points, model.KaoyanTrajectoryPoint{
			ID:                rec.ID,
			Index:             idx,
			CreatedAt:         rec.CreatedAt,
			Topic:             rec.Topic,
			ExamType:          rec.ExamType,
			PaperType:         rec.PaperType,
			TotalScore:        total,
			Band:              band,
			EvaluationSummary: summary,
		})
	}
	return points, nil
}

// AnalyzeIELTS runs the IELTS trend report over the full active history.
func (s *TrajectoryService) AnalyzeIELTS(ctx context.Context, providerName string) (*model.TrendReport, *model.ProviderError, error) {
	history, err := s.IELTSHistory()
	if err != nil {
		return nil, nil, err
	}
	if len(history) == 0 {
		return nil, nil, util.ErrEmptyHistory
	}

	historyJSON, err := json.MarshalIndent(history, "", "  ")
	if err != nil {
		return nil, nil, err
	}

	userPrompt := fmt.Sprintf("Student IELTS history (ordered by submission, including task_type):\n%s", historyJSON)
	report, perr := s.grading.Analyze(ctx, providerName, ieltsTrajectorySystemPrompt, userPrompt)
	return report, perr, nil
}

func (s *TrajectoryService) AnalyzeKaoyan(ctx context.Context, providerName string) (*model.TrendReport, *model.ProviderError, error) {
	history, err := s.KaoyanHistory()
	if err != nil {
		return nil, nil, err
	}
	if len(history) == 0 {
		return nil, nil, util.ErrEmptyHistory
	}

	historyJSON, err := json.MarshalIndent(history, "", "  ")
	if err != nil {
		return nil, nil, err
	}

	userPrompt := fmt.Sprintf("Student Kaoyan history (ordered by submission, including exam_type and paper_type):\n%s", historyJSON)
	report, perr := s.grading.Analyze(ctx, providerName, kaoyanTrajectorySystemPrompt, userPrompt)
	return report, perr, nil
}

func reverseEssays(recs []model.EssayRecord) {
	for i, j := 0, len(recs)-1; i < j; i, j = i+1, j-1 {
		recs[i], recs[j] = recs[j], recs[i]
	}
}

func reverseKaoyan(recs []model.KaoyanRecord) {
	for i, j := 0, len(recs)-1; i < j; i, j = i+1, j-1 {
		recs[i], recs[j] = recs[j], recs[i]
	}
}

func stringSlice(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
