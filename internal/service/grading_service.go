package service

import (
	"context"
	"strings"
	"time"

	"essay_coach_backend/internal/model"
	"essay_coach_backend/pkg/logger"
	"essay_coach_backend/pkg/monitoring"

	"go.uber.org/zap"
)

// GradingService is the façade in front of the LLM providers. It builds
// the domain prompts, issues one blocking round trip, and normalizes
// whatever comes back into a typed result or a structured ProviderError.
// Failures never escape as hard errors; the error value is the result.
type GradingService struct {
	providers *ProviderSet
}

func NewGradingService(providers *ProviderSet) *GradingService {
	return &GradingService{providers: providers}
}

// NormalizeExamType maps free-form exam-type input onto English I / II.
// Chinese numerals and digits both count; English I is the default.
func NormalizeExamType(examType string) string {
	v := strings.ToLower(strings.TrimSpace(examType))
	if strings.Contains(v, "一") || strings.Contains(v, "1") {
		return model.ExamEnglishI
	}
	if strings.Contains(v, "二") || strings.Contains(v, "2") {
		return model.ExamEnglishII
	}
	if strings.Contains(v, "english ii") {
		return model.ExamEnglishII
	}
	return model.ExamEnglishI
}

// NormalizePaperType maps free-form paper-type input onto the two
// sections; large_essay is the default.
func NormalizePaperType(paperType string) string {
	v := strings.ToLower(strings.TrimSpace(paperType))
	if strings.Contains(v, "small") || strings.Contains(v, "小") {
		return model.PaperSmallEssay
	}
	if strings.Contains(v, "large") || strings.Contains(v, "大") {
		return model.PaperLargeEssay
	}
	return model.PaperLargeEssay
}

// MaxScore is a pure function of (exam type, paper type):
// English I totals 30 = small 10 + large 20, English II totals 25 =
// small 10 + large 15.
func MaxScore(examType, paperType string) int {
	switch examType {
	case model.ExamEnglishI:
		if paperType == model.PaperSmallEssay {
			return 10
		}
		return 20
	case model.ExamEnglishII:
		if paperType == model.PaperSmallEssay {
			return 10
		}
		return 15
	default:
		return 20
	}
}

// CorrectIELTS grades one IELTS essay.
func (s *GradingService) CorrectIELTS(ctx context.Context, providerName, topic, content, taskType string) (*model.IELTSResult, *model.ProviderError) {
	raw, perr := s.complete(ctx, providerName, "ielts",
		ieltsSystemPrompt, buildIELTSUserPrompt(topic, content, taskType))
	if perr != nil {
		return nil, perr
	}

	res, err := model.DecodeIELTSResult(raw)
	if err != nil {
		return nil, &model.ProviderError{
			Message: "provider returned an unexpected result shape: " + err.Error(),
			RawText: mustJSON(raw),
		}
	}
	return res, nil
}

// CorrectKaoyan grades one Kaoyan essay. Exam and paper types are
// expected pre-normalized by the caller.
func (s *GradingService) CorrectKaoyan(ctx context.Context, providerName, examType, paperType, topic, content string) (*model.KaoyanResult, *model.ProviderError) {
	maxScore := MaxScore(examType, paperType)
	wordCount := len(strings.Fields(content))

	raw, perr := s.complete(ctx, providerName, "kaoyan",
		buildKaoyanSystemPrompt(examType, paperType, maxScore),
		buildKaoyanUserPrompt(examType, paperType, topic, content, wordCount))
	if perr != nil {
		return nil, perr
	}

	res, err := model.DecodeKaoyanResult(raw)
	if err != nil {
		return nil, &model.ProviderError{
			Message: "provider returned an unexpected result shape: " + err.Error(),
			RawText: mustJSON(raw),
		}
	}
	return res, nil
}

// Analyze runs a trend-analysis prompt over a pre-built history summary.
func (s *GradingService) Analyze(ctx context.Context, providerName, systemPrompt, historyJSON string) (*model.TrendReport, *model.ProviderError) {
	raw, perr := s.complete(ctx, providerName, "trajectory", systemPrompt, historyJSON)
	if perr != nil {
		return nil, perr
	}

	report, err := model.DecodeTrendReport(raw)
	if err != nil {
		return nil, &model.ProviderError{
			Message: "provider returned an unexpected result shape: " + err.Error(),
			RawText: mustJSON(raw),
		}
	}
	return report, nil
}

func (s *GradingService) complete(ctx context.Context, providerName, domain, systemPrompt, userPrompt string) (map[string]any, *model.ProviderError) {
	p, err := s.providers.Pick(providerName)
	if err != nil {
		return nil, providerError(err)
	}

	start := time.Now()
	text, err := p.Complete(ctx, systemPrompt, userPrompt)
	if err != nil {
		monitoring.ObserveGrading(p.Name(), domain, "error", time.Since(start))
		logger.Log.Warn("provider call failed",
			zap.String("provider", p.Name()),
			zap.String("domain", domain),
			zap.Error(err))
		return nil, providerError(err)
	}

	raw, perr := ParseModelJSON(text)
	if perr != nil {
		monitoring.ObserveGrading(p.Name(), domain, "parse_error", time.Since(start))
		logger.Log.Warn("provider returned unparsable output",
			zap.String("provider", p.Name()),
			zap.String("domain", domain))
		return nil, perr
	}

	monitoring.ObserveGrading(p.Name(), domain, "ok", time.Since(start))
	return raw, nil
}
