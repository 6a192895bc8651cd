package model

import "encoding/json"

// Grading results come back from the providers as loosely shaped JSON.
// Each domain gets its own typed variant with an explicit decoder; the
// raw map is kept alongside because the stored blob must round-trip the
// provider payload verbatim.

// ProviderError is the structured failure value returned across the
// grading façade. RawText carries the unparsable provider output so it
// stays inspectable; Hint is a best-effort cause suggestion.
type ProviderError struct {
	Message string `json:"error"`
	RawText string `json:"raw_text,omitempty"`
	Hint    string `json:"hint,omitempty"`
}

type IELTSScores struct {
	TR      float64 `json:"TR"`
	CC      float64 `json:"CC"`
	LR      float64 `json:"LR"`
	GRA     float64 `json:"GRA"`
	Overall float64 `json:"overall"`
}

type IELTSFeedback struct {
	Strengths        []string `json:"strengths"`
	Weaknesses       []string `json:"weaknesses"`
	LogicCheck       string   `json:"logic_check"`
	DetailedComments string   `json:"detailed_comments"`
}

type Vocabulary struct {
	GoodCollocationsUsed    []string `json:"good_collocations_used"`
	RecommendedCollocations []string `json:"recommended_collocations"`
	AdvancedStructures      []string `json:"advanced_structures"`
}

type IELTSResult struct {
	Scores       IELTSScores   `json:"scores"`
	Feedback     IELTSFeedback `json:"feedback"`
	Improvements []string      `json:"improvements"`
	Vocabulary   Vocabulary    `json:"vocabulary"`
	Band9Sample  string        `json:"band_9_sample"`

	Raw map[string]any `json:"-"`
}

type KaoyanScore struct {
	TotalScore        float64 `json:"total_score"`
	Band              string  `json:"band"`
	EvaluationSummary string  `json:"evaluation_summary"`
}

type KaoyanDimensionAnalysis struct {
	ContentRelevance string `json:"content_relevance"`
	LanguageAccuracy string `json:"language_accuracy"`
	CoherenceFormat  string `json:"coherence_format"`
}

type KaoyanGrammarError struct {
	OriginalSentence string `json:"original_sentence"`
	ErrorType        string `json:"error_type"`
	Correction       string `json:"correction"`
	Explanation      string `json:"explanation"`
}

type KaoyanResult struct {
	Score             KaoyanScore             `json:"score"`
	DimensionAnalysis KaoyanDimensionAnalysis `json:"dimension_analysis"`
	GrammarErrors     []KaoyanGrammarError    `json:"grammar_and_vocab_errors"`
	Vocabulary        Vocabulary              `json:"vocabulary"`
	ImprovedVersion   string                  `json:"improved_version"`

	Raw map[string]any `json:"-"`
}

type LearningPlan struct {
	FocusAreas         []string `json:"focus_areas"`
	SuggestedExercises []string `json:"suggested_exercises"`
}

type TrendReport struct {
	PersistentWeaknesses []string     `json:"persistent_weaknesses"`
	ProgressAnalysis     string       `json:"progress_analysis"`
	LearningPlan         LearningPlan `json:"learning_plan"`
	TrendSummary         string       `json:"trend_summary"`

	Raw map[string]any `json:"-"`
}

// DecodeIELTSResult lifts a raw provider payload into the IELTS variant.
func DecodeIELTSResult(raw map[string]any) (*IELTSResult, error) {
	var out IELTSResult
	if err := remarshal(raw, &out); err != nil {
		return nil, err
	}
	out.Raw = raw
	return &out, nil
}

func DecodeKaoyanResult(raw map[string]any) (*KaoyanResult, error) {
	var out KaoyanResult
	if err := remarshal(raw, &out); err != nil {
		return nil, err
	}
	out.Raw = raw
	return &out, nil
}

func DecodeTrendReport(raw map[string]any) (*TrendReport, error) {
	var out TrendReport
	if err := remarshal(raw, &out); err != nil {
		return nil, err
	}
	out.Raw = raw
	return &out, nil
}

func remarshal(raw map[string]any, dest any) error {
	buf, err := json.Marshal(raw)
	if err != nil {
		return err
	}
	return json.Unmarshal(buf, dest)
}

// IELTSTrajectoryPoint is one compact history entry fed to the IELTS
// trend-analysis prompt, 1-indexed in submission order.
type IELTSTrajectoryPoint struct {
	ID         uint           `json:"id"`
	Index      int            `json:"index"`
	CreatedAt  string         `json:"created_at"`
	Topic      string         `json:"topic"`
	TaskType   string         `json:"task_type"`
	Scores     map[string]any `json:"scores"`
	Weaknesses []string       `json:"weaknesses"`
}

// KaoyanTrajectoryPoint mirrors IELTSTrajectoryPoint for the Kaoyan
// domain. TotalScore prefers the stored JSON over the denormalized
// column.
type KaoyanTrajectoryPoint struct {
	ID                uint     `json:"id"`
	Index             int      `json:"index"`
	CreatedAt         string   `json:"created_at"`
	Topic             string   `json:"topic"`
	ExamType          string   `json:"exam_type"`
	PaperType         string   `json:"paper_type"`
	TotalScore        *float64 `json:"total_score"`
	Band              string   `json:"band"`
	EvaluationSummary string   `json:"evaluation_summary"`
}
