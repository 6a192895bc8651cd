package model

import "encoding/json"

// Record status values. Deletion defaults to soft: rows flip to
// StatusDeleted and stay in the table.
const (
	StatusActive  = "active"
	StatusDeleted = "deleted"
)

// IELTS task types.
const (
	TaskType1 = "Task 1"
	TaskType2 = "Task 2"
)

// Kaoyan exam types.
const (
	ExamEnglishI  = "English I"
	ExamEnglishII = "English II"
)

// Kaoyan paper sections.
const (
	PaperSmallEssay = "small_essay"
	PaperLargeEssay = "large_essay"
)

// EssayRecord is a row in the essays table. Topic, content and analysis
// are immutable after creation; only Status ever changes.
type EssayRecord struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	TaskType    string `gorm:"size:16;not null" json:"task_type"`
	Topic       string `gorm:"type:text;not null" json:"topic"`
	UserContent string `gorm:"type:text;not null" json:"user_content"`
	AIAnalysis  string `gorm:"type:text" json:"-"`
	CreatedAt   string `gorm:"size:40;index" json:"created_at"`
	Status      string `gorm:"size:16;default:active;index" json:"status"`
}

func (EssayRecord) TableName() string { return "essays" }

// Analysis deserializes the stored grading blob. The blob is the source
// of truth for all grading fields.
func (e *EssayRecord) Analysis() (map[string]any, error) {
	var out map[string]any
	if err := json.Unmarshal([]byte(e.AIAnalysis), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// KaoyanRecord is a row in the kaoyan_records table. The four score
// columns are best-effort snapshots of ai_analysis["score"], denormalized
// at write time so queries can filter on score without parsing JSON.
type KaoyanRecord struct {
	ID             uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	ExamType       string   `gorm:"size:16;not null" json:"exam_type"`
	PaperType      string   `gorm:"size:16;not null" json:"paper_type"`
	Topic          string   `gorm:"type:text;not null" json:"topic"`
	UserContent    string   `gorm:"type:text;not null" json:"user_content"`
	TotalScore     *float64 `json:"total_score"`
	LanguageScore  *float64 `json:"language_score"`
	StructureScore *float64 `json:"structure_score"`
	LogicScore     *float64 `json:"logic_score"`
	AIAnalysis     string   `gorm:"type:text" json:"-"`
	CreatedAt      string   `gorm:"size:40;index" json:"created_at"`
	Status         string   `gorm:"size:16;default:active;index" json:"status"`
}

func (KaoyanRecord) TableName() string { return "kaoyan_records" }

func (k *KaoyanRecord) Analysis() (map[string]any, error) {
	var out map[string]any
	if err := json.Unmarshal([]byte(k.AIAnalysis), &out); err != nil {
		return nil, err
	}
	return out, nil
}
