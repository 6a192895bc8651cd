package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"essay_coach_backend/internal/model"

	"gorm.io/gorm"
)

// timeLayout is fixed-width so created_at strings order lexicographically.
const timeLayout = "2006-01-02T15:04:05.000000Z"

func nowUTC() string {
	return time.Now().UTC().Format(timeLayout)
}

type EssayRepository struct {
	DB *gorm.DB
}

func NewEssayRepository(db *gorm.DB) *EssayRepository {
	return &EssayRepository{DB: db}
}

// Create inserts a new active essay record and returns its id. The
// grading payload is serialized into the ai_analysis text column; a
// payload that cannot be represented as JSON aborts the insert.
// CreatedAt is assigned here unless the caller pre-set it.
func (r *EssayRepository) Create(topic, userContent, taskType string, analysis map[string]any, createdAt string) (uint, error) {
	blob, err := json.Marshal(analysis)
	if err != nil {
		return 0, fmt.Errorf("serialize analysis: %w", err)
	}
	if createdAt == "" {
		createdAt = nowUTC()
	}

	rec := model.EssayRecord{
		TaskType:    taskType,
		Topic:       topic,
		UserContent: userContent,
		AIAnalysis:  string(blob),
		CreatedAt:   createdAt,
		Status:      model.StatusActive,
	}
	if err := r.DB.Create(&rec).Error; err != nil {
		return 0, err
	}
	return rec.ID, nil
}

// GetByID returns (nil, nil) when the id does not exist; absence is not
// an error.
func (r *EssayRepository) GetByID(id uint) (*model.EssayRecord, error) {
	var rec model.EssayRecord
	err := r.DB.First(&rec, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// ListActive returns active records newest first. Equal created_at
// timestamps break on id descending, so the most recent insertion still
// leads.
func (r *EssayRepository) ListActive() ([]model.EssayRecord, error) {
	var recs []model.EssayRecord
	err := r.DB.
		Where("status = ?", model.StatusActive).
		Order("created_at DESC").
		Order("id DESC").
		Find(&recs).Error
	return recs, err
}

// Delete soft-deletes by default, flipping status to deleted; repeating a
// soft delete is a no-op. A hard delete removes the row permanently.
func (r *EssayRepository) Delete(id uint, soft bool) error {
	if soft {
		return r.DB.Model(&model.EssayRecord{}).
			Where("id = ?", id).
			Update("status", model.StatusDeleted).Error
	}
	return r.DB.Delete(&model.EssayRecord{}, id).Error
}
