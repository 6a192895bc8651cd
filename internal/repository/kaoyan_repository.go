package repository

import (
	"encoding/json"
	"errors"
	"fmt"

	"essay_coach_backend/internal/model"

	"gorm.io/gorm"
)

type KaoyanRepository struct {
	DB *gorm.DB
}

func NewKaoyanRepository(db *gorm.DB) *KaoyanRepository {
	return &KaoyanRepository{DB: db}
}

// Create inserts a new active Kaoyan record. The four score columns are
// denormalized from the payload at write time via model.NormalizeScores;
// the JSON blob stays the source of truth for all grading fields.
func (r *KaoyanRepository) Create(examType, paperType, topic, userContent string, analysis map[string]any, createdAt string) (uint, error) {
	blob, err := json.Marshal(analysis)
	if err != nil {
		return 0, fmt.Errorf("serialize analysis: %w", err)
	}
	if createdAt == "" {
		createdAt = nowUTC()
	}

	scores := model.NormalizeScores(analysis)

	rec := model.KaoyanRecord{
		ExamType:       examType,
		PaperType:      paperType,
		Topic:          topic,
		UserContent:    userContent,
		TotalScore:     scores.Total,
		LanguageScore:  scores.Language,
		StructureScore: scores.Structure,
		LogicScore:     scores.Logic,
		AIAnalysis:     string(blob),
		CreatedAt:      createdAt,
		Status:         model.StatusActive,
	}
	if err := r.DB.Create(&rec).Error; err != nil {
		return 0, err
	}
	return rec.ID, nil
}

func (r *KaoyanRepository) GetByID(id uint) (*model.KaoyanRecord, error) {
	var rec model.KaoyanRecord
	err := r.DB.First(&rec, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *KaoyanRepository) ListActive() ([]model.KaoyanRecord, error) {
	var recs []model.KaoyanRecord
	err := r.DB.
		Where("status = ?", model.StatusActive).
		Order("created_at DESC").
		Order("id DESC").
		Find(&recs).Error
	return recs, err
}

func (r *KaoyanRepository) Delete(id uint, soft bool) error {
	if soft {
		return r.DB.Model(&model.KaoyanRecord{}).
			Where("id = ?", id).
			Update("status", model.StatusDeleted).Error
	}
	return r.DB.Delete(&model.KaoyanRecord{}, id).Error
}
