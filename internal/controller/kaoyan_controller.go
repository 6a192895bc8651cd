package controller

import (
	"strconv"

	"essay_coach_backend/internal/repository"
	"essay_coach_backend/internal/service"
	"essay_coach_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type KaoyanController struct {
	grading    *service.GradingService
	trajectory *service.TrajectoryService
	repo       *repository.KaoyanRepository
}

func NewKaoyanController(grading *service.GradingService, trajectory *service.TrajectoryService, repo *repository.KaoyanRepository) *KaoyanController {
	return &KaoyanController{grading: grading, trajectory: trajectory, repo: repo}
}

type SubmitKaoyanRequest struct {
	// Exam and paper types accept free text ("英语二", "english 1",
	// "小作文", ...) and are normalized before grading.
	ExamType  string `json:"exam_type"`
	PaperType string `json:"paper_type"`
	Topic     string `json:"topic" binding:"required"`
	Content   string `json:"content" binding:"required"`
	Provider  string `json:"provider"`
}

func (c *KaoyanController) Submit(ctx *gin.Context) {
	var req SubmitKaoyanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	examType := service.NormalizeExamType(req.ExamType)
	paperType := service.NormalizePaperType(req.PaperType)

	result, perr := c.grading.CorrectKaoyan(ctx.Request.Context(), req.Provider, examType, paperType, req.Topic, req.Content)
	if perr != nil {
		util.Success(ctx, perr)
		return
	}

	id, err := c.repo.Create(examType, paperType, req.Topic, req.Content, result.Raw, "")
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{
		"id":         id,
		"exam_type":  examType,
		"paper_type": paperType,
		"max_score":  service.MaxScore(examType, paperType),
		"analysis":   result,
	})
}

func (c *KaoyanController) List(ctx *gin.Context) {
	recs, err := c.repo.ListActive()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, recs)
}

func (c *KaoyanController) Get(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	rec, err := c.repo.GetByID(uint(id))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	if rec == nil {
		util.NotFound(ctx)
		return
	}

	analysis, _ := rec.Analysis()
	util.Success(ctx, gin.H{
		"record":   rec,
		"analysis": analysis,
	})
}

func (c *KaoyanController) Delete(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}
	hard := ctx.Query("hard") == "true"

	if err := c.repo.Delete(uint(id), !hard); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"id": id, "hard": hard})
}

func (c *KaoyanController) Trajectory(ctx *gin.Context) {
	history, err := c.trajectory.KaoyanHistory()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, history)
}

func (c *KaoyanController) Analyze(ctx *gin.Context) {
	var req AnalyzeRequest
	_ = ctx.ShouldBindJSON(&req)

	report, perr, err := c.trajectory.AnalyzeKaoyan(ctx.Request.Context(), req.Provider)
	if err == util.ErrEmptyHistory {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	if perr != nil {
		util.Success(ctx, perr)
		return
	}
	util.Success(ctx, report)
}
