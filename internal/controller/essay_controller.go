package controller

import (
	"strconv"

	"essay_coach_backend/internal/model"
	"essay_coach_backend/internal/repository"
	"essay_coach_backend/internal/service"
	"essay_coach_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type EssayController struct {
	grading    *service.GradingService
	trajectory *service.TrajectoryService
	repo       *repository.EssayRepository
}

func NewEssayController(grading *service.GradingService, trajectory *service.TrajectoryService, repo *repository.EssayRepository) *EssayController {
	return &EssayController{grading: grading, trajectory: trajectory, repo: repo}
}

type SubmitEssayRequest struct {
	Topic    string `json:"topic" binding:"required"`
	Content  string `json:"content" binding:"required"`
	TaskType string `json:"task_type" binding:"required"`
	Provider string `json:"provider"`
}

// Submit grades an IELTS essay and persists the result. A provider
// failure is part of the façade contract and comes back as a structured
// error object with HTTP 200; nothing is persisted in that case.
func (c *EssayController) Submit(ctx *gin.Context) {
	var req SubmitEssayRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if req.TaskType != model.TaskType1 && req.TaskType != model.TaskType2 {
		util.BadRequest(ctx, "task_type must be \"Task 1\" or \"Task 2\"")
		return
	}

	result, perr := c.grading.CorrectIELTS(ctx.Request.Context(), req.Provider, req.Topic, req.Content, req.TaskType)
	if perr != nil {
		util.Success(ctx, perr)
		return
	}

	id, err := c.repo.Create(req.Topic, req.Content, req.TaskType, result.Raw, "")
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{
		"id":       id,
		"analysis": result,
	})
}

func (c *EssayController) List(ctx *gin.Context) {
	recs, err := c.repo.ListActive()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, recs)
}

func (c *EssayController) Get(ctx *gin.Context) {
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

	// The stored blob may predate the current schema; a record with an
	// unparsable blob is still returned, just without the analysis view.
	analysis, _ := rec.Analysis()
	util.Success(ctx, gin.H{
		"record":   rec,
		"analysis": analysis,
	})
}

func (c *EssayController) Delete(ctx *gin.Context) {
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

func (c *EssayController) Trajectory(ctx *gin.Context) {
	history, err := c.trajectory.IELTSHistory()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, history)
}

type AnalyzeRequest struct {
	Provider string `json:"provider"`
}

func (c *EssayController) Analyze(ctx *gin.Context) {
	var req AnalyzeRequest
	// Body is optional; an empty provider falls back to the default.
	_ = ctx.ShouldBindJSON(&req)

	report, perr, err := c.trajectory.AnalyzeIELTS(ctx.Request.Context(), req.Provider)
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
