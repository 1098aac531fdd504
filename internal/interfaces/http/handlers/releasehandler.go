package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"relnotes/internal/application/release/usecases"
	"relnotes/internal/shared/logger"
	"relnotes/internal/shared/utils"
)

type ReleaseHandler struct {
	createReleaseUC usecases.CreateReleaseExecutor
	updateReleaseUC usecases.UpdateReleaseExecutor
	getReleaseUC    usecases.GetReleaseExecutor
	listReleasesUC  usecases.ListReleasesExecutor
	deleteReleaseUC usecases.DeleteReleaseExecutor
	copyReleaseUC   usecases.CopyReleaseExecutor
	releaseNotesUC  usecases.GetReleaseNotesExecutor
	equivalentUC    usecases.GetEquivalentReleaseExecutor
	// devMode exposes non-public notes in the rendered projection.
	devMode bool
	logger  logger.Interface
}

func NewReleaseHandler(
	createReleaseUC usecases.CreateReleaseExecutor,
	updateReleaseUC usecases.UpdateReleaseExecutor,
	getReleaseUC usecases.GetReleaseExecutor,
	listReleasesUC usecases.ListReleasesExecutor,
	deleteReleaseUC usecases.DeleteReleaseExecutor,
	copyReleaseUC usecases.CopyReleaseExecutor,
	releaseNotesUC usecases.GetReleaseNotesExecutor,
	equivalentUC usecases.GetEquivalentReleaseExecutor,
	devMode bool,
) *ReleaseHandler {
	return &ReleaseHandler{
		createReleaseUC: createReleaseUC,
		updateReleaseUC: updateReleaseUC,
		getReleaseUC:    getReleaseUC,
		listReleasesUC:  listReleasesUC,
		deleteReleaseUC: deleteReleaseUC,
		copyReleaseUC:   copyReleaseUC,
		releaseNotesUC:  releaseNotesUC,
		equivalentUC:    equivalentUC,
		devMode:         devMode,
		logger:          logger.NewLogger(),
	}
}

type CreateReleaseRequest struct {
	Product            string    `json:"product" binding:"required"`
	Channel            string    `json:"channel" binding:"required"`
	Version            string    `json:"version" binding:"required"`
	ReleaseDate        time.Time `json:"release_date" binding:"required"`
	Text               string    `json:"text"`
	IsPublic           bool      `json:"is_public"`
	BugList            string    `json:"bug_list"`
	BugSearchURL       string    `json:"bug_search_url"`
	SystemRequirements string    `json:"system_requirements"`
}

type UpdateReleaseRequest struct {
	ReleaseDate        *time.Time `json:"release_date"`
	Text               *string    `json:"text"`
	IsPublic           *bool      `json:"is_public"`
	BugList            *string    `json:"bug_list"`
	BugSearchURL       *string    `json:"bug_search_url"`
	SystemRequirements *string    `json:"system_requirements"`
}

func (h *ReleaseHandler) CreateRelease(c *gin.Context) {
	var req CreateReleaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create release", "error", err)
		utils.ErrorResponse(c, 400, "invalid request body: "+err.Error())
		return
	}

	cmd := usecases.CreateReleaseCommand{
		Product:            req.Product,
		Channel:            req.Channel,
		Version:            req.Version,
		ReleaseDate:        req.ReleaseDate,
		Text:               req.Text,
		IsPublic:           req.IsPublic,
		BugList:            req.BugList,
		BugSearchURL:       req.BugSearchURL,
		SystemRequirements: req.SystemRequirements,
	}

	result, err := h.createReleaseUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Release created successfully")
}

func (h *ReleaseHandler) UpdateRelease(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "release")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateReleaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update release", "release_id", id, "error", err)
		utils.ErrorResponse(c, 400, "invalid request body: "+err.Error())
		return
	}

	cmd := usecases.UpdateReleaseCommand{
		ID:                 id,
		ReleaseDate:        req.ReleaseDate,
		Text:               req.Text,
		IsPublic:           req.IsPublic,
		BugList:            req.BugList,
		BugSearchURL:       req.BugSearchURL,
		SystemRequirements: req.SystemRequirements,
	}

	result, err := h.updateReleaseUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "Release updated successfully", result)
}

func (h *ReleaseHandler) GetRelease(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "release")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getReleaseUC.Execute(c.Request.Context(), usecases.GetReleaseQuery{ID: id})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if !result.IsPublic && !isStaffRequest(c) && !h.devMode {
		utils.ErrorResponse(c, 404, "release not found")
		return
	}

	utils.SuccessResponse(c, 200, "", result)
}

// LookupRelease resolves a release by its natural key, product plus
// version, passed as query parameters.
func (h *ReleaseHandler) LookupRelease(c *gin.Context) {
	product := c.Query("product")
	version := c.Query("version")
	if product == "" || version == "" {
		utils.ErrorResponse(c, 400, "product and version query parameters are required")
		return
	}

	result, err := h.getReleaseUC.Execute(c.Request.Context(), usecases.GetReleaseQuery{
		Product: product,
		Version: version,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if !result.IsPublic && !isStaffRequest(c) && !h.devMode {
		utils.ErrorResponse(c, 404, "release not found")
		return
	}

	utils.SuccessResponse(c, 200, "", result)
}

func (h *ReleaseHandler) ListReleases(c *gin.Context) {
	query := usecases.ListReleasesQuery{
		Product:  c.Query("product"),
		Channel:  c.Query("channel"),
		Version:  c.Query("version"),
		Ordering: c.Query("ordering"),
		Page:     utils.ParseIntQuery(c, "page", 0),
	}
	query.PageSize = utils.ParseIntQuery(c, "page_size", 0)

	if raw := c.Query("is_public"); raw != "" {
		v := utils.ParseBoolQuery(c, "is_public", false)
		query.IsPublic = &v
	}

	// Anonymous callers only ever see public releases.
	if !isStaffRequest(c) && !h.devMode {
		public := true
		query.IsPublic = &public
	}

	var err error
	if query.ModifiedAfter, err = utils.ParseTimeQuery(c, "modified_after"); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if query.ModifiedBefore, err = utils.ParseTimeQuery(c, "modified_before"); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if query.CreatedAfter, err = utils.ParseTimeQuery(c, "created_after"); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if query.CreatedBefore, err = utils.ParseTimeQuery(c, "created_before"); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listReleasesUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Releases, result.Total, result.Page, result.PageSize)
}

func (h *ReleaseHandler) DeleteRelease(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "release")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteReleaseUC.Execute(c.Request.Context(), usecases.DeleteReleaseCommand{ID: id}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *ReleaseHandler) CopyRelease(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "release")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.copyReleaseUC.Execute(c.Request.Context(), usecases.CopyReleaseCommand{SourceID: id})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Release copied successfully")
}

// GetReleaseNotes renders the projected note lists for a release. Public
// installations only see public notes; dev mode shows everything.
func (h *ReleaseHandler) GetReleaseNotes(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "release")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.GetReleaseNotesQuery{
		ReleaseID:  id,
		PublicOnly: !isStaffRequest(c) && !h.devMode,
	}

	result, err := h.releaseNotesUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if result.Release != nil && !result.Release.IsPublic && !isStaffRequest(c) && !h.devMode {
		utils.ErrorResponse(c, 404, "release not found")
		return
	}

	utils.SuccessResponse(c, 200, "", result)
}

func (h *ReleaseHandler) GetEquivalentRelease(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "release")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	// The source release itself is subject to the same visibility rule as
	// a direct GET.
	source, err := h.getReleaseUC.Execute(c.Request.Context(), usecases.GetReleaseQuery{ID: id})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if source != nil && !source.IsPublic && !isStaffRequest(c) && !h.devMode {
		utils.ErrorResponse(c, 404, "release not found")
		return
	}

	result, err := h.equivalentUC.Execute(c.Request.Context(), usecases.GetEquivalentReleaseQuery{ReleaseID: id})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "", result)
}
