package handlers

import (
	"io"

	"github.com/gin-gonic/gin"

	"relnotes/internal/application/release/usecases"
	"relnotes/internal/shared/logger"
	"relnotes/internal/shared/utils"
)

// maxScreenshotUpload bounds the multipart read for note images.
const maxScreenshotUpload = 5 << 20

type NoteHandler struct {
	createNoteUC  usecases.CreateNoteExecutor
	updateNoteUC  usecases.UpdateNoteExecutor
	getNoteUC     usecases.GetNoteExecutor
	listNotesUC   usecases.ListNotesExecutor
	deleteNoteUC  usecases.DeleteNoteExecutor
	linkNoteUC    usecases.NoteLinker
	uploadImageUC usecases.UploadNoteImageExecutor
	logger        logger.Interface
}

func NewNoteHandler(
	createNoteUC usecases.CreateNoteExecutor,
	updateNoteUC usecases.UpdateNoteExecutor,
	getNoteUC usecases.GetNoteExecutor,
	listNotesUC usecases.ListNotesExecutor,
	deleteNoteUC usecases.DeleteNoteExecutor,
	linkNoteUC usecases.NoteLinker,
	uploadImageUC usecases.UploadNoteImageExecutor,
) *NoteHandler {
	return &NoteHandler{
		createNoteUC:  createNoteUC,
		updateNoteUC:  updateNoteUC,
		getNoteUC:     getNoteUC,
		listNotesUC:   listNotesUC,
		deleteNoteUC:  deleteNoteUC,
		linkNoteUC:    linkNoteUC,
		uploadImageUC: uploadImageUC,
		logger:        logger.NewLogger(),
	}
}

type CreateNoteRequest struct {
	Bug              *int   `json:"bug"`
	Note             string `json:"note" binding:"required"`
	Tag              string `json:"tag"`
	SortNum          int    `json:"sort_num"`
	IsKnownIssue     bool   `json:"is_known_issue"`
	IsPublic         bool   `json:"is_public"`
	FixedInReleaseID *uint  `json:"fixed_in_release"`
	ReleaseIDs       []uint `json:"releases"`
}

type UpdateNoteRequest struct {
	Bug              *int    `json:"bug"`
	Note             *string `json:"note"`
	Tag              *string `json:"tag"`
	SortNum          *int    `json:"sort_num"`
	IsKnownIssue     *bool   `json:"is_known_issue"`
	IsPublic         *bool   `json:"is_public"`
	FixedInReleaseID *uint   `json:"fixed_in_release"`
	ClearFixedIn     bool    `json:"clear_fixed_in"`
}

func (h *NoteHandler) CreateNote(c *gin.Context) {
	var req CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create note", "error", err)
		utils.ErrorResponse(c, 400, "invalid request body: "+err.Error())
		return
	}

	cmd := usecases.CreateNoteCommand{
		Bug:              req.Bug,
		Note:             req.Note,
		Tag:              req.Tag,
		SortNum:          req.SortNum,
		IsKnownIssue:     req.IsKnownIssue,
		IsPublic:         req.IsPublic,
		FixedInReleaseID: req.FixedInReleaseID,
		ReleaseIDs:       req.ReleaseIDs,
	}

	result, err := h.createNoteUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Note created successfully")
}

func (h *NoteHandler) UpdateNote(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "note")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update note", "note_id", id, "error", err)
		utils.ErrorResponse(c, 400, "invalid request body: "+err.Error())
		return
	}

	cmd := usecases.UpdateNoteCommand{
		ID:               id,
		Bug:              req.Bug,
		Note:             req.Note,
		Tag:              req.Tag,
		SortNum:          req.SortNum,
		IsKnownIssue:     req.IsKnownIssue,
		IsPublic:         req.IsPublic,
		FixedInReleaseID: req.FixedInReleaseID,
		ClearFixedIn:     req.ClearFixedIn,
	}

	result, err := h.updateNoteUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "Note updated successfully", result)
}

func (h *NoteHandler) GetNote(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "note")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getNoteUC.Execute(c.Request.Context(), usecases.GetNoteQuery{ID: id})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if !result.IsPublic && !isStaffRequest(c) {
		utils.ErrorResponse(c, 404, "note not found")
		return
	}

	utils.SuccessResponse(c, 200, "", result)
}

func (h *NoteHandler) ListNotes(c *gin.Context) {
	query := usecases.ListNotesQuery{
		Tag:      c.Query("tag"),
		Page:     utils.ParseIntQuery(c, "page", 0),
		PageSize: utils.ParseIntQuery(c, "page_size", 0),
	}

	if raw := c.Query("is_public"); raw != "" {
		v := utils.ParseBoolQuery(c, "is_public", false)
		query.IsPublic = &v
	}
	// Anonymous callers only ever see public notes.
	if !isStaffRequest(c) {
		public := true
		query.IsPublic = &public
	}
	if raw := c.Query("is_known_issue"); raw != "" {
		v := utils.ParseBoolQuery(c, "is_known_issue", false)
		query.IsKnownIssue = &v
	}
	if raw := c.Query("release"); raw != "" {
		releaseID := uint(utils.ParseIntQuery(c, "release", 0))
		if releaseID > 0 {
			query.ReleaseID = &releaseID
		}
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

	result, err := h.listNotesUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Notes, result.Total, result.Page, result.PageSize)
}

func (h *NoteHandler) DeleteNote(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "note")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteNoteUC.Execute(c.Request.Context(), usecases.DeleteNoteCommand{ID: id}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *NoteHandler) LinkNote(c *gin.Context) {
	cmd, err := h.parseLinkCommand(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.linkNoteUC.Link(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "Note linked to release", nil)
}

func (h *NoteHandler) UnlinkNote(c *gin.Context) {
	cmd, err := h.parseLinkCommand(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.linkNoteUC.Unlink(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *NoteHandler) parseLinkCommand(c *gin.Context) (usecases.LinkNoteCommand, error) {
	noteID, err := utils.ParseIDParam(c, "id", "note")
	if err != nil {
		return usecases.LinkNoteCommand{}, err
	}
	releaseID, err := utils.ParseIDParam(c, "releaseID", "release")
	if err != nil {
		return usecases.LinkNoteCommand{}, err
	}
	return usecases.LinkNoteCommand{NoteID: noteID, ReleaseID: releaseID}, nil
}

// UploadImage attaches a screenshot to a note from a multipart form with
// an "image" file field.
func (h *NoteHandler) UploadImage(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "note")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		utils.ErrorResponse(c, 400, "image file is required")
		return
	}
	if fileHeader.Size > maxScreenshotUpload {
		utils.ErrorResponse(c, 400, "image exceeds the 5 MB limit")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.ErrorResponse(c, 400, "failed to read uploaded image")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxScreenshotUpload+1))
	if err != nil {
		utils.ErrorResponse(c, 400, "failed to read uploaded image")
		return
	}

	cmd := usecases.UploadNoteImageCommand{
		NoteID:   id,
		Filename: fileHeader.Filename,
		Data:     data,
	}

	result, err := h.uploadImageUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "Screenshot uploaded successfully", result)
}
