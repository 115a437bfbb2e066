package v1

import (
	"bytes"
	"net/http"
	"strconv"

	"go-concurso-backend/internal/delivery/http/response"
	"go-concurso-backend/internal/domain"
	"go-concurso-backend/pkg/apperror"
	"go-concurso-backend/pkg/export"

	"github.com/gin-gonic/gin"
)

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
	matchUC     domain.MatchUsecase
}

func NewCandidateHandler(r *gin.RouterGroup, write gin.HandlerFunc, candidateUC domain.CandidateUsecase, matchUC domain.MatchUsecase) {
	handler := &CandidateHandler{candidateUC: candidateUC, matchUC: matchUC}

	candidates := r.Group("/candidates")
	{
		candidates.GET("", handler.List)
		candidates.GET("/export", handler.Export)
		candidates.GET("/matches", handler.FindContests)
		candidates.POST("", write, handler.Create)
		candidates.DELETE("/:id", write, handler.Delete)
	}
}

type CreateCandidateRequest struct {
	Name        string   `json:"name"`
	TaxID       string   `json:"tax_id"`
	Professions []string `json:"professions"`
}

// ListCandidates godoc
// @Summary      List candidates
// @Description  Get every registered candidate. Returns an empty list when none exist.
// @Tags         candidates
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Candidate}
// @Failure      503  {object}  response.Response
// @Router       /candidates [get]
func (h *CandidateHandler) List(c *gin.Context) {
	candidates, err := h.candidateUC.ListCandidates(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate list", candidates)
}

// CreateCandidate godoc
// @Summary      Register a candidate
// @Description  Register a candidate. The tax id (CPF) must be unique.
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        candidate  body      CreateCandidateRequest  true  "Candidate JSON"
// @Success      201        {object}  response.Response{data=domain.Candidate}
// @Failure      400        {object}  response.Response
// @Failure      409        {object}  response.Response
// @Failure      503        {object}  response.Response
// @Router       /candidates [post]
func (h *CandidateHandler) Create(c *gin.Context) {
	var req CreateCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	candidate := &domain.Candidate{
		Name:        req.Name,
		TaxID:       req.TaxID,
		Professions: req.Professions,
	}
	if err := h.candidateUC.AddCandidate(c.Request.Context(), candidate); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Candidate created", candidate)
}

// DeleteCandidate godoc
// @Summary      Remove a candidate
// @Tags         candidates
// @Produce      json
// @Param        id   path      int  true  "Candidate ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /candidates/{id} [delete]
func (h *CandidateHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	if err := h.candidateUC.RemoveCandidate(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate removed", nil)
}

// FindContests godoc
// @Summary      Contests compatible with a candidate
// @Description  Contests with at least one position whose profession the candidate has. Unknown or empty CPF yields an empty list.
// @Tags         candidates
// @Produce      json
// @Param        cpf  query     string  false  "Candidate tax id"
// @Success      200  {object}  response.Response{data=[]domain.Contest}
// @Failure      503  {object}  response.Response
// @Router       /candidates/matches [get]
func (h *CandidateHandler) FindContests(c *gin.Context) {
	taxID := c.Query("cpf")
	if taxID == "" {
		taxID = c.Query("tax_id")
	}

	contests, err := h.matchUC.FindContestsForCandidate(c.Request.Context(), taxID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Compatible contests", contests)
}

// ExportCandidates godoc
// @Summary      Export candidates
// @Tags         candidates
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200
// @Failure      503  {object}  response.Response
// @Router       /candidates/export [get]
func (h *CandidateHandler) Export(c *gin.Context) {
	candidates, err := h.candidateUC.ListCandidates(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteCandidates(&buf, candidates); err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	c.Header("Content-Disposition", `attachment; filename="candidatos.xlsx"`)
	c.Data(http.StatusOK, export.ContentTypeXLSX, buf.Bytes())
}
