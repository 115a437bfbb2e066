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

type ContestHandler struct {
	contestUC domain.ContestUsecase
	matchUC   domain.MatchUsecase
}

func NewContestHandler(r *gin.RouterGroup, write gin.HandlerFunc, contestUC domain.ContestUsecase, matchUC domain.MatchUsecase) {
	handler := &ContestHandler{contestUC: contestUC, matchUC: matchUC}

	contests := r.Group("/contests")
	{
		contests.GET("", handler.List)
		contests.GET("/export", handler.Export)
		contests.GET("/matches", handler.FindCandidates)
		contests.POST("", write, handler.Create)
		contests.DELETE("/:id", write, handler.Delete)
	}
}

type PositionRequest struct {
	Profession string `json:"profession"`
	Vacancies  int    `json:"vacancies"`
}

type CreateContestRequest struct {
	Agency    string            `json:"agency"`
	Edital    string            `json:"edital"`
	Code      string            `json:"code"`
	Positions []PositionRequest `json:"positions"`
}

// ListContests godoc
// @Summary      List contests
// @Description  Get every registered contest with its positions. Returns an empty list when none exist.
// @Tags         contests
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Contest}
// @Failure      503  {object}  response.Response
// @Router       /contests [get]
func (h *ContestHandler) List(c *gin.Context) {
	contests, err := h.contestUC.ListContests(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Contest list", contests)
}

// CreateContest godoc
// @Summary      Register a contest
// @Description  Register a contest and its positions. The contest code must be unique.
// @Tags         contests
// @Accept       json
// @Produce      json
// @Param        contest  body      CreateContestRequest  true  "Contest JSON"
// @Success      201      {object}  response.Response{data=domain.Contest}
// @Failure      400      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Failure      503      {object}  response.Response
// @Router       /contests [post]
func (h *ContestHandler) Create(c *gin.Context) {
	var req CreateContestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	contest := &domain.Contest{
		Agency:    req.Agency,
		Edital:    req.Edital,
		Code:      req.Code,
		Positions: make([]domain.Position, 0, len(req.Positions)),
	}
	for _, p := range req.Positions {
		contest.Positions = append(contest.Positions, domain.Position{Profession: p.Profession, Vacancies: p.Vacancies})
	}

	if err := h.contestUC.AddContest(c.Request.Context(), contest); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Contest created", contest)
}

// DeleteContest godoc
// @Summary      Remove a contest
// @Tags         contests
// @Produce      json
// @Param        id   path      int  true  "Contest ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /contests/{id} [delete]
func (h *ContestHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	if err := h.contestUC.RemoveContest(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Contest removed", nil)
}

// FindCandidates godoc
// @Summary      Candidates compatible with a contest
// @Description  Candidates having at least one profession required by the contest. Unknown or empty code yields an empty list.
// @Tags         contests
// @Produce      json
// @Param        code  query     string  false  "Contest code"
// @Success      200   {object}  response.Response{data=[]domain.Candidate}
// @Failure      503   {object}  response.Response
// @Router       /contests/matches [get]
func (h *ContestHandler) FindCandidates(c *gin.Context) {
	candidates, err := h.matchUC.FindCandidatesForContest(c.Request.Context(), c.Query("code"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Compatible candidates", candidates)
}

// ExportContests godoc
// @Summary      Export contests
// @Tags         contests
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200
// @Failure      503  {object}  response.Response
// @Router       /contests/export [get]
func (h *ContestHandler) Export(c *gin.Context) {
	contests, err := h.contestUC.ListContests(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteContests(&buf, contests); err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	c.Header("Content-Disposition", `attachment; filename="concursos.xlsx"`)
	c.Data(http.StatusOK, export.ContentTypeXLSX, buf.Bytes())
}
