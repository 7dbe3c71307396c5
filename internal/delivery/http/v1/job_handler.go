package v1

import (
	"fmt"
	"net/http"
	"strconv"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/security"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type JobHandler struct {
	jobUC  domain.JobUsecase
	secLog *security.SecurityLogger
}

func NewJobHandler(r gin.IRoutes, jobUC domain.JobUsecase, g Guards, secLog *security.SecurityLogger) {
	handler := &JobHandler{jobUC: jobUC, secLog: secLog}

	r.POST("/job", handler.Create)
	r.GET("/jobs", handler.List)
	r.GET("/jobs/:email", g.Auth, g.Host, handler.ListByOwner)
	r.GET("/job/:id", handler.Get)
	r.DELETE("/jobs/:id", handler.Delete)
	r.PATCH("/job/:id", handler.Patch)
	r.GET("/counts", handler.Count)
	r.GET("/jobs-export", g.Auth, g.Admin, handler.Export)
}

// Create godoc
// @Summary      Create a job
// @Description  Stores the posted job document as is
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      JobContract  true  "Job document"
// @Success      200  {object}  domain.InsertResult
// @Failure      400  {object}  response.ErrorBody
// @Router       /job [post]
func (h *JobHandler) Create(c *gin.Context) {
	job, err := bindDocument(c, &JobContract{})
	if err != nil {
		c.Error(err)
		return
	}

	res, err := h.jobUC.CreateJob(c.Request.Context(), job)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, res)
}

// List godoc
// @Summary      List jobs
// @Description  Pages through jobs in insertion order, optionally narrowed by category and title search
// @Tags         jobs
// @Produce      json
// @Param        page    query     int     false  "Page number (1-based)"
// @Param        size    query     int     false  "Page size; omitted means no limit"
// @Param        filter  query     string  false  "Exact category"
// @Param        search  query     string  false  "Case-insensitive title substring"
// @Success      200     {array}   map[string]interface{}
// @Router       /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	size, _ := strconv.Atoi(c.Query("size"))

	jobs, err := h.jobUC.ListJobs(c.Request.Context(), page, size, c.Query("filter"), c.Query("search"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, jobs)
}

// ListByOwner godoc
// @Summary      List jobs posted by a host
// @Tags         jobs
// @Produce      json
// @Param        email  path      string  true  "Owner email (must match the token)"
// @Success      200    {array}   map[string]interface{}
// @Failure      401    {object}  response.ErrorBody
// @Failure      403    {object}  response.ErrorBody
// @Router       /jobs/{email} [get]
func (h *JobHandler) ListByOwner(c *gin.Context) {
	jobs, err := h.jobUC.ListJobsByOwner(c.Request.Context(), c.Param("email"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, jobs)
}

// Get godoc
// @Summary      Get a job
// @Description  Returns the job or null when no job has this id
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job id"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  response.ErrorBody
// @Router       /job/{id} [get]
func (h *JobHandler) Get(c *gin.Context) {
	job, err := h.jobUC.GetJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, job)
}

// Delete godoc
// @Summary      Delete a job
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job id"
// @Success      200  {object}  domain.DeleteResult
// @Failure      400  {object}  response.ErrorBody
// @Router       /jobs/{id} [delete]
func (h *JobHandler) Delete(c *gin.Context) {
	res, err := h.jobUC.DeleteJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, res)
}

// Patch godoc
// @Summary      Patch a job
// @Description  Shallow merge of the body into the job; a missing id creates a job holding only the patched fields
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id     path      string                  true  "Job id"
// @Param        patch  body      map[string]interface{}  true  "Fields to set"
// @Success      200    {object}  domain.UpdateResult
// @Failure      400    {object}  response.ErrorBody
// @Router       /job/{id} [patch]
func (h *JobHandler) Patch(c *gin.Context) {
	fields, err := bindDocument(c, nil)
	if err != nil {
		c.Error(err)
		return
	}

	res, err := h.jobUC.PatchJob(c.Request.Context(), c.Param("id"), fields)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, res)
}

// Count godoc
// @Summary      Count jobs
// @Tags         jobs
// @Produce      json
// @Success      200  {object}  map[string]int64
// @Router       /counts [get]
func (h *JobHandler) Count(c *gin.Context) {
	count, err := h.jobUC.CountJobs(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"count": count})
}

// Export godoc
// @Summary      Export jobs
// @Description  Downloads every job as an XLSX workbook (admin only)
// @Tags         jobs
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}    file
// @Failure      401  {object}  response.ErrorBody
// @Router       /jobs-export [get]
func (h *JobHandler) Export(c *gin.Context) {
	data, filename, err := h.jobUC.ExportJobs(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	h.secLog.Log(c.Request.Context(), securityEvent(c, security.EventDataExport, c.GetString(string(domain.KeyUserEmail)), map[string]interface{}{
		"filename": filename,
	}))

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}
