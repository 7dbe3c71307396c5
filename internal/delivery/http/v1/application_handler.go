package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	appUC domain.ApplicationUsecase
}

func NewApplicationHandler(r gin.IRoutes, appUC domain.ApplicationUsecase, g Guards) {
	handler := &ApplicationHandler{appUC: appUC}

	r.POST("/applied", handler.Apply)
	r.GET("/applied-jobs/:email", g.Auth, handler.ListByApplicant)
	r.GET("/applied-jobs", g.Auth, g.Admin, handler.ListAll)
}

// Apply godoc
// @Summary      Apply to a job
// @Description  Records the application and increments the job's applicants counter atomically
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        application  body      ApplicationContract  true  "Application document"
// @Success      200          {object}  domain.InsertResult
// @Failure      400          {string}  string  "You have already applied on this job"
// @Router       /applied [post]
func (h *ApplicationHandler) Apply(c *gin.Context) {
	application, err := bindDocument(c, &ApplicationContract{})
	if err != nil {
		c.Error(err)
		return
	}

	res, err := h.appUC.Apply(c.Request.Context(), application)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, res)
}

// ListByApplicant godoc
// @Summary      List an applicant's applications
// @Tags         applications
// @Produce      json
// @Param        email   path      string  true   "Applicant email (must match the token)"
// @Param        filter  query     string  false  "Exact category"
// @Success      200     {array}   map[string]interface{}
// @Failure      401     {object}  response.ErrorBody
// @Failure      403     {object}  response.ErrorBody
// @Router       /applied-jobs/{email} [get]
func (h *ApplicationHandler) ListByApplicant(c *gin.Context) {
	apps, err := h.appUC.ListByApplicant(c.Request.Context(), c.Param("email"), c.Query("filter"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, apps)
}

// ListAll godoc
// @Summary      List every application (admin only)
// @Tags         applications
// @Produce      json
// @Success      200  {array}   map[string]interface{}
// @Failure      401  {object}  response.ErrorBody
// @Router       /applied-jobs [get]
func (h *ApplicationHandler) ListAll(c *gin.Context) {
	apps, err := h.appUC.ListAll(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, apps)
}
