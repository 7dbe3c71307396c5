package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/security"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUC domain.UserUsecase
	secLog *security.SecurityLogger
}

func NewUserHandler(r gin.IRoutes, userUC domain.UserUsecase, g Guards, secLog *security.SecurityLogger) {
	handler := &UserHandler{userUC: userUC, secLog: secLog}

	r.PUT("/user", handler.Login)
	r.GET("/users/:email", handler.Get)
	r.PATCH("/users/update/:email", g.Auth, handler.Update)
	r.GET("/users", g.Auth, g.Admin, handler.List)
}

// Login godoc
// @Summary      Upsert a user on login
// @Description  Creates a first-time user, moves an existing user to status Requested, or returns the stored user unchanged
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        user  body      UserContract  true  "User document"
// @Success      200   {object}  domain.UpdateResult
// @Failure      400   {object}  response.ErrorBody
// @Router       /user [put]
func (h *UserHandler) Login(c *gin.Context) {
	user, err := bindDocument(c, &UserContract{})
	if err != nil {
		c.Error(err)
		return
	}

	out, err := h.userUC.Login(c.Request.Context(), user)
	if err != nil {
		c.Error(err)
		return
	}

	if out.Update != nil {
		response.Success(c, http.StatusOK, out.Update)
		return
	}
	response.Success(c, http.StatusOK, out.Existing)
}

// Get godoc
// @Summary      Get a user
// @Description  Returns the user or null
// @Tags         users
// @Produce      json
// @Param        email  path      string  true  "User email"
// @Success      200    {object}  map[string]interface{}
// @Router       /users/{email} [get]
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.userUC.GetUser(c.Request.Context(), c.Param("email"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, user)
}

// Update godoc
// @Summary      Patch a user
// @Description  Shallow merge of the body into the user with this email
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        email  path      string             true  "User email"
// @Param        patch  body      UserPatchContract  true  "Fields to set"
// @Success      200    {object}  domain.UpdateResult
// @Failure      400    {object}  response.ErrorBody
// @Failure      401    {object}  response.ErrorBody
// @Failure      409    {object}  response.ErrorBody
// @Router       /users/update/{email} [patch]
func (h *UserHandler) Update(c *gin.Context) {
	fields, err := bindDocument(c, &UserPatchContract{})
	if err != nil {
		c.Error(err)
		return
	}

	res, err := h.userUC.UpdateUser(c.Request.Context(), c.Param("email"), fields)
	if err != nil {
		c.Error(err)
		return
	}

	if role, ok := fields[domain.UserRoleField]; ok && res.MatchedCount > 0 {
		h.secLog.Log(c.Request.Context(), securityEvent(c, security.EventRoleModified, c.GetString(string(domain.KeyUserEmail)), map[string]interface{}{
			"target": security.HashValue(c.Param("email")),
			"role":   role,
		}))
	}

	response.Success(c, http.StatusOK, res)
}

// List godoc
// @Summary      List users (admin only)
// @Tags         users
// @Produce      json
// @Success      200  {array}   map[string]interface{}
// @Failure      401  {object}  response.ErrorBody
// @Router       /users [get]
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userUC.ListUsers(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, users)
}
