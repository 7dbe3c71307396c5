package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/pkg/auth"
	"go-jobboard-backend/pkg/security"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	tokens     *auth.TokenService
	secLog     *security.SecurityLogger
	production bool
}

func NewSessionHandler(r gin.IRoutes, tokens *auth.TokenService, secLog *security.SecurityLogger, production bool, limit gin.HandlerFunc) {
	handler := &SessionHandler{tokens: tokens, secLog: secLog, production: production}

	r.POST("/jwt", limit, handler.Issue)
	r.POST("/logout", handler.Logout)
}

// Issue godoc
// @Summary      Issue a session token
// @Description  Signs the posted identity (must contain email) and sets it as the HttpOnly token cookie
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        identity  body      SessionContract  true  "Identity payload"
// @Success      200       {object}  map[string]bool
// @Failure      400       {object}  response.ErrorBody
// @Failure      429       {object}  response.ErrorBody
// @Router       /jwt [post]
func (h *SessionHandler) Issue(c *gin.Context) {
	var req SessionContract
	payload, err := bindDocument(c, &req)
	if err != nil {
		c.Error(err)
		return
	}

	token, err := h.tokens.Issue(payload)
	if err != nil {
		c.Error(err)
		return
	}

	h.setTokenCookie(c, token, int(h.tokens.TTL().Seconds()))

	h.secLog.Log(c.Request.Context(), securityEvent(c, security.EventSessionIssued, req.Email, nil))

	response.Success(c, http.StatusOK, gin.H{"success": true})
}

// Logout godoc
// @Summary      Clear the session cookie
// @Tags         session
// @Produce      json
// @Success      200  {object}  map[string]bool
// @Router       /logout [post]
func (h *SessionHandler) Logout(c *gin.Context) {
	h.setTokenCookie(c, "", -1)
	response.Success(c, http.StatusOK, gin.H{"success": true})
}

// setTokenCookie applies the cross-site attributes in production (frontend and
// API live on different hosts) and strict same-site ones elsewhere.
func (h *SessionHandler) setTokenCookie(c *gin.Context, value string, maxAge int) {
	if h.production {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteStrictMode)
	}
	c.SetCookie(middleware.TokenCookie, value, maxAge, "/", "", h.production, true)
}
