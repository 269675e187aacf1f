package api

import (
	"net/http"
	"time"

	resdto "legal-storefront/internal/handler/dto/response"
	"legal-storefront/internal/handler/httperr"
	"legal-storefront/internal/pkg/config"
	"legal-storefront/internal/pkg/cookie"
	"legal-storefront/internal/pkg/jwt"
	"legal-storefront/internal/usecase/commands"
	"legal-storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds      commands.AuthCommands
	sessions  queries.SessionQueries
	cookieCfg config.CookieConfig
	tokenTTL  time.Duration
}

func NewAuthHandler(cmds commands.AuthCommands, sessions queries.SessionQueries, jwtService *jwt.Service, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		cmds:      cmds,
		sessions:  sessions,
		cookieCfg: cfg.Cookie,
		tokenTTL:  jwtService.TokenDuration(),
	}
}

// @Summary Login
// @Description Sign in with the configured identity provider and start a session
// @Tags auth
// @Produce json
// @Success 200 {object} resdto.LoginResponse
// @Failure 502 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	result, err := h.cmds.Login(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	cookie.SetSessionCookie(c, h.cookieCfg, result.AccessToken, h.tokenTTL)
	c.JSON(http.StatusOK, resdto.LoginResponse{
		Success:     true,
		User:        queries.ToUserView(result.User),
		AccessToken: result.AccessToken,
	})
}

// @Summary Logout
// @Description End the session. Succeeds when nobody is logged in.
// @Tags auth
// @Produce json
// @Success 200 {object} resdto.Envelope[any]
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.cmds.Logout(c.Request.Context()); err != nil {
		httperr.Abort(c, err)
		return
	}
	cookie.ClearSessionCookie(c, h.cookieCfg)
	resdto.OK[any](c, nil)
}

// @Summary Current session
// @Description The logged-in user, or null when the session did not survive
// @Tags auth
// @Produce json
// @Success 200 {object} resdto.Envelope[queries.UserView]
// @Router /auth/session [get]
func (h *AuthHandler) Session(c *gin.Context) {
	user, err := h.sessions.CurrentUser(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resdto.OK(c, user)
}
