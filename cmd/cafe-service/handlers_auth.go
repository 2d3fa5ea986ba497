package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/cafe-orders/internal/httpx"
	"github.com/MikeMC777/cafe-orders/internal/user"
)

// userResponse wraps the caller's profile; User is null when anonymous.
type userResponse struct {
	User *user.Public `json:"user"`
}

// loginHandler godoc
// @Summary      Log in as customer or staff
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      user.LoginRequest  true  "credentials"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  httpx.HTTPError
// @Failure      401   {object}  httpx.HTTPError
// @Failure      404   {object}  httpx.HTTPError
// @Router       /auth/login [post]
func loginHandler(users *user.Service, cookie httpx.CookieOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in user.LoginRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			httpx.BadRequest(c, "invalid json")
			return
		}
		u, token, err := users.Login(c.Request.Context(), in)
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		httpx.SetSession(c, token, cookie)
		c.JSON(http.StatusOK, userResponse{User: &u})
	}
}

// signupHandler godoc
// @Summary      Register a customer
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      user.SignupRequest  true  "new customer"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  httpx.HTTPError
// @Failure      409   {object}  httpx.HTTPError
// @Router       /auth/signup [post]
func signupHandler(users *user.Service, cookie httpx.CookieOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in user.SignupRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			httpx.BadRequest(c, "invalid json")
			return
		}
		u, token, err := users.Register(c.Request.Context(), in)
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		httpx.SetSession(c, token, cookie)
		c.JSON(http.StatusOK, userResponse{User: &u})
	}
}

// logoutHandler godoc
// @Summary      Clear the session cookie
// @Tags         auth
// @Success      200
// @Router       /auth/logout [post]
func logoutHandler(cookie httpx.CookieOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		httpx.ClearSession(c, cookie)
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

// meHandler godoc
// @Summary      Current user, or null
// @Tags         auth
// @Produce      json
// @Success      200  {object}  userResponse
// @Router       /auth/me [get]
func meHandler(users *user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, err := users.Me(c.Request.Context(), httpx.Principal(c))
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, userResponse{User: u})
	}
}
