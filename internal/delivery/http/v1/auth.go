package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/go-tasks/internal/services"
)

const (
	nameTakenMessage       = "Name already taken"
	nameRequiredMessage    = "Name is required"
	emailTakenMessage      = "Email already registered, log in instead"
	emailUnknownMessage    = "Email not registered, register instead"
	passwordInvalidMessage = "Password Incorrect"
)

type registerRequest struct {
	Name     string `form:"name" binding:"required,max=1000"`
	Email    string `form:"email" binding:"required,email,max=100"`
	Password string `form:"password" binding:"required,max=255"`
}

type signInRequest struct {
	Email    string `form:"email" binding:"required,email,max=100"`
	Password string `form:"password" binding:"required,max=255"`
	Remember string `form:"remember"`
}

func (h *handlerImpl) HandleHome(c *gin.Context) {
	render(c, http.StatusOK, "index.html", nil)
}

func (h *handlerImpl) HandleRegister(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		render(c, http.StatusOK, "register.html", nil)
		return
	}

	var req registerRequest
	err := c.ShouldBind(&req)
	if err != nil {
		h.logger.Warn().
			Err(err).
			Msg("failed to bind register form")
		render(c, http.StatusBadRequest, "register.html", gin.H{"Form": req}, describeBindError(err))
		return
	}
	h.logger.Info().
		Str("email", req.Email).
		Msg("register request")

	result, err := h.auth.Register(c, services.RegisterParams{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyUserName):
			render(c, http.StatusOK, "register.html", gin.H{"Form": req}, nameRequiredMessage)
		case errors.Is(err, services.ErrUserNameTaken):
			render(c, http.StatusOK, "register.html", gin.H{"Form": req}, nameTakenMessage)
		case errors.Is(err, services.ErrUserEmailTaken):
			redirect(c, "/sign-in", emailTakenMessage)
		default:
			h.logger.Error().
				Err(err).
				Msg("failed to register user")
			abort(c, newStatusTextError(http.StatusInternalServerError))
		}
		return
	}

	setSessionCookie(c, result.Token, result.Remember, result.ExpiresAt)
	redirect(c, "/profile")
}

func (h *handlerImpl) HandleSignIn(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		render(c, http.StatusOK, "sign_in.html", nil)
		return
	}

	var req signInRequest
	err := c.ShouldBind(&req)
	if err != nil {
		h.logger.Warn().
			Err(err).
			Msg("failed to bind sign-in form")
		redirect(c, "/sign-in", describeBindError(err))
		return
	}

	result, err := h.auth.Login(c, services.LoginParams{
		Email:    req.Email,
		Password: req.Password,
		Remember: req.Remember == "on",
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			redirect(c, "/register", emailUnknownMessage)
		case errors.Is(err, services.ErrUserPasswordMismatch):
			redirect(c, "/sign-in", passwordInvalidMessage)
		default:
			h.logger.Error().
				Err(err).
				Msg("failed to login")
			abort(c, newStatusTextError(http.StatusInternalServerError))
		}
		return
	}

	setSessionCookie(c, result.Token, result.Remember, result.ExpiresAt)
	redirect(c, "/profile")
}

func (h *handlerImpl) HandleLogout(c *gin.Context) {
	principal, _ := getPrincipal(c)

	err := h.auth.Logout(c, principal.SessionID)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to logout")
		abort(c, newStatusTextError(http.StatusInternalServerError))
		return
	}

	clearCookie(c, sessionCookie)
	redirect(c, "/")
}
