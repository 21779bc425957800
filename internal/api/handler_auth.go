package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type signUpRequest struct {
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required"`
	DisplayName string `json:"display_name"`
	UserType    string `json:"user_type" binding:"required"`
	TermsAgreed bool   `json:"terms_agreed"`
}

// PostSignUp handles POST /api/auth/signup.
func (h *Handler) PostSignUp(c *gin.Context) {
	var req signUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindErr(c)
		return
	}

	session, err := h.auth.SignUp(c.Request.Context(), req.Email, req.Password, req.DisplayName, req.UserType, req.TermsAgreed)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusCreated, session)
}

type signInRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// PostSignIn handles POST /api/auth/signin.
func (h *Handler) PostSignIn(c *gin.Context) {
	var req signInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindErr(c)
		return
	}

	session, err := h.auth.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, session)
}
