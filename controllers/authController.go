package controllers

import (
	"net/http"

	"caixa/config"
	"caixa/utils"

	"github.com/gin-gonic/gin"
)

// AuthController signs the till operator in against the configured account.
type AuthController struct {
	Cfg *config.Config
}

// Login checks the credentials and returns a bearer token, also set as a
// cookie for browser frontends.
func (a *AuthController) Login(c *gin.Context) {
	var input struct {
		Login    string `json:"login" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	op := a.Cfg.Operator
	if input.Login != op.Login || utils.VerifyPassword(op.PasswordHash, input.Password) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid login or password"})
		return
	}

	token, err := utils.GenerateToken(op.Login, op.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error generating token"})
		return
	}

	c.SetCookie("token", token, 3600*24, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"token": token, "role": op.Role})
}
