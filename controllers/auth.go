package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"grocerypro-backend/config"
	"grocerypro-backend/models"
	"grocerypro-backend/utils"
)

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
//
//	@Summary	Verify credentials and return the user
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Param		request	body		LoginInput	true	"Credentials"
//	@Success	200		{object}	map[string]interface{}
//	@Failure	401		{object}	map[string]interface{}
//	@Router		/api/users/login [post]
func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithBindingError(c, err)
		return
	}

	var user models.User
	err := config.DB.Where("LOWER(email) = ? AND deleted = ?", utils.NormalizeEmail(input.Email), false).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Same message as a wrong password; never reveal which one failed
			utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	if !utils.CheckPasswordHash(input.Password, user.Password) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	utils.RespondWithData(c, http.StatusOK, user)
}
