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

// CreateUserInput defines the expected JSON structure for creating a user
type CreateUserInput struct {
	Name     string `json:"name" binding:"required"`
	LastName string `json:"last_name"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"omitempty,oneof=admin shop user"`
	Phone    string `json:"phone"`
}

// UpdateUserInput defines the expected JSON structure for updating a user
type UpdateUserInput struct {
	Name     *string `json:"name"`
	LastName *string `json:"last_name"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=6"`
	Role     *string `json:"role" binding:"omitempty,oneof=admin shop user"`
	Phone    *string `json:"phone"`
}

func (in *UpdateUserInput) empty() bool {
	return in.Name == nil && in.LastName == nil && in.Email == nil &&
		in.Password == nil && in.Role == nil && in.Phone == nil
}

// GetUsers godoc
//
//	@Summary	List all users
//	@Tags		users
//	@Produce	json
//	@Success	200	{object}	map[string]interface{}
//	@Router		/api/users [get]
func GetUsers(c *gin.Context) {
	var users []models.User
	if err := config.DB.Where("deleted = ?", false).Order("id").Find(&users).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.RespondWithList(c, users, len(users))
}

// GetUser godoc
//
//	@Summary	Get a user by ID
//	@Tags		users
//	@Produce	json
//	@Param		id	path		int	true	"User ID"
//	@Success	200	{object}	map[string]interface{}
//	@Failure	404	{object}	map[string]interface{}
//	@Router		/api/users/{id} [get]
func GetUser(c *gin.Context) {
	var user models.User
	if err := config.DB.Where("id = ? AND deleted = ?", c.Param("id"), false).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "User not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	utils.RespondWithData(c, http.StatusOK, user)
}

// GetUsersByRole godoc
//
//	@Summary	List users with a given role
//	@Tags		users
//	@Produce	json
//	@Param		role	path		string	true	"Role: admin, shop or user"
//	@Success	200		{object}	map[string]interface{}
//	@Router		/api/users/role/{role} [get]
func GetUsersByRole(c *gin.Context) {
	// Roles are free-form strings in practice; match case-insensitively
	var users []models.User
	if err := config.DB.Where("LOWER(role) = LOWER(?) AND deleted = ?", c.Param("role"), false).
		Order("id").Find(&users).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.RespondWithList(c, users, len(users))
}

// CreateUser godoc
//
//	@Summary	Create a user
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Param		request	body		CreateUserInput	true	"User"
//	@Success	201		{object}	map[string]interface{}
//	@Failure	400		{object}	map[string]interface{}
//	@Failure	409		{object}	map[string]interface{}
//	@Router		/api/users [post]
func CreateUser(c *gin.Context) {
	var input CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithBindingError(c, err)
		return
	}

	email := utils.NormalizeEmail(input.Email)

	// Check if email already exists
	var existing models.User
	err := config.DB.Where("LOWER(email) = ?", email).First(&existing).Error
	if err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Email already registered")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	user := models.User{
		Name:     input.Name,
		LastName: input.LastName,
		Email:    email,
		Password: input.Password, // hashed in BeforeCreate hook
		Role:     input.Role,
		Phone:    input.Phone,
	}

	if err := config.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondWithError(c, http.StatusConflict, "Email already registered")
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.RespondWithData(c, http.StatusCreated, user)
}

// UpdateUser godoc
//
//	@Summary	Update a user
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int				true	"User ID"
//	@Param		request	body		UpdateUserInput	true	"Fields to update"
//	@Success	200		{object}	map[string]interface{}
//	@Failure	400		{object}	map[string]interface{}
//	@Failure	404		{object}	map[string]interface{}
//	@Router		/api/users/{id} [put]
func UpdateUser(c *gin.Context) {
	var input UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithBindingError(c, err)
		return
	}

	if input.empty() {
		utils.RespondWithError(c, http.StatusBadRequest, "No fields to update")
		return
	}

	var user models.User
	if err := config.DB.Where("id = ? AND deleted = ?", c.Param("id"), false).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "User not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	if input.Email != nil {
		email := utils.NormalizeEmail(*input.Email)
		if email != user.Email {
			var existing models.User
			err := config.DB.Where("LOWER(email) = ?", email).First(&existing).Error
			if err == nil {
				utils.RespondWithError(c, http.StatusConflict, "Email already registered")
				return
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
				return
			}
		}
		user.Email = email
	}
	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Role != nil {
		user.Role = *input.Role
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.Password != nil {
		// Only rehash when a new password was actually supplied
		hashed, err := utils.HashPassword(*input.Password)
		if err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to hash password")
			return
		}
		user.Password = hashed
	}

	if err := config.DB.Save(&user).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.RespondWithData(c, http.StatusOK, user)
}

// DeleteUser godoc
//
//	@Summary	Soft-delete a user
//	@Tags		users
//	@Produce	json
//	@Param		id	path		int	true	"User ID"
//	@Success	200	{object}	map[string]interface{}
//	@Failure	404	{object}	map[string]interface{}
//	@Router		/api/users/{id} [delete]
func DeleteUser(c *gin.Context) {
	var user models.User
	if err := config.DB.First(&user, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "User not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	// Soft delete; repeating the call is a no-op, not an error
	if !user.Deleted {
		user.Deleted = true
		if err := config.DB.Save(&user).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
			return
		}
	}

	utils.RespondWithMessage(c, http.StatusOK, "User deleted successfully")
}
