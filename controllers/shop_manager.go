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

// AddShopManagerInput defines the expected JSON structure for assigning a manager
type AddShopManagerInput struct {
	UserID uint `json:"user_id" binding:"required"`
}

func findShop(c *gin.Context) (*models.Shop, bool) {
	var shop models.Shop
	if err := config.DB.Where("id = ? AND deleted = ?", c.Param("shopId"), false).
		First(&shop).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Shop not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		}
		return nil, false
	}
	return &shop, true
}

// GetShopManagers godoc
//
//	@Summary	List a shop's managers
//	@Tags		shops
//	@Produce	json
//	@Param		shopId	path		int	true	"Shop ID"
//	@Success	200		{object}	map[string]interface{}
//	@Failure	404		{object}	map[string]interface{}
//	@Router		/api/shops/{shopId}/managers [get]
func GetShopManagers(c *gin.Context) {
	shop, ok := findShop(c)
	if !ok {
		return
	}

	var managers []models.ShopManager
	if err := config.DB.Preload("User").Where("shop_id = ?", shop.ID).
		Order("id").Find(&managers).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.RespondWithList(c, managers, len(managers))
}

// AddShopManager godoc
//
//	@Summary	Assign a user as shop manager
//	@Tags		shops
//	@Accept		json
//	@Produce	json
//	@Param		shopId	path		int					true	"Shop ID"
//	@Param		request	body		AddShopManagerInput	true	"User to assign"
//	@Success	201		{object}	map[string]interface{}
//	@Failure	404		{object}	map[string]interface{}
//	@Failure	409		{object}	map[string]interface{}
//	@Router		/api/shops/{shopId}/managers [post]
func AddShopManager(c *gin.Context) {
	shop, ok := findShop(c)
	if !ok {
		return
	}

	var input AddShopManagerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithBindingError(c, err)
		return
	}

	var user models.User
	if err := config.DB.Where("id = ? AND deleted = ?", input.UserID, false).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "User not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	// The unique index on (shop_id, user_id) is the real guard; the lookup
	// just produces a friendlier message than a bare constraint error.
	var existing models.ShopManager
	err := config.DB.Where("shop_id = ? AND user_id = ?", shop.ID, user.ID).
		First(&existing).Error
	if err == nil {
		utils.RespondWithError(c, http.StatusConflict, "User is already a manager of this shop")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	manager := models.ShopManager{
		ShopID: shop.ID,
		UserID: user.ID,
	}
	if err := config.DB.Create(&manager).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondWithError(c, http.StatusConflict, "User is already a manager of this shop")
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}
	manager.User = user

	utils.RespondWithData(c, http.StatusCreated, manager)
}

// RemoveShopManager godoc
//
//	@Summary	Remove a manager from a shop
//	@Tags		shops
//	@Produce	json
//	@Param		shopId	path		int	true	"Shop ID"
//	@Param		userId	path		int	true	"User ID"
//	@Success	200		{object}	map[string]interface{}
//	@Failure	404		{object}	map[string]interface{}
//	@Router		/api/shops/{shopId}/managers/{userId} [delete]
func RemoveShopManager(c *gin.Context) {
	shop, ok := findShop(c)
	if !ok {
		return
	}

	result := config.DB.Where("shop_id = ? AND user_id = ?", shop.ID, c.Param("userId")).
		Delete(&models.ShopManager{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Manager not found for this shop")
		return
	}

	utils.RespondWithMessage(c, http.StatusOK, "Manager removed successfully")
}
