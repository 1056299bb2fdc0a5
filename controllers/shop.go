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

// CreateShopInput defines the expected JSON structure for creating a shop
type CreateShopInput struct {
	ShopName    string `json:"shop_name" binding:"required"`
	Description string `json:"description"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
}

// UpdateShopInput defines the expected JSON structure for updating a shop
type UpdateShopInput struct {
	ShopName    *string `json:"shop_name"`
	Description *string `json:"description"`
	Address     *string `json:"address"`
	Phone       *string `json:"phone"`
}

func (in *UpdateShopInput) empty() bool {
	return in.ShopName == nil && in.Description == nil && in.Address == nil && in.Phone == nil
}

// GetShops godoc
//
//	@Summary	List all shops
//	@Tags		shops
//	@Produce	json
//	@Success	200	{object}	map[string]interface{}
//	@Router		/api/shops [get]
func GetShops(c *gin.Context) {
	var shops []models.Shop
	if err := config.DB.Preload("Managers.User").Where("deleted = ?", false).
		Order("id").Find(&shops).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.RespondWithList(c, shops, len(shops))
}

// GetShop godoc
//
//	@Summary	Get a shop by ID
//	@Tags		shops
//	@Produce	json
//	@Param		id	path		int	true	"Shop ID"
//	@Success	200	{object}	map[string]interface{}
//	@Failure	404	{object}	map[string]interface{}
//	@Router		/api/shops/{id} [get]
func GetShop(c *gin.Context) {
	var shop models.Shop
	if err := config.DB.Preload("Managers.User").
		Where("id = ? AND deleted = ?", c.Param("shopId"), false).
		First(&shop).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Shop not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	utils.RespondWithData(c, http.StatusOK, shop)
}

// CreateShop godoc
//
//	@Summary	Create a shop
//	@Tags		shops
//	@Accept		json
//	@Produce	json
//	@Param		request	body		CreateShopInput	true	"Shop"
//	@Success	201		{object}	map[string]interface{}
//	@Failure	400		{object}	map[string]interface{}
//	@Router		/api/shops [post]
func CreateShop(c *gin.Context) {
	var input CreateShopInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithBindingError(c, err)
		return
	}

	if input.Phone != "" && !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	shop := models.Shop{
		ShopName:    input.ShopName,
		Description: input.Description,
		Address:     input.Address,
		Phone:       input.Phone,
	}

	if err := config.DB.Create(&shop).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.RespondWithData(c, http.StatusCreated, shop)
}

// UpdateShop godoc
//
//	@Summary	Update a shop
//	@Tags		shops
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int				true	"Shop ID"
//	@Param		request	body		UpdateShopInput	true	"Fields to update"
//	@Success	200		{object}	map[string]interface{}
//	@Failure	400		{object}	map[string]interface{}
//	@Failure	404		{object}	map[string]interface{}
//	@Router		/api/shops/{id} [put]
func UpdateShop(c *gin.Context) {
	var input UpdateShopInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithBindingError(c, err)
		return
	}

	if input.empty() {
		utils.RespondWithError(c, http.StatusBadRequest, "No fields to update")
		return
	}

	var shop models.Shop
	if err := config.DB.Where("id = ? AND deleted = ?", c.Param("shopId"), false).
		First(&shop).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Shop not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	if input.ShopName != nil {
		shop.ShopName = *input.ShopName
	}
	if input.Description != nil {
		shop.Description = *input.Description
	}
	if input.Address != nil {
		shop.Address = *input.Address
	}
	if input.Phone != nil {
		if *input.Phone != "" && !utils.ValidatePhone(*input.Phone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
			return
		}
		shop.Phone = *input.Phone
	}

	if err := config.DB.Save(&shop).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.RespondWithData(c, http.StatusOK, shop)
}

// DeleteShop godoc
//
//	@Summary	Soft-delete a shop
//	@Tags		shops
//	@Produce	json
//	@Param		id	path		int	true	"Shop ID"
//	@Success	200	{object}	map[string]interface{}
//	@Failure	404	{object}	map[string]interface{}
//	@Router		/api/shops/{id} [delete]
func DeleteShop(c *gin.Context) {
	var shop models.Shop
	if err := config.DB.First(&shop, "id = ?", c.Param("shopId")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Shop not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	if !shop.Deleted {
		shop.Deleted = true
		if err := config.DB.Save(&shop).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
			return
		}
	}

	utils.RespondWithMessage(c, http.StatusOK, "Shop deleted successfully")
}
