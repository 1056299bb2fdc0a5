package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"grocerypro-backend/config"
	"grocerypro-backend/models"
	"grocerypro-backend/utils"
)

// CreateIncomeTransactionInput defines the expected JSON structure for
// recording a customer payment
type CreateIncomeTransactionInput struct {
	ShopID          uint            `json:"shop_id" binding:"required"`
	CustomerName    string          `json:"customer_name" binding:"required"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	TransactionDate time.Time       `json:"transaction_date" binding:"required"`
}

// UpdateIncomeTransactionInput defines the expected JSON structure for
// updating a customer payment
type UpdateIncomeTransactionInput struct {
	ShopID          *uint            `json:"shop_id"`
	CustomerName    *string          `json:"customer_name"`
	Amount          *decimal.Decimal `json:"amount"`
	TransactionDate *time.Time       `json:"transaction_date"`
}

func (in *UpdateIncomeTransactionInput) empty() bool {
	return in.ShopID == nil && in.CustomerName == nil && in.Amount == nil && in.TransactionDate == nil
}

// GetIncomeTransactions godoc
//
//	@Summary	List all income transactions
//	@Tags		income-transactions
//	@Produce	json
//	@Success	200	{object}	map[string]interface{}
//	@Router		/api/income-transactions [get]
func GetIncomeTransactions(c *gin.Context) {
	var transactions []models.IncomeTransaction
	if err := config.DB.Where("deleted = ?", false).Order("transaction_date DESC").
		Find(&transactions).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.RespondWithList(c, transactions, len(transactions))
}

// GetIncomeTransactionsByShop godoc
//
//	@Summary	List a shop's income transactions
//	@Tags		income-transactions
//	@Produce	json
//	@Param		shopId	path		int	true	"Shop ID"
//	@Success	200		{object}	map[string]interface{}
//	@Failure	404		{object}	map[string]interface{}
//	@Router		/api/income-transactions/shop/{shopId} [get]
func GetIncomeTransactionsByShop(c *gin.Context) {
	shop, ok := findShop(c)
	if !ok {
		return
	}

	var transactions []models.IncomeTransaction
	if err := config.DB.Where("shop_id = ? AND deleted = ?", shop.ID, false).
		Order("transaction_date DESC").Find(&transactions).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.RespondWithList(c, transactions, len(transactions))
}

// GetIncomeTransaction godoc
//
//	@Summary	Get an income transaction by ID
//	@Tags		income-transactions
//	@Produce	json
//	@Param		id	path		int	true	"Transaction ID"
//	@Success	200	{object}	map[string]interface{}
//	@Failure	404	{object}	map[string]interface{}
//	@Router		/api/income-transactions/{id} [get]
func GetIncomeTransaction(c *gin.Context) {
	var transaction models.IncomeTransaction
	if err := config.DB.Where("id = ? AND deleted = ?", c.Param("id"), false).
		First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Income transaction not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	utils.RespondWithData(c, http.StatusOK, transaction)
}

// CreateIncomeTransaction godoc
//
//	@Summary	Record a customer payment
//	@Tags		income-transactions
//	@Accept		json
//	@Produce	json
//	@Param		request	body		CreateIncomeTransactionInput	true	"Payment"
//	@Success	201		{object}	map[string]interface{}
//	@Failure	400		{object}	map[string]interface{}
//	@Failure	404		{object}	map[string]interface{}
//	@Router		/api/income-transactions [post]
func CreateIncomeTransaction(c *gin.Context) {
	var input CreateIncomeTransactionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithBindingError(c, err)
		return
	}

	if input.Amount.Sign() <= 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "Amount must be greater than zero")
		return
	}

	var shop models.Shop
	if err := config.DB.Where("id = ? AND deleted = ?", input.ShopID, false).
		First(&shop).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Shop not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	transaction := models.IncomeTransaction{
		ShopID:          input.ShopID,
		CustomerName:    input.CustomerName,
		Amount:          input.Amount,
		TransactionDate: input.TransactionDate,
	}

	if err := config.DB.Create(&transaction).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.RespondWithData(c, http.StatusCreated, transaction)
}

// UpdateIncomeTransaction godoc
//
//	@Summary	Update an income transaction
//	@Tags		income-transactions
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int								true	"Transaction ID"
//	@Param		request	body		UpdateIncomeTransactionInput	true	"Fields to update"
//	@Success	200		{object}	map[string]interface{}
//	@Failure	400		{object}	map[string]interface{}
//	@Failure	404		{object}	map[string]interface{}
//	@Router		/api/income-transactions/{id} [put]
func UpdateIncomeTransaction(c *gin.Context) {
	var input UpdateIncomeTransactionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithBindingError(c, err)
		return
	}

	if input.empty() {
		utils.RespondWithError(c, http.StatusBadRequest, "No fields to update")
		return
	}

	var transaction models.IncomeTransaction
	if err := config.DB.Where("id = ? AND deleted = ?", c.Param("id"), false).
		First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Income transaction not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	if input.ShopID != nil {
		var shop models.Shop
		if err := config.DB.Where("id = ? AND deleted = ?", *input.ShopID, false).
			First(&shop).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusNotFound, "Shop not found")
			} else {
				utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
			}
			return
		}
		transaction.ShopID = *input.ShopID
	}
	if input.CustomerName != nil {
		transaction.CustomerName = *input.CustomerName
	}
	if input.Amount != nil {
		if input.Amount.Sign() <= 0 {
			utils.RespondWithError(c, http.StatusBadRequest, "Amount must be greater than zero")
			return
		}
		transaction.Amount = *input.Amount
	}
	if input.TransactionDate != nil {
		transaction.TransactionDate = *input.TransactionDate
	}

	if err := config.DB.Save(&transaction).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.RespondWithData(c, http.StatusOK, transaction)
}

// DeleteIncomeTransaction godoc
//
//	@Summary	Soft-delete an income transaction
//	@Tags		income-transactions
//	@Produce	json
//	@Param		id	path		int	true	"Transaction ID"
//	@Success	200	{object}	map[string]interface{}
//	@Failure	404	{object}	map[string]interface{}
//	@Router		/api/income-transactions/{id} [delete]
func DeleteIncomeTransaction(c *gin.Context) {
	var transaction models.IncomeTransaction
	if err := config.DB.First(&transaction, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Income transaction not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	if !transaction.Deleted {
		transaction.Deleted = true
		if err := config.DB.Save(&transaction).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
			return
		}
	}

	utils.RespondWithMessage(c, http.StatusOK, "Income transaction deleted successfully")
}
