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

// CreateExpenseInput defines the expected JSON structure for creating an expense
type CreateExpenseInput struct {
	ShopID      uint            `json:"shop_id" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	ExpenseDate time.Time       `json:"expense_date" binding:"required"`
}

// UpdateExpenseInput defines the expected JSON structure for updating an expense
type UpdateExpenseInput struct {
	ShopID      *uint            `json:"shop_id"`
	Amount      *decimal.Decimal `json:"amount"`
	ExpenseDate *time.Time       `json:"expense_date"`
}

func (in *UpdateExpenseInput) empty() bool {
	return in.ShopID == nil && in.Amount == nil && in.ExpenseDate == nil
}

// GetExpenses godoc
//
//	@Summary	List all expenses
//	@Tags		expenses
//	@Produce	json
//	@Success	200	{object}	map[string]interface{}
//	@Router		/api/expenses [get]
func GetExpenses(c *gin.Context) {
	var expenses []models.Expense
	if err := config.DB.Where("deleted = ?", false).Order("expense_date DESC").
		Find(&expenses).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.RespondWithList(c, expenses, len(expenses))
}

// GetExpensesByShop godoc
//
//	@Summary	List a shop's expenses
//	@Tags		expenses
//	@Produce	json
//	@Param		shopId	path		int	true	"Shop ID"
//	@Success	200		{object}	map[string]interface{}
//	@Failure	404		{object}	map[string]interface{}
//	@Router		/api/expenses/shop/{shopId} [get]
func GetExpensesByShop(c *gin.Context) {
	shop, ok := findShop(c)
	if !ok {
		return
	}

	var expenses []models.Expense
	if err := config.DB.Where("shop_id = ? AND deleted = ?", shop.ID, false).
		Order("expense_date DESC").Find(&expenses).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.RespondWithList(c, expenses, len(expenses))
}

// GetExpense godoc
//
//	@Summary	Get an expense by ID
//	@Tags		expenses
//	@Produce	json
//	@Param		id	path		int	true	"Expense ID"
//	@Success	200	{object}	map[string]interface{}
//	@Failure	404	{object}	map[string]interface{}
//	@Router		/api/expenses/{id} [get]
func GetExpense(c *gin.Context) {
	var expense models.Expense
	if err := config.DB.Where("id = ? AND deleted = ?", c.Param("id"), false).
		First(&expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Expense not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	utils.RespondWithData(c, http.StatusOK, expense)
}

// CreateExpense godoc
//
//	@Summary	Create an expense
//	@Tags		expenses
//	@Accept		json
//	@Produce	json
//	@Param		request	body		CreateExpenseInput	true	"Expense"
//	@Success	201		{object}	map[string]interface{}
//	@Failure	400		{object}	map[string]interface{}
//	@Failure	404		{object}	map[string]interface{}
//	@Router		/api/expenses [post]
func CreateExpense(c *gin.Context) {
	var input CreateExpenseInput
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

	expense := models.Expense{
		ShopID:      input.ShopID,
		Amount:      input.Amount,
		ExpenseDate: input.ExpenseDate,
	}

	if err := config.DB.Create(&expense).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.RespondWithData(c, http.StatusCreated, expense)
}

// UpdateExpense godoc
//
//	@Summary	Update an expense
//	@Tags		expenses
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int					true	"Expense ID"
//	@Param		request	body		UpdateExpenseInput	true	"Fields to update"
//	@Success	200		{object}	map[string]interface{}
//	@Failure	400		{object}	map[string]interface{}
//	@Failure	404		{object}	map[string]interface{}
//	@Router		/api/expenses/{id} [put]
func UpdateExpense(c *gin.Context) {
	var input UpdateExpenseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithBindingError(c, err)
		return
	}

	if input.empty() {
		utils.RespondWithError(c, http.StatusBadRequest, "No fields to update")
		return
	}

	var expense models.Expense
	if err := config.DB.Where("id = ? AND deleted = ?", c.Param("id"), false).
		First(&expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Expense not found")
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
		expense.ShopID = *input.ShopID
	}
	if input.Amount != nil {
		if input.Amount.Sign() <= 0 {
			utils.RespondWithError(c, http.StatusBadRequest, "Amount must be greater than zero")
			return
		}
		expense.Amount = *input.Amount
	}
	if input.ExpenseDate != nil {
		expense.ExpenseDate = *input.ExpenseDate
	}

	if err := config.DB.Save(&expense).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.RespondWithData(c, http.StatusOK, expense)
}

// DeleteExpense godoc
//
//	@Summary	Soft-delete an expense
//	@Tags		expenses
//	@Produce	json
//	@Param		id	path		int	true	"Expense ID"
//	@Success	200	{object}	map[string]interface{}
//	@Failure	404	{object}	map[string]interface{}
//	@Router		/api/expenses/{id} [delete]
func DeleteExpense(c *gin.Context) {
	var expense models.Expense
	if err := config.DB.First(&expense, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Expense not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	if !expense.Deleted {
		expense.Deleted = true
		if err := config.DB.Save(&expense).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
			return
		}
	}

	utils.RespondWithMessage(c, http.StatusOK, "Expense deleted successfully")
}
