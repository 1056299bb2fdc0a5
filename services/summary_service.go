// services/summary_service.go
package services

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"grocerypro-backend/models"
	"grocerypro-backend/utils"
)

// SummaryService sends each shop's managers an end-of-day revenue summary
// over SMS or WhatsApp.
type SummaryService struct {
	db     *gorm.DB
	client *twilio.RestClient
	logger *zap.Logger
}

func NewSummaryService(db *gorm.DB, logger *zap.Logger) *SummaryService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &SummaryService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
		logger: logger,
	}
}

// StartScheduler runs the daily summary every evening at 8 PM.
func (s *SummaryService) StartScheduler() error {
	c := cron.New()

	if _, err := c.AddFunc("0 20 * * *", s.SendDailySummaries); err != nil {
		return err
	}

	c.Start()
	s.logger.Info("Daily summary scheduler started")
	return nil
}

func (s *SummaryService) SendDailySummaries() {
	s.logger.Info("Starting daily summary processing")

	var shops []models.Shop
	if err := s.db.Where("deleted = ?", false).Find(&shops).Error; err != nil {
		s.logger.Error("Failed to fetch shops", zap.Error(err))
		return
	}

	for _, shop := range shops {
		s.ProcessShopSummary(shop)
	}

	s.logger.Info("Daily summary processing completed")
}

func (s *SummaryService) ProcessShopSummary(shop models.Shop) {
	now := time.Now()
	start := utils.BeginningOfDay(now)

	var incomes []models.IncomeTransaction
	if err := s.db.Where("shop_id = ? AND deleted = ? AND transaction_date >= ?", shop.ID, false, start).
		Find(&incomes).Error; err != nil {
		s.logger.Error("Failed to fetch income transactions",
			zap.Uint("shop_id", shop.ID), zap.Error(err))
		return
	}

	var expenses []models.Expense
	if err := s.db.Where("shop_id = ? AND deleted = ? AND expense_date >= ?", shop.ID, false, start).
		Find(&expenses).Error; err != nil {
		s.logger.Error("Failed to fetch expenses",
			zap.Uint("shop_id", shop.ID), zap.Error(err))
		return
	}

	_, totals := BuildRevenueSeries(incomes, expenses, start, now)

	message := fmt.Sprintf(
		"%s daily summary for %s: income %s, expenses %s, clear revenue %s.",
		shop.ShopName,
		now.Format(utils.DayFormat),
		totals.Income.StringFixed(2),
		totals.Outcome.StringFixed(2),
		totals.ClearRevenue.StringFixed(2),
	)

	var managers []models.ShopManager
	if err := s.db.Preload("User").Where("shop_id = ?", shop.ID).Find(&managers).Error; err != nil {
		s.logger.Error("Failed to fetch shop managers",
			zap.Uint("shop_id", shop.ID), zap.Error(err))
		return
	}

	for _, manager := range managers {
		if manager.User.Deleted || manager.User.Phone == "" {
			continue
		}
		s.sendMessage(manager.User.Phone, message)
	}
}

func (s *SummaryService) sendMessage(phone, message string) {
	// WhatsApp for E.164 numbers, plain SMS otherwise
	channel := "sms"
	to := phone
	if strings.HasPrefix(phone, "+") {
		to = "whatsapp:" + phone
		channel = "whatsapp"
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetBody(message)

	if channel == "whatsapp" {
		params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
	} else {
		params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	}

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		s.logger.Error("Failed to send summary", zap.String("to", phone), zap.Error(err))
		return
	}
	if resp.Sid != nil {
		s.logger.Info("Summary sent", zap.String("to", phone), zap.String("sid", *resp.Sid))
	} else {
		s.logger.Info("Summary sent, no SID returned", zap.String("to", phone))
	}
}
