package database

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"grocerypro-backend/config"
	"grocerypro-backend/models"
)

// Seed applies the .sql files under seedsPath in filename order, each in its
// own transaction. It only fires against an empty users table, unless
// FORCE_SEED is set; that keeps restarts from piling up duplicate rows.
func Seed(db *gorm.DB, seedsPath string, logger *zap.Logger) error {
	var userCount int64
	if err := db.Model(&models.User{}).Count(&userCount).Error; err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}

	if userCount > 0 && !config.GetenvBool("FORCE_SEED") {
		logger.Info("Database already seeded, skipping", zap.Int64("users", userCount))
		return nil
	}

	entries, err := os.ReadDir(seedsPath)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Info("No seeds directory, skipping")
			return nil
		}
		return fmt.Errorf("failed to read seeds directory: %w", err)
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		files = append(files, entry.Name())
	}
	sort.Strings(files)

	for _, name := range files {
		content, err := os.ReadFile(filepath.Join(seedsPath, name))
		if err != nil {
			return fmt.Errorf("failed to read seed file %s: %w", name, err)
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			return tx.Exec(string(content)).Error
		})
		if err != nil {
			return fmt.Errorf("seed file %s failed: %w", name, err)
		}
		logger.Info("Seed applied", zap.String("file", name))
	}

	return nil
}
