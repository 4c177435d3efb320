package services

import (
	"context"
	"fmt"
	"strconv"

	"kaidan-backend/internal/models"
	"kaidan-backend/internal/repositories"
)

// SettingService fronts the key/value settings table. The AI credentials
// configured here feed the recognition service at call time, so changes
// take effect without restart.
type SettingService struct {
	repo *repositories.SettingRepository
}

func NewSettingService(repo *repositories.SettingRepository) *SettingService {
	return &SettingService{repo: repo}
}

func (s *SettingService) List(ctx context.Context) ([]*models.Setting, error) {
	return s.repo.List(ctx)
}

// GetValue returns the stored value, or fallback when the key is absent.
func (s *SettingService) GetValue(ctx context.Context, key, fallback string) string {
	setting, err := s.repo.Get(ctx, key)
	if err != nil || setting == nil {
		return fallback
	}
	return setting.Value
}

func (s *SettingService) Update(ctx context.Context, key, value string) error {
	if key == models.SettingLastInvoiceNo {
		if _, err := strconv.Atoi(value); err != nil {
			return fmt.Errorf("last_invoice_no must be an integer: %q", value)
		}
	}
	return s.repo.Upsert(ctx, key, value)
}

// NextInvoiceNo suggests last_invoice_no + 1 for a fresh slip form.
func (s *SettingService) NextInvoiceNo(ctx context.Context) int {
	last, _ := strconv.Atoi(s.GetValue(ctx, models.SettingLastInvoiceNo, "0"))
	return last + 1
}

// AIConfig is the recognition collaborator's runtime configuration,
// assembled from settings with an env-provided key as fallback.
type AIConfig struct {
	BaseURL string
	Model   string
	APIKey  string
	Prompt  string
}

func (s *SettingService) AIConfig(ctx context.Context, envAPIKey string) AIConfig {
	cfg := AIConfig{
		BaseURL: s.GetValue(ctx, models.SettingAIBaseURL, ""),
		Model:   s.GetValue(ctx, models.SettingAIModel, "gpt-4o-mini"),
		APIKey:  s.GetValue(ctx, models.SettingAIAPIKey, ""),
		Prompt:  s.GetValue(ctx, models.SettingAIPrompt, ""),
	}
	if cfg.APIKey == "" {
		cfg.APIKey = envAPIKey
	}
	return cfg
}
