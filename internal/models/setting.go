package models

import "time"

// Setting is one row of the key/value settings table.
type Setting struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Setting keys used by the slip workflow.
const (
	SettingCompanyTitle  = "company_title"
	SettingAccountText   = "account_text"
	SettingLastInvoiceNo = "last_invoice_no"
	SettingAIProvider    = "ai_provider"
	SettingAIBaseURL     = "ai_api_url"
	SettingAIModel       = "ai_model"
	SettingAIAPIKey      = "ai_api_key"
	SettingAIPrompt      = "ai_prompt"
)
