package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/yourusername/prop-edge/internal/models"
	"github.com/yourusername/prop-edge/internal/probability"
)

// CustomValidator wraps the validator with custom validation rules.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new validator with custom validation functions.
func NewValidator() *CustomValidator {
	v := validator.New()

	_ = v.RegisterValidation("environment", validateEnvironment)
	_ = v.RegisterValidation("loglevel", validateLogLevel)
	_ = v.RegisterValidation("oddsformat", validateOddsFormat)
	_ = v.RegisterValidation("probmodel", validateProbModel)
	_ = v.RegisterValidation("devig", validateDevig)
	_ = v.RegisterValidation("scorer", validateScorer)
	_ = v.RegisterValidation("markets", validateMarkets)

	return &CustomValidator{validator: v}
}

// Validate validates the entire configuration.
func Validate(cfg *Config) error {
	cv := NewValidator()
	return cv.Validate(cfg)
}

// Validate validates the configuration using registered validation rules.
func (cv *CustomValidator) Validate(cfg *Config) error {
	err := cv.validator.Struct(cfg)
	if err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			return formatValidationErrors(validationErrors)
		}
		return fmt.Errorf("validation failed: %w", err)
	}
	return validateCrossField(cfg)
}

func validateEnvironment(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "development", "staging", "production":
		return true
	default:
		return false
	}
}

func validateLogLevel(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "debug", "info", "warn", "error":
		return true
	default:
		return false
	}
}

func validateOddsFormat(fl validator.FieldLevel) bool {
	_, ok := models.ParseOddsFormat(fl.Field().String())
	return ok
}

func validateProbModel(fl validator.FieldLevel) bool {
	_, ok := probability.ParseModel(fl.Field().String())
	return ok
}

func validateDevig(fl validator.FieldLevel) bool {
	_, ok := probability.ParseDevigMethod(fl.Field().String())
	return ok
}

func validateScorer(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "token_sort", "jaro_winkler":
		return true
	default:
		return false
	}
}

// validateMarkets requires every configured market to normalize to a
// supported prop market.
func validateMarkets(fl validator.FieldLevel) bool {
	markets, ok := fl.Field().Interface().([]string)
	if !ok || len(markets) == 0 {
		return false
	}
	for _, raw := range markets {
		if _, supported := models.NormalizeMarket(raw); !supported {
			return false
		}
	}
	return true
}

// validateCrossField performs cross-field validations.
func validateCrossField(cfg *Config) error {
	if cfg.Model.OddsMin >= cfg.Model.OddsMax {
		return fmt.Errorf("model odds_min must be below odds_max")
	}
	if cfg.Staking.MinUnit > cfg.Staking.MaxUnit {
		return fmt.Errorf("staking min_unit cannot exceed max_unit")
	}
	if cfg.IsProduction() && cfg.OddsAPI.APIKey == "" {
		return fmt.Errorf("production environment requires an odds API key")
	}
	return nil
}

// formatValidationErrors formats validation errors into a readable string.
func formatValidationErrors(validationErrors validator.ValidationErrors) error {
	var errMsg string
	for _, fieldError := range validationErrors {
		field := fieldError.StructField()
		tag := fieldError.Tag()
		value := fieldError.Value()

		switch tag {
		case "required":
			errMsg += fmt.Sprintf("- Field '%s' is required\n", field)
		case "url":
			errMsg += fmt.Sprintf("- Field '%s' must be a valid URL, got '%v'\n", field, value)
		case "min", "max", "gt", "gte", "lt", "lte":
			errMsg += fmt.Sprintf("- Field '%s' validation failed: %s constraint violated\n", field, tag)
		case "environment":
			errMsg += fmt.Sprintf("- Field '%s' must be one of: development, staging, production\n", field)
		case "loglevel":
			errMsg += fmt.Sprintf("- Field '%s' must be one of: debug, info, warn, error\n", field)
		case "oddsformat":
			errMsg += fmt.Sprintf("- Field '%s' must be one of: american, decimal, auto\n", field)
		case "probmodel":
			errMsg += fmt.Sprintf("- Field '%s' must be one of: logistic, normal\n", field)
		case "devig":
			errMsg += fmt.Sprintf("- Field '%s' must be one of: none, multiplicative, power\n", field)
		case "scorer":
			errMsg += fmt.Sprintf("- Field '%s' must be one of: token_sort, jaro_winkler\n", field)
		case "markets":
			errMsg += fmt.Sprintf("- Field '%s' contains an unsupported prop market\n", field)
		default:
			errMsg += fmt.Sprintf("- Field '%s' failed validation: %s\n", field, tag)
		}
	}
	return fmt.Errorf("configuration validation failed:\n%s", errMsg)
}
