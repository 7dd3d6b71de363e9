package validator

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/StudyTrack/calendar-service/internal/models"
)

// BusinessValidator handles business rule validation
type BusinessValidator struct {
	validate *validator.Validate
}

// ValidationError represents a single field validation failure
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
	Rule    string      `json:"rule,omitempty"`
}

type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}
	if len(ve) == 1 {
		return fmt.Sprintf("validation failed: %s %s", ve[0].Field, ve[0].Message)
	}
	return fmt.Sprintf("validation failed: %d field errors", len(ve))
}

var colorHexPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// NewBusinessValidator creates a new business validator
func NewBusinessValidator() *BusinessValidator {
	validate := validator.New()

	bv := &BusinessValidator{validate: validate}
	bv.registerBusinessRules()

	return bv
}

// Validate validates business rules for any struct
func (bv *BusinessValidator) Validate(s interface{}) ValidationErrors {
	err := bv.validate.Struct(s)
	if err != nil {
		return ToValidationErrors(err)
	}
	return nil
}

// ValidateEventCreate validates event creation business rules
func (bv *BusinessValidator) ValidateEventCreate(req *EventCreateRequest) ValidationErrors {
	var errors ValidationErrors

	// Basic struct validation
	errors = append(errors, bv.Validate(req)...)

	// Variant-specific business validations
	errors = append(errors, bv.validateEventBusinessRules(req)...)

	return errors
}

// ValidateEventUpdate validates event update business rules
func (bv *BusinessValidator) ValidateEventUpdate(req *EventUpdateRequest) ValidationErrors {
	return bv.Validate(req)
}

// registerBusinessRules registers custom business rule validators
func (bv *BusinessValidator) registerBusinessRules() {
	// Title validation (1-200 characters after trimming)
	bv.validate.RegisterValidation("event_title", func(fl validator.FieldLevel) bool {
		title := strings.TrimSpace(fl.Field().String())
		return len(title) >= 1 && len(title) <= 200
	})

	// Event variant discriminator
	bv.validate.RegisterValidation("event_type", func(fl validator.FieldLevel) bool {
		return models.EventType(fl.Field().String()).Valid()
	})

	// Priority level
	bv.validate.RegisterValidation("event_priority", func(fl validator.FieldLevel) bool {
		return models.EventPriority(fl.Field().String()).Valid()
	})

	// Lifecycle status
	bv.validate.RegisterValidation("event_status", func(fl validator.FieldLevel) bool {
		return models.EventStatus(fl.Field().String()).Valid()
	})

	// Assignment kind
	bv.validate.RegisterValidation("assignment_type", func(fl validator.FieldLevel) bool {
		return models.AssignmentType(fl.Field().String()).Valid()
	})

	// User role
	bv.validate.RegisterValidation("user_role", func(fl validator.FieldLevel) bool {
		return models.UserRole(fl.Field().String()).Valid()
	})

	// Display color, e.g. #2196F3
	bv.validate.RegisterValidation("color_hex", func(fl validator.FieldLevel) bool {
		return colorHexPattern.MatchString(fl.Field().String())
	})
}

// validateEventBusinessRules validates variant-specific rules for event creation
func (bv *BusinessValidator) validateEventBusinessRules(req *EventCreateRequest) ValidationErrors {
	var errors ValidationErrors

	if req.EventType == models.EventTypeAssignment {
		if strings.TrimSpace(req.Subject) == "" {
			errors = append(errors, ValidationError{
				Field:   "subject",
				Message: "is required for assignment events",
				Value:   req.Subject,
				Rule:    "business_logic",
			})
		}
	}

	return errors
}

// ToValidationErrors converts validator.ValidationErrors into the API error shape
func ToValidationErrors(err error) ValidationErrors {
	var errors ValidationErrors

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return ValidationErrors{{Field: "request", Message: err.Error()}}
	}

	for _, fe := range fieldErrs {
		errors = append(errors, ValidationError{
			Field:   strings.ToLower(fe.Field()),
			Message: errorMessage(fe),
			Value:   fe.Value(),
			Rule:    fe.Tag(),
		})
	}

	return errors
}

// errorMessage returns user-friendly error messages
func errorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s", err.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", err.Param())
	case "event_title":
		return "must be between 1 and 200 characters"
	case "event_type":
		return "must be GENERAL or ASSIGNMENT"
	case "event_priority":
		return "must be a valid priority"
	case "event_status":
		return "must be a valid status"
	case "assignment_type":
		return "must be a valid assignment type"
	case "user_role":
		return "must be a valid user role"
	case "color_hex":
		return "must be a hex color like #2196F3"
	default:
		return fmt.Sprintf("validation failed for rule '%s'", err.Tag())
	}
}
