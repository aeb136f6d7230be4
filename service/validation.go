package service

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"business-simulator/domain"
)

// ErrInvalidInput is wrapped by every validation failure.
var ErrInvalidInput = errors.New("invalid input")

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists every rejected field of a request.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrInvalidInput.Error()
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return fmt.Sprintf("%s: %s", ErrInvalidInput, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// InputValidator checks inputs before they reach the engine, which
// itself assumes positive finite values.
type InputValidator struct {
	validate *validator.Validate
}

func NewInputValidator() *InputValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return &InputValidator{validate: v}
}

// Validate returns a *ValidationError when any field is out of range.
func (iv *InputValidator) Validate(inputs domain.BusinessInputs) error {
	var fields []FieldError

	if err := iv.validate.Struct(inputs); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("validating inputs: %w", err)
		}
		for _, fe := range verrs {
			fields = append(fields, FieldError{
				Field:   fe.Field(),
				Message: describeTag(fe.Tag(), fe.Param()),
			})
		}
	}

	ceilings := []struct {
		field string
		value float64
		max   float64
	}{
		{"initialInvestment", inputs.InitialInvestment, MaxInvestment},
		{"monthlyFixedCost", inputs.MonthlyFixedCost, MaxMonthlyCost},
		{"variableCostPerUnit", inputs.VariableCostPerUnit, MaxUnitAmount},
		{"sellingPricePerUnit", inputs.SellingPricePerUnit, MaxUnitAmount},
		{"monthlySalesVolume", inputs.MonthlySalesVolume, MaxMonthlyVolume},
	}
	for _, c := range ceilings {
		if math.IsInf(c.value, 0) || c.value > c.max {
			fields = append(fields, FieldError{
				Field:   c.field,
				Message: fmt.Sprintf("must not exceed %s", FormatWhole(c.max)),
			})
		}
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// ValidateRequest validates the inputs and scenario of a request.
func (iv *InputValidator) ValidateRequest(req domain.SimulationRequest) error {
	err := iv.Validate(req.Inputs)
	if req.Scenario.Valid() {
		return err
	}

	scenarioErr := FieldError{Field: "scenario", Message: "unknown scenario"}
	var verr *ValidationError
	if errors.As(err, &verr) {
		verr.Fields = append(verr.Fields, scenarioErr)
		return verr
	}
	if err != nil {
		return err
	}
	return &ValidationError{Fields: []FieldError{scenarioErr}}
}

func describeTag(tag, param string) string {
	switch tag {
	case "gt":
		return "must be greater than " + param
	case "gte":
		return "must be at least " + param
	case "lte":
		return "must be at most " + param
	}
	return "failed " + tag + " check"
}
