package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// RegisterForm is the sign-up payload. Validation happens on the client
// before the request goes out so the reader gets immediate feedback.
type RegisterForm struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	StudentID string `json:"studentId" validate:"required"`
	Phone     string `json:"phone,omitempty"`
}

func (f *RegisterForm) Validate() error {
	return readableError(validate.Struct(f))
}

// BookForm is the admin create/edit payload.
type BookForm struct {
	Title           string  `validate:"required"`
	Author          string  `validate:"required"`
	ISBN            string  `validate:"omitempty,min=10"`
	Genre           string  `validate:"required,oneof=Fiction Fantasy Mystery Science Romance History"`
	Rating          float64 `validate:"gte=0,lte=5"`
	TotalCopies     int     `validate:"gte=0"`
	AvailableCopies int     `validate:"gte=0,ltefield=TotalCopies"`
	Description     string
}

func (f *BookForm) Validate() error {
	return readableError(validate.Struct(f))
}

// Book converts the validated form into a catalogue record.
func (f *BookForm) Book() Book {
	return Book{
		Title:           f.Title,
		Author:          f.Author,
		ISBN:            f.ISBN,
		Genre:           f.Genre,
		Rating:          f.Rating,
		TotalCopies:     f.TotalCopies,
		AvailableCopies: f.AvailableCopies,
		Description:     f.Description,
	}
}

// readableError flattens validator output into a single prompt-friendly
// message. Non-validation errors pass through unchanged.
func readableError(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			parts = append(parts, fmt.Sprintf("%s is required", fe.Field()))
		case "email":
			parts = append(parts, fmt.Sprintf("%s must be a valid email", fe.Field()))
		case "min":
			parts = append(parts, fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param()))
		case "oneof":
			parts = append(parts, fmt.Sprintf("%s must be one of %s", fe.Field(), fe.Param()))
		case "ltefield":
			parts = append(parts, fmt.Sprintf("%s cannot exceed %s", fe.Field(), fe.Param()))
		case "gte", "lte":
			parts = append(parts, fmt.Sprintf("%s is out of range", fe.Field()))
		default:
			parts = append(parts, fmt.Sprintf("%s is invalid", fe.Field()))
		}
	}
	return errors.New(strings.Join(parts, "; "))
}
