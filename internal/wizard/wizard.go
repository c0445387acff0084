package wizard

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Step is a stage of the post-property flow.
type Step int

const (
	StepGeneral Step = iota
	StepAddress
	StepGallery
	StepConfirmation
)

func (s Step) String() string {
	switch s {
	case StepGeneral:
		return "general"
	case StepAddress:
		return "address"
	case StepGallery:
		return "gallery"
	case StepConfirmation:
		return "confirmation"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

var (
	// ErrNoImages rejects submission of a listing without a single photo.
	ErrNoImages = errors.New("no_images")

	// ErrTermsNotAccepted rejects submission before the terms checkbox.
	ErrTermsNotAccepted = errors.New("terms_not_accepted")

	// ErrIncomplete rejects submission before the confirmation step.
	ErrIncomplete = errors.New("wizard_incomplete")
)

// Image is an uploaded photo held inline until submission.
type Image struct {
	Name     string `json:"name" validate:"required"`
	MimeType string `json:"mime_type" validate:"required"`
	Data     []byte `json:"data" validate:"required"`
}

// Form accumulates the draft listing across steps. Validation tags are
// checked per step via StructPartial, then in full at submission.
type Form struct {
	// General
	Title       string  `validate:"required,min=1,max=255"`
	Description string  `validate:"required,min=1,max=5000"`
	Type        string  `validate:"required,oneof=house apartment condo townhouse"`
	Status      string  `validate:"required,oneof=for-sale for-rent sold pending"`
	Price       int     `validate:"required,gt=0"`
	Bedrooms    int     `validate:"gte=0"`
	Bathrooms   float64 `validate:"gte=0"`
	SquareFeet  int     `validate:"required,gt=0"`

	// Address
	Address string `validate:"required,min=1,max=255"`
	City    string `validate:"required,min=1,max=100"`
	State   string `validate:"required,min=1,max=50"`
	ZipCode string `validate:"required,min=1,max=20"`

	// Gallery
	Images    []Image `validate:"dive"`
	Amenities []string

	// Confirmation
	TermsAccepted bool
}

// stepFields names the Form fields each step owns, for partial validation.
var stepFields = map[Step][]string{
	StepGeneral: {"Title", "Description", "Type", "Status", "Price", "Bedrooms", "Bathrooms", "SquareFeet"},
	StepAddress: {"Address", "City", "State", "ZipCode"},
	StepGallery: {"Images"},
}

// Submitter receives the completed draft. The HTTP implementation posts it
// to the listings endpoint with the caller's session token.
type Submitter interface {
	Submit(ctx context.Context, form *Form) error
}

// Wizard is the linear step machine over one accumulated form.
type Wizard struct {
	validate  *validator.Validate
	submitter Submitter

	step Step
	form Form
}

func New(submitter Submitter) *Wizard {
	return &Wizard{
		validate:  validator.New(),
		submitter: submitter,
		step:      StepGeneral,
	}
}

// Step reports the current stage.
func (w *Wizard) Step() Step {
	return w.step
}

// Form returns a copy of the accumulated draft.
func (w *Wizard) Form() Form {
	return w.form
}

// SetGeneral fills the first step's fields.
func (w *Wizard) SetGeneral(title, description, propType, status string, price, bedrooms int, bathrooms float64, squareFeet int) {
	w.form.Title = title
	w.form.Description = description
	w.form.Type = propType
	w.form.Status = status
	w.form.Price = price
	w.form.Bedrooms = bedrooms
	w.form.Bathrooms = bathrooms
	w.form.SquareFeet = squareFeet
}

// SetAddress fills the second step's fields.
func (w *Wizard) SetAddress(address, city, state, zipCode string) {
	w.form.Address = address
	w.form.City = city
	w.form.State = state
	w.form.ZipCode = zipCode
}

// SetAmenities replaces the amenity list.
func (w *Wizard) SetAmenities(amenities []string) {
	w.form.Amenities = amenities
}

// AddImage appends a photo to the gallery step.
func (w *Wizard) AddImage(name, mimeType string, data []byte) {
	w.form.Images = append(w.form.Images, Image{Name: name, MimeType: mimeType, Data: data})
}

// RemoveImage drops the photo at index; out-of-range indexes are ignored.
func (w *Wizard) RemoveImage(index int) {
	if index < 0 || index >= len(w.form.Images) {
		return
	}
	w.form.Images = append(w.form.Images[:index], w.form.Images[index+1:]...)
}

// AcceptTerms records the confirmation checkbox.
func (w *Wizard) AcceptTerms(accepted bool) {
	w.form.TermsAccepted = accepted
}

// Next validates only the current step's fields and advances on success.
// Validation failure leaves the step unchanged.
func (w *Wizard) Next() error {
	if w.step >= StepConfirmation {
		return nil
	}
	if fields := stepFields[w.step]; len(fields) > 0 {
		if err := w.validate.StructPartial(w.form, fields...); err != nil {
			return err
		}
	}
	w.step++
	return nil
}

// Back rewinds one step unconditionally; entered data is kept.
func (w *Wizard) Back() {
	if w.step > StepGeneral {
		w.step--
	}
}

// Submit checks the completion preconditions and hands the draft to the
// submitter. Any failure leaves the wizard state untouched so the user can
// fix the draft and retry.
func (w *Wizard) Submit(ctx context.Context) error {
	if w.step != StepConfirmation {
		return ErrIncomplete
	}
	if len(w.form.Images) == 0 {
		return ErrNoImages
	}
	if !w.form.TermsAccepted {
		return ErrTermsNotAccepted
	}
	if err := w.validate.Struct(w.form); err != nil {
		return err
	}
	return w.submitter.Submit(ctx, &w.form)
}
