package complaint

import (
	"path"
	"strings"

	"github.com/civicvoice/civicvoice-backend/internal/domain"
)

// allowedPhotoExts are the accepted photo file extensions. Only the
// extension is validated here; upload handling is external.
var allowedPhotoExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

// CreateInput holds parameters for filing a complaint.
type CreateInput struct {
	Title       string
	Description string
	CategoryID  *int64
	WardID      int64
	Latitude    *float64
	Longitude   *float64
	Address     string
	PhotoURL    *string
}

// Validate validates the creation input. Ward existence is checked
// separately against the catalog.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.Title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(i.Title) > 255 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}

	if i.Description == "" {
		errs = append(errs, domain.FieldError{Field: "description", Message: "required"})
	}

	if i.WardID <= 0 {
		errs = append(errs, domain.FieldError{Field: "ward_id", Message: "required"})
	}

	if i.CategoryID != nil && *i.CategoryID <= 0 {
		errs = append(errs, domain.FieldError{Field: "category_id", Message: "invalid"})
	}

	if i.Latitude != nil && (*i.Latitude < -90 || *i.Latitude > 90) {
		errs = append(errs, domain.FieldError{Field: "latitude", Message: "out of range"})
	}
	if i.Longitude != nil && (*i.Longitude < -180 || *i.Longitude > 180) {
		errs = append(errs, domain.FieldError{Field: "longitude", Message: "out of range"})
	}

	if i.PhotoURL != nil {
		ext := strings.ToLower(path.Ext(*i.PhotoURL))
		if !allowedPhotoExts[ext] {
			errs = append(errs, domain.FieldError{Field: "photo_url", Message: "only jpg, jpeg, png, gif allowed"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateStatusInput holds parameters for a status/assignment mutation.
// Department and AssignedTo are tri-state: leave unchanged, assign, or
// explicitly clear.
type UpdateStatusInput struct {
	Status          domain.ComplaintStatus
	ResolutionNotes *string
	Department      domain.RefChange
	AssignedTo      domain.RefChange
}

// Validate validates the update input.
func (i UpdateStatusInput) Validate() error {
	var errs []domain.FieldError

	if !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be pending, in_progress or resolved"})
	}
	if i.Department.Set && i.Department.ID != nil && *i.Department.ID <= 0 {
		errs = append(errs, domain.FieldError{Field: "department_id", Message: "invalid"})
	}
	if i.AssignedTo.Set && i.AssignedTo.ID != nil && *i.AssignedTo.ID <= 0 {
		errs = append(errs, domain.FieldError{Field: "assigned_to", Message: "invalid"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
