package catalog

import (
	"fmt"
	"strings"

	"karthika_back_end/internal/models"
)

// FieldError is one validation failure, addressed to the offending field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string { return e.Field + ": " + e.Message }

// Validate checks a product against its kind's definition. With partial set
// (PUT), required-field checks only fire for fields the payload actually
// carries; constraints on present values always apply.
func Validate(def *Definition, p *models.Product, partial bool) []FieldError {
	var errs []FieldError
	add := func(field, message string) { errs = append(errs, FieldError{Field: field, Message: message}) }

	if p.Name == "" && !partial {
		add("name", fmt.Sprintf("Please add a %s name", strings.ToLower(def.Label)))
	}
	if def.NameMaxLen > 0 && len(p.Name) > def.NameMaxLen {
		add("name", fmt.Sprintf("Name cannot be more than %d characters", def.NameMaxLen))
	}
	if p.Description == "" && !partial {
		add("description", "Please add a description")
	}
	if def.DescriptionMaxLen > 0 && len(p.Description) > def.DescriptionMaxLen {
		add("description", fmt.Sprintf("Description cannot be more than %d characters", def.DescriptionMaxLen))
	}
	if !partial {
		if p.Price == 0 {
			add("price", "Please add a price")
		}
		if p.MRP == 0 {
			add("mrp", "Please add an MRP")
		}
	}
	if p.Price < 0 {
		add("price", "Price cannot be negative")
	}
	if p.MRP < 0 {
		add("mrp", "MRP cannot be negative")
	}
	if p.Rating < 0 || p.Rating > 5 {
		add("rating", "Rating must be between 0 and 5")
	}
	if p.Reviews < 0 {
		add("reviews", "Reviews cannot be negative")
	}

	if def.RequireBrand && p.Brand == "" && !partial {
		add("brand", "Please add a brand name")
	}
	if len(def.Brands) > 0 && p.Brand != "" && !contains(def.Brands, p.Brand) {
		add("brand", fmt.Sprintf("'%s' is not a valid brand", p.Brand))
	}
	if def.RequireCategory && p.Category == "" && !partial {
		add("category", "Please add a category")
	}
	if len(def.Categories) > 0 && p.Category != "" && !contains(def.Categories, p.Category) {
		add("category", fmt.Sprintf("'%s' is not a valid category", p.Category))
	}
	if len(def.Badges) > 0 && p.Badge != "" && !contains(def.Badges, p.Badge) {
		add("badge", fmt.Sprintf("'%s' is not a valid badge", p.Badge))
	}
	if def.RequireModel && p.Model == "" && !partial {
		add("model", "Please add a model")
	}
	if def.RequireImages && len(p.Images) == 0 && !partial {
		add("images", "At least one image is required")
	}
	if def.RequireChannels {
		if p.Channels == 0 && !partial {
			add("channels", "Please add number of channels")
		} else if p.Channels < 0 {
			add("channels", "Channels must be at least 1")
		}
	}
	if def.RequireCameras {
		if p.Cameras == 0 && !partial {
			add("cameras", "Please add number of cameras")
		} else if p.Cameras < 0 {
			add("cameras", "Cameras must be at least 1")
		}
	}
	return errs
}

// Messages flattens field errors into the response error list.
func Messages(errs []FieldError) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Message)
	}
	return out
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
