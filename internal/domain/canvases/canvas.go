package canvases

import "time"

// Canvas is one course-planning document. Fields are total: the store layer
// normalizes nullable columns before a Canvas is built, so "" stands in for
// an absent owner or origin reference. An empty OwnerUserID never matches an
// acting user, which is what makes unowned seed canvases fork-on-write for
// everyone.
type Canvas struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	OwnerUserID      string    `json:"user_id,omitempty"`
	Gradient         int       `json:"gradient"`
	Version          string    `json:"version"`
	IsPublic         bool      `json:"is_public"`
	OriginalCanvasID string    `json:"original_canvas_id,omitempty"`
	Content          Content   `json:"content"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Content holds the fixed set of rich-text sections of the planning
// framework. Any string, including empty, is valid; there is no cross-field
// validation.
type Content struct {
	Domain           string `json:"domain"`
	PotentialUseCase string `json:"potential_use_case"`
	DomainData       string `json:"domain_data"`
	Implications     string `json:"implications"`
	Resources        string `json:"resources"`
	Learners         string `json:"learners"`
	Instructors      string `json:"instructors"`
	Support          string `json:"support"`
	Outcomes         string `json:"outcomes"`
	Assessment       string `json:"assessment"`
	Activities       string `json:"activities"`
}

// Metadata carries the independently mutable attributes of a save request.
// Nil means "not provided"; a provided value equal to the stored one is a
// no-op.
type Metadata struct {
	Title    *string `json:"title"`
	Version  *string `json:"version"`
	IsPublic *bool   `json:"is_public"`
}

// DefaultVersion is applied when a source canvas carries no version label.
const DefaultVersion = "1.0"

// merged returns updates with every empty field backfilled from src.
func merged(updates, src Content) Content {
	return Content{
		Domain:           firstNonEmpty(updates.Domain, src.Domain),
		PotentialUseCase: firstNonEmpty(updates.PotentialUseCase, src.PotentialUseCase),
		DomainData:       firstNonEmpty(updates.DomainData, src.DomainData),
		Implications:     firstNonEmpty(updates.Implications, src.Implications),
		Resources:        firstNonEmpty(updates.Resources, src.Resources),
		Learners:         firstNonEmpty(updates.Learners, src.Learners),
		Instructors:      firstNonEmpty(updates.Instructors, src.Instructors),
		Support:          firstNonEmpty(updates.Support, src.Support),
		Outcomes:         firstNonEmpty(updates.Outcomes, src.Outcomes),
		Assessment:       firstNonEmpty(updates.Assessment, src.Assessment),
		Activities:       firstNonEmpty(updates.Activities, src.Activities),
	}
}

func firstNonEmpty(s ...string) string {
	for _, v := range s {
		if v != "" {
			return v
		}
	}
	return ""
}
