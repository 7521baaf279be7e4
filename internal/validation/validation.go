package validation

import (
	"strconv"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strict strips every tag and attribute, so any payload containing
// markup sanitizes to a different string than the input.
var strict = bluemonday.StrictPolicy()

// Error carries all validation messages for a rejected write payload.
type Error struct {
	Messages []string
}

func (e *Error) Error() string {
	return strings.Join(e.Messages, ",")
}

// CampgroundPayload is a campground write payload before validation.
// Price arrives as the raw form value so "not a number" is a
// validation failure rather than a decode failure.
type CampgroundPayload struct {
	Title       string
	Price       string
	Description string
	Location    string
}

// ReviewPayload is a review write payload before validation.
type ReviewPayload struct {
	Rating string
	Body   string
}

// htmlFree reports whether stripping tags and attributes leaves the
// value unchanged.
func htmlFree(value string) bool {
	return strict.Sanitize(value) == value
}

// Campground schema-checks a campground write payload and returns the
// parsed price. The write must never be attempted when err != nil.
func Campground(p CampgroundPayload) (price float64, err error) {
	var messages []string

	if strings.TrimSpace(p.Title) == "" {
		messages = append(messages, "title is required")
	} else if !htmlFree(p.Title) {
		messages = append(messages, "title must not include HTML!")
	}

	if strings.TrimSpace(p.Price) == "" {
		messages = append(messages, "price is required")
	} else if price, err = strconv.ParseFloat(p.Price, 64); err != nil {
		messages = append(messages, "price must be a number")
		err = nil
	} else if price < 0 {
		messages = append(messages, "price must be greater than or equal to 0")
	}

	if strings.TrimSpace(p.Description) == "" {
		messages = append(messages, "description is required")
	} else if !htmlFree(p.Description) {
		messages = append(messages, "description must not include HTML!")
	}

	if strings.TrimSpace(p.Location) == "" {
		messages = append(messages, "location is required")
	} else if !htmlFree(p.Location) {
		messages = append(messages, "location must not include HTML!")
	}

	if len(messages) > 0 {
		return 0, &Error{Messages: messages}
	}
	return price, nil
}

// Review schema-checks a review write payload and returns the parsed
// rating. The write must never be attempted when err != nil.
func Review(p ReviewPayload) (rating int, err error) {
	var messages []string

	if strings.TrimSpace(p.Rating) == "" {
		messages = append(messages, "rating is required")
	} else if rating, err = strconv.Atoi(p.Rating); err != nil {
		messages = append(messages, "rating must be an integer")
		err = nil
	} else if rating < 1 || rating > 5 {
		messages = append(messages, "rating must be between 1 and 5")
	}

	if strings.TrimSpace(p.Body) == "" {
		messages = append(messages, "body is required")
	} else if !htmlFree(p.Body) {
		messages = append(messages, "body must not include HTML!")
	}

	if len(messages) > 0 {
		return 0, &Error{Messages: messages}
	}
	return rating, nil
}
