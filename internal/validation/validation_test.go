package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCampground_Valid(t *testing.T) {
	price, err := Campground(CampgroundPayload{
		Title:       "Ridge Camp",
		Price:       "20",
		Description: "A quiet spot above the valley",
		Location:    "Yosemite, CA",
	})
	assert.NoError(t, err)
	assert.Equal(t, 20.0, price)
}

func TestCampground_Invalid(t *testing.T) {
	tests := []struct {
		name        string
		payload     CampgroundPayload
		wantMessage string
	}{
		{
			name: "missing title",
			payload: CampgroundPayload{
				Price:       "10",
				Description: "desc",
				Location:    "loc",
			},
			wantMessage: "title is required",
		},
		{
			name: "script in title",
			payload: CampgroundPayload{
				Title:       "<script>alert(1)</script>",
				Price:       "10",
				Description: "desc",
				Location:    "loc",
			},
			wantMessage: "title must not include HTML!",
		},
		{
			name: "script in description",
			payload: CampgroundPayload{
				Title:       "Camp",
				Price:       "10",
				Description: "nice <script>steal()</script> view",
				Location:    "loc",
			},
			wantMessage: "description must not include HTML!",
		},
		{
			name: "img tag in location",
			payload: CampgroundPayload{
				Title:       "Camp",
				Price:       "10",
				Description: "desc",
				Location:    `<img src=x onerror=alert(1)>`,
			},
			wantMessage: "location must not include HTML!",
		},
		{
			name: "price not a number",
			payload: CampgroundPayload{
				Title:       "Camp",
				Price:       "twenty",
				Description: "desc",
				Location:    "loc",
			},
			wantMessage: "price must be a number",
		},
		{
			name: "negative price",
			payload: CampgroundPayload{
				Title:       "Camp",
				Price:       "-5",
				Description: "desc",
				Location:    "loc",
			},
			wantMessage: "price must be greater than or equal to 0",
		},
		{
			name:        "everything missing",
			payload:     CampgroundPayload{},
			wantMessage: "title is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Campground(tt.payload)
			assert.Error(t, err)

			var verr *Error
			assert.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Messages, tt.wantMessage)
		})
	}
}

func TestCampground_JoinsAllMessages(t *testing.T) {
	_, err := Campground(CampgroundPayload{
		Title: "<b>bold</b>",
		Price: "-1",
	})
	assert.Error(t, err)

	var verr *Error
	assert.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Messages, 4)
	assert.Contains(t, err.Error(), ",")
}

func TestReview_Valid(t *testing.T) {
	rating, err := Review(ReviewPayload{Rating: "5", Body: "Great campground"})
	assert.NoError(t, err)
	assert.Equal(t, 5, rating)
}

func TestReview_Invalid(t *testing.T) {
	tests := []struct {
		name        string
		payload     ReviewPayload
		wantMessage string
	}{
		{"missing rating", ReviewPayload{Body: "ok"}, "rating is required"},
		{"rating not integer", ReviewPayload{Rating: "4.5", Body: "ok"}, "rating must be an integer"},
		{"rating too low", ReviewPayload{Rating: "0", Body: "ok"}, "rating must be between 1 and 5"},
		{"rating too high", ReviewPayload{Rating: "6", Body: "ok"}, "rating must be between 1 and 5"},
		{"missing body", ReviewPayload{Rating: "3"}, "body is required"},
		{"script in body", ReviewPayload{Rating: "3", Body: "nice <script>x()</script>"}, "body must not include HTML!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Review(tt.payload)
			assert.Error(t, err)

			var verr *Error
			assert.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Messages, tt.wantMessage)
		})
	}
}
