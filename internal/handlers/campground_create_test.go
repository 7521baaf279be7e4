package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hikersclub/campgrounds/internal/jwt"
	"github.com/hikersclub/campgrounds/internal/models"
	"github.com/hikersclub/campgrounds/internal/services"
)

// multipartBody builds a multipart form with fields and optional image
// file names.
func multipartBody(t *testing.T, fields map[string]string, imageNames []string) (*bytes.Buffer, string) {
	t.Helper()

	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	for _, name := range imageNames {
		fw, err := mw.CreateFormFile("images", name)
		require.NoError(t, err)
		_, err = fw.Write([]byte("fake image bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return buf, mw.FormDataContentType()
}

func authedTokener(ctrl *gomock.Controller, claims *jwt.Claims) *MockTokener {
	tok := NewMockTokener(ctrl)
	tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("signed", nil).AnyTimes()
	tok.EXPECT().GetClaims(gomock.Any(), "signed").Return(claims, nil).AnyTimes()
	return tok
}

func TestCampgroundCreateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	claims := &jwt.Claims{UserID: userID, TokenID: "token-1", ExpiresAt: time.Now().Add(time.Hour)}
	campgroundID := uuid.New()

	validFields := map[string]string{
		"title":       "Ridge Camp",
		"price":       "25",
		"description": "Quiet pines",
		"location":    "Moab, Utah",
	}

	tests := []struct {
		name             string
		fields           map[string]string
		imageNames       []string
		mockSetup        func(svc *MockCampgroundCreator, flashes *MockNoticePusher)
		expectedCode     int
		expectedLocation string
	}{
		{
			name:       "success with images",
			fields:     validFields,
			imageNames: []string{"one.jpg", "two.jpg"},
			mockSetup: func(svc *MockCampgroundCreator, flashes *MockNoticePusher) {
				svc.EXPECT().
					Create(gomock.Any(), userID, services.CampgroundInput{
						Title:       "Ridge Camp",
						Price:       25,
						Description: "Quiet pines",
						Location:    "Moab, Utah",
					}, gomock.Len(2)).
					Return(&models.Campground{
						CampgroundDB: models.CampgroundDB{CampgroundID: campgroundID},
					}, nil)
				flashes.EXPECT().Push(gomock.Any(), gomock.Any(), models.Flash{
					Kind:    models.FlashSuccess,
					Message: "Successfully created a new campground!",
				}).Return(nil)
			},
			expectedCode:     http.StatusSeeOther,
			expectedLocation: "/campgrounds/" + campgroundID.String(),
		},
		{
			name:   "success without images",
			fields: validFields,
			mockSetup: func(svc *MockCampgroundCreator, flashes *MockNoticePusher) {
				svc.EXPECT().
					Create(gomock.Any(), userID, gomock.Any(), gomock.Len(0)).
					Return(&models.Campground{
						CampgroundDB: models.CampgroundDB{CampgroundID: campgroundID},
					}, nil)
				flashes.EXPECT().Push(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedCode:     http.StatusSeeOther,
			expectedLocation: "/campgrounds/" + campgroundID.String(),
		},
		{
			name: "script payload rejected",
			fields: map[string]string{
				"title":       "<script>alert('gotcha')</script>",
				"price":       "25",
				"description": "Quiet pines",
				"location":    "Moab, Utah",
			},
			mockSetup: func(svc *MockCampgroundCreator, flashes *MockNoticePusher) {
				flashes.EXPECT().Push(gomock.Any(), gomock.Any(), models.Flash{
					Kind:    models.FlashError,
					Message: "title must not include HTML!",
				}).Return(nil)
			},
			expectedCode:     http.StatusSeeOther,
			expectedLocation: "/campgrounds/new",
		},
		{
			name: "negative price rejected",
			fields: map[string]string{
				"title":       "Ridge Camp",
				"price":       "-5",
				"description": "Quiet pines",
				"location":    "Moab, Utah",
			},
			mockSetup: func(svc *MockCampgroundCreator, flashes *MockNoticePusher) {
				flashes.EXPECT().Push(gomock.Any(), gomock.Any(), models.Flash{
					Kind:    models.FlashError,
					Message: "price must be greater than or equal to 0",
				}).Return(nil)
			},
			expectedCode:     http.StatusSeeOther,
			expectedLocation: "/campgrounds/new",
		},
		{
			name:   "geocoder has no match",
			fields: validFields,
			mockSetup: func(svc *MockCampgroundCreator, flashes *MockNoticePusher) {
				svc.EXPECT().
					Create(gomock.Any(), userID, gomock.Any(), gomock.Any()).
					Return(nil, services.ErrNoGeocodeResult)
			},
			expectedCode: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockCampgroundCreator(ctrl)
			mockFlashes := NewMockNoticePusher(ctrl)
			tt.mockSetup(mockSvc, mockFlashes)

			handler := NewCampgroundCreateHandler(mockSvc, authedTokener(ctrl, claims), mockFlashes)

			body, contentType := multipartBody(t, tt.fields, tt.imageNames)
			req := httptest.NewRequest(http.MethodPost, "/campgrounds", body)
			req.Header.Set("Content-Type", contentType)
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedLocation != "" {
				assert.Equal(t, tt.expectedLocation, rr.Header().Get("Location"))
			}
		})
	}
}

func TestCampgroundCreateHandler_Unauthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tok := NewMockTokener(ctrl)
	tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", assert.AnError)

	handler := NewCampgroundCreateHandler(NewMockCampgroundCreator(ctrl), tok, NewMockNoticePusher(ctrl))

	body, contentType := multipartBody(t, map[string]string{"title": "Ridge Camp"}, nil)
	req := httptest.NewRequest(http.MethodPost, "/campgrounds", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
