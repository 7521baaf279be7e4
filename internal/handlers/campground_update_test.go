package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/hikersclub/campgrounds/internal/jwt"
	"github.com/hikersclub/campgrounds/internal/models"
	"github.com/hikersclub/campgrounds/internal/services"
)

func TestCampgroundUpdateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	claims := &jwt.Claims{UserID: ownerID, TokenID: "token-1", ExpiresAt: time.Now().Add(time.Hour)}
	campgroundID := uuid.New()
	detailPage := "/campgrounds/" + campgroundID.String()

	owned := &models.CampgroundDB{
		CampgroundID: campgroundID,
		Title:        "Ridge Camp",
		AuthorID:     ownerID,
		Version:      3,
	}

	validFields := map[string]string{
		"title":       "Ridge Camp Revised",
		"price":       "30",
		"description": "Quiet pines, new firepits",
		"location":    "Moab, Utah",
	}

	tests := []struct {
		name             string
		fields           map[string]string
		mockSetup        func(svc *MockCampgroundUpdater, policy *MockCampgroundAuthorizer, flashes *MockNoticePusher)
		expectedCode     int
		expectedLocation string
	}{
		{
			name:   "success",
			fields: validFields,
			mockSetup: func(svc *MockCampgroundUpdater, policy *MockCampgroundAuthorizer, flashes *MockNoticePusher) {
				policy.EXPECT().AuthorizeCampground(gomock.Any(), campgroundID, ownerID).Return(owned, nil)
				svc.EXPECT().
					Update(gomock.Any(), owned, services.CampgroundInput{
						Title:       "Ridge Camp Revised",
						Price:       30,
						Description: "Quiet pines, new firepits",
						Location:    "Moab, Utah",
					}, gomock.Any(), gomock.Any()).
					Return(&models.Campground{CampgroundDB: *owned}, nil)
				flashes.EXPECT().Push(gomock.Any(), gomock.Any(), models.Flash{
					Kind:    models.FlashSuccess,
					Message: "Successfully updated campground!",
				}).Return(nil)
			},
			expectedCode:     http.StatusSeeOther,
			expectedLocation: detailPage,
		},
		{
			name:   "not the owner",
			fields: validFields,
			mockSetup: func(svc *MockCampgroundUpdater, policy *MockCampgroundAuthorizer, flashes *MockNoticePusher) {
				policy.EXPECT().AuthorizeCampground(gomock.Any(), campgroundID, ownerID).
					Return(nil, services.ErrNotOwner)
				flashes.EXPECT().Push(gomock.Any(), gomock.Any(), models.Flash{
					Kind:    models.FlashError,
					Message: "You do not have the permission to do that!",
				}).Return(nil)
			},
			expectedCode:     http.StatusSeeOther,
			expectedLocation: detailPage,
		},
		{
			name:   "campground gone",
			fields: validFields,
			mockSetup: func(svc *MockCampgroundUpdater, policy *MockCampgroundAuthorizer, flashes *MockNoticePusher) {
				policy.EXPECT().AuthorizeCampground(gomock.Any(), campgroundID, ownerID).
					Return(nil, services.ErrNotFound)
				flashes.EXPECT().Push(gomock.Any(), gomock.Any(), models.Flash{
					Kind:    models.FlashError,
					Message: "Cannot find that Campground",
				}).Return(nil)
			},
			expectedCode:     http.StatusSeeOther,
			expectedLocation: "/campgrounds",
		},
		{
			name: "validation failure keeps state",
			fields: map[string]string{
				"title":       "<em>styled</em>",
				"price":       "30",
				"description": "Quiet pines",
				"location":    "Moab, Utah",
			},
			mockSetup: func(svc *MockCampgroundUpdater, policy *MockCampgroundAuthorizer, flashes *MockNoticePusher) {
				policy.EXPECT().AuthorizeCampground(gomock.Any(), campgroundID, ownerID).Return(owned, nil)
				flashes.EXPECT().Push(gomock.Any(), gomock.Any(), models.Flash{
					Kind:    models.FlashError,
					Message: "title must not include HTML!",
				}).Return(nil)
			},
			expectedCode:     http.StatusSeeOther,
			expectedLocation: detailPage,
		},
		{
			name:   "lost concurrent edit",
			fields: validFields,
			mockSetup: func(svc *MockCampgroundUpdater, policy *MockCampgroundAuthorizer, flashes *MockNoticePusher) {
				policy.EXPECT().AuthorizeCampground(gomock.Any(), campgroundID, ownerID).Return(owned, nil)
				svc.EXPECT().
					Update(gomock.Any(), owned, gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, services.ErrVersionConflict)
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockCampgroundUpdater(ctrl)
			mockPolicy := NewMockCampgroundAuthorizer(ctrl)
			mockFlashes := NewMockNoticePusher(ctrl)
			tt.mockSetup(mockSvc, mockPolicy, mockFlashes)

			handler := NewCampgroundUpdateHandler(mockSvc, mockPolicy, authedTokener(ctrl, claims), mockFlashes)

			body, contentType := multipartBody(t, tt.fields, nil)
			req := httptest.NewRequest(http.MethodPut, detailPage, body)
			req.Header.Set("Content-Type", contentType)
			req = withURLParams(req, map[string]string{"campgroundID": campgroundID.String()})
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedLocation != "" {
				assert.Equal(t, tt.expectedLocation, rr.Header().Get("Location"))
			}
		})
	}
}
