package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"gear-garage-backend/internal/api/handlers"
	"gear-garage-backend/internal/assembly"
	"gear-garage-backend/internal/database/models"
	apperrors "gear-garage-backend/internal/errors"
	"gear-garage-backend/internal/mocks"
	"gear-garage-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// BuildHandlerTestSuite defines the test suite for BuildHandler
type BuildHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockBuildSv *mocks.MockBuildServiceInterface
	handler     *handlers.BuildHandler
	router      *gin.Engine
}

func (suite *BuildHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockBuildSv = mocks.NewMockBuildServiceInterface(suite.ctrl)
	suite.handler = handlers.NewBuildHandler(suite.mockBuildSv)

	suite.router = gin.New()
	suite.router.POST("/builds/temp", suite.handler.CreateBuild)
	suite.router.POST("/builds/validate", suite.handler.ValidateBuild)
	suite.router.GET("/builds/:token", suite.handler.GetBuild)
	suite.router.PATCH("/builds/:token", suite.handler.UpdateBuild)
	suite.router.POST("/builds/:token/promote", suite.handler.PromoteBuild)
}

func (suite *BuildHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *BuildHandlerTestSuite) TestCreateBuild_Success() {
	resp := &service.CreateBuildResponse{
		Token: "abc123",
		Build: service.BuildResponse{
			Status: models.BuildStatusTemp,
			Title:  "My quad",
			Parts:  []service.BuildPartResponse{},
		},
	}
	suite.mockBuildSv.EXPECT().CreateTemp(gomock.Any()).Return(resp, nil)

	body, _ := json.Marshal(service.CreateBuildRequest{Title: "My quad"})
	req := httptest.NewRequest(http.MethodPost, "/builds/temp", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var got service.CreateBuildResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), "abc123", got.Token)
	assert.Equal(suite.T(), "My quad", got.Build.Title)
}

func (suite *BuildHandlerTestSuite) TestCreateBuild_InvalidJSON() {
	req := httptest.NewRequest(http.MethodPost, "/builds/temp", bytes.NewReader([]byte("{not-json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *BuildHandlerTestSuite) TestGetBuild_Success() {
	resp := &service.BuildResponse{
		Status: models.BuildStatusShared,
		Title:  "Shared quad",
		Parts:  []service.BuildPartResponse{},
	}
	suite.mockBuildSv.EXPECT().GetByToken("tok").Return(resp, nil)

	req := httptest.NewRequest(http.MethodGet, "/builds/tok", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "Shared quad")
}

func (suite *BuildHandlerTestSuite) TestGetBuild_NotFound() {
	suite.mockBuildSv.EXPECT().GetByToken("nope").Return(nil, apperrors.ErrBuildNotFound)

	req := httptest.NewRequest(http.MethodGet, "/builds/nope", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *BuildHandlerTestSuite) TestUpdateBuild_Success() {
	resp := &service.BuildResponse{
		Status: models.BuildStatusTemp,
		Title:  "Renamed",
		Parts:  []service.BuildPartResponse{},
	}
	suite.mockBuildSv.EXPECT().Update("tok", gomock.Any()).Return(resp, nil)

	body, _ := json.Marshal(map[string]string{"title": "Renamed"})
	req := httptest.NewRequest(http.MethodPatch, "/builds/tok", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "Renamed")
}

func (suite *BuildHandlerTestSuite) TestUpdateBuild_AlreadyShared() {
	suite.mockBuildSv.EXPECT().Update("tok", gomock.Any()).Return(nil, apperrors.ErrBuildAlreadyShared)

	body, _ := json.Marshal(map[string]string{"title": "Renamed"})
	req := httptest.NewRequest(http.MethodPatch, "/builds/tok", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *BuildHandlerTestSuite) TestPromoteBuild_Success() {
	resp := &service.PromoteBuildResponse{
		Token: "newtok",
		URL:   "https://gear-garage.example.com/builds/newtok",
		Build: service.BuildResponse{
			Status: models.BuildStatusShared,
			Parts:  []service.BuildPartResponse{},
		},
	}
	suite.mockBuildSv.EXPECT().Promote("tok").Return(resp, nil)

	req := httptest.NewRequest(http.MethodPost, "/builds/tok/promote", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.PromoteBuildResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), "newtok", got.Token)
	assert.Equal(suite.T(), "https://gear-garage.example.com/builds/newtok", got.URL)
}

func (suite *BuildHandlerTestSuite) TestPromoteBuild_ConsumedToken() {
	suite.mockBuildSv.EXPECT().Promote("used").Return(nil, apperrors.ErrBuildNotFound)

	req := httptest.NewRequest(http.MethodPost, "/builds/used/promote", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *BuildHandlerTestSuite) TestValidateBuild_Failures() {
	suite.mockBuildSv.EXPECT().Validate(gomock.Any()).Return(&service.ValidateBuildResponse{
		Valid: false,
		Failures: []assembly.Failure{
			{Category: "power-stack", Message: "power stack incomplete: select an AIO, or both a flight controller and an ESC"},
		},
	}, nil)

	body, _ := json.Marshal(service.ValidateBuildRequest{})
	req := httptest.NewRequest(http.MethodPost, "/builds/validate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), `"valid":false`)
}

func (suite *BuildHandlerTestSuite) TestValidateBuild_BadCategory() {
	suite.mockBuildSv.EXPECT().Validate(gomock.Any()).Return(nil, apperrors.NewValidationError("gear_category", `unknown gear category "gps"`))

	body, _ := json.Marshal(service.ValidateBuildRequest{
		Parts: []service.BuildPartRequest{{GearCategory: "gps", CatalogItemID: "id"}},
	})
	req := httptest.NewRequest(http.MethodPost, "/builds/validate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func TestBuildHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(BuildHandlerTestSuite))
}
