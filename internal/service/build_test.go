package service_test

import (
	"errors"
	"testing"
	"time"

	"gear-garage-backend/internal/config"
	"gear-garage-backend/internal/database/models"
	apperrors "gear-garage-backend/internal/errors"
	"gear-garage-backend/internal/mocks"
	"gear-garage-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type BuildServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockBuildRepo *mocks.MockBuildRepositoryInterface
	mockItemRepo  *mocks.MockCatalogItemRepositoryInterface
	buildService  *service.BuildService
	validator     *validator.Validate
}

func (suite *BuildServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockBuildRepo = mocks.NewMockBuildRepositoryInterface(suite.ctrl)
	suite.mockItemRepo = mocks.NewMockCatalogItemRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()
	cfg := &config.Config{
		TempBuildTTLHours: 72,
		ShareBaseURL:      "https://gear-garage.example.com/",
	}
	suite.buildService = service.NewBuildService(suite.mockBuildRepo, suite.mockItemRepo, suite.validator, cfg)
}

func (suite *BuildServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *BuildServiceTestSuite) newCatalogItem(category models.GearCategory) *models.CatalogItem {
	return &models.CatalogItem{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		GearCategory: category,
		Brand:        "GEPRC",
		ModelName:    "Mark5",
		Status:       models.CatalogItemStatusActive,
	}
}

func (suite *BuildServiceTestSuite) tempBuild(token string, parts models.PartList) *models.Build {
	expires := time.Now().Add(time.Hour)
	return &models.Build{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		AccessToken: token,
		Status:      models.BuildStatusTemp,
		Title:       "My quad",
		Parts:       parts,
		ExpiresAt:   &expires,
	}
}

func (suite *BuildServiceTestSuite) TestCreateTemp_Success() {
	frame := suite.newCatalogItem(models.GearCategoryFrame)
	suite.mockItemRepo.EXPECT().GetByID(frame.ID).Return(frame, nil)

	var created *models.Build
	suite.mockBuildRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(b *models.Build) error {
		created = b
		return nil
	})

	resp, err := suite.buildService.CreateTemp(&service.CreateBuildRequest{
		Title: "My quad",
		Parts: []service.BuildPartRequest{
			{GearCategory: "frame", CatalogItemID: frame.ID.String()},
		},
	})

	assert.NoError(suite.T(), err)
	assert.NotEmpty(suite.T(), resp.Token)
	assert.Len(suite.T(), resp.Token, 64)
	assert.Equal(suite.T(), models.BuildStatusTemp, resp.Build.Status)
	assert.False(suite.T(), resp.Build.Verified)
	assert.NotNil(suite.T(), created.ExpiresAt)
	assert.Equal(suite.T(), resp.Token, created.AccessToken)
	assert.Equal(suite.T(), "GEPRC", created.Parts[models.GearCategoryFrame].Snapshot.Brand)
}

func (suite *BuildServiceTestSuite) TestCreateTemp_MissingTitle() {
	_, err := suite.buildService.CreateTemp(&service.CreateBuildRequest{})

	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

func (suite *BuildServiceTestSuite) TestCreateTemp_UnknownCatalogItem() {
	missing := uuid.New()
	suite.mockItemRepo.EXPECT().GetByID(missing).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.buildService.CreateTemp(&service.CreateBuildRequest{
		Title: "My quad",
		Parts: []service.BuildPartRequest{
			{GearCategory: "frame", CatalogItemID: missing.String()},
		},
	})

	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *BuildServiceTestSuite) TestCreateTemp_CategoryMismatch() {
	motor := suite.newCatalogItem(models.GearCategoryMotor)
	suite.mockItemRepo.EXPECT().GetByID(motor.ID).Return(motor, nil)

	_, err := suite.buildService.CreateTemp(&service.CreateBuildRequest{
		Title: "My quad",
		Parts: []service.BuildPartRequest{
			{GearCategory: "frame", CatalogItemID: motor.ID.String()},
		},
	})

	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *BuildServiceTestSuite) TestGetByToken_Success() {
	build := suite.tempBuild("tok", models.PartList{})
	suite.mockBuildRepo.EXPECT().GetByToken("tok").Return(build, nil)

	resp, err := suite.buildService.GetByToken("tok")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "My quad", resp.Title)
	assert.NotNil(suite.T(), resp.ExpiresAt)
}

func (suite *BuildServiceTestSuite) TestGetByToken_Unknown() {
	suite.mockBuildRepo.EXPECT().GetByToken("nope").Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.buildService.GetByToken("nope")

	assert.Equal(suite.T(), apperrors.ErrBuildNotFound, err)
}

func (suite *BuildServiceTestSuite) TestGetByToken_ExpiredBehavesAsUnknown() {
	build := suite.tempBuild("tok", models.PartList{})
	expired := time.Now().Add(-time.Minute)
	build.ExpiresAt = &expired
	suite.mockBuildRepo.EXPECT().GetByToken("tok").Return(build, nil)

	_, err := suite.buildService.GetByToken("tok")

	assert.Equal(suite.T(), apperrors.ErrBuildNotFound, err)
}

func (suite *BuildServiceTestSuite) TestUpdate_Success() {
	build := suite.tempBuild("tok", models.PartList{})
	suite.mockBuildRepo.EXPECT().GetByToken("tok").Return(build, nil)
	suite.mockBuildRepo.EXPECT().Update(build).Return(nil)

	title := "Renamed"
	resp, err := suite.buildService.Update("tok", &service.UpdateBuildRequest{Title: &title})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Renamed", resp.Title)
}

func (suite *BuildServiceTestSuite) TestUpdate_RecomputesVerified() {
	build := suite.tempBuild("tok", models.PartList{})
	suite.mockBuildRepo.EXPECT().GetByToken("tok").Return(build, nil)
	suite.mockBuildRepo.EXPECT().Update(build).Return(nil)

	items := map[models.GearCategory]*models.CatalogItem{}
	parts := []service.BuildPartRequest{}
	for _, category := range []models.GearCategory{
		models.GearCategoryFrame,
		models.GearCategoryMotor,
		models.GearCategoryReceiver,
		models.GearCategoryVTX,
		models.GearCategoryAIO,
	} {
		item := suite.newCatalogItem(category)
		items[category] = item
		parts = append(parts, service.BuildPartRequest{
			GearCategory:  string(category),
			CatalogItemID: item.ID.String(),
		})
		suite.mockItemRepo.EXPECT().GetByID(item.ID).Return(item, nil)
	}

	resp, err := suite.buildService.Update("tok", &service.UpdateBuildRequest{Parts: parts})

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), resp.Verified)
	assert.Len(suite.T(), resp.Parts, 5)
}

func (suite *BuildServiceTestSuite) TestUpdate_SharedBuildRejected() {
	build := suite.tempBuild("tok", models.PartList{})
	build.Status = models.BuildStatusShared
	build.ExpiresAt = nil
	suite.mockBuildRepo.EXPECT().GetByToken("tok").Return(build, nil)

	title := "Renamed"
	_, err := suite.buildService.Update("tok", &service.UpdateBuildRequest{Title: &title})

	assert.Equal(suite.T(), apperrors.ErrBuildAlreadyShared, err)
	assert.True(suite.T(), apperrors.IsInvalidState(err))
}

func (suite *BuildServiceTestSuite) TestPromote_Success() {
	build := suite.tempBuild("tok-old", models.PartList{})
	suite.mockBuildRepo.EXPECT().GetByToken("tok-old").Return(build, nil)

	var promoted *models.Build
	suite.mockBuildRepo.EXPECT().Promote(build.ID, gomock.Any()).DoAndReturn(func(_ uuid.UUID, shared *models.Build) error {
		promoted = shared
		return nil
	})

	resp, err := suite.buildService.Promote("tok-old")

	assert.NoError(suite.T(), err)
	assert.NotEqual(suite.T(), "tok-old", resp.Token)
	assert.Equal(suite.T(), "https://gear-garage.example.com/builds/"+resp.Token, resp.URL)
	assert.Equal(suite.T(), models.BuildStatusShared, resp.Build.Status)
	assert.Nil(suite.T(), resp.Build.ExpiresAt)
	assert.Equal(suite.T(), resp.Token, promoted.AccessToken)
	assert.NotEqual(suite.T(), build.ID, promoted.ID)
	assert.Nil(suite.T(), promoted.ExpiresAt)
}

func (suite *BuildServiceTestSuite) TestPromote_IncompleteBuildStaysUnverified() {
	// Incomplete builds still promote; verified just records the check.
	build := suite.tempBuild("tok", models.PartList{})
	suite.mockBuildRepo.EXPECT().GetByToken("tok").Return(build, nil)
	suite.mockBuildRepo.EXPECT().Promote(build.ID, gomock.Any()).Return(nil)

	resp, err := suite.buildService.Promote("tok")

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), resp.Build.Verified)
}

func (suite *BuildServiceTestSuite) TestPromote_AlreadyShared() {
	build := suite.tempBuild("tok", models.PartList{})
	build.Status = models.BuildStatusShared
	build.ExpiresAt = nil
	suite.mockBuildRepo.EXPECT().GetByToken("tok").Return(build, nil)

	_, err := suite.buildService.Promote("tok")

	assert.Equal(suite.T(), apperrors.ErrBuildAlreadyShared, err)
}

func (suite *BuildServiceTestSuite) TestPromote_LostRaceBehavesAsUnknown() {
	build := suite.tempBuild("tok", models.PartList{})
	suite.mockBuildRepo.EXPECT().GetByToken("tok").Return(build, nil)
	suite.mockBuildRepo.EXPECT().Promote(build.ID, gomock.Any()).Return(gorm.ErrRecordNotFound)

	_, err := suite.buildService.Promote("tok")

	assert.Equal(suite.T(), apperrors.ErrBuildNotFound, err)
}

func (suite *BuildServiceTestSuite) TestPromote_ExpiredToken() {
	build := suite.tempBuild("tok", models.PartList{})
	expired := time.Now().Add(-time.Minute)
	build.ExpiresAt = &expired
	suite.mockBuildRepo.EXPECT().GetByToken("tok").Return(build, nil)

	_, err := suite.buildService.Promote("tok")

	assert.Equal(suite.T(), apperrors.ErrBuildNotFound, err)
}

func (suite *BuildServiceTestSuite) TestValidate_CompleteWithAIO() {
	resp, err := suite.buildService.Validate(&service.ValidateBuildRequest{
		Parts: []service.BuildPartRequest{
			{GearCategory: "frame", CatalogItemID: uuid.NewString()},
			{GearCategory: "motor", CatalogItemID: uuid.NewString()},
			{GearCategory: "receiver", CatalogItemID: uuid.NewString()},
			{GearCategory: "vtx", CatalogItemID: uuid.NewString()},
			{GearCategory: "aio", CatalogItemID: uuid.NewString()},
		},
	})

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), resp.Valid)
	assert.Empty(suite.T(), resp.Failures)
}

func (suite *BuildServiceTestSuite) TestValidate_FCWithoutESC() {
	resp, err := suite.buildService.Validate(&service.ValidateBuildRequest{
		Parts: []service.BuildPartRequest{
			{GearCategory: "frame", CatalogItemID: uuid.NewString()},
			{GearCategory: "motor", CatalogItemID: uuid.NewString()},
			{GearCategory: "receiver", CatalogItemID: uuid.NewString()},
			{GearCategory: "vtx", CatalogItemID: uuid.NewString()},
			{GearCategory: "fc", CatalogItemID: uuid.NewString()},
		},
	})

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), resp.Valid)
	assert.Len(suite.T(), resp.Failures, 1)
	assert.Equal(suite.T(), "power-stack", resp.Failures[0].Category)
}

func (suite *BuildServiceTestSuite) TestValidate_UnknownCategory() {
	_, err := suite.buildService.Validate(&service.ValidateBuildRequest{
		Parts: []service.BuildPartRequest{
			{GearCategory: "gps", CatalogItemID: uuid.NewString()},
		},
	})

	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *BuildServiceTestSuite) TestCreateTemp_RepoError() {
	suite.mockBuildRepo.EXPECT().Create(gomock.Any()).Return(errors.New("connection refused"))

	_, err := suite.buildService.CreateTemp(&service.CreateBuildRequest{Title: "My quad"})

	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "failed to create build")
}

func TestBuildServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BuildServiceTestSuite))
}
