package service_test

import (
	"context"
	"errors"
	"testing"

	"gear-garage-backend/internal/asset"
	"gear-garage-backend/internal/database/models"
	apperrors "gear-garage-backend/internal/errors"
	"gear-garage-backend/internal/mocks"
	"gear-garage-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// stubTransport serves a fixed payload for a single key.
type stubTransport struct {
	key         string
	data        []byte
	contentType string
	err         error
}

func (t *stubTransport) Get(_ context.Context, key string) ([]byte, string, error) {
	if t.err != nil {
		return nil, "", t.err
	}
	if key != t.key {
		return nil, "", errors.New("object not found")
	}
	return t.data, t.contentType, nil
}

type AssetServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockItemRepo *mocks.MockCatalogItemRepositoryInterface
	transport    *stubTransport
	cache        *asset.Cache
	assetService *service.AssetService
}

func (suite *AssetServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockItemRepo = mocks.NewMockCatalogItemRepositoryInterface(suite.ctrl)
	suite.transport = &stubTransport{
		key:         "catalog/geprc/mark5.png",
		data:        []byte("png-bytes"),
		contentType: "image/png",
	}
	suite.cache = asset.NewCache(suite.transport)
	suite.assetService = service.NewAssetService(suite.mockItemRepo, suite.cache)
}

func (suite *AssetServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AssetServiceTestSuite) catalogItem(imageKey string) *models.CatalogItem {
	return &models.CatalogItem{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		GearCategory: models.GearCategoryFrame,
		Brand:        "GEPRC",
		ModelName:    "Mark5",
		Status:       models.CatalogItemStatusActive,
		ImageKey:     imageKey,
	}
}

func (suite *AssetServiceTestSuite) TestGetCatalogImage_Success() {
	item := suite.catalogItem("catalog/geprc/mark5.png")
	suite.mockItemRepo.EXPECT().GetByID(item.ID).Return(item, nil)

	handle, err := suite.assetService.GetCatalogImage(context.Background(), item.ID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), []byte("png-bytes"), handle.Bytes())
	assert.Equal(suite.T(), "image/png", handle.ContentType())
	assert.Equal(suite.T(), int64(1), suite.cache.LiveHandles())

	handle.Revoke()
	assert.Equal(suite.T(), int64(0), suite.cache.LiveHandles())
}

func (suite *AssetServiceTestSuite) TestGetCatalogImage_UnknownItem() {
	id := uuid.New()
	suite.mockItemRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.assetService.GetCatalogImage(context.Background(), id)

	assert.Equal(suite.T(), apperrors.ErrAssetNotFound, err)
}

func (suite *AssetServiceTestSuite) TestGetCatalogImage_ItemWithoutImage() {
	// No transport I/O happens for an item with no image key.
	item := suite.catalogItem("")
	suite.mockItemRepo.EXPECT().GetByID(item.ID).Return(item, nil)

	_, err := suite.assetService.GetCatalogImage(context.Background(), item.ID)

	assert.Equal(suite.T(), apperrors.ErrAssetNotFound, err)
	assert.Equal(suite.T(), int64(0), suite.cache.LiveHandles())
}

func (suite *AssetServiceTestSuite) TestGetCatalogImage_StoreFailureDegradesToNotFound() {
	item := suite.catalogItem("catalog/geprc/mark5.png")
	suite.transport.err = errors.New("access denied")
	suite.mockItemRepo.EXPECT().GetByID(item.ID).Return(item, nil)

	_, err := suite.assetService.GetCatalogImage(context.Background(), item.ID)

	assert.Equal(suite.T(), apperrors.ErrAssetNotFound, err)
}

func (suite *AssetServiceTestSuite) TestGetCatalogImage_CanceledContext() {
	item := suite.catalogItem("catalog/geprc/mark5.png")
	suite.mockItemRepo.EXPECT().GetByID(item.ID).Return(item, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := suite.assetService.GetCatalogImage(ctx, item.ID)

	assert.ErrorIs(suite.T(), err, context.Canceled)
	assert.Equal(suite.T(), int64(0), suite.cache.LiveHandles())
}

func TestAssetServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AssetServiceTestSuite))
}
