//go:build integration
// +build integration

package repository

import (
	"testing"

	"gear-garage-backend/internal/database/models"
	"gear-garage-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// CatalogItemRepositoryTestSuite tests the CatalogItemRepository
type CatalogItemRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *CatalogItemRepository
	items         *testutils.CatalogItemFactory
}

func (suite *CatalogItemRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewCatalogItemRepository(suite.baseTestSuite.DB)
	suite.items = testutils.NewCatalogItemFactory()
}

func (suite *CatalogItemRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *CatalogItemRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *CatalogItemRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *CatalogItemRepositoryTestSuite) TestCreateAndGetByID() {
	item := suite.items.Create()
	err := suite.repo.Create(item)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(item.ID)
	suite.NoError(err)
	suite.Equal(item.ID, retrieved.ID)
	suite.Equal("GEPRC", retrieved.Brand)
	suite.Equal("Mark5", retrieved.ModelName)
	suite.Equal(models.GearCategoryFrame, retrieved.GearCategory)
}

func (suite *CatalogItemRepositoryTestSuite) TestGetByIDNotFound() {
	item, err := suite.repo.GetByID(uuid.New())

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(item)
}

func (suite *CatalogItemRepositoryTestSuite) TestUpdate() {
	item := suite.items.Create()
	suite.NoError(suite.repo.Create(item))

	item.Status = models.CatalogItemStatusDiscontinued
	item.Description = "No longer in production"
	suite.NoError(suite.repo.Update(item))

	retrieved, err := suite.repo.GetByID(item.ID)
	suite.NoError(err)
	suite.Equal(models.CatalogItemStatusDiscontinued, retrieved.Status)
	suite.Equal("No longer in production", retrieved.Description)
}

func (suite *CatalogItemRepositoryTestSuite) TestSearchByCategory() {
	suite.NoError(suite.repo.Create(suite.items.WithCategory(models.GearCategoryFrame)))
	suite.NoError(suite.repo.Create(suite.items.WithCategory(models.GearCategoryMotor)))
	suite.NoError(suite.repo.Create(suite.items.WithCategory(models.GearCategoryMotor)))

	category := models.GearCategoryMotor
	items, total, err := suite.repo.Search(&category, "", 10, 0)
	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(items, 2)
	for _, item := range items {
		suite.Equal(models.GearCategoryMotor, item.GearCategory)
	}
}

func (suite *CatalogItemRepositoryTestSuite) TestSearchFreeText() {
	suite.NoError(suite.repo.Create(suite.items.WithBrandModel("iFlight", "Nazgul5")))
	suite.NoError(suite.repo.Create(suite.items.WithBrandModel("GEPRC", "Mark5")))
	suite.NoError(suite.repo.Create(suite.items.WithBrandModel("TBS", "Source One")))

	// Case-insensitive match over brand and model.
	items, total, err := suite.repo.Search(nil, "nazgul", 10, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal("iFlight", items[0].Brand)

	items, total, err = suite.repo.Search(nil, "geprc", 10, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal("Mark5", items[0].ModelName)
}

func (suite *CatalogItemRepositoryTestSuite) TestSearchPagination() {
	suite.NoError(suite.repo.Create(suite.items.WithBrandModel("Axisflying", "Manta")))
	suite.NoError(suite.repo.Create(suite.items.WithBrandModel("GEPRC", "Mark5")))
	suite.NoError(suite.repo.Create(suite.items.WithBrandModel("TBS", "Source One")))

	items, total, err := suite.repo.Search(nil, "", 2, 0)
	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(items, 2)
	suite.Equal("Axisflying", items[0].Brand)
	suite.Equal("GEPRC", items[1].Brand)

	items, total, err = suite.repo.Search(nil, "", 2, 2)
	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(items, 1)
	suite.Equal("TBS", items[0].Brand)
}

func (suite *CatalogItemRepositoryTestSuite) TestSearchNoResults() {
	suite.NoError(suite.repo.Create(suite.items.Create()))

	items, total, err := suite.repo.Search(nil, "walksnail", 10, 0)
	suite.NoError(err)
	suite.Equal(int64(0), total)
	suite.Empty(items)
}

func TestCatalogItemRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogItemRepositoryTestSuite))
}
