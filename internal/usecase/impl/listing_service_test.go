package impl

import (
	"context"
	"testing"
	"time"

	"turriva/internal/domain/entity"
	domainerrors "turriva/internal/domain/errors"
	"turriva/internal/infra/memstore"
	"turriva/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newListingService(t *testing.T) (usecase.ListingUsecase, *memstore.Store) {
	t.Helper()

	store := newSeededStore(t)
	srv := NewListingService(ListingServiceParams{
		ProjectRepo:   memstore.NewProjectRepository(store),
		ProductRepo:   memstore.NewProductRepository(store),
		StoreRepo:     memstore.NewStoreRepository(store),
		LandRepo:      memstore.NewLandRepository(store),
		PropertyRepo:  memstore.NewPropertyRepository(store),
		DirectoryRepo: memstore.NewDirectoryRepository(store),
		UserRepo:      memstore.NewUserRepository(store),
		Logger:        testLogger(),
	})

	return srv, store
}

func TestAddProject_WritesBothLanguages(t *testing.T) {
	srv, _ := newListingService(t)
	ctx := context.Background()

	project, err := srv.AddProject(ctx, usecase.AddProjectInput{
		Title:       "تصميم مجلس خارجي",
		Client:      "فهد",
		Budget:      "30,000 ريال",
		Deadline:    "2026-12-01",
		Category:    "interior",
		Description: "مجلس خارجي بطابع نجدي.",
		City:        "الرياض",
	})
	require.NoError(t, err)
	assert.Equal(t, time.Now().Format(time.DateOnly), project.PostedDate)
	assert.Equal(t, entity.ProjectInterior, project.Category)

	for _, lang := range entity.Languages() {
		listed, err := srv.ListProjects(ctx, lang)
		require.NoError(t, err)
		require.NotEmpty(t, listed)
		assert.Equal(t, project.ID, listed[0].ID, "language %s", lang)
	}
}

func TestAddProject_UnknownCategory(t *testing.T) {
	srv, _ := newListingService(t)

	_, err := srv.AddProject(context.Background(), usecase.AddProjectInput{
		Title:    "x",
		Category: "nonsense",
	})
	assert.Error(t, err)
}

func TestAddProduct_VendorStoreNamePerLanguage(t *testing.T) {
	srv, store := newListingService(t)
	ctx := context.Background()

	vendor, err := memstore.NewUserRepository(store).FindByEmail(ctx, "vendor@example.com")
	require.NoError(t, err)

	product, err := srv.AddProduct(ctx, usecase.AddProductInput{
		UserID:      vendor.ID,
		Name:        "سجادة صوف",
		Price:       "900 ريال",
		Category:    "decor",
		Type:        "physical",
		Subcategory: "أرضيات",
	})
	require.NoError(t, err)

	productRepo := memstore.NewProductRepository(store)

	arabic, err := productRepo.List(ctx, entity.LanguageArabic)
	require.NoError(t, err)
	assert.Equal(t, product.ID, arabic[0].ID)
	assert.Equal(t, "store-1", arabic[0].StoreID)
	assert.Equal(t, "تسوق منزل زوي ديشانيل وجوناثان سكوت", arabic[0].StoreName)

	english, err := productRepo.List(ctx, entity.LanguageEnglish)
	require.NoError(t, err)
	assert.Equal(t, product.ID, english[0].ID)
	assert.Equal(t, "Shop Zooey Deschanel & Jonathan Scott's Home", english[0].StoreName)
}

func TestAddProduct_NonVendorRejected(t *testing.T) {
	srv, store := newListingService(t)
	ctx := context.Background()

	client, err := memstore.NewUserRepository(store).FindByEmail(ctx, "jane@example.com")
	require.NoError(t, err)

	_, err = srv.AddProduct(ctx, usecase.AddProductInput{
		UserID:   client.ID,
		Name:     "x",
		Category: "decor",
		Type:     "physical",
	})
	assert.ErrorIs(t, err, domainerrors.ErrVendorWithoutStore)
}

func TestAddLandListing(t *testing.T) {
	srv, _ := newListingService(t)
	ctx := context.Background()

	listing, err := srv.AddLandListing(ctx, usecase.AddLandInput{
		OwnerName:    "سعود",
		City:         "الرياض",
		Neighborhood: "حي النخيل",
		Area:         750,
		Description:  "أرض زاوية.",
	})
	require.NoError(t, err)
	assert.Equal(t, time.Now().Format(time.DateOnly), listing.PostedDate)

	for _, lang := range entity.Languages() {
		listed, err := srv.ListLand(ctx, lang)
		require.NoError(t, err)
		require.NotEmpty(t, listed)
		assert.Equal(t, listing.ID, listed[0].ID)
	}

	_, err = srv.AddLandListing(ctx, usecase.AddLandInput{OwnerName: "x", Area: 0})
	assert.Error(t, err)
}

func TestPropertyDetail_JoinsDeveloper(t *testing.T) {
	srv, _ := newListingService(t)
	ctx := context.Background()

	detail, err := srv.PropertyDetail(ctx, entity.LanguageEnglish, "prop-1")
	require.NoError(t, err)
	assert.Equal(t, "Luxury Villa in Al Narjis", detail.Property.Title)
	require.NotNil(t, detail.Developer)
	assert.EqualValues(t, 104, detail.Developer.ID)

	_, err = srv.PropertyDetail(ctx, entity.LanguageEnglish, "prop-404")
	assert.Error(t, err)
}

func TestProjectDetail(t *testing.T) {
	srv, _ := newListingService(t)
	ctx := context.Background()

	project, err := srv.ProjectDetail(ctx, entity.LanguageArabic, "1")
	require.NoError(t, err)
	assert.Equal(t, "تصميم فيلا سكنية مودرن", project.Title)

	_, err = srv.ProjectDetail(ctx, entity.LanguageArabic, "404")
	assert.Error(t, err)
}
