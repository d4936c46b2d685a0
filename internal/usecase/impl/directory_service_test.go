package impl

import (
	"context"
	"testing"

	"turriva/internal/domain/entity"
	"turriva/internal/infra/memstore"
	"turriva/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDirectoryService(t *testing.T) usecase.DirectoryUsecase {
	t.Helper()

	store := newSeededStore(t)

	return NewDirectoryService(DirectoryServiceParams{
		DirectoryRepo: memstore.NewDirectoryRepository(store),
		PortfolioRepo: memstore.NewPortfolioRepository(store),
		StoreRepo:     memstore.NewStoreRepository(store),
		ProductRepo:   memstore.NewProductRepository(store),
		Logger:        testLogger(),
	})
}

func TestFilterProfiles_ByArabicCategoryLabel(t *testing.T) {
	srv := newDirectoryService(t)

	output, err := srv.FilterProfiles(context.Background(), usecase.ProfileFilter{
		Language: entity.LanguageArabic,
		Category: "شركات مقاولات",
	})
	require.NoError(t, err)
	require.Len(t, output.Profiles, 1)
	assert.EqualValues(t, 101, output.Profiles[0].ID)
	assert.Empty(t, output.Featured)
}

func TestFilterProfiles_QueryIsCaseInsensitive(t *testing.T) {
	srv := newDirectoryService(t)

	output, err := srv.FilterProfiles(context.Background(), usecase.ProfileFilter{
		Language: entity.LanguageEnglish,
		Query:    "DESIGN studio",
	})
	require.NoError(t, err)
	require.Len(t, output.Profiles, 1)
	assert.EqualValues(t, 102, output.Profiles[0].ID)
}

func TestFilterProfiles_AllFacetKeepsEveryone(t *testing.T) {
	srv := newDirectoryService(t)

	for _, facet := range []string{"", "all", "الكل"} {
		output, err := srv.FilterProfiles(context.Background(), usecase.ProfileFilter{
			Language: entity.LanguageArabic,
			Category: facet,
		})
		require.NoError(t, err)
		assert.Len(t, output.Profiles, 4, "facet %q", facet)
		assert.Len(t, output.Featured, 1, "facet %q", facet)
	}
}

func TestFilterProfiles_UnknownCategory(t *testing.T) {
	srv := newDirectoryService(t)

	_, err := srv.FilterProfiles(context.Background(), usecase.ProfileFilter{
		Language: entity.LanguageArabic,
		Category: "definitely-not-a-category",
	})
	assert.Error(t, err)
}

func TestProfileDetail_JoinsPortfolioAndReviews(t *testing.T) {
	srv := newDirectoryService(t)

	detail, err := srv.ProfileDetail(context.Background(), entity.LanguageArabic, 101)
	require.NoError(t, err)
	assert.Equal(t, "شركة البناء الحديث", detail.Profile.Name)
	require.Len(t, detail.Portfolio, 2)
	assert.Equal(t, "proj-1", detail.Portfolio[0].ID)
	assert.Equal(t, "proj-4", detail.Portfolio[1].ID)
	assert.Len(t, detail.Reviews, 2)
}

func TestProfileDetail_Unknown(t *testing.T) {
	srv := newDirectoryService(t)

	_, err := srv.ProfileDetail(context.Background(), entity.LanguageArabic, 999)
	assert.Error(t, err)
}

func TestFilterPortfolio_ByStyleAndCategory(t *testing.T) {
	srv := newDirectoryService(t)
	ctx := context.Background()

	modern, err := srv.FilterPortfolio(ctx, usecase.PortfolioFilter{
		Language: entity.LanguageEnglish,
		Style:    "مودرن", // Arabic label resolves to the same symbol.
	})
	require.NoError(t, err)
	require.Len(t, modern, 3)
	for _, project := range modern {
		assert.Equal(t, entity.StyleModern, project.Style)
	}

	residentialModern, err := srv.FilterPortfolio(ctx, usecase.PortfolioFilter{
		Language: entity.LanguageEnglish,
		Category: "residential",
		Style:    "modern",
	})
	require.NoError(t, err)
	require.Len(t, residentialModern, 1)
	assert.Equal(t, "proj-1", residentialModern[0].ID)
}

func TestPortfolioDetail_WithAndWithoutProfessional(t *testing.T) {
	srv := newDirectoryService(t)
	ctx := context.Background()

	withPro, err := srv.PortfolioDetail(ctx, entity.LanguageEnglish, "proj-1")
	require.NoError(t, err)
	require.NotNil(t, withPro.Professional)
	assert.EqualValues(t, 101, withPro.Professional.ID)

	landmark, err := srv.PortfolioDetail(ctx, entity.LanguageEnglish, "proj-5")
	require.NoError(t, err)
	assert.Equal(t, "Ithra", landmark.Project.Title)
	assert.Nil(t, landmark.Professional)
}

func TestFilterProducts_ByType(t *testing.T) {
	srv := newDirectoryService(t)

	digital, err := srv.FilterProducts(context.Background(), usecase.ProductFilter{
		Language: entity.LanguageEnglish,
		Type:     "digital",
	})
	require.NoError(t, err)
	require.Len(t, digital, 1)
	assert.Equal(t, "101", digital[0].ID)
	assert.Equal(t, []string{"DWG", "PDF"}, digital[0].FileFormats)
}

func TestFilterProducts_QueryAndCategory(t *testing.T) {
	srv := newDirectoryService(t)

	decor, err := srv.FilterProducts(context.Background(), usecase.ProductFilter{
		Language: entity.LanguageEnglish,
		Category: "decor",
		Query:    "chandelier",
	})
	require.NoError(t, err)
	require.Len(t, decor, 1)
	assert.Equal(t, "Antique Glass Chandelier", decor[0].Name)
}

func TestStoreDetail_JoinsProducts(t *testing.T) {
	srv := newDirectoryService(t)

	detail, err := srv.StoreDetail(context.Background(), entity.LanguageEnglish, "store-1")
	require.NoError(t, err)
	assert.Equal(t, "Get the Look: Georgian Gem", detail.Store.CollectionTitle)
	require.Len(t, detail.Products, 2)

	_, err = srv.StoreDetail(context.Background(), entity.LanguageEnglish, "store-404")
	assert.Error(t, err)
}
