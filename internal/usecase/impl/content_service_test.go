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

func newContentService(t *testing.T) usecase.ContentUsecase {
	t.Helper()

	store := newSeededStore(t)

	return NewContentService(ContentServiceParams{
		ContentRepo: memstore.NewContentRepository(store),
		Logger:      testLogger(),
	})
}

func TestHubFeed(t *testing.T) {
	srv := newContentService(t)

	posts, err := srv.HubFeed(context.Background(), entity.LanguageArabic)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "علي العبدالله", posts[0].Author.Name)
}

func TestInspirations(t *testing.T) {
	srv := newContentService(t)

	output, err := srv.Inspirations(context.Background(), entity.LanguageEnglish)
	require.NoError(t, err)
	require.Len(t, output.GlobalProjects, 1)
	assert.Equal(t, "Louvre Abu Dhabi", output.GlobalProjects[0].Title)
	require.Len(t, output.Sources, 1)
	assert.Equal(t, "Zaha Hadid", output.Sources[0].Name)
}

func TestListBlogPosts(t *testing.T) {
	srv := newContentService(t)

	posts, err := srv.ListBlogPosts(context.Background(), entity.LanguageEnglish)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "Future of AI in Design", posts[0].Title)
}
