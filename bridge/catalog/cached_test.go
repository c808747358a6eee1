package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"readarrbridge.app/bridge/cache"
	"readarrbridge.app/bridge/mocks/catalog/catalog_client"
	"readarrbridge.app/bridge/model"
)

func TestCachedClient_SearchBooks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := catalog_client.NewMockClient(ctrl)
	store := cache.New(cache.Readarr, "Readarr API")
	client := NewCachedClient(mockClient, store)

	candidates := []model.Candidate{{Title: "Dune", ForeignBookID: "999", ForeignAuthorID: "111"}}
	mockClient.EXPECT().SearchBooks(gomock.Any(), "Dune Frank Herbert").Return(candidates, nil).Times(1)
	mockClient.EXPECT().SearchBooks(gomock.Any(), "Emma Jane Austen").Return(nil, assert.AnError).Times(2)

	for range 3 {
		got, err := client.SearchBooks(context.Background(), "Dune Frank Herbert")
		require.NoError(t, err)
		assert.Equal(t, candidates, got)
	}

	// failures are not cached
	for range 2 {
		_, err := client.SearchBooks(context.Background(), "Emma Jane Austen")
		assert.ErrorIs(t, err, assert.AnError)
	}

	stats := store.Stats()
	assert.Equal(t, int64(2), stats.Hits)
	assert.Equal(t, 1, stats.Keys)
}

func TestCachedClient_EmptyResultIsCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := catalog_client.NewMockClient(ctrl)
	client := NewCachedClient(mockClient, cache.New(cache.Readarr, "Readarr API"))

	mockClient.EXPECT().SearchBooks(gomock.Any(), "Unknown Book Nobody").Return([]model.Candidate{}, nil).Times(1)

	for range 2 {
		got, err := client.SearchBooks(context.Background(), "Unknown Book Nobody")
		require.NoError(t, err)
		assert.Empty(t, got)
	}
}

func TestCachedClient_GetMetadataProfiles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := catalog_client.NewMockClient(ctrl)
	store := cache.New(cache.Readarr, "Readarr API")
	client := NewCachedClient(mockClient, store)

	profiles := []model.MetadataProfile{{ID: 1, Name: "Standard"}}
	mockClient.EXPECT().GetMetadataProfiles(gomock.Any()).Return(profiles, nil).Times(2)

	_, err := client.GetMetadataProfiles(context.Background())
	require.NoError(t, err)
	_, err = client.GetMetadataProfiles(context.Background())
	require.NoError(t, err)

	store.Flush()

	got, err := client.GetMetadataProfiles(context.Background())
	require.NoError(t, err)
	assert.Equal(t, profiles, got)
}

func TestCachedClient_AddBookIsNeverCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := catalog_client.NewMockClient(ctrl)
	store := cache.New(cache.Readarr, "Readarr API")
	client := NewCachedClient(mockClient, store)

	spec := model.AddBookSpec{Title: "Dune", ForeignBookID: 999, ForeignAuthorID: 111}
	mockClient.EXPECT().AddBook(gomock.Any(), spec).Return(&model.AddedBook{ID: 42}, nil).Times(2)

	for range 2 {
		added, err := client.AddBook(context.Background(), spec)
		require.NoError(t, err)
		assert.Equal(t, int64(42), added.ID)
	}
	assert.Equal(t, 0, store.Stats().Keys)
}
