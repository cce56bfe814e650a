package repository

import (
	"Mediabox/internal/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageRepository_Links(t *testing.T) {
	db := setupTestDB(t)
	folderRepo := NewFolderRepository(db)
	imageRepo := NewImageRepository(db)

	folder := &models.Folder{Name: "photos"}
	require.NoError(t, folderRepo.Create(folder))
	image := &models.Image{Filename: "a.jpg", Src: "https://cdn/a.jpg"}
	require.NoError(t, imageRepo.Create(image))

	require.NoError(t, imageRepo.CreateLink(image.ID, folder.ID))

	link, err := imageRepo.FindLink(image.ID, folder.ID)
	assert.NoError(t, err)
	require.NotNil(t, link)

	count, err := imageRepo.CountLinksByImageID(image.ID)
	assert.NoError(t, err)
	assert.EqualValues(t, 1, count)

	links, err := imageRepo.FindLinksByFolderID(folder.ID)
	assert.NoError(t, err)
	assert.Len(t, links, 1)

	require.NoError(t, imageRepo.DeleteLinksByImageID(image.ID))
	count, err = imageRepo.CountLinksByImageID(image.ID)
	assert.NoError(t, err)
	assert.EqualValues(t, 0, count)
}

func TestImageRepository_FindImagesByFolderID(t *testing.T) {
	db := setupTestDB(t)
	folderRepo := NewFolderRepository(db)
	imageRepo := NewImageRepository(db)

	folder := &models.Folder{Name: "photos"}
	require.NoError(t, folderRepo.Create(folder))

	filed := &models.Image{Filename: "filed.jpg", Src: "https://cdn/filed.jpg"}
	loose := &models.Image{Filename: "loose.jpg", Src: "https://cdn/loose.jpg"}
	require.NoError(t, imageRepo.Create(filed))
	require.NoError(t, imageRepo.Create(loose))
	require.NoError(t, imageRepo.CreateLink(filed.ID, folder.ID))

	inFolder, err := imageRepo.FindImagesByFolderID(folder.ID)
	assert.NoError(t, err)
	require.Len(t, inFolder, 1)
	assert.Equal(t, "filed.jpg", inFolder[0].Filename)

	atRoot, err := imageRepo.FindImagesAtRoot()
	assert.NoError(t, err)
	require.Len(t, atRoot, 1)
	assert.Equal(t, "loose.jpg", atRoot[0].Filename)
}

func TestImageRepository_DeleteDanglingLinks(t *testing.T) {
	db := setupTestDB(t)
	folderRepo := NewFolderRepository(db)
	imageRepo := NewImageRepository(db)

	kept := &models.Folder{Name: "kept"}
	gone := &models.Folder{Name: "gone"}
	require.NoError(t, folderRepo.Create(kept))
	require.NoError(t, folderRepo.Create(gone))

	image := &models.Image{Filename: "a.jpg", Src: "https://cdn/a.jpg"}
	require.NoError(t, imageRepo.Create(image))
	require.NoError(t, imageRepo.CreateLink(image.ID, kept.ID))
	require.NoError(t, imageRepo.CreateLink(image.ID, gone.ID))

	// Simulate a cascade that died after removing the folder row.
	require.NoError(t, folderRepo.HardDelete(gone.ID))

	removed, err := imageRepo.DeleteDanglingLinks()
	assert.NoError(t, err)
	assert.EqualValues(t, 1, removed)

	count, err := imageRepo.CountLinksByImageID(image.ID)
	assert.NoError(t, err)
	assert.EqualValues(t, 1, count)
}
