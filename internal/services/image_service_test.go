package services

import (
	"Mediabox/internal/apperr"
	"Mediabox/internal/config"
	"Mediabox/internal/models"
	"Mediabox/internal/repository"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type testRepos struct {
	folderRepo repository.FolderRepository
	imageRepo  repository.ImageRepository
}

func setupImageService(t *testing.T) (ImageService, FolderService, PathService, testRepos) {
	folderRepo, imageRepo, pathService, logService := setupServiceTest(t)
	imageService := NewImageService(imageRepo, pathService, logService)
	folderService := NewFolderService(folderRepo, imageRepo, pathService, logService)
	return imageService, folderService, pathService, testRepos{folderRepo: folderRepo, imageRepo: imageRepo}
}

func TestImageService_MoveImages_ToFolder(t *testing.T) {
	imageService, _, pathService, repos := setupImageService(t)

	image := addImage(t, repos.imageRepo, "a.jpg", nil)

	// The target chain is created on demand, like create-path.
	results, err := imageService.MoveImages([]uint{image.ID}, "photos/2024")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].Success)
	assert.Equal(t, "photos/2024", results[0].Path)

	folder, err := pathService.ResolvePath("photos/2024")
	require.NoError(t, err)
	link, err := repos.imageRepo.FindLink(image.ID, folder.ID)
	require.NoError(t, err)
	assert.NotNil(t, link)
}

func TestImageService_MoveImages_Reassigns(t *testing.T) {
	imageService, _, pathService, repos := setupImageService(t)

	first, err := pathService.EnsurePath([]string{"first"})
	require.NoError(t, err)
	image := addImage(t, repos.imageRepo, "a.jpg", &first.ID)

	results, err := imageService.MoveImages([]uint{image.ID}, "second")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].Success)

	// One folder at a time: the old link is gone.
	oldLink, err := repos.imageRepo.FindLink(image.ID, first.ID)
	require.NoError(t, err)
	assert.Nil(t, oldLink)

	count, err := repos.imageRepo.CountLinksByImageID(image.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestImageService_MoveImages_ToRoot(t *testing.T) {
	imageService, _, pathService, repos := setupImageService(t)

	folder, err := pathService.EnsurePath([]string{"photos"})
	require.NoError(t, err)
	image := addImage(t, repos.imageRepo, "a.jpg", &folder.ID)

	results, err := imageService.MoveImages([]uint{image.ID}, "")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].Success)
	assert.Equal(t, "", results[0].Path)

	count, err := repos.imageRepo.CountLinksByImageID(image.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)
}

func TestImageService_MoveImages_PartialFailure(t *testing.T) {
	imageService, _, _, repos := setupImageService(t)

	image := addImage(t, repos.imageRepo, "a.jpg", nil)

	results, err := imageService.MoveImages([]uint{image.ID, 9999}, "photos")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.True(t, results[0].Success)
	assert.False(t, results[1].Success)
	assert.Equal(t, "image not found", results[1].Error)
}

func TestImageService_MoveImages_StoreFailureIsNotNotFound(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Folder{}, &models.Image{}, &models.ImageFolder{}))

	folderRepo := repository.NewFolderRepository(db)
	imageRepo := repository.NewImageRepository(db)
	logService := NewLogService(&config.Configuration{})
	imageService := NewImageService(imageRepo, NewPathService(folderRepo), logService)

	// Kill the connection so every lookup fails with a store error, not a
	// missing row.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	results, err := imageService.MoveImages([]uint{1}, "")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.False(t, results[0].Success)
	assert.Equal(t, "image lookup failed", results[0].Error)
}

func TestImageService_MoveImages_NoIDs(t *testing.T) {
	imageService, _, _, _ := setupImageService(t)

	_, err := imageService.MoveImages(nil, "photos")
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
}
