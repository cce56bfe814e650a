package repository

import (
	"Mediabox/internal/models"
	"errors"
	"gorm.io/gorm"
)

type ImageRepository interface {
	GenericRepository[models.Image]
	FindLink(imageID, folderID uint) (*models.ImageFolder, error)
	FindLinksByFolderID(folderID uint) ([]models.ImageFolder, error)
	FindAllLinks() ([]models.ImageFolder, error)
	CountLinksByImageID(imageID uint) (int64, error)
	CreateLink(imageID, folderID uint) error
	DeleteLinksByImageID(imageID uint) error
	DeleteLinksByFolderID(folderID uint) error
	DeleteDanglingLinks() (int64, error)
	FindImagesByFolderID(folderID uint) ([]models.Image, error)
	FindImagesAtRoot() ([]models.Image, error)
}

type ImageRepositoryImpl[T models.Image] struct {
	GenericRepository[models.Image]
	db *gorm.DB
}

func NewImageRepository(db *gorm.DB) ImageRepository {
	return &ImageRepositoryImpl[models.Image]{
		GenericRepository: NewGenericRepository[models.Image](db),
		db:                db,
	}
}

func (r *ImageRepositoryImpl[T]) FindLink(imageID, folderID uint) (*models.ImageFolder, error) {
	var link models.ImageFolder
	err := r.db.Where("image_id = ? AND folder_id = ?", imageID, folderID).First(&link).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &link, nil
}

func (r *ImageRepositoryImpl[T]) FindLinksByFolderID(folderID uint) ([]models.ImageFolder, error) {
	var links []models.ImageFolder
	err := r.db.Where("folder_id = ?", folderID).Find(&links).Error
	if err != nil {
		return nil, err
	}
	return links, nil
}

func (r *ImageRepositoryImpl[T]) FindAllLinks() ([]models.ImageFolder, error) {
	var links []models.ImageFolder
	err := r.db.Find(&links).Error
	if err != nil {
		return nil, err
	}
	return links, nil
}

func (r *ImageRepositoryImpl[T]) CountLinksByImageID(imageID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.ImageFolder{}).Where("image_id = ?", imageID).Count(&count).Error
	return count, err
}

func (r *ImageRepositoryImpl[T]) CreateLink(imageID, folderID uint) error {
	return r.db.Create(&models.ImageFolder{ImageID: imageID, FolderID: folderID}).Error
}

func (r *ImageRepositoryImpl[T]) DeleteLinksByImageID(imageID uint) error {
	return r.db.Where("image_id = ?", imageID).Delete(&models.ImageFolder{}).Error
}

func (r *ImageRepositoryImpl[T]) DeleteLinksByFolderID(folderID uint) error {
	return r.db.Where("folder_id = ?", folderID).Delete(&models.ImageFolder{}).Error
}

// DeleteDanglingLinks removes association rows whose folder no longer exists.
// These can appear when a cascade fails between the link pass and the folder
// row delete.
func (r *ImageRepositoryImpl[T]) DeleteDanglingLinks() (int64, error) {
	result := r.db.Where(
		"folder_id NOT IN (?)",
		r.db.Model(&models.Folder{}).Select("id"),
	).Delete(&models.ImageFolder{})
	return result.RowsAffected, result.Error
}

func (r *ImageRepositoryImpl[T]) FindImagesByFolderID(folderID uint) ([]models.Image, error) {
	var images []models.Image
	err := r.db.
		Joins("JOIN image_folders ON image_folders.image_id = images.id").
		Where("image_folders.folder_id = ?", folderID).
		Find(&images).Error
	if err != nil {
		return nil, err
	}
	return images, nil
}

func (r *ImageRepositoryImpl[T]) FindImagesAtRoot() ([]models.Image, error) {
	var images []models.Image
	err := r.db.
		Where("id NOT IN (?)", r.db.Model(&models.ImageFolder{}).Select("image_id")).
		Find(&images).Error
	if err != nil {
		return nil, err
	}
	return images, nil
}
