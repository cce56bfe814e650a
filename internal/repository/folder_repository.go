package repository

import (
	"Mediabox/internal/models"
	"errors"
	"gorm.io/gorm"
)

type FolderRepository interface {
	GenericRepository[models.Folder]
	FindByNameAndParent(name string, parentID *uint) (*models.Folder, error)
	FindByParentID(parentID *uint) ([]models.Folder, error)
	FindDeleted() ([]models.Folder, error)
	PurgeDeleted() (int64, error)
}

type FolderRepositoryImpl[T models.Folder] struct {
	GenericRepository[models.Folder]
	db *gorm.DB
}

func NewFolderRepository(db *gorm.DB) FolderRepository {
	return &FolderRepositoryImpl[models.Folder]{
		GenericRepository: NewGenericRepository[models.Folder](db),
		db:                db,
	}
}

// FindByNameAndParent looks a folder up under one specific parent. The scope on
// parent_id matters: sibling sets in different branches may share names, so a
// global name lookup would resolve the wrong folder.
func (r *FolderRepositoryImpl[T]) FindByNameAndParent(name string, parentID *uint) (*models.Folder, error) {
	var folder models.Folder
	query := r.db.Where("name = ?", name)
	if parentID == nil {
		query = query.Where("parent_id IS NULL")
	} else {
		query = query.Where("parent_id = ?", *parentID)
	}

	err := query.First(&folder).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &folder, nil
}

func (r *FolderRepositoryImpl[T]) FindByParentID(parentID *uint) ([]models.Folder, error) {
	var folders []models.Folder
	var err error
	if parentID != nil {
		err = r.db.Where("parent_id = ?", *parentID).Find(&folders).Error
	} else {
		err = r.db.Where("parent_id IS NULL").Find(&folders).Error
	}
	if err != nil {
		return nil, err
	}
	return folders, nil
}

func (r *FolderRepositoryImpl[T]) FindDeleted() ([]models.Folder, error) {
	var folders []models.Folder
	err := r.db.Unscoped().Where("deleted_at IS NOT NULL").Find(&folders).Error
	if err != nil {
		return nil, err
	}
	return folders, nil
}

// PurgeDeleted hard-removes soft-deleted folder rows left behind by
// interrupted cascades.
func (r *FolderRepositoryImpl[T]) PurgeDeleted() (int64, error) {
	result := r.db.Unscoped().Where("deleted_at IS NOT NULL").Delete(&models.Folder{})
	return result.RowsAffected, result.Error
}
