package services

import (
	"Mediabox/internal/apperr"
	"Mediabox/internal/models"
	"Mediabox/internal/repository"
	"errors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ImageMoveResult reports the outcome for a single image in a bulk move.
// Callers must inspect each entry; one failing image does not roll back the
// others.
type ImageMoveResult struct {
	ImageID uint   `json:"image_id"`
	Success bool   `json:"success"`
	Path    string `json:"path"`
	Error   string `json:"error,omitempty"`
}

type ImageService interface {
	GetImages() ([]models.Image, error)
	GetImageLinks() ([]models.ImageFolder, error)
	CreateImage(image *models.Image) error
	MoveImages(imageIDs []uint, targetPath string) ([]ImageMoveResult, error)
}

type imageServiceImpl struct {
	imageRepo   repository.ImageRepository
	pathService PathService
	logService  LogService
}

func NewImageService(
	imageRepository repository.ImageRepository,
	pathService PathService,
	logService LogService,
) ImageService {
	return &imageServiceImpl{
		imageRepo:   imageRepository,
		pathService: pathService,
		logService:  logService,
	}
}

func (s *imageServiceImpl) GetImages() ([]models.Image, error) {
	images, err := s.imageRepo.FindAll()
	if err != nil {
		return nil, apperr.Store("list images", err)
	}
	return images, nil
}

func (s *imageServiceImpl) GetImageLinks() ([]models.ImageFolder, error) {
	links, err := s.imageRepo.FindAllLinks()
	if err != nil {
		return nil, apperr.Store("list image links", err)
	}
	return links, nil
}

func (s *imageServiceImpl) CreateImage(image *models.Image) error {
	if err := s.imageRepo.Create(image); err != nil {
		return apperr.Store("image create", err)
	}
	return nil
}

// MoveImages files every listed image under targetPath, creating the folder
// chain on demand. An empty target means the implicit root, which is simply
// the absence of association rows. Each image is reassigned independently and
// reported per id.
func (s *imageServiceImpl) MoveImages(imageIDs []uint, targetPath string) ([]ImageMoveResult, error) {
	if len(imageIDs) == 0 {
		return nil, apperr.InvalidInput("no image ids given")
	}

	mutationLock.Lock()
	defer mutationLock.Unlock()

	segments := s.pathService.SplitPath(targetPath)
	var targetFolder *models.Folder
	if len(segments) > 0 {
		folder, err := s.pathService.EnsurePath(segments)
		if err != nil {
			return nil, err
		}
		targetFolder = folder
	}

	results := make([]ImageMoveResult, 0, len(imageIDs))
	for _, imageID := range imageIDs {
		results = append(results, s.moveOne(imageID, targetFolder))
	}

	s.logService.Log.WithFields(logrus.Fields{
		"target": targetPath,
		"count":  len(imageIDs),
	}).Info("moved images")
	return results, nil
}

func (s *imageServiceImpl) moveOne(imageID uint, targetFolder *models.Folder) ImageMoveResult {
	result := ImageMoveResult{ImageID: imageID}

	if _, err := s.imageRepo.FindByID(imageID); err != nil {
		// A missing row is permanent; anything else is a store failure the
		// caller may retry.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			result.Error = "image not found"
		} else {
			result.Error = "image lookup failed"
		}
		return result
	}

	// An image lives in exactly one folder at a time, so reassignment drops
	// any existing links first.
	if err := s.imageRepo.DeleteLinksByImageID(imageID); err != nil {
		result.Error = "failed to clear existing folder links"
		return result
	}

	if targetFolder != nil {
		if err := s.imageRepo.CreateLink(imageID, targetFolder.ID); err != nil {
			result.Error = "failed to link image to folder"
			return result
		}
		path, err := s.pathService.ResolveFullPath(targetFolder.ID)
		if err != nil {
			result.Error = "failed to resolve folder path"
			return result
		}
		result.Path = path
	}

	result.Success = true
	return result
}
