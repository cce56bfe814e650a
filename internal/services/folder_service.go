package services

import (
	"Mediabox/internal/apperr"
	"Mediabox/internal/models"
	"Mediabox/internal/repository"
	"github.com/sirupsen/logrus"
	"strings"
	"sync"
)

// mutationLock serializes all structural mutations (create-path, rename, move,
// delete, image moves). The store exposes no transactions or unique
// constraints to us, so without this two concurrent identical ensure-path
// calls could create duplicate siblings and concurrent moves could race the
// cycle check. Reads stay lock-free.
var mutationLock sync.Mutex

// FolderListing is what a client sees when it opens a folder.
type FolderListing struct {
	Path    string         `json:"path"`
	Folders []string       `json:"folders"`
	Images  []models.Image `json:"images"`
}

type FolderService interface {
	ListAllFolders() ([]models.Folder, error)
	CreatePath(path string) (string, error)
	ListChildren(path string) (*FolderListing, error)
	Rename(folderPath, newName string) (string, error)
	Move(sourcePath string, targetPath *string) (string, error)
	Delete(folderPath string) (int, error)
}

type folderServiceImpl struct {
	folderRepo  repository.FolderRepository
	imageRepo   repository.ImageRepository
	pathService PathService
	logService  LogService
}

func NewFolderService(
	folderRepository repository.FolderRepository,
	imageRepository repository.ImageRepository,
	pathService PathService,
	logService LogService,
) FolderService {
	return &folderServiceImpl{
		folderRepo:  folderRepository,
		imageRepo:   imageRepository,
		pathService: pathService,
		logService:  logService,
	}
}

func (s *folderServiceImpl) ListAllFolders() ([]models.Folder, error) {
	folders, err := s.folderRepo.FindAll()
	if err != nil {
		return nil, apperr.Store("list folders", err)
	}
	return folders, nil
}

// CreatePath behaves like mkdir -p: existing segments are reused, missing ones
// are created, and repeating the call changes nothing.
func (s *folderServiceImpl) CreatePath(path string) (string, error) {
	segments := s.pathService.SplitPath(path)
	if len(segments) == 0 {
		return "", apperr.InvalidInput("empty path")
	}

	mutationLock.Lock()
	defer mutationLock.Unlock()

	leaf, err := s.pathService.EnsurePath(segments)
	if err != nil {
		return "", err
	}

	s.logService.Log.WithFields(logrus.Fields{
		"path": strings.Join(segments, "/"),
		"id":   leaf.ID,
	}).Debug("ensured folder path")
	return strings.Join(segments, "/"), nil
}

func (s *folderServiceImpl) ListChildren(path string) (*FolderListing, error) {
	folder, err := s.pathService.ResolvePath(path)
	if err != nil {
		return nil, err
	}

	var parentID *uint
	listing := &FolderListing{Path: strings.Join(s.pathService.SplitPath(path), "/")}

	if folder == nil {
		// Implicit root: top-level folders plus images with no association.
		images, err := s.imageRepo.FindImagesAtRoot()
		if err != nil {
			return nil, apperr.Store("list root images", err)
		}
		listing.Images = images
	} else {
		parentID = &folder.ID
		images, err := s.imageRepo.FindImagesByFolderID(folder.ID)
		if err != nil {
			return nil, apperr.Store("list folder images", err)
		}
		listing.Images = images
	}

	children, err := s.folderRepo.FindByParentID(parentID)
	if err != nil {
		return nil, apperr.Store("list subfolders", err)
	}
	listing.Folders = make([]string, 0, len(children))
	for _, child := range children {
		listing.Folders = append(listing.Folders, child.Name)
	}
	return listing, nil
}

// Rename changes a folder's name in place. Descendant paths are derived from
// parent pointers, so no other row is touched.
func (s *folderServiceImpl) Rename(folderPath, newName string) (string, error) {
	if newName == "" || strings.Contains(newName, "/") {
		return "", apperr.InvalidInput("invalid folder name %q", newName)
	}

	mutationLock.Lock()
	defer mutationLock.Unlock()

	folder, err := s.pathService.ResolvePath(folderPath)
	if err != nil {
		return "", err
	}
	if folder == nil {
		return "", apperr.InvalidInput("cannot rename the root folder")
	}

	oldPath := strings.Join(s.pathService.SplitPath(folderPath), "/")
	if folder.Name == newName {
		return oldPath, nil
	}

	sibling, err := s.folderRepo.FindByNameAndParent(newName, folder.ParentID)
	if err != nil {
		return "", apperr.Store("sibling lookup", err)
	}
	if sibling != nil {
		return "", apperr.Conflict("folder %q already exists under the same parent", newName)
	}

	folder.Name = newName
	if err := s.folderRepo.Update(folder); err != nil {
		return "", apperr.Store("folder rename", err)
	}

	s.logService.Log.WithFields(logrus.Fields{
		"path":    oldPath,
		"newName": newName,
	}).Info("renamed folder")
	return oldPath, nil
}

// Move reparents a folder. A nil or empty target means the implicit root. The
// target must already exist; move never creates folders the way create-path
// does. The cycle guard runs before any write.
func (s *folderServiceImpl) Move(sourcePath string, targetPath *string) (string, error) {
	source := strings.Join(s.pathService.SplitPath(sourcePath), "/")
	if source == "" {
		return "", apperr.InvalidInput("cannot move the root folder")
	}

	target := ""
	if targetPath != nil {
		target = strings.Join(s.pathService.SplitPath(*targetPath), "/")
	}

	if target == source || strings.HasPrefix(target, source+"/") {
		return "", apperr.InvalidInput("cannot move %q into itself or its own subtree", source)
	}

	mutationLock.Lock()
	defer mutationLock.Unlock()

	folder, err := s.pathService.ResolvePath(source)
	if err != nil {
		return "", err
	}

	var newParentID *uint
	if target != "" {
		targetFolder, err := s.pathService.ResolvePath(target)
		if err != nil {
			return "", err
		}
		newParentID = &targetFolder.ID
	}

	existing, err := s.folderRepo.FindByNameAndParent(folder.Name, newParentID)
	if err != nil {
		return "", apperr.Store("destination lookup", err)
	}
	if existing != nil && existing.ID != folder.ID {
		return "", apperr.Conflict("folder %q already exists at destination %q", folder.Name, target)
	}
	if existing != nil && existing.ID == folder.ID {
		// Already at the destination.
		return s.pathService.ResolveFullPath(folder.ID)
	}

	folder.ParentID = newParentID
	if err := s.folderRepo.Update(folder); err != nil {
		return "", apperr.Store("folder move", err)
	}

	newPath, err := s.pathService.ResolveFullPath(folder.ID)
	if err != nil {
		return "", err
	}
	s.logService.Log.WithFields(logrus.Fields{
		"source":  source,
		"target":  target,
		"newPath": newPath,
	}).Info("moved folder")
	return newPath, nil
}

// Delete removes a folder and everything below it. The plan is post-order so
// a failure partway through leaves a smaller but still well-formed tree, never
// a parent deleted out from under surviving children. Images are deleted only
// once their last folder association is gone; an image also linked elsewhere
// just loses this folder's link.
func (s *folderServiceImpl) Delete(folderPath string) (int, error) {
	mutationLock.Lock()
	defer mutationLock.Unlock()

	folder, err := s.pathService.ResolvePath(folderPath)
	if err != nil {
		return 0, err
	}
	if folder == nil {
		return 0, apperr.InvalidInput("cannot delete the root folder")
	}

	plan, err := s.collectPostOrder(folder)
	if err != nil {
		return 0, err
	}

	deleted := 0
	for _, f := range plan {
		if err := s.deleteFolderContents(f.ID); err != nil {
			return deleted, err
		}
		if err := s.folderRepo.HardDelete(f.ID); err != nil {
			return deleted, apperr.Store("folder delete", err)
		}
		deleted++
	}

	s.logService.Log.WithFields(logrus.Fields{
		"path":  folderPath,
		"count": deleted,
	}).Info("deleted folder subtree")
	return deleted, nil
}

// collectPostOrder returns the subtree with children always ordered before
// their parents.
func (s *folderServiceImpl) collectPostOrder(folder *models.Folder) ([]models.Folder, error) {
	children, err := s.folderRepo.FindByParentID(&folder.ID)
	if err != nil {
		return nil, apperr.Store("list subfolders", err)
	}

	var plan []models.Folder
	for i := range children {
		childPlan, err := s.collectPostOrder(&children[i])
		if err != nil {
			return nil, err
		}
		plan = append(plan, childPlan...)
	}
	return append(plan, *folder), nil
}

func (s *folderServiceImpl) deleteFolderContents(folderID uint) error {
	links, err := s.imageRepo.FindLinksByFolderID(folderID)
	if err != nil {
		return apperr.Store("list image links", err)
	}
	if err := s.imageRepo.DeleteLinksByFolderID(folderID); err != nil {
		return apperr.Store("delete image links", err)
	}

	for _, link := range links {
		remaining, err := s.imageRepo.CountLinksByImageID(link.ImageID)
		if err != nil {
			return apperr.Store("count image links", err)
		}
		if remaining == 0 {
			if err := s.imageRepo.HardDelete(link.ImageID); err != nil {
				return apperr.Store("delete orphaned image", err)
			}
		}
	}
	return nil
}
