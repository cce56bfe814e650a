package services

import (
	"Mediabox/internal/apperr"
	"Mediabox/internal/models"
	"Mediabox/internal/repository"
	"fmt"
	"strings"
)

// maxPathDepth bounds parent-pointer walks. The store does not enforce
// acyclicity, so an accidental cycle must not hang a read.
const maxPathDepth = 256

// PathService translates slash-delimited paths to folder rows and back. The
// implicit root (parent_id IS NULL, no stored row) is represented as a nil
// folder pointer everywhere; callers never see a root sentinel id.
type PathService interface {
	SplitPath(path string) []string
	EnsurePath(segments []string) (*models.Folder, error)
	ResolvePath(path string) (*models.Folder, error)
	ResolveFullPath(folderID uint) (string, error)
}

type pathServiceImpl struct {
	folderRepo repository.FolderRepository
}

func NewPathService(folderRepository repository.FolderRepository) PathService {
	return &pathServiceImpl{folderRepo: folderRepository}
}

func (s *pathServiceImpl) SplitPath(path string) []string {
	parts := strings.Split(path, "/")
	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			segments = append(segments, part)
		}
	}
	return segments
}

// EnsurePath walks the segments from the root, creating any folder that does
// not yet exist under its parent, and returns the leaf. Calling it twice with
// the same segments returns the same folder: the lookup-before-insert check is
// what keeps it idempotent. Two concurrent identical calls can still race and
// create duplicate siblings; the caller is expected to hold the mutation lock.
func (s *pathServiceImpl) EnsurePath(segments []string) (*models.Folder, error) {
	if len(segments) == 0 {
		return nil, apperr.InvalidInput("empty path")
	}

	var parentID *uint
	var current *models.Folder

	for _, name := range segments {
		existing, err := s.folderRepo.FindByNameAndParent(name, parentID)
		if err != nil {
			return nil, apperr.Store("folder lookup", err)
		}
		if existing != nil {
			current = existing
			parentID = &existing.ID
			continue
		}

		newFolder := &models.Folder{Name: name, ParentID: parentID}
		if err := s.folderRepo.Create(newFolder); err != nil {
			return nil, apperr.Store("folder create", err)
		}
		current = newFolder
		parentID = &newFolder.ID
	}

	return current, nil
}

// ResolvePath is the pure-lookup counterpart of EnsurePath: it never creates
// anything and reports a missing segment as NotFound. The empty path resolves
// to the implicit root, returned as nil.
func (s *pathServiceImpl) ResolvePath(path string) (*models.Folder, error) {
	segments := s.SplitPath(path)
	if len(segments) == 0 {
		return nil, nil
	}

	var parentID *uint
	var current *models.Folder

	for _, name := range segments {
		folder, err := s.folderRepo.FindByNameAndParent(name, parentID)
		if err != nil {
			return nil, apperr.Store("folder lookup", err)
		}
		if folder == nil {
			return nil, apperr.NotFound("folder %q in path %q", name, path)
		}
		current = folder
		parentID = &folder.ID
	}

	return current, nil
}

// ResolveFullPath rebuilds the derived path by walking parent pointers up to
// the root. A visited set plus a depth bound guard against cycles the store
// cannot rule out.
func (s *pathServiceImpl) ResolveFullPath(folderID uint) (string, error) {
	segments := make([]string, 0, 8)
	visited := make(map[uint]bool)

	id := folderID
	for depth := 0; depth < maxPathDepth; depth++ {
		if visited[id] {
			return "", apperr.Store("resolve path", fmt.Errorf("parent cycle detected at folder id %d", id))
		}
		visited[id] = true

		folder, err := s.folderRepo.FindByID(id)
		if err != nil {
			return "", apperr.NotFound("folder id %d", id)
		}
		segments = append([]string{folder.Name}, segments...)
		if folder.ParentID == nil {
			return strings.Join(segments, "/"), nil
		}
		id = *folder.ParentID
	}

	return "", apperr.Store("resolve path", fmt.Errorf("max folder depth exceeded resolving id %d", folderID))
}
