package services

import (
	"Mediabox/internal/config"
	"Mediabox/internal/repository"
	"errors"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"sync"
)

// Janitor sweeps up the debris a non-transactional cascade can leave behind:
// association rows whose folder is gone, and soft-deleted folder rows that
// never got purged. It is the scheduled safety net, not the primary delete
// path.
type Janitor struct {
	folderRepo    repository.FolderRepository
	imageRepo     repository.ImageRepository
	configuration *config.Configuration
	logService    LogService
	cleaning      bool
	mutex         sync.Mutex
	cron          *cron.Cron
}

func NewJanitorService(
	folderRepository repository.FolderRepository,
	imageRepository repository.ImageRepository,
	logService LogService,
	configuration *config.Configuration,
) *Janitor {
	return &Janitor{
		folderRepo:    folderRepository,
		imageRepo:     imageRepository,
		logService:    logService,
		configuration: configuration,
		cleaning:      false,
		mutex:         sync.Mutex{},
		cron:          cron.New(),
	}
}

func (j *Janitor) ForceStartCleanCycle() error {
	j.mutex.Lock()
	if j.cleaning {
		j.mutex.Unlock()
		return errors.New("cleaning is in progress")
	}
	j.cleaning = true
	j.mutex.Unlock()

	go func() {
		defer func() {
			j.mutex.Lock()
			j.cleaning = false
			j.mutex.Unlock()
		}()
		j.startClean(true)
	}()

	return nil
}

func (j *Janitor) StartCleanCycle() {
	j.logService.Log.Debug("starting cleaning job")

	cronSchedule := j.configuration.Server.CleanConfig.Schedule
	_, err := j.cron.AddFunc(cronSchedule, func() {
		j.mutex.Lock()
		if j.cleaning {
			j.mutex.Unlock()
			return
		}
		j.cleaning = true
		j.mutex.Unlock()

		defer func() {
			j.mutex.Lock()
			j.cleaning = false
			j.mutex.Unlock()
		}()
		j.startClean(false)
	})

	if err != nil {
		j.logService.Log.WithFields(logrus.Fields{
			"job":   "clean",
			"error": err.Error(),
		}).Error("Failed to start cleaning job")
	}
	j.cron.Start()
}

func (j *Janitor) StopClean() {
	j.mutex.Lock()
	defer j.mutex.Unlock()

	j.cron.Stop()
	j.cleaning = false
	j.logService.Log.WithFields(logrus.Fields{
		"job":    "clean",
		"status": "stopped",
	}).Info("Janitor clean stopped")
}

func (j *Janitor) IsCleaning() bool {
	j.mutex.Lock()
	defer j.mutex.Unlock()
	return j.cleaning
}

func (j *Janitor) startClean(forced bool) {
	var logFields logrus.Fields
	if !forced {
		logFields = logrus.Fields{
			"job":    "clean",
			"status": "start",
			"cron":   j.configuration.Server.CleanConfig.Schedule,
		}
	} else {
		logFields = logrus.Fields{
			"job":    "clean",
			"status": "forced",
		}
	}
	j.logService.Log.WithFields(logFields).Debug("cleaning cycle started")

	// Holds the same lock as the structural mutations so the sweep never runs
	// against a half-applied cascade.
	mutationLock.Lock()
	defer mutationLock.Unlock()

	danglingLinks, err := j.imageRepo.DeleteDanglingLinks()
	if err != nil {
		j.logService.Log.WithFields(logrus.Fields{
			"job":    "clean",
			"status": "error",
			"error":  err.Error(),
		}).Error("Failed to delete dangling image links")
	}

	purgedFolders, err := j.folderRepo.PurgeDeleted()
	if err != nil {
		j.logService.Log.WithFields(logrus.Fields{
			"job":    "clean",
			"status": "error",
			"error":  err.Error(),
		}).Error("Failed to purge soft-deleted folders")
	}

	if danglingLinks > 0 || purgedFolders > 0 {
		j.logService.Log.WithFields(logrus.Fields{
			"job":           "clean",
			"status":        "success",
			"danglingLinks": danglingLinks,
			"purgedFolders": purgedFolders,
		}).Info("cleaning job finished")
	}
}
