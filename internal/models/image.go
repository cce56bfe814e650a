package models

import (
	"encoding/json"
)

// Image carries the media metadata produced by the asset workers. Folder
// membership lives in ImageFolder rows only; there is no cached path column.
type Image struct {
	BaseModel
	Filename string          `gorm:"type:varchar(255);not null" json:"filename"`
	Src      string          `gorm:"type:text;not null" json:"src"`
	Sizes    json.RawMessage `gorm:"type:jsonb" json:"sizes,omitempty"`
	Width    int             `gorm:"default:0" json:"width"`
	Height   int             `gorm:"default:0" json:"height"`
	AltText  string          `gorm:"type:text" json:"alt_text,omitempty"`
	Caption  string          `gorm:"type:text" json:"caption,omitempty"`
}

// ImageFolder links an image to a folder. An image with no link lives at the
// implicit root.
type ImageFolder struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	ImageID  uint `gorm:"index:idx_image_folders_image_folder;not null" json:"image_id"`
	FolderID uint `gorm:"index:idx_image_folders_image_folder;index;not null" json:"folder_id"`
}

func (ImageFolder) TableName() string {
	return "image_folders"
}
