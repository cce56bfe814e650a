package models

// Folder is a node in the media namespace. The root is implicit: folders with a
// nil ParentID sit directly under it. Name is unique only among siblings; the
// store does not enforce this, the service layer does.
type Folder struct {
	BaseModel
	Name     string `gorm:"type:varchar(255);not null;index:idx_folders_parent_name" json:"name"`
	ParentID *uint  `gorm:"index:idx_folders_parent_name" json:"parent_id,omitempty"`
}
