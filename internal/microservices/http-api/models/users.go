package models

// User is the subset of the users table this service reads and writes.
type User struct {
	ID                int64   `gorm:"primaryKey;column:id" json:"id"`
	UserID            string  `gorm:"column:user_id;not null;index" json:"user_id"`
	LanguageID        int     `gorm:"column:language_id" json:"language_id"`
	IsActive          bool    `gorm:"column:is_active;default:true" json:"is_active"`
	PictureURL        *string `gorm:"column:picture_url" json:"picture_url,omitempty"`
	IsPictureUploaded bool    `gorm:"column:is_picture_uploaded;default:false" json:"is_picture_uploaded"`
}

func (User) TableName() string {
	return "users"
}
