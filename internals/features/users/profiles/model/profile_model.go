package model

import (
	"time"

	"gorm.io/datatypes"
)

type ProfileModel struct {
	Username      string         `gorm:"column:username;primaryKey;type:varchar(100)" json:"username"`
	FirstName     string         `gorm:"column:first_name;type:varchar(100);not null" json:"first_name"`
	LastName      string         `gorm:"column:last_name;type:varchar(100);not null" json:"last_name"`
	Gender        bool           `gorm:"column:gender;not null" json:"gender"`
	AvatarURL     string         `gorm:"column:avatar_url;type:text" json:"avatar_url"`
	DateOfBirth   datatypes.Date `gorm:"column:date_of_birth;not null" json:"date_of_birth"`
	Country       string         `gorm:"column:country;type:varchar(100);not null" json:"country"`
	Province      string         `gorm:"column:province;type:varchar(100);not null" json:"province"`
	District      string         `gorm:"column:district;type:varchar(100);not null" json:"district"`
	Ward          string         `gorm:"column:ward;type:varchar(100);not null" json:"ward"`
	Street        string         `gorm:"column:street;type:varchar(255);not null" json:"street"`
	Email         *string        `gorm:"column:email;type:varchar(255)" json:"email"`
	PhoneNumber   *string        `gorm:"column:phone_number;type:varchar(30)" json:"phone_number"`
	IsAdmin       bool           `gorm:"column:is_admin;not null;default:false" json:"is_admin"`
	IsDeactivated bool           `gorm:"column:is_deactivated;not null;default:false" json:"is_deactivated"`
	IsDeleted     bool           `gorm:"column:is_deleted;not null;default:false" json:"is_deleted"`
	DateCreated   time.Time      `gorm:"column:date_created;autoCreateTime" json:"date_created"`
}

func (ProfileModel) TableName() string {
	return "profiles"
}

// Active reports whether the account may still act on the API.
func (p ProfileModel) Active() bool {
	return !p.IsDeactivated && !p.IsDeleted
}
