package model

import (
	"time"

	profileModel "mutualaid_backend/internals/features/users/profiles/model"
)

type CommentModel struct {
	IDComment   uint      `gorm:"column:id_comment;primaryKey;autoIncrement" json:"id_comment"`
	IDRequest   *uint     `gorm:"column:id_request;index" json:"id_request"`
	IDSupport   *uint     `gorm:"column:id_support;index" json:"id_support"`
	ObjectType  int       `gorm:"column:object_type;not null" json:"object_type"`
	Username    string    `gorm:"column:username;type:varchar(100);not null" json:"username"`
	Content     string    `gorm:"column:content;type:text;not null" json:"content"`
	IsDeleted   bool      `gorm:"column:is_deleted;not null;default:false" json:"is_deleted"`
	DateCreated time.Time `gorm:"column:date_created;autoCreateTime" json:"date_created"`

	// preload only; the username foreign key is declared from the profiles side
	User *profileModel.ProfileModel `gorm:"foreignKey:Username;references:Username;constraint:-" json:"user,omitempty"`
}

func (CommentModel) TableName() string {
	return "comments"
}
