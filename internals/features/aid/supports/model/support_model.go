package model

import (
	"time"

	commentModel "mutualaid_backend/internals/features/social/comments/model"
	imageModel "mutualaid_backend/internals/features/social/images/model"
	reactionModel "mutualaid_backend/internals/features/social/reactions/model"
	profileModel "mutualaid_backend/internals/features/users/profiles/model"
)

type SupportModel struct {
	IDSupport   uint      `gorm:"column:id_support;primaryKey;autoIncrement" json:"id_support"`
	IDRequest   uint      `gorm:"column:id_request;not null;index" json:"id_request"`
	Username    string    `gorm:"column:username;type:varchar(100);not null;index" json:"username"`
	Content     string    `gorm:"column:content;type:text;not null" json:"content"`
	IsConfirmed bool      `gorm:"column:is_confirmed;not null;default:false" json:"is_confirmed"`
	IsDeleted   bool      `gorm:"column:is_deleted;not null;default:false" json:"is_deleted"`
	DateCreated time.Time `gorm:"column:date_created;autoCreateTime" json:"date_created"`

	// preload only; supports.username carries no foreign key
	User   *profileModel.ProfileModel `gorm:"foreignKey:Username;references:Username;constraint:-" json:"user,omitempty"`
	Images []imageModel.ImageModel    `gorm:"foreignKey:IDSupport;references:IDSupport" json:"images"`

	Comments  []commentModel.CommentModel   `gorm:"foreignKey:IDSupport;references:IDSupport" json:"-"`
	Reactions []reactionModel.ReactionModel `gorm:"foreignKey:IDSupport;references:IDSupport" json:"-"`
}

func (SupportModel) TableName() string {
	return "supports"
}
