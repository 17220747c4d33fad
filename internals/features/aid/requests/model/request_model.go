package model

import (
	"time"

	supportModel "mutualaid_backend/internals/features/aid/supports/model"
	commentModel "mutualaid_backend/internals/features/social/comments/model"
	imageModel "mutualaid_backend/internals/features/social/images/model"
	reactionModel "mutualaid_backend/internals/features/social/reactions/model"
	profileModel "mutualaid_backend/internals/features/users/profiles/model"
)

type RequestModel struct {
	IDRequest   uint      `gorm:"column:id_request;primaryKey;autoIncrement" json:"id_request"`
	IDGroup     uint      `gorm:"column:id_group;not null;index" json:"id_group"`
	Username    string    `gorm:"column:username;type:varchar(100);not null;index" json:"username"`
	Content     string    `gorm:"column:content;type:text;not null" json:"content"`
	IsApproved  bool      `gorm:"column:is_approved;not null;default:false" json:"is_approved"`
	IsDeleted   bool      `gorm:"column:is_deleted;not null;default:false" json:"is_deleted"`
	DateCreated time.Time `gorm:"column:date_created;autoCreateTime" json:"date_created"`

	// preload only; requests.username carries no foreign key
	User   *profileModel.ProfileModel `gorm:"foreignKey:Username;references:Username;constraint:-" json:"user,omitempty"`
	Images []imageModel.ImageModel    `gorm:"foreignKey:IDRequest;references:IDRequest" json:"images"`

	Supports  []supportModel.SupportModel   `gorm:"foreignKey:IDRequest;references:IDRequest" json:"-"`
	Comments  []commentModel.CommentModel   `gorm:"foreignKey:IDRequest;references:IDRequest" json:"-"`
	Reactions []reactionModel.ReactionModel `gorm:"foreignKey:IDRequest;references:IDRequest" json:"-"`
}

func (RequestModel) TableName() string {
	return "requests"
}
