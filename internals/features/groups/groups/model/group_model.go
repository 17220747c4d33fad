package model

import (
	"time"

	requestModel "mutualaid_backend/internals/features/aid/requests/model"
	memberModel "mutualaid_backend/internals/features/groups/members/model"
)

type GroupModel struct {
	IDGroup           uint      `gorm:"column:id_group;primaryKey;autoIncrement" json:"id_group"`
	Name              string    `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Description       string    `gorm:"column:description;type:text" json:"description"`
	ThumbnailImageURL string    `gorm:"column:thumbnail_image_url;type:text" json:"thumbnail_image_url"`
	CoverImageURL     string    `gorm:"column:cover_image_url;type:text" json:"cover_image_url"`
	IsDeleted         bool      `gorm:"column:is_deleted;not null;default:false" json:"is_deleted"`
	DateCreated       time.Time `gorm:"column:date_created;autoCreateTime" json:"date_created"`

	Members  []memberModel.MemberModel   `gorm:"foreignKey:IDGroup;references:IDGroup" json:"-"`
	Requests []requestModel.RequestModel `gorm:"foreignKey:IDGroup;references:IDGroup" json:"-"`
}

func (GroupModel) TableName() string {
	return "groups"
}
