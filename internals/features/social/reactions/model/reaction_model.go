package model

import (
	"time"

	profileModel "mutualaid_backend/internals/features/users/profiles/model"
)

// ReactionModel allows one reaction per user per parent, enforced by the two unique indexes.
type ReactionModel struct {
	IDReaction  uint      `gorm:"column:id_reaction;primaryKey;autoIncrement" json:"id_reaction"`
	IDRequest   *uint     `gorm:"column:id_request;uniqueIndex:uq_reactions_request_user" json:"id_request"`
	IDSupport   *uint     `gorm:"column:id_support;uniqueIndex:uq_reactions_support_user" json:"id_support"`
	ObjectType  int       `gorm:"column:object_type;not null" json:"object_type"`
	Username    string    `gorm:"column:username;type:varchar(100);not null;uniqueIndex:uq_reactions_request_user;uniqueIndex:uq_reactions_support_user" json:"username"`
	DateCreated time.Time `gorm:"column:date_created;autoCreateTime" json:"date_created"`

	// preload only; the username foreign key is declared from the profiles side
	User *profileModel.ProfileModel `gorm:"foreignKey:Username;references:Username;constraint:-" json:"user,omitempty"`
}

func (ReactionModel) TableName() string {
	return "reactions"
}
