package model

import (
	"time"

	profileModel "mutualaid_backend/internals/features/users/profiles/model"
)

// Role of a member inside a group, stored in as_role.
const (
	RoleRequester = false
	RoleSupporter = true
)

// MemberModel has a composite primary key, so a second join of the same
// (username, id_group) fails at the database.
type MemberModel struct {
	Username       string    `gorm:"column:username;primaryKey;type:varchar(100)" json:"username"`
	IDGroup        uint      `gorm:"column:id_group;primaryKey;autoIncrement:false" json:"id_group"`
	AsRole         bool      `gorm:"column:as_role;not null" json:"as_role"`
	IsAdminInvited bool      `gorm:"column:is_admin_invited;not null;default:false" json:"is_admin_invited"`
	DateCreated    time.Time `gorm:"column:date_created;autoCreateTime" json:"date_created"`

	// preload only; members.username carries no foreign key
	Profile *profileModel.ProfileModel `gorm:"foreignKey:Username;references:Username;constraint:-" json:"profile,omitempty"`
}

func (MemberModel) TableName() string {
	return "members"
}
