package database

import (
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	requestModel "mutualaid_backend/internals/features/aid/requests/model"
	supportModel "mutualaid_backend/internals/features/aid/supports/model"
	groupModel "mutualaid_backend/internals/features/groups/groups/model"
	memberModel "mutualaid_backend/internals/features/groups/members/model"
	commentModel "mutualaid_backend/internals/features/social/comments/model"
	imageModel "mutualaid_backend/internals/features/social/images/model"
	reactionModel "mutualaid_backend/internals/features/social/reactions/model"
	authModel "mutualaid_backend/internals/features/users/auth/model"
	profileModel "mutualaid_backend/internals/features/users/profiles/model"
)

// profileTable is the profiles table as migrated. It owns the username foreign
// keys of comments and reactions, which ProfileModel cannot declare without
// importing the packages that preload it.
type profileTable struct {
	profileModel.ProfileModel

	Comments  []commentModel.CommentModel   `gorm:"foreignKey:Username;references:Username"`
	Reactions []reactionModel.ReactionModel `gorm:"foreignKey:Username;references:Username"`
}

func (profileTable) TableName() string {
	return "profiles"
}

// Models lists every table in dependency order.
func Models() []any {
	return []any{
		&profileTable{},
		&groupModel.GroupModel{},
		&memberModel.MemberModel{},
		&requestModel.RequestModel{},
		&supportModel.SupportModel{},
		&commentModel.CommentModel{},
		&reactionModel.ReactionModel{},
		&imageModel.ImageModel{},
		&authModel.TokenBlacklist{},
	}
}

// Migrate creates or updates the schema with AutoMigrate.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return err
	}
	log.Info("schema migrated")
	return nil
}
