package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mutualaid_backend/internals/features/social/parent"
	"mutualaid_backend/internals/features/social/reactions/model"
	helper "mutualaid_backend/internals/helpers"
	authHelper "mutualaid_backend/internals/helpers/auth"
)

type ReactionController struct {
	DB *gorm.DB
}

func NewReactionController(db *gorm.DB) *ReactionController {
	return &ReactionController{DB: db}
}

func (ctrl *ReactionController) existingParent(c *fiber.Ctx, kind parent.Kind) (parent.Ref, error) {
	ref, err := parent.FromParam(c, kind)
	if err != nil {
		return parent.Ref{}, err
	}
	return ref, ref.MustExist(c.UserContext(), ctrl.DB)
}

// React adds the caller's reaction. A user reacts at most once per parent.
func (ctrl *ReactionController) React(kind parent.Kind) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ref, err := ctrl.existingParent(c, kind)
		if err != nil {
			return err
		}
		username, _, _ := authHelper.CurrentUser(c)
		conflict := "User " + username + " already reacted to this " + kind.String()

		var n int64
		if err := ref.Apply(ctrl.DB.WithContext(c.UserContext()).Model(&model.ReactionModel{})).
			Where("username = ?", username).Count(&n).Error; err != nil {
			return helper.ErrInternal(err)
		}
		if n > 0 {
			return helper.ErrConflict("%s", conflict)
		}

		cols := ref.Columns()
		reaction := model.ReactionModel{
			IDRequest:  cols.IDRequest,
			IDSupport:  cols.IDSupport,
			ObjectType: cols.ObjectType,
			Username:   username,
		}
		if err := ctrl.DB.WithContext(c.UserContext()).Omit("User").Create(&reaction).Error; err != nil {
			return helper.DBError(err, conflict)
		}
		return helper.JsonCreated(c, reaction)
	}
}

// ListReactions returns {"reactions": [...]} newest first.
func (ctrl *ReactionController) ListReactions(kind parent.Kind) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ref, err := ctrl.existingParent(c, kind)
		if err != nil {
			return err
		}
		reactions := []model.ReactionModel{}
		if err := ref.Apply(ctrl.DB.WithContext(c.UserContext()).Preload("User")).
			Order("date_created DESC").Order("id_reaction DESC").
			Find(&reactions).Error; err != nil {
			return helper.ErrInternal(err)
		}
		return helper.JsonOK(c, fiber.Map{"reactions": reactions})
	}
}

// Unreact removes the caller's reaction.
func (ctrl *ReactionController) Unreact(kind parent.Kind) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ref, err := ctrl.existingParent(c, kind)
		if err != nil {
			return err
		}
		username, _, _ := authHelper.CurrentUser(c)
		res := ref.Apply(ctrl.DB.WithContext(c.UserContext())).
			Where("username = ?", username).
			Delete(&model.ReactionModel{})
		if res.Error != nil {
			return helper.ErrInternal(res.Error)
		}
		if res.RowsAffected == 0 {
			return helper.ErrNotFound("User %s has not reacted to this %s", username, kind.String())
		}
		return helper.JsonOK(c, fiber.Map{"message": "Reaction removed"})
	}
}
