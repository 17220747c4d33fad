package controller

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mutualaid_backend/internals/constants"
	groupController "mutualaid_backend/internals/features/groups/groups/controller"
	"mutualaid_backend/internals/features/groups/members/dto"
	"mutualaid_backend/internals/features/groups/members/model"
	helper "mutualaid_backend/internals/helpers"
	authHelper "mutualaid_backend/internals/helpers/auth"
)

var memberSortFields = []string{"date_created", "username", "as_role"}

type MemberController struct {
	DB *gorm.DB
}

func NewMemberController(db *gorm.DB) *MemberController {
	return &MemberController{DB: db}
}

// IsMember is always a fresh lookup; membership is never cached.
func IsMember(ctx context.Context, db *gorm.DB, username string, idGroup uint) (bool, error) {
	var m model.MemberModel
	err := db.WithContext(ctx).Where("username = ? AND id_group = ?", username, idGroup).Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return err == nil, err
}

// =======================
// Join (non-admin)
// =======================
func (ctrl *MemberController) JoinGroup(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id_group")
	if err != nil {
		return err
	}
	username, isAdmin, _ := authHelper.CurrentUser(c)
	if isAdmin {
		return helper.ErrForbidden("%s", constants.MsgAdminCannotJoin)
	}

	g, err := groupController.FindGroup(c, ctrl.DB, id)
	if err != nil {
		return err
	}
	if g.IsDeleted {
		return helper.ErrValidation("Group ID %d has been deleted", id)
	}

	var body dto.JoinGroupRequest
	if err := helper.ParseBody(c, &body); err != nil {
		return err
	}
	if body.AsRole == nil {
		return helper.ErrValidation("Request body must contain 'as_role' field")
	}

	member := model.MemberModel{
		Username:       username,
		IDGroup:        id,
		AsRole:         *body.AsRole,
		IsAdminInvited: body.IsAdminInvited,
	}
	// Concurrent joins are settled by the (username, id_group) primary key.
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&member).Error; err != nil {
		return helper.DBError(err, "User "+username+" is already a member of this group")
	}
	return helper.JsonCreated(c, member)
}

// =======================
// List members
// =======================
func (ctrl *MemberController) ListMembers(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id_group")
	if err != nil {
		return err
	}
	lq, err := helper.ParseListQuery(c, memberSortFields...)
	if err != nil {
		return err
	}
	if _, err := groupController.FindGroup(c, ctrl.DB, id); err != nil {
		return err
	}

	base := ctrl.DB.WithContext(c.UserContext()).Model(&model.MemberModel{}).Where("id_group = ?", id)
	base = lq.ApplySearch(base, "members.username")

	members := []model.MemberModel{}
	page, total, err := lq.Fetch(base, "members", &members, func(db *gorm.DB) *gorm.DB {
		return db.Preload("Profile")
	})
	if err != nil {
		return err
	}
	return helper.JsonList(c, "members", page, total, members)
}
