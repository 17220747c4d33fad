package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"mutualaid_backend/internals/features/groups/groups/dto"
	"mutualaid_backend/internals/features/groups/groups/model"
	memberModel "mutualaid_backend/internals/features/groups/members/model"
	helper "mutualaid_backend/internals/helpers"
	"mutualaid_backend/internals/helpers/placeholder"
	"mutualaid_backend/internals/helpers/storage"
)

var groupSortFields = []string{"date_created", "id_group", "name"}

type GroupController struct {
	DB          *gorm.DB
	Placeholder *placeholder.Generator
}

func NewGroupController(db *gorm.DB, gen *placeholder.Generator) *GroupController {
	return &GroupController{DB: db, Placeholder: gen}
}

// FindGroup loads a group by id; deleted groups are returned too.
func FindGroup(c *fiber.Ctx, db *gorm.DB, id uint) (*model.GroupModel, error) {
	var g model.GroupModel
	err := db.WithContext(c.UserContext()).Where("id_group = ?", id).Take(&g).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.ErrNotFound("Group ID %d does not exist", id)
	}
	if err != nil {
		return nil, helper.ErrInternal(err)
	}
	return &g, nil
}

// =======================
// List
// =======================
func (ctrl *GroupController) ListGroups(c *fiber.Ctx) error {
	lq, err := helper.ParseListQuery(c, groupSortFields...)
	if err != nil {
		return err
	}
	base := ctrl.DB.WithContext(c.UserContext()).Model(&model.GroupModel{}).Where("is_deleted = ?", false)
	base = lq.ApplySearch(base, "name")

	groups := []model.GroupModel{}
	page, total, err := lq.Fetch(base, "groups", &groups)
	if err != nil {
		return err
	}
	return helper.JsonList(c, "groups", page, total, groups)
}

// =======================
// Create (admin)
// =======================
func (ctrl *GroupController) CreateGroup(c *fiber.Ctx) error {
	var body dto.CreateGroupRequest
	if err := helper.ParseBody(c, &body); err != nil {
		return err
	}

	group := body.ToModel()
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&group).Error; err != nil {
		return helper.DBError(err, "")
	}

	ctrl.attachPlaceholders(c, &group)
	return helper.JsonCreated(c, group)
}

// attachPlaceholders generates the thumbnail and cover a new group was created without.
func (ctrl *GroupController) attachPlaceholders(c *fiber.Ctx, g *model.GroupModel) {
	if ctrl.Placeholder == nil {
		return
	}
	ctx := c.UserContext()
	updates := map[string]any{}
	var stored []string
	gen := func(col string, size placeholder.Size, dst *string) {
		if *dst != "" {
			return
		}
		u, err := ctrl.Placeholder.Generate(ctx, g.Name, size)
		if err != nil {
			log.WithField("id_group", g.IDGroup).Warnf("%s placeholder: %v", col, err)
			return
		}
		stored = append(stored, u)
		updates[col] = storage.AbsoluteURL(helper.BaseURL(c), u)
	}
	gen("thumbnail_image_url", placeholder.Thumbnail, &g.ThumbnailImageURL)
	gen("cover_image_url", placeholder.Cover, &g.CoverImageURL)

	if len(updates) == 0 {
		return
	}
	if err := ctrl.DB.WithContext(ctx).Model(g).Updates(updates).Error; err != nil {
		log.WithField("id_group", g.IDGroup).Warnf("save placeholders: %v", err)
		for _, u := range stored {
			_ = ctrl.Placeholder.Discard(ctx, u)
		}
		return
	}
	if v, ok := updates["thumbnail_image_url"].(string); ok {
		g.ThumbnailImageURL = v
	}
	if v, ok := updates["cover_image_url"].(string); ok {
		g.CoverImageURL = v
	}
}

// =======================
// Detail
// =======================
func (ctrl *GroupController) GetGroup(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id_group")
	if err != nil {
		return err
	}
	g, err := FindGroup(c, ctrl.DB, id)
	if err != nil {
		return err
	}

	var total int64
	if err := ctrl.DB.WithContext(c.UserContext()).Model(&memberModel.MemberModel{}).
		Where("id_group = ?", id).Count(&total).Error; err != nil {
		return helper.ErrInternal(err)
	}
	return helper.JsonOK(c, dto.GroupDetail{GroupModel: *g, TotalMembers: total})
}

// =======================
// Update (admin)
// =======================
func (ctrl *GroupController) UpdateGroup(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id_group")
	if err != nil {
		return err
	}
	g, err := FindGroup(c, ctrl.DB, id)
	if err != nil {
		return err
	}

	if err := helper.CheckFields(c, dto.UpdateFields...); err != nil {
		return err
	}
	var body dto.UpdateGroupRequest
	if err := helper.ParseBody(c, &body); err != nil {
		return err
	}
	updates, err := body.Updates()
	if err != nil {
		return err
	}
	if len(updates) > 0 {
		if err := ctrl.DB.WithContext(c.UserContext()).Model(g).Updates(updates).Error; err != nil {
			return helper.DBError(err, "")
		}
	}

	g, err = FindGroup(c, ctrl.DB, id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, g)
}

// =======================
// Delete (admin, soft)
// =======================
func (ctrl *GroupController) DeleteGroup(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id_group")
	if err != nil {
		return err
	}
	g, err := FindGroup(c, ctrl.DB, id)
	if err != nil {
		return err
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Model(g).Update("is_deleted", true).Error; err != nil {
		return helper.ErrInternal(err)
	}
	g.IsDeleted = true
	return helper.JsonOK(c, g)
}
