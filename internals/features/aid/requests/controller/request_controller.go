package controller

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"mutualaid_backend/internals/constants"
	"mutualaid_backend/internals/features/aid/requests/dto"
	"mutualaid_backend/internals/features/aid/requests/model"
	groupController "mutualaid_backend/internals/features/groups/groups/controller"
	memberController "mutualaid_backend/internals/features/groups/members/controller"
	imageModel "mutualaid_backend/internals/features/social/images/model"
	imageService "mutualaid_backend/internals/features/social/images/service"
	"mutualaid_backend/internals/features/social/parent"
	profileModel "mutualaid_backend/internals/features/users/profiles/model"
	helper "mutualaid_backend/internals/helpers"
	authHelper "mutualaid_backend/internals/helpers/auth"
)

var requestSortFields = []string{"date_created", "id_request", "username", "content", "is_approved"}

type RequestController struct {
	DB *gorm.DB
}

func NewRequestController(db *gorm.DB) *RequestController {
	return &RequestController{DB: db}
}

func withAssociations(db *gorm.DB) *gorm.DB {
	return db.Preload("User").Preload("Images", func(db *gorm.DB) *gorm.DB {
		return db.Order("id_image ASC")
	})
}

// FindRequest loads a request with its user and images; deleted requests are returned too.
func FindRequest(ctx context.Context, db *gorm.DB, id uint) (*model.RequestModel, error) {
	var r model.RequestModel
	err := withAssociations(db.WithContext(ctx)).Where("id_request = ?", id).Take(&r).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.ErrNotFound("Request ID %d does not exist", id)
	}
	if err != nil {
		return nil, helper.ErrInternal(err)
	}
	if r.Images == nil {
		r.Images = []imageModel.ImageModel{}
	}
	return &r, nil
}

// enrich adds reaction, comment and supports counts with one grouped query each.
func (ctrl *RequestController) enrich(ctx context.Context, list []model.RequestModel) ([]dto.RequestDetail, error) {
	ids := make([]uint, 0, len(list))
	for _, r := range list {
		ids = append(ids, r.IDRequest)
	}
	db := ctrl.DB.WithContext(ctx)

	reactions, err := helper.CountGrouped(db.Where("object_type = ?", int(parent.KindRequest)), "reactions", "id_request", ids)
	if err != nil {
		return nil, helper.ErrInternal(err)
	}
	comments, err := helper.CountGrouped(db.Where("object_type = ? AND is_deleted = ?", int(parent.KindRequest), false), "comments", "id_request", ids)
	if err != nil {
		return nil, helper.ErrInternal(err)
	}
	supports, err := helper.CountGrouped(db.Where("is_deleted = ?", false), "supports", "id_request", ids)
	if err != nil {
		return nil, helper.ErrInternal(err)
	}

	out := make([]dto.RequestDetail, 0, len(list))
	for _, r := range list {
		if r.Images == nil {
			r.Images = []imageModel.ImageModel{}
		}
		out = append(out, dto.RequestDetail{
			RequestModel:   r,
			TotalReactions: reactions[r.IDRequest],
			TotalComments:  comments[r.IDRequest],
			TotalSupports:  supports[r.IDRequest],
		})
	}
	return out, nil
}

func (ctrl *RequestController) detail(c *fiber.Ctx, id uint) (*dto.RequestDetail, error) {
	r, err := FindRequest(c.UserContext(), ctrl.DB, id)
	if err != nil {
		return nil, err
	}
	list, err := ctrl.enrich(c.UserContext(), []model.RequestModel{*r})
	if err != nil {
		return nil, err
	}
	return &list[0], nil
}

// =======================
// Create (group member)
// =======================
func (ctrl *RequestController) CreateRequest(c *fiber.Ctx) error {
	idGroup, err := helper.ParseIDParam(c, "id_group")
	if err != nil {
		return err
	}
	g, err := groupController.FindGroup(c, ctrl.DB, idGroup)
	if err != nil {
		return err
	}
	if g.IsDeleted {
		return helper.ErrValidation("Group ID %d has been deleted", idGroup)
	}

	username, _, _ := authHelper.CurrentUser(c)
	ok, err := memberController.IsMember(c.UserContext(), ctrl.DB, username, idGroup)
	if err != nil {
		return helper.ErrInternal(err)
	}
	if !ok {
		return helper.ErrForbidden("%s is not a member of group %d", username, idGroup)
	}

	var body dto.CreateRequestRequest
	if err := helper.ParseBody(c, &body); err != nil {
		return err
	}

	request := model.RequestModel{IDGroup: idGroup, Username: username, Content: body.Content}
	if err := ctrl.DB.WithContext(c.UserContext()).Omit(clause.Associations).Create(&request).Error; err != nil {
		return helper.DBError(err, "")
	}
	// Not atomic with the request insert; a failure here leaves a request without images.
	images, err := imageService.Attach(c.UserContext(), ctrl.DB, parent.Request(request.IDRequest), body.Images)
	if err != nil {
		return helper.ErrInternal(err)
	}
	request.Images = images
	return helper.JsonCreated(c, request)
}

func (ctrl *RequestController) GetRequest(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id_request")
	if err != nil {
		return err
	}
	d, err := ctrl.detail(c, id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, d)
}

// =======================
// Update (owner | admin)
// =======================
func (ctrl *RequestController) UpdateRequest(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id_request")
	if err != nil {
		return err
	}
	r, err := FindRequest(c.UserContext(), ctrl.DB, id)
	if err != nil {
		return err
	}

	caller, isAdmin, _ := authHelper.CurrentUser(c)
	owner := caller == r.Username
	var allowed []string
	if owner {
		allowed = append(allowed, dto.OwnerFields...)
	}
	if isAdmin {
		allowed = append(allowed, dto.AdminFields...)
	}
	if len(allowed) == 0 {
		return helper.ErrForbidden("%s", constants.UserMustBeOrAdmin(r.Username))
	}
	if err := helper.CheckFields(c, allowed...); err != nil {
		return err
	}

	var body dto.UpdateRequestRequest
	if err := helper.ParseBody(c, &body); err != nil {
		return err
	}
	if err := helper.CheckNotEmpty(body.Content); err != nil {
		return err
	}

	updates := map[string]any{}
	if body.Content != nil {
		updates["content"] = *body.Content
	}
	switch {
	case body.IsApproved != nil:
		updates["is_approved"] = *body.IsApproved
	case isAdmin && !owner:
		// an admin update without a value approves
		updates["is_approved"] = true
	}

	ctx := c.UserContext()
	if len(updates) > 0 {
		if err := ctrl.DB.WithContext(ctx).Model(&model.RequestModel{}).
			Where("id_request = ?", id).Updates(updates).Error; err != nil {
			return helper.DBError(err, "")
		}
	}
	if body.Images != nil {
		if _, err := imageService.Replace(ctx, ctrl.DB, parent.Request(id), *body.Images); err != nil {
			return helper.ErrInternal(err)
		}
	}

	d, err := ctrl.detail(c, id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, d)
}

// =======================
// Delete (owner | admin, soft)
// =======================
func (ctrl *RequestController) DeleteRequest(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id_request")
	if err != nil {
		return err
	}
	r, err := FindRequest(c.UserContext(), ctrl.DB, id)
	if err != nil {
		return err
	}
	caller, isAdmin, _ := authHelper.CurrentUser(c)
	if caller != r.Username && !isAdmin {
		return helper.ErrForbidden("%s", constants.UserMustBeOrAdmin(r.Username))
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Model(&model.RequestModel{}).
		Where("id_request = ?", id).Update("is_deleted", true).Error; err != nil {
		return helper.ErrInternal(err)
	}
	r.IsDeleted = true
	return helper.JsonOK(c, r)
}

// =======================
// Lists
// =======================

func (ctrl *RequestController) list(c *fiber.Ctx, base *gorm.DB) error {
	lq, err := helper.ParseListQuery(c, requestSortFields...)
	if err != nil {
		return err
	}
	base = lq.ApplySearch(base.Where("is_deleted = ?", false), "content")

	requests := []model.RequestModel{}
	page, total, err := lq.Fetch(base, "requests", &requests, withAssociations)
	if err != nil {
		return err
	}
	out, err := ctrl.enrich(c.UserContext(), requests)
	if err != nil {
		return err
	}
	return helper.JsonList(c, "requests", page, total, out)
}

// ListGroupRequests is GET /groups/:id_group/requests.
func (ctrl *RequestController) ListGroupRequests(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id_group")
	if err != nil {
		return err
	}
	if _, err := groupController.FindGroup(c, ctrl.DB, id); err != nil {
		return err
	}
	base := ctrl.DB.WithContext(c.UserContext()).Model(&model.RequestModel{}).Where("id_group = ?", id)
	return ctrl.list(c, base)
}

// ListProfileRequests is GET /profiles/:username/requests.
func (ctrl *RequestController) ListProfileRequests(c *fiber.Ctx) error {
	username := c.Params("username")
	var n int64
	if err := ctrl.DB.WithContext(c.UserContext()).Model(&profileModel.ProfileModel{}).
		Where("username = ?", username).Count(&n).Error; err != nil {
		return helper.ErrInternal(err)
	}
	if n == 0 {
		return helper.ErrNotFound("Username %s does not exist", username)
	}
	base := ctrl.DB.WithContext(c.UserContext()).Model(&model.RequestModel{}).Where("username = ?", username)
	return ctrl.list(c, base)
}
