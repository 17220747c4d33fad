package controller

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"mutualaid_backend/internals/constants"
	requestController "mutualaid_backend/internals/features/aid/requests/controller"
	"mutualaid_backend/internals/features/aid/supports/dto"
	"mutualaid_backend/internals/features/aid/supports/model"
	memberController "mutualaid_backend/internals/features/groups/members/controller"
	imageModel "mutualaid_backend/internals/features/social/images/model"
	imageService "mutualaid_backend/internals/features/social/images/service"
	"mutualaid_backend/internals/features/social/parent"
	helper "mutualaid_backend/internals/helpers"
	authHelper "mutualaid_backend/internals/helpers/auth"
)

var supportSortFields = []string{"date_created", "id_support", "username", "is_confirmed"}

type SupportController struct {
	DB *gorm.DB
}

func NewSupportController(db *gorm.DB) *SupportController {
	return &SupportController{DB: db}
}

func withAssociations(db *gorm.DB) *gorm.DB {
	return db.Preload("User").Preload("Images", func(db *gorm.DB) *gorm.DB {
		return db.Order("id_image ASC")
	})
}

func FindSupport(ctx context.Context, db *gorm.DB, id uint) (*model.SupportModel, error) {
	var s model.SupportModel
	err := withAssociations(db.WithContext(ctx)).Where("id_support = ?", id).Take(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.ErrNotFound("Support ID %d does not exist", id)
	}
	if err != nil {
		return nil, helper.ErrInternal(err)
	}
	if s.Images == nil {
		s.Images = []imageModel.ImageModel{}
	}
	return &s, nil
}

func (ctrl *SupportController) detail(ctx context.Context, id uint) (*dto.SupportDetail, error) {
	s, err := FindSupport(ctx, ctrl.DB, id)
	if err != nil {
		return nil, err
	}
	d := dto.SupportDetail{SupportModel: *s}
	ref := parent.Support(id)
	if err := ref.Apply(ctrl.DB.WithContext(ctx).Table("reactions")).Count(&d.TotalReactions).Error; err != nil {
		return nil, helper.ErrInternal(err)
	}
	if err := ref.Apply(ctrl.DB.WithContext(ctx).Table("comments")).
		Where("is_deleted = ?", false).Count(&d.TotalComments).Error; err != nil {
		return nil, helper.ErrInternal(err)
	}
	return &d, nil
}

// =======================
// Create
// =======================
func (ctrl *SupportController) CreateSupport(c *fiber.Ctx) error {
	idRequest, err := helper.ParseIDParam(c, "id_request")
	if err != nil {
		return err
	}
	ctx := c.UserContext()
	request, err := requestController.FindRequest(ctx, ctrl.DB, idRequest)
	if err != nil {
		return err
	}
	if request.IsDeleted {
		return helper.ErrValidation("Request ID %d has been deleted", idRequest)
	}

	username, _, _ := authHelper.CurrentUser(c)
	if username == request.Username {
		return helper.ErrValidation("Username of supporting user must be different from username of requesting user")
	}
	// Request -> Group -> Member, looked up on every call.
	ok, err := memberController.IsMember(ctx, ctrl.DB, username, request.IDGroup)
	if err != nil {
		return helper.ErrInternal(err)
	}
	if !ok {
		return helper.ErrValidation("Supporting user and requesting user must belong to the same group")
	}

	var body dto.CreateSupportRequest
	if err := helper.ParseBody(c, &body); err != nil {
		return err
	}

	support := model.SupportModel{IDRequest: idRequest, Username: username, Content: body.Content}
	if err := ctrl.DB.WithContext(ctx).Omit(clause.Associations).Create(&support).Error; err != nil {
		return helper.DBError(err, "")
	}
	images, err := imageService.Attach(ctx, ctrl.DB, parent.Support(support.IDSupport), body.Images)
	if err != nil {
		return helper.ErrInternal(err)
	}
	support.Images = images
	return helper.JsonCreated(c, support)
}

func (ctrl *SupportController) GetSupport(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id_support")
	if err != nil {
		return err
	}
	d, err := ctrl.detail(c.UserContext(), id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, d)
}

// =======================
// Update
// =======================
func (ctrl *SupportController) UpdateSupport(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id_support")
	if err != nil {
		return err
	}
	ctx := c.UserContext()
	s, err := FindSupport(ctx, ctrl.DB, id)
	if err != nil {
		return err
	}
	request, err := requestController.FindRequest(ctx, ctrl.DB, s.IDRequest)
	if err != nil {
		return err
	}

	caller, _, _ := authHelper.CurrentUser(c)
	supporter := caller == s.Username
	requester := caller == request.Username

	var allowed []string
	if supporter {
		allowed = append(allowed, dto.SupporterFields...)
	}
	if requester {
		allowed = append(allowed, dto.RequesterFields...)
	}
	if len(allowed) == 0 {
		return helper.ErrForbidden("%s", constants.UserMustBeEither(s.Username, request.Username))
	}
	if err := helper.CheckFields(c, allowed...); err != nil {
		return err
	}

	var body dto.UpdateSupportRequest
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
	case body.IsConfirmed != nil:
		updates["is_confirmed"] = *body.IsConfirmed
	case requester:
		// the request owner confirms when no value is sent
		updates["is_confirmed"] = true
	}

	if len(updates) > 0 {
		if err := ctrl.DB.WithContext(ctx).Model(&model.SupportModel{}).
			Where("id_support = ?", id).Updates(updates).Error; err != nil {
			return helper.DBError(err, "")
		}
	}
	if body.Images != nil {
		if _, err := imageService.Replace(ctx, ctrl.DB, parent.Support(id), *body.Images); err != nil {
			return helper.ErrInternal(err)
		}
	}

	d, err := ctrl.detail(ctx, id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, d)
}

// =======================
// Delete (owner | admin, soft)
// =======================
func (ctrl *SupportController) DeleteSupport(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id_support")
	if err != nil {
		return err
	}
	s, err := FindSupport(c.UserContext(), ctrl.DB, id)
	if err != nil {
		return err
	}
	caller, isAdmin, _ := authHelper.CurrentUser(c)
	if caller != s.Username && !isAdmin {
		return helper.ErrForbidden("%s", constants.UserMustBeOrAdmin(s.Username))
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Model(&model.SupportModel{}).
		Where("id_support = ?", id).Update("is_deleted", true).Error; err != nil {
		return helper.ErrInternal(err)
	}
	s.IsDeleted = true
	return helper.JsonOK(c, s)
}

// =======================
// List supports of a request
// =======================
func (ctrl *SupportController) ListSupports(c *fiber.Ctx) error {
	idRequest, err := helper.ParseIDParam(c, "id_request")
	if err != nil {
		return err
	}
	lq, err := helper.ParseListQuery(c, supportSortFields...)
	if err != nil {
		return err
	}
	if _, err := requestController.FindRequest(c.UserContext(), ctrl.DB, idRequest); err != nil {
		return err
	}

	base := ctrl.DB.WithContext(c.UserContext()).Model(&model.SupportModel{}).
		Where("id_request = ? AND is_deleted = ?", idRequest, false)
	base = lq.ApplySearch(base, "username")

	supports := []model.SupportModel{}
	page, total, err := lq.Fetch(base, "supports", &supports, withAssociations)
	if err != nil {
		return err
	}
	for i := range supports {
		if supports[i].Images == nil {
			supports[i].Images = []imageModel.ImageModel{}
		}
	}
	return helper.JsonList(c, "supports", page, total, supports)
}
