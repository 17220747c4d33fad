package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mutualaid_backend/internals/constants"
	"mutualaid_backend/internals/features/social/comments/dto"
	"mutualaid_backend/internals/features/social/comments/model"
	"mutualaid_backend/internals/features/social/parent"
	helper "mutualaid_backend/internals/helpers"
	authHelper "mutualaid_backend/internals/helpers/auth"
)

type CommentController struct {
	DB *gorm.DB
}

func NewCommentController(db *gorm.DB) *CommentController {
	return &CommentController{DB: db}
}

func parseContent(c *fiber.Ctx) (string, error) {
	var body dto.CommentRequest
	if err := helper.ParseBody(c, &body); err != nil {
		return "", err
	}
	content := strings.TrimSpace(body.Content)
	if content == "" {
		return "", helper.ErrValidation("%s", constants.MsgContentEmpty)
	}
	return content, nil
}

func (ctrl *CommentController) find(c *fiber.Ctx) (*model.CommentModel, error) {
	id, err := helper.ParseIDParam(c, "id_comment")
	if err != nil {
		return nil, err
	}
	var cm model.CommentModel
	err = ctrl.DB.WithContext(c.UserContext()).Preload("User").Where("id_comment = ?", id).Take(&cm).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.ErrNotFound("comment %d does not exist", id)
	}
	if err != nil {
		return nil, helper.ErrInternal(err)
	}
	return &cm, nil
}

// CreateComment handles POST /requests/:id_request/comments and /supports/:id_support/comments.
func (ctrl *CommentController) CreateComment(kind parent.Kind) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ref, err := parent.FromParam(c, kind)
		if err != nil {
			return err
		}
		if err := ref.MustExist(c.UserContext(), ctrl.DB); err != nil {
			return err
		}
		content, err := parseContent(c)
		if err != nil {
			return err
		}

		username, _, _ := authHelper.CurrentUser(c)
		cols := ref.Columns()
		comment := model.CommentModel{
			IDRequest:  cols.IDRequest,
			IDSupport:  cols.IDSupport,
			ObjectType: cols.ObjectType,
			Username:   username,
			Content:    content,
		}
		if err := ctrl.DB.WithContext(c.UserContext()).Omit("User").Create(&comment).Error; err != nil {
			return helper.DBError(err, "")
		}
		return helper.JsonCreated(c, comment)
	}
}

// ListComments returns the parent's comments, newest first, deleted ones excluded.
func (ctrl *CommentController) ListComments(kind parent.Kind) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ref, err := parent.FromParam(c, kind)
		if err != nil {
			return err
		}
		if err := ref.MustExist(c.UserContext(), ctrl.DB); err != nil {
			return err
		}

		lq := helper.NewestFirst(c)
		lq.ThenBy = "id_comment"
		base := ref.Apply(ctrl.DB.WithContext(c.UserContext()).Model(&model.CommentModel{})).
			Where("is_deleted = ?", false)

		comments := []model.CommentModel{}
		page, total, err := lq.Fetch(base, "comments", &comments, func(db *gorm.DB) *gorm.DB {
			return db.Preload("User")
		})
		if err != nil {
			return err
		}
		if page == nil {
			return helper.JsonOK(c, fiber.Map{"comments": comments})
		}
		return helper.JsonPaged(c, "comments", *page, total, comments)
	}
}

func (ctrl *CommentController) GetComment(c *fiber.Ctx) error {
	cm, err := ctrl.find(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, cm)
}

// =======================
// Update / Delete (author only)
// =======================
func (ctrl *CommentController) UpdateComment(c *fiber.Ctx) error {
	cm, err := ctrl.find(c)
	if err != nil {
		return err
	}
	if caller, _, _ := authHelper.CurrentUser(c); caller != cm.Username {
		return helper.ErrForbidden("%s", constants.UserMustBe(cm.Username))
	}
	content, err := parseContent(c)
	if err != nil {
		return err
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Model(&model.CommentModel{}).
		Where("id_comment = ?", cm.IDComment).Update("content", content).Error; err != nil {
		return helper.ErrInternal(err)
	}
	cm.Content = content
	return helper.JsonOK(c, cm)
}

func (ctrl *CommentController) DeleteComment(c *fiber.Ctx) error {
	cm, err := ctrl.find(c)
	if err != nil {
		return err
	}
	if caller, _, _ := authHelper.CurrentUser(c); caller != cm.Username {
		return helper.ErrForbidden("%s", constants.UserMustBe(cm.Username))
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Model(&model.CommentModel{}).
		Where("id_comment = ?", cm.IDComment).Update("is_deleted", true).Error; err != nil {
		return helper.ErrInternal(err)
	}
	cm.IsDeleted = true
	return helper.JsonOK(c, cm)
}
