package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"mutualaid_backend/internals/constants"
	"mutualaid_backend/internals/features/users/profiles/dto"
	"mutualaid_backend/internals/features/users/profiles/model"
	helper "mutualaid_backend/internals/helpers"
	authHelper "mutualaid_backend/internals/helpers/auth"
	"mutualaid_backend/internals/helpers/placeholder"
	"mutualaid_backend/internals/helpers/storage"
)

var profileSortFields = []string{"date_created", "username", "first_name", "last_name"}

type ProfileController struct {
	DB          *gorm.DB
	Placeholder *placeholder.Generator
}

func NewProfileController(db *gorm.DB, gen *placeholder.Generator) *ProfileController {
	return &ProfileController{DB: db, Placeholder: gen}
}

func (ctrl *ProfileController) find(c *fiber.Ctx, username string) (*model.ProfileModel, error) {
	var p model.ProfileModel
	err := ctrl.DB.WithContext(c.UserContext()).Where("username = ?", username).Take(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.ErrNotFound("Username %s does not exist", username)
	}
	if err != nil {
		return nil, helper.ErrInternal(err)
	}
	return &p, nil
}

// =======================
// List (admin)
// =======================
func (ctrl *ProfileController) ListProfiles(c *fiber.Ctx) error {
	lq, err := helper.ParseListQuery(c, profileSortFields...)
	if err != nil {
		return err
	}
	base := ctrl.DB.WithContext(c.UserContext()).Model(&model.ProfileModel{}).Where("is_deleted = ?", false)
	base = lq.ApplySearch(base, "username")

	profiles := []model.ProfileModel{}
	page, total, err := lq.Fetch(base, "profiles", &profiles)
	if err != nil {
		return err
	}
	return helper.JsonList(c, "profiles", page, total, profiles)
}

// =======================
// Create (own profile)
// =======================
func (ctrl *ProfileController) CreateProfile(c *fiber.Ctx) error {
	username, isAdmin, _ := authHelper.CurrentUser(c)

	var body dto.CreateProfileRequest
	if err := helper.ParseBody(c, &body); err != nil {
		return err
	}
	profile, err := body.ToModel(username, isAdmin)
	if err != nil {
		return err
	}

	var avatar string
	if profile.AvatarURL == "" {
		avatar = ctrl.generateAvatar(c, &profile)
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Create(&profile).Error; err != nil {
		if derr := ctrl.Placeholder.Discard(c.UserContext(), avatar); derr != nil {
			log.WithField("username", username).Warnf("discard avatar: %v", derr)
		}
		return helper.DBError(err, "Profile "+username+" already exists")
	}
	return helper.JsonCreated(c, profile)
}

// generateAvatar fills AvatarURL with an initials placeholder and returns the
// stored URL. Failure leaves AvatarURL empty.
func (ctrl *ProfileController) generateAvatar(c *fiber.Ctx, p *model.ProfileModel) string {
	if ctrl.Placeholder == nil {
		return ""
	}
	u, err := ctrl.Placeholder.Generate(c.UserContext(), placeholder.Initials(p.FirstName, p.LastName), placeholder.Avatar)
	if err != nil {
		log.WithField("username", p.Username).Warnf("avatar placeholder: %v", err)
		return ""
	}
	p.AvatarURL = storage.AbsoluteURL(helper.BaseURL(c), u)
	return u
}

func (ctrl *ProfileController) GetProfile(c *fiber.Ctx) error {
	p, err := ctrl.find(c, c.Params("username"))
	if err != nil {
		return err
	}
	return helper.JsonOK(c, p)
}

// =======================
// Update (self)
// =======================
func (ctrl *ProfileController) UpdateProfile(c *fiber.Ctx) error {
	target := c.Params("username")
	caller, _, _ := authHelper.CurrentUser(c)

	p, err := ctrl.find(c, target)
	if err != nil {
		return err
	}
	if caller != p.Username {
		return helper.ErrForbidden("%s", constants.UserMustBe(p.Username))
	}

	if err := helper.CheckFields(c, dto.UpdateFields...); err != nil {
		return err
	}
	var body dto.UpdateProfileRequest
	if err := helper.ParseBody(c, &body); err != nil {
		return err
	}
	updates, err := body.Updates()
	if err != nil {
		return err
	}

	if len(updates) > 0 {
		if err := ctrl.DB.WithContext(c.UserContext()).Model(p).Updates(updates).Error; err != nil {
			return helper.DBError(err, "")
		}
	}
	p, err = ctrl.find(c, target)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, p)
}

// =======================
// Delete (self or admin, soft)
// =======================
func (ctrl *ProfileController) DeleteProfile(c *fiber.Ctx) error {
	caller, isAdmin, _ := authHelper.CurrentUser(c)

	p, err := ctrl.find(c, c.Params("username"))
	if err != nil {
		return err
	}
	if caller != p.Username && !isAdmin {
		return helper.ErrForbidden("%s", constants.UserMustBeOrAdmin(p.Username))
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Model(p).Update("is_deleted", true).Error; err != nil {
		return helper.ErrInternal(err)
	}
	p.IsDeleted = true
	return helper.JsonOK(c, p)
}
