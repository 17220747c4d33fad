package dto

import (
	"strings"
	"time"

	"gorm.io/datatypes"

	"mutualaid_backend/internals/features/users/profiles/model"
	helper "mutualaid_backend/internals/helpers"
)

const DateLayout = "2006-01-02"

// ============================
// Create
// ============================

type CreateProfileRequest struct {
	FirstName   string  `json:"first_name" validate:"required"`
	LastName    string  `json:"last_name" validate:"required"`
	Gender      *bool   `json:"gender" validate:"required"`
	AvatarURL   string  `json:"avatar_url" validate:"omitempty,http_url"`
	DateOfBirth string  `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	Country     string  `json:"country" validate:"required"`
	Province    string  `json:"province" validate:"required"`
	District    string  `json:"district" validate:"required"`
	Ward        string  `json:"ward" validate:"required"`
	Street      string  `json:"street" validate:"required"`
	Email       *string `json:"email" validate:"omitempty,email"`
	PhoneNumber *string `json:"phone_number"`
}

func (r CreateProfileRequest) ToModel(username string, isAdmin bool) (model.ProfileModel, error) {
	dob, err := parseDate(r.DateOfBirth)
	if err != nil {
		return model.ProfileModel{}, err
	}
	return model.ProfileModel{
		Username:    username,
		FirstName:   strings.TrimSpace(r.FirstName),
		LastName:    strings.TrimSpace(r.LastName),
		Gender:      *r.Gender,
		AvatarURL:   r.AvatarURL,
		DateOfBirth: dob,
		Country:     r.Country,
		Province:    r.Province,
		District:    r.District,
		Ward:        r.Ward,
		Street:      r.Street,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
		IsAdmin:     isAdmin,
	}, nil
}

// ============================
// Update (self only)
// ============================

// UpdateFields are the json keys a user may change on their own profile.
var UpdateFields = []string{
	"first_name", "last_name", "gender", "avatar_url", "date_of_birth",
	"country", "province", "district", "ward", "street", "email", "phone_number",
}

type UpdateProfileRequest struct {
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	Gender      *bool   `json:"gender"`
	AvatarURL   *string `json:"avatar_url" validate:"omitempty,http_url"`
	DateOfBirth *string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Country     *string `json:"country"`
	Province    *string `json:"province"`
	District    *string `json:"district"`
	Ward        *string `json:"ward"`
	Street      *string `json:"street"`
	Email       *string `json:"email" validate:"omitempty,email"`
	PhoneNumber *string `json:"phone_number"`
}

// Updates returns the column map for gorm Updates. Required columns may not be blanked.
func (r UpdateProfileRequest) Updates() (map[string]any, error) {
	if err := helper.CheckNotEmpty(r.FirstName, r.LastName, r.DateOfBirth,
		r.Country, r.Province, r.District, r.Ward, r.Street); err != nil {
		return nil, err
	}

	m := map[string]any{}
	set := func(col string, v *string) {
		if v != nil {
			m[col] = strings.TrimSpace(*v)
		}
	}
	set("first_name", r.FirstName)
	set("last_name", r.LastName)
	set("avatar_url", r.AvatarURL)
	set("country", r.Country)
	set("province", r.Province)
	set("district", r.District)
	set("ward", r.Ward)
	set("street", r.Street)
	if r.Gender != nil {
		m["gender"] = *r.Gender
	}
	if r.Email != nil {
		m["email"] = *r.Email
	}
	if r.PhoneNumber != nil {
		m["phone_number"] = *r.PhoneNumber
	}
	if r.DateOfBirth != nil {
		dob, err := parseDate(*r.DateOfBirth)
		if err != nil {
			return nil, err
		}
		m["date_of_birth"] = dob
	}
	return m, nil
}

func parseDate(s string) (datatypes.Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return datatypes.Date{}, helper.ErrValidation("date_of_birth must be a date formatted as %s", DateLayout)
	}
	return datatypes.Date(t), nil
}
