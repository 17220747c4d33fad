package dto

import (
	"strings"

	"mutualaid_backend/internals/features/groups/groups/model"
	helper "mutualaid_backend/internals/helpers"
)

type CreateGroupRequest struct {
	Name              string `json:"name" validate:"required"`
	Description       string `json:"description" validate:"required"`
	ThumbnailImageURL string `json:"thumbnail_image_url" validate:"omitempty,http_url"`
	CoverImageURL     string `json:"cover_image_url" validate:"omitempty,http_url"`
}

func (r CreateGroupRequest) ToModel() model.GroupModel {
	return model.GroupModel{
		Name:              strings.TrimSpace(r.Name),
		Description:       strings.TrimSpace(r.Description),
		ThumbnailImageURL: r.ThumbnailImageURL,
		CoverImageURL:     r.CoverImageURL,
	}
}

var UpdateFields = []string{"name", "description", "thumbnail_image_url", "cover_image_url"}

type UpdateGroupRequest struct {
	Name              *string `json:"name"`
	Description       *string `json:"description"`
	ThumbnailImageURL *string `json:"thumbnail_image_url" validate:"omitempty,http_url"`
	CoverImageURL     *string `json:"cover_image_url" validate:"omitempty,http_url"`
}

func (r UpdateGroupRequest) Updates() (map[string]any, error) {
	if err := helper.CheckNotEmpty(r.Name, r.Description, r.ThumbnailImageURL, r.CoverImageURL); err != nil {
		return nil, err
	}
	m := map[string]any{}
	if r.Name != nil {
		m["name"] = strings.TrimSpace(*r.Name)
	}
	if r.Description != nil {
		m["description"] = strings.TrimSpace(*r.Description)
	}
	if r.ThumbnailImageURL != nil {
		m["thumbnail_image_url"] = *r.ThumbnailImageURL
	}
	if r.CoverImageURL != nil {
		m["cover_image_url"] = *r.CoverImageURL
	}
	return m, nil
}

// GroupDetail is the single-group response.
type GroupDetail struct {
	model.GroupModel
	TotalMembers int64 `json:"total_members"`
}
