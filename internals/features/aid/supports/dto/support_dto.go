package dto

import (
	"mutualaid_backend/internals/features/aid/supports/model"
	imageService "mutualaid_backend/internals/features/social/images/service"
)

type CreateSupportRequest struct {
	Content string               `json:"content" validate:"required"`
	Images  []imageService.Input `json:"images" validate:"omitempty,dive"`
}

var (
	// SupporterFields may be sent by the author of the support.
	SupporterFields = []string{"content", "images"}
	// RequesterFields may be sent by the author of the supported request.
	RequesterFields = []string{"is_confirmed"}
)

type UpdateSupportRequest struct {
	Content     *string               `json:"content"`
	Images      *[]imageService.Input `json:"images" validate:"omitempty,dive"`
	IsConfirmed *bool                 `json:"is_confirmed"`
}

type SupportDetail struct {
	model.SupportModel
	TotalReactions int64 `json:"total_reactions"`
	TotalComments  int64 `json:"total_comments"`
}
