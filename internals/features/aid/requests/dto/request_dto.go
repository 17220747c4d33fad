package dto

import (
	"mutualaid_backend/internals/features/aid/requests/model"
	imageService "mutualaid_backend/internals/features/social/images/service"
)

type CreateRequestRequest struct {
	Content string               `json:"content" validate:"required"`
	Images  []imageService.Input `json:"images" validate:"omitempty,dive"`
}

// Fields each kind of caller may send on update.
var (
	OwnerFields = []string{"content", "images"}
	AdminFields = []string{"is_approved"}
)

type UpdateRequestRequest struct {
	Content    *string               `json:"content"`
	Images     *[]imageService.Input `json:"images" validate:"omitempty,dive"`
	IsApproved *bool                 `json:"is_approved"`
}

// RequestDetail is a request with its derived counts.
type RequestDetail struct {
	model.RequestModel
	TotalReactions int64 `json:"total_reactions"`
	TotalComments  int64 `json:"total_comments"`
	TotalSupports  int64 `json:"total_supports"`
}
