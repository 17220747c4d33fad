package service

import (
	"context"

	"gorm.io/gorm"

	"mutualaid_backend/internals/features/social/images/model"
	"mutualaid_backend/internals/features/social/parent"
)

// Input is one entry of the images[] body field of requests and supports.
type Input struct {
	URL string `json:"url" validate:"required,http_url"`
}

func rows(ref parent.Ref, images []Input) []model.ImageModel {
	cols := ref.Columns()
	out := make([]model.ImageModel, 0, len(images))
	for _, img := range images {
		out = append(out, model.ImageModel{
			IDRequest:  cols.IDRequest,
			IDSupport:  cols.IDSupport,
			ObjectType: cols.ObjectType,
			URL:        img.URL,
		})
	}
	return out
}

// Attach inserts one image row per entry under ref.
func Attach(ctx context.Context, db *gorm.DB, ref parent.Ref, images []Input) ([]model.ImageModel, error) {
	list := rows(ref, images)
	if len(list) == 0 {
		return []model.ImageModel{}, nil
	}
	if err := db.WithContext(ctx).Create(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// Replace deletes every image of ref, then inserts images.
func Replace(ctx context.Context, db *gorm.DB, ref parent.Ref, images []Input) ([]model.ImageModel, error) {
	if err := ref.Apply(db.WithContext(ctx)).Delete(&model.ImageModel{}).Error; err != nil {
		return nil, err
	}
	return Attach(ctx, db, ref, images)
}
