package controller

import (
	"io"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"mutualaid_backend/internals/constants"
	helper "mutualaid_backend/internals/helpers"
	"mutualaid_backend/internals/helpers/storage"
)

const (
	FormField       = "image"
	DefaultMaxBytes = 5 << 20
	uploadFolder    = "images"
)

type UploadController struct {
	Store    storage.Storage
	MaxBytes int64
}

func NewUploadController(store storage.Storage, maxBytes int64) *UploadController {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &UploadController{Store: store, MaxBytes: maxBytes}
}

// UploadImage stores a jpeg or png sent as multipart field "image" and returns {"url": ...}.
// The type is sniffed from the content, not taken from the client.
func (uc *UploadController) UploadImage(c *fiber.Ctx) error {
	fh, err := c.FormFile(FormField)
	if err != nil || fh == nil {
		return helper.ErrValidation("File to be uploaded not found, expected key: %s", FormField)
	}
	if fh.Size > uc.MaxBytes {
		return helper.ErrValidation("Image must not be larger than %d MiB", uc.MaxBytes>>20)
	}

	src, err := fh.Open()
	if err != nil {
		return helper.ErrInternal(err)
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, uc.MaxBytes+1))
	if err != nil {
		return helper.ErrInternal(err)
	}
	if int64(len(data)) > uc.MaxBytes {
		return helper.ErrValidation("Image must not be larger than %d MiB", uc.MaxBytes>>20)
	}

	mtype := mimetype.Detect(data)
	if !mimetype.EqualsAny(mtype.String(), constants.AcceptedImageTypes...) {
		return helper.ErrValidation("%s", constants.InvalidImageTypeMessage())
	}

	key := storage.GenerateUniqueFilename(uploadFolder, fh.Filename)
	url, err := uc.Store.Put(c.UserContext(), key, mtype.String(), data)
	if err != nil {
		return helper.ErrInternal(err)
	}
	log.WithFields(log.Fields{"key": key, "size": len(data), "type": mtype.String()}).Info("image uploaded")

	return helper.JsonOK(c, fiber.Map{"url": storage.AbsoluteURL(helper.BaseURL(c), url)})
}
