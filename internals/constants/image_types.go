package constants

import "strings"

// AcceptedImageTypes are the sniffed MIME types POST /upload stores.
var AcceptedImageTypes = []string{"image/jpeg", "image/png"}

func InvalidImageTypeMessage() string {
	return "Invalid image type. Supported image types are " + strings.Join(AcceptedImageTypes, ", ") + "."
}
