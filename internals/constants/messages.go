package constants

import "fmt"

// Client messages shared by several handlers.
const (
	MsgEmptyFields       = "Data has empty fields"
	MsgUserMustBeAdmin   = "User must be admin"
	MsgAdminCannotJoin   = "Admin can not join groups"
	MsgContentEmpty      = "Content is empty"
	MsgInvalidBody       = "Invalid request body"
	msgUserMustBe        = "User must be %s"
	msgUserMustBeOrAdmin = "User must be %s or admin"
	msgUserMustBeEither  = "User must be %s or %s"
)

func UserMustBe(username string) string {
	return fmt.Sprintf(msgUserMustBe, username)
}

func UserMustBeOrAdmin(username string) string {
	return fmt.Sprintf(msgUserMustBeOrAdmin, username)
}

func UserMustBeEither(a, b string) string {
	return fmt.Sprintf(msgUserMustBeEither, a, b)
}
