package dto

type JoinGroupRequest struct {
	AsRole         *bool `json:"as_role"`
	IsAdminInvited bool  `json:"is_admin_invited"`
}
