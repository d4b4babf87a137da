// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

const (
	MEMBER_RELATION        = "member"
	ADMINISTRATOR_RELATION = "administrator"
	PLATFORM_RELATION      = "platform"

	CAN_MANAGE_PERMISSION = "can_manage"
	CAN_EDIT_PERMISSION   = "can_edit"

	// GlobalPlatform is the single platform object every organization is linked to.
	GlobalPlatform = "global"
)

func UserTuple(userId string) string {
	return "user:" + userId
}

func OrganizationTuple(organizationId string) string {
	return "organization:" + organizationId
}

func PlatformTuple(platformId string) string {
	return "platform:" + platformId
}
