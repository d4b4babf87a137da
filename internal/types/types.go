// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

type Organization struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type Membership struct {
	ID             string    `db:"id" json:"id"`
	OrganizationID string    `db:"organization_id" json:"organization_id"`
	UserID         string    `db:"user_id" json:"user_id"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

type Device struct {
	ID             string     `db:"id" json:"id"`
	Name           string     `db:"name" json:"name"`
	IPAddress      *string    `db:"ip_address" json:"ip_address"`
	Type           DeviceType `db:"type" json:"type"`
	OrganizationID string     `db:"organization_id" json:"organization_id"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
}

type Connection struct {
	ID                   string         `db:"id" json:"id"`
	SourceDeviceID       string         `db:"source_device_id" json:"source_device_id"`
	SourceInterface      *string        `db:"source_interface" json:"source_interface"`
	DestinationDeviceID  string         `db:"destination_device_id" json:"destination_device_id"`
	DestinationInterface *string        `db:"destination_interface" json:"destination_interface"`
	Type                 ConnectionType `db:"type" json:"type"`
	Speed                *string        `db:"speed" json:"speed"`
	OrganizationID       string         `db:"organization_id" json:"organization_id"`
	CreatedAt            time.Time      `db:"created_at" json:"created_at"`
}

// User is a read only snapshot of a requester, assembled from the identity
// provider (roles, lockout) and the membership table.
type User struct {
	ID              string
	Email           string
	Roles           []string
	LockedOut       bool
	OrganizationIDs []string
}

// Identity is what an identity provider knows about a user, memberships excluded.
type Identity struct {
	ID        string   `json:"id"`
	Email     string   `json:"email"`
	Roles     []string `json:"roles"`
	LockedOut bool     `json:"locked_out"`
}

func (i *Identity) HasRole(role string) bool {
	for _, r := range i.Roles {
		if r == role {
			return true
		}
	}

	return false
}

// ToUser combines the identity with the organizations the user belongs to.
func (i *Identity) ToUser(organizationIDs []string) *User {
	return &User{
		ID:              i.ID,
		Email:           i.Email,
		Roles:           append([]string(nil), i.Roles...),
		LockedOut:       i.LockedOut,
		OrganizationIDs: organizationIDs,
	}
}

type DeviceSummary struct {
	ID               string     `db:"id" json:"id"`
	Name             string     `db:"name" json:"name"`
	IPAddress        *string    `db:"ip_address" json:"ip_address"`
	Type             DeviceType `db:"type" json:"type"`
	OrganizationID   string     `db:"organization_id" json:"organization_id"`
	OrganizationName string     `db:"organization_name" json:"organization_name"`
}

type ConnectionSummary struct {
	ID                    string         `db:"id" json:"id"`
	SourceDeviceID        string         `db:"source_device_id" json:"source_device_id"`
	SourceDeviceName      string         `db:"source_device_name" json:"source_device_name"`
	SourceDeviceType      DeviceType     `db:"source_device_type" json:"source_device_type"`
	SourceInterface       *string        `db:"source_interface" json:"source_interface"`
	DestinationDeviceID   string         `db:"destination_device_id" json:"destination_device_id"`
	DestinationDeviceName string         `db:"destination_device_name" json:"destination_device_name"`
	DestinationDeviceType DeviceType     `db:"destination_device_type" json:"destination_device_type"`
	DestinationInterface  *string        `db:"destination_interface" json:"destination_interface"`
	Type                  ConnectionType `db:"type" json:"type"`
	Speed                 *string        `db:"speed" json:"speed"`
	OrganizationID        string         `db:"organization_id" json:"organization_id"`
}

type OrganizationSummary struct {
	ID          string `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	IsActive    bool   `db:"is_active" json:"is_active"`
	MemberCount int    `db:"member_count" json:"member_count"`
}

type UserSummary struct {
	ID        string   `json:"id"`
	Email     string   `json:"email"`
	LockedOut bool     `json:"locked_out"`
	Roles     []string `json:"roles"`
}

// DevicePatch lists the fields of a device to change, nil leaves the field untouched.
type DevicePatch struct {
	Name      *string
	IPAddress *string
	Type      *DeviceType
}

// ConnectionPatch lists the fields of a connection to change, nil leaves the field untouched.
type ConnectionPatch struct {
	SourceDeviceID       *string
	DestinationDeviceID  *string
	SourceInterface      *string
	DestinationInterface *string
	Type                 *ConnectionType
	Speed                *string
}
