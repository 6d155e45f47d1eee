// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package task

// UserRole is the role a task assigns to a referenced user. The
// recognized roles are [RoleAssignee] and [RoleClient]; any other
// non-empty string is a custom role, carried verbatim for forward
// compatibility. The empty string is "no role" and is encoded as the
// absence of a role value (a bare "p" tag), never as an empty value.
type UserRole string

const (
	// RoleNone marks a referenced user with no specific role
	// (mentioned or CC'd).
	RoleNone UserRole = ""

	// RoleAssignee marks the user assigned to work on the task.
	RoleAssignee UserRole = "assignee"

	// RoleClient marks the client or requester of the task.
	RoleClient UserRole = "client"
)

// ParseUserRole maps a wire role string to a UserRole. Total: the
// empty string is RoleNone, the recognized literals map to their
// roles, and anything else is a custom role holding the raw string.
func ParseUserRole(raw string) UserRole {
	return UserRole(raw)
}

// IsNone reports whether the role is RoleNone.
func (r UserRole) IsNone() bool { return r == RoleNone }

// String returns the wire form: the role literal, or "" for RoleNone.
func (r UserRole) String() string { return string(r) }
