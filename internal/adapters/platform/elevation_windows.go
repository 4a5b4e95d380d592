// SPDX-FileCopyrightText: 2025 The Freshstart Authors
// SPDX-License-Identifier: EUPL-1.2

//go:build windows

package platform

import (
	"golang.org/x/sys/windows"
)

// isAdmin reports whether the current process token is a member of the
// built-in Administrators group.
func isAdmin() (bool, error) {
	var adminSid *windows.SID

	err := windows.AllocateAndInitializeSid(
		&windows.SECURITY_NT_AUTHORITY,
		2,
		windows.SECURITY_BUILTIN_DOMAIN_RID,
		windows.DOMAIN_ALIAS_RID_ADMINS,
		0, 0, 0, 0, 0, 0,
		&adminSid)
	if err != nil {
		return false, err
	}
	defer windows.FreeSid(adminSid) //nolint:errcheck

	return windows.Token(0).IsMember(adminSid)
}
