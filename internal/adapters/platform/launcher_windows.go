// SPDX-FileCopyrightText: 2025 The Freshstart Authors
// SPDX-License-Identifier: EUPL-1.2

//go:build windows

package platform

import (
	"context"
	"errors"
	"fmt"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/janderssonse/freshstart/internal/domain"
)

const (
	seeMaskNoCloseProcess = 0x00000040
	seeMaskNoAsync        = 0x00000100
)

var procShellExecuteExW = windows.NewLazySystemDLL("shell32.dll").NewProc("ShellExecuteExW") //nolint:gochecknoglobals

// shellExecuteInfo mirrors SHELLEXECUTEINFOW.
type shellExecuteInfo struct {
	size         uint32
	mask         uint32
	hwnd         windows.HWND
	verb         *uint16
	file         *uint16
	parameters   *uint16
	directory    *uint16
	show         int32
	instApp      windows.Handle
	idList       uintptr
	class        *uint16
	keyClass     windows.Handle
	hotKey       uint32
	iconOrScreen windows.Handle
	process      windows.Handle
}

func newShellExecuteInfo(verb, file, parameters *uint16) *shellExecuteInfo {
	info := &shellExecuteInfo{
		mask:       seeMaskNoCloseProcess | seeMaskNoAsync,
		verb:       verb,
		file:       file,
		parameters: parameters,
		show:       windows.SW_SHOWNORMAL,
	}
	info.size = uint32(unsafe.Sizeof(*info))

	return info
}

func shellExecuteEx(info *shellExecuteInfo) error {
	if err := procShellExecuteExW.Find(); err != nil {
		return err
	}

	ret, _, err := procShellExecuteExW.Call(uintptr(unsafe.Pointer(info)))
	if ret != 0 {
		return nil
	}

	var errno syscall.Errno
	if errors.As(err, &errno) && errno != 0 {
		return errno
	}

	return domain.ErrLaunchFailed
}

// ShellLauncher starts programs through ShellExecuteEx, asking for
// elevation with the runas verb unless the process already is an administrator.
type ShellLauncher struct {
	verb string
}

func newSystemLauncher() domain.Launcher {
	verb := "runas"
	if admin, err := isAdmin(); err == nil && admin {
		verb = "open"
	}

	return &ShellLauncher{verb: verb}
}

// Launch starts exe with args and blocks until it exits.
// The context is not used to stop a running program.
func (l *ShellLauncher) Launch(_ context.Context, exe, args string) (int, error) {
	verb, err := windows.UTF16PtrFromString(l.verb)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", domain.ErrLaunchFailed, err)
	}

	file, err := windows.UTF16PtrFromString(exe)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", domain.ErrLaunchFailed, err)
	}

	var params *uint16
	if args != "" {
		if params, err = windows.UTF16PtrFromString(args); err != nil {
			return 0, fmt.Errorf("%w: %w", domain.ErrLaunchFailed, err)
		}
	}

	info := newShellExecuteInfo(verb, file, params)

	if err := shellExecuteEx(info); err != nil {
		return 0, classifyShellError(exe, err)
	}

	// Installers handing off to an already running process return no handle.
	if info.process == 0 {
		return 0, nil
	}
	defer windows.CloseHandle(info.process) //nolint:errcheck

	if _, err := windows.WaitForSingleObject(info.process, windows.INFINITE); err != nil {
		return 0, fmt.Errorf("%w: waiting for %s: %w", domain.ErrLaunchFailed, exe, err)
	}

	var code uint32
	if err := windows.GetExitCodeProcess(info.process, &code); err != nil {
		return 0, fmt.Errorf("%w: reading exit code of %s: %w", domain.ErrLaunchFailed, exe, err)
	}

	return int(int32(code)), nil //nolint:gosec
}

func classifyShellError(exe string, err error) error {
	switch {
	case errors.Is(err, windows.ERROR_CANCELLED):
		return fmt.Errorf("%w: %w", domain.ErrElevationCancelled, err)
	case errors.Is(err, windows.ERROR_FILE_NOT_FOUND), errors.Is(err, windows.ERROR_PATH_NOT_FOUND):
		return fmt.Errorf("%w: %s: %w", domain.ErrExecutableNotFound, exe, err)
	case errors.Is(err, windows.ERROR_ACCESS_DENIED):
		return fmt.Errorf("%w: %w", domain.ErrPermissionDenied, err)
	default:
		return fmt.Errorf("%w: %w", domain.ErrLaunchFailed, err)
	}
}
