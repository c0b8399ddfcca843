//go:build windows

package trash

import (
	"context"
	"unsafe"

	"go.trai.ch/fclean/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sys/windows"
)

var (
	modShell32           = windows.NewLazySystemDLL("shell32.dll")
	procSHFileOperationW = modShell32.NewProc("SHFileOperationW")
)

const (
	foDelete          = 0x0003
	fofSilent         = 0x0004
	fofNoConfirmation = 0x0010
	fofAllowUndo      = 0x0040
	fofNoErrorUI      = 0x0400
)

// shFileOpStruct mirrors the Windows SHFILEOPSTRUCTW struct.
type shFileOpStruct struct {
	hwnd                  uintptr
	wFunc                 uint32
	pFrom                 *uint16
	pTo                   *uint16
	fFlags                uint16
	fAnyOperationsAborted int32
	hNameMappings         uintptr
	lpszProgressTitle     *uint16
}

// moveToTrash sends path to the Recycle Bin through the Shell API.
func (t *Trash) moveToTrash(_ context.Context, path string) error {
	if err := procSHFileOperationW.Find(); err != nil {
		return zerr.Wrap(err, domain.ErrTrashUnavailable.Error())
	}

	from, err := windows.UTF16FromString(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrTrashFailed.Error()), "path", path)
	}
	// pFrom is a list terminated by an empty string.
	from = append(from, 0)

	op := shFileOpStruct{
		wFunc:  foDelete,
		pFrom:  &from[0],
		fFlags: fofAllowUndo | fofNoConfirmation | fofSilent | fofNoErrorUI,
	}

	ret, _, _ := procSHFileOperationW.Call(uintptr(unsafe.Pointer(&op)))
	if ret != 0 {
		return zerr.With(zerr.With(domain.ErrTrashFailed, "path", path), "code", uint32(ret))
	}
	if op.fAnyOperationsAborted != 0 {
		return zerr.With(domain.ErrTrashFailed, "path", path)
	}
	return nil
}
