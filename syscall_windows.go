package userhome

import (
	"strings"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

// winScratch holds the scratch buffers for one resolution call. Capacities
// only grow, sized to whatever the native calls report as required, and
// nothing in here survives the call; it is pure capacity, not a cache.
type winScratch struct {
	wchar  []uint16 // paths, account names, error messages
	domain []uint16 // LookupAccountSid referenced domain out-parameter
	bytes  []byte   // GetTokenInformation structures
	pids   []uint32 // EnumProcesses output
}

func newWinScratch(size int) *winScratch {
	return &winScratch{
		wchar:  make([]uint16, size),
		domain: make([]uint16, size),
		bytes:  make([]byte, size),
		pids:   make([]uint32, size),
	}
}

// growUTF16 returns a wide-char buffer of at least n entries, never smaller
// than double the current one.
func growUTF16(buf []uint16, n int) []uint16 {
	if n <= len(buf) {
		n = len(buf) * 2
	}
	return make([]uint16, n)
}

func growBytes(buf []byte, n int) []byte {
	if n <= len(buf) {
		n = len(buf) * 2
	}
	return make([]byte, n)
}

// userProfileDirectory returns the profile directory of the account the
// token belongs to, growing the scratch to the size the OS reports when the
// buffer is too small.
func userProfileDirectory(t *token, s *winScratch) (string, error) {
	for {
		n := uint32(len(s.wchar))
		err := windows.GetUserProfileDirectory(t.handle, &s.wchar[0], &n)
		if err == nil {
			return pathFromUTF16(s.wchar, n), nil
		}
		if err == windows.ERROR_INSUFFICIENT_BUFFER {
			s.wchar = growUTF16(s.wchar, int(n))
			continue
		}
		return "", osError(err, s)
	}
}

var (
	modUserenv = windows.NewLazySystemDLL("userenv.dll")

	procGetDefaultUserProfileDirectoryW = modUserenv.NewProc("GetDefaultUserProfileDirectoryW")
)

func getDefaultUserProfileDirectory(dir *uint16, dirLen *uint32) error {
	r1, _, e1 := procGetDefaultUserProfileDirectoryW.Call(
		uintptr(unsafe.Pointer(dir)),
		uintptr(unsafe.Pointer(dirLen)),
	)
	if r1 == 0 {
		if e1 != syscall.Errno(0) {
			return e1
		}
		return syscall.EINVAL
	}
	return nil
}

// defaultProfileDirectory returns the profile directory template used for
// new accounts ("Default").
func defaultProfileDirectory(s *winScratch) (string, error) {
	for {
		n := uint32(len(s.wchar))
		err := getDefaultUserProfileDirectory(&s.wchar[0], &n)
		if err == nil {
			return pathFromUTF16(s.wchar, n), nil
		}
		if err == windows.ERROR_INSUFFICIENT_BUFFER {
			s.wchar = growUTF16(s.wchar, int(n))
			continue
		}
		return "", osError(err, s)
	}
}

// pathFromUTF16 converts the first n entries of buf, which include the
// terminating NUL, into a string. Nothing past what the OS reported as
// written is read.
func pathFromUTF16(buf []uint16, n uint32) string {
	if int(n) > len(buf) {
		n = uint32(len(buf))
	}
	return windows.UTF16ToString(buf[:n])
}

// tokenSID returns the SID of the account the token belongs to. The SID is a
// view into the scratch byte buffer and is only valid until the buffer is
// next written to.
func tokenSID(t *token, s *winScratch) (*windows.SID, error) {
	var n uint32
	for {
		err := windows.GetTokenInformation(t.handle, windows.TokenUser, &s.bytes[0], uint32(len(s.bytes)), &n)
		if err == nil {
			break
		}
		if err == windows.ERROR_INSUFFICIENT_BUFFER {
			s.bytes = growBytes(s.bytes, int(n))
			continue
		}
		return nil, osError(err, s)
	}
	tu := (*windows.Tokenuser)(unsafe.Pointer(&s.bytes[0]))
	if tu.User.Sid == nil {
		return nil, &OSError{Msg: "GetTokenInformation returned a token user without a SID"}
	}
	return tu.User.Sid, nil
}

// tokenElevated reports whether the token carries elevated privilege.
func tokenElevated(t *token, s *winScratch) (bool, error) {
	var elevation uint32 // TOKEN_ELEVATION is a single DWORD
	var n uint32
	err := windows.GetTokenInformation(t.handle, windows.TokenElevation,
		(*byte)(unsafe.Pointer(&elevation)), uint32(unsafe.Sizeof(elevation)), &n)
	if err != nil {
		return false, osError(err, s)
	}
	return elevation != 0, nil
}

// accountName resolves a SID to its plain account name, without the domain.
func accountName(sid *windows.SID, s *winScratch) (string, error) {
	var use uint32
	for {
		nameLen := uint32(len(s.wchar))
		domainLen := uint32(len(s.domain))
		err := windows.LookupAccountSid(nil, sid, &s.wchar[0], &nameLen, &s.domain[0], &domainLen, &use)
		if err == nil {
			// On success nameLen is the number of characters written,
			// excluding the terminating NUL.
			return windows.UTF16ToString(s.wchar[:nameLen]), nil
		}
		if err == windows.ERROR_INSUFFICIENT_BUFFER {
			s.wchar = growUTF16(s.wchar, int(nameLen))
			s.domain = growUTF16(s.domain, int(domainLen))
			continue
		}
		return "", osError(err, s)
	}
}

// enumProcesses returns the pids of every process object in the system. The
// API gives no truncation signal, so the buffer is doubled until the OS
// fills less than all of it.
func enumProcesses(s *winScratch) ([]uint32, error) {
	const pidSize = uint32(unsafe.Sizeof(uint32(0)))
	for {
		var ret uint32
		if err := windows.EnumProcesses(s.pids, &ret); err != nil {
			return nil, osError(err, s)
		}
		n := int(ret / pidSize)
		if n < len(s.pids) {
			return s.pids[:n], nil
		}
		s.pids = make([]uint32, len(s.pids)*2)
	}
}

// osError translates a failed native call into an OSError carrying the
// system's own message for the error code.
func osError(err error, s *winScratch) error {
	errno, ok := err.(syscall.Errno)
	if !ok {
		return &OSError{Msg: err.Error()}
	}
	return &OSError{Msg: formatMessage(uint32(errno), s)}
}

// formatMessage asks the OS for the human-readable text of an error code.
// Best-effort: an empty string is returned when even the formatting call
// fails.
func formatMessage(code uint32, s *winScratch) string {
	const flags = windows.FORMAT_MESSAGE_FROM_SYSTEM | windows.FORMAT_MESSAGE_IGNORE_INSERTS
	for {
		n, err := windows.FormatMessage(flags, 0, code, 0, s.wchar, nil)
		if err == nil {
			return strings.TrimSpace(windows.UTF16ToString(s.wchar[:n]))
		}
		if err == windows.ERROR_INSUFFICIENT_BUFFER {
			s.wchar = growUTF16(s.wchar, 0)
			continue
		}
		return ""
	}
}
