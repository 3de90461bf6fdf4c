package userhome

import (
	"golang.org/x/sys/windows"
)

// process wraps a win32 process handle. Handles from OpenProcess own the
// underlying kernel object and must be closed exactly once; the pseudo-handle
// from GetCurrentProcess must not be closed at all. Close is safe on both
// kinds so callers can defer it unconditionally.
type process struct {
	handle windows.Handle
	owned  bool
}

func currentProcess() *process {
	return &process{handle: windows.CurrentProcess()}
}

func openProcess(pid uint32, s *winScratch) (*process, error) {
	h, err := windows.OpenProcess(windows.PROCESS_QUERY_INFORMATION, false, pid)
	if err != nil {
		return nil, osError(err, s)
	}
	return &process{handle: h, owned: true}, nil
}

func (p *process) Close() error {
	if !p.owned {
		return nil
	}
	return windows.CloseHandle(p.handle)
}

// token wraps an access token opened from a process. It keeps a reference to
// the process it came from to document that the token must be closed before
// its process handle; deferring Close on both in acquisition order gives the
// right teardown order.
type token struct {
	handle windows.Token
	proc   *process
}

func openProcessToken(p *process, s *winScratch) (*token, error) {
	var t windows.Token
	if err := windows.OpenProcessToken(p.handle, windows.TOKEN_QUERY, &t); err != nil {
		return nil, osError(err, s)
	}
	return &token{handle: t, proc: p}, nil
}

func (t *token) Close() error {
	return t.handle.Close()
}
