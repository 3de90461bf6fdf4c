//go:build cgo && (linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package userhome

/*
#include <sys/types.h>
#include <pwd.h>
#include <stdlib.h>
#include <string.h>
#include <errno.h>

// strerror_r has two incompatible signatures depending on the libc and
// feature macros in effect. Route through a helper compiled in this
// translation unit so the Go side always sees the POSIX int-returning
// contract: 0 on success, ERANGE when buf is too small.
#ifdef _GNU_SOURCE
static int strerror_posix(int errnum, char *buf, size_t buflen) {
	char *msg = strerror_r(errnum, buf, buflen);
	if (msg != buf) {
		strncpy(buf, msg, buflen - 1);
		buf[buflen - 1] = '\0';
	}
	return 0;
}
#else
static int strerror_posix(int errnum, char *buf, size_t buflen) {
	return strerror_r(errnum, buf, buflen);
}
#endif
*/
import "C"

import (
	"unsafe"
)

// strerror_posix responses are capped to this many bytes; anything longer is
// not a plausible error message.
const maxErrorMsgSize = 16 * 1024

// cbuf is a growable scratch buffer on the C heap. getpwnam_r writes result
// pointers into the buffer it is given, and those pointers must not point
// into Go memory (cgo pointer rules), so the allocation lives outside the Go
// heap. Capacity only grows within a call and the buffer is freed before the
// call returns.
type cbuf struct {
	ptr  unsafe.Pointer
	size C.size_t
}

func newCbuf(size int) cbuf {
	return cbuf{ptr: C.malloc(C.size_t(size)), size: C.size_t(size)}
}

func (b *cbuf) grow() {
	b.size *= 2
	b.ptr = C.realloc(b.ptr, b.size)
}

func (b *cbuf) free() {
	C.free(b.ptr)
	b.ptr = nil
}

func (r *Resolver) dir(name string) (string, error) {
	if name == "" {
		return currentUserHome()
	}

	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	buf := newCbuf(r.bufferSize())
	defer buf.free()

	var pwd C.struct_passwd
	var result *C.struct_passwd
	for {
		ret := C.getpwnam_r(cname, &pwd, (*C.char)(buf.ptr), buf.size, &result)
		if ret == 0 {
			break
		}
		if ret == C.ERANGE {
			// The answer did not fit; the OS is authoritative about needing
			// more space, so double and retry. This is the only retried
			// condition.
			buf.grow()
			continue
		}
		return "", errnoError(int(ret))
	}

	// A nil result with a zero return code means the lookup completed but no
	// such user exists.
	if result == nil {
		return "", &NotFoundError{User: name}
	}

	// libc guarantees pw_dir is populated on a successful lookup; a nil
	// pointer here is an internal invariant violation.
	if pwd.pw_dir == nil {
		return "", &OSError{}
	}

	return C.GoString(pwd.pw_dir), nil
}

// errnoError translates a libc error number into an OSError carrying the
// OS's own message text.
func errnoError(errnum int) error {
	buf := newCbuf(256)
	defer buf.free()

	for {
		ret := C.strerror_posix(C.int(errnum), (*C.char)(buf.ptr), buf.size)
		if ret == 0 {
			return &OSError{Msg: C.GoString((*C.char)(buf.ptr))}
		}
		if ret == C.ERANGE && buf.size < maxErrorMsgSize {
			buf.grow()
			continue
		}
		// The message is best-effort only.
		return &OSError{}
	}
}
