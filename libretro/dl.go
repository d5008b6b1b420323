package libretro

/*
#cgo linux LDFLAGS: -ldl
#include <dlfcn.h>
#include <stdlib.h>
*/
import "C"
import (
	"unsafe"
)

// dlOpen opens a shared module. The returned handle stays valid until
// dlClose; the frontend keeps it for the life of the process.
func dlOpen(path string) (unsafe.Pointer, error) {
	cPath := C.CString(path)
	defer C.free(unsafe.Pointer(cPath))

	C.dlerror() // clear any stale error
	h := C.dlopen(cPath, C.RTLD_NOW|C.RTLD_LOCAL)
	if h == nil {
		return nil, &LoadError{Kind: LoadErrOpenFailed, Path: path, Detail: dlErrString()}
	}
	return h, nil
}

// dlSym resolves a symbol by exact name.
func dlSym(handle unsafe.Pointer, name string) (unsafe.Pointer, error) {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))

	C.dlerror()
	p := C.dlsym(handle, cName)
	if p == nil {
		return nil, &LoadError{Kind: LoadErrMissingSymbol, Symbol: name, Detail: dlErrString()}
	}
	return p, nil
}

func dlClose(handle unsafe.Pointer) {
	if handle != nil {
		C.dlclose(handle)
	}
}

func dlErrString() string {
	e := C.dlerror()
	if e == nil {
		return ""
	}
	return C.GoString(e)
}
