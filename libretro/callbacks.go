package libretro

/*
#include "libretro.h"
#include <stdlib.h>

// Non-variadic prototype: cgo cannot reference a variadic symbol, and
// the core only needs a pointer with the retro_log_printf_t shape. The
// real definition in cfuncs.go takes varargs.
void rustroLog_cgo(enum retro_log_level level, const char *fmt);
*/
import "C"
import (
	"log"
	"strings"
	"unsafe"
)

// active is the session every callback operates against. The core's
// registration mechanism carries no user-data token, so the single
// process-wide session is linked up here before the core is
// initialized and never swapped while the core is live.
var active *Session

// Stable C strings handed out through environment queries. The core
// holds the returned pointers indefinitely, so these are allocated once
// and never freed.
var (
	cSystemDir *C.char
	cSaveDir   *C.char
	cUserName  *C.char

	// Per-key values answered through GET_VARIABLE. The pointer for a
	// key must stay valid across calls, so values are cached forever.
	cVariables = map[string]*C.char{}
)

// The loaded-game descriptor the core received at load time. The core
// may retain the data pointer until unload, so the C copy is pinned for
// the whole session.
var (
	cGamePath *C.char
	cGameDir  *C.char
	cGameName *C.char
	cGameExt  *C.char
	cGameData unsafe.Pointer
	gameSize  C.size_t

	cGameInfoExt *C.struct_retro_game_info_ext
)

// gameInfoExt returns the stable extended-descriptor storage, allocated
// on first use and never freed while the core is live.
func gameInfoExt() *C.struct_retro_game_info_ext {
	if cGameInfoExt == nil {
		cGameInfoExt = (*C.struct_retro_game_info_ext)(C.calloc(1, C.sizeof_struct_retro_game_info_ext))
	}
	return cGameInfoExt
}

// setDirectories installs the stable directory and username strings
// returned by environment queries. Called once before the core is
// initialized.
func setDirectories(systemDir, saveDir, username string) {
	if cSystemDir == nil {
		cSystemDir = C.CString(systemDir)
	}
	if cSaveDir == nil {
		cSaveDir = C.CString(saveDir)
	}
	if cUserName == nil {
		cUserName = C.CString(username)
	}
}

func cachedVariable(key, value string) *C.char {
	if p, ok := cVariables[key]; ok {
		return p
	}
	p := C.CString(value)
	cVariables[key] = p
	return p
}

//export rustroEnvironment
func rustroEnvironment(cmd C.unsigned, data unsafe.Pointer) C.bool {
	if active == nil {
		return false
	}
	switch cmd {
	case C.RETRO_ENVIRONMENT_GET_CAN_DUPE:
		// The frontend accepts duplicate frame references. Per protocol
		// convention this read-only query still answers false.
		*(*C.bool)(data) = true
		return false

	case C.RETRO_ENVIRONMENT_SET_PIXEL_FORMAT:
		// payload: const enum retro_pixel_format *
		tag := uint32(*(*C.enum_retro_pixel_format)(data))
		if err := active.setPixelFormat(tag); err != nil {
			log.Printf("environment: %v", err)
			return false
		}
		return true

	case C.RETRO_ENVIRONMENT_GET_VARIABLE_UPDATE:
		// payload: bool * — this frontend changes no variables at runtime
		*(*C.bool)(data) = false
		return false

	case C.RETRO_ENVIRONMENT_GET_VARIABLE:
		// payload: struct retro_variable *, key set by the core
		v := (*C.struct_retro_variable)(data)
		if v.key == nil {
			return false
		}
		key := C.GoString(v.key)
		if val, ok := active.Variables[key]; ok {
			v.value = cachedVariable(key, val)
			return true
		}
		return false

	case C.RETRO_ENVIRONMENT_GET_SYSTEM_DIRECTORY:
		// payload: const char ** — pointer into a stable host buffer
		*(**C.char)(data) = cSystemDir
		return true

	case C.RETRO_ENVIRONMENT_GET_SAVE_DIRECTORY:
		*(**C.char)(data) = cSaveDir
		return true

	case C.RETRO_ENVIRONMENT_GET_USERNAME:
		*(**C.char)(data) = cUserName
		return true

	case C.RETRO_ENVIRONMENT_GET_LOG_INTERFACE:
		// payload: struct retro_log_callback *
		cb := (*C.struct_retro_log_callback)(data)
		cb.log = (C.retro_log_printf_t)(C.rustroLog_cgo)
		return true

	case C.RETRO_ENVIRONMENT_GET_GAME_INFO_EXT:
		// payload: const struct retro_game_info_ext ** — the frontend
		// answers with a pointer to a descriptor that stays valid
		// until the game is unloaded.
		if cGameData == nil {
			return false
		}
		info := gameInfoExt()
		info.full_path = cGamePath
		info.archive_path = nil
		info.archive_file = nil
		info.dir = cGameDir
		info.name = cGameName
		info.ext = cGameExt
		info.meta = nil
		info.data = cGameData
		info.size = gameSize
		info.file_in_archive = false
		info.persistent_data = true
		*(**C.struct_retro_game_info_ext)(data) = info
		return true

	case C.RETRO_ENVIRONMENT_SHUTDOWN:
		active.shutdown = true
		return true

	default:
		// Everything else is a legitimate no-op for this frontend:
		// answer "unsupported" and the core proceeds with conservative
		// defaults. Host state is never mutated here.
		active.logEnvOnce(uint32(cmd))
		return false
	}
}

//export rustroVideoRefresh
func rustroVideoRefresh(data unsafe.Pointer, width C.unsigned, height C.unsigned, pitch C.size_t) {
	if active == nil {
		return
	}
	if data == nil {
		// Duplicate of the previous frame; keep the current buffer.
		return
	}
	// pitch is the byte stride between scanlines, so pitch*height is
	// the raw length for every source format.
	n := int(pitch) * int(height)
	if n <= 0 {
		return
	}
	raw := unsafe.Slice((*byte)(data), n)
	if err := active.updateFrame(raw, int(width), int(height), int(pitch)); err != nil {
		log.Printf("video refresh: %v", err)
	}
}

//export rustroInputPoll
func rustroInputPoll() {
	// Input is pre-populated before stepping; the callback exists as
	// the protocol's per-step synchronization point.
}

//export rustroInputState
func rustroInputState(port C.unsigned, device C.unsigned, index C.unsigned, id C.unsigned) C.int16_t {
	if active == nil {
		return 0
	}
	return C.int16_t(active.InputState(uint32(port), uint32(device), uint32(index), uint32(id)))
}

//export rustroAudioSample
func rustroAudioSample(left C.int16_t, right C.int16_t) {
	if active == nil {
		return
	}
	active.pushAudio([]int16{int16(left), int16(right)})
}

//export rustroAudioSampleBatch
func rustroAudioSampleBatch(data *C.int16_t, frames C.size_t) C.size_t {
	if active == nil || data == nil || frames == 0 {
		return frames
	}
	samples := unsafe.Slice((*int16)(unsafe.Pointer(data)), int(frames)*2)
	active.pushAudio(samples)
	return frames
}

//export rustroLog
func rustroLog(level C.enum_retro_log_level, msg *C.char) {
	m := strings.TrimRight(C.GoString(msg), "\n")
	switch level {
	case C.RETRO_LOG_DEBUG:
		log.Printf("core debug: %s", m)
	case C.RETRO_LOG_WARN:
		log.Printf("core warn: %s", m)
	case C.RETRO_LOG_ERROR:
		log.Printf("core error: %s", m)
	default:
		log.Printf("core: %s", m)
	}
}
