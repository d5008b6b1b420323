package libretro

/*
#include "libretro.h"
#include <stdlib.h>
#include <string.h>

void bridge_retro_init(void *f);
void bridge_retro_deinit(void *f);
unsigned bridge_retro_api_version(void *f);
void bridge_retro_get_system_info(void *f, struct retro_system_info *si);
void bridge_retro_get_system_av_info(void *f, struct retro_system_av_info *av);
void bridge_retro_set_environment(void *f, void *callback);
void bridge_retro_set_video_refresh(void *f, void *callback);
void bridge_retro_set_audio_sample(void *f, void *callback);
void bridge_retro_set_audio_sample_batch(void *f, void *callback);
void bridge_retro_set_input_poll(void *f, void *callback);
void bridge_retro_set_input_state(void *f, void *callback);
void bridge_retro_set_controller_port_device(void *f, unsigned port, unsigned device);
void bridge_retro_reset(void *f);
void bridge_retro_run(void *f);
size_t bridge_retro_serialize_size(void *f);
bool bridge_retro_serialize(void *f, void *data, size_t size);
bool bridge_retro_unserialize(void *f, void *data, size_t size);
void bridge_retro_cheat_reset(void *f);
void bridge_retro_cheat_set(void *f, unsigned index, bool enabled, const char *code);
bool bridge_retro_load_game(void *f, struct retro_game_info *gi);
bool bridge_retro_load_game_special(void *f, unsigned game_type, struct retro_game_info *gi, size_t num);
void bridge_retro_unload_game(void *f);
unsigned bridge_retro_get_region(void *f);
void *bridge_retro_get_memory_data(void *f, unsigned id);
size_t bridge_retro_get_memory_size(void *f, unsigned id);

bool rustroEnvironment_cgo(unsigned cmd, void *data);
void rustroVideoRefresh_cgo(const void *data, unsigned width, unsigned height, size_t pitch);
void rustroInputPoll_cgo(void);
int16_t rustroInputState_cgo(unsigned port, unsigned device, unsigned index, unsigned id);
void rustroAudioSample_cgo(int16_t left, int16_t right);
size_t rustroAudioSampleBatch_cgo(const int16_t *data, size_t frames);
*/
import "C"
import (
	"fmt"
	"log"
	"strings"
	"unsafe"
)

// apiVersion is the one interface version this frontend supports. No
// multi-version compatibility is attempted.
const apiVersion = 1

// callTable holds one resolved function pointer per required entry
// point. It is only ever fully populated; a partial bind is a fatal
// load error.
type callTable struct {
	setEnvironment          unsafe.Pointer
	setVideoRefresh         unsafe.Pointer
	setAudioSample          unsafe.Pointer
	setAudioSampleBatch     unsafe.Pointer
	setInputPoll            unsafe.Pointer
	setInputState           unsafe.Pointer
	init                    unsafe.Pointer
	deinit                  unsafe.Pointer
	apiVersion              unsafe.Pointer
	getSystemInfo           unsafe.Pointer
	getSystemAVInfo         unsafe.Pointer
	setControllerPortDevice unsafe.Pointer
	reset                   unsafe.Pointer
	run                     unsafe.Pointer
	serializeSize           unsafe.Pointer
	serialize               unsafe.Pointer
	unserialize             unsafe.Pointer
	cheatReset              unsafe.Pointer
	cheatSet                unsafe.Pointer
	loadGame                unsafe.Pointer
	loadGameSpecial         unsafe.Pointer
	unloadGame              unsafe.Pointer
	getRegion               unsafe.Pointer
	getMemoryData           unsafe.Pointer
	getMemorySize           unsafe.Pointer
}

// Core is a loaded libretro module with its entry points bound and the
// frontend's callbacks registered. The module stays loaded for the rest
// of the process; Close exists for orderly shutdown only.
type Core struct {
	Path string

	handle unsafe.Pointer
	tab    callTable

	session    *Session
	gameLoaded bool
}

// Load opens the core module at path, binds every required entry point,
// verifies the interface version, registers the callback surface
// against the given session and calls the core's init entry.
func Load(path string, s *Session) (*Core, error) {
	handle, err := dlOpen(path)
	if err != nil {
		return nil, err
	}

	c := &Core{Path: path, handle: handle, session: s}

	syms := []struct {
		name string
		dst  *unsafe.Pointer
	}{
		{"retro_set_environment", &c.tab.setEnvironment},
		{"retro_set_video_refresh", &c.tab.setVideoRefresh},
		{"retro_set_audio_sample", &c.tab.setAudioSample},
		{"retro_set_audio_sample_batch", &c.tab.setAudioSampleBatch},
		{"retro_set_input_poll", &c.tab.setInputPoll},
		{"retro_set_input_state", &c.tab.setInputState},
		{"retro_init", &c.tab.init},
		{"retro_deinit", &c.tab.deinit},
		{"retro_api_version", &c.tab.apiVersion},
		{"retro_get_system_info", &c.tab.getSystemInfo},
		{"retro_get_system_av_info", &c.tab.getSystemAVInfo},
		{"retro_set_controller_port_device", &c.tab.setControllerPortDevice},
		{"retro_reset", &c.tab.reset},
		{"retro_run", &c.tab.run},
		{"retro_serialize_size", &c.tab.serializeSize},
		{"retro_serialize", &c.tab.serialize},
		{"retro_unserialize", &c.tab.unserialize},
		{"retro_cheat_reset", &c.tab.cheatReset},
		{"retro_cheat_set", &c.tab.cheatSet},
		{"retro_load_game", &c.tab.loadGame},
		{"retro_load_game_special", &c.tab.loadGameSpecial},
		{"retro_unload_game", &c.tab.unloadGame},
		{"retro_get_region", &c.tab.getRegion},
		{"retro_get_memory_data", &c.tab.getMemoryData},
		{"retro_get_memory_size", &c.tab.getMemorySize},
	}
	for _, sym := range syms {
		p, err := dlSym(handle, sym.name)
		if err != nil {
			dlClose(handle)
			return nil, err
		}
		*sym.dst = p
	}

	if v := uint32(C.bridge_retro_api_version(c.tab.apiVersion)); v != apiVersion {
		dlClose(handle)
		return nil, &LoadError{Kind: LoadErrVersionMismatch, Expected: apiVersion, Actual: v}
	}

	active = s

	// Registration order matters to some cores: environment first, then
	// the data-plane callbacks, then init.
	C.bridge_retro_set_environment(c.tab.setEnvironment, C.rustroEnvironment_cgo)
	C.bridge_retro_set_video_refresh(c.tab.setVideoRefresh, C.rustroVideoRefresh_cgo)
	C.bridge_retro_set_audio_sample(c.tab.setAudioSample, C.rustroAudioSample_cgo)
	C.bridge_retro_set_audio_sample_batch(c.tab.setAudioSampleBatch, C.rustroAudioSampleBatch_cgo)
	C.bridge_retro_set_input_poll(c.tab.setInputPoll, C.rustroInputPoll_cgo)
	C.bridge_retro_set_input_state(c.tab.setInputState, C.rustroInputState_cgo)

	C.bridge_retro_init(c.tab.init)

	if err := s.Err(); err != nil {
		dlClose(handle)
		return nil, err
	}

	return c, nil
}

// SetDirectories installs the system/save directory strings the core
// can query, and the username. Must be called before LoadGame.
func (c *Core) SetDirectories(systemDir, saveDir, username string) {
	setDirectories(systemDir, saveDir, username)
}

// SystemInfo queries the core's static self-description.
func (c *Core) SystemInfo() SystemInfo {
	var si C.struct_retro_system_info
	C.bridge_retro_get_system_info(c.tab.getSystemInfo, &si)

	info := SystemInfo{
		LibraryName:    C.GoString(si.library_name),
		LibraryVersion: C.GoString(si.library_version),
		NeedFullpath:   bool(si.need_fullpath),
		BlockExtract:   bool(si.block_extract),
	}
	for _, ext := range strings.Split(C.GoString(si.valid_extensions), "|") {
		if ext == "" {
			continue
		}
		info.ValidExtensions = append(info.ValidExtensions, "."+strings.ToLower(ext))
	}
	return info
}

// AVInfo queries geometry and timing for the loaded content. Only valid
// after LoadGame succeeds.
func (c *Core) AVInfo() AVInfo {
	var av C.struct_retro_system_av_info
	C.bridge_retro_get_system_av_info(c.tab.getSystemAVInfo, &av)
	return AVInfo{
		BaseWidth:   int(av.geometry.base_width),
		BaseHeight:  int(av.geometry.base_height),
		MaxWidth:    int(av.geometry.max_width),
		MaxHeight:   int(av.geometry.max_height),
		AspectRatio: float64(av.geometry.aspect_ratio),
		FPS:         float64(av.timing.fps),
		SampleRate:  float64(av.timing.sample_rate),
	}
}

// LoadGame hands the ROM to the core. The descriptor's backing bytes
// are copied to C memory and pinned for the whole session: the core is
// allowed to retain the pointer it was given here until unload.
func (c *Core) LoadGame(romPath string, data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("%w: empty content", ErrContentLoadFailed)
	}

	cGamePath = C.CString(romPath)
	cGameDir = C.CString(dirOf(romPath))
	cGameName = C.CString(baseNameNoExt(romPath))
	cGameExt = C.CString(extOf(romPath))
	cGameData = C.CBytes(data)
	gameSize = C.size_t(len(data))

	gi := C.struct_retro_game_info{
		path: cGamePath,
		data: cGameData,
		size: gameSize,
		meta: nil,
	}

	ok := bool(C.bridge_retro_load_game(c.tab.loadGame, &gi))
	if err := c.session.Err(); err != nil {
		// e.g. an unknown pixel format negotiated during load
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrContentLoadFailed, romPath)
	}
	c.gameLoaded = true

	// Plug a joypad into every port the frontend drives.
	C.bridge_retro_set_controller_port_device(c.tab.setControllerPortDevice, 0, C.RETRO_DEVICE_JOYPAD)
	return nil
}

// LoadGameSpecial hands multi-image content to the core for cores that
// register subsystem types (e.g. Super Game Boy needs both a SNES BIOS
// and a GB cartridge). Descriptors point at C copies pinned like
// LoadGame's; most cores never use this path.
func (c *Core) LoadGameSpecial(gameType uint32, images [][]byte) error {
	if len(images) == 0 {
		return fmt.Errorf("%w: no content images", ErrContentLoadFailed)
	}

	infos := (*C.struct_retro_game_info)(C.calloc(C.size_t(len(images)), C.sizeof_struct_retro_game_info))
	defer C.free(unsafe.Pointer(infos))
	slots := unsafe.Slice(infos, len(images))
	for i, img := range images {
		slots[i].data = C.CBytes(img)
		slots[i].size = C.size_t(len(img))
	}

	ok := bool(C.bridge_retro_load_game_special(c.tab.loadGameSpecial,
		C.unsigned(gameType), infos, C.size_t(len(images))))
	if err := c.session.Err(); err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: subsystem type %d", ErrContentLoadFailed, gameType)
	}
	c.gameLoaded = true

	C.bridge_retro_set_controller_port_device(c.tab.setControllerPortDevice, 0, C.RETRO_DEVICE_JOYPAD)
	return nil
}

// Run executes exactly one frame of emulation. The core invokes the
// callback surface synchronously, zero or more times, before returning.
func (c *Core) Run() {
	C.bridge_retro_run(c.tab.run)
}

// Reset resets the loaded game to its power-on state.
func (c *Core) Reset() {
	C.bridge_retro_reset(c.tab.reset)
}

// Region reports RegionNTSC or RegionPAL for the loaded content.
func (c *Core) Region() int {
	return int(C.bridge_retro_get_region(c.tab.getRegion))
}

// MemorySize reports the size of a core memory region (save RAM,
// system RAM, ...), or 0 when the core does not expose it.
func (c *Core) MemorySize(id uint32) int {
	return int(C.bridge_retro_get_memory_size(c.tab.getMemorySize, C.unsigned(id)))
}

// MemoryData copies a core memory region, or nil when unavailable.
func (c *Core) MemoryData(id uint32) []byte {
	size := c.MemorySize(id)
	if size == 0 {
		return nil
	}
	p := C.bridge_retro_get_memory_data(c.tab.getMemoryData, C.unsigned(id))
	if p == nil {
		return nil
	}
	return C.GoBytes(p, C.int(size))
}

// CheatReset clears all active cheats in the core.
func (c *Core) CheatReset() {
	C.bridge_retro_cheat_reset(c.tab.cheatReset)
}

// CheatSet installs a cheat code at the given index.
func (c *Core) CheatSet(index uint32, enabled bool, code string) {
	cCode := C.CString(code)
	defer C.free(unsafe.Pointer(cCode))
	C.bridge_retro_cheat_set(c.tab.cheatSet, C.unsigned(index), C.bool(enabled), cCode)
}

// SerializeSize reports the byte count the core needs for a full state
// snapshot at this moment.
func (c *Core) SerializeSize() int {
	return int(C.bridge_retro_serialize_size(c.tab.serializeSize))
}

// Serialize fills a fresh buffer of exactly SerializeSize bytes with
// the core's opaque state.
func (c *Core) Serialize() ([]byte, error) {
	size := c.SerializeSize()
	if size == 0 {
		return nil, fmt.Errorf("core reports zero serialize size")
	}
	buf := make([]byte, size)
	if !bool(C.bridge_retro_serialize(c.tab.serialize, unsafe.Pointer(&buf[0]), C.size_t(size))) {
		return nil, fmt.Errorf("core failed to serialize %d bytes of state", size)
	}
	return buf, nil
}

// Unserialize restores a previously serialized snapshot. A false
// answer from the core leaves its current state untouched.
func (c *Core) Unserialize(data []byte) error {
	if len(data) == 0 {
		return ErrStateRejected
	}
	if !bool(C.bridge_retro_unserialize(c.tab.unserialize, unsafe.Pointer(&data[0]), C.size_t(len(data)))) {
		return ErrStateRejected
	}
	return nil
}

// Close unloads the game, deinitializes the core and drops the module
// handle. Only meaningful at orderly process shutdown; the module is
// never reloaded mid-session.
func (c *Core) Close() {
	if c.handle == nil {
		return
	}
	if c.gameLoaded {
		C.bridge_retro_unload_game(c.tab.unloadGame)
		c.gameLoaded = false
	}
	C.bridge_retro_deinit(c.tab.deinit)
	dlClose(c.handle)
	c.handle = nil
	if active == c.session {
		active = nil
	}
	log.Printf("core %s unloaded", c.Path)
}
