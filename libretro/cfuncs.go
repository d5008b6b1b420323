package libretro

/*
#include "libretro.h"
#include <stdarg.h>
#include <stdio.h>

// Trampolines for calling raw entry points resolved with dlsym. cgo cannot
// call a C function pointer directly, so every entry point gets a typed
// wrapper taking the pointer as void*.

void bridge_retro_init(void *f) {
	((void (*)(void))f)();
}

void bridge_retro_deinit(void *f) {
	((void (*)(void))f)();
}

unsigned bridge_retro_api_version(void *f) {
	return ((unsigned (*)(void))f)();
}

void bridge_retro_get_system_info(void *f, struct retro_system_info *si) {
	((void (*)(struct retro_system_info *))f)(si);
}

void bridge_retro_get_system_av_info(void *f, struct retro_system_av_info *av) {
	((void (*)(struct retro_system_av_info *))f)(av);
}

void bridge_retro_set_environment(void *f, void *callback) {
	((void (*)(retro_environment_t))f)((retro_environment_t)callback);
}

void bridge_retro_set_video_refresh(void *f, void *callback) {
	((void (*)(retro_video_refresh_t))f)((retro_video_refresh_t)callback);
}

void bridge_retro_set_audio_sample(void *f, void *callback) {
	((void (*)(retro_audio_sample_t))f)((retro_audio_sample_t)callback);
}

void bridge_retro_set_audio_sample_batch(void *f, void *callback) {
	((void (*)(retro_audio_sample_batch_t))f)((retro_audio_sample_batch_t)callback);
}

void bridge_retro_set_input_poll(void *f, void *callback) {
	((void (*)(retro_input_poll_t))f)((retro_input_poll_t)callback);
}

void bridge_retro_set_input_state(void *f, void *callback) {
	((void (*)(retro_input_state_t))f)((retro_input_state_t)callback);
}

void bridge_retro_set_controller_port_device(void *f, unsigned port, unsigned device) {
	((void (*)(unsigned, unsigned))f)(port, device);
}

void bridge_retro_reset(void *f) {
	((void (*)(void))f)();
}

void bridge_retro_run(void *f) {
	((void (*)(void))f)();
}

size_t bridge_retro_serialize_size(void *f) {
	return ((size_t (*)(void))f)();
}

bool bridge_retro_serialize(void *f, void *data, size_t size) {
	return ((bool (*)(void *, size_t))f)(data, size);
}

bool bridge_retro_unserialize(void *f, void *data, size_t size) {
	return ((bool (*)(void *, size_t))f)(data, size);
}

void bridge_retro_cheat_reset(void *f) {
	((void (*)(void))f)();
}

void bridge_retro_cheat_set(void *f, unsigned index, bool enabled, const char *code) {
	((void (*)(unsigned, bool, const char *))f)(index, enabled, code);
}

bool bridge_retro_load_game(void *f, struct retro_game_info *gi) {
	return ((bool (*)(struct retro_game_info *))f)(gi);
}

bool bridge_retro_load_game_special(void *f, unsigned game_type,
		struct retro_game_info *gi, size_t num) {
	return ((bool (*)(unsigned, struct retro_game_info *, size_t))f)(game_type, gi, num);
}

void bridge_retro_unload_game(void *f) {
	((void (*)(void))f)();
}

unsigned bridge_retro_get_region(void *f) {
	return ((unsigned (*)(void))f)();
}

void *bridge_retro_get_memory_data(void *f, unsigned id) {
	return ((void *(*)(unsigned))f)(id);
}

size_t bridge_retro_get_memory_size(void *f, unsigned id) {
	return ((size_t (*)(unsigned))f)(id);
}

// C-side wrappers around the exported Go callbacks. The core is handed
// pointers to these; they forward into Go.

bool rustroEnvironment_cgo(unsigned cmd, void *data) {
	bool rustroEnvironment(unsigned, void *);
	return rustroEnvironment(cmd, data);
}

void rustroVideoRefresh_cgo(const void *data, unsigned width, unsigned height, size_t pitch) {
	void rustroVideoRefresh(void *, unsigned, unsigned, size_t);
	rustroVideoRefresh((void *)data, width, height, pitch);
}

void rustroInputPoll_cgo(void) {
	void rustroInputPoll(void);
	rustroInputPoll();
}

int16_t rustroInputState_cgo(unsigned port, unsigned device, unsigned index, unsigned id) {
	int16_t rustroInputState(unsigned, unsigned, unsigned, unsigned);
	return rustroInputState(port, device, index, id);
}

void rustroAudioSample_cgo(int16_t left, int16_t right) {
	void rustroAudioSample(int16_t, int16_t);
	rustroAudioSample(left, right);
}

size_t rustroAudioSampleBatch_cgo(const int16_t *data, size_t frames) {
	size_t rustroAudioSampleBatch(int16_t *, size_t);
	return rustroAudioSampleBatch((int16_t *)data, frames);
}

// Cores log with printf semantics. Format here so Go only ever sees a
// finished string.
void rustroLog_cgo(enum retro_log_level level, const char *fmt, ...) {
	void rustroLog(enum retro_log_level, char *);
	char msg[4096] = {0};
	va_list va;
	va_start(va, fmt);
	vsnprintf(msg, sizeof(msg), fmt, va);
	va_end(va);
	rustroLog(level, msg);
}
*/
import "C"
