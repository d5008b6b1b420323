package libretro

// Environment command codes are an external enumeration owned by the
// protocol, mirrored here for diagnostics. The dispatch itself lives in
// callbacks.go against the C constants; this table only names codes in
// log output.

const envExperimental = 0x10000

var envNames = map[uint32]string{
	1:                    "SET_ROTATION",
	2:                    "GET_OVERSCAN",
	3:                    "GET_CAN_DUPE",
	6:                    "SET_MESSAGE",
	7:                    "SHUTDOWN",
	8:                    "SET_PERFORMANCE_LEVEL",
	9:                    "GET_SYSTEM_DIRECTORY",
	10:                   "SET_PIXEL_FORMAT",
	11:                   "SET_INPUT_DESCRIPTORS",
	12:                   "SET_KEYBOARD_CALLBACK",
	13:                   "SET_DISK_CONTROL_INTERFACE",
	14:                   "SET_HW_RENDER",
	15:                   "GET_VARIABLE",
	16:                   "SET_VARIABLES",
	17:                   "GET_VARIABLE_UPDATE",
	18:                   "SET_SUPPORT_NO_GAME",
	19:                   "GET_LIBRETRO_PATH",
	21:                   "SET_FRAME_TIME_CALLBACK",
	22:                   "SET_AUDIO_CALLBACK",
	23:                   "GET_RUMBLE_INTERFACE",
	24:                   "GET_INPUT_DEVICE_CAPABILITIES",
	25 | envExperimental: "GET_SENSOR_INTERFACE",
	26 | envExperimental: "GET_CAMERA_INTERFACE",
	27:                   "GET_LOG_INTERFACE",
	28:                   "GET_PERF_INTERFACE",
	29:                   "GET_LOCATION_INTERFACE",
	30:                   "GET_CORE_ASSETS_DIRECTORY",
	31:                   "GET_SAVE_DIRECTORY",
	32:                   "SET_SYSTEM_AV_INFO",
	33:                   "SET_PROC_ADDRESS_CALLBACK",
	34:                   "SET_SUBSYSTEM_INFO",
	35:                   "SET_CONTROLLER_INFO",
	36 | envExperimental: "SET_MEMORY_MAPS",
	37:                   "SET_GEOMETRY",
	38:                   "GET_USERNAME",
	39:                   "GET_LANGUAGE",
	40 | envExperimental: "GET_CURRENT_SOFTWARE_FRAMEBUFFER",
	41 | envExperimental: "GET_HW_RENDER_INTERFACE",
	42 | envExperimental: "SET_SUPPORT_ACHIEVEMENTS",
	44:                   "SET_SERIALIZATION_QUIRKS",
	44 | envExperimental: "SET_HW_SHARED_CONTEXT",
	45 | envExperimental: "GET_VFS_INTERFACE",
	46 | envExperimental: "GET_LED_INTERFACE",
	47 | envExperimental: "GET_AUDIO_VIDEO_ENABLE",
	49 | envExperimental: "GET_FASTFORWARDING",
	51 | envExperimental: "GET_INPUT_BITMASKS",
	52:                   "GET_CORE_OPTIONS_VERSION",
	53:                   "SET_CORE_OPTIONS",
	54:                   "SET_CORE_OPTIONS_INTL",
	55 | envExperimental: "SET_CORE_OPTIONS_DISPLAY",
	59:                   "GET_MESSAGE_INTERFACE_VERSION",
	60:                   "SET_MESSAGE_EXT",
	61:                   "GET_INPUT_MAX_USERS",
	62:                   "SET_AUDIO_BUFFER_STATUS_CALLBACK",
	63:                   "SET_MINIMUM_AUDIO_LATENCY",
	64:                   "SET_FASTFORWARDING_OVERRIDE",
	65:                   "SET_CONTENT_INFO_OVERRIDE",
	66:                   "GET_GAME_INFO_EXT",
	67:                   "SET_CORE_OPTIONS_V2",
	68:                   "SET_CORE_OPTIONS_V2_INTL",
	71 | envExperimental: "GET_THROTTLE_STATE",
	72 | envExperimental: "GET_SAVESTATE_CONTEXT",
}

// envName names an environment command code for diagnostics, unknown
// codes included.
func envName(cmd uint32) string {
	if n, ok := envNames[cmd]; ok {
		return n
	}
	if n, ok := envNames[cmd&^envExperimental]; ok {
		return n + "?"
	}
	return "unknown"
}
