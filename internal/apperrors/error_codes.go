// Package apperrors declares the numeric error-code contract shared with the
// appliance backend. Error bodies carry the code as an integer in the "code"
// field; the numbers are fixed by the backend and must not be renumbered.
package apperrors

import "strconv"

type ErrorCode int

const (
	ErrCodeUnknown          ErrorCode = 0
	ErrCodeValidation       ErrorCode = 10
	ErrCodeWriteProtect     ErrorCode = 17 // mutating request rejected while write-protect mode is enabled
	ErrCodeNativeOnly       ErrorCode = 30 // feature unsupported on this hardware
	ErrCodeHotspot          ErrorCode = 34 // hotspot could not be enabled or disabled
	ErrCodeNoDownloadRecord ErrorCode = 38 // channel has no download schedule record
	ErrCodeInvalidDownload  ErrorCode = 40
)

var names = map[ErrorCode]string{
	ErrCodeUnknown:          "unknown",
	ErrCodeValidation:       "validation_error",
	ErrCodeWriteProtect:     "write_protect_enabled",
	ErrCodeNativeOnly:       "native_only",
	ErrCodeHotspot:          "hotspot_error",
	ErrCodeNoDownloadRecord: "no_download_record",
	ErrCodeInvalidDownload:  "invalid_download",
}

func (c ErrorCode) String() string {
	if name, ok := names[c]; ok {
		return name
	}
	return "code_" + strconv.Itoa(int(c))
}
