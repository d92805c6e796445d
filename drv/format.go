package drv

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Format is a DRM fourcc pixel format code
type Format uint32

const (
	FormatNone Format = 0

	FormatR8            Format = 'R' | '8'<<8 | ' '<<16 | ' '<<24
	FormatRGB565        Format = 'R' | 'G'<<8 | '1'<<16 | '6'<<24
	FormatBGR888        Format = 'B' | 'G'<<8 | '2'<<16 | '4'<<24
	FormatXRGB8888      Format = 'X' | 'R'<<8 | '2'<<16 | '4'<<24
	FormatXBGR8888      Format = 'X' | 'B'<<8 | '2'<<16 | '4'<<24
	FormatARGB8888      Format = 'A' | 'R'<<8 | '2'<<16 | '4'<<24
	FormatABGR8888      Format = 'A' | 'B'<<8 | '2'<<16 | '4'<<24
	FormatXRGB2101010   Format = 'X' | 'R'<<8 | '3'<<16 | '0'<<24
	FormatXBGR2101010   Format = 'X' | 'B'<<8 | '3'<<16 | '0'<<24
	FormatARGB2101010   Format = 'A' | 'R'<<8 | '3'<<16 | '0'<<24
	FormatABGR2101010   Format = 'A' | 'B'<<8 | '3'<<16 | '0'<<24
	FormatABGR16161616F Format = 'A' | 'B'<<8 | '4'<<16 | 'H'<<24
	FormatNV12          Format = 'N' | 'V'<<8 | '1'<<16 | '2'<<24
	FormatP010          Format = 'P' | '0'<<8 | '1'<<16 | '0'<<24
	FormatP016          Format = 'P' | '0'<<8 | '1'<<16 | '6'<<24
	FormatYVU420        Format = 'Y' | 'V'<<8 | '1'<<16 | '2'<<24

	// FormatYVU420Android is YVU420 with the Android stride rules: the luma
	// stride is a multiple of 32 and each chroma stride is ALIGN(luma/2, 16)
	FormatYVU420Android Format = '9' | '9'<<8 | '9'<<16 | '7'<<24
)

func (f Format) String() string {
	if f == FormatNone {
		return "NONE"
	}
	return fmt.Sprintf("%c%c%c%c", byte(f), byte(f>>8), byte(f>>16), byte(f>>24))
}

// ParseFormat returns the format named by a four character code such as "NV12".
// Codes shorter than four characters are padded with spaces, so "R8" is FormatR8.
func ParseFormat(code string) (Format, error) {
	if len(code) == 0 || len(code) > 4 {
		return FormatNone, errors.Newf("%q is not a fourcc code", code)
	}
	padded := []byte("    ")
	copy(padded, code)
	return Format(padded[0]) | Format(padded[1])<<8 | Format(padded[2])<<16 | Format(padded[3])<<24, nil
}
