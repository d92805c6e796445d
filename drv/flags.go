package drv

import "github.com/vkngwrapper/core/v2/common"

// UseFlags describe every way a buffer is expected to be accessed over its lifetime
type UseFlags int32

var useFlagsMapping = common.NewFlagStringMapping[UseFlags]()

func (f UseFlags) Register(str string) {
	useFlagsMapping.Register(f, str)
}
func (f UseFlags) String() string {
	return useFlagsMapping.FlagsToString(f)
}

const (
	// UseScanout indicates the buffer may be displayed directly by the display controller
	UseScanout UseFlags = 1 << iota
	// UseCursor indicates the buffer may be used as a hardware cursor image
	UseCursor
	// UseRendering indicates the GPU will render into the buffer
	UseRendering
	_
	// UseLinear requires the buffer to use a linear layout
	UseLinear
	// UseTexture indicates the GPU will sample from the buffer
	UseTexture
	UseCameraWrite
	UseCameraRead
	// UseProtected indicates the buffer holds protected content and must be
	// allocated from protected memory
	UseProtected
	UseSWReadOften
	UseSWReadRarely
	UseSWWriteOften
	UseSWWriteRarely
	UseHWVideoDecoder
	UseHWVideoEncoder
	// UseTestAlloc marks a buffer allocated only to probe whether an allocation would succeed
	UseTestAlloc
	UseRenderscript

	UseNone UseFlags = 0

	UseSWMask = UseSWReadOften | UseSWReadRarely | UseSWWriteOften | UseSWWriteRarely

	UseTextureMask = UseLinear | UseRenderscript | UseSWMask | UseTexture

	UseRenderMask = UseLinear | UseRendering | UseRenderscript | UseSWMask | UseTexture
)

func init() {
	UseScanout.Register("UseScanout")
	UseCursor.Register("UseCursor")
	UseRendering.Register("UseRendering")
	UseLinear.Register("UseLinear")
	UseTexture.Register("UseTexture")
	UseCameraWrite.Register("UseCameraWrite")
	UseCameraRead.Register("UseCameraRead")
	UseProtected.Register("UseProtected")
	UseSWReadOften.Register("UseSWReadOften")
	UseSWReadRarely.Register("UseSWReadRarely")
	UseSWWriteOften.Register("UseSWWriteOften")
	UseSWWriteRarely.Register("UseSWWriteRarely")
	UseHWVideoDecoder.Register("UseHWVideoDecoder")
	UseHWVideoEncoder.Register("UseHWVideoEncoder")
	UseTestAlloc.Register("UseTestAlloc")
	UseRenderscript.Register("UseRenderscript")
}

var useFlagsByName = map[string]UseFlags{
	"scanout":          UseScanout,
	"cursor":           UseCursor,
	"rendering":        UseRendering,
	"linear":           UseLinear,
	"texture":          UseTexture,
	"camera-write":     UseCameraWrite,
	"camera-read":      UseCameraRead,
	"protected":        UseProtected,
	"sw-read-often":    UseSWReadOften,
	"sw-read-rarely":   UseSWReadRarely,
	"sw-write-often":   UseSWWriteOften,
	"sw-write-rarely":  UseSWWriteRarely,
	"hw-video-decoder": UseHWVideoDecoder,
	"hw-video-encoder": UseHWVideoEncoder,
	"test-alloc":       UseTestAlloc,
	"renderscript":     UseRenderscript,
}

// ParseUseFlag returns the flag for a short name such as "scanout" or "sw-read-often"
func ParseUseFlag(name string) (UseFlags, bool) {
	flag, ok := useFlagsByName[name]
	return flag, ok
}

// MapFlags describe the CPU access requested when mapping a buffer
type MapFlags int32

var mapFlagsMapping = common.NewFlagStringMapping[MapFlags]()

func (f MapFlags) Register(str string) {
	mapFlagsMapping.Register(f, str)
}
func (f MapFlags) String() string {
	return mapFlagsMapping.FlagsToString(f)
}

const (
	MapRead MapFlags = 1 << iota
	MapWrite

	MapNone      MapFlags = 0
	MapReadWrite          = MapRead | MapWrite
)

func init() {
	MapRead.Register("MapRead")
	MapWrite.Register("MapWrite")
}
