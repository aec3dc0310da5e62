package settings

import (
	"fmt"
	"strconv"

	"github.com/dstweak-cli/dstweak/title"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Field identifies one per-game setting.
type Field int

// Fields in display order.
const (
	DirectBoot Field = iota
	Language
	RunMode
	CpuBoost
	VramBoost
	BootstrapVariant
	SuppressAPNotice
)

// fieldDef carries the static catalog data of a field.
type fieldDef struct {
	name   string
	iniKey string
	label  string

	// domain is the cyclic value order the editor steps through. Where the
	// field has an inherit sentinel it is the first element.
	domain   []int
	sentinel mo.Option[int]
	labels   map[int]string

	visible  func(Context) bool
	persists func(Context) bool
}

func editableClass(c Context) bool {
	return c.Class != title.Digital && c.Class != title.LaunchArgument
}

var fields = map[Field]fieldDef{
	DirectBoot: {
		name:   "direct-boot",
		iniKey: "DIRECT_BOOT",
		label:  "Direct boot",
		domain: []int{0, 1},
		labels: map[int]string{0: "No", 1: "Yes"},
		visible: func(c Context) bool {
			return c.Class == title.Homebrew
		},
		persists: func(c Context) bool {
			return c.Class == title.Homebrew
		},
	},
	Language: {
		name:     "language",
		iniKey:   "LANGUAGE",
		label:    "Language",
		domain:   []int{-2, -1, 0, 1, 2, 3, 4, 5},
		sentinel: mo.Some(-2),
		labels: map[int]string{
			-2: "Default",
			-1: "System",
			0:  "Japanese",
			1:  "English",
			2:  "French",
			3:  "German",
			4:  "Italian",
			5:  "Spanish",
		},
		visible: func(c Context) bool {
			return c.Caps.BootstrapActive && c.Class == title.Retail
		},
		persists: func(c Context) bool {
			return c.Caps.DsiCapable && !c.SecondaryDevice
		},
	},
	RunMode: {
		name:     "run-mode",
		iniKey:   "DSI_MODE",
		label:    "Run in",
		domain:   []int{-1, 0, 1, 2},
		sentinel: mo.Some(-1),
		labels: map[int]string{
			-1: "Default",
			0:  "DS mode",
			1:  "DSi mode",
			2:  "DSi mode (Forced)",
		},
		visible: func(c Context) bool {
			return c.Caps.DsiCapable && editableClass(c)
		},
		persists: func(c Context) bool {
			return c.Caps.DsiCapable
		},
	},
	CpuBoost: {
		name:     "cpu-boost",
		iniKey:   "BOOST_CPU",
		label:    "ARM9 CPU Speed",
		domain:   []int{-1, 0, 1},
		sentinel: mo.Some(-1),
		labels: map[int]string{
			-1: "Default",
			0:  "67 MHz (NTR)",
			1:  "133 MHz (TWL)",
		},
		visible: func(c Context) bool {
			return c.Caps.ExtendedConfig && editableClass(c)
		},
		persists: func(c Context) bool {
			return c.Caps.DsiCapable
		},
	},
	VramBoost: {
		name:     "vram-boost",
		iniKey:   "BOOST_VRAM",
		label:    "VRAM boost",
		domain:   []int{-1, 0, 1},
		sentinel: mo.Some(-1),
		labels: map[int]string{
			-1: "Default",
			0:  "Off",
			1:  "On",
		},
		visible: func(c Context) bool {
			return c.Caps.ExtendedConfig && editableClass(c)
		},
		persists: func(c Context) bool {
			return c.Caps.DsiCapable
		},
	},
	BootstrapVariant: {
		name:     "bootstrap",
		iniKey:   "BOOTSTRAP_FILE",
		label:    "Bootstrap",
		domain:   []int{-1, 0, 1},
		sentinel: mo.Some(-1),
		labels: map[int]string{
			-1: "Default",
			0:  "Release",
			1:  "Nightly",
		},
		visible: func(c Context) bool {
			return c.Caps.BootstrapActive && c.Class == title.Retail
		},
		persists: func(c Context) bool {
			return c.Caps.DsiCapable && !c.SecondaryDevice
		},
	},
	SuppressAPNotice: {
		name:   "ap-notice",
		iniKey: "NO_SHOW_AP_MSG",
		label:  "AP notice",
		domain: []int{0, 1},
		labels: map[int]string{0: "Show", 1: "Muted"},
		// Managed through the apmsg surface, never shown in the editor.
		visible:  func(Context) bool { return false },
		persists: func(Context) bool { return false },
	},
}

// All returns every field in display order.
func All() []Field {
	return []Field{DirectBoot, Language, RunMode, CpuBoost, VramBoost, BootstrapVariant, SuppressAPNotice}
}

// Visible returns the fields an editor shows for a context, in display order.
func Visible(ctx Context) []Field {
	return lo.Filter(All(), func(f Field, _ int) bool {
		return f.Visible(ctx)
	})
}

// FromName resolves a field by its command line name.
func FromName(name string) (Field, error) {
	for _, f := range All() {
		if f.Name() == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown field %q", name)
}

// Names returns the command line names of the editable fields in display order.
func Names() []string {
	return lo.FilterMap(All(), func(f Field, _ int) (string, bool) {
		return f.Name(), f != SuppressAPNotice
	})
}

func (f Field) def() fieldDef {
	return fields[f]
}

// Name returns the command line name of the field.
func (f Field) Name() string {
	return f.def().name
}

func (f Field) String() string {
	return f.Name()
}

// INIKey returns the key the field occupies inside a settings file.
func (f Field) INIKey() string {
	return f.def().iniKey
}

// Label returns the display label of the field.
func (f Field) Label() string {
	return f.def().label
}

// Domain returns the cyclic value order of the field.
func (f Field) Domain() []int {
	return f.def().domain
}

// Visible reports whether an editor shows the field for a context.
func (f Field) Visible(ctx Context) bool {
	return f.def().visible(ctx)
}

// ValueLabel renders a domain value for display. Values outside the domain
// render as bare numbers.
func (f Field) ValueLabel(value int) string {
	if label, ok := f.def().labels[value]; ok {
		return label
	}
	return strconv.Itoa(value)
}

// Next returns the domain element following value, wrapping past the end.
// Values outside the domain restart the cycle.
func (f Field) Next(value int) int {
	domain := f.Domain()
	for i, v := range domain {
		if v == value {
			return domain[(i+1)%len(domain)]
		}
	}
	return domain[0]
}

// InDomain reports whether value is one of the field's known values.
func (f Field) InDomain(value int) bool {
	return lo.Contains(f.Domain(), value)
}

// Sentinel returns the inherit sentinel of the field, if it carries one.
func (f Field) Sentinel() (int, bool) {
	return f.def().sentinel.Get()
}
