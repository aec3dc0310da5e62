package settings

import (
	"github.com/samber/mo"
)

// Overrides holds the per-game values stored on the medium. An absent value
// inherits the global default at boot.
type Overrides struct {
	DirectBoot       mo.Option[int] `json:"direct_boot"`
	Language         mo.Option[int] `json:"language"`
	RunMode          mo.Option[int] `json:"run_mode"`
	CpuBoost         mo.Option[int] `json:"cpu_boost"`
	VramBoost        mo.Option[int] `json:"vram_boost"`
	BootstrapVariant mo.Option[int] `json:"bootstrap"`
}

// Get returns the stored override for a field.
func (o Overrides) Get(f Field) mo.Option[int] {
	switch f {
	case DirectBoot:
		return o.DirectBoot
	case Language:
		return o.Language
	case RunMode:
		return o.RunMode
	case CpuBoost:
		return o.CpuBoost
	case VramBoost:
		return o.VramBoost
	case BootstrapVariant:
		return o.BootstrapVariant
	default:
		return mo.None[int]()
	}
}

// Set stores an override for a field. Callers validate values against the
// field domain.
func (o *Overrides) Set(f Field, value int) {
	target := o.target(f)
	if target == nil {
		return
	}
	*target = mo.Some(value)
}

// Unset removes the stored override for a field.
func (o *Overrides) Unset(f Field) {
	target := o.target(f)
	if target == nil {
		return
	}
	*target = mo.None[int]()
}

func (o *Overrides) target(f Field) *mo.Option[int] {
	switch f {
	case DirectBoot:
		return &o.DirectBoot
	case Language:
		return &o.Language
	case RunMode:
		return &o.RunMode
	case CpuBoost:
		return &o.CpuBoost
	case VramBoost:
		return &o.VramBoost
	case BootstrapVariant:
		return &o.BootstrapVariant
	default:
		return nil
	}
}

// Empty reports whether no field holds an override.
func (o Overrides) Empty() bool {
	for _, f := range All() {
		if o.Get(f).IsPresent() {
			return false
		}
	}
	return true
}

// Working returns the editor-facing value of a field: the stored override,
// else the inherit sentinel, else the effective default for fields without
// one.
func (o Overrides) Working(f Field, ctx Context) int {
	if v, ok := o.Get(f).Get(); ok {
		return v
	}
	if s, ok := f.Sentinel(); ok {
		return s
	}
	return EffectiveValue(f, o, ctx)
}

// Cycle advances a field to the next value in its domain, wrapping back to
// the inherit sentinel. Locked fields stay put. Reports whether the value
// moved.
func (o *Overrides) Cycle(f Field, ctx Context) bool {
	if Locked(f, *o, ctx) {
		return false
	}

	next := f.Next(o.Working(f, ctx))
	if s, ok := f.Sentinel(); ok && next == s {
		o.Unset(f)
		return true
	}
	o.Set(f, next)
	return true
}

// Locked reports whether a field refuses edits: the CPU and VRAM boosts are
// bound to their boosted state while the game itself is set to run in DSi
// mode on capable hardware.
func Locked(f Field, o Overrides, ctx Context) bool {
	if f != CpuBoost && f != VramBoost {
		return false
	}
	if !ctx.Caps.DsiCapable {
		return false
	}
	return o.RunMode.OrElse(-1) > 0
}
