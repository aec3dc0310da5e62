package settings

import (
	"os"
	"testing"

	"github.com/dstweak-cli/dstweak/key"
	"github.com/dstweak-cli/dstweak/title"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

// neutralGlobals pins the global defaults the resolver falls back to.
func neutralGlobals() {
	viper.Set(key.BootDSiMode, false)
	viper.Set(key.BootBoostCPU, false)
	viper.Set(key.BootBoostVRAM, false)
	viper.Set(key.BootLanguage, -1)
	viper.Set(key.BootBootstrapNightly, false)
}

func TestResolve(t *testing.T) {
	Convey("Effective value resolution", t, func() {
		neutralGlobals()
		os.Setenv("LC_ALL", "en_US.UTF-8")

		Convey("A retail game with no overrides inherits every global", func() {
			resolved := Resolve(Overrides{}, retailCtx())
			So(resolved.DirectBoot, ShouldBeFalse)
			So(resolved.RunMode, ShouldEqual, 0)
			So(resolved.Language, ShouldEqual, 1)
			So(resolved.CpuBoost, ShouldBeFalse)
			So(resolved.VramBoost, ShouldBeFalse)
			So(resolved.BootstrapNightly, ShouldBeFalse)
		})

		Convey("Direct boot defaults to the active device", func() {
			ctx := homebrewCtx()
			So(EffectiveValue(DirectBoot, Overrides{}, ctx), ShouldEqual, 0)

			ctx.SecondaryDevice = true
			So(EffectiveValue(DirectBoot, Overrides{}, ctx), ShouldEqual, 1)
		})

		Convey("Overrides win where the context allows them", func() {
			var o Overrides
			o.Set(Language, 3)
			o.Set(RunMode, 2)

			So(EffectiveValue(Language, o, retailCtx()), ShouldEqual, 3)
			So(EffectiveValue(RunMode, o, retailCtx()), ShouldEqual, 2)
		})

		Convey("Overrides on fields the context hides are ignored", func() {
			viper.Set(key.BootLanguage, 4)

			var o Overrides
			o.Set(Language, 0)
			So(EffectiveValue(Language, o, homebrewCtx()), ShouldEqual, 4)
		})

		Convey("The system language follows the host locale", func() {
			os.Setenv("LC_ALL", "fr_FR.UTF-8")

			var o Overrides
			o.Set(Language, -1)
			So(EffectiveValue(Language, o, retailCtx()), ShouldEqual, 2)

			Convey("Also when the global default asks for it", func() {
				So(EffectiveValue(Language, Overrides{}, retailCtx()), ShouldEqual, 2)
			})

			Convey("Unhelpful locales fall back to English", func() {
				os.Setenv("LC_ALL", "C")
				os.Setenv("LC_MESSAGES", "C")
				os.Setenv("LANG", "C")
				So(EffectiveValue(Language, o, retailCtx()), ShouldEqual, 1)
				os.Unsetenv("LC_MESSAGES")
				os.Unsetenv("LANG")
			})
		})

		Convey("Globals feed the run mode default", func() {
			viper.Set(key.BootDSiMode, true)
			So(EffectiveValue(RunMode, Overrides{}, retailCtx()), ShouldEqual, 1)
		})

		viper.Reset()
		os.Unsetenv("LC_ALL")
	})
}

func TestBoostLock(t *testing.T) {
	Convey("DSi mode boost lock", t, func() {
		neutralGlobals()

		Convey("Running in DSi mode forces both boosts on", func() {
			var o Overrides
			o.Set(RunMode, 1)
			o.Set(CpuBoost, 0)

			So(Locked(CpuBoost, o, homebrewCtx()), ShouldBeTrue)
			So(Locked(VramBoost, o, homebrewCtx()), ShouldBeTrue)
			So(EffectiveValue(CpuBoost, o, homebrewCtx()), ShouldEqual, 1)
			So(EffectiveValue(VramBoost, o, homebrewCtx()), ShouldEqual, 1)
		})

		Convey("Locked fields refuse to cycle", func() {
			var o Overrides
			o.Set(RunMode, 2)
			o.Set(VramBoost, 0)

			So(o.Cycle(VramBoost, homebrewCtx()), ShouldBeFalse)
			So(o.VramBoost.OrElse(-99), ShouldEqual, 0)
		})

		Convey("DS mode leaves the boosts alone", func() {
			var o Overrides
			o.Set(RunMode, 0)
			So(Locked(CpuBoost, o, homebrewCtx()), ShouldBeFalse)
			So(o.Cycle(CpuBoost, homebrewCtx()), ShouldBeTrue)
		})

		Convey("The lock needs DSi capable hardware", func() {
			ctx := Context{Class: title.Homebrew}

			var o Overrides
			o.Set(RunMode, 1)
			So(Locked(CpuBoost, o, ctx), ShouldBeFalse)
		})

		Convey("An inherited run mode does not lock", func() {
			So(Locked(CpuBoost, Overrides{}, homebrewCtx()), ShouldBeFalse)
		})

		viper.Reset()
	})
}

func TestWorking(t *testing.T) {
	Convey("Editor-facing working values", t, func() {
		neutralGlobals()

		Convey("Unset fields with a sentinel sit on it", func() {
			So(Overrides{}.Working(RunMode, retailCtx()), ShouldEqual, -1)
			So(Overrides{}.Working(Language, retailCtx()), ShouldEqual, -2)
		})

		Convey("Unset direct boot mirrors the device default", func() {
			ctx := homebrewCtx()
			So(Overrides{}.Working(DirectBoot, ctx), ShouldEqual, 0)

			ctx.SecondaryDevice = true
			So(Overrides{}.Working(DirectBoot, ctx), ShouldEqual, 1)
		})

		Convey("Cycling walks the domain and wraps to unset", func() {
			var o Overrides
			ctx := retailCtx()

			So(o.Cycle(RunMode, ctx), ShouldBeTrue)
			So(o.Working(RunMode, ctx), ShouldEqual, 0)

			o.Cycle(RunMode, ctx)
			o.Cycle(RunMode, ctx)
			So(o.Working(RunMode, ctx), ShouldEqual, 2)

			o.Cycle(RunMode, ctx)
			So(o.RunMode.IsAbsent(), ShouldBeTrue)
			So(o.Working(RunMode, ctx), ShouldEqual, -1)
		})

		viper.Reset()
	})
}
