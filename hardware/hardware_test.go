package hardware

import (
	"testing"

	"github.com/dstweak-cli/dstweak/constant"
	"github.com/dstweak-cli/dstweak/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func configure(model string, dsiMode, scfg, bootstrap bool) {
	viper.Set(key.ConsoleModel, model)
	viper.Set(key.ConsoleDSiMode, dsiMode)
	viper.Set(key.ConsoleSCFGUnlocked, scfg)
	viper.Set(key.BootstrapEnabled, bootstrap)
}

func TestProbe(t *testing.T) {
	Convey("Capability probe", t, func() {
		Convey("A regular DS has no TWL capabilities", func() {
			configure(constant.ModelDS, true, true, true)
			caps := Probe()
			So(caps.DsiCapable, ShouldBeFalse)
			So(caps.ExtendedConfig, ShouldBeFalse)
			So(caps.BootstrapActive, ShouldBeTrue)
		})

		Convey("A DSi in DSi mode with SCFG unlocked has everything", func() {
			configure(constant.ModelDSi, true, true, true)
			caps := Probe()
			So(caps.DsiCapable, ShouldBeTrue)
			So(caps.ExtendedConfig, ShouldBeTrue)
			So(caps.BootstrapActive, ShouldBeTrue)
		})

		Convey("A DSi outside DSi mode cannot start games in DSi mode", func() {
			configure(constant.ModelDSi, false, true, false)
			caps := Probe()
			So(caps.DsiCapable, ShouldBeFalse)
			So(caps.ExtendedConfig, ShouldBeTrue)
			So(caps.BootstrapActive, ShouldBeFalse)
		})

		Convey("A locked SCFG hides the extended configuration", func() {
			configure(constant.Model3DS, true, false, true)
			caps := Probe()
			So(caps.DsiCapable, ShouldBeTrue)
			So(caps.ExtendedConfig, ShouldBeFalse)
		})

		Convey("An unknown model degrades to a regular DS", func() {
			configure("gba", true, true, true)
			caps := Probe()
			So(caps.DsiCapable, ShouldBeFalse)
			So(caps.ExtendedConfig, ShouldBeFalse)
		})

		viper.Reset()
	})
}
