package config

import (
	"testing"

	"github.com/dstweak-cli/dstweak/filesystem"
	"github.com/dstweak-cli/dstweak/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			result := EnvKeyReplacer.Replace("console.dsi_mode")
			So(result, ShouldEqual, "console_dsi_mode")
		})
	})
}

func TestDefaults(t *testing.T) {
	Convey("Defaults registry", t, func() {
		Convey("Should define every key exactly once", func() {
			So(len(Default), ShouldEqual, key.DefinedFieldsCount)
			So(len(EnvExposed), ShouldEqual, key.DefinedFieldsCount)
		})

		Convey("Env names should carry the application prefix", func() {
			field := Default[key.StorageActive]
			So(field.Env(), ShouldEqual, "DSTWEAK_STORAGE_ACTIVE")
		})

		Convey("Boot language default should resolve from the system", func() {
			field := Default[key.BootLanguage]
			So(field.Value, ShouldEqual, -1)
		})
	})
}
