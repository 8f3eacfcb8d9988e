// Copyright 2026 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

package logging

import (
	"testing"

	"github.com/hexya-erp/postore/src/config"
	"github.com/hexya-erp/postore/src/tools/exceptions"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

func TestLogger(t *testing.T) {
	Convey("Testing uninitialized loggers", t, func() {
		l := GetLogger("test")
		Convey("Logging before Initialize should be silent", func() {
			So(func() { l.Info("message", "key", "value") }, ShouldNotPanic)
			So(func() { l.New("sub", 1).Warn("message") }, ShouldNotPanic)
		})
		Convey("Sync should fail on a non-initialized logger", func() {
			So(l.Sync(), ShouldNotBeNil)
		})
		Convey("Panic should panic with message and context", func() {
			So(func() { l.Panic("boom", "file", "fr.po") }, ShouldPanicWith, "boom\n\tfile : fr.po\n")
		})
	})
	Convey("Testing LogPanicData", t, func() {
		err := LogPanicData("something went wrong")
		So(err, ShouldHaveSameTypeAs, exceptions.UserError{})
		So(err.Error(), ShouldEqual, "something went wrong")
		So(err.(exceptions.UserError).Debug, ShouldContainSubstring, "something went wrong")
	})
}

func TestBuildConfig(t *testing.T) {
	Convey("Testing the zap configuration of logging settings", t, func() {
		v := viper.New()
		config.SetDefaults(v)
		Convey("Defaults should log info messages to stderr", func() {
			c, err := buildConfig(v)
			So(err, ShouldBeNil)
			So(c.Level.Level(), ShouldEqual, zapcore.InfoLevel)
			So(c.OutputPaths, ShouldResemble, []string{config.DefaultLogOutput})
			So(c.Development, ShouldBeFalse)
		})
		Convey("Stdout and log file should replace the default output", func() {
			v.Set(config.KeyLogStdout, true)
			v.Set(config.KeyLogFile, "/var/log/postore.log")
			v.Set(config.KeyLogLevel, "debug")
			v.Set(config.KeyDebug, true)
			c, err := buildConfig(v)
			So(err, ShouldBeNil)
			So(c.Level.Level(), ShouldEqual, zapcore.DebugLevel)
			So(c.OutputPaths, ShouldResemble, []string{"stdout", "/var/log/postore.log"})
			So(c.Development, ShouldBeTrue)
		})
		Convey("An invalid level should fall back to the default level", func() {
			v.Set(config.KeyLogLevel, "verbose")
			c, err := buildConfig(v)
			So(err, ShouldNotBeNil)
			So(c.Level.Level(), ShouldEqual, zapcore.InfoLevel)
		})
	})
}
