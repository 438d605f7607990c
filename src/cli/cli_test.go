package cli

import (
	"os"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/folkertvanheusden/pps-comparer/src/logger"
	"github.com/folkertvanheusden/pps-comparer/src/samples"
)

func TestApp(t *testing.T) {
	Convey("When parsing a tool command line", t, func() {
		app := New("ppstest", "test tool", samples.TrimHeaderFooter)
		in := app.Input()
		out := app.Output()

		Convey("Positional arguments and default trimming are picked up", func() {
			So(app.Parse([]string{"in.log", "out.svg"}), ShouldBeNil)
			So(*in, ShouldEqual, "in.log")
			So(*out, ShouldEqual, "out.svg")
			So(app.Trim(), ShouldResemble, samples.Trim{Head: 1, Tail: 1})
		})

		Convey("Trimming can be overridden", func() {
			So(app.Parse([]string{"--skip-head=0", "--skip-tail=2", "in.log", "out.svg"}), ShouldBeNil)
			So(app.Trim(), ShouldResemble, samples.Trim{Head: 0, Tail: 2})
		})

		Convey("A missing output argument is an error", func() {
			So(app.Parse([]string{"in.log"}), ShouldNotBeNil)
		})

		Convey("An unknown log level is rejected", func() {
			So(app.Parse([]string{"--log-level=chatty", "in.log", "out.svg"}), ShouldNotBeNil)
		})

		Convey("The log level is applied", func() {
			defer logger.SetLogLevel("info")
			So(app.Parse([]string{"--log-level=error", "in.log", "out.svg"}), ShouldBeNil)
			So(logger.GetLogLevel(), ShouldEqual, logger.LevelError)
		})
	})

	Convey("The log level can come from the environment", t, func() {
		os.Setenv(EnvLogLevel, "debug")
		defer os.Unsetenv(EnvLogLevel)
		defer logger.SetLogLevel("info")

		app := New("ppstest", "test tool", samples.TrimFooter)
		app.Input()
		So(app.Parse([]string{"in.log"}), ShouldBeNil)
		So(logger.GetLogLevel(), ShouldEqual, logger.LevelDebug)
		So(app.Trim(), ShouldResemble, samples.Trim{Head: 0, Tail: 1})
	})
}
