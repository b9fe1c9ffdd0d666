package where

import (
	"path/filepath"
	"testing"

	"github.com/adreel-cli/adreel/filesystem"
	"github.com/adreel-cli/adreel/key"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Config()", func() {
			path := Config()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Cache()", func() {
			path := Cache()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Logs()", func() {
			path := Logs()
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Playlist()", func() {
			Convey("Defaults to the config directory", func() {
				viper.Set(key.PlaylistPath, "")
				So(Playlist(), ShouldEqual, filepath.Join(Config(), "playlist.json"))
			})

			Convey("Honors playlist.path", func() {
				viper.Set(key.PlaylistPath, "/srv/ads/list.json")
				defer viper.Set(key.PlaylistPath, "")
				So(Playlist(), ShouldEqual, "/srv/ads/list.json")
			})
		})
	})
}
