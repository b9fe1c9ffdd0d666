package version

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/adreel-cli/adreel/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestCompare(t *testing.T) {
	Convey("Given two versions", t, func() {
		cases := []struct {
			a, b string
			want int
		}{
			{"0.3.1", "0.3.1", 0},
			{"v1.0.0", "0.9.9", 1},
			{"0.3.0", "0.3.1", -1},
			{"0.10.0", "0.9.0", 1},
			{"1.2", "1.2.0", 0},
			{"v1.2.0-rc1", "1.1.9", 1},
		}

		for _, c := range cases {
			got, err := Compare(c.a, c.b)
			So(err, ShouldBeNil)
			So(got, ShouldEqual, c.want)
		}

		Convey("Garbage should fail", func() {
			_, err := Compare("latest", "0.1.0")
			So(err, ShouldNotBeNil)

			_, err = Compare("1.2.3.4", "0.1.0")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestLatest(t *testing.T) {
	Convey("Given a release endpoint", t, func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"tag_name":"v0.4.0"}`))
		}))
		defer server.Close()

		original := ReleasesURL
		ReleasesURL = server.URL
		defer func() { ReleasesURL = original }()

		Convey("Latest should strip the v prefix and cache the result", func() {
			ver, err := Latest(context.Background())
			So(err, ShouldBeNil)
			So(ver, ShouldEqual, "0.4.0")

			server.Close()
			ver, err = Latest(context.Background())
			So(err, ShouldBeNil)
			So(ver, ShouldEqual, "0.4.0")
		})
	})
}
