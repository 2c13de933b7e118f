// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package params

import (
	"net/url"
	"strings"
	"testing"

	"go.astrophena.name/botapi/internal/testutil"
)

type parseMode string

type point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func TestQueryString(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		bag  *Bag
		want string
	}{
		"nil":   {bag: nil, want: ""},
		"empty": {bag: New(), want: ""},
		"single": {
			bag:  New().Add("chat_id", int64(42)),
			want: "?chat_id=42",
		},
		"insertion order": {
			bag:  New().Add("text", "hi").Add("chat_id", 1).Add("disable_notification", true),
			want: "?text=hi&chat_id=1&disable_notification=true",
		},
		"last write wins": {
			bag:  New().Add("a", 1).Add("b", 2).Add("a", 3),
			want: "?a=3&b=2",
		},
		"percent encoding": {
			bag:  New().Add("text", "hello world & more=yes"),
			want: "?text=hello+world+%26+more%3Dyes",
		},
		"nested object as JSON": {
			bag:  New().Add("p", point{X: 1, Y: 2}),
			want: "?p=" + url.QueryEscape(`{"x":1,"y":2}`),
		},
		"array as JSON": {
			bag:  New().Add("ids", []int{1, 2, 3}),
			want: "?ids=" + url.QueryEscape(`[1,2,3]`),
		},
		"named string type": {
			bag:  New().Add("parse_mode", parseMode("HTML")),
			want: "?parse_mode=HTML",
		},
		"floats": {
			bag:  New().Add("latitude", 55.75).Add("longitude", float32(37.5)),
			want: "?latitude=55.75&longitude=37.5",
		},
		"nil values are ignored": {
			bag:  New().Add("a", nil).Add("b", (*point)(nil)).Add("c", []int(nil)).Add("d", "x"),
			want: "?d=x",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, tc.bag.QueryString(), tc.want)
		})
	}
}

func TestKeysAppearOnce(t *testing.T) {
	t.Parallel()

	b := New()
	for i := range 10 {
		b.Add("k", i).Add("other", i)
	}
	qs := b.QueryString()
	testutil.AssertEqual(t, strings.Count(qs, "k="), 1)
	testutil.AssertEqual(t, strings.Count(qs, "other="), 1)
	testutil.AssertEqual(t, b.Keys(), []string{"k", "other"})
	v, _ := b.Get("k")
	testutil.AssertEqual(t, v, "9")
}

func TestCloneMergeDelete(t *testing.T) {
	t.Parallel()

	orig := Of("a", 1, "b", "two")
	c := orig.Clone()
	c.Add("a", 10).Add("c", true)

	testutil.AssertEqual(t, orig.QueryString(), "?a=1&b=two")
	testutil.AssertEqual(t, c.QueryString(), "?a=10&b=two&c=true")

	merged := New().Add("b", "first").Merge(c)
	testutil.AssertEqual(t, merged.Keys(), []string{"b", "a", "c"})
	testutil.AssertEqual(t, merged.Len(), 3)

	merged.Delete("a")
	merged.Delete("missing")
	testutil.AssertNotContains(t, merged.Keys(), "a")
	testutil.AssertEqual(t, merged.QueryString(), "?b=two&c=true")

	var nilBag *Bag
	testutil.AssertEqual(t, nilBag.Len(), 0)
	testutil.AssertEqual(t, nilBag.Clone().Len(), 0)
	testutil.AssertEqual(t, New().Merge(nilBag).Len(), 0)
}

func TestValues(t *testing.T) {
	t.Parallel()

	v := Of("chat_id", -100123, "text", "hi").Values()
	testutil.AssertEqual(t, v.Get("chat_id"), "-100123")
	testutil.AssertEqual(t, v.Get("text"), "hi")
}

func TestAddIf(t *testing.T) {
	t.Parallel()

	b := New().AddIf(false, "a", 1).AddIf(true, "b", 2)
	testutil.AssertEqual(t, b.QueryString(), "?b=2")
}

func TestOfPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatal("Of did not panic on odd number of arguments")
		}
	}()
	Of("a")
}
