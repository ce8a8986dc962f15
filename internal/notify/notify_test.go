package notify

import (
	"slices"
	"testing"
)

func TestListRemoveDuringEach(t *testing.T) {
	var ls List[func(string)]
	var got []string

	var removeSecond func()
	ls.Add(func(s string) {
		got = append(got, "first:"+s)
		removeSecond()
	})
	removeSecond = ls.Add(func(s string) { got = append(got, "second:"+s) })
	ls.Add(func(s string) { got = append(got, "third:"+s) })

	ls.Each(func(fn func(string)) { fn("a") })
	if want := []string{"first:a", "second:a", "third:a"}; !slices.Equal(got, want) {
		t.Fatalf("first pass = %v, want %v", got, want)
	}
	if ls.Len() != 2 {
		t.Fatalf("Len = %d, want 2", ls.Len())
	}

	got = nil
	ls.Each(func(fn func(string)) { fn("b") })
	if want := []string{"first:b", "third:b"}; !slices.Equal(got, want) {
		t.Fatalf("second pass = %v, want %v", got, want)
	}

	ls.Clear()
	got = nil
	ls.Each(func(fn func(string)) { fn("c") })
	if len(got) != 0 {
		t.Fatalf("cleared list delivered %v", got)
	}
}
