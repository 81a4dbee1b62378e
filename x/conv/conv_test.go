package conv

import "testing"

func TestItoa(t *testing.T) {
	var buf [20]byte
	cases := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{7, "7"},
		{-7, "-7"},
		{1023, "1023"},
		{-32768, "-32768"},
	}
	for _, tc := range cases {
		if got := string(Itoa(buf[:], tc.n)); got != tc.want {
			t.Errorf("Itoa(%d) = %q, want %q", tc.n, got, tc.want)
		}
	}
}

func TestAppendDeci(t *testing.T) {
	cases := []struct {
		v    int64
		want string
	}{
		{0, "0.0"},
		{213, "21.3"},
		{-7, "-0.7"},
		{-410, "-41.0"},
		{20, "2.0"},
	}
	for _, tc := range cases {
		if got := string(AppendDeci(nil, tc.v)); got != tc.want {
			t.Errorf("AppendDeci(%d) = %q, want %q", tc.v, got, tc.want)
		}
	}
}
