package utils

import "testing"

func TestIsNewerVersion(t *testing.T) {
	cases := []struct {
		remote, local string
		want          bool
		wantErr       bool
	}{
		{"1.2.3", "1.2.2", true, false},
		{"1.2.3", "1.2.3", false, false},
		{"1.2.3", "1.3.0", false, false},
		{"2.0.0", "1.9.9", true, false},
		{"dev", "1.0.0", false, true},
	}

	for _, c := range cases {
		got, err := IsNewerVersion(c.remote, c.local)
		if c.wantErr {
			if err == nil {
				t.Errorf("IsNewerVersion(%q,%q): want error", c.remote, c.local)
			}
			continue
		}
		if err != nil {
			t.Errorf("IsNewerVersion(%q,%q): %v", c.remote, c.local, err)
			continue
		}
		if got != c.want {
			t.Errorf("IsNewerVersion(%q,%q) = %v, want %v", c.remote, c.local, got, c.want)
		}
	}
}
