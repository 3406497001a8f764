package navigation

import (
	"net/http/httptest"
	"testing"
)

func TestSafeBackURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		opts BackURLOptions
		want string
	}{
		{
			name: "valid return with allowed prefix",
			url:  "/deliverables/abc?return=%2Fdeliverables%3Fsection%3Dculture",
			opts: DeliverablesBackURL,
			want: "/deliverables?section=culture",
		},
		{
			name: "return outside prefix falls back",
			url:  "/deliverables/abc?return=%2Fculture",
			opts: DeliverablesBackURL,
			want: "/deliverables",
		},
		{
			name: "excluded subpath falls back",
			url:  "/deliverables/abc?return=%2Fdeliverables%2Fnew",
			opts: DeliverablesBackURL,
			want: "/deliverables",
		},
		{
			name: "absolute URL rejected as open redirect",
			url:  "/deliverables/abc?return=https%3A%2F%2Fevil.example%2Fdeliverables",
			opts: DeliverablesBackURL,
			want: "/deliverables",
		},
		{
			name: "fallback preserves section filter",
			url:  "/deliverables/abc?section=culture",
			opts: DeliverablesBackURL,
			want: "/deliverables?section=culture",
		},
		{
			name: "all section is not preserved",
			url:  "/deliverables/abc?section=all",
			opts: DeliverablesBackURL,
			want: "/deliverables",
		},
		{
			name: "no return uses plain fallback",
			url:  "/culture/resources/duolingo",
			opts: CultureBackURL,
			want: "/culture",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tc.url, nil)
			if got := SafeBackURL(r, tc.opts); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}
