package pipeline

import (
	"context"
	"testing"
)

func TestInjectCSS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		css  string
		want string
	}{
		{
			name: "before closing head",
			html: "<html><head><title>t</title></head><body></body></html>",
			css:  "p{}",
			want: "<html><head><title>t</title><style>p{}</style></head><body></body></html>",
		},
		{
			name: "after body when no head",
			html: `<body class="x"><p>a</p></body>`,
			css:  "p{}",
			want: `<body class="x"><style>p{}</style><p>a</p></body>`,
		},
		{
			name: "prepended to fragment",
			html: "<p>a</p>",
			css:  "p{}",
			want: "<style>p{}</style><p>a</p>",
		},
		{
			name: "empty CSS leaves HTML unchanged",
			html: "<p>a</p>",
			css:  "",
			want: "<p>a</p>",
		},
		{
			name: "closing sequences escaped",
			html: "<p>a</p>",
			css:  "</style><script>",
			want: `<style><\/style><script></style><p>a</p>`,
		},
	}

	s := &CSSInjection{}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := s.InjectCSS(context.Background(), tt.html, tt.css); got != tt.want {
				t.Errorf("InjectCSS() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInjectCSS_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	in := "<head></head>"
	if got := (&CSSInjection{}).InjectCSS(ctx, in, "p{}"); got != in {
		t.Errorf("InjectCSS() = %q, want input unchanged", got)
	}
}
