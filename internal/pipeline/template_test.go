package pipeline

import (
	"errors"
	"testing"
)

func TestNewPageTemplate(t *testing.T) {
	t.Parallel()

	if _, err := NewPageTemplate("<title>{{ Title }}</title>"); !errors.Is(err, ErrInvalidTemplate) {
		t.Errorf("NewPageTemplate() error = %v, want ErrInvalidTemplate", err)
	}
	if _, err := NewPageTemplate("<body>{{ Content }}</body>"); err != nil {
		t.Errorf("NewPageTemplate() without title placeholder: unexpected error %v", err)
	}
}

func TestPageTemplate_Execute(t *testing.T) {
	t.Parallel()

	tmpl, err := NewPageTemplate("<title>{{ Title }}</title><h1>{{ Title }}</h1><main>{{ Content }}</main>")
	if err != nil {
		t.Fatalf("NewPageTemplate() unexpected error: %v", err)
	}

	got := tmpl.Execute("Home", "<div><p>hi</p></div>")
	want := "<title>Home</title><h1>Home</h1><main><div><p>hi</p></div></main>"
	if got != want {
		t.Errorf("Execute() = %q, want %q", got, want)
	}
}

func TestPageTemplate_ExecuteDoesNotRescanValues(t *testing.T) {
	t.Parallel()

	tmpl, err := NewPageTemplate("{{ Title }}|{{ Content }}")
	if err != nil {
		t.Fatalf("NewPageTemplate() unexpected error: %v", err)
	}

	got := tmpl.Execute("{{ Content }}", "body")
	if got != "{{ Content }}|body" {
		t.Errorf("Execute() = %q", got)
	}
}
