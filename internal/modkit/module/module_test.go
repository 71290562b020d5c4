package module

import (
	"testing"

	phttp "cictt/internal/platform/net/http"
)

// stubModule records MountRoutes calls and returns a configurable ports value
type stubModule struct {
	name    string
	mounted int
	ports   any
}

func (s *stubModule) MountRoutes(_ phttp.Router) { s.mounted++ }
func (s *stubModule) Ports() any                 { return s.ports }
func (s *stubModule) Name() string               { return s.name }

var _ Module = (*stubModule)(nil)

func TestModule_MountRoutes(t *testing.T) {
	m := &stubModule{}

	// the contract does not require the router to be used
	var r phttp.Router
	m.MountRoutes(r)
	m.MountRoutes(r)

	if m.mounted != 2 {
		t.Fatalf("MountRoutes calls = %d, want 2", m.mounted)
	}
}

func TestModule_Ports(t *testing.T) {
	type portSet struct {
		Name string
		ID   int
	}

	cases := []struct {
		name string
		in   any
	}{
		{"nil ports", nil},
		{"primitive ports", 123},
		{"struct ports", portSet{Name: "analysis", ID: 7}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := &stubModule{ports: tc.in}
			if got := m.Ports(); got != tc.in {
				t.Fatalf("Ports() = %v, want %v", got, tc.in)
			}
		})
	}
}
