package dep

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/D1CED/octo/pkg/db"
)

func TestSplitDep(t *testing.T) {
	tests := []struct {
		dep             string
		name, mod, vers string
	}{
		{dep: "glibc", name: "glibc"},
		{dep: "glibc>=2.32", name: "glibc", mod: ">=", vers: "2.32"},
		{dep: "python<3.10", name: "python", mod: "<", vers: "3.10"},
		{dep: "sh=5", name: "sh", mod: "=", vers: "5"},
		{dep: "", name: ""},
	}
	for _, tt := range tests {
		t.Run(tt.dep, func(t *testing.T) {
			name, mod, vers := SplitDep(tt.dep)
			assert.Equal(t, tt.name, name)
			assert.Equal(t, tt.mod, mod)
			assert.Equal(t, tt.vers, vers)
		})
	}
}

func TestResolver(t *testing.T) {
	r := NewResolver([]db.Package{
		{Name: "bash", Version: "5.0.018-1", Provides: []string{"sh"}},
		{Name: "glibc", Version: "2.32-5"},
		{Name: "jdk-openjdk", Version: "15.0.1-1", Provides: []string{"java-environment=15"}},
	})

	tests := []struct {
		dep  string
		want string
		ok   bool
	}{
		{dep: "glibc", want: "glibc", ok: true},
		{dep: "glibc>=2.0", want: "glibc", ok: true},
		{dep: "sh", want: "bash", ok: true},
		{dep: "java-environment>=11", want: "jdk-openjdk", ok: true},
		{dep: "java-environment<11", ok: false},
		{dep: "zsh", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.dep, func(t *testing.T) {
			got, ok := r.Resolve(tt.dep)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Equal(t, []string{"glibc", "bash"}, r.ResolveAll([]string{"glibc>=2", "zsh", "sh"}))
}
