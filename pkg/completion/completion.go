// Package completion provides shell completion candidates from a loaded
// repository.
package completion

import (
	"strings"

	"github.com/D1CED/octo/pkg/repository"
)

// Packages returns the names of all records starting with prefix, each
// followed by a tab and its repository. A name found in several
// repositories is listed once per repository.
func Packages(repo *repository.Repository, prefix string) []string {
	out := []string{}
	for _, pkg := range repo.Records() {
		if strings.HasPrefix(pkg.Name(), prefix) {
			out = append(out, pkg.Name()+"\t"+pkg.Repository())
		}
	}
	return out
}

// Groups returns the group names starting with prefix.
func Groups(repo *repository.Repository, prefix string) []string {
	out := []string{}
	for _, name := range repo.Groups() {
		if strings.HasPrefix(name, prefix) {
			out = append(out, name)
		}
	}
	if strings.HasPrefix(repository.ExternalGroup, prefix) && len(repo.Members(repository.ExternalGroup)) > 0 {
		out = append(out, repository.ExternalGroup)
	}
	return out
}
