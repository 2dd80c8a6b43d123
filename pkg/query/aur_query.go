package query

import (
	"context"
	"sync"

	"github.com/mikkeloscar/aur"
)

type Pkg = aur.Pkg

// aurURLMux guards the package level URL of the aur client.
var aurURLMux sync.Mutex

// AUR queries the RPC interface found at URL.
type AUR struct {
	URL string
}

func (a AUR) swap() func() {
	aurURLMux.Lock()
	backup := aur.AURURL
	if a.URL != "" {
		aur.AURURL = a.URL
	}
	return func() {
		aur.AURURL = backup
		aurURLMux.Unlock()
	}
}

func (a AUR) Info(ctx context.Context, pkgs []string) ([]Pkg, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	defer a.swap()()
	return aur.Info(pkgs)
}
