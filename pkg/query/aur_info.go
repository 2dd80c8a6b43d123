package query

import (
	"context"
	"sync"

	"github.com/cenk/backoff"
	"github.com/pkg/errors"

	"github.com/D1CED/octo/pkg/multierror"
	"github.com/D1CED/octo/pkg/text"
)

type AURInfoProvider interface {
	Info(ctx context.Context, names []string) ([]Pkg, error)
}

// MaxRetries bounds the attempts made for a single rpc request.
const MaxRetries = 3

// Queries the aur for information about specified packages.
// All packages should be queried in a single rpc request except when the number
// of packages exceeds splitN.
// If the number does exceed splitN multiple rpc requests will be
// performed concurrently. Failed requests are retried with exponential backoff.
func AURInfo(ctx context.Context, a AURInfoProvider, names []string, warnings *AURWarnings, splitN int) ([]*Pkg, error) {
	if splitN <= 0 {
		splitN = len(names)
	}

	info := make([]*Pkg, 0, len(names))
	seen := make(map[string]int)
	var mux sync.Mutex
	var wg sync.WaitGroup
	var errs multierror.MultiError

	makeRequest := func(n, max int) {
		defer wg.Done()

		var tempInfo []Pkg
		retry := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), MaxRetries), ctx)
		requestErr := backoff.Retry(func() error {
			var err error
			tempInfo, err = a.Info(ctx, names[n:max])
			return err
		}, retry)
		if requestErr != nil {
			errs.Add(errors.Wrapf(requestErr, text.T("querying %d AUR packages"), max-n))
			return
		}

		mux.Lock()
		for i := range tempInfo {
			info = append(info, &tempInfo[i])
		}
		mux.Unlock()
	}

	for n := 0; n < len(names); n += splitN {
		wg.Add(1)
		go makeRequest(n, min(len(names), n+splitN))
	}

	wg.Wait()

	if err := errs.Return(); err != nil {
		return info, err
	}

	for k, pkg := range info {
		seen[pkg.Name] = k
	}

	for _, name := range names {
		i, ok := seen[name]
		if !ok && !warnings.Ignore.Get(name) {
			warnings.Missing = append(warnings.Missing, name)
			continue
		}
		if !ok {
			continue
		}

		pkg := info[i]

		if pkg.Maintainer == "" && !warnings.Ignore.Get(name) {
			warnings.Orphans = append(warnings.Orphans, name)
		}
		if pkg.OutOfDate != 0 && !warnings.Ignore.Get(name) {
			warnings.OutOfDate = append(warnings.OutOfDate, name)
		}
	}

	return info, nil
}

func AURInfoPrint(ctx context.Context, a AURInfoProvider, names []string, splitN int) ([]*Pkg, error) {
	text.OperationInfoln(text.T("Querying AUR..."))

	warnings := NewWarnings()
	info, err := AURInfo(ctx, a, names, warnings, splitN)
	if err != nil {
		return info, err
	}

	warnings.Print()

	return info, nil
}
