package main // import "github.com/D1CED/octo"

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/D1CED/octo/pkg/db/ialpm"
	"github.com/D1CED/octo/pkg/refresh"
	"github.com/D1CED/octo/pkg/settings"
	"github.com/D1CED/octo/pkg/settings/runtime"
	"github.com/D1CED/octo/pkg/text"
)

var (
	version    = "0.1.0"
	localePath = "/usr/share/locale"
)

// loadRuntime reads the configuration, opens the package databases and
// loads them into a fresh repository.
func loadRuntime(ctx context.Context, flags *globalFlags) (*runtime.Runtime, func(), error) {
	config, err := settings.NewConfig(flags.config)
	if err != nil {
		return nil, nil, err
	}

	if flags.pacmanConf != "" {
		config.PacmanConf = flags.pacmanConf
	}
	if flags.color != "" {
		config.Color = flags.color
	}
	if flags.aur {
		config.AUR = true
	}

	colorMode, err := settings.ParseColorMode(config.Color)
	if err != nil {
		return nil, nil, err
	}

	pacmanConf, useColor, err := settings.InitAlpm(&settings.PacmanConf{
		Config: config.PacmanConf,
		Root:   flags.root,
		DBPath: flags.dbPath,
		Color:  colorMode,
	})
	if err != nil {
		return nil, nil, err
	}

	text.UseColor = useColor

	dbExecutor, err := ialpm.NewExecutor(pacmanConf)
	if err != nil {
		return nil, nil, err
	}

	rt := runtime.New(config, pacmanConf, dbExecutor)
	if err := refresh.Refresh(ctx, rt.Repo, rt.Scanner, refresh.Options{AUR: config.AUR}); err != nil {
		dbExecutor.Cleanup()
		return nil, nil, err
	}

	return rt, dbExecutor.Cleanup, nil
}

func main() {
	text.Init(localePath)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	rc := 0
	if err := newRootCmd(loadRuntime).ExecuteContext(ctx); err != nil {
		if err.Error() != "" {
			text.Errorln(err)
		}
		rc = 1
	}

	cancel()
	os.Exit(rc)
}
