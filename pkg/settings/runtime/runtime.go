package runtime

import (
	pacmanconf "github.com/Morganamilo/go-pacmanconf"

	"github.com/D1CED/octo/pkg/db"
	"github.com/D1CED/octo/pkg/model"
	"github.com/D1CED/octo/pkg/query"
	"github.com/D1CED/octo/pkg/repository"
	"github.com/D1CED/octo/pkg/settings"
)

// Runtime wires the repository and its model to the package databases.
type Runtime struct {
	DB      db.Executor
	Pacman  *pacmanconf.Config
	Config  *settings.Config
	Scanner *query.Scanner
	Repo    *repository.Repository
	Model   *model.Model
}

func New(conf *settings.Config, pac *pacmanconf.Config, dbExecutor db.Executor) *Runtime {
	scanner := &query.Scanner{
		DB:     dbExecutor,
		SplitN: conf.RequestSplitN,
	}
	if conf.AUR {
		scanner.AUR = query.AUR{URL: conf.AURURL + "/rpc.php?"}
	}

	repo := repository.New()

	return &Runtime{
		DB:      dbExecutor,
		Pacman:  pac,
		Config:  conf,
		Scanner: scanner,
		Repo:    repo,
		Model:   model.New(repo),
	}
}
