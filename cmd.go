package main

import (
	"context"

	alpm "github.com/Jguer/go-alpm/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/D1CED/octo/pkg/completion"
	"github.com/D1CED/octo/pkg/model"
	"github.com/D1CED/octo/pkg/refresh"
	"github.com/D1CED/octo/pkg/repository"
	"github.com/D1CED/octo/pkg/settings"
	"github.com/D1CED/octo/pkg/settings/runtime"
	"github.com/D1CED/octo/pkg/text"
)

type globalFlags struct {
	config     string
	pacmanConf string
	root       string
	dbPath     string
	color      string
	aur        bool
}

type loader func(ctx context.Context, flags *globalFlags) (*runtime.Runtime, func(), error)

// viewFlags select what a list or tree shows.
type viewFlags struct {
	installed         bool
	group             string
	search            string
	searchDescription bool
	sortBy            string
	desc              bool
	depth             int
}

var sortColumns = map[string]int{
	"icon":       model.ColumnIcon,
	"name":       model.ColumnName,
	"version":    model.ColumnVersion,
	"repository": model.ColumnRepository,
	"popularity": model.ColumnPopularity,
}

func newRootCmd(load loader) *cobra.Command {
	flags := &globalFlags{}
	var (
		rt      *runtime.Runtime
		cleanup func()
	)

	ensure := func(cmd *cobra.Command) (*runtime.Runtime, error) {
		if rt != nil {
			return rt, nil
		}
		var err error
		rt, cleanup, err = load(cmd.Context(), flags)
		return rt, err
	}

	cmd := &cobra.Command{
		Use:           "octo",
		Short:         "Browse pacman packages and their dependencies",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			_, err := ensure(cmd)
			return err
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if cleanup != nil {
				cleanup()
			}
		},
	}
	cmd.SetVersionTemplate("octo v{{.Version}} - libalpm v" + alpm.Version() + "\n")

	cmd.PersistentFlags().StringVar(&flags.config, "config", "", text.T("config file path (default: $XDG_CONFIG_HOME/octo/config.json)"))
	cmd.PersistentFlags().StringVar(&flags.pacmanConf, "pacman-conf", "", text.T("pacman configuration file"))
	cmd.PersistentFlags().StringVar(&flags.root, "root", "", text.T("installation root"))
	cmd.PersistentFlags().StringVar(&flags.dbPath, "dbpath", "", text.T("pacman database path"))
	cmd.PersistentFlags().StringVar(&flags.color, "color", "", text.T("colorize output: auto, always or never"))
	cmd.PersistentFlags().BoolVar(&flags.aur, "aur", false, text.T("load foreign packages from the AUR"))

	current := func() *runtime.Runtime { return rt }

	cmd.AddCommand(
		newListCmd(current, ensure),
		newTreeCmd(current, ensure),
		newInfoCmd(current, ensure),
		newGroupsCmd(current, ensure),
		newStatsCmd(current),
	)

	return cmd
}

type ensureFunc func(cmd *cobra.Command) (*runtime.Runtime, error)

// completeWith adapts a completion source to cobra. Completion runs
// without the persistent hooks, so the runtime is loaded here.
func completeWith(ensure ensureFunc, source func(*repository.Repository, string) []string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		rt, err := ensure(cmd)
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		return source(rt.Repo, toComplete), cobra.ShellCompDirectiveNoFileComp
	}
}

func addViewFlags(cmd *cobra.Command, v *viewFlags, ensure ensureFunc) {
	cmd.Flags().BoolVar(&v.installed, "installed", false, text.T("show installed packages only"))
	cmd.Flags().StringVar(&v.group, "group", "", text.T("show members of a package group"))
	cmd.Flags().StringVar(&v.search, "search", "", text.T("filter by a case insensitive regular expression"))
	cmd.Flags().BoolVar(&v.searchDescription, "search-description", false, text.T("match --search against descriptions"))
	cmd.Flags().StringVar(&v.sortBy, "sort", "", text.T("sort by icon, name, version, repository or popularity"))
	cmd.Flags().BoolVar(&v.desc, "desc", false, text.T("sort in descending order"))

	_ = cmd.RegisterFlagCompletionFunc("group", completeWith(ensure, completion.Groups))
	_ = cmd.RegisterFlagCompletionFunc("sort", cobra.FixedCompletions(
		[]string{"icon", "name", "version", "repository", "popularity"}, cobra.ShellCompDirectiveNoFileComp))
}

// applyView configures the model of rt. Group members are reconciled
// before the group filter is applied.
func applyView(cmd *cobra.Command, rt *runtime.Runtime, v *viewFlags) error {
	sortBy := v.sortBy
	if sortBy == "" {
		sortBy = rt.Config.SortBy
	}
	column, ok := sortColumns[sortBy]
	if !ok {
		return errors.New(text.Tf("invalid sort column %q", sortBy))
	}

	desc := rt.Config.SortMode == settings.Descending
	if cmd.Flags().Changed("desc") {
		desc = v.desc
	}
	order := model.Ascending
	if desc {
		order = model.Descending
	}

	if v.group != "" && v.group != repository.ExternalGroup && rt.Repo.Group(v.group) == nil {
		return errors.New(text.Tf("no such group %q", v.group))
	}
	refresh.Group(rt.Repo, rt.Scanner, v.group)
	rt.Model.ApplyFilter(v.installed, v.group)

	filterColumn := model.ColumnName
	if v.searchDescription {
		filterColumn = model.FilterDescription
	}
	if err := rt.Model.ApplyTextFilter(filterColumn, v.search); err != nil {
		return err
	}

	rt.Model.Sort(column, order)
	return nil
}

func newListCmd(rt func() *runtime.Runtime, ensure ensureFunc) *cobra.Command {
	v := &viewFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: text.T("List packages"),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := rt()
			r.Model.SwitchDisplayMode(model.Flat)
			if err := applyView(cmd, r, v); err != nil {
				return err
			}
			printTable(r.Model)
			return nil
		},
	}
	addViewFlags(cmd, v, ensure)

	return cmd
}

func newTreeCmd(rt func() *runtime.Runtime, ensure ensureFunc) *cobra.Command {
	v := &viewFlags{}

	cmd := &cobra.Command{
		Use:       "tree <depends|required>",
		Short:     text.T("Show dependency trees"),
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"depends", "required"},
		RunE: func(cmd *cobra.Command, args []string) error {
			r := rt()
			mode := model.DependsOnTree
			if args[0] == "required" {
				mode = model.RequiredByTree
			}
			r.Model.SwitchDisplayMode(mode)
			if err := applyView(cmd, r, v); err != nil {
				return err
			}
			text.Println(text.Bold(r.Model.HeaderData(model.ColumnIcon)))
			printTree(r.Model, model.Index{}, 0, v.depth)
			return nil
		},
	}
	addViewFlags(cmd, v, ensure)
	cmd.Flags().IntVar(&v.depth, "depth", 2, text.T("number of tree levels to show"))

	return cmd
}

func newInfoCmd(rt func() *runtime.Runtime, ensure ensureFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "info <name>...",
		Short: text.T("Show package details"),
		Args:  cobra.MinimumNArgs(1),

		ValidArgsFunction: completeWith(ensure, completion.Packages),
		RunE: func(_ *cobra.Command, args []string) error {
			r := rt()
			for _, name := range args {
				pkg := r.Repo.Lookup(name)
				if pkg == nil {
					return errors.New(text.Tf("package %q not found", name))
				}
				printInfo(pkg)
			}
			return nil
		},
	}
}

func newGroupsCmd(rt func() *runtime.Runtime, ensure ensureFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "groups [group]",
		Short: text.T("List package groups or the members of one group"),
		Args:  cobra.MaximumNArgs(1),

		ValidArgsFunction: completeWith(ensure, completion.Groups),
		RunE: func(_ *cobra.Command, args []string) error {
			r := rt()
			if len(args) == 0 {
				for _, name := range r.Repo.Groups() {
					text.Println(name)
				}
				return nil
			}

			if r.Repo.Group(args[0]) == nil {
				return errors.New(text.Tf("no such group %q", args[0]))
			}
			refresh.Group(r.Repo, r.Scanner, args[0])
			members, _ := r.Repo.Group(args[0]).Members()
			for _, pkg := range members {
				text.Println(pkg.Name())
			}
			return nil
		},
	}
}

func newStatsCmd(rt func() *runtime.Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: text.T("Show statistics about installed packages"),
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			localStatistics(rt())
			return nil
		},
	}
}
