package main

import (
	"strconv"
	"strings"

	"github.com/D1CED/octo/pkg/model"
	"github.com/D1CED/octo/pkg/query"
	"github.com/D1CED/octo/pkg/repository"
	"github.com/D1CED/octo/pkg/settings/runtime"
	"github.com/D1CED/octo/pkg/text"
)

// glyph renders an icon as a short colored marker.
func glyph(icon model.Icon) string {
	switch icon {
	case model.IconInstalled:
		return text.Green("[i]")
	case model.IconInstalledByUser:
		return text.Bold(text.Green("[I]"))
	case model.IconInstalledUnrequired:
		return text.Green("[u]")
	case model.IconInstalledUnrequiredByUser:
		return text.Bold(text.Green("[U]"))
	case model.IconNewer:
		return text.Blue("[n]")
	case model.IconNewerByUser:
		return text.Bold(text.Blue("[N]"))
	case model.IconOutdated:
		return text.Red("[o]")
	case model.IconOutdatedByUser:
		return text.Bold(text.Red("[O]"))
	case model.IconForeign:
		return text.Magenta("[f]")
	case model.IconForeignOutdated:
		return text.Bold(text.Magenta("[F]"))
	}
	return "[ ]"
}

// printTable prints the flat model one package per line.
func printTable(m *model.Model) {
	root := model.Index{}
	for row := 0; row < m.RowCount(root); row++ {
		icon, _ := m.Icon(m.Index(row, model.ColumnIcon, root))
		name, _ := m.Text(m.Index(row, model.ColumnName, root))
		version, _ := m.Text(m.Index(row, model.ColumnVersion, root))
		repo, _ := m.Text(m.Index(row, model.ColumnRepository, root))

		line := glyph(icon) + " " + text.ColorHash(repo) + "/" + text.Bold(name) + " " + text.Cyan(version)
		if votes, ok := m.Text(m.Index(row, model.ColumnPopularity, root)); ok {
			line += " (+" + votes + ")"
		}
		text.Println(line)
	}
}

// printTree prints the rows below parent down to depth levels, expanding
// rows on the way.
func printTree(m *model.Model, parent model.Index, level, depth int) {
	for row := 0; row < m.RowCount(parent); row++ {
		idx := m.Index(row, model.ColumnIcon, parent)
		icon, _ := m.Icon(idx)
		name, _ := m.Text(idx)
		version, _ := m.Text(m.Index(row, model.ColumnVersion, parent))

		text.Println(strings.Repeat("  ", level) + glyph(icon) + " " + text.Bold(name) + " " + text.Cyan(version))

		if level+1 < depth {
			if m.CanFetchMore(idx) {
				m.FetchMore(idx)
			}
			printTree(m, idx, level+1, depth)
		}
	}
}

func recordNames(pkgs []*repository.Record, ok bool) []string {
	if !ok {
		return []string{text.T("Unknown")}
	}
	names := make([]string, 0, len(pkgs))
	for _, pkg := range pkgs {
		names = append(names, pkg.Name())
	}
	return names
}

func yesNo(b bool) string {
	if b {
		return text.T("Yes")
	}
	return text.T("No")
}

// printInfo prints the details of a record like pacman -Si.
func printInfo(pkg *repository.Record) {
	text.PrintInfoValue(text.T("Repository"), pkg.Repository())
	text.PrintInfoValue(text.T("Name"), pkg.Name())
	text.PrintInfoValue(text.T("Version"), pkg.Version())
	if pkg.OutdatedVersion() != "" {
		text.PrintInfoValue(text.T("Installed Version"), pkg.OutdatedVersion())
	}
	text.PrintInfoValue(text.T("Description"), pkg.Description())
	text.PrintInfoValue(text.T("Status"), pkg.Status().String())
	text.PrintInfoValue(text.T("Package URL"), pkg.PURL())
	text.PrintInfoValue(text.T("Download Size"), text.Human(pkg.DownloadSize()))
	if pkg.Popularity() >= 0 {
		text.PrintInfoValue(text.T("Votes"), strconv.Itoa(pkg.Popularity()))
	}
	text.PrintInfoValue(text.T("Explicit"), yesNo(pkg.ExplicitlyInstalled()))
	text.PrintInfoValue(text.T("Depends On"), recordNames(pkg.DependsOn())...)
	text.PrintInfoValue(text.T("Required By"), recordNames(pkg.RequiredBy())...)
	text.Println()
}

// localStatistics prints installed packages statistics.
func localStatistics(rt *runtime.Runtime) {
	local := rt.DB.LocalPackages()
	info := query.Statistics(local)

	foreign := 0
	for _, pkg := range rt.Repo.Records() {
		if pkg.Status() == repository.StatusForeign || pkg.Status() == repository.StatusForeignOutdated {
			foreign++
		}
	}

	text.Infoln(text.Tf("octo version v%s", version))
	text.Println(text.Bold(text.Cyan("===========================================")))
	text.Infoln(text.Tf("Total installed packages: %s", text.Cyan(strconv.Itoa(info.Totaln))))
	text.Infoln(text.Tf("Total foreign installed packages: %s", text.Cyan(strconv.Itoa(foreign))))
	text.Infoln(text.Tf("Explicitly installed packages: %s", text.Cyan(strconv.Itoa(info.Expln))))
	text.Infoln(text.Tf("Total Size occupied by packages: %s", text.Cyan(text.Human(float64(info.TotalSize)))))
	text.Infoln(text.Tf("Package groups: %s", text.Cyan(strconv.Itoa(len(rt.Repo.Groups())))))
	text.Println(text.Bold(text.Cyan("===========================================")))
}
