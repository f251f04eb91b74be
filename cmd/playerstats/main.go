package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/g-m-twostay/go-playerbst/Trees"
	"github.com/g-m-twostay/go-playerbst/internal/config"
	"github.com/g-m-twostay/go-playerbst/internal/logger"
	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		logger.L.WithField("prefix", "playerstats").Error(err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	fs := config.Flags()
	if err := fs.Parse(args); err != nil {
		return err
	}
	v, err := config.New(fs)
	if err != nil {
		return err
	}
	cfg, err := config.Load(v, v.GetString("config"))
	if err != nil {
		return err
	}
	logger.SetDebug(cfg.Debug)
	log := logger.L.WithField("prefix", "playerstats")

	tree := Trees.NewPlayerBST()
	for _, p := range cfg.Players {
		if !tree.Insert(p) {
			log.Warnf("skipping duplicate player %s", p)
		}
	}
	for _, name := range cfg.Remove {
		if !tree.Remove(name) {
			log.Warnf("cannot remove %q: no such player", name)
		}
	}
	log.Debugf("loaded %d players", tree.Size())

	tt, err := Trees.ParseTraversal(cfg.Traversal)
	if err != nil {
		return err
	}
	return render(out, tree, tt, cfg.MinWins)
}

func render(out io.Writer, tree *Trees.PlayerBST, tt Trees.TraversalType, minWins int) error {
	players := pterm.TableData{{"#", "Name", "Wins"}}
	for i, p := range tree.ToSlice(tt) {
		players = append(players, []string{strconv.Itoa(i + 1), p.Name, strconv.Itoa(p.Wins)})
	}
	pterm.DefaultSection.WithWriter(out).Println("Players, " + tt.String())
	if err := pterm.DefaultTable.WithHasHeader().WithWriter(out).WithData(players).Render(); err != nil {
		return errors.Wrap(err, "render players")
	}

	stats := pterm.TableData{
		{"Statistic", "Value"},
		{"Size", strconv.Itoa(tree.Size())},
		{"Average wins", fmt.Sprintf("%.2f", tree.AverageWins())},
		{"Wins >= " + strconv.Itoa(minWins), strconv.Itoa(tree.CountAboveWins(minWins))},
		{"Height", strconv.Itoa(tree.Height())},
	}
	pterm.DefaultSection.WithWriter(out).Println("Statistics")
	return errors.Wrap(pterm.DefaultTable.WithHasHeader().WithWriter(out).WithData(stats).Render(), "render statistics")
}
