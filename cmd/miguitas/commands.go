/*
 * commands.go, part of miguitas.
 *
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"text/tabwriter"
	"time"

	chem "github.com/AmaiDonatsu/miguitas"
	"github.com/AmaiDonatsu/miguitas/chemplot"
	"github.com/AmaiDonatsu/miguitas/internal/config"
	"github.com/AmaiDonatsu/miguitas/internal/logging"
	"github.com/AmaiDonatsu/miguitas/internal/metrics"
	"github.com/AmaiDonatsu/miguitas/internal/tools"
	"github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

//app carries what the PersistentPreRunE of the root command prepares.
type app struct {
	configPath string
	cfg        *config.Config
	log        *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "miguitas",
		Short:         "Build molecules atom by atom under octet and duet rules",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			l, err := logging.New(cfg)
			if err != nil {
				return fmt.Errorf("building logger: %w", err)
			}
			a.cfg, a.log = cfg, l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "YAML configuration file")
	root.AddCommand(a.serveCmd(), a.configureCmd(), a.plotCmd(), versionCmd())
	return root
}

func (a *app) serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the chemistry tools over MCP on stdin/stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.serve()
		},
	}
}

func (a *app) serve() error {
	opts := []chem.RegistryOption{chem.WithLogger(a.log.Named("registry"))}
	if a.cfg.Metrics.Enabled {
		col, err := metrics.NewCollector(prometheus.DefaultRegisterer)
		if err != nil {
			return err
		}
		opts = append(opts, chem.WithObserver(col))
		stop := a.serveMetrics(col.Handler())
		defer stop()
	}
	reg := chem.NewRegistry(opts...)
	box := tools.New(reg, tools.WithLogger(a.log.Named("tools")), tools.WithSnapshotDir(a.cfg.Snapshot.Dir))
	s := tools.NewServer(a.cfg.Server.Name, version, box)
	a.log.Info("serving MCP on stdio",
		zap.String("version", version),
		zap.Int("tools", len(box.Tools())),
		zap.String("snapshot_dir", a.cfg.Snapshot.Dir))
	return server.ServeStdio(s)
}

//serveMetrics starts the Prometheus endpoint and returns a function that
//shuts it down.
func (a *app) serveMetrics(h http.Handler) func() {
	mux := http.NewServeMux()
	mux.Handle(a.cfg.Metrics.Path, h)
	srv := &http.Server{Addr: a.cfg.Metrics.Addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		a.log.Info("metrics endpoint listening", zap.String("addr", srv.Addr), zap.String("path", a.cfg.Metrics.Path))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("metrics endpoint failed", zap.Error(err))
		}
	}()
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}

func (a *app) configureCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "configure Z [Z...]",
		Short: "Print the electron configuration, valence and bonding slots of elements",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			confs := make([]chem.Configuration, 0, len(args))
			for _, arg := range args {
				z, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("atomic number %q is not an integer", arg)
				}
				c, err := chem.Configure(z)
				if err != nil {
					return err
				}
				confs = append(confs, c)
			}
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(confs)
			}
			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "Z\tCONFIGURATION\tSHELL\tVALENCE\tSLOTS")
			for _, c := range confs {
				fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%d\n", c.Z, c, c.Shell, c.Valence, c.Slots)
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	return cmd
}

func (a *app) plotCmd() *cobra.Command {
	var from, to int
	var out, title string
	var byShell bool
	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Plot valence electrons and bonding slots against the atomic number",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			draw := chemplot.SlotTrend
			if byShell {
				draw = chemplot.ShellScatter
			}
			if err := draw(from, to, title, out); err != nil {
				return err
			}
			a.log.Info("plot written", zap.String("file", out), zap.Int("from", from), zap.Int("to", to))
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().IntVar(&from, "from", 1, "first atomic number")
	cmd.Flags().IntVar(&to, "to", 36, "last atomic number")
	cmd.Flags().StringVarP(&out, "out", "o", "slots.png", "output file; the extension picks the format")
	cmd.Flags().StringVar(&title, "title", "Bonding slots", "plot title")
	cmd.Flags().BoolVar(&byShell, "by-shell", false, "scatter the slots colored by valence shell")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "miguitas", version)
		},
	}
}
