// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/tabular/arrowx"
	"cogentcore.org/tabular/base/errors"
	"cogentcore.org/tabular/base/iox/tomlx"
	"cogentcore.org/tabular/base/iox/yamlx"
	"cogentcore.org/tabular/base/logx"
	"cogentcore.org/tabular/column"
	"cogentcore.org/tabular/dtype"
	"cogentcore.org/tabular/render"
	"cogentcore.org/tabular/stats"
	"cogentcore.org/tabular/table"
	"github.com/spf13/cobra"
)

// app holds the global flags.
type app struct {
	config   string
	dtypes   string
	logLevel string
}

// dtypesFile is the file format of column dtypes, as written by the
// dtypes command and read with the --dtypes flag.
type dtypesFile struct {
	Columns []columnDtype `toml:"columns" yaml:"columns"`
}

type columnDtype struct {
	Name  string      `toml:"name" yaml:"name"`
	Dtype dtype.Dtype `toml:"dtype" yaml:"dtype"`
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "tabular",
		Short:        "Print tables read from delimited text files",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := logx.ParseLevel(a.logLevel)
			if err != nil {
				return err
			}
			logx.UserLevel = lvl
			logx.InitLogger(cmd.ErrOrStderr())
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.config, "config", "", "render options file (.toml or .yaml)")
	root.PersistentFlags().StringVar(&a.dtypes, "dtypes", "", "column dtypes file (.toml or .yaml), as written by dtypes --format")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	root.AddCommand(
		a.showCmd(),
		a.columnCmd(),
		a.dtypesCmd(),
		a.maxCmd(),
		a.statCmd(),
		a.schemaCmd(),
	)
	return root
}

func (a *app) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show FILE",
		Short: "Print the table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dt, err := a.openTable(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), dt)
			return nil
		},
	}
}

func (a *app) columnCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "column FILE NAME",
		Short: "Print one column of the table",
		Args:  cobra.ExactArgs(2),
	}
	fs := cmd.Flags()
	fs.Bool(flagName(render.KeyIndex), true, "show the row labels")
	fs.Bool(flagName(render.KeyName), false, "show the column name in the footer")
	fs.Bool(flagName(render.KeyLength), false, "show the length in the footer")
	fs.Bool(flagName(render.KeyDtype), false, "show the dtype in the footer")
	fs.Int(flagName(render.KeyMaxRows), 0, "elide rows beyond this many (0 for no limit)")
	fs.Int(flagName(render.KeyMinRows), 0, "rows kept when eliding (default max-rows)")
	fs.String(flagName(render.KeyNaRep), render.DefaultNaRep, "text for missing floats")
	fs.String(flagName(render.KeyFloatFormat), "", "fmt verb for floats, such as %.2f")
	fs.String("as", "", "convert the column to this dtype: bool, int64, float64 or object")
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		dt, err := a.openTable(args[0])
		if err != nil {
			return err
		}
		c, err := dt.Column(args[1])
		if err != nil {
			return err
		}
		if as, _ := cmd.Flags().GetString("as"); as != "" {
			t, err := dtype.Parse(as)
			if err != nil {
				return err
			}
			if c, err = c.AsType(t); err != nil {
				return err
			}
		}
		opts, err := a.renderOptions(cmd)
		if err != nil {
			return err
		}
		if opts == nil {
			fmt.Fprintln(cmd.OutOrStdout(), c)
			return nil
		}
		s, err := c.RenderMap(opts)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), s)
		return nil
	}
	return cmd
}

// renderOptions returns the render options from the config file, if any,
// overridden by the flags that were set on the command line. It returns
// nil if there are no options at all, to use the default column text.
func (a *app) renderOptions(cmd *cobra.Command) (map[string]any, error) {
	var opts map[string]any
	if a.config != "" {
		m, err := readConfig(a.config)
		if err != nil {
			return nil, err
		}
		opts = m
	}
	fs := cmd.Flags()
	for _, k := range render.Keys {
		fn := flagName(k)
		if !fs.Changed(fn) {
			continue
		}
		if opts == nil {
			opts = map[string]any{}
		}
		var err error
		switch k {
		case render.KeyMaxRows, render.KeyMinRows:
			opts[k], err = fs.GetInt(fn)
		case render.KeyNaRep, render.KeyFloatFormat:
			opts[k], err = fs.GetString(fn)
		default:
			opts[k], err = fs.GetBool(fn)
		}
		if err != nil {
			return nil, err
		}
	}
	return opts, nil
}

// flagName returns the command line flag name for a render option key.
func flagName(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}

// readConfig reads a map of render options from a .toml or .yaml file.
func readConfig(filename string) (map[string]any, error) {
	format, err := fileFormat(filename)
	if err != nil {
		return nil, err
	}
	m := map[string]any{}
	if format == "toml" {
		err = tomlx.Open(&m, filename)
	} else {
		err = yamlx.Open(&m, filename)
	}
	if err != nil {
		return nil, err
	}
	slog.Debug("read render options", "file", filename, "options", len(m))
	return m, nil
}

// fileFormat returns "toml" or "yaml" for the extension of the given
// file name, which must be one of .toml, .yaml or .yml.
func fileFormat(filename string) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return "toml", nil
	case ".yaml", ".yml":
		return "yaml", nil
	}
	return "", fmt.Errorf("file %q: must be .toml or .yaml: %w", filename, dtype.ErrUnsupported)
}

// readDtypes reads a column dtypes file, in which every key must be known.
func readDtypes(filename string) (*dtypesFile, error) {
	format, err := fileFormat(filename)
	if err != nil {
		return nil, err
	}
	read := yamlx.ReadStrict
	if format == "toml" {
		read = tomlx.ReadStrict
	}
	fp, err := os.Open(filename)
	if err != nil {
		return nil, errors.Log(err)
	}
	defer fp.Close()
	df := &dtypesFile{}
	if err := read(df, bufio.NewReader(fp)); err != nil {
		return nil, fmt.Errorf("dtypes file %q: %w", filename, err)
	}
	return df, nil
}

func (a *app) dtypesCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "dtypes FILE",
		Short: "Print the dtype of each column",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dt, err := a.openTable(args[0])
			if err != nil {
				return err
			}
			switch format {
			case "text":
			case "toml", "yaml":
				return writeDtypes(dt, format, cmd.OutOrStdout())
			default:
				return fmt.Errorf("dtypes --format %q: must be text, toml or yaml: %w", format, dtype.ErrUnsupported)
			}
			dts := dt.Dtypes()
			names := make([]string, len(dts))
			for i, t := range dts {
				names[i] = t.String()
			}
			c, err := column.NewOf(names, column.Labels(dt.Names()...))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), c)
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "output format: text, toml or yaml")
	return cmd
}

// writeDtypes writes the column dtypes of the table as a dtypes file
// in the given format.
func writeDtypes(dt *table.Table, format string, w io.Writer) error {
	df := &dtypesFile{}
	for i, t := range dt.Dtypes() {
		df.Columns = append(df.Columns, columnDtype{Name: dt.ColumnName(i), Dtype: t})
	}
	if format == "toml" {
		return tomlx.Write(df, w)
	}
	return yamlx.Write(df, w)
}

func (a *app) maxCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "max FILE",
		Short: "Print the maximum of each column",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dt, err := a.openTable(args[0])
			if err != nil {
				return err
			}
			c, err := dt.Max()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), c)
			return nil
		},
	}
}

func (a *app) statCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stat FILE NAME STAT",
		Short: "Print a stat (count, sum, min, max, mean, std) of one column",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := stats.ParseStats(args[2])
			if err != nil {
				return err
			}
			dt, err := a.openTable(args[0])
			if err != nil {
				return err
			}
			c, err := dt.Column(args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), c.Stat(st))
			return nil
		},
	}
}

func (a *app) schemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema FILE",
		Short: "Print the Apache Arrow schema of the table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dt, err := a.openTable(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), arrowx.Schema(dt))
			return nil
		},
	}
}

// openTable reads the table in the given file, converting its
// columns to the dtypes in the --dtypes file, if any.
func (a *app) openTable(filename string) (*table.Table, error) {
	dt, err := table.OpenCSV(filename)
	if err != nil {
		return nil, err
	}
	if a.dtypes != "" {
		if dt, err = a.applyDtypes(dt); err != nil {
			return nil, err
		}
	}
	cols, rows := dt.Shape()
	slog.Debug("read table", "file", dt.Meta.GetFilename(), "columns", cols, "rows", rows)
	return dt, nil
}

// applyDtypes returns the table with each column named in the
// --dtypes file converted to its dtype there.
func (a *app) applyDtypes(dt *table.Table) (*table.Table, error) {
	df, err := readDtypes(a.dtypes)
	if err != nil {
		return nil, err
	}
	types := map[string]dtype.Dtype{}
	for _, cd := range df.Columns {
		if _, err := dt.Column(cd.Name); err != nil {
			return nil, fmt.Errorf("dtypes file %q: %w", a.dtypes, err)
		}
		types[cd.Name] = cd.Dtype
	}
	cols := make([]*column.Column, dt.NumColumns())
	for i := range cols {
		c := dt.ColumnIndex(i)
		if t, ok := types[dt.ColumnName(i)]; ok {
			if c, err = c.AsType(t); err != nil {
				return nil, fmt.Errorf("column %q: %w", dt.ColumnName(i), err)
			}
		}
		cols[i] = c
	}
	nt, err := table.FromColumns(cols...)
	if err != nil {
		return nil, err
	}
	nt.Meta.Copy(dt.Meta)
	return nt, nil
}
