// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package column provides [Column], a named, typed and immutable
// sequence of values with row labels, which is the storage unit of
// a table. The dtype of a column is resolved once, at construction,
// from the values it is given.
package column

import (
	"fmt"
	"strconv"

	"cogentcore.org/tabular/base/metadata"
	"cogentcore.org/tabular/dtype"
	"cogentcore.org/tabular/render"
	"cogentcore.org/tabular/stats"
)

// Column is a named, typed sequence of values with one row label per
// value. All of the values have the kind of the column [Column.Dtype].
// A Column is never modified after construction, so it can be shared
// freely; the transforming methods return a new Column.
type Column struct {
	dt     dtype.Dtype
	values []dtype.Value
	labels []string

	// meta holds the name, if any, under the standard "Name" key.
	meta metadata.Data
}

// Option configures the construction of a [Column].
type Option func(c *config) error

type config struct {
	name   *string
	labels []string
	dt     *dtype.Dtype
}

// Name sets the name of the column. The empty name is still a name:
// it is shown in a footer as "Name: ".
func Name(name string) Option {
	return func(c *config) error {
		c.name = &name
		return nil
	}
}

// Labels sets the row labels of the column, which must have the
// same length as the values. The default labels are 0..n-1.
func Labels(labels ...string) Option {
	return func(c *config) error {
		c.labels = labels
		return nil
	}
}

// Dtype sets the dtype of the column explicitly, instead of inferring it
// with [dtype.LeastCommonSupertype]. Values that cannot be converted to
// it are an error.
func Dtype(dt dtype.Dtype) Option {
	return func(c *config) error {
		if dt < 0 || dt >= dtype.DtypeN {
			return fmt.Errorf("column.Dtype: %v: %w", dt, dtype.ErrUnsupported)
		}
		c.dt = &dt
		return nil
	}
}

// New returns a new Column holding the given native values (bool, integer
// and float kinds, string, nil, or [dtype.Value]). The dtype is inferred
// with [dtype.LeastCommonSupertype] unless set by the [Dtype] option,
// and each value is converted to it with [dtype.Convert].
func New(values []any, opts ...Option) (*Column, error) {
	cfg, err := configure(opts)
	if err != nil {
		return nil, err
	}
	dt := dtype.LeastCommonSupertype(values)
	if cfg.dt != nil {
		dt = *cfg.dt
	}
	vals, err := dtype.ConvertAll(values, dt)
	if err != nil {
		return nil, fmt.Errorf("column.New: %w", err)
	}
	return cfg.build(dt, vals)
}

// NewNumbers returns a new Column of integer or float values, which is
// Int64 for an integer type and Float64 for a float type (see
// [stats.NumberValues]), unless the [Dtype] option sets another dtype.
func NewNumbers[T stats.Number](values []T, opts ...Option) (*Column, error) {
	cfg, err := configure(opts)
	if err != nil {
		return nil, err
	}
	dt, vals := stats.NumberValues(values)
	if cfg.dt != nil && *cfg.dt != dt {
		av := make([]any, len(vals))
		for i, v := range vals {
			av[i] = v
		}
		dt = *cfg.dt
		if vals, err = dtype.ConvertAll(av, dt); err != nil {
			return nil, fmt.Errorf("column.NewNumbers: %w", err)
		}
	}
	return cfg.build(dt, vals)
}

func configure(opts []Option) (*config, error) {
	cfg := &config{}
	for _, o := range opts {
		if err := o(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// build returns the column of the given values, with the
// configured labels and name.
func (cfg *config) build(dt dtype.Dtype, vals []dtype.Value) (*Column, error) {
	c, err := newColumn(dt, vals, cfg.labels)
	if err != nil {
		return nil, err
	}
	if cfg.name != nil {
		c.meta.SetName(*cfg.name)
	}
	return c, nil
}

// NewOf returns a new Column of the given Go slice of values,
// with the inferred dtype, as in [New].
func NewOf[T any](values []T, opts ...Option) (*Column, error) {
	av := make([]any, len(values))
	for i, v := range values {
		av[i] = v
	}
	return New(av, opts...)
}

// FromValues returns a new Column of values that already have the given
// dtype, with the default labels. The values slice is owned by the column
// after this call. An empty name gives an unnamed column.
func FromValues(name string, dt dtype.Dtype, values []dtype.Value) (*Column, error) {
	for i, v := range values {
		if v.Kind() != dt {
			return nil, fmt.Errorf("column.FromValues: value %d is %v, not %v: %w", i, v.Kind(), dt, dtype.ErrParse)
		}
	}
	c, err := newColumn(dt, values, nil)
	if err != nil {
		return nil, err
	}
	if name != "" {
		c.meta.SetName(name)
	}
	return c, nil
}

func newColumn(dt dtype.Dtype, values []dtype.Value, labels []string) (*Column, error) {
	if labels == nil {
		labels = DefaultLabels(len(values))
	} else if len(labels) != len(values) {
		return nil, fmt.Errorf("column: %d labels for %d values: %w", len(labels), len(values), dtype.ErrUnsupported)
	} else {
		labels = append([]string(nil), labels...)
	}
	return &Column{dt: dt, values: values, labels: labels}, nil
}

// DefaultLabels returns the labels 0..n-1.
func DefaultLabels(n int) []string {
	labels := make([]string, n)
	for i := range n {
		labels[i] = strconv.Itoa(i)
	}
	return labels
}

// derive returns a new Column with the same name and labels.
func (c *Column) derive(dt dtype.Dtype, values []dtype.Value) *Column {
	nc := &Column{dt: dt, values: values, labels: c.labels}
	nc.meta.Copy(c.meta)
	return nc
}

// Dtype returns the dtype of the column.
func (c *Column) Dtype() dtype.Dtype { return c.dt }

// Len returns the number of values.
func (c *Column) Len() int { return len(c.values) }

// Values returns the values of the column, which must not be modified.
func (c *Column) Values() []dtype.Value { return c.values }

// Labels returns the row labels of the column, which must not be modified.
func (c *Column) Labels() []string { return c.labels }

// At returns the value at the given row.
func (c *Column) At(row int) dtype.Value { return c.values[row] }

// Label returns the label of the given row.
func (c *Column) Label(row int) string { return c.labels[row] }

// Name returns the name of the column, and false if it has none.
func (c *Column) Name() (string, bool) {
	if !c.meta.HasName() {
		return "", false
	}
	return c.meta.GetName(), true
}

// WithName returns a copy of the column with the given name.
func (c *Column) WithName(name string) *Column {
	nc := c.derive(c.dt, c.values)
	nc.meta.SetName(name)
	return nc
}

// Render returns the text of the column, see [render.RenderColumn].
func (c *Column) Render(opts render.Options) string {
	return render.RenderColumn(c, opts)
}

// RenderMap returns the text of the column with options given as a
// key / value map (see [render.FromMap]); unknown keys are an error
// wrapping [dtype.ErrUnsupported].
func (c *Column) RenderMap(opts map[string]any) (string, error) {
	ro, err := render.FromMap(opts)
	if err != nil {
		return "", err
	}
	return c.Render(ro), nil
}

// String returns the default text of the column, see [render.Repr].
func (c *Column) String() string {
	return render.Repr(c)
}
