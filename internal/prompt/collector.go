package prompt

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Collector asks for one field at a time and falls back to the field
// default when the answer is empty or does not parse.
type Collector struct {
	driver Driver
	logger *zap.Logger
}

// Option configures a Collector.
type Option func(*Collector)

// WithLogger attaches a logger for per-field debug output.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Collector) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewCollector creates a Collector on top of the given driver.
func NewCollector(driver Driver, opts ...Option) *Collector {
	c := &Collector{
		driver: driver,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Float collects a real-valued field.
func (c *Collector) Float(ctx context.Context, label string, def float64) (float64, error) {
	return collect(ctx, c, label, def, parseFloat, FormatFloat)
}

// Int collects an integer field.
func (c *Collector) Int(ctx context.Context, label string, def int) (int, error) {
	return collect(ctx, c, label, def, strconv.Atoi, strconv.Itoa)
}

// collect is the single collect-with-fallback operation behind Float and Int.
// Parse failures never leave this function.
func collect[T int | float64](ctx context.Context, c *Collector, label string, def T, parse func(string) (T, error), format func(T) string) (T, error) {
	shown := format(def)
	answer, err := c.driver.Input(ctx, InputConfig{Message: label, Default: shown})
	if err != nil {
		return def, fmt.Errorf("prompt %q: %w", label, err)
	}

	if answer == "" {
		c.logger.Debug("field collected", zap.String("field", label), zap.String("source", "default"), zap.Any("value", def))
		return def, nil
	}

	v, perr := parse(strings.TrimSpace(answer))
	if perr != nil {
		c.logger.Debug("invalid input", zap.String("field", label), zap.String("input", answer), zap.Error(perr))
		if err := c.driver.Info(ctx, fmt.Sprintf("Invalid input. Using default value: %s", shown)); err != nil {
			return def, fmt.Errorf("prompt %q: %w", label, err)
		}
		c.logger.Debug("field collected", zap.String("field", label), zap.String("source", "fallback"), zap.Any("value", def))
		return def, nil
	}

	c.logger.Debug("field collected", zap.String("field", label), zap.String("source", "input"), zap.Any("value", v))
	return v, nil
}

// parseFloat rejects NaN and infinities; they cannot be written as C
// literals or JSON numbers.
func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("parse %q: not a finite number", s)
	}
	return v, nil
}

// FormatFloat renders a real for display, always with a decimal point
// (3 shows as "3.0"). The result parses back to the same value.
func FormatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
