// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/TylerBrock/colorjson"
	"github.com/matt-FFFFFF/jobsh/internal/color"
)

var (
	// ErrMarshalAttribute is returned when an error occurs while marshaling an attribute.
	ErrMarshalAttribute = errors.New("error when marshaling attribute")
	// ErrIoWrite is returned when an error occurs while writing to the output.
	ErrIoWrite = errors.New("error when writing to output")
)

// TimeFormat is the format used for timestamps in log messages.
const TimeFormat = "[15:04:05.000]"

// PrettyHandler is a slog handler that writes human-readable console lines:
// a timestamp, a colorized level, the message, then any attributes as an
// indented JSON document. Attributes are produced by an inner JSON handler so
// ReplaceAttr and groups behave exactly as they do for slog.NewJSONHandler.
type PrettyHandler struct {
	inner       slog.Handler
	replaceAttr func([]string, slog.Attr) slog.Attr
	buf         *bytes.Buffer
	mu          *sync.Mutex
	writer      io.Writer
	colour      bool
}

// NewPrettyHandler creates a PrettyHandler. Output is discarded unless
// WithDestinationWriter is given.
func NewPrettyHandler(handlerOptions *slog.HandlerOptions, options ...Option) *PrettyHandler {
	if handlerOptions == nil {
		handlerOptions = &slog.HandlerOptions{}
	}

	buf := &bytes.Buffer{}
	h := &PrettyHandler{
		buf: buf,
		inner: slog.NewJSONHandler(buf, &slog.HandlerOptions{
			Level:       handlerOptions.Level,
			AddSource:   handlerOptions.AddSource,
			ReplaceAttr: suppressDefaults(handlerOptions.ReplaceAttr),
		}),
		replaceAttr: handlerOptions.ReplaceAttr,
		mu:          &sync.Mutex{},
		writer:      io.Discard,
	}

	for _, opt := range options {
		opt(h)
	}

	return h
}

// Enabled implements the slog.Handler interface for PrettyHandler.
func (h *PrettyHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

// WithAttrs implements the slog.Handler interface for PrettyHandler.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h.clone(h.inner.WithAttrs(attrs))
}

// WithGroup implements the slog.Handler interface for PrettyHandler.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	return h.clone(h.inner.WithGroup(name))
}

func (h *PrettyHandler) clone(inner slog.Handler) *PrettyHandler {
	return &PrettyHandler{
		inner:       inner,
		replaceAttr: h.replaceAttr,
		buf:         h.buf,
		mu:          h.mu,
		writer:      h.writer,
		colour:      h.colour,
	}
}

// Handle implements the slog.Handler interface for PrettyHandler.
func (h *PrettyHandler) Handle(ctx context.Context, r slog.Record) error {
	attrs, err := h.computeAttrs(ctx, r)
	if err != nil {
		return err
	}

	out := strings.Builder{}

	if ts := h.formatTime(r); ts != "" {
		out.WriteString(ts)
		out.WriteString(" ")
	}

	if level := h.formatLevel(r); level != "" {
		out.WriteString(level)
		out.WriteString(" ")
	}

	if msg := h.formatMessage(r); msg != "" {
		out.WriteString(msg)
		out.WriteString(" ")
	}

	if len(attrs) > 0 {
		doc, err := h.marshalAttrs(attrs)
		if err != nil {
			return errors.Join(ErrMarshalAttribute, err)
		}

		out.WriteString(h.colorize(string(doc), color.FgHiWhite))
	}

	out.WriteString("\n")

	if _, err := io.WriteString(h.writer, out.String()); err != nil {
		return errors.Join(ErrIoWrite, err)
	}

	return nil
}

// computeAttrs runs the record through the inner JSON handler and decodes the
// resulting object, so attributes honor ReplaceAttr and WithGroup.
func (h *PrettyHandler) computeAttrs(ctx context.Context, r slog.Record) (map[string]any, error) {
	h.mu.Lock()
	defer func() {
		h.buf.Reset()
		h.mu.Unlock()
	}()

	if err := h.inner.Handle(ctx, r); err != nil {
		return nil, fmt.Errorf("error when calling inner handler's Handle: %w", err)
	}

	var attrs map[string]any
	if err := json.Unmarshal(h.buf.Bytes(), &attrs); err != nil {
		return nil, fmt.Errorf("error when unmarshaling inner handler's Handle result: %w", err)
	}

	return attrs, nil
}

func (h *PrettyHandler) formatTime(r slog.Record) string {
	attr := slog.Attr{
		Key:   slog.TimeKey,
		Value: slog.StringValue(r.Time.Format(TimeFormat)),
	}
	if h.replaceAttr != nil {
		attr = h.replaceAttr([]string{}, attr)
	}

	if attr.Equal(slog.Attr{}) {
		return ""
	}

	return h.colorize(attr.Value.String(), color.FgWhite)
}

func (h *PrettyHandler) formatLevel(r slog.Record) string {
	attr := slog.Attr{
		Key:   slog.LevelKey,
		Value: slog.AnyValue(r.Level),
	}
	if h.replaceAttr != nil {
		attr = h.replaceAttr([]string{}, attr)
	}

	if attr.Equal(slog.Attr{}) {
		return ""
	}

	level := attr.Value.String() + ":"

	switch {
	case r.Level <= slog.LevelDebug:
		return h.colorize(level, color.FgWhite)
	case r.Level <= slog.LevelInfo:
		return h.colorize(level, color.FgCyan)
	case r.Level < slog.LevelError:
		return h.colorize(level, color.FgYellow)
	default:
		return h.colorize(level, color.FgRed)
	}
}

func (h *PrettyHandler) formatMessage(r slog.Record) string {
	attr := slog.Attr{
		Key:   slog.MessageKey,
		Value: slog.StringValue(r.Message),
	}
	if h.replaceAttr != nil {
		attr = h.replaceAttr([]string{}, attr)
	}

	if attr.Equal(slog.Attr{}) {
		return ""
	}

	return h.colorize(attr.Value.String(), color.FgHiWhite)
}

func (h *PrettyHandler) marshalAttrs(attrs map[string]any) ([]byte, error) {
	if !h.colour {
		return json.MarshalIndent(attrs, "", "  ")
	}

	f := colorjson.NewFormatter()
	f.Indent = 2

	return f.Marshal(attrs)
}

func (h *PrettyHandler) colorize(s string, codes ...color.Code) string {
	if !h.colour {
		return s
	}

	return color.Colorize(s, codes...)
}

// suppressDefaults drops time, level and message from the inner JSON handler;
// PrettyHandler renders those itself.
func suppressDefaults(next func([]string, slog.Attr) slog.Attr,
) func([]string, slog.Attr) slog.Attr {
	return func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == slog.TimeKey ||
			a.Key == slog.LevelKey ||
			a.Key == slog.MessageKey {
			return slog.Attr{}
		}

		if next == nil {
			return a
		}

		return next(groups, a)
	}
}

// Option implements a functional options pattern for PrettyHandler.
type Option func(h *PrettyHandler)

// WithDestinationWriter sets the destination writer for the PrettyHandler.
func WithDestinationWriter(writer io.Writer) Option {
	return func(h *PrettyHandler) {
		h.writer = writer
	}
}

// WithColour enables colorized output for the handler. The process-wide
// NO_COLOR handling in the color package still applies.
func WithColour() Option {
	return func(h *PrettyHandler) {
		h.colour = true
	}
}

// WithAutoColour enables color output when the process is attached to a
// color-capable terminal.
func WithAutoColour() Option {
	return func(h *PrettyHandler) {
		h.colour = color.Enabled()
	}
}
