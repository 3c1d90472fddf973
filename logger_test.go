// seehuhn.de/go/raster - a 2D rendering library
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package raster

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	r, err := New(Config{Quality: Fast, Mode: ModeFill, Workers: 1})
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Setup(&Shape{Fill: rectFigure(0, 0, 1, 1)}); err != nil {
		t.Fatal(err)
	}
	if out := buf.String(); !strings.Contains(out, "level=DEBUG") || !strings.Contains(out, "fillEdges=2") {
		t.Errorf("missing setup summary in %q", out)
	}

	buf.Reset()
	if err := r.Setup(&Shape{Fill: rectFigure(0, 0, 2*MaxExtent, 1)}); err == nil {
		t.Fatal("oversized figure accepted")
	}
	if out := buf.String(); !strings.Contains(out, "level=WARN") {
		t.Errorf("missing warning in %q", out)
	}

	SetLogger(nil)
	buf.Reset()
	_ = r.Setup(&Shape{Fill: rectFigure(0, 0, 2*MaxExtent, 1)})
	if buf.Len() != 0 {
		t.Errorf("output after SetLogger(nil): %q", buf.String())
	}
	if Logger().Enabled(t.Context(), slog.LevelError) {
		t.Error("default logger is enabled")
	}
}
