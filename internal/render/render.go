// Package render writes command results to a writer as text, JSON or YAML.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"geodna/internal/domain/entities"
	"geodna/pkg/geodna"
)

// Format names an output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat maps a config or flag value to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, json or yaml)", s)
	}
}

// Renderer writes values in a fixed format.
type Renderer struct {
	w      io.Writer
	format Format
}

// New returns a Renderer that writes to w in the given format.
func New(w io.Writer, format Format) *Renderer {
	return &Renderer{w: w, format: format}
}

// Render writes v followed by a newline.
func (r *Renderer) Render(v any) error {
	switch r.format {
	case FormatJSON:
		enc := json.NewEncoder(r.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(r.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		_, err := io.WriteString(r.w, text(v)+"\n")
		return err
	}
}

func text(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case entities.Location:
		return formatFloat(v.Latitude) + " " + formatFloat(v.Longitude)
	case entities.Cell:
		return fmt.Sprintf("%s\tprecision=%d\tcenter=%s,%s\tlat=[%s,%s]\tlon=[%s,%s]",
			v.Code, v.Precision,
			formatFloat(v.Center.Latitude), formatFloat(v.Center.Longitude),
			formatFloat(v.Box.Lat.Min), formatFloat(v.Box.Lat.Max),
			formatFloat(v.Box.Lon.Min), formatFloat(v.Box.Lon.Max))
	case geodna.Box:
		return fmt.Sprintf("%s %s %s %s",
			formatFloat(v.Lat.Min), formatFloat(v.Lat.Max),
			formatFloat(v.Lon.Min), formatFloat(v.Lon.Max))
	case entities.Distance:
		return formatFloat(v.Km)
	case entities.CodeList:
		return strings.Join(v.Codes, "\n")
	default:
		return fmt.Sprint(v)
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
