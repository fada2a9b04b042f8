// Package settings loads and validates the figure settings file.
//
// A settings file is a flat mapping of layout and style options. It may be
// written as JSON, TOML or YAML; the format is chosen by file extension.
// Every key in [RequiredKeys] must be present. [Settings.Layout] converts a
// validated file into the immutable [styles.Layout] used by one render.
//
// # Usage
//
//	s, err := settings.Load("settings.json")
//	if err != nil {
//	    return err
//	}
//	layout, err := s.Layout(fonts.Default())
package settings

import (
	"gonum.org/v1/plot/vg"

	"github.com/spred/plotplotplot/pkg/errors"
	"github.com/spred/plotplotplot/pkg/fonts"
	"github.com/spred/plotplotplot/pkg/render/palette"
	"github.com/spred/plotplotplot/pkg/render/styles"
)

// RequiredKeys lists the keys every settings file must define.
var RequiredKeys = []string{
	"plot_height", "plot_width",
	"x_axis", "y_axis",
	"title_text", "subtitle_text", "banner_text", "x_label",
	"top", "bottom", "left", "right",
	"title_pad_x", "title_pos_y", "subtitle_pos_y",
	"title_font_size", "subtitle_font_size",
	"text_opacity", "x_axis_opacity",
	"tick_label_size", "legend_size", "x_axis_label_size", "y_axis_label_size",
	"banner_text_size",
	"line_styles", "markers",
}

// Settings is the decoded settings file.
//
// Sizes are in points except PlotWidth and PlotHeight, which are inches.
// Margins and vertical positions are figure fractions.
type Settings struct {
	PlotHeight float64 `json:"plot_height" toml:"plot_height" yaml:"plot_height"`
	PlotWidth  float64 `json:"plot_width" toml:"plot_width" yaml:"plot_width"`

	// XAxis names the column plotted on x; empty means the row number.
	XAxis string `json:"x_axis" toml:"x_axis" yaml:"x_axis"`
	// YAxis restricts plotting to one column; empty means every column.
	YAxis string `json:"y_axis" toml:"y_axis" yaml:"y_axis"`

	TitleText    string `json:"title_text" toml:"title_text" yaml:"title_text"`
	SubtitleText string `json:"subtitle_text" toml:"subtitle_text" yaml:"subtitle_text"`
	BannerText   string `json:"banner_text" toml:"banner_text" yaml:"banner_text"`
	XLabel       string `json:"x_label" toml:"x_label" yaml:"x_label"`

	Top    float64 `json:"top" toml:"top" yaml:"top"`
	Bottom float64 `json:"bottom" toml:"bottom" yaml:"bottom"`
	Left   float64 `json:"left" toml:"left" yaml:"left"`
	Right  float64 `json:"right" toml:"right" yaml:"right"`

	TitlePadX        float64 `json:"title_pad_x" toml:"title_pad_x" yaml:"title_pad_x"`
	TitlePosY        float64 `json:"title_pos_y" toml:"title_pos_y" yaml:"title_pos_y"`
	SubtitlePosY     float64 `json:"subtitle_pos_y" toml:"subtitle_pos_y" yaml:"subtitle_pos_y"`
	TitleFontSize    float64 `json:"title_font_size" toml:"title_font_size" yaml:"title_font_size"`
	SubtitleFontSize float64 `json:"subtitle_font_size" toml:"subtitle_font_size" yaml:"subtitle_font_size"`

	TextOpacity  float64 `json:"text_opacity" toml:"text_opacity" yaml:"text_opacity"`
	XAxisOpacity float64 `json:"x_axis_opacity" toml:"x_axis_opacity" yaml:"x_axis_opacity"`

	TickLabelSize  float64 `json:"tick_label_size" toml:"tick_label_size" yaml:"tick_label_size"`
	LegendSize     float64 `json:"legend_size" toml:"legend_size" yaml:"legend_size"`
	XAxisLabelSize float64 `json:"x_axis_label_size" toml:"x_axis_label_size" yaml:"x_axis_label_size"`
	YAxisLabelSize float64 `json:"y_axis_label_size" toml:"y_axis_label_size" yaml:"y_axis_label_size"`
	BannerTextSize float64 `json:"banner_text_size" toml:"banner_text_size" yaml:"banner_text_size"`

	LineStyles []string `json:"line_styles" toml:"line_styles" yaml:"line_styles"`
	Markers    []string `json:"markers" toml:"markers" yaml:"markers"`

	// Optional keys.
	ColorMap   string      `json:"color_map,omitempty" toml:"color_map,omitempty" yaml:"color_map,omitempty"`
	UseMarkers bool        `json:"use_markers,omitempty" toml:"use_markers,omitempty" yaml:"use_markers,omitempty"`
	LineWidth  float64     `json:"line_width,omitempty" toml:"line_width,omitempty" yaml:"line_width,omitempty"`
	Merges     [][]string  `json:"merges,omitempty" toml:"merges,omitempty" yaml:"merges,omitempty"`
	Exclude    []string    `json:"exclude,omitempty" toml:"exclude,omitempty" yaml:"exclude,omitempty"`
	Fonts      fonts.Paths `json:"fonts,omitempty" toml:"fonts,omitempty" yaml:"fonts,omitempty"`
}

// Default returns the stock settings.
func Default() Settings {
	markers := make([]string, len(styles.DefaultMarkers))
	for i, m := range styles.DefaultMarkers {
		markers[i] = string(m)
	}
	return Settings{
		PlotHeight:       20,
		PlotWidth:        20,
		BannerText:       "©spred",
		Top:              0.90,
		Bottom:           0.1,
		Left:             0.08,
		Right:            0.96,
		TitlePadX:        0,
		TitlePosY:        0.95,
		SubtitlePosY:     0.92,
		TitleFontSize:    50,
		SubtitleFontSize: 30,
		TextOpacity:      0.75,
		XAxisOpacity:     0.7,
		TickLabelSize:    14,
		LegendSize:       14,
		XAxisLabelSize:   24,
		YAxisLabelSize:   14,
		BannerTextSize:   14,
		LineStyles:       []string{string(styles.DashSolid)},
		Markers:          markers,
		ColorMap:         palette.DefaultRamp,
	}
}

// Validate checks ranges and names. It returns the first failure as a
// CONFIGURATION error.
func (s Settings) Validate() error {
	checks := []func() error{
		func() error { return errors.ValidatePositive("plot_height", s.PlotHeight) },
		func() error { return errors.ValidatePositive("plot_width", s.PlotWidth) },
		func() error { return errors.ValidateMargins(s.Top, s.Bottom, s.Left, s.Right) },
		func() error { return errors.ValidateFraction("title_pos_y", s.TitlePosY) },
		func() error { return errors.ValidateFraction("subtitle_pos_y", s.SubtitlePosY) },
		func() error { return errors.ValidatePositive("title_font_size", s.TitleFontSize) },
		func() error { return errors.ValidatePositive("subtitle_font_size", s.SubtitleFontSize) },
		func() error { return errors.ValidateOpacity("text_opacity", s.TextOpacity) },
		func() error { return errors.ValidateOpacity("x_axis_opacity", s.XAxisOpacity) },
		func() error { return errors.ValidatePositive("tick_label_size", s.TickLabelSize) },
		func() error { return errors.ValidatePositive("legend_size", s.LegendSize) },
		func() error { return errors.ValidatePositive("x_axis_label_size", s.XAxisLabelSize) },
		func() error { return errors.ValidatePositive("y_axis_label_size", s.YAxisLabelSize) },
		func() error { return errors.ValidatePositive("banner_text_size", s.BannerTextSize) },
	}
	for _, check := range checks {
		if err := check(); err != nil {
			return err
		}
	}
	if s.LineWidth < 0 {
		return errors.New(errors.ErrCodeConfiguration, "line_width must be positive, got %g", s.LineWidth)
	}
	if len(s.LineStyles) == 0 {
		return errors.New(errors.ErrCodeConfiguration, "line_styles must list at least one style")
	}
	if _, err := styles.ParseDashes(s.LineStyles); err != nil {
		return err
	}
	if s.UseMarkers && len(s.Markers) == 0 {
		return errors.New(errors.ErrCodeConfiguration, "use_markers needs at least one marker")
	}
	if _, err := styles.ParseMarkers(s.Markers); err != nil {
		return err
	}
	if _, err := palette.Lookup(s.ColorMap); err != nil {
		return err
	}
	return nil
}

// Layout validates s and converts it into a render layout using the faces
// in set.
func (s Settings) Layout(set *fonts.Set) (styles.Layout, error) {
	if err := s.Validate(); err != nil {
		return styles.Layout{}, err
	}
	if set == nil {
		set = fonts.Default()
	}
	dashes, _ := styles.ParseDashes(s.LineStyles)
	markers, _ := styles.ParseMarkers(s.Markers)
	ramp, _ := palette.Lookup(s.ColorMap)

	width := styles.LineWidth
	if s.LineWidth > 0 {
		width = vg.Points(s.LineWidth)
	}

	return styles.Layout{
		Width:  vg.Length(s.PlotWidth) * vg.Inch,
		Height: vg.Length(s.PlotHeight) * vg.Inch,

		Top:    s.Top,
		Bottom: s.Bottom,
		Left:   s.Left,
		Right:  s.Right,

		XColumn:  s.XAxis,
		YColumn:  s.YAxis,
		Title:    s.TitleText,
		Subtitle: s.SubtitleText,
		Banner:   s.BannerText,
		XLabel:   s.XLabel,

		TitlePadX:     vg.Points(s.TitlePadX),
		TitlePosY:     s.TitlePosY,
		SubtitlePosY:  s.SubtitlePosY,
		TitleSize:     vg.Points(s.TitleFontSize),
		SubtitleSize:  vg.Points(s.SubtitleFontSize),
		TickLabelSize: vg.Points(s.TickLabelSize),
		LegendSize:    vg.Points(s.LegendSize),
		XLabelSize:    vg.Points(s.XAxisLabelSize),
		YLabelSize:    vg.Points(s.YAxisLabelSize),
		BannerSize:    vg.Points(s.BannerTextSize),

		TextOpacity:     s.TextOpacity,
		ZeroLineOpacity: s.XAxisOpacity,

		Ramp:       ramp,
		LineWidth:  width,
		Dashes:     dashes,
		Markers:    markers,
		UseMarkers: s.UseMarkers,

		Fonts: styles.Fonts{
			Tick:  set.Tick,
			Title: set.Title,
			Text:  set.Text,
		},
		Handler: set.Handler(),
	}, nil
}
