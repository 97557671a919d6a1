package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/linkviz/pkg/errors"
	"github.com/matzehuels/linkviz/pkg/pipeline"
)

// Config keys. Each matches the flag of the same name.
const (
	keyOutput    = "output"
	keyTitle     = "title"
	keyFormat    = "format"
	keyRenderer  = "renderer"
	keyDir       = "dir"
	keyNoOpen    = "no-open"
	keyNoCache   = "no-cache"
	keyDetailed  = "detailed"
	keyHeadColor = "head-color"
	keyNodeColor = "node-color"
)

// initConfig loads the config file and environment overrides. A missing
// default config file is not an error; a missing --config file is.
func (c *CLI) initConfig() error {
	v := c.config
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	explicit := c.configFile != ""
	if explicit {
		v.SetConfigFile(c.configFile)
	} else {
		dir, err := configDir()
		if err != nil {
			return nil
		}
		v.SetConfigFile(filepath.Join(dir, "config.yaml"))
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		if !explicit && os.IsNotExist(err) {
			return nil
		}
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "read config %s", v.ConfigFileUsed())
	}
	c.Logger.Debug("loaded config", "path", v.ConfigFileUsed())
	return nil
}

// bindFlags makes cmd's flags the highest-precedence config source.
func (c *CLI) bindFlags(cmd *cobra.Command) error {
	return c.config.BindPFlags(cmd.Flags())
}

// addRenderFlags registers the flags shared by render and demo.
func addRenderFlags(cmd *cobra.Command) {
	cmd.Flags().StringP(keyOutput, "o", pipeline.DefaultBaseName, "output base name (<name>.dot, <name>.png, ...)")
	cmd.Flags().String(keyTitle, "", "graph title (default from fixture, then \"Linked List\")")
	cmd.Flags().StringP(keyFormat, "f", pipeline.DefaultFormat, "image format(s): png, svg, jpg (comma-separated)")
	cmd.Flags().String(keyRenderer, pipeline.DefaultRenderer, "renderer: graphviz (in-process) or dot (external command)")
	cmd.Flags().String(keyDir, ".", "output directory")
	cmd.Flags().Bool(keyNoOpen, false, "do not open the rendered image")
	cmd.Flags().Bool(keyNoCache, false, "disable the render cache")
	cmd.Flags().Bool(keyDetailed, false, "show node references in records")
	cmd.Flags().String(keyHeadColor, "", "fill color of the head node (default green)")
	cmd.Flags().String(keyNodeColor, "", "fill color of other nodes (default lightblue)")
}

// pipelineOptions builds pipeline options from flags, environment, and
// config file, in that order of precedence. fallbackTitle is used when no
// title is configured.
func (c *CLI) pipelineOptions(fallbackTitle string) pipeline.Options {
	v := c.config
	opts := pipeline.Options{
		BaseName: v.GetString(keyOutput),
		Title:    v.GetString(keyTitle),
		Dir:      v.GetString(keyDir),
		Formats:  parseFormats(strings.Join(v.GetStringSlice(keyFormat), ",")),
		Open:     !v.GetBool(keyNoOpen),
		Renderer: v.GetString(keyRenderer),
		Detailed: v.GetBool(keyDetailed),
		Logger:   c.Logger,
	}
	if opts.Title == "" {
		opts.Title = fallbackTitle
	}
	opts.Palette.Head = v.GetString(keyHeadColor)
	opts.Palette.Node = v.GetString(keyNodeColor)
	return opts
}
