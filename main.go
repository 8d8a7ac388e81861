package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

type rootOptions struct {
	configPath string
	logLevel   string
	logFile    string
	noMouse    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:          appName,
		Short:        "Edit draggable, styled text boxes in the terminal",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, closer, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			defer closer.Close()

			programOpts := []tea.ProgramOption{tea.WithAltScreen()}
			if config.Editor.Mouse && !opts.noMouse {
				programOpts = append(programOpts, tea.WithMouseCellMotion())
			}
			slog.Info("starting editor", "version", version)
			if _, err := tea.NewProgram(initialModel(config), programOpts...).Run(); err != nil {
				return fmt.Errorf("run editor: %w", err)
			}
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "path to TOML config (default $XDG_CONFIG_HOME/textboard/config.toml)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&opts.logFile, "log-file", "", "write logs to this file ('-' for stderr)")
	cmd.Flags().BoolVar(&opts.noMouse, "no-mouse", false, "disable mouse support")

	cmd.AddCommand(newExportCmd(opts), newVersionCmd())
	return cmd
}

// setup loads config, applies flag overrides and starts logging.
func setup(cmd *cobra.Command, opts *rootOptions) (*Config, io.Closer, error) {
	config, err := loadConfig(opts.configPath)
	if err != nil {
		return nil, nil, err
	}
	if cmd.Flags().Changed("log-level") {
		config.Logger.Level = opts.logLevel
	}
	if cmd.Flags().Changed("log-file") {
		config.Logger.File = opts.logFile
	}
	closer, err := initLogger(config.Logger)
	if err != nil {
		return nil, nil, err
	}
	return config, closer, nil
}

type exportOptions struct {
	out       string
	texts     []string
	font      string
	size      int
	align     string
	bold      bool
	italic    bool
	underline bool
}

// newExportCmd renders items to a PNG or TXT file without the TUI, driving
// the editor the same way the toolbar does.
func newExportCmd(root *rootOptions) *cobra.Command {
	opts := &exportOptions{}
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render text items to a PNG or TXT file",
		Example: `  textboard export --out hello.png --text "Hello" --text "World" --bold --size 24
  textboard export --out board.txt --text "Plain text" --align center`,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, closer, err := setup(cmd, root)
			if err != nil {
				return err
			}
			defer closer.Close()

			editor, positions := buildExport(opts, config)
			path, err := config.GetSavePath(opts.out)
			if err != nil {
				return err
			}
			if strings.EqualFold(filepath.Ext(path), ".txt") {
				err = exportVisualTXT(editor.Items(), positions, path)
			} else {
				path = withExtension(path, FileOpExportPNG)
				err = ExportToPNG(editor.Items(), positions, path, config.Export)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "output file (.png or .txt)")
	cmd.Flags().StringArrayVarP(&opts.texts, "text", "t", nil, "add a text item (repeatable)")
	cmd.Flags().StringVar(&opts.font, "font", "", fmt.Sprintf("font family (%s)", strings.Join(FontFamilies, ", ")))
	cmd.Flags().IntVar(&opts.size, "size", 0, "font size in px")
	cmd.Flags().StringVar(&opts.align, "align", "", "text alignment: left, center, right, justify")
	cmd.Flags().BoolVar(&opts.bold, "bold", false, "bold text")
	cmd.Flags().BoolVar(&opts.italic, "italic", false, "italic text")
	cmd.Flags().BoolVar(&opts.underline, "underline", false, "underlined text")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

// buildExport adds one item per --text, styles each through the selection
// and stacks them vertically.
func buildExport(opts *exportOptions, config *Config) (*Editor, map[string]point) {
	editor := NewEditor(Options{RecordNoops: config.Editor.RecordNoops})
	positions := make(map[string]point)
	y := 0
	for _, text := range opts.texts {
		id := editor.AddTextWith(text)
		editor.SetSelected(id)
		if opts.font != "" {
			editor.SetFontFamily(opts.font)
		}
		if opts.size > 0 {
			editor.SetFontSize(opts.size)
		}
		if opts.align != "" {
			editor.SetTextAlign(TextAlign(strings.ToLower(opts.align)))
		}
		if opts.bold {
			editor.ToggleBold()
		}
		if opts.italic {
			editor.ToggleItalic()
		}
		if opts.underline {
			editor.ToggleUnderline()
		}
		positions[id] = point{X: 0, Y: y}
		y += boxHeight + 1
	}
	editor.ClearSelection()
	return editor, positions
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", appName, version)
		},
	}
}
