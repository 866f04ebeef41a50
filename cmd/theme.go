package cmd

import (
	"github.com/spf13/cobra"

	apperrors "github.com/ezytask/ezytask/internal/errors"
	"github.com/ezytask/ezytask/internal/model"
)

// themeCmd shows or sets the color theme used by the dashboard.
var themeCmd = &cobra.Command{
	Use:   "theme [light|dark]",
	Short: "Show or set the dashboard theme",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTheme,
}

func init() {
	rootCmd.AddCommand(themeCmd)
}

func runTheme(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		if ctx.IsJSON() {
			return ctx.JSONFormatter().JSON(map[string]string{"theme": ctx.Theme()})
		}
		ctx.CLIFormatter().Println(ctx.Theme())
		return nil
	}

	theme := args[0]
	if !model.ValidTheme(theme) {
		return apperrors.ErrInvalidTheme
	}
	if err := ctx.BoardRepo.SaveTheme(theme); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().JSON(map[string]string{"theme": theme})
	}
	ctx.CLIFormatter().Success("Theme set to " + theme)
	return nil
}
