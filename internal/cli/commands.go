package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/wishlist/internal/errs"
	"github.com/Makepad-fr/wishlist/internal/tui"
	"github.com/Makepad-fr/wishlist/internal/ui"
	"github.com/Makepad-fr/wishlist/internal/wishlist"
)

func newUICommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive wishlist",
		Args:  usageArgs(cobra.NoArgs),
		RunE:  a.runUI,
	}
}

func newAddCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "add <text...>",
		Short:   "Add a wish (text can be multiple words)",
		Example: `  wishlist add "Go to Japan"`,
		Args:    usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.dispatch(cmd, wishlist.AddItem{Text: strings.Join(args, " ")})
		},
	}
}

func newDoneCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "done <id|index>",
		Aliases: []string{"toggle"},
		Short:   "Toggle obtained for a wish by id or 1-based index",
		Example: "  wishlist done 2",
		Args:    usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.dispatch(cmd, wishlist.ToggleItem{ID: a.resolve(args[0])})
		},
	}
}

func newRemoveCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id|index>",
		Aliases: []string{"delete"},
		Short:   "Remove a wish by id or 1-based index",
		Example: "  wishlist rm 3",
		Args:    usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.dispatch(cmd, wishlist.DeleteItem{ID: a.resolve(args[0])})
		},
	}
}

func newListCommand(a *app) *cobra.Command {
	var opt listOptions
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "Print the wishlist",
		Args:    usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), renderList(a.bridge.Items(), opt))
			return nil
		},
	}
	cmd.Flags().BoolVar(&opt.Group, "group", false, "group output by wished/obtained")
	cmd.Flags().BoolVar(&opt.IDs, "ids", false, "show item ids")
	return cmd
}

func (a *app) runUI(cmd *cobra.Command, args []string) error {
	return tui.Run(a.bridge, tui.Options{
		NoticeTTL: a.cfg.UI.NoticeTTL,
		Log:       a.log,
	})
}

// dispatch runs one command and prints its notice. Empty input is a usage
// error; unknown ids are silently ignored.
func (a *app) dispatch(cmd *cobra.Command, c wishlist.Command) error {
	res, err := a.bridge.Dispatch(c)
	if res.Notice != nil {
		if res.Notice.Kind == wishlist.NoticeError {
			ui.Fail(cmd.ErrOrStderr(), res.Notice.Text)
		} else {
			ui.OK(cmd.OutOrStdout(), res.Notice.Text)
		}
	}
	if err != nil {
		code := ExitError
		if errs.Is(err, errs.CodeEmptyInput) {
			code = ExitUsage
		}
		return &exitError{code: code, err: err, shown: res.Notice != nil}
	}
	if !res.Changed {
		fmt.Fprintln(cmd.ErrOrStderr(), ui.Current().Muted.Render("Nothing changed. Hint: run `wishlist ls` to see items"))
		return nil
	}
	if _, ok := c.(wishlist.ToggleItem); ok {
		state := "wished"
		if res.Item.Completed {
			state = "obtained"
		}
		ui.OK(cmd.OutOrStdout(), fmt.Sprintf("%s: %s", res.Item.Text, state))
	}
	return nil
}

// resolve maps an id or a 1-based index to an item id. Unknown
// references come back unchanged and match nothing.
func (a *app) resolve(ref string) string {
	items := a.bridge.Items()
	for _, it := range items {
		if it.ID == ref {
			return ref
		}
	}
	if n, err := strconv.Atoi(ref); err == nil && n >= 1 && n <= len(items) {
		return items[n-1].ID
	}
	return ref
}
