package cmds

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/bjaus/texttable"
)

func newLayoutsCmd() *cli.Command {
	return &cli.Command{
		Name:  "layouts",
		Usage: "list the available layouts",
		Action: func(ctx context.Context, c *cli.Command) error {
			for _, l := range texttable.Layouts() {
				if _, err := fmt.Fprintln(c.Root().Writer, l); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
