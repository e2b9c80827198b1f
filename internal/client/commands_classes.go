package client

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/MKhiriev/class-sync/models"
)

func (a *App) classesCommand() *cli.Command {
	return &cli.Command{
		Name:  "classes",
		Usage: "list, create, join and leave classes",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list classes you teach or attend",
				Action: a.connected(func(ctx context.Context, _ *cli.Command) error {
					classes, err := a.adapter.ListClasses(ctx)
					if err != nil {
						return fmt.Errorf("list classes: %w", err)
					}
					return a.print(classes)
				}),
			},
			{
				Name:  "create",
				Usage: "create a class",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "title", Required: true},
					&cli.StringFlag{Name: "description"},
					&cli.StringFlag{Name: "subject"},
					&cli.StringFlag{Name: "schedule"},
					&cli.BoolFlag{Name: "private"},
				},
				Action: a.connected(func(ctx context.Context, cmd *cli.Command) error {
					class, err := a.adapter.CreateClass(ctx, models.ClassInput{
						Title:       cmd.String("title"),
						Description: cmd.String("description"),
						Subject:     cmd.String("subject"),
						Schedule:    cmd.String("schedule"),
						IsPrivate:   cmd.Bool("private"),
					})
					if err != nil {
						return fmt.Errorf("create class: %w", err)
					}
					return a.print(class)
				}),
			},
			{
				Name:      "join",
				Usage:     "join a class with its invite code",
				ArgsUsage: "<code>",
				Action: a.connected(func(ctx context.Context, cmd *cli.Command) error {
					code, err := requireArg(cmd, "class code")
					if err != nil {
						return err
					}
					class, err := a.adapter.JoinClass(ctx, code)
					if err != nil {
						return fmt.Errorf("join class: %w", err)
					}
					return a.print(class)
				}),
			},
			{
				Name:      "leave",
				Usage:     "leave a class",
				ArgsUsage: "<class-id>",
				Action: a.connected(func(ctx context.Context, cmd *cli.Command) error {
					id, err := requireArg(cmd, "class id")
					if err != nil {
						return err
					}
					if err = a.adapter.LeaveClass(ctx, models.ID(id)); err != nil {
						return fmt.Errorf("leave class: %w", err)
					}
					return a.printOK()
				}),
			},
		},
	}
}
