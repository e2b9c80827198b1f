package client

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/MKhiriev/class-sync/models"
)

func (a *App) homeworkCommand() *cli.Command {
	return &cli.Command{
		Name:  "homework",
		Usage: "list, assign, submit and grade homework",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list homework, optionally of one class",
				Flags: []cli.Flag{&cli.StringFlag{Name: "class", Usage: "class id"}},
				Action: a.connected(func(ctx context.Context, cmd *cli.Command) error {
					items, err := a.adapter.ListHomework(ctx, models.ID(cmd.String("class")))
					if err != nil {
						return fmt.Errorf("list homework: %w", err)
					}
					return a.print(items)
				}),
			},
			{
				Name:  "create",
				Usage: "assign homework to a class",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "title", Required: true},
					&cli.StringFlag{Name: "class", Usage: "class id", Required: true},
					&cli.StringFlag{Name: "description"},
					&cli.StringFlag{Name: "instructions"},
					&cli.StringFlag{Name: "due", Usage: "due date, YYYY-MM-DD"},
					&cli.IntFlag{Name: "points", Value: 100},
					&cli.BoolFlag{Name: "allow-late"},
					&cli.BoolFlag{Name: "require-files"},
					&cli.BoolFlag{Name: "multiple-attempts"},
					&cli.StringSliceFlag{Name: "attachment"},
				},
				Action: a.connected(func(ctx context.Context, cmd *cli.Command) error {
					hw, err := a.adapter.CreateHomework(ctx, models.HomeworkInput{
						Title:                cmd.String("title"),
						ClassID:              models.ID(cmd.String("class")),
						Description:          cmd.String("description"),
						Instructions:         cmd.String("instructions"),
						DueDate:              cmd.String("due"),
						Points:               int(cmd.Int("points")),
						AllowLateSubmissions: cmd.Bool("allow-late"),
						RequireFiles:         cmd.Bool("require-files"),
						MultipleAttempts:     cmd.Bool("multiple-attempts"),
						Attachments:          cmd.StringSlice("attachment"),
					})
					if err != nil {
						return fmt.Errorf("create homework: %w", err)
					}
					return a.print(hw)
				}),
			},
			{
				Name:      "submit",
				Usage:     "hand in homework",
				ArgsUsage: "<homework-id>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "content"},
					&cli.StringSliceFlag{Name: "attachment"},
				},
				Action: a.connected(func(ctx context.Context, cmd *cli.Command) error {
					id, err := requireArg(cmd, "homework id")
					if err != nil {
						return err
					}
					hw, err := a.adapter.SubmitHomework(ctx, models.ID(id), models.Submission{
						Content:     cmd.String("content"),
						Attachments: cmd.StringSlice("attachment"),
					})
					if err != nil {
						return fmt.Errorf("submit homework: %w", err)
					}
					return a.print(hw)
				}),
			},
			{
				Name:      "grade",
				Usage:     "grade a submission",
				ArgsUsage: "<homework-id>",
				Flags: []cli.Flag{
					&cli.FloatFlag{Name: "score", Required: true},
					&cli.StringFlag{Name: "feedback"},
					&cli.StringFlag{Name: "student", Usage: "student id"},
				},
				Action: a.connected(func(ctx context.Context, cmd *cli.Command) error {
					id, err := requireArg(cmd, "homework id")
					if err != nil {
						return err
					}
					hw, err := a.adapter.GradeHomework(ctx, models.ID(id), models.Grade{
						StudentID: models.ID(cmd.String("student")),
						Score:     float64(cmd.Float("score")),
						Feedback:  cmd.String("feedback"),
					})
					if err != nil {
						return fmt.Errorf("grade homework: %w", err)
					}
					return a.print(hw)
				}),
			},
		},
	}
}
