package client

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/MKhiriev/class-sync/models"
)

func noteFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "title", Required: true},
		&cli.StringFlag{Name: "content"},
		&cli.StringFlag{Name: "class", Usage: "class id"},
		&cli.StringFlag{Name: "share", Usage: "private|class|public", Value: models.ShareWithPrivate},
		&cli.StringSliceFlag{Name: "tag"},
	}
}

func noteInput(cmd *cli.Command) models.NoteInput {
	return models.NoteInput{
		Title:     cmd.String("title"),
		Content:   cmd.String("content"),
		ClassID:   models.ID(cmd.String("class")),
		ShareWith: cmd.String("share"),
		Tags:      cmd.StringSlice("tag"),
	}
}

func (a *App) notesCommand() *cli.Command {
	return &cli.Command{
		Name:  "notes",
		Usage: "manage study notes",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list notes, optionally of one class",
				Flags: []cli.Flag{&cli.StringFlag{Name: "class", Usage: "class id"}},
				Action: a.connected(func(ctx context.Context, cmd *cli.Command) error {
					notes, err := a.adapter.ListNotes(ctx, models.ID(cmd.String("class")))
					if err != nil {
						return fmt.Errorf("list notes: %w", err)
					}
					return a.print(notes)
				}),
			},
			{
				Name:  "create",
				Usage: "create a note",
				Flags: noteFlags(),
				Action: a.connected(func(ctx context.Context, cmd *cli.Command) error {
					note, err := a.adapter.CreateNote(ctx, noteInput(cmd))
					if err != nil {
						return fmt.Errorf("create note: %w", err)
					}
					return a.print(note)
				}),
			},
			{
				Name:      "update",
				Usage:     "replace a note",
				ArgsUsage: "<note-id>",
				Flags:     noteFlags(),
				Action: a.connected(func(ctx context.Context, cmd *cli.Command) error {
					id, err := requireArg(cmd, "note id")
					if err != nil {
						return err
					}
					note, err := a.adapter.UpdateNote(ctx, models.ID(id), noteInput(cmd))
					if err != nil {
						return fmt.Errorf("update note: %w", err)
					}
					return a.print(note)
				}),
			},
			{
				Name:      "delete",
				Usage:     "delete a note",
				ArgsUsage: "<note-id>",
				Action: a.connected(func(ctx context.Context, cmd *cli.Command) error {
					id, err := requireArg(cmd, "note id")
					if err != nil {
						return err
					}
					if err = a.adapter.DeleteNote(ctx, models.ID(id)); err != nil {
						return fmt.Errorf("delete note: %w", err)
					}
					return a.printOK()
				}),
			},
			{
				Name:      "share",
				Usage:     "change who can read a note",
				ArgsUsage: "<note-id>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "with", Usage: "private|class|public", Value: models.ShareWithClass},
					&cli.StringSliceFlag{Name: "user", Usage: "user id to share with"},
					&cli.StringSliceFlag{Name: "email", Usage: "email to share with"},
				},
				Action: a.connected(func(ctx context.Context, cmd *cli.Command) error {
					id, err := requireArg(cmd, "note id")
					if err != nil {
						return err
					}

					share := models.NoteShare{ShareWith: cmd.String("with"), Emails: cmd.StringSlice("email")}
					for _, u := range cmd.StringSlice("user") {
						share.UserIDs = append(share.UserIDs, models.ID(u))
					}

					note, err := a.adapter.ShareNote(ctx, models.ID(id), share)
					if err != nil {
						return fmt.Errorf("share note: %w", err)
					}
					return a.print(note)
				}),
			},
		},
	}
}
