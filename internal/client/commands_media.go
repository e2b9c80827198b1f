package client

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/MKhiriev/class-sync/models"
)

// Upload kinds accepted by the upload command.
const (
	uploadKindFile     = "file"
	uploadKindVideo    = "video"
	uploadKindDocument = "document"
)

func (a *App) transcribeCommand() *cli.Command {
	return &cli.Command{
		Name:      "transcribe",
		Usage:     "transcribe a lecture video",
		ArgsUsage: "<video-url>",
		Action: a.connected(func(ctx context.Context, cmd *cli.Command) error {
			videoURL, err := requireArg(cmd, "video url")
			if err != nil {
				return err
			}
			res, err := a.adapter.TranscribeVideo(ctx, videoURL)
			if err != nil {
				return fmt.Errorf("transcribe: %w", err)
			}
			return a.print(res)
		}),
	}
}

func (a *App) searchCommand() *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "search lecture transcripts",
		ArgsUsage: "<query>",
		Flags:     []cli.Flag{&cli.StringFlag{Name: "class", Usage: "restrict to a class id"}},
		Action: a.connected(func(ctx context.Context, cmd *cli.Command) error {
			query := strings.TrimSpace(strings.Join(cmd.Args().Slice(), " "))
			if query == "" {
				return fmt.Errorf("%w: query", ErrMissingArgument)
			}
			res, err := a.adapter.SearchTranscripts(ctx, query, models.ID(cmd.String("class")))
			if err != nil {
				return fmt.Errorf("search: %w", err)
			}
			return a.print(res)
		}),
	}
}

func (a *App) uploadCommand() *cli.Command {
	return &cli.Command{
		Name:      "upload",
		Usage:     "upload a file",
		ArgsUsage: "<local-file>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "path", Usage: "destination path on the server (file uploads)"},
			&cli.StringFlag{Name: "kind", Usage: "file|video|document", Value: uploadKindFile},
			&cli.StringFlag{Name: "content-type", Usage: "media type; guessed from the extension when empty"},
		},
		Action: a.connected(func(ctx context.Context, cmd *cli.Command) error {
			name, err := requireArg(cmd, "local file")
			if err != nil {
				return err
			}

			f, err := os.Open(name)
			if err != nil {
				return fmt.Errorf("open upload: %w", err)
			}
			defer f.Close()

			info, err := f.Stat()
			if err != nil {
				return fmt.Errorf("stat upload: %w", err)
			}

			file := models.FileUpload{
				Name:        name,
				ContentType: cmd.String("content-type"),
				Size:        info.Size(),
				Reader:      f,
			}

			var res models.UploadResult
			switch kind := cmd.String("kind"); kind {
			case uploadKindFile:
				res, err = a.adapter.UploadFile(ctx, file, cmd.String("path"))
			case uploadKindVideo:
				res, err = a.adapter.UploadVideo(ctx, file)
			case uploadKindDocument:
				res, err = a.adapter.UploadDocument(ctx, file)
			default:
				return fmt.Errorf("unknown upload kind %q", kind)
			}
			if err != nil {
				return fmt.Errorf("upload: %w", err)
			}
			return a.print(res)
		}),
	}
}
