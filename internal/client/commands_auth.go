package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/MKhiriev/class-sync/internal/session"
	"github.com/MKhiriev/class-sync/models"
)

const passwordEnv = "CLASSSYNC_PASSWORD"

type authOutput struct {
	Authenticated bool         `json:"authenticated"`
	User          *models.User `json:"user,omitempty"`
}

func (a *App) loginCommand() *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "sign in and store the session token",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "email", Aliases: []string{"e"}, Required: true},
			&cli.StringFlag{Name: "password", Aliases: []string{"p"}, Required: true, Sources: cli.EnvVars(passwordEnv)},
		},
		Action: a.connected(func(ctx context.Context, cmd *cli.Command) error {
			resp, err := a.adapter.Login(ctx, cmd.String("email"), cmd.String("password"))
			if err != nil {
				return fmt.Errorf("login: %w", err)
			}
			return a.storeToken(ctx, resp)
		}),
	}
}

func (a *App) registerCommand() *cli.Command {
	return &cli.Command{
		Name:  "register",
		Usage: "create an account and store the session token",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Required: true},
			&cli.StringFlag{Name: "email", Aliases: []string{"e"}, Required: true},
			&cli.StringFlag{Name: "password", Aliases: []string{"p"}, Required: true, Sources: cli.EnvVars(passwordEnv)},
			&cli.StringFlag{Name: "role", Usage: "teacher|student", Value: string(models.RoleStudent)},
		},
		Action: a.connected(func(ctx context.Context, cmd *cli.Command) error {
			resp, err := a.adapter.Register(ctx, models.Registration{
				Name:     cmd.String("name"),
				Email:    cmd.String("email"),
				Password: cmd.String("password"),
				Role:     models.Role(cmd.String("role")),
			})
			if err != nil {
				return fmt.Errorf("register: %w", err)
			}
			return a.storeToken(ctx, resp)
		}),
	}
}

// storeToken persists the token of a successful login or registration. The
// adapter never does this on its own.
func (a *App) storeToken(ctx context.Context, resp models.AuthResponse) error {
	if err := a.session.SetToken(ctx, resp.Token); err != nil {
		return err
	}
	return a.print(authOutput{Authenticated: true, User: resp.User})
}

func (a *App) logoutCommand() *cli.Command {
	return &cli.Command{
		Name:  "logout",
		Usage: "end the session on the server and forget the token",
		Action: a.connected(func(ctx context.Context, _ *cli.Command) error {
			if !a.session.Authenticated() {
				return a.print(authOutput{})
			}

			// the local token goes even if the server call fails
			serverErr := a.adapter.Logout(ctx)
			if err := a.session.ClearToken(ctx); err != nil {
				return errors.Join(serverErr, err)
			}
			if serverErr != nil {
				return fmt.Errorf("logout: %w", serverErr)
			}
			return a.print(authOutput{})
		}),
	}
}

func (a *App) whoamiCommand() *cli.Command {
	return &cli.Command{
		Name:  "whoami",
		Usage: "show whether a token is stored and whom it was issued to",
		Action: a.connected(func(_ context.Context, _ *cli.Command) error {
			out := struct {
				Authenticated bool   `json:"authenticated"`
				Subject       string `json:"subject,omitempty"`
			}{Authenticated: a.session.Authenticated()}

			sub, err := a.session.Subject()
			switch {
			case err == nil:
				out.Subject = sub
			case errors.Is(err, session.ErrNotAuthenticated):
			default:
				a.logger.Debug().Err(err).Msg("token subject unavailable")
			}
			return a.print(out)
		}),
	}
}

func (a *App) tokenCommand() *cli.Command {
	return &cli.Command{
		Name:  "token",
		Usage: "manage the stored session token directly",
		Commands: []*cli.Command{
			{
				Name:      "set",
				Usage:     "store a token obtained elsewhere",
				ArgsUsage: "<token>",
				Action: a.connected(func(ctx context.Context, cmd *cli.Command) error {
					token, err := requireArg(cmd, "token")
					if err != nil {
						return err
					}
					if err = a.session.SetToken(ctx, token); err != nil {
						return err
					}
					return a.print(authOutput{Authenticated: true})
				}),
			},
			{
				Name:  "clear",
				Usage: "forget the stored token without contacting the server",
				Action: a.connected(func(ctx context.Context, _ *cli.Command) error {
					if err := a.session.ClearToken(ctx); err != nil {
						return err
					}
					return a.print(authOutput{})
				}),
			},
		},
	}
}
