package command

import (
	"github.com/urfave/cli/v2"

	"github.com/jrsteele09/wellbe/api"
	"github.com/jrsteele09/wellbe/session"
	"github.com/jrsteele09/wellbe/users"
)

// whoami is printed for the current session.
type whoami struct {
	Authenticated        bool        `json:"authenticated"`
	IsOnboardingComplete bool        `json:"isOnboardingComplete"`
	User                 *users.User `json:"user,omitempty"`
}

func AuthCommand() *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Sign in and manage the session",
		Subcommands: []*cli.Command{
			{
				Name:  "login",
				Usage: "Sign in with email and password",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "email", Aliases: []string{"e"}, Required: true},
					&cli.StringFlag{Name: "password", Aliases: []string{"p"}, Required: true, EnvVars: []string{"WELLBE_PASSWORD"}},
				},
				Action: authLogin,
			},
			{
				Name:   "login-default",
				Usage:  "Sign in as the development user (mock mode only)",
				Action: authLoginDefault,
			},
			{
				Name:  "register",
				Usage: "Create an account and sign in",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "email", Aliases: []string{"e"}, Required: true},
					&cli.StringFlag{Name: "password", Aliases: []string{"p"}, Required: true, EnvVars: []string{"WELLBE_PASSWORD"}},
					&cli.StringFlag{Name: "first-name"},
					&cli.StringFlag{Name: "last-name"},
				},
				Action: authRegister,
			},
			{
				Name:   "logout",
				Usage:  "Sign out and clear stored credentials",
				Action: authLogout,
			},
			{
				Name:   "whoami",
				Usage:  "Show the signed-in user",
				Action: authWhoami,
			},
			{
				Name:      "forgot-password",
				Usage:     "Request a password reset email",
				ArgsUsage: "EMAIL",
				Action:    authForgotPassword,
			},
			{
				Name:      "reset-password",
				Usage:     "Set a new password with a reset token",
				ArgsUsage: "TOKEN NEW_PASSWORD",
				Action:    authResetPassword,
			},
		},
	}
}

func authLogin(c *cli.Context) error {
	return emit(c, fromContext(c).Session.Login(c.Context, c.String("email"), c.String("password")))
}

func authLoginDefault(c *cli.Context) error {
	return emit(c, fromContext(c).Session.LoginAsDefaultUser(c.Context))
}

func authRegister(c *cli.Context) error {
	return emit(c, fromContext(c).Session.Register(c.Context, session.RegisterRequest{
		Email:     c.String("email"),
		Password:  c.String("password"),
		FirstName: c.String("first-name"),
		LastName:  c.String("last-name"),
	}))
}

func authLogout(c *cli.Context) error {
	fromContext(c).Session.Logout(c.Context)
	return emit(c, api.OK(api.MessageResponse{Message: "Logged out"}))
}

func authWhoami(c *cli.Context) error {
	s := fromContext(c).Session
	w := whoami{Authenticated: s.IsAuthenticated(c.Context)}
	if w.Authenticated {
		w.User = s.CurrentUser(c.Context)
		w.IsOnboardingComplete = s.CheckOnboardingStatus(c.Context)
	}
	return emit(c, api.OK(w))
}

func authForgotPassword(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("usage: wellbe auth forgot-password EMAIL", 2)
	}
	return emit(c, fromContext(c).Session.ForgotPassword(c.Context, c.Args().First()))
}

func authResetPassword(c *cli.Context) error {
	if c.NArg() != 2 {
		return cli.Exit("usage: wellbe auth reset-password TOKEN NEW_PASSWORD", 2)
	}
	return emit(c, fromContext(c).Session.ResetPassword(c.Context, c.Args().Get(0), c.Args().Get(1)))
}
