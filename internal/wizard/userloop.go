package wizard

import (
	"context"
	"errors"
	"strings"
)

// Credential is one user account collected by the user-add sub-loop.
type Credential struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RunUserLoop repeatedly offers to add a user account and collects a
// username and masked password for each affirmed round. Usernames must be
// unique within the loop.
//
// Cancellation ends only the loop: the users collected so far are returned
// and the outer wizard continues. This is the one place where ErrCanceled is
// absorbed rather than propagated.
func RunUserLoop(ctx context.Context, p Prompter) ([]Credential, error) {
	var users []Credential

	for {
		add, err := p.Confirm(ctx, Field{
			Title:       "Add a user account?",
			Description: "User accounts are provisioned on the instance at first boot",
			Default:     len(users) == 0,
		})
		if err != nil {
			if errors.Is(err, ErrCanceled) {
				return users, nil
			}
			return users, err
		}
		if !add {
			return users, nil
		}

		username, err := p.Input(ctx, Field{
			Title:    "Username",
			Validate: usernameValidator(users),
		})
		if err != nil {
			if errors.Is(err, ErrCanceled) {
				return users, nil
			}
			return users, err
		}

		password, err := p.Secret(ctx, Field{
			Title: "Password",
			Validate: func(s string) error {
				if s == "" {
					return errors.New("password must not be empty")
				}
				return nil
			},
		})
		if err != nil {
			if errors.Is(err, ErrCanceled) {
				return users, nil
			}
			return users, err
		}

		users = append(users, Credential{Username: strings.TrimSpace(username), Password: password})
	}
}

func usernameValidator(existing []Credential) func(string) error {
	return func(s string) error {
		name := strings.TrimSpace(s)
		if name == "" {
			return errors.New("username must not be empty")
		}
		for _, u := range existing {
			if u.Username == name {
				return errors.New("username already added")
			}
		}
		return nil
	}
}
