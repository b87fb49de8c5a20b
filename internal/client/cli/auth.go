package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"inkwell/internal/client/client"
	"inkwell/internal/common"
)

// getSimpleText, getPassword, and getMultiline are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getMultiline = GetMultiline

// Register prompts for a username, password, and role, and attempts to
// create a new account. On success the session starts immediately.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	role, err := getSimpleText(a.reader, "Enter role (reader/editor, empty for reader)", os.Stdout)
	if err != nil {
		return err
	}

	ident, err := a.api.Register(ctx, userName, string(password), role)
	if err != nil {
		log.Printf("Registration unsuccessful: %s", err.Error())
		return err
	}

	a.identity = ident
	fmt.Printf("Registered and logged in as %s\n", ident.Username)
	return nil
}

// Login prompts for credentials and tries to authenticate.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	ident, err := a.api.Login(ctx, userName, string(password))
	if err != nil {
		log.Printf("Login unsuccessful: %s", err.Error())
		return err
	}

	a.identity = ident
	fmt.Printf("Logged in as %s\n", ident.Username)
	return nil
}

// Logout revokes the server-side session and forgets the local identity.
func (a *App) Logout(ctx context.Context) error {
	if err := a.api.Logout(ctx); err != nil {
		log.Println(err.Error())
		return err
	}
	a.identity = client.Identity{}
	fmt.Println("Logged out")
	return nil
}

// WhoAmI shows the identity bound to the current session.
func (a *App) WhoAmI(ctx context.Context) error {
	ident, err := a.api.Me(ctx)
	if err != nil {
		log.Println(err.Error())
		return err
	}
	fmt.Printf("%s (%s) id=%s\n", ident.Username, ident.Role, ident.ID)
	return nil
}
