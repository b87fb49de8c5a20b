package cli

import (
	"context"
	"fmt"
	"log"
	"os"
)

// Page shows the shared content page and its edit history.
func (a *App) Page(ctx context.Context) error {
	page, err := a.api.Content(ctx)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	if page.Current == "" {
		fmt.Println("The page is empty")
	} else {
		fmt.Println(page.Current)
	}

	for _, rev := range page.History {
		fmt.Printf("  (was: %q by %s at %s)\n", rev.Content, rev.Author, rev.SavedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

// EditPage prompts for new content and replaces the shared page.
func (a *App) EditPage(ctx context.Context) error {
	body, err := getMultiline(a.reader, "Enter page content", os.Stdout)
	if err != nil {
		return err
	}

	if _, err := a.api.UpdateContent(ctx, body); err != nil {
		log.Println(err.Error())
		return err
	}

	fmt.Println("Page updated")
	return nil
}
