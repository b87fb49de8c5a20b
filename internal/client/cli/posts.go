package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
)

// Posts lists blog posts, newest first. Drafts of other authors show
// placeholder content.
func (a *App) Posts(ctx context.Context) error {
	posts, err := a.api.Posts(ctx)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	if len(posts) == 0 {
		fmt.Println("No posts yet")
		return nil
	}
	for _, p := range posts {
		state := "draft"
		if p.Published {
			state = "published"
		}
		fmt.Printf("[%s] %q by %s (%s)\n%s\n", p.ID, p.Title, p.AuthorName, state, p.Content)
	}
	return nil
}

// Compose prompts for a title and body and creates a new post.
// Requires the editor role.
func (a *App) Compose(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		return err
	}
	body, err := getMultiline(a.reader, "Enter post body", os.Stdout)
	if err != nil {
		return err
	}
	answer, err := getSimpleText(a.reader, "Publish now? (y/N)", os.Stdout)
	if err != nil {
		return err
	}
	published := strings.EqualFold(answer, "y")

	rec, err := a.api.CreatePost(ctx, title, body, published)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	fmt.Printf("Created post %s\n", rec.ID)
	return nil
}

// Publish prompts for a post id and flips it to published, keeping the
// current title and content.
func (a *App) Publish(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter post id", os.Stdout)
	if err != nil {
		return err
	}

	posts, err := a.api.Posts(ctx)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	for _, p := range posts {
		if p.ID == id {
			if _, err := a.api.UpdatePost(ctx, p.ID, p.Title, p.Content, true); err != nil {
				log.Println(err.Error())
				return err
			}
			fmt.Println("Post published")
			return nil
		}
	}

	fmt.Println("No such post:", id)
	return nil
}

// Remove prompts for a post id and deletes it. Only own posts can be removed.
func (a *App) Remove(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter post id", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.api.DeletePost(ctx, id); err != nil {
		log.Println(err.Error())
		return err
	}

	fmt.Println("Post removed")
	return nil
}
