package cli

import (
	"context"
	"fmt"
	"log"
	"os"
)

// Messages lists chat messages, newest first.
func (a *App) Messages(ctx context.Context) error {
	msgs, err := a.api.Messages(ctx)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	if len(msgs) == 0 {
		fmt.Println("No messages yet")
		return nil
	}
	for _, m := range msgs {
		fmt.Printf("[%s] %s: %s\n", m.ID, m.AuthorName, m.Content)
	}
	return nil
}

// Say prompts for text and posts it as a chat message.
func (a *App) Say(ctx context.Context) error {
	text, err := getSimpleText(a.reader, "Enter message", os.Stdout)
	if err != nil {
		return err
	}

	rec, err := a.api.PostMessage(ctx, text)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	fmt.Printf("Posted message %s\n", rec.ID)
	return nil
}

// Edit prompts for a message id and replacement text, then updates the
// message. Only own messages can be edited.
func (a *App) Edit(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter message id", os.Stdout)
	if err != nil {
		return err
	}
	text, err := getSimpleText(a.reader, "Enter new text", os.Stdout)
	if err != nil {
		return err
	}

	if _, err := a.api.EditMessage(ctx, id, text); err != nil {
		log.Println(err.Error())
		return err
	}

	fmt.Println("Message updated")
	return nil
}
