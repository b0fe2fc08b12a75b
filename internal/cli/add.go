package cli

import (
	"context"
	"fmt"

	"github.com/akarpov/taskvault/internal/models"
)

func (c *Cli) runAdd(ctx context.Context) error {
	c.io.Println("=== Add Task ===")
	c.io.Println()

	title, err := c.io.ReadInput("Title: ")
	if err != nil {
		return fmt.Errorf("failed to read title: %w", err)
	}
	if title == "" {
		return fmt.Errorf("title cannot be empty")
	}

	description, err := c.io.ReadInput("Description (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read description: %w", err)
	}

	task, err := c.taskService.Create(ctx, &models.Task{
		Title:       title,
		Description: description,
	})
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Task created!")
	c.io.Printf("ID: %s\n", task.ID)
	c.io.Println()
	c.io.Println("The task will be uploaded on the next 'taskvault sync'.")

	return nil
}
