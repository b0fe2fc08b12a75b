package cli

import (
	"context"
	"fmt"

	"github.com/akarpov/taskvault/internal/iocli"
	"github.com/akarpov/taskvault/internal/sync"
	"github.com/akarpov/taskvault/internal/task"
)

// Cli связывает консольные команды с сервисами приложения
type Cli struct {
	io          iocli.IO
	taskService task.Service
	syncService sync.Service
}

func New(io iocli.IO, taskService task.Service, syncService sync.Service) *Cli {
	return &Cli{
		io:          io,
		taskService: taskService,
		syncService: syncService,
	}
}

// Run выполняет одну команду с её аргументами
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "add":
		return c.runAdd(ctx)
	case "list":
		return c.runList(ctx)
	case "get":
		return c.runGet(ctx, args)
	case "update":
		return c.runUpdate(ctx, args)
	case "delete":
		return c.runDelete(ctx, args)
	case "sync":
		return c.runSync(ctx)
	case "status":
		return c.runStatus(ctx)
	default:
		c.PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

// PrintUsage выводит справку по командам
func (c *Cli) PrintUsage() {
	c.io.Println("TaskVault - offline-first task manager")
	c.io.Println()
	c.io.Println("Usage: taskvault [flags] <command> [arguments]")
	c.io.Println()
	c.io.Println("Commands:")
	c.io.Println("  add                          Add a new task (interactive)")
	c.io.Println("  list                         List tasks")
	c.io.Println("  get <id>                     Show task details")
	c.io.Println("  update <id> [--title=...] [--description=...] [--done|--undone]")
	c.io.Println("                               Update task fields")
	c.io.Println("  delete <id>                  Delete a task")
	c.io.Println("  sync                         Synchronize with the server")
	c.io.Println("  status                       Show synchronization status")
	c.io.Println()
	c.io.Println("Flags:")
	c.io.Println("  --server <url>               Server URL (default http://localhost:8080)")
	c.io.Println("  --db <path>                  Path to local database")
	c.io.Println("  --version                    Show version information")
}
