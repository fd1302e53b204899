package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/BuzzLyutic/dojo/internal/config"
	"github.com/BuzzLyutic/dojo/internal/db"
	"github.com/BuzzLyutic/dojo/internal/metrics"
	"github.com/BuzzLyutic/dojo/internal/server"
	"github.com/BuzzLyutic/dojo/internal/service"
)

const (
	ExitSuccess           = 0
	ExitFailure           = 1
	ExitInvalidInvocation = 2
	ExitConfigError       = 3
)

// Version переопределяется при сборке через -ldflags "-X ...cli.Version=..."
var Version = "0.1.0"

// Env - все, что нужно команде извне: конфиг, логгер и потоки вывода
type Env struct {
	Config config.Config
	Logger *zap.Logger
	Stdout io.Writer
	Stderr io.Writer
	// Now подменяет часы сервиса, nil - time.Now
	Now func() time.Time
}

type command func(ctx context.Context, svc *service.TaskService, args []string) error

// Run выполняет одну команду и возвращает код выхода процесса
func Run(ctx context.Context, args []string, env Env) int {
	if env.Logger == nil {
		env.Logger = zap.NewNop()
	}
	if len(args) == 0 {
		printHelp(env.Stderr)
		return ExitInvalidInvocation
	}

	name, rest := args[0], args[1:]
	switch name {
	case "help", "-h", "--help":
		printHelp(env.Stdout)
		return ExitSuccess
	case "version", "-v", "--version":
		fmt.Fprintf(env.Stdout, "dojo %s\n", Version)
		return ExitSuccess
	}

	cmd, ok := env.commands()[name]
	if !ok {
		fmt.Fprintf(env.Stderr, "error: unknown command %q, run 'dojo help' for usage\n", name)
		return ExitInvalidInvocation
	}

	store, err := db.Open(ctx, env.Config.DatabaseURL, env.Config.DB, env.Logger)
	if err != nil {
		env.Logger.Error("Failed to connect to Database", zap.Error(err))
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		return ExitConfigError
	}
	defer store.Close() // Запланированное закрытие соединения

	svc := service.NewTaskService(store.Tasks, env.Logger)
	if env.Now != nil {
		svc.WithClock(env.Now)
	}

	if err := cmd(ctx, svc, rest); err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		return exitCode(err)
	}
	return ExitSuccess
}

func (env Env) commands() map[string]command {
	return map[string]command{
		"add":    env.add,
		"list":   env.list,
		"done":   env.done,
		"delete": env.delete,
		"serve":  env.serve,
	}
}

func (env Env) add(ctx context.Context, svc *service.TaskService, args []string) error {
	task, err := svc.Add(ctx, args)
	if err != nil {
		return usageHint(err, "dojo add <message>")
	}
	fmt.Fprintf(env.Stdout, "successfully added (id %d)\n", task.ID)
	return nil
}

func (env Env) list(ctx context.Context, svc *service.TaskService, _ []string) error {
	tasks, err := svc.List(ctx)
	if err != nil {
		return err
	}
	renderTasks(env.Stdout, tasks)
	return nil
}

func (env Env) done(ctx context.Context, svc *service.TaskService, args []string) error {
	res, err := svc.MarkDone(ctx, args)
	env.reportSkipped("done", res)
	if err != nil {
		return usageHint(err, "dojo done <id...>")
	}
	fmt.Fprintln(env.Stdout, "successfully updated")
	return nil
}

func (env Env) delete(ctx context.Context, svc *service.TaskService, args []string) error {
	res, err := svc.Delete(ctx, args)
	env.reportSkipped("delete", res)
	if err != nil {
		return usageHint(err, "dojo delete <id...>")
	}
	fmt.Fprintln(env.Stdout, "successfully deleted")
	return nil
}

func (env Env) serve(ctx context.Context, svc *service.TaskService, _ []string) error {
	router := server.NewRouter(svc, metrics.New(), env.Logger)
	return server.Run(ctx, ":"+env.Config.Port, router, env.Logger)
}

func (env Env) reportSkipped(op string, res service.BatchResult) {
	for _, s := range res.Skipped {
		fmt.Fprintf(env.Stderr, "error: %s operation args must be integers, skipped %q\n", op, s.Raw)
	}
}

func usageHint(err error, usage string) error {
	if errors.Is(err, service.ErrInvalidArgument) {
		return fmt.Errorf("%w (usage: %s)", err, usage)
	}
	return err
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, service.ErrInvalidArgument):
		return ExitInvalidInvocation
	default:
		return ExitFailure
	}
}
