package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/BuzzLyutic/dojo/internal/model"
)

const emptyListMessage = "The list is empty. Try adding a new task!"

func renderTasks(w io.Writer, tasks []model.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, emptyListMessage)
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSTATUS\tCREATED\tTASK")
	for _, t := range tasks {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", t.ID, status(t), t.CreatedTime().Format(time.RFC1123Z), t.Message)
	}
	tw.Flush()
}

func status(t model.Task) string {
	if t.Completed {
		return "completed"
	}
	return "not completed"
}

func printHelp(w io.Writer) {
	fmt.Fprint(w, `Usage: dojo <command> [args...]

Commands:
  list                 Show all todo items
  add <message...>     Add a new todo item
  done <id...>         Mark one or more todos as completed
  delete <id...>       Delete one or more todos
  serve                Serve the todo list over HTTP on $PORT
  version              Show program version
  help                 Show this help

Environment:
  DATABASE_URL         sqlite:<path> (default sqlite:db/dojo.db), postgres://..., mysql://<dsn>
  LOG_LEVEL            debug|info|warn|error (default warn)
`)
}
