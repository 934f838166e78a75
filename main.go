package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/pdxmph/todo/internal/config"
	"github.com/pdxmph/todo/internal/db"
	"github.com/pdxmph/todo/internal/logging"
	"github.com/pdxmph/todo/internal/tasks"
)

type options struct {
	configPath  string
	storePath   string
	logLevel    string
	writeConfig bool

	add      string
	due      string
	priority int
	query    string
	list     bool
	delete   int
	report   bool
	done     int
}

func parseFlags(fs *flag.FlagSet, args []string) (*options, []string, error) {
	o := &options{}
	fs.StringVar(&o.configPath, "config", "", "config file (default ~/.config/todo/config.toml)")
	fs.StringVar(&o.storePath, "store", "", "task file (overrides config)")
	fs.StringVar(&o.logLevel, "log-level", "", "log level: debug, info, warn, error")
	fs.BoolVar(&o.writeConfig, "write-config", false, "write the resolved config file and exit")

	fs.StringVar(&o.add, "add", "", "a task string to add to your list")
	fs.StringVar(&o.due, "due", "", "due date in MM/DD/YYYY format")
	fs.IntVar(&o.priority, "priority", tasks.DefaultPriority, "priority of task; default is 1")
	fs.StringVar(&o.query, "query", "", "search task list by keyword; extra keywords follow as arguments")
	fs.BoolVar(&o.list, "list", false, "list all tasks that have not been completed")
	fs.IntVar(&o.delete, "delete", 0, "unique id of task to delete")
	fs.BoolVar(&o.report, "report", false, "report all tasks, complete or incomplete")
	fs.IntVar(&o.done, "done", 0, "unique id of task to complete")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return o, fs.Args(), nil
}

func loadConfig(o *options) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if o.configPath != "" {
		cfg, err = config.LoadFrom(o.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if o.storePath != "" {
		cfg.Store.Path = o.storePath
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	return cfg, nil
}

// dispatch runs at most one action, in the same precedence as the flags
// have always had
func dispatch(store *tasks.Store, o *options, rest []string) {
	switch {
	case o.add != "":
		store.Add(o.add, o.due, o.priority)
	case o.list:
		store.List()
	case o.delete != 0:
		store.Delete(o.delete)
	case o.report:
		store.Report()
	case o.query != "":
		store.Query(append([]string{o.query}, rest...))
	case o.done != 0:
		store.Done(o.done)
	}
}

func run(args []string, stdout, stderr io.Writer) (err error) {
	fs := flag.NewFlagSet("todo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Update your To Do List.")
		fmt.Fprintln(fs.Output())
		fs.PrintDefaults()
	}

	o, rest, err := parseFlags(fs, args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(o)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	opts := logging.DefaultOptions("todo")
	opts.Level = cfg.Log.Level
	logger, err := logging.New(stderr, opts)
	if err != nil {
		return err
	}
	logger.Debug("config resolved", "store", cfg.Store.Path, "level", cfg.Log.Level)

	if o.writeConfig {
		if o.configPath != "" {
			err = cfg.SaveTo(o.configPath)
		} else {
			err = cfg.Save()
		}
		if err != nil {
			return fmt.Errorf("writing config: %w", err)
		}
		fmt.Fprintln(stdout, "Config written")
		return nil
	}

	database, err := db.Open(cfg.Store.Path)
	if err != nil {
		return err
	}
	defer database.Close()

	loaded, err := database.LoadTasks()
	if err != nil {
		return fmt.Errorf("loading tasks: %w", err)
	}
	logger.Debug("loaded tasks", "count", len(loaded), "path", database.Path())

	store := tasks.NewStore(loaded, stdout, tasks.WithLogger(logger))
	defer func() {
		saved := store.Tasks()
		if saveErr := database.SaveTasks(saved); saveErr != nil {
			err = errors.Join(err, fmt.Errorf("saving tasks: %w", saveErr))
			return
		}
		logger.Debug("saved tasks", "count", len(saved))
	}()

	dispatch(store, o, rest)
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}
}
